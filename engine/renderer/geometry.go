package renderer

const triangleVertexCount = 3

// The one mesh of the demo: a triangle in the XY plane, facing the camera.
var (
	trianglePositions = [triangleVertexCount][3]float32{
		{0.0, 0.5, 0.0},   // top
		{-0.5, -0.5, 0.0}, // bottom left
		{0.5, -0.5, 0.0},  // bottom right
	}
	triangleNormals = [triangleVertexCount][3]float32{
		{0.0, 0.0, 1.0},
		{0.0, 0.0, 1.0},
		{0.0, 0.0, 1.0},
	}
	triangleColors = [triangleVertexCount][3]float32{
		{1.0, 0.0, 0.0},
		{0.0, 1.0, 0.0},
		{0.0, 0.0, 1.0},
	}
	triangleTexcoords = [triangleVertexCount][2]float32{
		{0.5, 1.0},
		{0.0, 0.0},
		{1.0, 0.0},
	}
)

// TriangleGeometry assembles the interleaved vertex array and its attribute
// layout for the enabled stages. Position is always present at location 0;
// normal, color and texture coordinates follow at successive locations when
// their stages are enabled. The layout is fixed for the lifetime of the
// buffer.
func TriangleGeometry(stages StageConfig) (vertices []float32, layout []VertexAttribute, stride int32) {
	components := 3
	if stages.Lighting {
		components += 3
	}
	if stages.Color {
		components += 3
	}
	if stages.Texture {
		components += 2
	}
	stride = int32(components * 4)

	vertices = make([]float32, 0, triangleVertexCount*components)
	for v := 0; v < triangleVertexCount; v++ {
		vertices = append(vertices, trianglePositions[v][:]...)
		if stages.Lighting {
			vertices = append(vertices, triangleNormals[v][:]...)
		}
		if stages.Color {
			vertices = append(vertices, triangleColors[v][:]...)
		}
		if stages.Texture {
			vertices = append(vertices, triangleTexcoords[v][:]...)
		}
	}

	layout = append(layout, VertexAttribute{Index: 0, Components: 3, Offset: 0})
	index := uint32(1)
	offset := 3 * 4
	if stages.Lighting {
		layout = append(layout, VertexAttribute{Index: index, Components: 3, Offset: offset})
		index++
		offset += 3 * 4
	}
	if stages.Color {
		layout = append(layout, VertexAttribute{Index: index, Components: 3, Offset: offset})
		index++
		offset += 3 * 4
	}
	if stages.Texture {
		layout = append(layout, VertexAttribute{Index: index, Components: 2, Offset: offset})
	}

	return vertices, layout, stride
}
