package renderer

import (
	"fmt"
	"strings"
)

// ShaderSources assembles the GLSL pair for the enabled stages. The four
// demo variants collapse into this one generator; every pipeline instance
// gets its own source strings. Attribute locations follow the order of
// TriangleGeometry.
func ShaderSources(stages StageConfig) (vertexSource, fragmentSource string) {
	return vertexShaderSource(stages), fragmentShaderSource(stages)
}

func vertexShaderSource(stages StageConfig) string {
	var b strings.Builder
	b.WriteString("#version 410 core\n")
	b.WriteString("layout (location = 0) in vec3 position;\n")
	location := 1
	if stages.Lighting {
		fmt.Fprintf(&b, "layout (location = %d) in vec3 normal;\n", location)
		location++
	}
	if stages.Color {
		fmt.Fprintf(&b, "layout (location = %d) in vec3 color;\n", location)
		location++
	}
	if stages.Texture {
		fmt.Fprintf(&b, "layout (location = %d) in vec2 texCoord;\n", location)
	}
	b.WriteString("\nuniform mat4 model;\nuniform mat4 view;\nuniform mat4 projection;\n\n")
	if stages.Lighting {
		b.WriteString("out vec3 FragPos;\nout vec3 Normal;\n")
	}
	if stages.Color {
		b.WriteString("out vec3 VertexColor;\n")
	}
	if stages.Texture {
		b.WriteString("out vec2 TexCoord;\n")
	}
	b.WriteString("\nvoid main() {\n")
	if stages.Lighting {
		b.WriteString("    FragPos = vec3(model * vec4(position, 1.0));\n")
		b.WriteString("    Normal = mat3(transpose(inverse(model))) * normal;\n")
		b.WriteString("    gl_Position = projection * view * vec4(FragPos, 1.0);\n")
	} else {
		b.WriteString("    gl_Position = projection * view * model * vec4(position, 1.0);\n")
	}
	if stages.Color {
		b.WriteString("    VertexColor = color;\n")
	}
	if stages.Texture {
		b.WriteString("    TexCoord = texCoord;\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func fragmentShaderSource(stages StageConfig) string {
	var b strings.Builder
	b.WriteString("#version 410 core\n")
	b.WriteString("out vec4 FragColor;\n\n")
	if stages.Lighting {
		b.WriteString("in vec3 FragPos;\nin vec3 Normal;\n")
	}
	if stages.Color {
		b.WriteString("in vec3 VertexColor;\n")
	}
	if stages.Texture {
		b.WriteString("in vec2 TexCoord;\n")
	}
	// The interpolated vertex color replaces the object color entirely, so
	// that variant does not declare the uniform; the host still pushes it
	// and relies on the lookup miss being a no-op.
	if !stages.Color {
		b.WriteString("\nuniform vec3 objectColor;\n")
	}
	if stages.Lighting {
		b.WriteString("uniform vec3 lightPos;\nuniform vec3 lightColor;\nuniform vec3 viewPos;\n")
	}
	if stages.Texture {
		b.WriteString("uniform sampler2D texture1;\n")
	}
	b.WriteString("\nvoid main() {\n")
	if stages.Color {
		b.WriteString("    vec3 base = VertexColor;\n")
	} else {
		b.WriteString("    vec3 base = objectColor;\n")
	}
	if stages.Texture {
		b.WriteString("    vec4 albedo = texture(texture1, TexCoord) * vec4(base, 1.0);\n")
	} else {
		b.WriteString("    vec4 albedo = vec4(base, 1.0);\n")
	}
	if stages.Lighting {
		b.WriteString(`
    // Ambient
    float ambientStrength = 0.1;
    vec3 ambient = ambientStrength * lightColor;

    // Diffuse
    vec3 norm = normalize(Normal);
    vec3 lightDir = normalize(lightPos - FragPos);
    float diff = max(dot(norm, lightDir), 0.0);
    vec3 diffuse = diff * lightColor;

    // Specular
    float specularStrength = 0.5;
    vec3 viewDir = normalize(viewPos - FragPos);
    vec3 reflectDir = reflect(-lightDir, norm);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), 32);
    vec3 specular = specularStrength * spec * lightColor;

    FragColor = vec4((ambient + diffuse + specular) * albedo.rgb, albedo.a);
`)
	} else {
		b.WriteString("    FragColor = albedo;\n")
	}
	b.WriteString("}\n")
	return b.String()
}
