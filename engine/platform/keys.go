package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/prism/engine/core"
)

// translateKey maps a GLFW key to the engine key code. Only the keys the
// engine reacts to are mapped; everything else is ignored.
func translateKey(key glfw.Key) (core.KeyCode, bool) {
	switch {
	case key == glfw.KeyEscape:
		return core.KEY_ESCAPE, true
	case key == glfw.KeySpace:
		return core.KEY_SPACE, true
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		// GLFW letters are ASCII, same as the engine codes.
		return core.KeyCode(key), true
	default:
		return 0, false
	}
}
