package platform

import (
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/prism/engine/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type Platform struct {
	Window *glfw.Window
}

func New() *Platform {
	return &Platform{
		Window: nil,
	}
}

// Startup creates the window and the OpenGL 4.1 core context, makes it
// current and initializes the bindings. On failure nothing is left behind;
// the returned error is a *core.ContextCreationError.
func (p *Platform) Startup(applicationName string, x, y, width, height uint32) error {
	if err := glfw.Init(); err != nil {
		return &core.ContextCreationError{Reason: "failed to initialize glfw", Err: err}
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		glfw.Terminate()
		return &core.ContextCreationError{Reason: "failed to create window", Err: err}
	}
	p.Window = window

	p.Window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		p.Window.Destroy()
		p.Window = nil
		glfw.Terminate()
		return &core.ContextCreationError{Reason: "failed to initialize opengl bindings", Err: err}
	}

	// Pace buffer swaps to the display refresh.
	glfw.SwapInterval(1)

	p.Window.SetKeyCallback(keyCallback)
	p.Window.SetFramebufferSizeCallback(framebufferSizeCallback)
	p.Window.SetPos(int(x), int(y))
	p.Window.Show()

	core.LogInfo("Platform started: %s (%dx%d), OpenGL %s", applicationName, width, height, gl.GoStr(gl.GetString(gl.VERSION)))

	return nil
}

// Shutdown destroys the window and terminates GLFW. Must run after every GPU
// resource has been released. Idempotent.
func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
		glfw.Terminate()
	}
	return nil
}

// PollEvents pumps the window event queue, driving the key and resize
// callbacks for this frame.
func (p *Platform) PollEvents() {
	glfw.PollEvents()
}

func (p *Platform) SwapBuffers() {
	p.Window.SwapBuffers()
}

func (p *Platform) ShouldClose() bool {
	return p.Window.ShouldClose()
}

func (p *Platform) RequestClose() {
	p.Window.SetShouldClose(true)
}

func (p *Platform) FramebufferSize() (uint32, uint32) {
	width, height := p.Window.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	code, ok := translateKey(key)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		core.InputProcessKey(code, true)
	case glfw.Release:
		core.InputProcessKey(code, false)
	}
}

func framebufferSizeCallback(w *glfw.Window, width, height int) {
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_RESIZED,
		Data: &core.SystemEvent{
			WindowWidth:  uint32(width),
			WindowHeight: uint32(height),
		},
	})
}
