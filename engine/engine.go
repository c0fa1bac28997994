package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/platform"
	"github.com/spaghettifunk/prism/engine/renderer"
	"github.com/spaghettifunk/prism/engine/renderer/opengl"
	"github.com/spaghettifunk/prism/engine/scene"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine released all owned resources
	EngineStageTerminated
)

type Engine struct {
	currentStage Stage
	config       *ApplicationConfig
	platform     *platform.Platform
	renderer     *renderer.Renderer
	transform    *scene.Transform
	lighting     *scene.LightingParameters
	palette      scene.Palette
	isRunning    bool
	clock        *core.Clock
	lastTime     float64
	width        uint32
	height       uint32
}

func New(config *ApplicationConfig) *Engine {
	return &Engine{
		currentStage: EngineStageUninitialized,
		config:       config,
		platform:     platform.New(),
		clock:        core.NewClock(),
		width:        config.Window.StartWidth,
		height:       config.Window.StartHeight,
	}
}

// Initialize brings up every subsystem and creates all GPU resources. Any
// failure releases whatever was already created and leaves the engine short
// of Initialized; the loop cannot be entered.
func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return nil
	}
	e.currentStage = EngineStageInitializing

	core.LogSetLevel(e.config.logLevel())

	if err := core.InputInitialize(); err != nil {
		return err
	}
	core.EventSystemInitialize()
	core.MetricsInitialize()

	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)

	if err := e.platform.Startup(e.config.Name,
		e.config.Window.StartPosX,
		e.config.Window.StartPosY,
		e.config.Window.StartWidth,
		e.config.Window.StartHeight); err != nil {
		return err
	}

	fbWidth, fbHeight := e.platform.FramebufferSize()
	e.width, e.height = fbWidth, fbHeight
	e.transform = scene.NewTransform(fbWidth, fbHeight)

	e.lighting = scene.NewLightingParameters()
	if e.config.Stages.Texture {
		e.lighting.ObjectColor = mgl32.Vec3{1, 1, 1}
		e.palette = scene.TintPalette()
	} else {
		e.palette = scene.LitPalette()
	}

	device := opengl.NewDevice()
	cc := e.config.ClearColor
	e.renderer = renderer.New(device, e.config.Stages, [4]float32{cc.R, cc.G, cc.B, cc.A})
	if err := e.renderer.Initialize(); err != nil {
		e.platform.Shutdown()
		return err
	}
	e.renderer.Resized(fbWidth, fbHeight)

	core.LogInfo("Pipeline initialized: color=%t texture=%t lighting=%t rotation=%t",
		e.config.Stages.Color, e.config.Stages.Texture, e.config.Stages.Lighting, e.config.Stages.Rotation)

	e.currentStage = EngineStageInitialized
	return nil
}

// Run drives the render loop until a close is requested by the window or the
// Escape key, then releases every owned resource.
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return nil
	}
	e.currentStage = EngineStageRunning
	e.isRunning = true

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()
	lastFPSLog := e.lastTime

	for e.isRunning {
		e.platform.PollEvents()

		if e.platform.ShouldClose() {
			e.isRunning = false
			break
		}

		// Level-triggered color selection: a held key reapplies its color
		// every frame, and releasing it does not restore anything.
		e.palette.Apply(core.InputIsKeyDown, e.lighting)

		e.renderer.DrawFrame(e.transform, e.lighting)

		e.platform.SwapBuffers()

		e.clock.Update()
		currentTime := e.clock.Elapsed()
		core.MetricsUpdate(currentTime - e.lastTime)
		e.lastTime = currentTime
		if currentTime-lastFPSLog >= 1.0 {
			fps, frameTime := core.MetricsFrame()
			core.LogDebug("fps=%.0f frame=%.2fms angle=%.2frad", fps, frameTime, e.transform.RotationAngle())
			lastFPSLog = currentTime
		}

		// Input state copying is the last thing to happen before the frame
		// ends.
		core.InputUpdate()
	}

	return e.Shutdown()
}

// Shutdown releases renderer resources, then the platform and subsystems.
// Idempotent: released and never-created handles are safe no-ops.
func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageTerminated {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	if e.renderer != nil {
		e.renderer.Shutdown()
	}
	if err := e.platform.Shutdown(); err != nil {
		return err
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}

	e.currentStage = EngineStageTerminated
	core.LogInfo("Engine terminated.")
	return nil
}

func (e *Engine) onEvent(context core.EventContext) {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		e.platform.RequestClose()
	}
}

func (e *Engine) onKey(context core.EventContext) {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}

	if ke.KeyCode == core.KEY_ESCAPE {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
	}
}

func (e *Engine) onResized(context core.EventContext) {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}

	width := se.WindowWidth
	height := se.WindowHeight
	if width == e.width && height == e.height {
		return
	}
	e.width = width
	e.height = height

	// Minimized; keep the old projection until the window comes back.
	if width == 0 || height == 0 {
		return
	}

	core.LogDebug("Framebuffer resize: %d, %d", width, height)
	e.transform.SetViewport(width, height)
	e.renderer.Resized(width, height)
}
