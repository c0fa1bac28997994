package core

import "sync"

type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01
	// Keyboard key pressed.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02
	// Keyboard key released.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03
	// The window framebuffer was resized.
	EVENT_CODE_RESIZED EventCode = 0x04

	MAX_MESSAGE_CODES = 0x10
)

type KeyEvent struct {
	KeyCode KeyCode
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type EventContext struct {
	Type EventCode
	Data interface{}
}

type OnEventCallback func(context EventContext)

type eventSystemState struct {
	registered [MAX_MESSAGE_CODES][]OnEventCallback
}

var onceEvents sync.Once
var eventState *eventSystemState = nil

func EventSystemInitialize() bool {
	onceEvents.Do(func() {
		eventState = &eventSystemState{}
	})
	LogInfo("Event subsystem initialized.")
	return true
}

func EventSystemShutdown() error {
	if eventState != nil {
		for i := range eventState.registered {
			eventState.registered[i] = nil
		}
	}
	return nil
}

func EventRegister(code EventCode, callback OnEventCallback) bool {
	if eventState == nil {
		return false
	}
	eventState.registered[code] = append(eventState.registered[code], callback)
	return true
}

// EventFire dispatches the event to every listener registered for its code,
// inline on the calling thread. The whole engine is single-threaded, so
// listeners run before the current frame step continues.
func EventFire(context EventContext) bool {
	if eventState == nil {
		return false
	}
	listeners := eventState.registered[context.Type]
	for _, callback := range listeners {
		callback(context)
	}
	return len(listeners) > 0
}
