package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFireDispatchesSynchronously(t *testing.T) {
	require.True(t, EventSystemInitialize())
	t.Cleanup(func() { EventSystemShutdown() })

	fired := 0
	EventRegister(EVENT_CODE_APPLICATION_QUIT, func(ctx EventContext) {
		fired++
	})

	// Dispatch happens inline; by the time EventFire returns every listener
	// has run.
	assert.True(t, EventFire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT}))
	assert.Equal(t, 1, fired)
}

func TestEventFireWithoutListeners(t *testing.T) {
	require.True(t, EventSystemInitialize())
	t.Cleanup(func() { EventSystemShutdown() })

	assert.False(t, EventFire(EventContext{Type: EVENT_CODE_RESIZED}))
}

func TestEventMultipleListeners(t *testing.T) {
	require.True(t, EventSystemInitialize())
	t.Cleanup(func() { EventSystemShutdown() })

	var order []string
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) { order = append(order, "first") })
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) { order = append(order, "second") })

	EventFire(EventContext{Type: EVENT_CODE_KEY_PRESSED, Data: &KeyEvent{KeyCode: KEY_A}})
	assert.Equal(t, []string{"first", "second"}, order)
}
