package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetInput(t *testing.T) {
	require.NoError(t, InputInitialize())
	inputState.KeyboardCurrent = KeyboardState{}
	inputState.KeyboardPrevious = KeyboardState{}
}

func TestKeyStateIsLevelTriggered(t *testing.T) {
	resetInput(t)

	require.NoError(t, InputProcessKey(KEY_R, true))
	// The key stays down across any number of frames until released.
	for frame := 0; frame < 3; frame++ {
		assert.True(t, InputIsKeyDown(KEY_R), "frame %d", frame)
		require.NoError(t, InputUpdate())
	}

	require.NoError(t, InputProcessKey(KEY_R, false))
	assert.False(t, InputIsKeyDown(KEY_R))
	assert.True(t, InputWasKeyDown(KEY_R))
}

func TestInputUpdateCopiesCurrentToPrevious(t *testing.T) {
	resetInput(t)

	require.NoError(t, InputProcessKey(KEY_G, true))
	assert.True(t, InputIsKeyDown(KEY_G))
	assert.False(t, InputWasKeyDown(KEY_G))

	require.NoError(t, InputUpdate())
	assert.True(t, InputWasKeyDown(KEY_G))
}

func TestInputQueriesBeforeInitialization(t *testing.T) {
	resetInput(t)
	require.NoError(t, InputShutdown())

	assert.False(t, InputIsKeyDown(KEY_R))
	assert.True(t, InputIsKeyUp(KEY_R))
	assert.False(t, InputWasKeyDown(KEY_R))
	assert.True(t, InputWasKeyUp(KEY_R))
}

func TestInputProcessKeyFiresEvents(t *testing.T) {
	resetInput(t)
	require.True(t, EventSystemInitialize())
	t.Cleanup(func() { EventSystemShutdown() })

	var pressed, released []KeyCode
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) {
		pressed = append(pressed, ctx.Data.(*KeyEvent).KeyCode)
	})
	EventRegister(EVENT_CODE_KEY_RELEASED, func(ctx EventContext) {
		released = append(released, ctx.Data.(*KeyEvent).KeyCode)
	})

	require.NoError(t, InputProcessKey(KEY_B, true))
	// A repeated press is not a state change and fires nothing.
	require.NoError(t, InputProcessKey(KEY_B, true))
	require.NoError(t, InputProcessKey(KEY_B, false))

	assert.Equal(t, []KeyCode{KEY_B}, pressed)
	assert.Equal(t, []KeyCode{KEY_B}, released)
}
