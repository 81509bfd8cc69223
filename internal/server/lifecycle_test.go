package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycle(t *testing.T) {
	l := NewLifecycle()
	assert.Equal(t, StateUninitialized, l.State())
	assert.False(t, l.Ready())

	assert.True(t, l.Advance(StateSchemaReady))
	assert.True(t, l.Advance(StateSeeded))
	assert.False(t, l.Advance(StateSchemaReady), "cannot move backwards")
	assert.False(t, l.Advance(StateSeeded), "cannot stay put")
	assert.Equal(t, StateSeeded, l.State())

	assert.True(t, l.Advance(StateServing))
	assert.True(t, l.Ready())
}

func TestStateString(t *testing.T) {
	tc := map[State]string{
		StateUninitialized: "uninitialized",
		StateSchemaReady:   "schema_ready",
		StateSeeded:        "seeded",
		StateServing:       "serving",
		State(42):          "unknown",
	}
	for state, want := range tc {
		assert.Equal(t, want, state.String())
	}
}
