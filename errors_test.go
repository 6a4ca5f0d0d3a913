package mpsc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendError_Error(t *testing.T) {
	se := &SendError[string]{Value: "x", Err: ErrFull}
	assert.Equal(t, "send failed: mpsc: channel is full", se.Error())
	assert.Equal(t, ErrFull, se.Unwrap())
}

func TestIsFullIsClosed(t *testing.T) {
	full := &SendError[int]{Value: 1, Err: ErrFull}
	closed := &SendError[int]{Value: 2, Err: ErrClosed}

	tests := []struct {
		name       string
		err        error
		wantFull   bool
		wantClosed bool
	}{
		{name: "nil error"},
		{name: "standard error", err: errors.New("standard")},
		{name: "full", err: full, wantFull: true},
		{name: "closed", err: closed, wantClosed: true},
		{name: "bare sentinel", err: ErrClosed, wantClosed: true},
		{name: "wrapped full", err: fmt.Errorf("wrapped: %w", full), wantFull: true},
		{name: "joined", err: errors.Join(errors.New("other"), closed), wantClosed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFull, IsFull(tt.err))
			assert.Equal(t, tt.wantClosed, IsClosed(tt.err))
		})
	}
}

func TestValueOf(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &SendError[string]{Value: "payload", Err: ErrFull})

	v, ok := ValueOf[string](err)
	assert.True(t, ok)
	assert.Equal(t, "payload", v)

	_, ok = ValueOf[int](err)
	assert.False(t, ok, "value type must match")

	_, ok = ValueOf[string](ErrFull)
	assert.False(t, ok)

	_, ok = ValueOf[string](nil)
	assert.False(t, ok)
}
