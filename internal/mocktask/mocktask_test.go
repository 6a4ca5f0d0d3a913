package mocktask

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskNotified(t *testing.T) {
	task := New()
	assert.False(t, task.IsNotified())

	task.Wake()
	task.Wake()
	assert.True(t, task.IsNotified())
	assert.False(t, task.IsNotified(), "IsNotified clears the flag")
	assert.Equal(t, int64(2), task.Count())
}

func TestTaskConcurrentWake(t *testing.T) {
	task := New()

	var wg sync.WaitGroup
	wg.Add(10)
	for range 10 {
		go func() {
			defer wg.Done()
			task.Wake()
		}()
	}
	wg.Wait()

	assert.True(t, task.IsNotified())
	assert.Equal(t, int64(10), task.Count())
}
