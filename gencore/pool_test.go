package gencore

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolRunsAllJobs(t *testing.T) {
	var count int64
	p := NewPool(4)
	for i := 0; i < 50; i++ {
		p.Submit(func() {
			atomic.AddInt64(&count, 1)
		})
	}
	p.Wait()
	assert.EqualValues(t, 50, count)
}

func TestWorkerCount(t *testing.T) {
	assert.Equal(t, 3, WorkerCount(8, 3))
	assert.Equal(t, 8, WorkerCount(8, 20))
	assert.Equal(t, 0, WorkerCount(8, 0))
}
