// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
)

func TestDisabledReturnsStubs(t *testing.T) {
	Init(false)
	c := NewCounter("test/disabled/counter")
	c.Inc(3)
	assert.Equal(t, int64(0), c.Count())
	assert.Nil(t, metrics.DefaultRegistry.Get("test/disabled/counter"))

	m := NewMeter("test/disabled/meter")
	m.Mark(1)
	assert.Equal(t, int64(0), m.Count())
	tm := NewTimer("test/disabled/timer")
	tm.Update(time.Second)
	assert.Equal(t, int64(0), tm.Count())
}

func TestEnabledRegisters(t *testing.T) {
	Init(true)
	defer Init(false)

	c := NewCounter("test/enabled/counter")
	c.Inc(2)
	assert.Equal(t, int64(2), NewCounter("test/enabled/counter").Count())
	NewTimer("test/enabled/timer").Update(time.Millisecond)

	var buf bytes.Buffer
	WriteOnce(&buf)
	assert.Contains(t, buf.String(), "counter test/enabled/counter")
	assert.Contains(t, buf.String(), "timer test/enabled/timer")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		CollectProcessMetrics(ctx, time.Millisecond)
		close(done)
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()
	<-done
	assert.NotNil(t, metrics.DefaultRegistry.Get("system/memory/allocs"))
}
