// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/background"
)

type ticker struct {
	started  int32
	ticks    int32
	finished int32
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	atomic.StoreInt32(&state.started, 1)
	delay := args.(time.Duration)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(delay):
			atomic.AddInt32(&state.ticks, 1)
		}
	}
	atomic.StoreInt32(&state.finished, 1)
}

func TestStartStop(t *testing.T) {
	p1 := &ticker{}
	p2 := &ticker{}

	p := background.Start(background.Processes{p1, p2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	for i, s := range []*ticker{p1, p2} {
		assert.Equal(t, int32(1), atomic.LoadInt32(&s.started), "%d: not started", i)
		assert.Equal(t, int32(1), atomic.LoadInt32(&s.finished), "%d: not finished", i)
		assert.True(t, atomic.LoadInt32(&s.ticks) > 0, "%d: never ran", i)
	}

	// a second stop must not block or panic
	p.Stop()
}
