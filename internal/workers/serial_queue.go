// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync"

	"github.com/MKhiriev/til-client/internal/logger"
)

// SerialQueue executes submitted tasks one at a time, in submission order,
// on a single goroutine. Submit never blocks, so a task may submit further
// tasks. Tasks submitted before Run are held and executed once the queue
// starts.
type SerialQueue struct {
	wake   chan struct{}
	done   chan struct{}
	logger *logger.Logger

	mu      sync.Mutex
	pending []func()
	stopped bool

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewSerialQueue creates a stopped queue with room for size pending tasks
// before it grows.
func NewSerialQueue(size int, log *logger.Logger) *SerialQueue {
	if size < 0 {
		size = 0
	}
	return &SerialQueue{
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		logger:  log,
		pending: make([]func(), 0, size),
	}
}

// Run implements [Worker]. It starts the executing goroutine and returns.
// Calling Run more than once has no effect.
func (q *SerialQueue) Run() {
	q.startOnce.Do(func() {
		go q.loop()
	})
}

func (q *SerialQueue) loop() {
	defer close(q.done)
	for {
		q.mu.Lock()
		batch := q.pending
		q.pending = nil
		stopped := q.stopped
		q.mu.Unlock()

		for _, task := range batch {
			q.execute(task)
		}

		switch {
		case len(batch) > 0:
			continue
		case stopped:
			return
		}
		<-q.wake
	}
}

func (q *SerialQueue) execute(task func()) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error().Interface("panic", r).Msg("serial queue task panicked")
		}
	}()
	task()
}

func (q *SerialQueue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Submit enqueues task and reports false if the queue has been stopped.
func (q *SerialQueue) Submit(task func()) bool {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return false
	}
	q.pending = append(q.pending, task)
	q.mu.Unlock()

	q.signal()
	return true
}

// Sync blocks until every task submitted before the call has run. It
// returns immediately on a stopped queue. Calling it from a task deadlocks.
func (q *SerialQueue) Sync() {
	reached := make(chan struct{})
	if !q.Submit(func() { close(reached) }) {
		return
	}
	<-reached
}

// Stop implements [Stopper]. Pending tasks are drained before Stop returns;
// later submissions are rejected.
func (q *SerialQueue) Stop() {
	q.stopOnce.Do(func() {
		q.mu.Lock()
		q.stopped = true
		q.mu.Unlock()

		q.signal()
		q.Run()
		<-q.done
	})
}
