// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/stretchr/testify/assert"
)

// blockingWorker waits for cancellation and counts how often it ran.
func blockingWorker(runs *atomic.Int32) Worker {
	return WorkerFunc(func(ctx context.Context) error {
		runs.Add(1)
		<-ctx.Done()
		return nil
	})
}

func runWithTimeout(t *testing.T, ws *Workers, ctx context.Context) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop")
		return nil
	}
}

func TestWorkers_Run_FirstReturnStopsOthers(t *testing.T) {
	var runs atomic.Int32
	ws := NewWorkers(logger.Nop())
	ws.Add("blocking-1", blockingWorker(&runs))
	ws.Add("blocking-2", blockingWorker(&runs))
	ws.Add("quick", WorkerFunc(func(context.Context) error { return nil }))

	err := runWithTimeout(t, ws, context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int32(2), runs.Load())
}

func TestWorkers_Run_ReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	var runs atomic.Int32

	ws := NewWorkers(logger.Nop())
	ws.Add("blocking", blockingWorker(&runs))
	ws.Add("failing", WorkerFunc(func(context.Context) error { return boom }))

	err := runWithTimeout(t, ws, context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestWorkers_Run_ParentCancel(t *testing.T) {
	var runs atomic.Int32
	ws := NewWorkers(logger.Nop())
	ws.Add("blocking", blockingWorker(&runs))

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	assert.NoError(t, runWithTimeout(t, ws, ctx))
	assert.Equal(t, int32(1), runs.Load())
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	assert.NoError(t, runWithTimeout(t, ws, context.Background()))
}
