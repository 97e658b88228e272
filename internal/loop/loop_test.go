package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunPendingOrdersNestedPosts(t *testing.T) {
	l := New()
	var order []string

	l.Post(func() {
		order = append(order, "a")
		l.Post(func() { order = append(order, "a-deferred") })
	})
	l.Post(func() { order = append(order, "b") })

	require.Equal(t, 3, l.RunPending())
	require.Equal(t, []string{"a", "b", "a-deferred"}, order)
	require.Zero(t, l.Pending())
}

func TestPanickingTaskDoesNotStopQueue(t *testing.T) {
	l := New()
	ran := false

	l.Post(func() { panic("boom") })
	l.Post(func() { ran = true })

	require.Equal(t, 2, l.RunPending())
	require.True(t, ran)
}

func TestRunAndDo(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()

	value := 0
	require.NoError(t, l.Do(context.Background(), func() { value = 42 }))
	require.Equal(t, 42, value)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}

	require.ErrorIs(t, l.Do(context.Background(), func() {}), ErrLoopStopped)
}

func TestDoHonorsContext(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Nobody drains the loop, so only the context can end the wait.
	require.ErrorIs(t, l.Do(ctx, func() {}), context.Canceled)
}

func TestRunRejectsRestart(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, l.Run(ctx))
	require.ErrorIs(t, l.Run(context.Background()), ErrLoopStopped)
}

func TestDoReturnsWhenLoopStops(t *testing.T) {
	for i := 0; i < 200; i++ {
		l := New()
		ctx, cancel := context.WithCancel(context.Background())

		runErr := make(chan error, 1)
		go func() { runErr <- l.Run(ctx) }()
		cancel()

		doCtx, doCancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := l.Do(doCtx, func() {})
		doCancel()

		// Either the task ran before the loop stopped or Do saw the stop.
		if err != nil {
			require.ErrorIs(t, err, ErrLoopStopped)
		}
		require.NoError(t, <-runErr)
	}
}

func TestDoQueuedBehindStopReturns(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	release := make(chan struct{})
	l.Post(func() {
		close(started)
		<-release
	})

	runErr := make(chan error, 1)
	go func() { runErr <- l.Run(ctx) }()
	<-started

	doErr := make(chan error, 1)
	go func() { doErr <- l.Do(context.Background(), func() {}) }()
	require.Eventually(t, func() bool { return l.Pending() == 1 }, time.Second, time.Millisecond)

	cancel()
	close(release)

	select {
	case err := <-doErr:
		if err != nil {
			require.ErrorIs(t, err, ErrLoopStopped)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Do did not return after the loop stopped")
	}
	require.NoError(t, <-runErr)
}
