package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type fakeDeleter struct {
	calls   atomic.Int32
	removed int
	err     error
}

func (f *fakeDeleter) DeleteExpired(context.Context) (int, error) {
	f.calls.Add(1)
	return f.removed, f.err
}

// syncBuffer guards a bytes.Buffer written from the cleaner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStartExpiryCleaner_Success(t *testing.T) {
	store := &fakeDeleter{removed: 2}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	StartExpiryCleaner(ctx, store, 10*time.Millisecond, zap.NewNop())

	time.Sleep(100 * time.Millisecond)
	cancel()

	if store.calls.Load() == 0 {
		t.Error("expected DeleteExpired to be called at least once")
	}
}

func TestStartExpiryCleaner_ErrorLogged(t *testing.T) {
	store := &fakeDeleter{err: errors.New("store fail")}

	var buf syncBuffer
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(&buf),
		zapcore.ErrorLevel,
	)
	logger := zap.New(core)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	StartExpiryCleaner(ctx, store, 10*time.Millisecond, logger)

	time.Sleep(100 * time.Millisecond)
	cancel()

	out := buf.String()
	if !strings.Contains(out, "failed to clean expired sessions") {
		t.Errorf("expected error log, got:\n%s", out)
	}
}

func TestStartExpiryCleaner_CancelBeforeTicker(t *testing.T) {
	store := &fakeDeleter{}
	ctx, cancel := context.WithCancel(context.Background())

	StartExpiryCleaner(ctx, store, 100*time.Millisecond, zap.NewNop())
	cancel()

	time.Sleep(150 * time.Millisecond)

	if n := store.calls.Load(); n != 0 {
		t.Errorf("expected no DeleteExpired calls after cancel, got %d", n)
	}
}
