package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/roi-server/internal/storage"
)

type recordingTx struct {
	mutex     sync.Mutex
	commits   int
	rollbacks int
	commitErr error
}

func (r *recordingTx) Commit() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.commits++
	return r.commitErr
}

func (r *recordingTx) Rollback() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.rollbacks++
	return nil
}

type fakeWriterSource struct {
	tx      *recordingTx
	openErr error
}

func (f *fakeWriterSource) Write(ctx context.Context) (*storage.Writer, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return storage.NewWriterWithTables(f.tx, nil, nil), nil
}

type funcAction func(ctx context.Context, writer *storage.Writer) error

func (f funcAction) Perform(ctx context.Context, writer *storage.Writer) error {
	return f(ctx, writer)
}

func startDelegator(t *testing.T, source WriterSource, workers int) *OperatorDelegator {
	t.Helper()
	d := NewOperatorDelegator(source, workers)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_CommitsOnSuccess(t *testing.T) {
	tx := &recordingTx{}
	d := startDelegator(t, &fakeWriterSource{tx: tx}, 2)

	var ran bool
	err := d.Process(context.Background(), funcAction(func(ctx context.Context, writer *storage.Writer) error {
		ran = true
		return nil
	}))

	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
}

func TestProcess_RollsBackOnActionError(t *testing.T) {
	tx := &recordingTx{}
	d := startDelegator(t, &fakeWriterSource{tx: tx}, 1)

	err := d.Process(context.Background(), funcAction(func(ctx context.Context, writer *storage.Writer) error {
		return errors.New("insert failed")
	}))

	assert.EqualError(t, err, "insert failed")
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestProcess_CommitError(t *testing.T) {
	tx := &recordingTx{commitErr: errors.New("serialization failure")}
	d := startDelegator(t, &fakeWriterSource{tx: tx}, 1)

	err := d.Process(context.Background(), funcAction(func(ctx context.Context, writer *storage.Writer) error {
		return nil
	}))

	assert.EqualError(t, err, "serialization failure")
}

func TestProcess_WriterOpenError(t *testing.T) {
	d := startDelegator(t, &fakeWriterSource{openErr: errors.New("connection refused")}, 1)

	err := d.Process(context.Background(), funcAction(func(ctx context.Context, writer *storage.Writer) error {
		t.Fatal("action must not run without a writer")
		return nil
	}))

	assert.EqualError(t, err, "connection refused")
}

func TestProcess_ContextCancelled(t *testing.T) {
	tx := &recordingTx{}
	d := startDelegator(t, &fakeWriterSource{tx: tx}, 1)

	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	// Occupy the only worker so the next item waits in the queue.
	go func() {
		_ = d.Process(context.Background(), funcAction(func(ctx context.Context, writer *storage.Writer) error {
			close(started)
			<-release
			return nil
		}))
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Process(ctx, funcAction(func(ctx context.Context, writer *storage.Writer) error {
		return nil
	}))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProcess_ConcurrentCallers(t *testing.T) {
	tx := &recordingTx{}
	d := startDelegator(t, &fakeWriterSource{tx: tx}, 4)

	var performed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := d.Process(context.Background(), funcAction(func(ctx context.Context, writer *storage.Writer) error {
				performed.Add(1)
				return nil
			}))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(50), performed.Load())
	assert.Equal(t, 50, tx.commits)
}

func TestProcess_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(&fakeWriterSource{tx: &recordingTx{}}, 1)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), funcAction(func(ctx context.Context, writer *storage.Writer) error {
		return nil
	}))

	assert.ErrorIs(t, err, ErrStopped)
}

func TestNewOperatorDelegator_AtLeastOneWorker(t *testing.T) {
	d := NewOperatorDelegator(&fakeWriterSource{}, 0)
	assert.Equal(t, 1, d.numWorkers)
}
