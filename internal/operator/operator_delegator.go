package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/roi-server/internal/operator/actions"
)

// ErrStopped is returned by Process once the delegator has been stopped.
var ErrStopped = errors.New("operator: delegator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	storage    WriterSource
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
	stopMutex  sync.RWMutex
	stopped    bool
}

func NewOperatorDelegator(s WriterSource, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		storage:    s,
		queue:      make(chan ActionItem, 1000),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queue and waits for in-flight actions to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.stopMutex.Lock()
		d.stopped = true
		close(d.queue)
		d.stopMutex.Unlock()
		d.wg.Wait()
	})
}

// Process runs action in a transaction on one of the workers and waits for the result.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.stopMutex.RLock()
	defer d.stopMutex.RUnlock()

	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
