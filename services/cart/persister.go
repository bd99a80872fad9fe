package cart

import (
	"context"
	"sync"
	"time"

	"github.com/MarcGrol/grocerystore/lib/mykv"
	"github.com/MarcGrol/grocerystore/lib/mylog"
	"github.com/MarcGrol/grocerystore/lib/mymetrics"
)

const (
	writeTimeout  = 5 * time.Second
	minRetryDelay = 500 * time.Millisecond
	maxRetryDelay = 30 * time.Second
)

// Persister is an Observer that writes cart snapshots to a KV store in the background.
// Only the latest unwritten snapshot is kept; intermediate ones are skipped. A failed
// background write is retried with exponential backoff.
type Persister struct {
	store      mykv.Store
	logger     mylog.Logger
	retryDelay time.Duration

	pendingMutex sync.Mutex
	pending      *Cart

	// held while taking the pending snapshot and writing it, so writes never overtake
	// each other
	writeMutex sync.Mutex

	wakeup    chan struct{}
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

func NewPersister(store mykv.Store, logger mylog.Logger) *Persister {
	return newPersister(store, logger, minRetryDelay)
}

func newPersister(store mykv.Store, logger mylog.Logger, retryDelay time.Duration) *Persister {
	p := &Persister{
		store:      store,
		logger:     logger,
		retryDelay: retryDelay,
		wakeup:     make(chan struct{}, 1),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *Persister) OnCartChanged(c context.Context, mutation Mutation, cart Cart) {
	p.pendingMutex.Lock()
	p.pending = &cart
	p.pendingMutex.Unlock()

	select {
	case p.wakeup <- struct{}{}:
	default:
		// writer already signalled
	}
}

func (p *Persister) run() {
	defer close(p.stopped)

	var retry <-chan time.Time
	delay := p.retryDelay
	for {
		select {
		case <-p.wakeup:
		case <-retry:
		case <-p.done:
			return
		}

		err := p.writePending(context.Background())
		if err != nil {
			p.logger.Log(context.Background(), StorageKey, mylog.SeverityWarn, "Retrying cart snapshot in %s", delay)
			retry = time.After(delay)
			delay = min(2*delay, maxRetryDelay)
			continue
		}
		retry = nil
		delay = p.retryDelay
	}
}

// Flush synchronously writes the pending snapshot, if any.
func (p *Persister) Flush(c context.Context) error {
	return p.writePending(c)
}

// Close stops the background writer and flushes what is still pending.
func (p *Persister) Close() error {
	var err error
	p.closeOnce.Do(func() {
		close(p.done)
		<-p.stopped
		err = p.writePending(context.Background())
	})
	return err
}

func (p *Persister) takePending() *Cart {
	p.pendingMutex.Lock()
	defer p.pendingMutex.Unlock()

	cart := p.pending
	p.pending = nil
	return cart
}

// restorePending puts a failed snapshot back unless a newer one arrived meanwhile.
func (p *Persister) restorePending(cart *Cart) {
	p.pendingMutex.Lock()
	defer p.pendingMutex.Unlock()

	if p.pending == nil {
		p.pending = cart
	}
}

func (p *Persister) writePending(c context.Context) error {
	p.writeMutex.Lock()
	defer p.writeMutex.Unlock()

	cart := p.takePending()
	if cart == nil {
		return nil
	}

	data, err := encodeCart(*cart)
	if err != nil {
		p.logger.Log(c, StorageKey, mylog.SeverityError, "Error serializing cart snapshot: %s", err)
		mymetrics.CartPersistFailuresTotal.Inc()
		return err
	}

	ctx, cancel := context.WithTimeout(c, writeTimeout)
	defer cancel()

	err = p.store.Put(ctx, StorageKey, data)
	if err != nil {
		p.logger.Log(c, StorageKey, mylog.SeverityError, "Error persisting cart snapshot: %s", err)
		mymetrics.CartPersistFailuresTotal.Inc()
		p.restorePending(cart)
		return err
	}

	p.logger.Log(c, StorageKey, mylog.SeverityDebug, "Persisted cart with %d line items", len(cart.Items))
	return nil
}
