package backend

import (
	"context"
	"sync"

	"github.com/atomicstack/pokedex-table/internal/catalog"
)

// Kind represents the type of data emitted by the loader.
type Kind int

const (
	KindListing Kind = iota
	KindRecords
)

func (k Kind) String() string {
	switch k {
	case KindListing:
		return "listing"
	case KindRecords:
		return "records"
	default:
		return "unknown"
	}
}

// Event conveys fetched data or an error from the catalog.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Source is the catalog surface the loader depends on.
type Source interface {
	ListPage(ctx context.Context, limit int) ([]catalog.Summary, error)
	ResolveAll(ctx context.Context, refs []catalog.Summary) ([]catalog.Record, error)
}

// Loader performs the single listing + detail fetch in the background and
// publishes one event per stage. The events channel is closed once the fetch
// finishes or the loader is stopped.
type Loader struct {
	source Source
	limit  int

	ctx    context.Context
	cancel context.CancelFunc

	once   sync.Once
	events chan Event
	wg     sync.WaitGroup
}

// NewLoader prepares a loader; nothing is fetched until Start.
func NewLoader(source Source, limit int) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		source: source,
		limit:  limit,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 2),
	}
}

// Start launches the fetch. Subsequent calls are no-ops.
func (l *Loader) Start() {
	l.once.Do(func() {
		l.wg.Add(1)
		go l.run()
	})
}

// Events returns the channel of loader events.
func (l *Loader) Events() <-chan Event {
	return l.events
}

// Stop cancels any in-flight requests. Results that arrive afterwards are
// dropped.
func (l *Loader) Stop() {
	l.cancel()
}

// Wait blocks until the fetch goroutine has exited.
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) run() {
	defer l.wg.Done()
	defer close(l.events)

	refs, err := l.source.ListPage(l.ctx, l.limit)
	if !l.emit(Event{Kind: KindListing, Data: refs, Err: err}) || err != nil {
		return
	}
	records, err := l.source.ResolveAll(l.ctx, refs)
	l.emit(Event{Kind: KindRecords, Data: records, Err: err})
}

func (l *Loader) emit(evt Event) bool {
	if l.ctx.Err() != nil {
		return false
	}
	select {
	case <-l.ctx.Done():
		return false
	case l.events <- evt:
		return true
	}
}
