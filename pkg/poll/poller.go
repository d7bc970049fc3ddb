package poll

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/oadr3-protocol/oadr3-go/pkg/client"
	"github.com/oadr3-protocol/oadr3-go/pkg/model"
)

// Poller errors.
var (
	ErrMissingLister  = errors.New("missing event lister")
	ErrMissingHandler = errors.New("missing handler")
	ErrAlreadyRunning = errors.New("poller already running")
)

// Default polling intervals.
const (
	DefaultInterval      = 30 * time.Second
	DefaultErrorInterval = 2 * time.Minute
)

// EventLister is the slice of the VTN client a Poller needs. *client.Client
// satisfies it.
type EventLister interface {
	ListAllEvents(ctx context.Context, filter client.EventFilter) ([]model.Event, error)
}

// Handler receives event changes. Calls arrive from the poll goroutine,
// one at a time.
type Handler interface {
	// OnEventCreated is called for events seen for the first time,
	// including all events present on the initial poll.
	OnEventCreated(event model.Event)

	// OnEventModified is called when a known event's
	// modificationDateTime advances or its content changes.
	OnEventModified(event model.Event)

	// OnEventDeleted is called when a previously seen event disappears
	// from the VTN, which covers both deletion and cancellation.
	OnEventDeleted(event model.Event)
}

// HandlerFuncs adapts plain functions to the Handler interface. Nil
// fields drop the corresponding change kind.
type HandlerFuncs struct {
	Created  func(model.Event)
	Modified func(model.Event)
	Deleted  func(model.Event)
}

var _ Handler = HandlerFuncs{}

func (h HandlerFuncs) OnEventCreated(e model.Event) {
	if h.Created != nil {
		h.Created(e)
	}
}

func (h HandlerFuncs) OnEventModified(e model.Event) {
	if h.Modified != nil {
		h.Modified(e)
	}
}

func (h HandlerFuncs) OnEventDeleted(e model.Event) {
	if h.Deleted != nil {
		h.Deleted(e)
	}
}

// Config holds the settings for a Poller.
type Config struct {
	// Lister lists events, usually a *client.Client.
	Lister EventLister

	// Handler receives the detected changes.
	Handler Handler

	// Filter narrows which events are watched. Its Page is managed by
	// the poller.
	Filter client.EventFilter

	// Interval between successful polls. Defaults to DefaultInterval.
	Interval time.Duration

	// ErrorInterval between polls after a failure. Defaults to
	// DefaultErrorInterval.
	ErrorInterval time.Duration

	// Logger for poll failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// Poller watches a program's events and dispatches changes.
type Poller struct {
	lister        EventLister
	handler       Handler
	filter        client.EventFilter
	interval      time.Duration
	errorInterval time.Duration
	logger        *slog.Logger

	mu      sync.Mutex
	running bool
	known   map[model.ObjectID]model.Event
}

// New creates a Poller.
func New(cfg Config) (*Poller, error) {
	if cfg.Lister == nil {
		return nil, ErrMissingLister
	}
	if cfg.Handler == nil {
		return nil, ErrMissingHandler
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.ErrorInterval <= 0 {
		cfg.ErrorInterval = DefaultErrorInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Poller{
		lister:        cfg.Lister,
		handler:       cfg.Handler,
		filter:        cfg.Filter,
		interval:      cfg.Interval,
		errorInterval: cfg.ErrorInterval,
		logger:        cfg.Logger,
		known:         make(map[model.ObjectID]model.Event),
	}, nil
}

// Run polls until the context is canceled. The first poll happens
// immediately. Only one Run may be active per Poller.
func (p *Poller) Run(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return ErrAlreadyRunning
	}
	p.running = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()
	}()

	for {
		delay := p.interval
		if err := p.PollOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.logger.Warn("event poll failed", "error", err)
			delay = p.errorInterval
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// PollOnce lists the watched events once and dispatches the changes
// against the previous snapshot.
func (p *Poller) PollOnce(ctx context.Context) error {
	events, err := p.lister.ListAllEvents(ctx, p.filter)
	if err != nil {
		return err
	}

	created, modified, deleted := p.diff(events)
	for _, e := range created {
		p.handler.OnEventCreated(e)
	}
	for _, e := range modified {
		p.handler.OnEventModified(e)
	}
	for _, e := range deleted {
		p.handler.OnEventDeleted(e)
	}
	return nil
}

// Reset forgets the snapshot, so the next poll reports every event as
// created again.
func (p *Poller) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.known = make(map[model.ObjectID]model.Event)
}

// diff updates the snapshot and returns the changes. Events without an ID
// cannot be tracked and are skipped.
func (p *Poller) diff(events []model.Event) (created, modified, deleted []model.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	seen := make(map[model.ObjectID]struct{}, len(events))
	for _, e := range events {
		if e.ID == "" {
			continue
		}
		seen[e.ID] = struct{}{}

		prev, ok := p.known[e.ID]
		switch {
		case !ok:
			created = append(created, e)
		case changed(prev, e):
			modified = append(modified, e)
		}
		p.known[e.ID] = e
	}

	for id, e := range p.known {
		if _, ok := seen[id]; !ok {
			deleted = append(deleted, e)
			delete(p.known, id)
		}
	}
	return created, modified, deleted
}

// changed reports whether an event differs from its previous snapshot.
// The modificationDateTime is authoritative when both sides carry one.
func changed(prev, cur model.Event) bool {
	if prev.ModificationDateTime != nil && cur.ModificationDateTime != nil {
		return !prev.ModificationDateTime.Equal(*cur.ModificationDateTime)
	}
	return !prev.Equivalent(cur)
}
