package formctl

import (
	"context"
	"errors"
	"fmt"
)

// Event names the controller handles.
const (
	EventDomainChange = "domain:change"
	EventOtherToggle  = "other:toggle"
	EventEnhanceClick = "enhance:click"
	EventSubmit       = "form:submit"
)

var ErrUnknownEvent = errors.New("no handler registered for event")

// Event is one discrete user interaction.
type Event struct {
	Name string
	// Target is the element the event fired on: a button id for enhance
	// clicks, a checkbox group for "Other" toggles.
	Target  string
	Value   string
	Checked bool
}

// HandlerFunc handles an event. It returns a Pending when it issued a
// remote call, nil otherwise.
type HandlerFunc func(ctx context.Context, ev Event) (*Pending, error)

// Dispatcher routes events to the handlers registered for their name, in
// registration order.
type Dispatcher struct {
	handlers map[string][]HandlerFunc
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]HandlerFunc)}
}

func (d *Dispatcher) On(name string, h HandlerFunc) {
	d.handlers[name] = append(d.handlers[name], h)
}

// Dispatch runs every handler for ev. It stops at the first handler error.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) (*Pending, error) {
	hs, ok := d.handlers[ev.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, ev.Name)
	}
	var pending []*Pending
	for _, h := range hs {
		p, err := h(ctx, ev)
		if p != nil {
			pending = append(pending, p)
		}
		if err != nil {
			return join(pending), err
		}
	}
	return join(pending), nil
}

// Pending tracks a remote call issued by a handler, including the UI
// updates made when it resolves.
type Pending struct {
	done  chan struct{}
	err   error
	parts []*Pending
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func (p *Pending) finish(err error) {
	p.err = err
	close(p.done)
}

func join(ps []*Pending) *Pending {
	switch len(ps) {
	case 0:
		return nil
	case 1:
		return ps[0]
	}
	return &Pending{parts: ps}
}

// Wait blocks until the call and its UI updates are done and returns the
// call's error. A nil Pending is already done.
func (p *Pending) Wait(ctx context.Context) error {
	if p == nil {
		return nil
	}
	if p.parts != nil {
		var errs []error
		for _, part := range p.parts {
			if err := part.Wait(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
