package formctl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"srs-intake-be/internal/pkg/logger"
	"srs-intake-be/pkg/domain"
	"srs-intake-be/pkg/srsclient"
	"srs-intake-be/pkg/srsform"
)

const moduleName = "FORMCTL"

// SubmitButtonID is the surface id of the form's submit button.
const SubmitButtonID = "submitBtn"

var ErrUnknownButton = errors.New("unknown enhance button")

// Remote is the pair of remote calls the controller makes.
type Remote interface {
	Enhance(ctx context.Context, sectionType, userInput string) *srsclient.Task[string]
	Submit(ctx context.Context, payload *srsform.Payload) *srsclient.Task[json.RawMessage]
}

// Button is an "AI Enhance" button bound to a target field.
type Button struct {
	ID          string
	Target      string
	SectionType string

	inFlight atomic.Bool
}

// otherCompanions pairs each checkbox group with its free-text input.
var otherCompanions = map[string]string{
	srsform.GroupTargetUsers:            srsform.FieldTargetUsersCustom,
	srsform.GroupComplianceRequirements: srsform.FieldComplianceCustom,
}

// Controller wires the form's events to the normalization pipeline and the
// remote calls. Handlers and completion callbacks hold the controller lock
// while they touch the surface, so surface access is serialized.
type Controller struct {
	mu sync.Mutex

	surface   Surface
	notifier  Notifier
	remote    Remote
	builder   *srsform.Builder
	presenter *srsform.Presenter
	logger    logger.ILogger

	buttons    map[string]*Button
	submitting atomic.Bool
	dispatcher *Dispatcher
	lastAck    json.RawMessage
}

type Options struct {
	StrictDomainRequired bool
	Registry             *domain.Registry
	Logger               logger.ILogger
}

func NewController(surface Surface, notifier Notifier, remote Remote, opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = logger.NewNopLogger()
	}
	c := &Controller{
		surface:    surface,
		notifier:   notifier,
		remote:     remote,
		builder:    srsform.NewBuilder(opts.StrictDomainRequired),
		presenter:  srsform.NewPresenter(opts.Registry),
		logger:     log,
		buttons:    make(map[string]*Button),
		dispatcher: NewDispatcher(),
	}
	c.dispatcher.On(EventDomainChange, c.handleDomainChange)
	c.dispatcher.On(EventOtherToggle, c.handleOtherToggle)
	c.dispatcher.On(EventEnhanceClick, c.handleEnhance)
	c.dispatcher.On(EventSubmit, c.handleSubmit)
	return c
}

// RegisterButton binds an enhance button to the field it rewrites.
func (c *Controller) RegisterButton(id, target, sectionType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buttons[id] = &Button{ID: id, Target: target, SectionType: sectionType}
}

// On registers an extra handler for an event.
func (c *Controller) On(name string, h HandlerFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatcher.On(name, h)
}

// Dispatch handles one user interaction. Remote calls it issues keep
// running after Dispatch returns; the returned Pending reports when they
// and their UI updates are done.
func (c *Controller) Dispatch(ctx context.Context, ev Event) (*Pending, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatcher.Dispatch(ctx, ev)
}

// LastAck returns the acknowledgement of the last successful submission.
func (c *Controller) LastAck() json.RawMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastAck
}

func (c *Controller) notify(message string) {
	c.notifier.Notify(message)
}

func (c *Controller) handleDomainChange(_ context.Context, ev Event) (*Pending, error) {
	c.presenter.OnDomainChange(c.surface, ev.Value)
	return nil, nil
}

func (c *Controller) handleOtherToggle(_ context.Context, ev Event) (*Pending, error) {
	companion, ok := otherCompanions[ev.Target]
	if !ok {
		return nil, fmt.Errorf("no free-text input paired with group %q", ev.Target)
	}
	if ev.Checked {
		c.surface.SetVisible(companion, true)
		return nil, nil
	}
	c.surface.SetVisible(companion, false)
	c.surface.SetValue(companion, "")
	return nil, nil
}

func (c *Controller) handleEnhance(ctx context.Context, ev Event) (*Pending, error) {
	btn, ok := c.buttons[ev.Target]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownButton, ev.Target)
	}
	if btn.inFlight.Load() {
		// disabled while its own call is pending
		return nil, nil
	}

	input := strings.TrimSpace(c.surface.Value(btn.Target))
	if input == "" {
		c.notify("Please enter some text to enhance first.")
		return nil, nil
	}

	btn.inFlight.Store(true)
	c.surface.SetButtonBusy(btn.ID, true)

	pending := newPending()
	task := c.remote.Enhance(ctx, btn.SectionType, input)
	task.Then(func(content string, err error) {
		c.mu.Lock()
		defer c.mu.Unlock()

		if err != nil {
			c.logger.Error(moduleName, "Enhancement failed", map[string]interface{}{
				"button": btn.ID,
				"error":  err.Error(),
			})
			c.notify(fmt.Sprintf("Failed to enhance content: %s", err.Error()))
		} else {
			c.surface.SetValue(btn.Target, content)
		}

		btn.inFlight.Store(false)
		c.surface.SetButtonBusy(btn.ID, false)
		pending.finish(err)
	})
	return pending, nil
}

func (c *Controller) handleSubmit(ctx context.Context, _ Event) (*Pending, error) {
	if c.submitting.Load() {
		// disabled while the previous submission is pending
		return nil, nil
	}

	payload, err := c.builder.Build(c.surface.FormState())
	if err != nil {
		var verr *srsform.ValidationError
		if errors.As(err, &verr) {
			c.notify(verr.Message)
		}
		c.logger.Warn(moduleName, "Submission rejected", map[string]interface{}{"reason": err.Error()})
		return nil, err
	}

	c.logger.Info(moduleName, "Submitting payload", map[string]interface{}{"summary": payload.Summary()})

	c.submitting.Store(true)
	c.surface.SetButtonBusy(SubmitButtonID, true)

	pending := newPending()
	task := c.remote.Submit(ctx, payload)
	task.Then(func(ack json.RawMessage, err error) {
		c.mu.Lock()
		defer c.mu.Unlock()

		c.submitting.Store(false)
		c.surface.SetButtonBusy(SubmitButtonID, false)

		if err != nil {
			c.logger.Error(moduleName, "Submission failed", map[string]interface{}{"error": err.Error()})
			c.notify(fmt.Sprintf("Failed to generate SRS: %s", err.Error()))
			pending.finish(err)
			return
		}
		c.lastAck = ack
		c.notify("SRS generated successfully!")
		pending.finish(nil)
	})
	return pending, nil
}
