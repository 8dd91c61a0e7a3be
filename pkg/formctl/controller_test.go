package formctl

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"srs-intake-be/pkg/srsclient"
	"srs-intake-be/pkg/srsform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enhanceCall struct {
	section string
	input   string
	reply   chan enhanceReply
}

type enhanceReply struct {
	content string
	err     error
}

// fakeRemote lets tests decide when and how each call resolves.
type fakeRemote struct {
	mu        sync.Mutex
	enhances  chan enhanceCall
	submitted []*srsform.Payload
	submitErr error
	// submitGate, when set, holds every submission until it is closed
	submitGate chan struct{}
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{enhances: make(chan enhanceCall, 8)}
}

func (f *fakeRemote) Enhance(ctx context.Context, sectionType, userInput string) *srsclient.Task[string] {
	call := enhanceCall{section: sectionType, input: userInput, reply: make(chan enhanceReply, 1)}
	f.enhances <- call
	return srsclient.Go(ctx, func(ctx context.Context) (string, error) {
		r := <-call.reply
		return r.content, r.err
	})
}

func (f *fakeRemote) Submit(ctx context.Context, payload *srsform.Payload) *srsclient.Task[json.RawMessage] {
	f.mu.Lock()
	f.submitted = append(f.submitted, payload)
	err := f.submitErr
	gate := f.submitGate
	f.mu.Unlock()
	return srsclient.Go(ctx, func(ctx context.Context) (json.RawMessage, error) {
		if gate != nil {
			<-gate
		}
		if err != nil {
			return nil, err
		}
		return json.RawMessage(`{"status":"success"}`), nil
	})
}

func (f *fakeRemote) submissions() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submitted)
}

func setup(t *testing.T, strict bool) (*Controller, *MemorySurface, *MemoryNotifier, *fakeRemote) {
	t.Helper()
	surface := NewMemorySurface(nil)
	notifier := &MemoryNotifier{}
	remote := newFakeRemote()
	c := NewController(surface, notifier, remote, Options{StrictDomainRequired: strict})
	c.RegisterButton("enhance_problem", srsform.FieldProblemStatement, "Problem Statement")
	c.RegisterButton("enhance_features", srsform.FieldCoreFeatures, "Core Features")
	return c, surface, notifier, remote
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSubmitEndToEnd(t *testing.T) {
	c, surface, notifier, remote := setup(t, true)
	ctx := waitCtx(t)

	_, err := c.Dispatch(ctx, Event{Name: EventDomainChange, Value: "Finance"})
	require.NoError(t, err)
	surface.SetValue(srsform.FieldDomain, "Finance")
	surface.Check(srsform.GroupTargetUsers, "Admin")
	surface.SetValue(srsform.FieldAuthor, "Jane Doe")
	surface.SetValue(srsform.FieldCoreFeatures, "- Login\n- Reporting")

	pending, err := c.Dispatch(ctx, Event{Name: EventSubmit})
	require.NoError(t, err)
	require.NoError(t, pending.Wait(ctx))

	require.Equal(t, 1, remote.submissions())
	p := remote.submitted[0]
	assert.Equal(t, "Finance", p.SystemContext.Domain)
	assert.Equal(t, []string{"Jane Doe"}, p.ProjectIdentity.Author)
	assert.Equal(t, []string{"Login", "Reporting"}, p.FunctionalScope.CoreFeatures)
	assert.Equal(t, []string{"SRS generated successfully!"}, notifier.Messages())
	assert.JSONEq(t, `{"status":"success"}`, string(c.LastAck()))
	assert.True(t, surface.Panel().Active)
}

func TestSubmitOtherDomainStrictMakesNoCall(t *testing.T) {
	c, surface, notifier, remote := setup(t, true)
	ctx := waitCtx(t)

	_, err := c.Dispatch(ctx, Event{Name: EventDomainChange, Value: "Other"})
	require.NoError(t, err)
	assert.True(t, surface.Visible(srsform.FieldDomainCustom))

	surface.SetValue(srsform.FieldDomain, "Other")
	surface.Check(srsform.GroupTargetUsers, "Admin")
	surface.SetValue(srsform.FieldAuthor, "Jane Doe")
	surface.SetValue(srsform.FieldCoreFeatures, "Login")

	pending, err := c.Dispatch(ctx, Event{Name: EventSubmit})
	assert.Nil(t, pending)
	assert.True(t, errors.Is(err, srsform.ErrValidation))
	assert.Equal(t, []string{"Please specify the domain"}, notifier.Messages())
	assert.Zero(t, remote.submissions())
}

func TestSubmitValidationOrder(t *testing.T) {
	c, _, notifier, remote := setup(t, true)

	_, err := c.Dispatch(context.Background(), Event{Name: EventSubmit})
	require.Error(t, err)
	assert.Equal(t, []string{"Please select at least one target user"}, notifier.Messages())
	assert.Zero(t, remote.submissions())
}

func TestSubmitFailureKeepsForm(t *testing.T) {
	c, surface, notifier, remote := setup(t, false)
	remote.submitErr = &srsclient.TransportError{Status: 500, Body: "Internal Server Error"}
	ctx := waitCtx(t)

	surface.SetValue(srsform.FieldDomain, "Other")
	surface.Check(srsform.GroupTargetUsers, "Admin")
	surface.SetValue(srsform.FieldAuthor, "Jane Doe")
	surface.SetValue(srsform.FieldCoreFeatures, "Login")
	before := surface.FormState()

	pending, err := c.Dispatch(ctx, Event{Name: EventSubmit})
	require.NoError(t, err)
	err = pending.Wait(ctx)

	var terr *srsclient.TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, []string{"Failed to generate SRS: Server returned 500: Internal Server Error"}, notifier.Messages())
	assert.Equal(t, before, surface.FormState())
	assert.Equal(t, "Other", remote.submitted[0].SystemContext.Domain)
}

func TestSubmitSingleFlight(t *testing.T) {
	c, surface, notifier, remote := setup(t, true)
	gate := make(chan struct{})
	remote.submitGate = gate
	ctx := waitCtx(t)

	surface.SetValue(srsform.FieldDomain, "Finance")
	surface.Check(srsform.GroupTargetUsers, "Operator")
	surface.SetValue(srsform.FieldAuthor, "Jane Doe")
	surface.SetValue(srsform.FieldCoreFeatures, "Metering")

	first, err := c.Dispatch(ctx, Event{Name: EventSubmit})
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, surface.ButtonBusy(SubmitButtonID))

	second, err := c.Dispatch(ctx, Event{Name: EventSubmit})
	require.NoError(t, err)
	assert.Nil(t, second)
	assert.Equal(t, 1, remote.submissions())

	close(gate)
	require.NoError(t, first.Wait(ctx))
	assert.False(t, surface.ButtonBusy(SubmitButtonID))
	assert.Equal(t, []string{"SRS generated successfully!"}, notifier.Messages())

	third, err := c.Dispatch(ctx, Event{Name: EventSubmit})
	require.NoError(t, err)
	require.NoError(t, third.Wait(ctx))
	assert.Equal(t, 2, remote.submissions())
}

func TestSubmitFailureClearsBusy(t *testing.T) {
	c, surface, _, remote := setup(t, true)
	remote.submitErr = &srsclient.TransportError{Status: 502, Body: "Bad Gateway"}
	ctx := waitCtx(t)

	surface.SetValue(srsform.FieldDomain, "Finance")
	surface.Check(srsform.GroupTargetUsers, "Operator")
	surface.SetValue(srsform.FieldAuthor, "Jane Doe")
	surface.SetValue(srsform.FieldCoreFeatures, "Metering")

	pending, err := c.Dispatch(ctx, Event{Name: EventSubmit})
	require.NoError(t, err)
	assert.Error(t, pending.Wait(ctx))
	assert.False(t, surface.ButtonBusy(SubmitButtonID))
}

func TestOtherToggle(t *testing.T) {
	c, surface, _, _ := setup(t, true)
	ctx := context.Background()

	_, err := c.Dispatch(ctx, Event{Name: EventOtherToggle, Target: srsform.GroupTargetUsers, Checked: true})
	require.NoError(t, err)
	assert.True(t, surface.Visible(srsform.FieldTargetUsersCustom))

	surface.SetValue(srsform.FieldTargetUsersCustom, "Auditor")
	_, err = c.Dispatch(ctx, Event{Name: EventOtherToggle, Target: srsform.GroupTargetUsers, Checked: false})
	require.NoError(t, err)
	assert.False(t, surface.Visible(srsform.FieldTargetUsersCustom))
	assert.Equal(t, "", surface.Value(srsform.FieldTargetUsersCustom))

	_, err = c.Dispatch(ctx, Event{Name: EventOtherToggle, Target: "unknown_group", Checked: true})
	assert.Error(t, err)
}

func TestDomainChangeClearsOverride(t *testing.T) {
	c, surface, _, _ := setup(t, true)
	ctx := context.Background()

	_, _ = c.Dispatch(ctx, Event{Name: EventDomainChange, Value: "Other"})
	surface.SetValue(srsform.FieldDomainCustom, "Agriculture")

	_, err := c.Dispatch(ctx, Event{Name: EventDomainChange, Value: "Unlisted"})
	require.NoError(t, err)
	assert.False(t, surface.Visible(srsform.FieldDomainCustom))
	assert.Equal(t, "", surface.Value(srsform.FieldDomainCustom))
	assert.False(t, surface.Panel().Active)
}

func TestEnhanceWritesContent(t *testing.T) {
	c, surface, notifier, remote := setup(t, true)
	ctx := waitCtx(t)
	surface.SetValue(srsform.FieldCoreFeatures, "  login, reports ")

	pending, err := c.Dispatch(ctx, Event{Name: EventEnhanceClick, Target: "enhance_features"})
	require.NoError(t, err)

	call := <-remote.enhances
	assert.Equal(t, "Core Features", call.section)
	assert.Equal(t, "login, reports", call.input)
	assert.True(t, surface.ButtonBusy("enhance_features"))

	call.reply <- enhanceReply{content: "- User login\n- Report generation"}
	require.NoError(t, pending.Wait(ctx))

	assert.Equal(t, "- User login\n- Report generation", surface.Value(srsform.FieldCoreFeatures))
	assert.False(t, surface.ButtonBusy("enhance_features"))
	assert.Empty(t, notifier.Messages())
}

func TestEnhanceSingleFlightPerButton(t *testing.T) {
	c, surface, _, remote := setup(t, true)
	ctx := waitCtx(t)
	surface.SetValue(srsform.FieldCoreFeatures, "login")
	surface.SetValue(srsform.FieldProblemStatement, "slow reports")

	first, err := c.Dispatch(ctx, Event{Name: EventEnhanceClick, Target: "enhance_features"})
	require.NoError(t, err)
	second, err := c.Dispatch(ctx, Event{Name: EventEnhanceClick, Target: "enhance_features"})
	require.NoError(t, err)
	assert.Nil(t, second)

	other, err := c.Dispatch(ctx, Event{Name: EventEnhanceClick, Target: "enhance_problem"})
	require.NoError(t, err)
	require.NotNil(t, other)

	featuresCall := <-remote.enhances
	problemCall := <-remote.enhances
	assert.Equal(t, "Core Features", featuresCall.section)
	assert.Equal(t, "Problem Statement", problemCall.section)

	problemCall.reply <- enhanceReply{content: "Reports are slow."}
	require.NoError(t, other.Wait(ctx))
	assert.True(t, surface.ButtonBusy("enhance_features"))
	assert.False(t, surface.ButtonBusy("enhance_problem"))

	featuresCall.reply <- enhanceReply{content: "- Login"}
	require.NoError(t, first.Wait(ctx))
	assert.False(t, surface.ButtonBusy("enhance_features"))
}

func TestEnhanceFailureNotifies(t *testing.T) {
	c, surface, notifier, remote := setup(t, true)
	ctx := waitCtx(t)
	surface.SetValue(srsform.FieldProblemStatement, "original")

	pending, err := c.Dispatch(ctx, Event{Name: EventEnhanceClick, Target: "enhance_problem"})
	require.NoError(t, err)

	call := <-remote.enhances
	call.reply <- enhanceReply{err: &srsclient.ContractError{Reason: "Enhancement response missing content."}}

	assert.Error(t, pending.Wait(ctx))
	assert.Equal(t, []string{"Failed to enhance content: Enhancement response missing content."}, notifier.Messages())
	assert.Equal(t, "original", surface.Value(srsform.FieldProblemStatement))
	assert.False(t, surface.ButtonBusy("enhance_problem"))
}

func TestEnhanceBlankInput(t *testing.T) {
	c, _, notifier, remote := setup(t, true)

	pending, err := c.Dispatch(context.Background(), Event{Name: EventEnhanceClick, Target: "enhance_problem"})
	require.NoError(t, err)
	assert.Nil(t, pending)
	assert.Equal(t, []string{"Please enter some text to enhance first."}, notifier.Messages())
	assert.Len(t, remote.enhances, 0)

	_, err = c.Dispatch(context.Background(), Event{Name: EventEnhanceClick, Target: "nope"})
	assert.ErrorIs(t, err, ErrUnknownButton)
}

func TestDispatchUnknownEvent(t *testing.T) {
	c, _, _, _ := setup(t, true)

	_, err := c.Dispatch(context.Background(), Event{Name: "focus"})
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestExtraHandlersRunInOrder(t *testing.T) {
	c, _, _, _ := setup(t, true)
	var seen []string
	c.On(EventDomainChange, func(_ context.Context, ev Event) (*Pending, error) {
		seen = append(seen, ev.Value)
		return nil, nil
	})

	_, err := c.Dispatch(context.Background(), Event{Name: EventDomainChange, Value: "Finance"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Finance"}, seen)
}
