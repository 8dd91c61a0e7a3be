package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"srs-intake-be/internal/dto"
	"srs-intake-be/internal/pkg/logger"
	"srs-intake-be/pkg/events"
	"srs-intake-be/pkg/llm"
	"srs-intake-be/pkg/srsclient"
	"srs-intake-be/pkg/srsform"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	reply   string
	err     error
	history []llm.Message
	opts    llm.Options
}

func (f *fakeLLM) Chat(_ context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.history = history
	f.opts = llm.Apply(llm.Options{}, options...)
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type recordingPublisher struct {
	mu       sync.Mutex
	messages []dto.SubmissionEventMessage
}

func (p *recordingPublisher) PublishSubmission(_ context.Context, msg dto.SubmissionEventMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func formValues() url.Values {
	return url.Values{
		"project_name":            {"Atlas"},
		"author":                  {"Ann, Bob"},
		"problem_statement":       {"Slow intake"},
		"application_type":        {"Web Application"},
		"domain":                  {"Healthcare"},
		"core_features":           {"1. Intake\n2. Export"},
		"expected_user_scale":     {"<100"},
		"performance_expectation": {"Normal"},
		"srs_detail_level":        {"High-level"},
		"target_users":            {"Clinician"},
	}
}

func TestEnhanceParsesJSONContent(t *testing.T) {
	provider := &fakeLLM{reply: "```json\n{\"content\": \"- Capture patient intake\\n- Export reports\"}\n```"}
	svc := NewEnhanceService(provider, logger.NewNopLogger())

	res, err := svc.Enhance(context.Background(), &dto.EnhanceSectionRequest{
		SectionType: dto.SectionCoreFeatures,
		UserInput:   "  intake, export ",
	})
	require.NoError(t, err)
	assert.Equal(t, "- Capture patient intake\n- Export reports", res.Content)

	require.Len(t, provider.history, 2)
	assert.Equal(t, "system", provider.history[0].Role)
	assert.Contains(t, provider.history[1].Content, "Section type: Core Features")
	assert.Contains(t, provider.history[1].Content, "hyphen bullets")
	assert.True(t, provider.opts.JSONOutput)
}

func TestEnhanceAcceptsPlainText(t *testing.T) {
	svc := NewEnhanceService(&fakeLLM{reply: "  The clinic loses records.  "}, logger.NewNopLogger())
	res, err := svc.Enhance(context.Background(), &dto.EnhanceSectionRequest{
		SectionType: dto.SectionProblemStatement,
		UserInput:   "records get lost",
	})
	require.NoError(t, err)
	assert.Equal(t, "The clinic loses records.", res.Content)
}

func TestEnhanceErrors(t *testing.T) {
	svc := NewEnhanceService(&fakeLLM{reply: `{"content": "   "}`}, logger.NewNopLogger())
	_, err := svc.Enhance(context.Background(), &dto.EnhanceSectionRequest{SectionType: dto.SectionPrimaryUserFlow, UserInput: "x"})
	assert.ErrorContains(t, err, "empty content")

	boom := errors.New("model offline")
	svc = NewEnhanceService(&fakeLLM{err: boom}, logger.NewNopLogger())
	_, err = svc.Enhance(context.Background(), &dto.EnhanceSectionRequest{SectionType: dto.SectionPrimaryUserFlow, UserInput: "x"})
	assert.ErrorIs(t, err, boom)

	_, err = svc.Enhance(context.Background(), &dto.EnhanceSectionRequest{SectionType: "Glossary", UserInput: "x"})
	assert.ErrorContains(t, err, "unsupported section type")
}

func TestDomainService(t *testing.T) {
	svc := NewDomainService(nil)

	list := svc.List()
	require.NotEmpty(t, list.Domains)
	assert.Equal(t, "Healthcare", list.Domains[0])

	entry, err := svc.Get("Finance")
	require.NoError(t, err)
	assert.Equal(t, "Finance", entry.Key)
	assert.NotEmpty(t, entry.Standards)

	_, err = svc.Get("Mining")
	assert.ErrorIs(t, err, ErrDomainNotFound)

	view := svc.SelectDomain(&dto.SelectDomainRequest{Domain: "Other"})
	assert.True(t, view.Active)
	assert.True(t, view.OverrideVisible)

	view = svc.SelectDomain(&dto.SelectDomainRequest{Domain: ""})
	assert.False(t, view.Active)
	assert.True(t, view.OverrideCleared)

	first, err := svc.PanelHTML("Telecom")
	require.NoError(t, err)
	second, err := svc.PanelHTML("Telecom")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, `class="standard-badge"`)

	_, err = svc.PanelHTML("Mining")
	assert.ErrorIs(t, err, ErrDomainNotFound)
}

func TestSubmissionRejectedBeforeNetwork(t *testing.T) {
	var hits int
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer upstream.Close()

	pub := &recordingPublisher{}
	svc := NewSubmissionService(srsform.NewBuilder(true), srsclient.NewClient(upstream.URL), pub, logger.NewNopLogger())

	values := formValues()
	values.Del("target_users")
	_, err := svc.Submit(context.Background(), srsform.FormStateFromValues(values))

	var verr *srsform.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Please select at least one target user", verr.Message)
	assert.Zero(t, hits)
	require.Len(t, pub.messages, 1)
	assert.Equal(t, dto.SubmissionRejected, pub.messages[0].Outcome)
	assert.Equal(t, "Atlas", pub.messages[0].ProjectName)
}

func TestSubmissionAccepted(t *testing.T) {
	var got srsform.Payload
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate_srs", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"queued"}`))
	}))
	defer upstream.Close()

	pub := &recordingPublisher{}
	svc := NewSubmissionService(srsform.NewBuilder(true), srsclient.NewClient(upstream.URL), pub, logger.NewNopLogger())

	res, err := svc.Submit(context.Background(), srsform.FormStateFromValues(formValues()))
	require.NoError(t, err)
	assert.Equal(t, "Healthcare", res.Domain)
	assert.JSONEq(t, `{"status":"queued"}`, string(res.Ack))
	assert.Equal(t, []string{"Ann", "Bob"}, got.ProjectIdentity.Author)
	assert.Equal(t, []string{"Intake", "Export"}, got.FunctionalScope.CoreFeatures)

	require.Len(t, pub.messages, 1)
	assert.Equal(t, dto.SubmissionAccepted, pub.messages[0].Outcome)
	assert.Equal(t, res.SubmissionId, pub.messages[0].SubmissionId)
}

func TestSubmissionUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("generator down"))
	}))
	defer upstream.Close()

	pub := &recordingPublisher{}
	svc := NewSubmissionService(srsform.NewBuilder(true), srsclient.NewClient(upstream.URL), pub, logger.NewNopLogger())

	_, err := svc.Submit(context.Background(), srsform.FormStateFromValues(formValues()))
	var terr *srsclient.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, 500, terr.Status)
	assert.Equal(t, "Server returned 500: generator down", terr.Error())

	require.Len(t, pub.messages, 1)
	assert.Equal(t, dto.SubmissionFailed, pub.messages[0].Outcome)
}

func TestSubmissionCheck(t *testing.T) {
	svc := NewSubmissionService(srsform.NewBuilder(true), nil, nil, logger.NewNopLogger())

	p, err := svc.Check(srsform.FormStateFromValues(formValues()))
	require.NoError(t, err)
	assert.Equal(t, "Atlas", p.ProjectIdentity.ProjectName)

	values := formValues()
	values.Set("srs_detail_level", "Verbose")
	_, err = svc.Check(srsform.FormStateFromValues(values))
	var violations srsform.ContractViolations
	assert.ErrorAs(t, err, &violations)
}

type recordingMirror struct {
	mu     sync.Mutex
	events []events.Event
}

func (m *recordingMirror) Publish(_ context.Context, event events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *recordingMirror) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

func TestConsumerMirrorsPublishedEvents(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NopLogger{})
	defer pubSub.Close()

	mirror := &recordingMirror{}
	consumer := NewConsumerService(pubSub, "SRS_SUBMISSIONS", mirror, logger.NewNopLogger())
	publisher := NewPublisherService("SRS_SUBMISSIONS", pubSub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- consumer.Consume(ctx) }()

	require.NoError(t, publisher.PublishSubmission(ctx, dto.SubmissionEventMessage{
		Outcome:     dto.SubmissionAccepted,
		ProjectName: "Atlas",
		Domain:      "Energy",
		OccurredAt:  time.Now(),
	}))

	assert.Eventually(t, func() bool { return mirror.count() == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}

	mirror.mu.Lock()
	defer mirror.mu.Unlock()
	assert.Equal(t, dto.SubmissionAccepted, mirror.events[0].EventType())
	assert.Equal(t, "Energy", mirror.events[0].Payload()["domain"])
}
