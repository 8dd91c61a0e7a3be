package formctl

import (
	"sync"

	"srs-intake-be/pkg/srsform"
)

// Surface is the render surface the controller reads and writes. Element
// ids are the field names in srsform.
type Surface interface {
	srsform.PanelSurface

	// FormState returns a snapshot of the current widget values.
	FormState() *srsform.FormState
	Value(id string) string
	SetValue(id, value string)
	SetVisible(id string, visible bool)
	SetButtonBusy(buttonID string, busy bool)
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Notify(message string)
}

// MemorySurface is an in-memory Surface over a FormState.
type MemorySurface struct {
	mu      sync.Mutex
	state   *srsform.FormState
	panel   srsform.PanelView
	visible map[string]bool
	busy    map[string]bool
}

func NewMemorySurface(state *srsform.FormState) *MemorySurface {
	if state == nil {
		state = srsform.NewFormState()
	}
	return &MemorySurface{
		state: state.Clone(),
		// companion inputs start hidden
		visible: map[string]bool{
			srsform.FieldDomainCustom:      false,
			srsform.FieldTargetUsersCustom: false,
			srsform.FieldComplianceCustom:  false,
		},
		busy: make(map[string]bool),
	}
}

func (m *MemorySurface) FormState() *srsform.FormState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

func (m *MemorySurface) Value(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Get(id)
}

func (m *MemorySurface) SetValue(id, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Set(id, value)
}

// Check and Uncheck simulate the user ticking a checkbox.
func (m *MemorySurface) Check(group, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Check(group, value)
}

func (m *MemorySurface) Uncheck(group, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Uncheck(group, value)
}

func (m *MemorySurface) SetVisible(id string, visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible[id] = visible
}

func (m *MemorySurface) Visible(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible[id]
}

func (m *MemorySurface) SetButtonBusy(buttonID string, busy bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy[buttonID] = busy
}

func (m *MemorySurface) ButtonBusy(buttonID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.busy[buttonID]
}

// Panel returns a copy of the domain info panel.
func (m *MemorySurface) Panel() srsform.PanelView {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.panel
	p.Standards = append([]string(nil), m.panel.Standards...)
	p.Sections = append([]string(nil), m.panel.Sections...)
	return p
}

func (m *MemorySurface) SetDomainOverrideVisible(visible bool) {
	m.SetVisible(srsform.FieldDomainCustom, visible)
}

func (m *MemorySurface) ClearDomainOverride() {
	m.SetValue(srsform.FieldDomainCustom, "")
}

func (m *MemorySurface) SetPanelActive(active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panel.SetPanelActive(active)
}

func (m *MemorySurface) SetPanelTitle(title string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panel.SetPanelTitle(title)
}

func (m *MemorySurface) SetPanelStandards(standards []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panel.SetPanelStandards(standards)
}

func (m *MemorySurface) SetPanelSections(sections []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panel.SetPanelSections(sections)
}

func (m *MemorySurface) SetPanelNote(note string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panel.SetPanelNote(note)
}

// MemoryNotifier records notifications.
type MemoryNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *MemoryNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *MemoryNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }
