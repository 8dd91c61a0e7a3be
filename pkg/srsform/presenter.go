package srsform

import (
	"bytes"
	"html/template"

	"srs-intake-be/pkg/domain"
)

// PanelSurface is the part of the render surface the domain presenter
// writes to: the domain info panel and the free-text domain override input.
type PanelSurface interface {
	SetDomainOverrideVisible(visible bool)
	ClearDomainOverride()
	SetPanelActive(active bool)
	SetPanelTitle(title string)
	SetPanelStandards(standards []string)
	SetPanelSections(sections []string)
	SetPanelNote(note string)
}

// Presenter projects registry entries onto a PanelSurface when the domain
// selection changes.
type Presenter struct {
	registry *domain.Registry
}

func NewPresenter(registry *domain.Registry) *Presenter {
	if registry == nil {
		registry = domain.Default()
	}
	return &Presenter{registry: registry}
}

// OnDomainChange handles a new domain selection. "Other" reveals the
// override input and still shows the generic entry; any other value hides
// and clears the override input. Unknown values deactivate the panel.
func (p *Presenter) OnDomainChange(s PanelSurface, value string) {
	if value == domain.OtherKey {
		s.SetDomainOverrideVisible(true)
	} else {
		s.SetDomainOverrideVisible(false)
		s.ClearDomainOverride()
	}

	entry, ok := p.registry.Lookup(value)
	if !ok {
		s.SetPanelActive(false)
		return
	}
	s.SetPanelTitle(entry.Title)
	s.SetPanelStandards(entry.Standards)
	s.SetPanelSections(entry.Sections)
	s.SetPanelNote(entry.Note)
	s.SetPanelActive(true)
}

// PanelView is a PanelSurface that records the projection so it can be
// served as JSON.
type PanelView struct {
	Active          bool     `json:"active"`
	OverrideVisible bool     `json:"override_visible"`
	OverrideCleared bool     `json:"override_cleared"`
	Title           string   `json:"title,omitempty"`
	Standards       []string `json:"standards,omitempty"`
	Sections        []string `json:"sections,omitempty"`
	Note            string   `json:"note,omitempty"`
}

func (v *PanelView) SetDomainOverrideVisible(visible bool) { v.OverrideVisible = visible }
func (v *PanelView) ClearDomainOverride()                  { v.OverrideCleared = true }
func (v *PanelView) SetPanelActive(active bool)            { v.Active = active }
func (v *PanelView) SetPanelTitle(title string)            { v.Title = title }
func (v *PanelView) SetPanelNote(note string)              { v.Note = note }

func (v *PanelView) SetPanelStandards(standards []string) {
	v.Standards = append([]string(nil), standards...)
}

func (v *PanelView) SetPanelSections(sections []string) {
	v.Sections = append([]string(nil), sections...)
}

var panelTemplate = template.Must(template.New("panel").Parse(
	`<div id="domainInfoSection" class="domain-info active">` +
		`<h3 id="domainTitle">{{.Title}}</h3>` +
		`<div id="standardsList">{{range .Standards}}<span class="standard-badge">{{.}}</span>{{end}}</div>` +
		`<div id="sectionsList">{{range .Sections}}<div class="section-item">{{.}}</div>{{end}}</div>` +
		`<p id="infoNote">{{.Note}}</p>` +
		`</div>`,
))

// RenderPanelHTML renders an entry as the info panel fragment. Registry text
// is HTML-escaped.
func RenderPanelHTML(entry domain.Entry) (string, error) {
	var buf bytes.Buffer
	if err := panelTemplate.Execute(&buf, entry); err != nil {
		return "", err
	}
	return buf.String(), nil
}
