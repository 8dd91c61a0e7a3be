package srsform

import (
	"strings"
	"testing"

	"srs-intake-be/pkg/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenterRegisteredDomain(t *testing.T) {
	view := &PanelView{OverrideVisible: true}
	NewPresenter(nil).OnDomainChange(view, "Healthcare")

	assert.True(t, view.Active)
	assert.False(t, view.OverrideVisible)
	assert.True(t, view.OverrideCleared)
	assert.Equal(t, "Healthcare & Medical Devices", view.Title)
	assert.Equal(t, "IEC 62304", view.Standards[0])
	assert.Len(t, view.Sections, 10)
	assert.Contains(t, view.Note, "IEC 62304")
}

func TestPresenterOtherShowsOverrideAndGenericEntry(t *testing.T) {
	view := &PanelView{}
	NewPresenter(domain.Default()).OnDomainChange(view, domain.OtherKey)

	assert.True(t, view.Active)
	assert.True(t, view.OverrideVisible)
	assert.False(t, view.OverrideCleared)
	assert.Equal(t, []string{"IEEE 830", "ISO/IEC/IEEE 29148"}, view.Standards)
}

func TestPresenterUnknownDomainHidesPanel(t *testing.T) {
	p := NewPresenter(nil)
	view := &PanelView{}

	p.OnDomainChange(view, "Finance")
	require.True(t, view.Active)

	assert.NotPanics(t, func() { p.OnDomainChange(view, "Agriculture") })
	assert.False(t, view.Active)

	p.OnDomainChange(view, "")
	assert.False(t, view.Active)
}

func TestPresenterRerenderReplaces(t *testing.T) {
	p := NewPresenter(nil)
	view := &PanelView{}

	p.OnDomainChange(view, "Finance")
	p.OnDomainChange(view, "Telecom")
	p.OnDomainChange(view, "Telecom")

	telecom, _ := domain.Default().Lookup("Telecom")
	assert.Equal(t, telecom.Standards, view.Standards)
	assert.Equal(t, telecom.Sections, view.Sections)
	assert.Equal(t, telecom.Title, view.Title)
}

func TestRenderPanelHTML(t *testing.T) {
	entry, _ := domain.Default().Lookup("E-commerce")

	html, err := RenderPanelHTML(entry)
	require.NoError(t, err)

	assert.Equal(t, len(entry.Standards), strings.Count(html, `class="standard-badge"`))
	assert.Equal(t, len(entry.Sections), strings.Count(html, `class="section-item"`))
	assert.Contains(t, html, "E-commerce &amp; Retail")
}

func TestRenderPanelHTMLEscapes(t *testing.T) {
	html, err := RenderPanelHTML(domain.Entry{
		Title:     "<script>alert(1)</script>",
		Standards: []string{"<b>"},
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;b&gt;")
}
