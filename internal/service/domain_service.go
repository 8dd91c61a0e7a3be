package service

import (
	"errors"
	"fmt"
	"time"

	"srs-intake-be/internal/dto"
	"srs-intake-be/pkg/domain"
	"srs-intake-be/pkg/srsform"

	"github.com/patrickmn/go-cache"
)

var ErrDomainNotFound = errors.New("domain not found")

type IDomainService interface {
	List() *dto.DomainListResponse
	Get(key string) (*dto.DomainEntryResponse, error)
	SelectDomain(req *dto.SelectDomainRequest) *dto.DomainPanelResponse
	PanelHTML(key string) (string, error)
}

type domainService struct {
	registry  *domain.Registry
	presenter *srsform.Presenter
	panels    *cache.Cache
}

func NewDomainService(registry *domain.Registry) IDomainService {
	if registry == nil {
		registry = domain.Default()
	}
	return &domainService{
		registry:  registry,
		presenter: srsform.NewPresenter(registry),
		// registry content is static, entries only expire to bound memory
		panels: cache.New(1*time.Hour, 10*time.Minute),
	}
}

func (s *domainService) List() *dto.DomainListResponse {
	return &dto.DomainListResponse{Domains: s.registry.Keys()}
}

func (s *domainService) Get(key string) (*dto.DomainEntryResponse, error) {
	entry, ok := s.registry.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDomainNotFound, key)
	}
	return &dto.DomainEntryResponse{Key: key, Entry: entry}, nil
}

// SelectDomain runs the presenter against a recording view, which is what a
// browser would apply to its panel after a domain change.
func (s *domainService) SelectDomain(req *dto.SelectDomainRequest) *dto.DomainPanelResponse {
	view := &srsform.PanelView{}
	s.presenter.OnDomainChange(view, req.Domain)
	return view
}

func (s *domainService) PanelHTML(key string) (string, error) {
	if x, found := s.panels.Get(key); found {
		return x.(string), nil
	}

	entry, ok := s.registry.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrDomainNotFound, key)
	}

	html, err := srsform.RenderPanelHTML(entry)
	if err != nil {
		return "", fmt.Errorf("render panel %s: %w", key, err)
	}
	s.panels.Set(key, html, cache.DefaultExpiration)
	return html, nil
}
