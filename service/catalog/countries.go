package catalog

import (
	"context"
	"strings"

	"sculpturesly.GO/client"
	catalogEntity "sculpturesly.GO/model/entity/catalog"
)

// Countries returns the supported country list. Guarded only by an
// "already populated" check, as concurrent first calls are harmless:
// both fetch, the later result wins.
func (s *Service) Countries(ctx context.Context, opts *client.Options) ([]catalogEntity.Country, error) {
	s.mu.Lock()
	if len(s.countries) > 0 {
		list := s.countries
		s.mu.Unlock()
		return list, nil
	}
	s.mu.Unlock()

	var out []catalogEntity.Country
	if err := s.api.GetJSON(ctx, "/api/common/supported-countries/", nil, &out, opts); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.countries = out
	s.mu.Unlock()
	return out, nil
}

func (s *Service) loadedCountries() []catalogEntity.Country {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countries
}

// IsValidCountryCode reports whether code matches a supported country,
// case-insensitively. False when the list is not loaded yet.
func (s *Service) IsValidCountryCode(code string) bool {
	if code == "" {
		return false
	}
	for _, c := range s.loadedCountries() {
		if strings.EqualFold(c.Code, code) {
			return true
		}
	}
	return false
}

// IsValidCountryName reports whether name matches a supported country name.
func (s *Service) IsValidCountryName(name string) bool {
	if name == "" {
		return false
	}
	name = strings.TrimSpace(name)
	for _, c := range s.loadedCountries() {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

// CountryByCode returns the country for a code, or nil.
func (s *Service) CountryByCode(code string) *catalogEntity.Country {
	for _, c := range s.loadedCountries() {
		if strings.EqualFold(c.Code, code) {
			country := c
			return &country
		}
	}
	return nil
}
