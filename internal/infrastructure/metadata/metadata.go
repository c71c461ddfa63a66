package metadata

import (
	"context"
	"errors"
	"net/http"

	"libreria-backend/internal/config"
	"libreria-backend/pkg/logger"
)

// ErrNotFound indicates no provider has a record for the identifier.
var ErrNotFound = errors.New("no metadata found")

// BookFields is the normalized record returned by a provider. Callers use
// it to prefill the catalog form; every field may be empty.
type BookFields struct {
	Identifier string   `json:"identifier"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Publisher  string   `json:"publisher"`
	ImageURL   string   `json:"image_url"`
	Categories []string `json:"categories"`
}

// Provider fetches book fields for an identifier from one external source.
// Implementations return ErrNotFound when the source has no record.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, identifier string) (*BookFields, error)
}

// Lookup walks providers in order and returns the first hit.
type Lookup struct {
	providers []Provider
}

// NewLookup builds the lookup from configuration. A provider with an empty
// base URL is disabled.
func NewLookup(cfg config.MetadataConfig) *Lookup {
	client := &http.Client{Timeout: cfg.Timeout}

	var providers []Provider
	if cfg.GoogleBooksURL != "" {
		providers = append(providers, NewGoogleBooksProvider(cfg.GoogleBooksURL, client))
	}
	if cfg.OpenLibraryURL != "" {
		providers = append(providers, NewOpenLibraryProvider(cfg.OpenLibraryURL, client))
	}
	return &Lookup{providers: providers}
}

// NewLookupWith builds a lookup over an explicit provider list.
func NewLookupWith(providers ...Provider) *Lookup {
	return &Lookup{providers: providers}
}

// Fetch queries providers in order, first hit wins. Provider failures are
// logged and skipped; ErrNotFound is returned only when every provider came
// up empty.
func (l *Lookup) Fetch(ctx context.Context, identifier string) (*BookFields, error) {
	for _, p := range l.providers {
		fields, err := p.Fetch(ctx, identifier)
		if err == nil {
			fields.Identifier = identifier
			return fields, nil
		}
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("metadata provider failed", map[string]interface{}{
				"provider":   p.Name(),
				"identifier": identifier,
				"error":      err.Error(),
			})
		}
	}
	return nil, ErrNotFound
}
