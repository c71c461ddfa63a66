package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type openLibraryProvider struct {
	baseURL string
	client  *http.Client
}

// NewOpenLibraryProvider creates a provider over the Open Library books
// API.
func NewOpenLibraryProvider(baseURL string, client *http.Client) Provider {
	return &openLibraryProvider{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (p *openLibraryProvider) Name() string { return "open_library" }

type openLibraryBook struct {
	Title   string `json:"title"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
	Publishers []struct {
		Name string `json:"name"`
	} `json:"publishers"`
	Subjects []struct {
		Name string `json:"name"`
	} `json:"subjects"`
	Cover struct {
		Medium string `json:"medium"`
	} `json:"cover"`
}

func (p *openLibraryProvider) Fetch(ctx context.Context, identifier string) (*BookFields, error) {
	endpoint := fmt.Sprintf("%s/api/books?bibkeys=ISBN:%s&format=json&jscmd=data", p.baseURL, identifier)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open library: unexpected status %d", resp.StatusCode)
	}

	var payload map[string]openLibraryBook
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	book, ok := payload["ISBN:"+identifier]
	if !ok {
		return nil, ErrNotFound
	}

	var authors []string
	for _, a := range book.Authors {
		authors = append(authors, a.Name)
	}
	var categories []string
	for _, s := range book.Subjects {
		categories = append(categories, s.Name)
	}
	publisher := ""
	if len(book.Publishers) > 0 {
		publisher = book.Publishers[0].Name
	}

	return &BookFields{
		Title:      book.Title,
		Author:     strings.Join(authors, ", "),
		Publisher:  publisher,
		ImageURL:   book.Cover.Medium,
		Categories: categories,
	}, nil
}
