package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type googleBooksProvider struct {
	baseURL string
	client  *http.Client
}

// NewGoogleBooksProvider creates a provider over the Google Books volumes
// API.
func NewGoogleBooksProvider(baseURL string, client *http.Client) Provider {
	return &googleBooksProvider{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (p *googleBooksProvider) Name() string { return "google_books" }

type googleVolumes struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo struct {
			Title      string   `json:"title"`
			Authors    []string `json:"authors"`
			Publisher  string   `json:"publisher"`
			Categories []string `json:"categories"`
			ImageLinks struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

func (p *googleBooksProvider) Fetch(ctx context.Context, identifier string) (*BookFields, error) {
	endpoint := fmt.Sprintf("%s/volumes?q=%s", p.baseURL, url.QueryEscape("isbn:"+identifier))
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
		return nil, fmt.Errorf("google books: unexpected status %d", resp.StatusCode)
	}

	var payload googleVolumes
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.TotalItems == 0 || len(payload.Items) == 0 {
		return nil, ErrNotFound
	}

	info := payload.Items[0].VolumeInfo
	return &BookFields{
		Title:      info.Title,
		Author:     strings.Join(info.Authors, ", "),
		Publisher:  info.Publisher,
		ImageURL:   info.ImageLinks.Thumbnail,
		Categories: info.Categories,
	}, nil
}
