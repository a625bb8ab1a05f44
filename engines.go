package searchdock

import (
	"context"
	"net/http"

	"github.com/searchdock/client-go/internal/api"
)

// SearchEngine is a provisioned search engine instance. HashID is assigned
// by the server on creation and identifies the engine in every other call.
type SearchEngine struct {
	HashID   string `json:"hashid,omitempty"`
	Name     string `json:"name"`
	Language string `json:"language,omitempty"`
	Currency string `json:"currency,omitempty"`
	SiteURL  string `json:"site_url,omitempty"`
}

// EngineResource manages search engine instances.
type EngineResource struct {
	api *api.Client
}

// List returns all search engines the token has access to.
func (r *EngineResource) List(ctx context.Context) ([]SearchEngine, error) {
	var result []SearchEngine
	if err := r.api.Do(ctx, http.MethodGet, enginesPath(""), nil, &result); err != nil {
		return nil, engineError(err)
	}
	return result, nil
}

// Create provisions a new search engine.
func (r *EngineResource) Create(ctx context.Context, engine *SearchEngine) (*SearchEngine, error) {
	var result SearchEngine
	if err := r.api.Do(ctx, http.MethodPost, enginesPath(""), engine, &result); err != nil {
		return nil, engineError(err)
	}
	return &result, nil
}

// Get retrieves a search engine by hashid.
func (r *EngineResource) Get(ctx context.Context, hashID string) (*SearchEngine, error) {
	var result SearchEngine
	if err := r.api.Do(ctx, http.MethodGet, enginesPath(hashID), nil, &result); err != nil {
		return nil, engineError(err)
	}
	return &result, nil
}

// Update applies a partial update to a search engine.
func (r *EngineResource) Update(ctx context.Context, hashID string, engine *SearchEngine) (*SearchEngine, error) {
	var result SearchEngine
	if err := r.api.Do(ctx, http.MethodPatch, enginesPath(hashID), engine, &result); err != nil {
		return nil, engineError(err)
	}
	return &result, nil
}

// Delete removes a search engine and everything stored in it.
func (r *EngineResource) Delete(ctx context.Context, hashID string) error {
	if err := r.api.Do(ctx, http.MethodDelete, enginesPath(hashID), nil, nil); err != nil {
		return engineError(err)
	}
	return nil
}
