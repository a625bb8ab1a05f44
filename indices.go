package searchdock

import (
	"context"
	"net/http"

	"github.com/searchdock/client-go/internal/api"
)

// Index describes an index within a search engine.
type Index struct {
	Name    string         `json:"name"`
	Preset  string         `json:"preset,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

// TaskStatus reports the state of a server-side reindex task.
type TaskStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// IndexResource manages indices and the temporal reindex workflow.
//
// A full reindex without downtime runs as: CreateTemp, load the temporal
// index (ItemResource bulk operations or ReindexToTemp), then ReplaceByTemp
// to swap it in atomically. DeleteTemp discards an abandoned staging index.
type IndexResource struct {
	api *api.Client
}

// List returns all indices of an engine.
func (r *IndexResource) List(ctx context.Context, hashID string) ([]Index, error) {
	var result []Index
	if err := r.api.Do(ctx, http.MethodGet, indicesPath(hashID, ""), nil, &result); err != nil {
		return nil, indexError(err)
	}
	return result, nil
}

// Create adds a new index to an engine.
func (r *IndexResource) Create(ctx context.Context, hashID string, index *Index) (*Index, error) {
	var result Index
	if err := r.api.Do(ctx, http.MethodPost, indicesPath(hashID, ""), index, &result); err != nil {
		return nil, indexError(err)
	}
	return &result, nil
}

// Get retrieves an index by name.
func (r *IndexResource) Get(ctx context.Context, hashID, name string) (*Index, error) {
	var result Index
	if err := r.api.Do(ctx, http.MethodGet, indicesPath(hashID, name), nil, &result); err != nil {
		return nil, indexError(err)
	}
	return &result, nil
}

// Update applies a partial update to an index.
func (r *IndexResource) Update(ctx context.Context, hashID, name string, index *Index) (*Index, error) {
	var result Index
	if err := r.api.Do(ctx, http.MethodPatch, indicesPath(hashID, name), index, &result); err != nil {
		return nil, indexError(err)
	}
	return &result, nil
}

// Delete removes an index and all its items.
func (r *IndexResource) Delete(ctx context.Context, hashID, name string) error {
	if err := r.api.Do(ctx, http.MethodDelete, indicesPath(hashID, name), nil, nil); err != nil {
		return indexError(err)
	}
	return nil
}

// CreateTemp creates the temporal (staging) counterpart of an index.
func (r *IndexResource) CreateTemp(ctx context.Context, hashID, name string) error {
	if err := r.api.Do(ctx, http.MethodPost, indicesPath(hashID, name)+"/temp", nil, nil); err != nil {
		return indexError(err)
	}
	return nil
}

// DeleteTemp discards the temporal counterpart of an index.
func (r *IndexResource) DeleteTemp(ctx context.Context, hashID, name string) error {
	if err := r.api.Do(ctx, http.MethodDelete, indicesPath(hashID, name)+"/temp", nil, nil); err != nil {
		return indexError(err)
	}
	return nil
}

// ReindexToTemp starts a server-side copy of the live index into its
// temporal counterpart. Progress is reported by ReindexStatus.
func (r *IndexResource) ReindexToTemp(ctx context.Context, hashID, name string) error {
	if err := r.api.Do(ctx, http.MethodPost, indicesPath(hashID, name)+"/_reindex_to_temp", nil, nil); err != nil {
		return indexError(err)
	}
	return nil
}

// ReindexStatus reports the state of a reindex started by ReindexToTemp.
func (r *IndexResource) ReindexStatus(ctx context.Context, hashID, name string) (*TaskStatus, error) {
	var result TaskStatus
	if err := r.api.Do(ctx, http.MethodGet, indicesPath(hashID, name)+"/_reindex_task_status", nil, &result); err != nil {
		return nil, indexError(err)
	}
	return &result, nil
}

// ReplaceByTemp atomically swaps the temporal index in for the live one.
func (r *IndexResource) ReplaceByTemp(ctx context.Context, hashID, name string) error {
	if err := r.api.Do(ctx, http.MethodPost, indicesPath(hashID, name)+"/_replace_by_temp", nil, nil); err != nil {
		return indexError(err)
	}
	return nil
}
