package searchdock

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/searchdock/client-go/internal/api"
)

// ItemResource manages the items stored in an index.
//
// Operations address an index by engine hashid and index name. The *InTemp
// and *FromTemp variants target the temporal (staging) counterpart of the
// index, which is built up during a bulk reindex and swapped in atomically
// with IndexResource.ReplaceByTemp.
type ItemResource struct {
	api *api.Client
}

// Create adds a new item to the index.
func (r *ItemResource) Create(ctx context.Context, hashID, indexName string, item Item) (Item, error) {
	return r.create(ctx, hashID, indexName, item, false)
}

// CreateInTemp adds a new item to the temporal index.
func (r *ItemResource) CreateInTemp(ctx context.Context, hashID, indexName string, item Item) (Item, error) {
	return r.create(ctx, hashID, indexName, item, true)
}

func (r *ItemResource) create(ctx context.Context, hashID, indexName string, item Item, temp bool) (Item, error) {
	path := itemsPath(hashID, indexName, itemsPathOptions{temp: temp})
	var result Item
	if err := r.api.Do(ctx, http.MethodPost, path, item, &result); err != nil {
		return nil, itemError(err)
	}
	return result, nil
}

// Update applies a partial update to the item with the given id.
func (r *ItemResource) Update(ctx context.Context, hashID, indexName, itemID string, fields Item) (Item, error) {
	return r.update(ctx, hashID, indexName, itemID, fields, false)
}

// UpdateInTemp applies a partial update to an item in the temporal index.
func (r *ItemResource) UpdateInTemp(ctx context.Context, hashID, indexName, itemID string, fields Item) (Item, error) {
	return r.update(ctx, hashID, indexName, itemID, fields, true)
}

func (r *ItemResource) update(ctx context.Context, hashID, indexName, itemID string, fields Item, temp bool) (Item, error) {
	path := itemsPath(hashID, indexName, itemsPathOptions{itemID: itemID, temp: temp})
	var result Item
	if err := r.api.Do(ctx, http.MethodPatch, path, fields, &result); err != nil {
		return nil, itemError(err)
	}
	return result, nil
}

// Get retrieves the item with the given id.
func (r *ItemResource) Get(ctx context.Context, hashID, indexName, itemID string) (Item, error) {
	return r.get(ctx, hashID, indexName, itemID, false)
}

// GetFromTemp retrieves an item from the temporal index.
func (r *ItemResource) GetFromTemp(ctx context.Context, hashID, indexName, itemID string) (Item, error) {
	return r.get(ctx, hashID, indexName, itemID, true)
}

func (r *ItemResource) get(ctx context.Context, hashID, indexName, itemID string, temp bool) (Item, error) {
	path := itemsPath(hashID, indexName, itemsPathOptions{itemID: itemID, temp: temp})
	var result Item
	if err := r.api.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, itemError(err)
	}
	return result, nil
}

// Delete removes the item with the given id.
func (r *ItemResource) Delete(ctx context.Context, hashID, indexName, itemID string) error {
	return r.delete(ctx, hashID, indexName, itemID, false)
}

// DeleteFromTemp removes an item from the temporal index.
func (r *ItemResource) DeleteFromTemp(ctx context.Context, hashID, indexName, itemID string) error {
	return r.delete(ctx, hashID, indexName, itemID, true)
}

func (r *ItemResource) delete(ctx context.Context, hashID, indexName, itemID string, temp bool) error {
	path := itemsPath(hashID, indexName, itemsPathOptions{itemID: itemID, temp: temp})
	if err := r.api.Do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return itemError(err)
	}
	return nil
}

// Scroll pages through all items in the index. Pass the ScrollID of the
// previous result to fetch the next page; a nil params starts from the top.
func (r *ItemResource) Scroll(ctx context.Context, hashID, indexName string, params *ScrollParams) (*ScrollResult, error) {
	return r.scroll(ctx, hashID, indexName, params, false)
}

// ScrollInTemp pages through all items in the temporal index.
func (r *ItemResource) ScrollInTemp(ctx context.Context, hashID, indexName string, params *ScrollParams) (*ScrollResult, error) {
	return r.scroll(ctx, hashID, indexName, params, true)
}

func (r *ItemResource) scroll(ctx context.Context, hashID, indexName string, params *ScrollParams, temp bool) (*ScrollResult, error) {
	path := itemsPath(hashID, indexName, itemsPathOptions{temp: temp})
	if params != nil {
		q := url.Values{}
		if params.ScrollID != "" {
			q.Set("scroll_id", params.ScrollID)
		}
		if params.RPP > 0 {
			q.Set("rpp", strconv.Itoa(params.RPP))
		}
		if len(q) > 0 {
			path += "?" + q.Encode()
		}
	}

	var result ScrollResult
	if err := r.api.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, itemError(err)
	}
	return &result, nil
}

// Find retrieves multiple items by id in one request. The result keeps the
// order of ids; entries with Found false carry no item.
func (r *ItemResource) Find(ctx context.Context, hashID, indexName string, ids []string) ([]FindResult, error) {
	return r.find(ctx, hashID, indexName, ids, false)
}

// FindInTemp retrieves multiple items by id from the temporal index.
func (r *ItemResource) FindInTemp(ctx context.Context, hashID, indexName string, ids []string) ([]FindResult, error) {
	return r.find(ctx, hashID, indexName, ids, true)
}

func (r *ItemResource) find(ctx context.Context, hashID, indexName string, ids []string, temp bool) ([]FindResult, error) {
	path := itemsPath(hashID, indexName, itemsPathOptions{temp: temp}) + mgetSuffix
	var result []FindResult
	if err := r.api.Do(ctx, http.MethodPost, path, ids, &result); err != nil {
		return nil, itemError(err)
	}
	return result, nil
}

// Count returns the number of items in the index.
func (r *ItemResource) Count(ctx context.Context, hashID, indexName string) (int64, error) {
	return r.count(ctx, hashID, indexName, false)
}

// CountInTemp returns the number of items in the temporal index.
func (r *ItemResource) CountInTemp(ctx context.Context, hashID, indexName string) (int64, error) {
	return r.count(ctx, hashID, indexName, true)
}

func (r *ItemResource) count(ctx context.Context, hashID, indexName string, temp bool) (int64, error) {
	path := itemsPath(hashID, indexName, itemsPathOptions{temp: temp}) + countSuffix
	var result struct {
		Count int64 `json:"count"`
	}
	if err := r.api.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return 0, itemError(err)
	}
	return result.Count, nil
}

// BulkCreate adds a batch of items to the index in one request.
func (r *ItemResource) BulkCreate(ctx context.Context, hashID, indexName string, items []Item) (*BulkResult, error) {
	return r.bulk(ctx, hashID, indexName, http.MethodPost, items, false)
}

// BulkUpdate applies a batch of partial updates in one request. Each item
// must carry its id.
func (r *ItemResource) BulkUpdate(ctx context.Context, hashID, indexName string, items []Item) (*BulkResult, error) {
	return r.bulk(ctx, hashID, indexName, http.MethodPatch, items, false)
}

// BulkDelete removes a batch of items by id in one request.
func (r *ItemResource) BulkDelete(ctx context.Context, hashID, indexName string, ids []string) (*BulkResult, error) {
	return r.bulk(ctx, hashID, indexName, http.MethodDelete, ids, false)
}

// BulkCreateInTemp adds a batch of items to the temporal index.
func (r *ItemResource) BulkCreateInTemp(ctx context.Context, hashID, indexName string, items []Item) (*BulkResult, error) {
	return r.bulk(ctx, hashID, indexName, http.MethodPost, items, true)
}

// BulkUpdateInTemp applies a batch of partial updates in the temporal index.
func (r *ItemResource) BulkUpdateInTemp(ctx context.Context, hashID, indexName string, items []Item) (*BulkResult, error) {
	return r.bulk(ctx, hashID, indexName, http.MethodPatch, items, true)
}

// BulkDeleteInTemp removes a batch of items by id from the temporal index.
func (r *ItemResource) BulkDeleteInTemp(ctx context.Context, hashID, indexName string, ids []string) (*BulkResult, error) {
	return r.bulk(ctx, hashID, indexName, http.MethodDelete, ids, true)
}

func (r *ItemResource) bulk(ctx context.Context, hashID, indexName, method string, body any, temp bool) (*BulkResult, error) {
	path := itemsPath(hashID, indexName, itemsPathOptions{temp: temp}) + bulkSuffix
	var result BulkResult
	if err := r.api.Do(ctx, method, path, body, &result); err != nil {
		return nil, itemError(err)
	}
	return &result, nil
}
