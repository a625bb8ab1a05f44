package searchdock

import "fmt"

// Suffixes appended to a collection-level items path to select batch-get,
// batch-write and count semantics.
const (
	mgetSuffix  = "/_mget"
	bulkSuffix  = "/_bulk"
	countSuffix = "/_count"
)

// enginesPath addresses the engine collection, or a single engine when
// hashID is non-empty.
func enginesPath(hashID string) string {
	if hashID == "" {
		return "/search_engines"
	}
	return fmt.Sprintf("/search_engines/%s", hashID)
}

// indicesPath addresses the index collection of an engine, or a single
// index when name is non-empty.
func indicesPath(hashID, name string) string {
	if name == "" {
		return enginesPath(hashID) + "/indices"
	}
	return fmt.Sprintf("%s/indices/%s", enginesPath(hashID), name)
}

// itemsPathOptions selects the optional segments of an items path.
type itemsPathOptions struct {
	// itemID addresses a single item; empty addresses the collection.
	itemID string
	// temp addresses the temporal (staging) counterpart of the index.
	temp bool
}

// itemsPath builds
//
//	/search_engines/{hashid}/indices/{name}[/temp]/items[/{id}]
//
// Inputs are assumed URL-safe; no escaping is applied.
func itemsPath(hashID, indexName string, opts itemsPathOptions) string {
	p := indicesPath(hashID, indexName)
	if opts.temp {
		p += "/temp"
	}
	p += "/items"
	if opts.itemID != "" {
		p += "/" + opts.itemID
	}
	return p
}
