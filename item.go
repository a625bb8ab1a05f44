package searchdock

// Item is one record stored in an index. The field set is caller-defined;
// no schema is enforced client-side.
type Item map[string]any

// ScrollParams narrows a Scroll call. The zero value starts a new scroll
// over the whole index.
type ScrollParams struct {
	// ScrollID continues a previous traversal. Empty starts a new one.
	ScrollID string
	// RPP is the number of items per page. Zero uses the server default.
	RPP int
}

// ScrollResult is one page of a scroll traversal. ScrollID is carried
// through from the server untouched and feeds the next Scroll call.
type ScrollResult struct {
	Items    []Item `json:"items"`
	ScrollID string `json:"scroll_id,omitempty"`
	Total    int64  `json:"total,omitempty"`
}

// FindResult is one entry of a batch get. Entries keep the order of the
// requested ids; Item is nil when Found is false.
type FindResult struct {
	Found bool `json:"found"`
	Item  Item `json:"item,omitempty"`
}

// BulkResult reports the per-item outcome of a bulk operation.
type BulkResult struct {
	Results []BulkOpResult `json:"results"`
}

// BulkOpResult is the outcome of a single entry in a bulk request.
type BulkOpResult struct {
	ID      string `json:"id,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
