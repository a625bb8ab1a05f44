// Package searchdock provides a Go client SDK for the SearchDock
// management API, covering search engines, their indices, and the items
// stored in those indices.
//
// Every operation is a single authenticated request/response round trip.
// The client keeps no state between calls and is safe for concurrent use.
//
// Basic usage:
//
//	client, err := searchdock.New("your-api-token")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Add an item to an index
//	item, err := client.Items.Create(ctx, "a1b2c3", "products", searchdock.Item{
//	    "id":    "sku-1",
//	    "title": "Walnut desk",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Created:", item["id"])
//
// Bulk reindexing without downtime goes through the temporal (staging)
// index: create it, load it with the *InTemp item operations, then swap
// it in atomically with Indices.ReplaceByTemp.
package searchdock
