// Command testhelper is a small CLI used by cross-SDK and CI smoke tests.
// It reads credentials from the environment and prints JSON to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	searchdock "github.com/searchdock/client-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: testhelper <command> [args]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	opts := []searchdock.Option{}
	if url := os.Getenv("SEARCHDOCK_URL"); url != "" {
		opts = append(opts, searchdock.WithBaseURL(url))
	}

	client, err := searchdock.New(os.Getenv("SEARCHDOCK_API_TOKEN"), opts...)
	if err != nil {
		fatal("create client: %v", err)
	}

	hashID := os.Getenv("SEARCHDOCK_HASHID")
	if hashID == "" {
		fatal("SEARCHDOCK_HASHID must be set")
	}

	switch os.Args[1] {
	case "create-item":
		if len(os.Args) < 3 {
			fatal("usage: testhelper create-item <index>")
		}
		createItem(ctx, client, hashID, os.Args[2])
	case "get-item":
		if len(os.Args) < 4 {
			fatal("usage: testhelper get-item <index> <id>")
		}
		getItem(ctx, client, hashID, os.Args[2], os.Args[3])
	case "delete-item":
		if len(os.Args) < 4 {
			fatal("usage: testhelper delete-item <index> <id>")
		}
		deleteItem(ctx, client, hashID, os.Args[2], os.Args[3])
	case "count":
		if len(os.Args) < 3 {
			fatal("usage: testhelper count <index>")
		}
		countItems(ctx, client, hashID, os.Args[2])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

// createItem reads the item fields as JSON from stdin.
func createItem(ctx context.Context, client *searchdock.Client, hashID, index string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}

	var item searchdock.Item
	if err := json.Unmarshal(data, &item); err != nil {
		fatal("parse item: %v", err)
	}

	created, err := client.Items.Create(ctx, hashID, index, item)
	if err != nil {
		fatal("create item: %v", err)
	}

	if err := json.NewEncoder(os.Stdout).Encode(created); err != nil {
		fatal("encode item: %v", err)
	}
}

func getItem(ctx context.Context, client *searchdock.Client, hashID, index, id string) {
	item, err := client.Items.Get(ctx, hashID, index, id)
	if err != nil {
		fatal("get item: %v", err)
	}
	json.NewEncoder(os.Stdout).Encode(item)
}

func deleteItem(ctx context.Context, client *searchdock.Client, hashID, index, id string) {
	if err := client.Items.Delete(ctx, hashID, index, id); err != nil {
		fatal("delete item: %v", err)
	}
	json.NewEncoder(os.Stdout).Encode(map[string]bool{"success": true})
}

func countItems(ctx context.Context, client *searchdock.Client, hashID, index string) {
	count, err := client.Items.Count(ctx, hashID, index)
	if err != nil {
		fatal("count items: %v", err)
	}
	json.NewEncoder(os.Stdout).Encode(map[string]int64{"count": count})
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
