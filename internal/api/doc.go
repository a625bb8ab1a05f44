// Package api implements the low-level HTTP client for the SearchDock
// management API. It owns authentication, retries and error decoding;
// the resource layer above it only shapes paths and bodies.
package api
