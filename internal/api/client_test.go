package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew_RequiresToken(t *testing.T) {
	t.Parallel()
	_, err := New("")
	if err == nil {
		t.Fatal("New() should return error for empty token")
	}
}

func TestDo_SetsHeaders(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %s, want Bearer test-token", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %s, want application/json", got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))
	if err := client.Do(context.Background(), "GET", "/ping", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestDo_MarshalsBodyAndDecodesResult(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if body["name"] != "products" {
			t.Errorf("name = %s, want products", body["name"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"name": "products", "status": "created"})
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	var result map[string]string
	err := client.Do(context.Background(), "POST", "/indices", map[string]string{"name": "products"}, &result)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if result["status"] != "created" {
		t.Errorf("status = %s, want created", result["status"])
	}
}

func TestDo_APIError(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "item not found", "request_id": "req-42"})
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL), WithRetries(0))
	err := client.Do(context.Background(), "GET", "/items/x", nil, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Do() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Message != "item not found" {
		t.Errorf("Message = %s, want item not found", apiErr.Message)
	}
	if apiErr.RequestID != "req-42" {
		t.Errorf("RequestID = %s, want req-42", apiErr.RequestID)
	}
}

func TestDo_APIError_NonJSONBody(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL), WithRetries(0))
	err := client.Do(context.Background(), "GET", "/items", nil, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Do() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != 502 {
		t.Errorf("StatusCode = %d, want 502", apiErr.StatusCode)
	}
	if apiErr.Message != "upstream down" {
		t.Errorf("Message = %q, want upstream down", apiErr.Message)
	}
}

func TestDo_RetriesOnRetryableStatus(t *testing.T) {
	t.Parallel()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int{"count": 7})
	}))
	defer server.Close()

	cfg := DefaultRetryConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	cfg.Jitter = 0

	client, _ := New("test-token", WithBaseURL(server.URL), WithRetryConfig(cfg))

	var result map[string]int
	if err := client.Do(context.Background(), "GET", "/items/_count", nil, &result); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
	if result["count"] != 7 {
		t.Errorf("count = %d, want 7", result["count"])
	}
}

func TestDo_NoRetryOnClientError(t *testing.T) {
	t.Parallel()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "bad request"})
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))
	if err := client.Do(context.Background(), "POST", "/items", nil, nil); err == nil {
		t.Fatal("Do() should return error for 400 response")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestDo_RetryOnCustomStatus(t *testing.T) {
	t.Parallel()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusConflict)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := DefaultRetryConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.Jitter = 0

	client, _ := New("test-token",
		WithBaseURL(server.URL),
		WithRetryConfig(cfg),
		WithRetryOn([]int{409}))

	if err := client.Do(context.Background(), "GET", "/items", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestDo_NetworkError(t *testing.T) {
	t.Parallel()
	client, _ := New("test-token",
		WithBaseURL("http://127.0.0.1:0"),
		WithRetries(0))

	err := client.Do(context.Background(), "GET", "/items", nil, nil)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Do() error = %v, want *NetworkError", err)
	}
	if netErr.Unwrap() == nil {
		t.Error("NetworkError.Unwrap() should not be nil")
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL), WithRetries(0))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := client.Do(ctx, "GET", "/items", nil, nil); err == nil {
		t.Fatal("Do() should return error when context is cancelled")
	}
}

func TestDo_DecodeError(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	var result map[string]any
	if err := client.Do(context.Background(), "GET", "/items/x", nil, &result); err == nil {
		t.Fatal("Do() should return error for malformed response body")
	}
}

func TestSetHTTPClient(t *testing.T) {
	t.Parallel()
	client, _ := New("test-token")
	custom := &http.Client{Timeout: time.Second}
	client.SetHTTPClient(custom)
	if client.httpClient != custom {
		t.Error("SetHTTPClient() did not replace the HTTP client")
	}
}
