package searchdock

import (
	"github.com/searchdock/client-go/internal/api"
)

// Client is the entry point to the SearchDock management API.
type Client struct {
	api *api.Client

	// Engines manages search engine instances.
	Engines *EngineResource
	// Indices manages indices and the temporal reindex workflow.
	Indices *IndexResource
	// Items manages the items stored in an index.
	Items *ItemResource
}

// New creates a new SearchDock client with the given API token.
//
// The token is attached as a bearer credential to every request; issuing
// and rotating tokens happens outside this SDK. New performs no network
// I/O: a bad token surfaces as ErrUnauthorized on the first call.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingAPIToken
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		retries: -1, // -1 keeps the api client's default
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(token, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		api:     apiClient,
		Engines: &EngineResource{api: apiClient},
		Indices: &IndexResource{api: apiClient},
		Items:   &ItemResource{api: apiClient},
	}, nil
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(token string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.retries >= 0 {
		apiOpts = append(apiOpts, api.WithRetries(cfg.retries))
	}
	if len(cfg.retryOn) > 0 {
		apiOpts = append(apiOpts, api.WithRetryOn(cfg.retryOn))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}

	apiClient, err := api.New(token, apiOpts...)
	if err != nil {
		return nil, err
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return apiClient, nil
}
