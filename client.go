package pinata

import (
	"context"
	"net/http"
)

const (
	clientName = "go-pinata-client"

	// DefaultEndpoint is the Pinata API URL files are pinned to.
	DefaultEndpoint = "https://api.pinata.cloud/pinning/pinFileToIPFS"
)

// Client is a HTTP API client to the Pinata pinning service.
type Client interface {
	PinFile(context.Context, string) (string, error)
}

type clientConfig struct {
	token    string
	endpoint string
	hc       *http.Client
}

type client struct {
	cfg *clientConfig
}

// NewClient creates a new Pinata API client. A token must be supplied with
// WithToken.
func NewClient(options ...Option) (Client, error) {
	cfg := clientConfig{
		endpoint: DefaultEndpoint,
		hc:       &http.Client{},
	}
	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.token == "" {
		return nil, ErrMissingCredential
	}
	return &client{cfg: &cfg}, nil
}
