package pinata

import "net/http"

// Option is an option configuring a Pinata client.
type Option func(cfg *clientConfig) error

// WithEndpoint sets the URL files are POSTed to (default
// https://api.pinata.cloud/pinning/pinFileToIPFS).
func WithEndpoint(endpoint string) Option {
	return func(cfg *clientConfig) error {
		if endpoint != "" {
			cfg.endpoint = endpoint
		}
		return nil
	}
}

// WithToken sets the JWT to use in the Authorization header when making
// requests to the API.
func WithToken(token string) Option {
	return func(cfg *clientConfig) error {
		cfg.token = token
		return nil
	}
}

// WithHTTPClient sets the HTTP client used to send requests. The default is a
// zero value http.Client, so the transport defaults apply.
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *clientConfig) error {
		if hc != nil {
			cfg.hc = hc
		}
		return nil
	}
}
