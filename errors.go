package pinata

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when no PINATA_JWT could be found.
var ErrMissingCredential = errors.New("pinata JWT not found: add PINATA_JWT to a .env file or the environment")

// FileReadError is returned when the file to pin cannot be read. No request
// is sent in that case.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// HTTPError is returned for a non-2xx response. Body is the response body as
// sent by the service.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected response status: %d", e.StatusCode)
	}
	// Quoted so multi-line bodies stay on one line.
	return fmt.Sprintf("unexpected response status: %d: %q", e.StatusCode, e.Body)
}

// MalformedResponseError is returned when a successful response cannot be
// decoded or carries no IpfsHash.
type MalformedResponseError struct {
	Body string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed pin response: %v", e.Err)
	}
	return "malformed pin response: missing IpfsHash"
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
