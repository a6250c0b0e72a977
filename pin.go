package pinata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
)

// PinFileResponse is the body Pinata returns for a successful pin.
type PinFileResponse struct {
	IpfsHash    string `json:"IpfsHash"`
	PinSize     int64  `json:"PinSize"`
	Timestamp   string `json:"Timestamp"`
	IsDuplicate bool   `json:"isDuplicate"`
}

// PinFile uploads the file at path to Pinata and returns the CID it was
// pinned under, exactly as reported by the service.
func (c *client) PinFile(ctx context.Context, path string) (string, error) {
	log := logr.FromContextOrDiscard(ctx).WithName("pinata")

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileReadError{Path: path, Err: err}
	}
	name := filepath.Base(path)

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	// CreateFormFile sets Content-Type: application/octet-stream on the part.
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Add("Content-Type", mw.FormDataContentType())
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.cfg.token))
	req.Header.Add("X-Client", clientName)

	log.V(1).Info("pinning file", "name", name, "size", len(data), "endpoint", c.cfg.endpoint)
	res, err := c.cfg.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("send pin request: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read pin response: %w", err)
	}
	log.V(1).Info("pin response", "status", res.StatusCode, "bytes", len(raw))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &HTTPError{StatusCode: res.StatusCode, Body: string(raw)}
	}

	var pr PinFileResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return "", &MalformedResponseError{Body: string(raw), Err: err}
	}
	if pr.IpfsHash == "" {
		return "", &MalformedResponseError{Body: string(raw)}
	}
	if pr.IsDuplicate {
		log.V(1).Info("file was already pinned", "cid", pr.IpfsHash)
	}
	return pr.IpfsHash, nil
}
