package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TikaExtractor extracts document text through an Apache Tika server
// (PUT /tika with the raw bytes, Accept: text/plain).
type TikaExtractor struct {
	baseURL string
	client  *http.Client
}

func NewTikaExtractor(baseURL string) *TikaExtractor {
	return &TikaExtractor{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *TikaExtractor) Close() error { return nil }

func (t *TikaExtractor) ExtractText(ctx context.Context, document []byte, mimeType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, t.baseURL+"/tika", bytes.NewReader(document))
	if err != nil {
		return "", err
	}
	if mimeType != "" {
		req.Header.Set("Content-Type", mimeType)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("tika: unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(text), nil
}
