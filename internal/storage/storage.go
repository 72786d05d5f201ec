package storage

import (
	"context"
	"io"
	"time"
)

// Uploader archives verified documents (CVs, certificates) and returns the
// stored object key.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}

type Signer interface {
	SignedGetURL(ctx context.Context, objectName string, ttl time.Duration) (string, error)
}
