package extract

import "context"

// Provider extracts plain text from an uploaded document (PDF, DOCX, ...).
// The verification pipeline treats extraction as an external collaborator; a
// failed call surfaces as an IO error, never as a verification verdict.
type Provider interface {
	ExtractText(ctx context.Context, document []byte, mimeType string) (string, error)
	Close() error
}
