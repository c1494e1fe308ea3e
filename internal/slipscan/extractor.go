// Package slipscan extracts bet details from sportsbook slip
// screenshots using a vision model behind an OpenAI-compatible API.
// Extraction output is a draft: the caller normalizes and the user
// confirms before anything is saved.
package slipscan

import (
	"context"

	"github.com/parlaydev/betledger/pkg/models"
)

// Extractor pulls bet drafts out of a slip image
type Extractor interface {
	Extract(ctx context.Context, imageBase64, mimeType string) ([]models.BetDraft, error)
}
