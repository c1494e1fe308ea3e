package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/parlaydev/betledger/internal/ingest"
	"github.com/parlaydev/betledger/pkg/models"
)

// ScanSlip extracts bet drafts from an uploaded slip screenshot.
// Drafts are returned for the user to confirm, not saved.
func (h *Handler) ScanSlip(w http.ResponseWriter, r *http.Request) {
	if h.extractor == nil {
		h.respondError(w, http.StatusServiceUnavailable, "slip scanning is not configured", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 90*time.Second)
	defer cancel()

	var req models.ScanRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxImportBytes)).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	drafts, err := h.extractor.Extract(ctx, req.ImageBase64, req.MimeType)
	if err != nil {
		h.respondError(w, http.StatusBadGateway, "slip extraction failed", err)
		return
	}

	now := time.Now().UTC()
	normalized := make([]models.BetDraft, 0, len(drafts))
	for _, draft := range drafts {
		normalized = append(normalized, ingest.NormalizeDraft(draft, now))
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"drafts": normalized,
		"count":  len(normalized),
	})
}
