package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/parlaydev/betledger/internal/ingest"
)

const maxImportBytes = 10 << 20

// ExportSnapshot downloads the full dataset as JSON
func (h *Handler) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	snapshot, err := h.store.Snapshot(ctx)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to load snapshot", err)
		return
	}

	filename := fmt.Sprintf("betledger-%s.json", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	h.respondJSON(w, http.StatusOK, snapshot)
}

// ImportSnapshot replaces the dataset with an uploaded payload.
// Validation is all-or-nothing: a bad record rejects the whole import
// and leaves existing data untouched.
func (h *Handler) ImportSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "failed to read request body", err)
		return
	}

	snapshot, err := ingest.ParseSnapshot(raw)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := h.store.ReplaceAll(ctx, *snapshot); err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to import snapshot", err)
		return
	}

	h.afterMutation(ctx)
	h.respondJSON(w, http.StatusOK, map[string]any{
		"imported_bets":     len(snapshot.Bets),
		"imported_deposits": len(snapshot.Deposits),
	})
}

// BackupSnapshot writes a timestamped copy of the dataset to Redis
func (h *Handler) BackupSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.mirror == nil {
		h.respondError(w, http.StatusServiceUnavailable, "backups require redis", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	snapshot, err := h.store.Snapshot(ctx)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to load snapshot", err)
		return
	}

	key, err := h.mirror.Backup(ctx, snapshot)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to write backup", err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"backup_key": key,
		"bets":       len(snapshot.Bets),
	})
}

// RestoreSnapshot replaces the dataset with the mirrored copy
func (h *Handler) RestoreSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.mirror == nil {
		h.respondError(w, http.StatusServiceUnavailable, "restore requires redis", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	snapshot, err := h.mirror.Pull(ctx)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to read mirror", err)
		return
	}
	if snapshot == nil {
		h.respondError(w, http.StatusNotFound, "no mirrored snapshot to restore", nil)
		return
	}

	if err := h.store.ReplaceAll(ctx, *snapshot); err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to restore snapshot", err)
		return
	}

	h.afterMutation(ctx)
	h.respondJSON(w, http.StatusOK, map[string]any{
		"restored_bets":     len(snapshot.Bets),
		"restored_deposits": len(snapshot.Deposits),
	})
}
