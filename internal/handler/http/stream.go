// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/models"
)

const (
	snapshotEvent = "snapshot"

	defaultStreamHeartbeat = 15 * time.Second
)

// streamSnapshots holds one store subscription for the lifetime of the
// request and writes every snapshot as an SSE "snapshot" event. A comment
// line is written every heartbeat interval so idle proxies keep the
// connection open.
func (h *Handler) streamSnapshots(w http.ResponseWriter, r *http.Request, path models.Path) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, r, "*Handler.streamSnapshots", ErrStreamingUnsupported)
		return
	}

	// one-slot mailbox: a slow client skips to the newest snapshot
	snapshots := make(chan models.Snapshot, 1)
	sub, err := h.services.CredentialService.Watch(ctx, path, func(s models.Snapshot) {
		for {
			select {
			case snapshots <- s:
				return
			default:
			}
			select {
			case <-snapshots:
			default:
			}
		}
	})
	if err != nil {
		writeError(w, r, "*Handler.streamSnapshots", err)
		return
	}
	defer sub.Unsubscribe()

	w.Header().Set("Content-Type", eventStreamContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := h.streamHeartbeat
	if heartbeat <= 0 {
		heartbeat = defaultStreamHeartbeat
	}
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	log.Debug().Str("func", "*Handler.streamSnapshots").Str("path", path.String()).Msg("stream opened")
	defer log.Debug().Str("func", "*Handler.streamSnapshots").Str("path", path.String()).Msg("stream closed")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err = fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case snapshot := <-snapshots:
			data, err := snapshot.MarshalValue()
			if err != nil {
				log.Err(err).Str("func", "*Handler.streamSnapshots").Msg("error encoding snapshot")
				continue
			}
			if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", snapshotEvent, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
