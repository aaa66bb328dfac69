// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-creds-manager/internal/utils"
	"github.com/MKhiriev/go-creds-manager/models"
)

const (
	eventStreamContentType = "text/event-stream"

	// maxItemBodySize bounds a PUT body.
	maxItemBodySize = 1 << 20
)

func wantsEventStream(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), eventStreamContentType)
}

// pathFromRequest builds the store path from the {folderType} and optional
// {subfolder} URL parameters.
func pathFromRequest(r *http.Request) (models.Path, error) {
	ft, err := models.ParseFolderType(chi.URLParam(r, "folderType"))
	if err != nil {
		return models.Path{}, err
	}

	subfolder := chi.URLParam(r, "subfolder")
	if subfolder == "" {
		return models.FolderPath(ft), nil
	}

	// chi matches on the raw path when the URL carries escaped separators
	if r.URL.RawPath != "" {
		if subfolder, err = url.PathUnescape(subfolder); err != nil {
			return models.Path{}, fmt.Errorf("%w: %w", models.ErrInvalidPath, err)
		}
	}
	if err = models.ValidateSubfolderName(subfolder); err != nil {
		return models.Path{}, err
	}

	return models.SubfolderPath(ft, subfolder), nil
}

// getData answers with the JSON value at the path, or streams it as
// Server-Sent Events when the client accepts text/event-stream.
func (h *Handler) getData(w http.ResponseWriter, r *http.Request) {
	path, err := pathFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.getData", err)
		return
	}

	if wantsEventStream(r) {
		h.streamSnapshots(w, r, path)
		return
	}

	var value any
	if path.IsFolder() {
		value, err = h.services.CredentialService.Folder(r.Context(), path.FolderType)
	} else {
		value, err = h.services.CredentialService.Item(r.Context(), path)
	}
	if err != nil {
		writeError(w, r, "*Handler.getData", err)
		return
	}

	_, _ = utils.WriteJSON(w, value, http.StatusOK)
}

// putData fully replaces the fields of a subfolder.
func (h *Handler) putData(w http.ResponseWriter, r *http.Request) {
	path, err := pathFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.putData", err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxItemBodySize))
	if err != nil {
		writeError(w, r, "*Handler.putData", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	item, err := models.DecodeDataItem(body)
	if err != nil {
		writeError(w, r, "*Handler.putData", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err = h.services.CredentialService.Save(r.Context(), path, item); err != nil {
		writeError(w, r, "*Handler.putData", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteData removes the path and everything beneath it.
func (h *Handler) deleteData(w http.ResponseWriter, r *http.Request) {
	path, err := pathFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteData", err)
		return
	}

	if err = h.services.CredentialService.Delete(r.Context(), path); err != nil {
		writeError(w, r, "*Handler.deleteData", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
