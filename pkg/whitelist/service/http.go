package service

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/wifi-whitelist/pkg/app/errors"
	apphttp "github.com/chainsafe/wifi-whitelist/pkg/app/http"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
)

const maxBodySize = 1 << 20 // 1MB

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the whitelist service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/whitelist", apphttp.HandleError(h.register))
	r.Get("/whitelist", apphttp.HandleError(h.list))
}

// ListResponse is the body of GET /whitelist
type ListResponse struct {
	Entries []*whitelist.EntryResponse `json:"entries"`
	Count   int                        `json:"count"`
}

func (h *HTTP) register(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req whitelist.RegisterRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	entry, err := h.service.Register(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusCreated, entry.ToResponse())
	return nil
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	entries, err := h.service.List(r.Context())
	if err != nil {
		return err
	}

	resp := ListResponse{
		Entries: make([]*whitelist.EntryResponse, 0, len(entries)),
		Count:   len(entries),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, e.ToResponse())
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
