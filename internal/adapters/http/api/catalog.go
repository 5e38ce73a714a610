package api

import (
	"net/http"

	"github.com/okian/explorer/internal/domain/catalog"
)

// CatalogHandler handles catalog requests.
type CatalogHandler struct {
	deps CatalogProvider
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps CatalogProvider) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

type catalogResponse struct {
	Endpoints []catalog.Descriptor `json:"endpoints"`
	Language  string               `json:"language"`
}

// HandleGetCatalog handles GET /api/catalog requests.
func (h *CatalogHandler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{
		Endpoints: h.deps.Catalog(r.Context()),
		Language:  catalog.Language,
	})
}
