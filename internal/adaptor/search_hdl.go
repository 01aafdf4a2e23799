package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"listacrosseu/internal/usecase"
	"listacrosseu/pkg/utils"

	"go.uber.org/zap"
)

type SearchHandler struct {
	service usecase.SearchService
	log     *zap.Logger
}

func NewSearchHandler(service usecase.SearchService, log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		log:     log.With(zap.String("handler", "search")),
	}
}

// Search handles GET /api/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	results, err := h.service.Search(r.Context(),
		query.Get("q"),
		query.Get("country"),
		query.Get("category"),
	)
	if err != nil {
		if strings.Contains(err.Error(), "invalid") {
			h.log.Warn("Invalid search request", zap.Error(err))
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		h.log.Error("Failed to search", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	// Shape: {"results":[...],"count":N}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(results)
}
