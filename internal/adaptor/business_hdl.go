package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"listacrosseu/internal/dto/request"
	"listacrosseu/internal/usecase"
	"listacrosseu/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BusinessHandler struct {
	service usecase.BusinessService
	log     *zap.Logger
}

func NewBusinessHandler(service usecase.BusinessService, log *zap.Logger) *BusinessHandler {
	return &BusinessHandler{
		service: service,
		log:     log.With(zap.String("handler", "business")),
	}
}

// parseFilter reads the optional listing filters from the query string.
// Malformed numeric values fall back to defaults or nil, never an error.
func parseFilter(r *http.Request) *request.BusinessFilterRequest {
	query := r.URL.Query()

	filter := &request.BusinessFilterRequest{
		Country:   query.Get("country"),
		City:      query.Get("city"),
		Category:  query.Get("category"),
		Search:    query.Get("search"),
		Latitude:  utils.ParseFloat(query.Get("latitude")),
		Longitude: utils.ParseFloat(query.Get("longitude")),
	}

	if radius := utils.ParseFloat(query.Get("radius")); radius != nil {
		filter.RadiusKM = *radius
	}

	filter.Page = utils.ParseInt(query.Get("page"), 1)

	// "limit" with "page_size" as an accepted alias
	limit := query.Get("limit")
	if limit == "" {
		limit = query.Get("page_size")
	}
	filter.PerPage = utils.ParseInt(limit, request.DefaultPerPage)

	return filter
}

// GetBusinesses handles GET /api/businesses
func (h *BusinessHandler) GetBusinesses(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r)

	page, err := h.service.ListBusinesses(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err, "list businesses")
		return
	}

	// Shape: {"businesses":[...],"pagination":{...}}
	response := map[string]interface{}{
		"businesses": page.Data,
		"pagination": page.Pagination,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// GetBusinessByID handles GET /api/businesses/{id}
func (h *BusinessHandler) GetBusinessByID(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "id")
	if businessID == "" {
		utils.ResponseBadRequest(w, "Business ID is required", nil)
		return
	}

	business, err := h.service.GetBusinessByID(r.Context(), businessID)
	if err != nil {
		h.handleServiceError(w, err, "get business by ID")
		return
	}

	utils.ResponseSuccess(w, "Business retrieved successfully", business)
}

// GetCountryBusinesses handles GET /api/countries/{countryCode}/businesses
func (h *BusinessHandler) GetCountryBusinesses(w http.ResponseWriter, r *http.Request) {
	countryCode := chi.URLParam(r, "countryCode")
	if countryCode == "" {
		utils.ResponseBadRequest(w, "Country code is required", nil)
		return
	}

	query := r.URL.Query()
	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("limit"), request.DefaultPerPage),
	}

	businesses, err := h.service.ListByCountry(r.Context(), countryCode, page)
	if err != nil {
		h.handleServiceError(w, err, "list country businesses")
		return
	}

	response := map[string]interface{}{
		"businesses": businesses.Data,
		"pagination": businesses.Pagination,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// handleServiceError maps service errors for business operations
func (h *BusinessHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
