package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"listacrosseu/internal/dto/request"
	"listacrosseu/internal/usecase"
	"listacrosseu/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	importService   usecase.ImportService
	businessService usecase.BusinessService
	userService     usecase.UserService
	maxUploadBytes  int64
	log             *zap.Logger
}

func NewAdminHandler(
	importService usecase.ImportService,
	businessService usecase.BusinessService,
	userService usecase.UserService,
	config *utils.Config,
	log *zap.Logger,
) *AdminHandler {
	maxUploadMB := config.Import.MaxUploadMB
	if maxUploadMB <= 0 {
		maxUploadMB = 25
	}
	return &AdminHandler{
		importService:   importService,
		businessService: businessService,
		userService:     userService,
		maxUploadBytes:  maxUploadMB << 20,
		log:             log.With(zap.String("handler", "admin")),
	}
}

// ImportCSV handles POST /api/admin/import-csv. The CSV arrives as a
// multipart upload (field "file"), never as a server-side path.
func (h *AdminHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "CSV file is required (multipart field \"file\")", nil)
		return
	}
	defer file.Close()

	h.log.Info("CSV import started",
		zap.String("filename", header.Filename),
		zap.Int64("size", header.Size),
	)

	summary, err := h.importService.ImportCSV(r.Context(), file)
	if err != nil {
		if strings.Contains(err.Error(), "invalid csv") {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		h.log.Error("Failed to import CSV", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	// Shape: {"inserted":N,"errors":N,"total":N}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(summary)
}

// CreateBusiness handles POST /api/admin/businesses
func (h *AdminHandler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	business, err := h.businessService.CreateBusiness(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create business")
		return
	}

	utils.ResponseCreated(w, "Business created successfully", business)
}

// RegisterUser handles POST /api/admin/users
func (h *AdminHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register user")
		return
	}

	utils.ResponseCreated(w, "User registered successfully", user)
}

// handleServiceError maps service errors for admin operations
func (h *AdminHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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

	case strings.Contains(errMsg, "already exists"):
		h.log.Warn(operation+" failed - already exists",
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
