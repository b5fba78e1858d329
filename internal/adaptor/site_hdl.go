package adaptor

import (
	"net/http"

	"secure-it/internal/dto/request"
	"secure-it/internal/usecase"
	"secure-it/pkg/utils"

	"go.uber.org/zap"
)

type SiteHandler struct {
	service usecase.SiteService
	log     *zap.Logger
}

func NewSiteHandler(service usecase.SiteService, log *zap.Logger) *SiteHandler {
	return &SiteHandler{
		service: service,
		log:     log,
	}
}

// GetMode handles GET /api/site/mode
func (h *SiteHandler) GetMode(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetMode(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get site mode")
		return
	}

	utils.ResponseSuccess(w, response)
}

// SetMode handles PUT /api/site/mode
func (h *SiteHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req request.SetSiteModeRequest

	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, h.log, err)
		return
	}

	response, err := h.service.SetMode(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "set site mode")
		return
	}

	utils.ResponseSuccess(w, response)
}

// ToggleMode handles POST /api/site/mode/toggle
func (h *SiteHandler) ToggleMode(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ToggleMode(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "toggle site mode")
		return
	}

	utils.ResponseSuccess(w, response)
}

// Contact handles GET /api/site/contact?mode=
func (h *SiteHandler) Contact(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.Contact(r.Context(), r.URL.Query().Get("mode"))
	if err != nil {
		handleServiceError(w, h.log, err, "get contact content")
		return
	}

	utils.ResponseSuccess(w, response)
}
