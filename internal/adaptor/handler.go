package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"secure-it/internal/usecase"
	"secure-it/pkg/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

const msgInvalidJSON = "Invalid JSON payload"

var errTrailingData = errors.New("unexpected data after JSON body")

type Handler struct {
	Auth *AuthHandler
	Site *SiteHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth: NewAuthHandler(service.Auth, log),
		Site: NewSiteHandler(service.Site, log),
	}
}

// decodeJSON reads a single JSON value from the request body into dst. An
// empty body decodes as {}.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	// anything but whitespace after the value is rejected, including a stray }
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// respondDecodeError writes a 400 for a body decodeJSON rejected.
func respondDecodeError(w http.ResponseWriter, log *zap.Logger, err error) {
	log.Debug("Rejected request body", zap.Error(err))

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		utils.ResponseBadRequest(w, fmt.Sprintf("Field %q must be a %s.", typeErr.Field, typeErr.Type.Kind()))
		return
	}
	utils.ResponseBadRequest(w, msgInvalidJSON)
}

// handleServiceError maps usecase errors to a status code. Only the
// client-safe message of an AppError is ever written back.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var appErr *usecase.AppError
	if !errors.As(err, &appErr) {
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	switch appErr.Kind {
	case usecase.KindValidation:
		log.Warn(operation+" validation failed", zap.String("reason", appErr.Message))
		utils.ResponseBadRequest(w, appErr.Message)

	case usecase.KindConflict:
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, appErr.Message)

	case usecase.KindAuthentication, usecase.KindNotFound:
		log.Warn(operation+" failed - invalid credentials", zap.String("reason", appErr.Message))
		utils.ResponseUnauthorized(w, appErr.Message)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, appErr.Message)
	}
}
