package utils

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, body any) {
	ResponseJSON(w, http.StatusOK, body)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, body any) {
	ResponseJSON(w, http.StatusCreated, body)
}

// ------------- Error responses -------------

func ResponseError(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, ErrorResponse{OK: false, Error: message})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusBadRequest, message)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message)
}

// returns 405 Method Not Allowed
func ResponseMethodNotAllowed(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusMethodNotAllowed, message)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusConflict, message)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message)
}
