// Package handlers exposes the storefront and admin HTTP surface. Handlers
// own session state (cart, checkout wizard, credentials) and delegate every
// persistent operation to the services layer, which talks to the store API.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"printshop-storefront/internal/api"
)

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondValidationErrors writes field-level validation errors
func respondValidationErrors(w http.ResponseWriter, errs map[string][]string) {
	respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"error":  "validation failed",
		"fields": errs,
	})
}

// decodeJSON reads the request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// upstreamStatus maps a store API failure to the status this server should
// answer with. Client-caused statuses pass through; everything else is a
// bad gateway.
func upstreamStatus(err error) int {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusBadRequest,
			http.StatusUnauthorized,
			http.StatusForbidden,
			http.StatusNotFound,
			http.StatusConflict,
			http.StatusUnprocessableEntity:
			return apiErr.StatusCode
		}
	}
	return http.StatusBadGateway
}

// upstreamMessage picks the store API's own error message when one exists,
// falling back otherwise. Transport failures never leak internals.
func upstreamMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// respondUpstreamError reports a store API failure to the client
func respondUpstreamError(w http.ResponseWriter, err error, fallback string) {
	log.Printf("Store API error: %v", err)
	respondError(w, upstreamStatus(err), upstreamMessage(err, fallback))
}
