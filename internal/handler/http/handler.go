// Package http implements the HTTP transport layer of the registry.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"net/http"

	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/internal/service"
	"github.com/centraplate/registry/internal/utils"
	"github.com/centraplate/registry/models"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeSuccess wraps data in the standard response envelope and writes it
// with the given status code.
func writeSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	utils.WriteJSON(w, models.APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	}, statusCode)
}

// writeError maps err to an HTTP status via statusFromError and writes the
// standard failure envelope. Internal fault detail (5xx) is replaced with
// the generic status text so it never leaks to the client.
func writeError(w http.ResponseWriter, err error) {
	statusCode := statusFromError(err)

	message := err.Error()
	if statusCode >= http.StatusInternalServerError {
		message = http.StatusText(statusCode)
	}

	utils.WriteJSON(w, models.APIResponse{
		Status:  false,
		Message: message,
		Error:   message,
	}, statusCode)
}
