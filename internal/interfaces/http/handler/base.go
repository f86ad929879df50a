package handler

import (
	"errors"
	"net/http"

	"github.com/saasnotes/backend/internal/domain/identity"
	"github.com/saasnotes/backend/internal/domain/shared"
	"github.com/saasnotes/backend/internal/infrastructure/logger"
	"github.com/saasnotes/backend/internal/interfaces/http/dto"
	"github.com/saasnotes/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getCaller extracts the authenticated caller; the auth middleware
// guarantees it is present on protected routes.
func getCaller(c *gin.Context) (*identity.CallerContext, bool) {
	return middleware.GetCaller(c)
}

// OK sends a 200 response with the given body
func (h *BaseHandler) OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Created sends a 201 response with the given body
func (h *BaseHandler) Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

// BadRequest sends a 400 response with the given message
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message))
}

// asDomainError unwraps a domain error from an error chain
func asDomainError(err error) (*shared.DomainError, bool) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// HandleError translates an error to its HTTP response. Domain errors map
// to their documented status and message; anything else is reported
// generically so no internal detail leaks to the caller.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.HTTPStatusForDomainCode(domainErr.Code), dto.ErrorResponse{
			Error: domainErr.Message,
			Code:  dto.WireCodeForDomainCode(domainErr.Code),
		})
		return
	}
	logger.GetGinLogger(c).Error("Unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
}

// NotFound sends a 404 response with the given message
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(message))
}

// Unauthorized sends a 401 response with the given message
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
}
