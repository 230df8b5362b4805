package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/supermanager/interview-eval/internal/service"
)

// StatusFor maps a service error onto an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateName), errors.Is(err, service.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidScore),
		errors.Is(err, service.ErrInvalidLabel),
		errors.Is(err, service.ErrInvalidEnum),
		errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as a dto.ErrorResponse. Unclassified errors are
// logged and answered with a generic message so storage details stay
// server-side.
func RespondError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(status, dto.ErrorResponse{Error: "Internal server error"})
		return
	}
	log.Warn().Err(err).Str("path", c.FullPath()).Int("status", status).Msg("Request rejected")
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

// RespondBindError answers a request whose body or query failed to bind,
// listing each failed field when the validator reports them.
func RespondBindError(c *gin.Context, err error) {
	log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request")

	var details []string
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details = append(details, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
	} else {
		details = []string{err.Error()}
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request", Details: details})
}

// BoolQuery reads a boolean query parameter, falling back to def when the
// parameter is absent or unparsable.
func BoolQuery(c *gin.Context, name string, def bool) bool {
	raw, ok := c.GetQuery(name)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// RespondDeletion answers a guarded delete: 409 with the impact when the
// caller has not confirmed, 200 with the impact once the cascade ran.
func RespondDeletion(c *gin.Context, impact *dto.DeletionImpactResponse) {
	if !impact.Deleted {
		c.JSON(http.StatusConflict, impact)
		return
	}
	c.JSON(http.StatusOK, impact)
}
