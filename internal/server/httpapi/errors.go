package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/exercisetracker/internal/common"
	"github.com/dmitrijs2005/exercisetracker/internal/server/dto"
	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP statuses. Unexpected errors are
// attached to the gin context, so RequestLogger logs them, and answered
// with a generic message.
func writeError(c *gin.Context, err error) {
	var (
		status int
		msg    string
	)

	switch {
	case errors.Is(err, common.ErrorNotFound):
		status, msg = http.StatusNotFound, "unknown user id"
	case errors.Is(err, common.ErrorAlreadyExists):
		status, msg = http.StatusBadRequest, "username already taken"
	case errors.Is(err, common.ErrorValidation):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrExportDisabled):
		status, msg = http.StatusNotImplemented, common.ErrExportDisabled.Error()
	default:
		_ = c.Error(err)
		status, msg = http.StatusInternalServerError, common.ErrorInternal.Error()
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Error:     msg,
		RequestID: RequestIDFromContext(c),
	})
}
