package api

import (
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/internal/httputil"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest  = "invalid_request"
	ErrCodeInvalidConfig   = "invalid_configuration"
	ErrCodeMalformedLayout = "malformed_layout"
	ErrCodeTooLarge        = "board_too_large"
	ErrCodeInternalError   = "internal_error"
)

// respondError delegates to the shared httputil.RespondError helper.
func respondError(c *gin.Context, status int, code, message string) {
	httputil.RespondError(c, status, code, message)
}
