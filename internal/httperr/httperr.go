package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromError maps a use-case error onto the right HTTP shape: business codes
// become 400s (404 for *_not_found), everything else is a 500 with the given
// fallback code.
func FromError(c *gin.Context, err error, fallbackCode string) {
	var be BusinessError
	if errors.As(err, &be) {
		if be.IsNotFound() {
			NotFound(c, be.Code, be.Code)
			return
		}
		BadRequest(c, be.Code, be.Code)
		return
	}
	Internal(c, fallbackCode, "internal error")
}
