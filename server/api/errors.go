package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	Logger "github.com/lumibond/corkboard/utils/log"
)

// apiError is an expected request failure with a user-facing message. The
// message is the contract: it distinguishes unauthorized / forbidden /
// not-found / bad-request cases precisely.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	return e.message
}

func errUnauthorized() *apiError {
	return &apiError{status: http.StatusUnauthorized, message: "Unauthorized"}
}

func errBadCredentials() *apiError {
	return &apiError{status: http.StatusUnauthorized, message: "invalid email or password"}
}

func errForbidden(msg string) *apiError {
	return &apiError{status: http.StatusForbidden, message: msg}
}

func errNotFound(msg string) *apiError {
	return &apiError{status: http.StatusNotFound, message: msg}
}

func errBadRequest(msg string) *apiError {
	return &apiError{status: http.StatusBadRequest, message: msg}
}

func errConflict(msg string) *apiError {
	return &apiError{status: http.StatusConflict, message: msg}
}

// mapLookupError classifies the outcome of a single-row lookup: a missing row
// becomes the given expected error, anything else stays an unexpected
// persistence failure and surfaces as a 500.
func mapLookupError(err error, expected *apiError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return expected
	}
	return err
}

// abortWithError terminates the request with the matching status code. An
// expected apiError keeps its precise message; anything else is logged and
// collapsed into a generic 500 so no internal detail leaks to the caller.
func abortWithError(c *gin.Context, err error, genericMsg string) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.status, gin.H{"error": apiErr.message})
		return
	}

	Logger.Log.WithField("path", c.FullPath()).Error(errors.Wrap(err, genericMsg))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": genericMsg})
}
