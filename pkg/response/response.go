package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "catalog-api/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error renders an HTTPError with its own status. Anything else is a 500.
func Error(c *gin.Context, err error) {
	he, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		InternalError(c, err)
		return
	}
	c.AbortWithStatusJSON(he.StatusCode, Resp{
		ErrorCode: he.Code,
		Message:   he.Message,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	Error(c, pkgErrors.ErrTooManyRequests)
}
