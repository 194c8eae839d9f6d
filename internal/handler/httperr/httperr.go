package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody carries the human readable message of a failed request.
type ErrorBody struct {
	Message string `json:"message"`
}

// Response is the JSON envelope of every non-2xx answer.
type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

// FieldDetail names the offending input of a 400 response.
type FieldDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{Status: status, Error: ErrorBody{Message: msg}, Detail: detail}
}

// InternalError is the body sent when the cause must stay private.
func InternalError() Response {
	return NewResponse(http.StatusInternalServerError, "Internal server error", nil)
}

// AbortWithError records err on the context for the error middleware and writes resp.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithField answers 400 naming the field that failed validation.
func AbortWithField(c *gin.Context, err error, field, reason string) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", FieldDetail{Field: field, Reason: reason})
}
