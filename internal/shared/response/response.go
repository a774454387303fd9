// Package response normalizes successful results into the uniform
// {status, message, document} envelope at the HTTP boundary and renders
// error payloads.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const StatusSuccess = "success"

// Envelope is the uniform wrapper applied to successful single-document
// results.
type Envelope struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Document any    `json:"document,omitempty"`
}

// ErrorBody is the payload rendered for failed requests.
type ErrorBody struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

var verbMessages = map[string]string{
	http.MethodGet:    "fetched",
	http.MethodPost:   "created",
	http.MethodPut:    "updated",
	http.MethodPatch:  "updated",
	http.MethodDelete: "deleted",
}

// Wrap turns a result into an Envelope unless it already is one. The message
// is the override when given, otherwise derived from the HTTP verb; only a GET
// without a path parameter speaks of "documents" in the plural. Wrap is pure.
func Wrap(method string, single bool, override string, result any) any {
	switch result.(type) {
	case Envelope, *Envelope:
		return result
	}

	message := override
	if message == "" {
		message = defaultMessage(method, single)
	}

	return Envelope{
		Status:   StatusSuccess,
		Message:  message,
		Document: result,
	}
}

func defaultMessage(method string, single bool) string {
	action, ok := verbMessages[method]
	if !ok {
		action = "processed"
	}

	if method == http.MethodGet && !single {
		return "Successfully fetched documents"
	}
	return "Successfully " + action + " document"
}

// OK writes the enveloped document with status 200.
func OK(c *gin.Context, document any) {
	respond(c, http.StatusOK, "", document)
}

// Created writes the enveloped document with status 201.
func Created(c *gin.Context, document any) {
	respond(c, http.StatusCreated, "", document)
}

// OKWithMessage writes the enveloped document with an explicit message.
func OKWithMessage(c *gin.Context, message string, document any) {
	respond(c, http.StatusOK, message, document)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func respond(c *gin.Context, statusCode int, override string, document any) {
	single := len(c.Params) > 0
	c.JSON(statusCode, Wrap(c.Request.Method, single, override, document))
}

// Error responses
func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorBody{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details any) {
	c.JSON(statusCode, ErrorBody{
		Status:  "error",
		Code:    code,
		Message: message,
		Details: details,
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "NOT_FOUND", message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, "CONFLICT", message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}
