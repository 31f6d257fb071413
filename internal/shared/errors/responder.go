package errors

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the media type for Problem Details responses.
const ContentTypeProblemJSON = "application/problem+json"

// Respond sends a ProblemDetail response with proper content type.
func Respond(c *gin.Context, problem ProblemDetail) {
	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// ErrorMapper maps domain/application errors to ProblemDetail.
type ErrorMapper func(err error) (ProblemDetail, bool)

// Responder translates application errors into Problem Details responses,
// trying each registered mapper before falling back to a generic 500.
type Responder struct {
	mappers []ErrorMapper
}

// NewResponder creates a responder with custom error mappers.
func NewResponder(mappers ...ErrorMapper) *Responder {
	return &Responder{mappers: mappers}
}

// RespondError converts err to a problem response. Errors that already are a
// ProblemDetail pass through unchanged.
func (r *Responder) RespondError(c *gin.Context, err error) {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		if problem.Detail == "" {
			problem.Detail = err.Error()
		}
		Respond(c, problem)
		return
	}
	for _, mapper := range r.mappers {
		if p, ok := mapper(err); ok {
			Respond(c, p)
			return
		}
	}
	Respond(c, ErrInternal.WithDetail(err.Error()))
}

// BadRequest sends a 400 problem response.
func BadRequest(c *gin.Context, detail string) {
	Respond(c, ErrBadRequest.WithDetail(detail))
}

// Unauthorized sends a 401 problem response.
func Unauthorized(c *gin.Context, detail string) {
	Respond(c, ErrUnauthorized.WithDetail(detail))
}
