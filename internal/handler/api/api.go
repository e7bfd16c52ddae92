package api

import (
	"errors"
	"net/http"
	"strconv"

	"resource-backend/internal/handler/httperr"
	"resource-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps error kinds onto HTTP statuses. Unknown
// errors are treated as store failures.
func abortWithUseCaseError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	case errors.Is(err, usecase.ErrDuplicateID):
		httperr.AbortWithError(c, http.StatusConflict, err, msg, nil)
	case errors.Is(err, usecase.ErrResourceNotFound), errors.Is(err, usecase.ErrRateRefNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msg, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}

// bindListQuery reads the pagination window and the optional store
// predicate passthrough from the query string.
func bindListQuery(c *gin.Context) usecase.ListQuery {
	q := usecase.ListQuery{
		QueryType: c.Query("query_type"),
		Query:     c.Query("query"),
		Size:      usecase.DefaultListSize,
	}
	if position, err := strconv.Atoi(c.Query("position")); err == nil && position > 0 {
		q.Position = position
	}
	if size, err := strconv.Atoi(c.Query("size")); err == nil && size > 0 {
		q.Size = size
	}
	return q
}
