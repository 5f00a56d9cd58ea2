package api

import (
	"net/http"

	"book-rental-tracker/internal/handler/httperr"
	"book-rental-tracker/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Lookup misses are 404. Everything else, storage failures included, is 400
// with the underlying message.
func abortWithUsecaseError(c *gin.Context, err error) {
	if kind, ok := errs.NotFoundKind(err); ok {
		httperr.AbortWithError(c, http.StatusNotFound, err, errs.NotFound(kind).Error())
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
}

func abortWithBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg)
}
