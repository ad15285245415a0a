package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/davidpincheira/coding-interview-backend-level-3/internal/validation"

	"github.com/gin-gonic/gin"
)

// respondFieldErrors writes the {errors: [...]} envelope used by every
// validation-style failure.
func respondFieldErrors(c *gin.Context, status int, errs []validation.FieldError) {
	c.JSON(status, gin.H{"errors": errs})
}

// parseItemID parses the :id path parameter. Anything that is not a positive
// integer gets a 400 before any storage call is made.
func parseItemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondFieldErrors(c, http.StatusBadRequest, []validation.FieldError{
			{Field: "id", Message: "Invalid item ID format"},
		})
		return 0, false
	}
	return id, true
}

// bindPayload decodes the JSON body into dst. An empty body yields the
// payload-required envelope; a body that cannot be parsed yields the same
// envelope family with an invalid-body message.
func bindPayload(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			respondFieldErrors(c, http.StatusBadRequest, []validation.FieldError{
				{Field: "payload", Message: "Request payload is required"},
			})
		} else {
			respondFieldErrors(c, http.StatusBadRequest, []validation.FieldError{
				{Field: "payload", Message: "Invalid request body"},
			})
		}
		return false
	}
	return true
}
