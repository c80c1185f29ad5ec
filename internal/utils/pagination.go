package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/freelance-marketplace-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Skip  int
	Limit int
}

// PaginationResponse represents the pagination metadata in API responses
type PaginationResponse struct {
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context) PaginationParams {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", strconv.Itoa(constants.DefaultSkip)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultLimit)))

	if skip < 0 {
		skip = constants.DefaultSkip
	}
	if limit < 1 || limit > constants.MaxLimit {
		limit = constants.DefaultLimit
	}

	return PaginationParams{
		Skip:  skip,
		Limit: limit,
	}
}
