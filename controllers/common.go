package controllers

import (
	"strconv"

	"bukubekas/errors"
	"bukubekas/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondAppError petakan kode AppError ke bentuk response yang sesuai
func respondAppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodePromoConflict, errors.ErrCodeDBDuplicate, errors.ErrCodeUserExists:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeBookNotFound, errors.ErrCodePromoNotFound,
		errors.ErrCodeOrderNotFound, errors.ErrCodeUserNotFound, errors.ErrCodeDBNotFound:
		response.NotFound(c)
	case errors.ErrCodeDBError:
		response.ServerError(c)
	default:
		response.BadRequest(c, appErr.Message)
	}
}

func parsePagination(c *gin.Context) (int, int) {
	page := 0
	limit := 10

	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	return page, limit
}

// respondDelete petakan hasil delete gorm: error jadi server error,
// nol baris terhapus jadi data tidak ditemukan
func respondDelete(c *gin.Context, result *gorm.DB) {
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}
	response.Success(c, nil)
}

func currentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}
