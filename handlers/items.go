package handlers

import (
	"net/http"

	"hello-service/logger"
	"hello-service/metrics"
	"hello-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReadItem - item echo 핸들러
// GET /items/:item_id?q=<string>
//
// Response:
//
//	200: {"item_id": <int>, "q": <string|null>}
//	422: {"detail": [{"type": "int_parsing", "loc": ["path", "item_id"], ...}]}
func ReadItem(c *gin.Context) {
	var uri ItemURI
	if err := c.ShouldBindUri(&uri); err != nil {
		handleItemIDError(c, err)
		return
	}

	q, present := services.LastValue(c.QueryArray(QueryParam))
	metrics.ItemsRead.WithLabelValues(metrics.QueryLabel(present)).Inc()

	c.JSON(http.StatusOK, services.NewItem(int64(uri.ItemID), q))
}

// handleItemIDError answers 422 when item_id is not an integer
func handleItemIDError(c *gin.Context, err error) {
	input := c.Param(ItemIDParam)

	logger.Logger.Warn("item_id 변환 실패",
		zap.String(LogFieldEndpoint, "read_item"),
		zap.String(LogFieldField, ItemIDParam),
		zap.String(LogFieldInput, input),
		zap.Error(err),
	)
	metrics.ValidationErrors.WithLabelValues(c.FullPath(), ItemIDParam).Inc()

	c.JSON(http.StatusUnprocessableEntity, services.IntParsingError(services.LocationPath, ItemIDParam, input))
}
