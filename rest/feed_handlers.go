package rest

import (
	"net/http"

	"newsreader/di"

	"github.com/labstack/echo/v4"
)

type batchFetchRequest struct {
	URLs []string `json:"urls"`
}

func registerFeedRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	feeds := v1.Group("/feeds")
	feeds.GET("/fetch", handleFetchFeed(container))
	feeds.POST("/fetch", handleFetchFeedBatch(container))
}

func handleFetchFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		feedURL := c.QueryParam("url")

		items, err := container.FetchFeedUsecase.Execute(c.Request().Context(), feedURL)
		if err != nil {
			return handleError(c, err, "fetch_feed")
		}
		return c.JSON(http.StatusOK, items)
	}
}

func handleFetchFeedBatch(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req batchFetchRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		}

		items, err := container.FetchFeedUsecase.ExecuteBatch(c.Request().Context(), req.URLs)
		if err != nil {
			return handleError(c, err, "fetch_feed_batch")
		}
		return c.JSON(http.StatusOK, items)
	}
}
