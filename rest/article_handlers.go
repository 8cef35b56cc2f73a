package rest

import (
	"net/http"

	"newsreader/di"

	"github.com/labstack/echo/v4"
)

type articleContentResponse struct {
	URL     string `json:"url"`
	Content string `json:"content"`
}

func registerArticleRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	articles := v1.Group("/articles")
	articles.GET("/content", handleArticleContent(container))
}

// handleArticleContent always answers 200 with a renderable fragment; scrape
// failures are folded into the fragment by the usecase.
func handleArticleContent(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleURL := c.QueryParam("url")
		if articleURL == "" {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "url query parameter is required"})
		}

		content := container.ScrapeArticleUsecase.Execute(c.Request().Context(), articleURL)
		return c.JSON(http.StatusOK, articleContentResponse{URL: articleURL, Content: content})
	}
}
