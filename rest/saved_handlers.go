package rest

import (
	"net/http"

	"newsreader/di"

	"github.com/labstack/echo/v4"
)

type saveArticleRequest struct {
	ArticleID string `json:"articleId"`
}

type saveArticleResponse struct {
	ID string `json:"id"`
}

func registerSavedRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	saved := v1.Group("/saved")
	saved.GET("/:userID", handleLoadSavedArticles(container))
	saved.POST("/:userID", handleSaveArticle(container))
	saved.DELETE("/:userID/:articleID", handleUnsaveArticle(container))
	saved.POST("/:userID/undo", handleUndoUnsave(container))
}

func handleLoadSavedArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Param("userID")

		result, err := container.SavedArticlesUsecase.Load(c.Request().Context(), userID)
		if err != nil {
			return handleError(c, err, "load_saved_articles")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func handleSaveArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Param("userID")

		var req saveArticleRequest
		if err := c.Bind(&req); err != nil || req.ArticleID == "" {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "articleId is required"})
		}

		id, err := container.SavedArticlesUsecase.Save(c.Request().Context(), userID, req.ArticleID)
		if err != nil {
			return handleError(c, err, "save_article")
		}
		return c.JSON(http.StatusCreated, saveArticleResponse{ID: id})
	}
}

func handleUnsaveArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Param("userID")
		articleID := c.Param("articleID")

		result, err := container.SavedArticlesUsecase.Unsave(c.Request().Context(), userID, articleID)
		if err != nil {
			return handleError(c, err, "unsave_article")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func handleUndoUnsave(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Param("userID")

		result, err := container.SavedArticlesUsecase.Undo(c.Request().Context(), userID)
		if err != nil {
			return handleError(c, err, "undo_unsave")
		}
		return c.JSON(http.StatusOK, result)
	}
}
