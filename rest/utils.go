package rest

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"newsreader/domain"
	"newsreader/utils/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// handleError maps domain sentinels and AppError codes onto HTTP statuses.
// Errors that reach here without a code are wrapped as unknown so the log
// line still carries request context.
func handleError(c echo.Context, err error, operation string) error {
	logged := err
	var coded *errors.AppError
	if !stderrors.As(err, &coded) {
		logged = errors.UnknownError("request failed", err, map[string]interface{}{
			"path":   c.Request().URL.Path,
			"method": c.Request().Method,
		})
	}
	errors.LogError(slog.Default(), logged, operation)

	switch {
	case stderrors.Is(err, domain.ErrSavedArticleMissing):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "saved article not found"})
	case stderrors.Is(err, domain.ErrFeedItemNotDeletable):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "feed items cannot be removed from the saved list"})
	case stderrors.Is(err, domain.ErrNothingToUndo):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "nothing to undo"})
	case stderrors.Is(err, domain.ErrEmptyFeed):
		return c.JSON(http.StatusNoContent, nil)
	case stderrors.Is(err, domain.ErrFeedParse):
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "feed could not be parsed", Code: string(errors.ErrCodeParse)})
	case stderrors.Is(err, domain.ErrFeedFetch):
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "feed could not be fetched", Code: string(errors.ErrCodeFetch)})
	case stderrors.Is(err, domain.ErrRemoteStoreTimeout):
		return c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "remote store timed out", Code: string(errors.ErrCodeTimeout)})
	case stderrors.Is(err, domain.ErrRemoteStore):
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "remote store unavailable", Code: string(errors.ErrCodeRemoteStore)})
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.JSON(statusForCode(appErr.Code), ErrorResponse{Error: appErr.Message, Code: string(appErr.Code)})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func statusForCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeValidation:
		return http.StatusBadRequest
	case errors.ErrCodeEmptyResult:
		return http.StatusNoContent
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeFetch, errors.ErrCodeParse, errors.ErrCodeRemoteStore:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
