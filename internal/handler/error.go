package handler

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// AppErrorのタグをHTTPステータスへ写す。
// 生の内部エラーはそのまま外へ出さない
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	if ae, ok := usecase.AsAppError(err); ok {
		return c.JSON(statusOf(ae.Kind), ErrorResponse{Error: ae.Message})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func statusOf(kind usecase.ErrorKind) int {
	switch kind {
	case usecase.KindNotFound:
		return http.StatusNotFound
	case usecase.KindValidation, usecase.KindEmptyCart:
		return http.StatusBadRequest
	case usecase.KindUnauthenticated:
		return http.StatusUnauthorized
	case usecase.KindConflict:
		return http.StatusConflict
	case usecase.KindTxFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}
