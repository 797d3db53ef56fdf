package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CookieName = "sid"
	// echo contextに入れるキー
	CtxSessionIDKey = "session_id"
)

// EnsureSession はsidクッキーを保証するミドルウェア。
// 無ければuuidを発行してクッキーを付ける。既にあれば何もしない（冪等）。
func EnsureSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err == nil && cookie.Value != "" {
				c.Set(CtxSessionIDKey, cookie.Value)
				return next(c)
			}

			sid := uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     CookieName,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Expires:  time.Now().Add(24 * time.Hour),
			})
			c.Set(CtxSessionIDKey, sid)

			return next(c)
		}
	}
}

// FromContext はミドルウェアが入れたセッションIDを取り出す。
func FromContext(c echo.Context) (string, bool) {
	sid, ok := c.Get(CtxSessionIDKey).(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}
