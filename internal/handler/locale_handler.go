package handler

import (
	"net/http"

	"vendora/internal/geo"

	"github.com/labstack/echo/v4"
)

// /locale のHTTP。Accept-Languageと任意のX-Timezoneから
// 表示通貨のデフォルトを推定する。認証なし。
type LocaleHandler struct{}

func NewLocaleHandler() *LocaleHandler {
	return &LocaleHandler{}
}

func (h *LocaleHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/locale", h.get)
}

func (h *LocaleHandler) get(c echo.Context) error {
	lang := geo.ParseAcceptLanguage(c.Request().Header.Get("Accept-Language"))
	tz := c.Request().Header.Get("X-Timezone")

	return c.JSON(http.StatusOK, geo.NewResolver(lang, tz).Resolve())
}
