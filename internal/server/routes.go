package server

import (
	"vendora/internal/config"
	"vendora/internal/handler"

	"github.com/labstack/echo/v4"
)

// 全ハンドラのルートを登録する。
func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	sessionH *handler.SessionHandler,
	localeH *handler.LocaleHandler,
	cartH *handler.CartHandler,
	quoteH *handler.QuoteHandler,
	checkoutH *handler.CheckoutHandler,
) {
	sessionH.RegisterRoutes(e)
	localeH.RegisterRoutes(e)
	cartH.RegisterRoutes(e, cfg)
	quoteH.RegisterRoutes(e, cfg)
	checkoutH.RegisterRoutes(e, cfg)
}
