package handler

import (
	"net/http"
	"strconv"

	"vendora/internal/config"
	"vendora/internal/domain/model"
	"vendora/internal/middleware"
	"vendora/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /delivery/quote のHTTP
type QuoteHandler struct {
	uc *usecase.QuoteUsecase
}

// DI
func NewQuoteHandler(uc *usecase.QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

func (h *QuoteHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/delivery")
	g.Use(middleware.GuestSession(cfg))

	g.GET("/quote", h.getQuote)
}

func (h *QuoteHandler) getQuote(c echo.Context) error {
	sessionKey, ok := getSessionKeyFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	address := c.QueryParam("address")

	//vendor_lat/vendor_lng は両方そろったときだけ使う
	var vendor *model.LatLng
	latStr := c.QueryParam("vendor_lat")
	lngStr := c.QueryParam("vendor_lng")
	if latStr != "" && lngStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid vendor_lat"})
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid vendor_lng"})
		}
		vendor = &model.LatLng{Lat: lat, Lng: lng}
	}

	out, err := h.uc.GetQuote(c.Request().Context(), sessionKey, usecase.QuoteInput{
		Address: address,
		Vendor:  vendor,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
