package handler

import (
	"net/http"

	"vendora/internal/config"
	"vendora/internal/domain/model"
	"vendora/internal/geo"
	"vendora/internal/middleware"
	"vendora/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkout のHTTP
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type CheckoutRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	VendorPhone string   `json:"vendor_phone"`
	VendorLat   *float64 `json:"vendor_lat"`
	VendorLng   *float64 `json:"vendor_lng"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/checkout")
	g.Use(middleware.GuestSession(cfg))

	g.POST("", h.checkout)
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	sessionKey, ok := getSessionKeyFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	var vendor *model.LatLng
	if req.VendorLat != nil && req.VendorLng != nil {
		vendor = &model.LatLng{Lat: *req.VendorLat, Lng: *req.VendorLng}
	}

	out, err := h.uc.Checkout(c.Request().Context(), sessionKey, usecase.CheckoutInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		VendorPhone: req.VendorPhone,
		Vendor:      vendor,
		Language:    geo.ParseAcceptLanguage(c.Request().Header.Get("Accept-Language")),
		Timezone:    c.Request().Header.Get("X-Timezone"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
