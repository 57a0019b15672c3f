package handler

import (
	"net/http"
	"time"

	"vendora/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /session のHTTP（認証なしで叩ける）
type SessionHandler struct {
	uc *usecase.SessionUsecase
}

// DI
func NewSessionHandler(uc *usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/session", h.create)
}

func (h *SessionHandler) create(c echo.Context) error {
	out, err := h.uc.Issue(time.Now())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
