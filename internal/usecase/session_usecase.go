package usecase

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionUsecase は匿名のゲストセッションを発行する。
// ログインは無い。カートと見積はこのセッションIDに紐づく。
type SessionUsecase struct {
	secret []byte
	ttl    time.Duration
}

// DI
func NewSessionUsecase(secret string, ttl time.Duration) *SessionUsecase {
	return &SessionUsecase{secret: []byte(secret), ttl: ttl}
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// Issue は新しいセッショントークン（HS256）を発行する。
func (u *SessionUsecase) Issue(now time.Time) (SessionResponse, error) {
	sid := uuid.NewString()
	expiresAt := now.Add(u.ttl)

	claims := jwt.MapClaims{
		"sid": sid,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(u.secret)
	if err != nil {
		return SessionResponse{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return SessionResponse{
		SessionID: sid,
		Token:     signed,
		ExpiresIn: int(u.ttl.Seconds()),
	}, nil
}
