package usecase

import (
	"context"
	"net/http"
	"sync"

	"vendora/internal/domain/model"
	"vendora/internal/quote"
)

// QuoteUsecase は配達見積。セッションごとにWatcherを持ち、
// 同一セッションで入力が連続して変わっても最後の入力の結果だけが残る。
type QuoteUsecase struct {
	calc *quote.Calculator

	mu       sync.Mutex
	watchers map[string]*quote.Watcher
}

// DI
func NewQuoteUsecase(calc *quote.Calculator) *QuoteUsecase {
	return &QuoteUsecase{
		calc:     calc,
		watchers: map[string]*quote.Watcher{},
	}
}

type QuoteInput struct {
	Address string
	Vendor  *model.LatLng
}

// QuoteResponse のQuoteはnil可（入力不足）。エラーにはしない。
type QuoteResponse struct {
	Quote *model.DeliveryQuote `json:"quote"`
}

// GetQuote は見積を計算する。失敗してもフォールバックで必ず答える。
func (u *QuoteUsecase) GetQuote(ctx context.Context, sessionKey string, in QuoteInput) (QuoteResponse, error) {
	if sessionKey == "" {
		return QuoteResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	w := u.watcher(sessionKey)
	q := w.Refresh(ctx, in.Address, in.Vendor)
	return QuoteResponse{Quote: q}, nil
}

func (u *QuoteUsecase) watcher(sessionKey string) *quote.Watcher {
	u.mu.Lock()
	defer u.mu.Unlock()

	w, ok := u.watchers[sessionKey]
	if !ok {
		w = quote.NewWatcher(u.calc)
		u.watchers[sessionKey] = w
	}
	return w
}
