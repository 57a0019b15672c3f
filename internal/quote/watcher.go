package quote

import (
	"context"
	"sync"

	"vendora/internal/domain/model"
)

// Watcher は1セッション分の「最新の見積」を持つ。
// 入力が変わるたびにRefreshが呼ばれ、世代番号で古い計算結果を捨てる
// （last-write-wins。キャンセルはしない）。
type Watcher struct {
	calc *Calculator

	mu     sync.Mutex
	seq    uint64
	latest *model.DeliveryQuote
}

func NewWatcher(calc *Calculator) *Watcher {
	return &Watcher{calc: calc}
}

// Refresh は入力で見積を計算し直す。
// 計算中により新しいRefreshが始まっていたら結果を捨て、最新値を返す。
func (w *Watcher) Refresh(ctx context.Context, address string, vendor *model.LatLng) *model.DeliveryQuote {
	w.mu.Lock()
	w.seq++
	gen := w.seq
	w.mu.Unlock()

	//ここはネットワークに出る可能性がある（ロック外）
	q := w.calc.Quote(ctx, address, vendor)

	w.mu.Lock()
	defer w.mu.Unlock()

	//追い越されていたら適用しない
	if gen != w.seq {
		return w.latest
	}

	w.latest = q
	return q
}

// Latest は最後に適用された見積を返す（無ければnil）。
func (w *Watcher) Latest() *model.DeliveryQuote {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.latest
}
