package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// CartStore はセッションキー単位のカートJSONを保存するKVポート。
// 値はJSON文字列のまま渡す（パースと破損時の回復はusecase側）。
type CartStore interface {
	// found=false はまだカートが無い状態（エラーではない）
	Get(ctx context.Context, sessionKey string) (raw string, found bool, err error)
	Put(ctx context.Context, sessionKey string, raw string) error
}
