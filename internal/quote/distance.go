package quote

import (
	"context"

	"vendora/internal/domain/model"
)

// 距離/ETAサービスの応答。
type DistanceResult struct {
	DistanceKm float64
	EtaMinutes int
}

// DistanceService は外部の距離/ETAサービスへの窓口。
// 失敗（エラー・タイムアウト・不正応答）はすべて呼び出し側の
// フォールバックで吸収される約束。
type DistanceService interface {
	Estimate(ctx context.Context, address string, vendor model.LatLng) (DistanceResult, error)
}
