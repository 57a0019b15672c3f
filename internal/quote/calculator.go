package quote

import (
	"context"
	"math"
	"strings"
	"time"
	"unicode/utf16"

	"vendora/internal/domain/model"
)

// 料金モデルの定数（kobo）。
const (
	// 3kmごと（端数切り上げ）に ₦1,000
	costPerBlock model.Kobo = 100000
	blockKm                 = 3.0

	// 固定サービス料 ₦150
	serviceFee model.Kobo = 15000

	// サージは今のところ固定。需要連動の拡張ポイント。
	surgeMultiplier = 1.0
)

// 住所がこれ未満なら「まだ入力不足」でnilを返す
const minAddressLen = 5

// フォールバック距離の範囲 [1, 15] km、サービス距離は [1, 50] km。
const (
	fallbackMaxKm = 15.0
	serviceMaxKm  = 50.0
	minKm         = 1.0
)

// フォールバックETA: 1kmあたり6分 + 出発準備8分、[10, 90]分に収める。
const (
	etaPerKmMin     = 6.0
	etaDispatchMin  = 8.0
	etaFloorMinutes = 10
	etaCeilMinutes  = 90
)

// Calculator は住所（＋任意の店舗座標）から配達見積を作る。
// サービスが使えなければ決定的な疑似距離に落とす。
// エラーは呼び出し元へ返さない（見積 or nil のみ）。
type Calculator struct {
	svc     DistanceService // nilなら常にフォールバック
	timeout time.Duration
}

// DI。svcはnil可。
func NewCalculator(svc DistanceService, timeout time.Duration) *Calculator {
	return &Calculator{svc: svc, timeout: timeout}
}

// Quote は見積を返す。住所が短すぎる場合はnil。
func (c *Calculator) Quote(ctx context.Context, address string, vendor *model.LatLng) *model.DeliveryQuote {
	if len(strings.TrimSpace(address)) < minAddressLen {
		return nil
	}

	//店舗座標があればサービスを試す
	if vendor != nil && c.svc != nil {
		if q, ok := c.fromService(ctx, address, *vendor); ok {
			return q
		}
	}

	//フォールバック：住所文字列からの疑似距離
	d := PseudoDistanceKm(address)
	return c.price(d, fallbackEta(d))
}

// サービス経由の見積。失敗したら ok=false。
func (c *Calculator) fromService(ctx context.Context, address string, vendor model.LatLng) (*model.DeliveryQuote, bool) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	res, err := c.svc.Estimate(ctx, address, vendor)
	if err != nil {
		return nil, false
	}

	//ゼロ距離などの異常応答はクランプで潰す
	d := clamp(res.DistanceKm, minKm, serviceMaxKm)

	eta := res.EtaMinutes
	if eta <= 0 {
		eta = fallbackEta(d)
	}

	return c.price(d, eta), true
}

// 距離とETAから料金を組み立てる。両経路で共通。
func (c *Calculator) price(distanceKm float64, etaMinutes int) *model.DeliveryQuote {
	base := model.Kobo(math.Ceil(distanceKm/blockKm)) * costPerBlock
	total := model.Kobo(math.Round(float64(base+serviceFee) * surgeMultiplier))

	return &model.DeliveryQuote{
		DistanceKm:      distanceKm,
		EtaMinutes:      etaMinutes,
		BaseCost:        base,
		ServiceFee:      serviceFee,
		SurgeMultiplier: surgeMultiplier,
		Total:           total,
	}
}

// PseudoDistanceKm は住所文字列だけから決定的な距離を作る。
// 同じ住所は必ず同じ距離になる（リトライで見積がブレない）。
// UTF-16コード単位で h = h*31 + cu (mod 2^32) と畳み込み、
// (h mod 1500)/100 + 1 を小数1桁に丸めて [1, 15] に収める。
func PseudoDistanceKm(address string) float64 {
	var h uint32
	for _, cu := range utf16.Encode([]rune(address)) {
		h = h*31 + uint32(cu)
	}

	d := float64(h%1500)/100 + 1
	d = math.Round(d*10) / 10

	return clamp(d, minKm, fallbackMaxKm)
}

func fallbackEta(distanceKm float64) int {
	eta := int(math.Round(distanceKm*etaPerKmMin + etaDispatchMin))
	if eta < etaFloorMinutes {
		return etaFloorMinutes
	}
	if eta > etaCeilMinutes {
		return etaCeilMinutes
	}
	return eta
}

func clamp(v float64, lo float64, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
