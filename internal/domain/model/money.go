package model

// Kobo は通貨の最小単位（kobo / cent）の金額。
// 100 Kobo = 1 主要単位。表示用の変換は usecase.FormatKobo のみが行う。
type Kobo int64

// Mul は数量を掛けた金額を返す。
func (k Kobo) Mul(qty int64) Kobo {
	return k * Kobo(qty)
}
