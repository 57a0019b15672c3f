package model

// 座標（WGS 84）。
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// 配達見積。保存せず、住所や店舗座標が変わるたびに再計算する。
// Total == round((BaseCost + ServiceFee) * SurgeMultiplier) を必ず満たす。
type DeliveryQuote struct {
	DistanceKm      float64 `json:"distance_km"`
	EtaMinutes      int     `json:"eta_minutes"`
	BaseCost        Kobo    `json:"base_cost"`
	ServiceFee      Kobo    `json:"service_fee"`
	SurgeMultiplier float64 `json:"surge_multiplier"`
	Total           Kobo    `json:"total"`
}
