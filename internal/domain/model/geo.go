package model

// ブラウザ由来のロケール推定。ネットワークは使わない。
// 不明なフィールドは空文字。
type GeoProfile struct {
	Country  string `json:"country"`
	Region   string `json:"region"`
	City     string `json:"city"`
	Timezone string `json:"timezone"`
	Language string `json:"language"`
	Currency string `json:"currency"`
}
