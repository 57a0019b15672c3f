package model

import "time"

// カート本体の保存レコード。
// 1セッションにつき1行、明細はJSON配列の文字列で保持する。
// 壊れたJSONは読み出し側で空カート扱いにする。
type CartRecord struct {
	SessionKey string    `gorm:"primaryKey;type:varchar(64)" json:"session_key"`
	Items      string    `gorm:"type:text;not null" json:"items"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
