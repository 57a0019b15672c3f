package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	GoEnv     string // dev/prod
	JWTSecret string // ゲストセッショントークンの署名シークレット

	DatabaseURL string // 空ならインメモリストアで起動

	DistanceAPIURL  string        // 距離/ETAサービスのベースURL（空なら常にフォールバック）
	DistanceAPIKey  string        // 同サービスのAPIキー
	DistanceTimeout time.Duration // 同サービス呼び出しのタイムアウト

	SessionTTL time.Duration // ゲストセッションの有効期限

	DefaultVendorPhone string // checkoutでvendor_phone未指定時のフォールバック
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		GoEnv:     os.Getenv("GO_ENV"),
		JWTSecret: os.Getenv("JWT_SECRET"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		DistanceAPIURL: os.Getenv("DISTANCE_API_URL"),
		DistanceAPIKey: os.Getenv("DISTANCE_API_KEY"),

		DefaultVendorPhone: os.Getenv("DEFAULT_VENDOR_PHONE"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	//任意（デフォルトつき）
	timeoutMS, err := atoiDefault("DISTANCE_TIMEOUT_MS", 3000)
	if err != nil {
		return Config{}, err
	}
	cfg.DistanceTimeout = time.Duration(timeoutMS) * time.Millisecond

	ttlHours, err := atoiDefault("SESSION_TTL_HOURS", 72)
	if err != nil {
		return Config{}, err
	}
	cfg.SessionTTL = time.Duration(ttlHours) * time.Hour

	return cfg, nil
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
