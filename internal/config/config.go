package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // ゲートウェイのポート（8080）

	BackendURL  string        // ストアフロントAPIのベースURL
	APIVersion  string        // APIのパスprefix（v1）
	HTTPTimeout time.Duration // バックエンド呼び出しのタイムアウト（10s）

	SlotDriver  string // file / redis / postgres / memory / none
	SlotDir     string // file ドライバの保存先
	RedisAddr   string // redis ドライバの接続先
	DatabaseURL string // postgres ドライバのDSN（空ならPOSTGRES_*から組み立て）

	ProductCacheSize int           // 商品一覧キャッシュのページ数
	ProductCacheTTL  time.Duration // 商品一覧キャッシュの有効期限（1m）

	DefaultContact string // 注文の連絡先（未入力時）
	DefaultAddress string // 注文の住所（未入力時）

	GoEnv string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	timeout, err := durationOr("HTTP_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cacheSize, err := atoiOr("PRODUCT_CACHE_SIZE", 64)
	if err != nil {
		return Config{}, err
	}
	cacheTTL, err := durationOr("PRODUCT_CACHE_TTL", time.Minute)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		BackendURL:  strings.TrimRight(os.Getenv("BACKEND_URL"), "/"),
		APIVersion:  getenv("API_VERSION", "v1"),
		HTTPTimeout: timeout,

		SlotDriver:  strings.ToLower(getenv("SLOT_DRIVER", "file")),
		SlotDir:     getenv("SLOT_DIR", ".storefront"),
		RedisAddr:   getenv("REDIS_ADDR", "localhost:6379"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		ProductCacheSize: cacheSize,
		ProductCacheTTL:  cacheTTL,

		DefaultContact: getenv("DEFAULT_CONTACT", "customer@example.com"),
		DefaultAddress: getenv("DEFAULT_ADDRESS", "123 Example Street, Example City"),

		GoEnv: getenv("GO_ENV", "dev"),
	}

	//必須チェック
	if cfg.BackendURL == "" {
		return Config{}, fmt.Errorf("BACKEND_URL is required")
	}
	if cfg.HTTPTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if cfg.ProductCacheSize < 1 {
		return Config{}, fmt.Errorf("PRODUCT_CACHE_SIZE must be >= 1")
	}
	if cfg.ProductCacheTTL <= 0 {
		return Config{}, fmt.Errorf("PRODUCT_CACHE_TTL must be positive")
	}
	switch cfg.SlotDriver {
	case "file", "redis", "postgres", "memory", "none":
	default:
		return Config{}, fmt.Errorf("SLOT_DRIVER %q is not supported", cfg.SlotDriver)
	}

	return cfg, nil
}

// IsDevはdev環境か
func (c Config) IsDev() bool {
	return c.GoEnv == "" || c.GoEnv == "dev"
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
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

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}
