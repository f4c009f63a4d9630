// Package config 服务配置，从环境变量加载。
package config

import (
	"os"
	"strconv"
	"time"
)

// Config 服务配置
type Config struct {
	Port     string
	LogLevel string
	LogDir   string

	// 东方财富实时行情接口
	EastmoneyBaseURL string
	EastmoneyTimeout time.Duration

	// 选股宝股票池接口
	XuangubaoBaseURL string
	XuangubaoTimeout time.Duration

	// Redis（可选，交易日历缓存；未配置时退化为进程内缓存）
	RedisAddr string

	// 自定义节假日配置文件路径（可选）
	HolidayConfigPath string
}

// Load 从环境变量加载配置，缺省值可直接用于本地运行
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogDir:            getEnv("LOG_DIR", "log"),
		EastmoneyBaseURL:  getEnv("EASTMONEY_BASE_URL", "https://82.push2.eastmoney.com/api/qt/clist/get"),
		EastmoneyTimeout:  getDurationSec("EASTMONEY_TIMEOUT_SEC", 30*time.Second),
		XuangubaoBaseURL:  getEnv("XUANGUBAO_BASE_URL", "https://flash-api.xuangubao.com.cn/api/pool/detail"),
		XuangubaoTimeout:  getDurationSec("XUANGUBAO_TIMEOUT_SEC", 15*time.Second),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		HolidayConfigPath: os.Getenv("HOLIDAY_CONFIG_PATH"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationSec(key string, fallback time.Duration) time.Duration {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return fallback
}
