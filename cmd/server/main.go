package main

import (
	"bufio"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stock-market-gateway/internal/cache"
	"stock-market-gateway/internal/config"
	"stock-market-gateway/internal/eastmoney"
	"stock-market-gateway/internal/handler"
	"stock-market-gateway/internal/holiday"
	"stock-market-gateway/internal/logging"
	"stock-market-gateway/internal/xuangubao"
)

func init() {
	// 手动加载 .env 文件
	file, err := os.Open(".env")
	if err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			os.Setenv(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		}
	}
}

func main() {
	cfg := config.Load()

	if err := logging.Init(cfg.LogLevel); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}

	// 审计日志：按数据源分文件记录上游原始响应
	emAudit, err := logging.NewAuditLogger(cfg.LogDir, "eastmoney_api")
	if err != nil {
		log.Fatalf("初始化东方财富审计日志失败: %v", err)
	}
	xgbAudit, err := logging.NewAuditLogger(cfg.LogDir, "xuangubao_api")
	if err != nil {
		log.Fatalf("初始化选股宝审计日志失败: %v", err)
	}

	// 交易日历缓存：Redis 可用时用 Redis，否则进程内缓存
	var provider cache.Provider
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedis(cfg.RedisAddr)
		if err != nil {
			log.Printf("Redis不可用，交易日历退化为进程内缓存: %v", err)
		} else {
			defer redisCache.Close()
			provider = redisCache
		}
	}

	calendar := holiday.NewCalendar(provider)
	if err := calendar.LoadCustomHolidays(cfg.HolidayConfigPath); err != nil {
		log.Printf("加载节假日配置失败: %v", err)
	}

	// 上游客户端进程级构造一次，注入各 handler
	emClient := eastmoney.NewClient(cfg.EastmoneyBaseURL, cfg.EastmoneyTimeout, emAudit)
	xgbClient := xuangubao.NewClient(cfg.XuangubaoBaseURL, cfg.XuangubaoTimeout, xgbAudit)

	realtime := handler.NewRealtime(emClient)
	pool := handler.NewPool(xgbClient)
	holidayHandler := handler.NewHoliday(calendar)

	r := gin.Default()

	// 配置 CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// 注册路由
	r.GET("/health", handler.Health)
	r.GET("/api/holiday/check", holidayHandler.Check)

	// 实时行情
	r.GET("/api/stock/a/realtime", realtime.GetRealtime)
	r.GET("/api/stock/a/realtime/statistics", realtime.GetStatistics)
	r.GET("/api/stock/a/realtime/search", realtime.Search)

	// 股票池（/all 需在 /:pool_key 之前注册）
	r.GET("/stock/pool/all", pool.GetAllPools)
	r.GET("/stock/pool/:pool_key", pool.GetPool)
	r.GET("/stock/pool/:pool_key/statistics", pool.GetPoolStatistics)

	log.Printf("服务启动在端口 %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}
