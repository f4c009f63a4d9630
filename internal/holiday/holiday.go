// Package holiday A股交易日历：周末与法定节假日判断，带缓存与自定义配置。
package holiday

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"stock-market-gateway/internal/cache"
	"stock-market-gateway/internal/logging"
)

const (
	cacheTTL    = 24 * time.Hour
	apiTimeout  = 3 * time.Second
	cachePrefix = "holiday:trading_day:"
)

// Calendar A股交易日历
type Calendar struct {
	cache cache.Provider
	http  *http.Client

	mu             sync.RWMutex
	customHolidays map[string]bool
}

// NewCalendar 创建交易日历；provider 为空时使用进程内缓存
func NewCalendar(provider cache.Provider) *Calendar {
	if provider == nil {
		provider = cache.NewMemory()
	}
	return &Calendar{
		cache:          provider,
		http:           &http.Client{Timeout: apiTimeout},
		customHolidays: make(map[string]bool),
	}
}

// LoadCustomHolidays 从JSON文件加载自定义节假日配置
// 文件格式：{"holidays": ["2025-01-01", "2025-01-28", ...]}
func (c *Calendar) LoadCustomHolidays(filePath string) error {
	if filePath == "" {
		return nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // 文件不存在不算错误
		}
		return fmt.Errorf("读取节假日配置文件失败: %v", err)
	}

	var config struct {
		Holidays []string `json:"holidays"`
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("解析节假日配置文件失败: %v", err)
	}

	c.mu.Lock()
	for _, date := range config.Holidays {
		c.customHolidays[date] = true
	}
	c.mu.Unlock()

	logging.L().Sugar().Infof("加载自定义节假日配置: %d个节假日", len(config.Holidays))
	return nil
}

// IsTradingDay 判断是否为A股交易日
// A股交易规则：周一到周五交易，周六周日不交易（即使是调休补班日），法定节假日不交易
// 优先级：周末判断 > 自定义配置 > API
func (c *Calendar) IsTradingDay(date time.Time) bool {
	dateStr := date.Format("2006-01-02")

	// 1. 首先检查是否为周末（A股周六周日永远不交易）
	wd := date.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}

	// 2. 检查缓存
	var cached bool
	if err := c.cache.Get(cachePrefix+dateStr, &cached); err == nil {
		return cached
	}

	// 3. 检查自定义节假日配置
	c.mu.RLock()
	isCustomHoliday := c.customHolidays[dateStr]
	c.mu.RUnlock()
	if isCustomHoliday {
		c.updateCache(dateStr, false)
		return false
	}

	// 4. 尝试从API获取
	if result, ok := c.checkFromAPI(dateStr); ok {
		c.updateCache(dateStr, result)
		return result
	}

	// 5. API失败，回退到默认逻辑：周一到周五是交易日
	c.updateCache(dateStr, true)
	return true
}

func (c *Calendar) updateCache(dateStr string, result bool) {
	_ = c.cache.Set(cachePrefix+dateStr, result, cacheTTL)
}

// checkFromAPI 从API检查是否为交易日
// 使用免费的节假日API：http://timor.tech/api/holiday/info/{date}
func (c *Calendar) checkFromAPI(dateStr string) (bool, bool) {
	url := fmt.Sprintf("http://timor.tech/api/holiday/info/%s", dateStr)

	resp, err := c.http.Get(url)
	if err != nil {
		// API失败不打印日志，避免刷屏
		return false, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, false
	}

	var result struct {
		Code int `json:"code"`
		Type struct {
			Type int    `json:"type"` // 0工作日 1周末 2节假日 3调休
			Name string `json:"name"`
		} `json:"type"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return false, false
	}
	if result.Code != 0 {
		return false, false
	}

	// type: 0工作日 1周末 2节假日 3调休（上班）
	isTrading := result.Type.Type == 0 || result.Type.Type == 3
	return isTrading, true
}

// IsTradingDayNow 判断当前是否为交易日
func (c *Calendar) IsTradingDayNow() bool {
	return c.IsTradingDay(time.Now())
}

// IsTradingTimeNow 判断当前是否为交易时段（09:30-11:30, 13:00-15:00）
func (c *Calendar) IsTradingTimeNow() bool {
	now := time.Now()
	if !c.IsTradingDay(now) {
		return false
	}
	hhmm := now.Hour()*100 + now.Minute()
	morning := hhmm >= 930 && hhmm < 1130
	afternoon := hhmm >= 1300 && hhmm < 1500
	return morning || afternoon
}
