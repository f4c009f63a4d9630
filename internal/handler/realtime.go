package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stock-market-gateway/internal/apperrors"
	"stock-market-gateway/internal/eastmoney"
	"stock-market-gateway/internal/logging"
)

const dateLayout = "2006-01-02"

const defaultSearchLimit = 20

// Realtime A股实时行情接口
type Realtime struct {
	em *eastmoney.Client
}

func NewRealtime(em *eastmoney.Client) *Realtime {
	return &Realtime{em: em}
}

// GetRealtime 获取沪深京A股实时行情数据
func (h *Realtime) GetRealtime(c *gin.Context) {
	today := time.Now().Format(dateLayout)

	data, err := h.em.FetchRealtime()
	if err != nil {
		if ae, ok := apperrors.As(err); ok {
			logging.L().Error("东方财富API接口异常", zap.Error(err))
			c.JSON(ae.HTTPStatus(), gin.H{"detail": ae.Message})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"code":       500,
			"msg":        err.Error(),
			"trade_date": today,
			"data":       []any{},
			"count":      0,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":       200,
		"msg":        "success",
		"trade_date": today,
		"data":       data,
		"count":      len(data),
	})
}

// GetStatistics 统计沪深京A股实时行情数据的核心指标
func (h *Realtime) GetStatistics(c *gin.Context) {
	today := time.Now().Format(dateLayout)

	data, err := h.em.FetchRealtime()
	if err != nil {
		if ae, ok := apperrors.As(err); ok {
			logging.L().Error("东方财富统计接口异常", zap.Error(err))
			c.JSON(ae.HTTPStatus(), gin.H{"detail": ae.Message})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"code":        500,
			"msg":         err.Error(),
			"trade_date":  today,
			"statistics":  gin.H{},
			"detail_data": []any{},
		})
		return
	}

	result := eastmoney.Statistics(data)
	result["trade_date"] = today
	c.JSON(http.StatusOK, result)
}

// Search 根据关键词搜索股票（代码或名称子串匹配，至多 limit 条）
// 本接口任何失败（含行情获取失败）都以 200 + code 500 返回
func (h *Realtime) Search(c *gin.Context) {
	today := time.Now().Format(dateLayout)

	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "keyword参数不能为空"})
		return
	}

	limit := defaultSearchLimit
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	data, err := h.em.FetchRealtime()
	if err != nil {
		logging.L().Error("东方财富搜索接口异常", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"code":       500,
			"msg":        err.Error(),
			"trade_date": today,
			"data":       []any{},
			"count":      0,
		})
		return
	}

	filtered := eastmoney.FilterQuotes(data, keyword, limit)
	c.JSON(http.StatusOK, gin.H{
		"code":       200,
		"msg":        "success",
		"trade_date": today,
		"data":       filtered,
		"count":      len(filtered),
	})
}
