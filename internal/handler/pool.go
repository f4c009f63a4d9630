package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stock-market-gateway/internal/apperrors"
	"stock-market-gateway/internal/logging"
	"stock-market-gateway/internal/xuangubao"
)

// Pool 股票池接口
type Pool struct {
	xgb *xuangubao.Client
}

func NewPool(xgb *xuangubao.Client) *Pool {
	return &Pool{xgb: xgb}
}

func todayOr(tradeDate string) string {
	if tradeDate == "" {
		return time.Now().Format(dateLayout)
	}
	return tradeDate
}

// GetPool 获取指定股票池数据
func (h *Pool) GetPool(c *gin.Context) {
	poolKey := c.Param("pool_key")
	tradeDate := c.Query("trade_date")
	resolved := todayOr(tradeDate)

	data, err := h.xgb.FetchPool(poolKey, tradeDate)
	if err != nil {
		if ae, ok := apperrors.As(err); ok {
			logging.L().Error("选股宝API接口异常", zap.Error(err))
			c.JSON(ae.HTTPStatus(), gin.H{"detail": ae.Message})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"code":       500,
			"msg":        err.Error(),
			"trade_date": resolved,
			"data":       []any{},
			"count":      0,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":       200,
		"msg":        "success",
		"trade_date": resolved,
		"data":       data,
		"count":      len(data),
	})
}

// GetPoolStatistics 统计指定日期、指定股票池的核心数据
func (h *Pool) GetPoolStatistics(c *gin.Context) {
	poolKey := c.Param("pool_key")
	tradeDate := c.Query("trade_date")
	resolved := todayOr(tradeDate)

	data, err := h.xgb.FetchPool(poolKey, tradeDate)
	if err != nil {
		if ae, ok := apperrors.As(err); ok {
			logging.L().Error("选股宝统计接口异常", zap.Error(err))
			c.JSON(ae.HTTPStatus(), gin.H{"detail": ae.Message})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"code":        500,
			"msg":         err.Error(),
			"trade_date":  resolved,
			"pool_key":    poolKey,
			"statistics":  gin.H{},
			"detail_data": []any{},
		})
		return
	}

	c.JSON(http.StatusOK, xuangubao.Statistics(data, poolKey, resolved))
}

// GetAllPools 获取所有股票池（涨停、跌停、昨日涨停、炸板池、强势股池）数据。
// 任一池获取失败（含参数校验失败）整个请求失败，不返回部分结果，
// 且一律以 200 + code 500 返回。
func (h *Pool) GetAllPools(c *gin.Context) {
	tradeDate := c.Query("trade_date")
	resolved := todayOr(tradeDate)

	result := gin.H{}
	totalCount := 0
	for _, key := range xuangubao.PoolKeys {
		data, err := h.xgb.FetchPool(string(key), tradeDate)
		if err != nil {
			logging.L().Error("获取所有股票池数据失败", zap.Error(err))
			c.JSON(http.StatusOK, gin.H{
				"code":        500,
				"msg":         err.Error(),
				"trade_date":  resolved,
				"data":        gin.H{},
				"total_count": 0,
			})
			return
		}
		result[string(key)] = data
		totalCount += len(data)
	}

	c.JSON(http.StatusOK, gin.H{
		"code":        200,
		"msg":         "success",
		"trade_date":  resolved,
		"data":        result,
		"total_count": totalCount,
	})
}
