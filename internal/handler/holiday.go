package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stock-market-gateway/internal/holiday"
)

// Holiday 交易日历接口
type Holiday struct {
	cal *holiday.Calendar
}

func NewHoliday(cal *holiday.Calendar) *Holiday {
	return &Holiday{cal: cal}
}

// Check 查询指定日期是否为A股交易日，date 为空时默认当天
func (h *Holiday) Check(c *gin.Context) {
	dateStr := c.DefaultQuery("date", time.Now().Format(dateLayout))

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": fmt.Sprintf("日期格式错误：%s，正确格式：yyyy-MM-dd", dateStr),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":           200,
		"msg":            "success",
		"date":           dateStr,
		"is_trading_day": h.cal.IsTradingDay(date),
	})
}
