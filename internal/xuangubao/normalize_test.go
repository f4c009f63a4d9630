package xuangubao

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const tradeDate = "2025-08-29"

func TestNormalizePoolStock_BaseFieldsAndScaling(t *testing.T) {
	stock := gjson.Parse(`{
		"symbol": "600000.SS",
		"stock_chi_name": "浦发银行",
		"stock_type": 1,
		"price": 10.123,
		"change_percent": 0.0523,
		"turnover_ratio": 0.0345,
		"non_restricted_capital": 500000000,
		"total_capital": 800000000,
		"issue_price": 5.678,
		"listed_date": 946656000
	}`)

	s := NormalizePoolStock(stock, PoolLimitUp, tradeDate)

	assert.Equal(t, tradeDate, s["trade_date"])
	assert.Equal(t, "600000.SS", s["stock_code"])
	assert.Equal(t, "浦发银行", s["stock_name"])
	assert.Equal(t, int64(1), s["stock_type"])
	assert.Equal(t, 10.12, s["price"])
	// 上游以小数表示，×100 后保留两位
	assert.Equal(t, 5.23, s["change_percent"])
	assert.Equal(t, 3.45, s["turnover_ratio"])
	// 市值以分计，÷1e8
	assert.Equal(t, 5.0, s["circulation_market_cap"])
	assert.Equal(t, 8.0, s["total_market_cap"])
	assert.Equal(t, 5.68, s["issue_price"])
	assert.Equal(t, time.Unix(946656000, 0).Format("2006-01-02 15:04:05"), s["listed_date"])
	assert.Equal(t, "zt", s["pool_type"])
}

func TestNormalizePoolStock_MissingValuesCoerced(t *testing.T) {
	s := NormalizePoolStock(gjson.Parse(`{"symbol": "000001.SZ"}`), PoolLimitUp, tradeDate)

	assert.Equal(t, 0.0, s["price"])
	assert.Equal(t, 0.0, s["change_percent"])
	assert.Equal(t, 0.0, s["circulation_market_cap"])
	assert.Equal(t, "", s["stock_name"])
	// 空纪元不得变成1970
	assert.Equal(t, "", s["listed_date"])
	// 流通市值缺失时封单金额无法计算
	assert.Equal(t, "", s["current_lock_amount"])
	assert.Equal(t, "", s["max_lock_amount"])
}

// 封单金额 = 封单比(小数) × 流通市值(分)，保留两位
func TestNormalizePoolStock_BuyLockAmount(t *testing.T) {
	stock := gjson.Parse(`{
		"buy_lock_volume_ratio": 0.02,
		"sell_lock_volume_ratio": 0.001,
		"non_restricted_capital": 500000000
	}`)

	s := NormalizePoolStock(stock, PoolLimitUp, tradeDate)

	assert.Equal(t, 2.0, s["buy_lock_ratio"])
	assert.Equal(t, 0.1, s["sell_lock_ratio"])
	assert.Equal(t, 10000000.0, s["current_lock_amount"])
	assert.Equal(t, 10000000.0, s["max_lock_amount"])
}

// 跌停池按卖方封单比计算金额，买方封单比仍然上报
func TestNormalizePoolStock_SellLockAmountForLimitDown(t *testing.T) {
	stock := gjson.Parse(`{
		"buy_lock_volume_ratio": 0.005,
		"sell_lock_volume_ratio": 0.03,
		"non_restricted_capital": 200000000
	}`)

	s := NormalizePoolStock(stock, PoolLimitDown, tradeDate)

	assert.Equal(t, 0.5, s["buy_lock_ratio"])
	assert.Equal(t, 3.0, s["sell_lock_ratio"])
	assert.Equal(t, 6000000.0, s["current_lock_amount"])
}

func TestNormalizePoolStock_LockRatioFourDecimals(t *testing.T) {
	stock := gjson.Parse(`{"buy_lock_volume_ratio": 0.0123456, "non_restricted_capital": 1}`)

	s := NormalizePoolStock(stock, PoolLimitUp, tradeDate)

	assert.Equal(t, 1.2346, s["buy_lock_ratio"])
}

func TestNormalizePoolStock_PoolSpecificFields(t *testing.T) {
	raw := `{
		"limit_up_days": 3, "break_limit_up_times": 1,
		"limit_down_days": 2, "break_limit_down_times": 4,
		"yesterday_limit_up_days": 5, "yesterday_break_limit_up_times": 6,
		"first_limit_up": 1756455000, "last_limit_up": 1756458600,
		"first_limit_down": 1756455000, "last_limit_down": 1756458600,
		"yesterday_first_limit_up": 1756455000, "yesterday_last_limit_up": 1756458600,
		"last_break_limit_up": 1756460000,
		"m_days_n_boards_days": 5, "m_days_n_boards_boards": 3
	}`
	stock := gjson.Parse(raw)
	ts := func(sec int64) string { return time.Unix(sec, 0).Format("2006-01-02 15:04:05") }

	zt := NormalizePoolStock(stock, PoolLimitUp, tradeDate)
	assert.Equal(t, int64(3), zt["limit_up_days"])
	assert.Equal(t, int64(1), zt["break_limit_up_times"])
	assert.Equal(t, ts(1756455000), zt["first_limit_up_time"])
	assert.Equal(t, ts(1756458600), zt["last_limit_up_time"])
	_, hasDown := zt["limit_down_days"]
	assert.False(t, hasDown)

	dt := NormalizePoolStock(stock, PoolLimitDown, tradeDate)
	assert.Equal(t, int64(2), dt["limit_down_days"])
	assert.Equal(t, int64(4), dt["break_limit_down_times"])
	assert.Equal(t, ts(1756455000), dt["first_limit_down_time"])
	_, hasUp := dt["limit_up_days"]
	assert.False(t, hasUp)

	yzt := NormalizePoolStock(stock, PoolYesterdayLimitUp, tradeDate)
	assert.Equal(t, int64(5), yzt["yesterday_limit_up_days"])
	assert.Equal(t, int64(6), yzt["yesterday_break_limit_up_times"])
	assert.Equal(t, ts(1756455000), yzt["yesterday_first_limit_up_time"])

	broken := NormalizePoolStock(stock, PoolBrokenLimitUp, tradeDate)
	assert.Equal(t, int64(1), broken["break_limit_up_times"])
	assert.Equal(t, ts(1756460000), broken["last_break_limit_up_time"])

	super := NormalizePoolStock(stock, PoolSuperStock, tradeDate)
	assert.Equal(t, int64(3), super["limit_up_days"])
	assert.Equal(t, "5天3板", super["m_days_n_boards"])
}

func TestNormalizePoolStock_Reasons(t *testing.T) {
	stock := gjson.Parse(`{
		"surge_reason": {
			"stock_reason": "业绩超预期",
			"related_plates": [
				{"plate_name": "白酒", "plate_reason": "消费复苏"},
				null,
				{"plate_name": "国企改革"}
			]
		}
	}`)

	s := NormalizePoolStock(stock, PoolLimitUp, tradeDate)

	assert.Equal(t, "业绩超预期", s["stock_reason"])
	plates := gjson.Parse(s["related_plates"].(string)).Array()
	require.Len(t, plates, 2)
	assert.Equal(t, "白酒", plates[0].Get("plate_name").String())
	assert.Equal(t, "消费复苏", plates[0].Get("plate_reason").String())
	assert.Equal(t, "国企改革", plates[1].Get("plate_name").String())
	assert.Equal(t, "", plates[1].Get("plate_reason").String())
}

func TestNormalizePoolStock_NoReasons(t *testing.T) {
	s := NormalizePoolStock(gjson.Parse(`{}`), PoolLimitUp, tradeDate)

	assert.Equal(t, "", s["stock_reason"])
	assert.Equal(t, "[]", s["related_plates"])
}
