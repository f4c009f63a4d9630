package eastmoney

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-market-gateway/internal/model"
)

func TestStatistics_Empty(t *testing.T) {
	result := Statistics(nil)

	assert.Equal(t, 200, result["code"])
	stats := result["statistics"].(map[string]any)
	assert.Equal(t, 0, stats["total_count"])
	assert.Equal(t, 0.0, stats["avg_price"])
	assert.Equal(t, 0, stats["up_count"])
	assert.Empty(t, stats["top_stocks_by_price"])
	assert.Empty(t, stats["top_stocks_by_change"])
	assert.Empty(t, stats["top_stocks_by_volume"])
	// 空输入不带 detail_data
	_, ok := result["detail_data"]
	assert.False(t, ok)
}

func TestStatistics_UpDownAndLimitCounts(t *testing.T) {
	changes := []float64{5, -3, 9.9, -9.8, 0}
	quotes := make([]model.Quote, 0, len(changes))
	for _, ch := range changes {
		quotes = append(quotes, model.Quote{ChangePercent: ch})
	}

	result := Statistics(quotes)
	stats := result["statistics"].(map[string]any)

	assert.Equal(t, 5, stats["total_count"])
	assert.Equal(t, 2, stats["up_count"])
	assert.Equal(t, 2, stats["down_count"])
	assert.Equal(t, 1, stats["limit_up_count"])
	assert.Equal(t, 1, stats["limit_down_count"])
}

// 市盈率/市净率均值：分子只累加正值，分母仍是总记录数（与上游原始口径一致）
func TestStatistics_PEPBAverageUsesTotalCount(t *testing.T) {
	quotes := []model.Quote{
		{PEDynamic: 30, PBRatio: 4},
		{PEDynamic: -10, PBRatio: -1},
		{PEDynamic: 0, PBRatio: 0},
		{PEDynamic: 10, PBRatio: 2},
	}

	stats := Statistics(quotes)["statistics"].(map[string]any)

	assert.Equal(t, 10.0, stats["avg_pe"]) // (30+10)/4
	assert.Equal(t, 1.5, stats["avg_pb"])  // (4+2)/4
}

func TestStatistics_Averages(t *testing.T) {
	quotes := []model.Quote{
		{CurrentPrice: 10, ChangePercent: 1, TurnoverRate: 2, TotalMarketValue: 100, CirculatingMarketValue: 50},
		{CurrentPrice: 20, ChangePercent: 2, TurnoverRate: 4, TotalMarketValue: 200, CirculatingMarketValue: 150},
	}

	stats := Statistics(quotes)["statistics"].(map[string]any)

	assert.Equal(t, 15.0, stats["avg_price"])
	assert.Equal(t, 1.5, stats["avg_change_percent"])
	assert.Equal(t, 3.0, stats["avg_turnover_rate"])
	assert.Equal(t, 300.0, stats["total_market_value"])
	assert.Equal(t, 200.0, stats["circulating_market_value"])
}

func TestStatistics_Top10ByPrice(t *testing.T) {
	quotes := make([]model.Quote, 0, 15)
	for i := 0; i < 15; i++ {
		quotes = append(quotes, model.Quote{
			Symbol:       string(rune('A' + i)),
			CurrentPrice: float64(i),
		})
	}

	stats := Statistics(quotes)["statistics"].(map[string]any)
	top := stats["top_10_by_price"].([]map[string]any)

	require.Len(t, top, 10)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1]["price"].(float64), top[i]["price"].(float64))
	}
	assert.Equal(t, 14.0, top[0]["price"])
}

// 并列值按原始相对顺序稳定排序
func TestStatistics_TopRankingStableTies(t *testing.T) {
	quotes := []model.Quote{
		{Symbol: "first", CurrentPrice: 5},
		{Symbol: "second", CurrentPrice: 5},
		{Symbol: "third", CurrentPrice: 9},
	}

	stats := Statistics(quotes)["statistics"].(map[string]any)
	top := stats["top_10_by_price"].([]map[string]any)

	require.Len(t, top, 3)
	assert.Equal(t, "third", top[0]["symbol"])
	assert.Equal(t, "first", top[1]["symbol"])
	assert.Equal(t, "second", top[2]["symbol"])
}

func TestStatistics_FewerThanTen(t *testing.T) {
	quotes := []model.Quote{
		{Symbol: "a", Volume: 100, Turnover: 1000},
		{Symbol: "b", Volume: 300, Turnover: 3000},
	}

	stats := Statistics(quotes)["statistics"].(map[string]any)
	top := stats["top_10_by_volume"].([]map[string]any)

	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0]["symbol"])
	assert.Equal(t, int64(300), top[0]["volume"])
	assert.Equal(t, 3000.0, top[0]["turnover"])
}
