package xuangubao

import (
	"sort"

	"stock-market-gateway/internal/model"
)

const topN = 10

// Statistics 统计指定股票池的核心数据：计数、均价、平均涨跌幅、平均换手、
// 流通市值合计，以及按价格/涨跌幅的 top10。空输入返回全零结果。
func Statistics(stocks []model.PoolStock, poolKey string, tradeDate string) map[string]any {
	if len(stocks) == 0 {
		return map[string]any{
			"code":       200,
			"msg":        "success",
			"trade_date": tradeDate,
			"pool_key":   poolKey,
			"statistics": map[string]any{
				"total_count":                  0,
				"avg_price":                    0.0,
				"avg_change_percent":           0.0,
				"avg_turnover_ratio":           0.0,
				"total_circulation_market_cap": 0.0,
				"top_stocks_by_price":          []any{},
				"top_stocks_by_change":         []any{},
			},
			"detail_data": []any{},
		}
	}

	totalCount := len(stocks)
	var totalPrice, totalChange, totalTurnover, totalCirculation float64

	for _, s := range stocks {
		totalPrice += s.Num("price")
		totalChange += s.Num("change_percent")
		totalTurnover += s.Num("turnover_ratio")
		totalCirculation += s.Num("circulation_market_cap")
	}

	byPrice := sortedCopy(stocks, "price")
	byChange := sortedCopy(stocks, "change_percent")

	topPrice := make([]map[string]any, 0, topN)
	for _, s := range headN(byPrice, topN) {
		topPrice = append(topPrice, map[string]any{
			"stock_code": s.Str("stock_code"),
			"stock_name": s.Str("stock_name"),
			"price":      s.Num("price"),
		})
	}
	topChange := make([]map[string]any, 0, topN)
	for _, s := range headN(byChange, topN) {
		topChange = append(topChange, map[string]any{
			"stock_code":     s.Str("stock_code"),
			"stock_name":     s.Str("stock_name"),
			"change_percent": s.Num("change_percent"),
		})
	}

	n := float64(totalCount)
	statistics := map[string]any{
		"total_count":                  totalCount,
		"avg_price":                    round2(totalPrice / n),
		"avg_change_percent":           round2(totalChange / n),
		"avg_turnover_ratio":           round2(totalTurnover / n),
		"total_circulation_market_cap": round2(totalCirculation),
		"top_10_by_price":              topPrice,
		"top_10_by_change":             topChange,
	}

	return map[string]any{
		"code":        200,
		"msg":         "success",
		"trade_date":  tradeDate,
		"pool_key":    poolKey,
		"statistics":  statistics,
		"detail_data": stocks,
	}
}

// sortedCopy 按数值字段降序稳定排序副本，相等时保持原始相对顺序
func sortedCopy(stocks []model.PoolStock, field string) []model.PoolStock {
	out := make([]model.PoolStock, len(stocks))
	copy(out, stocks)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Num(field) > out[j].Num(field) })
	return out
}

func headN(stocks []model.PoolStock, n int) []model.PoolStock {
	if len(stocks) < n {
		return stocks
	}
	return stocks[:n]
}
