package eastmoney

import (
	"math"
	"sort"

	"stock-market-gateway/internal/model"
)

// 涨跌停阈值（估算）：主板 ±10% 临界附近
const limitThreshold = 9.8

const topN = 10

// Statistics 统计A股行情数据的核心指标：计数、均值、涨跌家数、
// 涨跌停估算、三组 top10 排行。单次遍历累加，空输入返回全零结果。
func Statistics(quotes []model.Quote) map[string]any {
	if len(quotes) == 0 {
		return map[string]any{
			"code": 200,
			"msg":  "success",
			"statistics": map[string]any{
				"total_count":              0,
				"avg_price":                0.0,
				"avg_change_percent":       0.0,
				"avg_turnover_rate":        0.0,
				"avg_pe":                   0.0,
				"avg_pb":                   0.0,
				"total_market_value":       0.0,
				"circulating_market_value": 0.0,
				"up_count":                 0,
				"down_count":               0,
				"limit_up_count":           0,
				"limit_down_count":         0,
				"top_stocks_by_price":      []any{},
				"top_stocks_by_change":     []any{},
				"top_stocks_by_volume":     []any{},
			},
		}
	}

	totalCount := len(quotes)
	var totalPrice, totalChange, totalTurnoverRate float64
	var totalPE, totalPB float64
	var totalMV, totalCMV float64
	var upCount, downCount, limitUpCount, limitDownCount int

	for _, q := range quotes {
		totalPrice += q.CurrentPrice
		totalChange += q.ChangePercent
		totalTurnoverRate += q.TurnoverRate
		// 市盈率/市净率只累加正值，负值与零视为无效
		if q.PEDynamic > 0 {
			totalPE += q.PEDynamic
		}
		if q.PBRatio > 0 {
			totalPB += q.PBRatio
		}
		totalMV += q.TotalMarketValue
		totalCMV += q.CirculatingMarketValue

		if q.ChangePercent > 0 {
			upCount++
		} else if q.ChangePercent < 0 {
			downCount++
		}

		// 涨跌停统计（估算）
		if q.ChangePercent >= limitThreshold {
			limitUpCount++
		} else if q.ChangePercent <= -limitThreshold {
			limitDownCount++
		}
	}

	byPrice := sortedCopy(quotes, func(a, b model.Quote) bool { return a.CurrentPrice > b.CurrentPrice })
	byChange := sortedCopy(quotes, func(a, b model.Quote) bool { return a.ChangePercent > b.ChangePercent })
	byVolume := sortedCopy(quotes, func(a, b model.Quote) bool { return a.Volume > b.Volume })

	topPrice := make([]map[string]any, 0, topN)
	for _, q := range headN(byPrice, topN) {
		topPrice = append(topPrice, map[string]any{
			"symbol": q.Symbol,
			"name":   q.Name,
			"price":  q.CurrentPrice,
		})
	}
	topChange := make([]map[string]any, 0, topN)
	for _, q := range headN(byChange, topN) {
		topChange = append(topChange, map[string]any{
			"symbol":         q.Symbol,
			"name":           q.Name,
			"change_percent": q.ChangePercent,
		})
	}
	topVolume := make([]map[string]any, 0, topN)
	for _, q := range headN(byVolume, topN) {
		topVolume = append(topVolume, map[string]any{
			"symbol":   q.Symbol,
			"name":     q.Name,
			"volume":   q.Volume,
			"turnover": q.Turnover,
		})
	}

	n := float64(totalCount)
	statistics := map[string]any{
		"total_count":              totalCount,
		"avg_price":                round2(totalPrice / n),
		"avg_change_percent":       round2(totalChange / n),
		"avg_turnover_rate":        round2(totalTurnoverRate / n),
		"avg_pe":                   round2(totalPE / n),
		"avg_pb":                   round2(totalPB / n),
		"total_market_value":       round2(totalMV),
		"circulating_market_value": round2(totalCMV),
		"up_count":                 upCount,
		"down_count":               downCount,
		"limit_up_count":           limitUpCount,
		"limit_down_count":         limitDownCount,
		"top_10_by_price":          topPrice,
		"top_10_by_change":         topChange,
		"top_10_by_volume":         topVolume,
	}

	return map[string]any{
		"code":        200,
		"msg":         "success",
		"statistics":  statistics,
		"detail_data": quotes,
	}
}

// sortedCopy 降序稳定排序副本，相等时保持原始相对顺序
func sortedCopy(quotes []model.Quote, less func(a, b model.Quote) bool) []model.Quote {
	out := make([]model.Quote, len(quotes))
	copy(out, quotes)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func headN(quotes []model.Quote, n int) []model.Quote {
	if len(quotes) < n {
		return quotes
	}
	return quotes[:n]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
