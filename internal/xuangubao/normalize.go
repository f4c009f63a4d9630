package xuangubao

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/tidwall/gjson"

	"stock-market-gateway/internal/model"
)

// 上游单位换算：涨跌幅/换手率/封单比为小数（0~1），市值以分计
const (
	ratioScale     = 100
	marketCapScale = 100000000
)

type relatedPlate struct {
	PlateName   string `json:"plate_name"`
	PlateReason string `json:"plate_reason"`
}

// NormalizePoolStock 解析单只股票数据，处理空值与单位换算。
// 基础字段任何池类型都有；封单与涨跌停字段按池类型分支；
// 上游缺失的数值一律得 0，文本得 ""。
func NormalizePoolStock(stock gjson.Result, poolKey PoolKey, tradeDate string) model.PoolStock {
	s := model.PoolStock{
		"trade_date":             tradeDate,
		"stock_code":             stock.Get("symbol").String(),
		"stock_name":             stock.Get("stock_chi_name").String(),
		"stock_type":             stock.Get("stock_type").Int(),
		"price":                  round2(stock.Get("price").Float()),
		"change_percent":         round2(stock.Get("change_percent").Float() * ratioScale),
		"turnover_ratio":         round2(stock.Get("turnover_ratio").Float() * ratioScale),
		"circulation_market_cap": round2(stock.Get("non_restricted_capital").Float() / marketCapScale),
		"total_market_cap":       round2(stock.Get("total_capital").Float() / marketCapScale),
		"issue_price":            round2(stock.Get("issue_price").Float()),
		"listed_date":            timestampToDatetime(stock.Get("listed_date")),
		"pool_type":              string(poolKey),
	}

	// 封单相关数据：跌停池按卖方封单比计算封单金额，其余池按买方封单比
	buyRatio := stock.Get("buy_lock_volume_ratio").Float()
	sellRatio := stock.Get("sell_lock_volume_ratio").Float()
	s["buy_lock_ratio"] = round4(buyRatio * ratioScale)
	s["sell_lock_ratio"] = round4(sellRatio * ratioScale)
	lockRatio := buyRatio
	if poolKey == PoolLimitDown {
		lockRatio = sellRatio
	}
	amount := lockAmount(lockRatio, stock.Get("non_restricted_capital"))
	s["current_lock_amount"] = amount
	s["max_lock_amount"] = amount

	// 涨停/跌停相关数据
	switch poolKey {
	case PoolLimitUp:
		s["limit_up_days"] = stock.Get("limit_up_days").Int()
		s["break_limit_up_times"] = stock.Get("break_limit_up_times").Int()
		s["first_limit_up_time"] = timestampToDatetime(stock.Get("first_limit_up"))
		s["last_limit_up_time"] = timestampToDatetime(stock.Get("last_limit_up"))
	case PoolLimitDown:
		s["limit_down_days"] = stock.Get("limit_down_days").Int()
		s["break_limit_down_times"] = stock.Get("break_limit_down_times").Int()
		s["first_limit_down_time"] = timestampToDatetime(stock.Get("first_limit_down"))
		s["last_limit_down_time"] = timestampToDatetime(stock.Get("last_limit_down"))
	case PoolYesterdayLimitUp:
		s["yesterday_limit_up_days"] = stock.Get("yesterday_limit_up_days").Int()
		s["yesterday_break_limit_up_times"] = stock.Get("yesterday_break_limit_up_times").Int()
		s["yesterday_first_limit_up_time"] = timestampToDatetime(stock.Get("yesterday_first_limit_up"))
		s["yesterday_last_limit_up_time"] = timestampToDatetime(stock.Get("yesterday_last_limit_up"))
	case PoolBrokenLimitUp:
		s["break_limit_up_times"] = stock.Get("break_limit_up_times").Int()
		s["first_limit_up_time"] = timestampToDatetime(stock.Get("first_limit_up"))
		s["last_break_limit_up_time"] = timestampToDatetime(stock.Get("last_break_limit_up"))
	case PoolSuperStock:
		s["limit_up_days"] = stock.Get("limit_up_days").Int()
		s["m_days_n_boards"] = fmt.Sprintf("%d天%d板",
			stock.Get("m_days_n_boards_days").Int(), stock.Get("m_days_n_boards_boards").Int())
		s["first_limit_up_time"] = timestampToDatetime(stock.Get("first_limit_up"))
		s["last_limit_up_time"] = timestampToDatetime(stock.Get("last_limit_up"))
	}

	// 上涨/下跌原因：原因文本 + 关联板块（嵌套结构按外部契约序列化为字符串）
	reason := stock.Get("surge_reason")
	s["stock_reason"] = reason.Get("stock_reason").String()
	plates := make([]relatedPlate, 0)
	reason.Get("related_plates").ForEach(func(_, p gjson.Result) bool {
		if p.Type == gjson.Null {
			return true
		}
		plates = append(plates, relatedPlate{
			PlateName:   p.Get("plate_name").String(),
			PlateReason: p.Get("plate_reason").String(),
		})
		return true
	})
	platesJSON, _ := json.Marshal(plates)
	s["related_plates"] = string(platesJSON)

	return s
}

// lockAmount 封单金额 = 封单比 × 流通市值（分），保留两位。
// 流通市值缺失时无法计算，返回空串而非 0。
func lockAmount(lockRatio float64, capital gjson.Result) any {
	if !capital.Exists() || capital.Type == gjson.Null {
		return ""
	}
	return round2(lockRatio * capital.Float())
}

// timestampToDatetime 秒级时间戳转字符串（格式：yyyy-MM-dd HH:mm:ss），
// 零值/缺失返回空串而不是纪元零点
func timestampToDatetime(ts gjson.Result) string {
	sec := ts.Int()
	if sec == 0 {
		return ""
	}
	return time.Unix(sec, 0).Format("2006-01-02 15:04:05")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
