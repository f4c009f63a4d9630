package eastmoney

import (
	"strings"

	"github.com/tidwall/gjson"

	"stock-market-gateway/internal/model"
)

// f 字段含义：f2 最新价 f3 涨跌幅 f4 涨跌额 f5 成交量 f6 成交额 f7 振幅
// f8 换手率 f9 市盈率-动态 f10 量比 f11 5分钟涨跌 f12 代码 f14 名称
// f15 最高 f16 最低 f17 今开 f18 昨收 f20 总市值 f21 流通市值
// f22 涨速 f23 市净率 f24 60日涨跌幅 f25 年初至今涨跌幅

// normalizeQuote 解析单只股票数据。上游缺失字段以 "-" 或 null 返回，
// Float/Int 对非数值一律得 0，文本缺失得 ""，保证每个字段始终存在。
func normalizeQuote(row gjson.Result, serial int) model.Quote {
	return model.Quote{
		Symbol:       row.Get("f12").String(),
		Name:         row.Get("f14").String(),
		CurrentPrice: numField(row, "f2"),

		ChangePercent: numField(row, "f3"),
		ChangeAmount:  numField(row, "f4"),

		Volume:    intField(row, "f5"),
		Turnover:  numField(row, "f6"),
		Amplitude: numField(row, "f7"),

		HighPrice: numField(row, "f15"),
		LowPrice:  numField(row, "f16"),
		OpenPrice: numField(row, "f17"),
		PrevClose: numField(row, "f18"),

		VolumeRatio:            numField(row, "f10"),
		TurnoverRate:           numField(row, "f8"),
		PEDynamic:              numField(row, "f9"),
		PBRatio:                numField(row, "f23"),
		TotalMarketValue:       numField(row, "f20"),
		CirculatingMarketValue: numField(row, "f21"),
		PriceSpeed:             numField(row, "f22"),
		FiveMinuteChange:       numField(row, "f11"),
		SixtyDayChange:         numField(row, "f24"),
		YearToDateChange:       numField(row, "f25"),

		SerialNumber: serial,
	}
}

func numField(row gjson.Result, key string) float64 {
	v := row.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return 0
	}
	return v.Float()
}

func intField(row gjson.Result, key string) int64 {
	v := row.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return 0
	}
	return v.Int()
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
