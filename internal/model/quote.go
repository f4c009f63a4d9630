package model

// Quote 沪深京A股实时行情（归一化后的单条记录）
// 所有字段始终存在：上游缺失的数值置 0，文本置 ""
type Quote struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`

	// 涨跌幅相关
	ChangePercent float64 `json:"change_percent"`
	ChangeAmount  float64 `json:"change_amount"`

	// 成交数据
	Volume    int64   `json:"volume"`
	Turnover  float64 `json:"turnover"`
	Amplitude float64 `json:"amplitude"`

	// 价格数据
	HighPrice float64 `json:"high_price"`
	LowPrice  float64 `json:"low_price"`
	OpenPrice float64 `json:"open_price"`
	PrevClose float64 `json:"prev_close"`

	// 其他指标
	VolumeRatio            float64 `json:"volume_ratio"`
	TurnoverRate           float64 `json:"turnover_rate"`
	PEDynamic              float64 `json:"pe_dynamic"`
	PBRatio                float64 `json:"pb_ratio"`
	TotalMarketValue       float64 `json:"total_market_value"`
	CirculatingMarketValue float64 `json:"circulating_market_value"`
	PriceSpeed             float64 `json:"price_speed"`
	FiveMinuteChange       float64 `json:"five_minute_change"`
	SixtyDayChange         float64 `json:"sixty_day_change"`
	YearToDateChange       float64 `json:"year_to_date_change"`

	// 内部序号
	SerialNumber int `json:"serial_number"`
}
