package model

// PoolStock 股票池单条记录。不同池类型携带不同的扩展字段，
// 因此用 map 表示，序列化时只输出该池类型实际具有的键。
// 基础键（trade_date、stock_code、price 等）任何池类型都有。
type PoolStock map[string]any

// Num 读取数值字段，缺失或非数值返回 0
func (p PoolStock) Num(key string) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Str 读取文本字段，缺失返回 ""
func (p PoolStock) Str(key string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return ""
}
