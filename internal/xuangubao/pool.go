// Package xuangubao 选股宝涨跌停股票池：按池类型抓取并归一化当日或指定日数据。
package xuangubao

import "strings"

// PoolKey 股票池类型短码
type PoolKey string

const (
	PoolLimitUp          PoolKey = "zt"           // 涨停池
	PoolLimitDown        PoolKey = "dt"           // 跌停池
	PoolYesterdayLimitUp PoolKey = "yesterday_zt" // 昨日涨停
	PoolBrokenLimitUp    PoolKey = "broken_zt"    // 炸板池
	PoolSuperStock       PoolKey = "super_stock"  // 强势股池
)

// PoolKeys 全部池类型，固定顺序（"全部池"接口按此顺序聚合）
var PoolKeys = []PoolKey{PoolLimitUp, PoolLimitDown, PoolYesterdayLimitUp, PoolBrokenLimitUp, PoolSuperStock}

// poolNames 池类型短码到上游 pool_name 参数的映射
var poolNames = map[PoolKey]string{
	PoolLimitUp:          "limit_up",
	PoolLimitDown:        "limit_down",
	PoolYesterdayLimitUp: "yesterday_limit_up",
	PoolBrokenLimitUp:    "limit_up_broken",
	PoolSuperStock:       "super_stock",
}

// ValidKey 判断池类型短码是否合法
func ValidKey(key string) bool {
	_, ok := poolNames[PoolKey(key)]
	return ok
}

// validKeyList 合法短码清单，用于报错信息
func validKeyList() string {
	keys := make([]string, 0, len(PoolKeys))
	for _, k := range PoolKeys {
		keys = append(keys, string(k))
	}
	return "[" + strings.Join(keys, ", ") + "]"
}
