// Package eastmoney 东方财富沪深京A股实时行情：拉取全市场快照并归一化。
package eastmoney

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"stock-market-gateway/internal/apperrors"
	"stock-market-gateway/internal/model"
)

// 列表接口请求字段：行情快照所需的全部 f 字段（代码/名称/价格/涨跌/成交/估值等）
const listFields = "f2,f3,f4,f5,f6,f7,f8,f9,f10,f11,f12,f14,f15,f16,f17,f18,f20,f21,f22,f23,f24,f25"

// 市场过滤：沪市主板、科创板、深市主板、创业板、北交所
const listMarkets = "m:0+t:6,m:0+t:80,m:1+t:2,m:1+t:23,m:0+t:81+s:2048"

const listPageSize = 10000

// 请求头（模拟浏览器）
const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	referer   = "https://quote.eastmoney.com"
)

// Client 东方财富行情客户端
type Client struct {
	baseURL string
	http    *http.Client
	audit   *zap.Logger
}

// NewClient 创建客户端；audit 用于记录上游原始响应
func NewClient(baseURL string, timeout time.Duration, audit *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		audit:   audit,
	}
}

// FetchRealtime 获取沪深京A股实时行情数据（全市场，单次调用，不重试）。
// 任何网络、解析或上游结构变化导致的失败都返回 DataFetchError。
func (c *Client) FetchRealtime() ([]model.Quote, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("pn", "1")
	params.Set("pz", fmt.Sprint(listPageSize))
	params.Set("po", "1")
	params.Set("np", "1")
	params.Set("fltt", "2")
	params.Set("invt", "2")
	params.Set("fid", "f3")
	params.Set("fs", listMarkets)
	params.Set("fields", listFields)

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.DataFetchError, err, "获取数据失败：%v", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", referer)

	resp, err := c.http.Do(req)
	if err != nil {
		c.audit.Error(fmt.Sprintf("获取A股实时行情数据失败: %v", err))
		return nil, apperrors.Wrap(apperrors.DataFetchError, err, "获取数据失败：%v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.DataFetchError, err, "获取数据失败：%v", err)
	}

	// 记录原始数据到审计日志
	c.audit.Info(fmt.Sprintf("东方财富原始API响应数据: %s", body))

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.New(apperrors.DataFetchError, "获取数据失败：HTTP %d", resp.StatusCode)
	}

	diff := gjson.GetBytes(body, "data.diff")
	if !diff.Exists() || diff.Type == gjson.Null {
		c.audit.Error("东方财富返回空数据")
		return nil, apperrors.New(apperrors.DataFetchError, "获取数据失败：东方财富返回空数据")
	}

	// diff 可能是数组或 {"0":{...}} 形式的对象，ForEach 两者皆可遍历
	quotes := make([]model.Quote, 0, listPageSize/2)
	diff.ForEach(func(_, row gjson.Result) bool {
		quotes = append(quotes, normalizeQuote(row, len(quotes)+1))
		return true
	})

	c.audit.Info(fmt.Sprintf("获取A股实时行情数据，共%d条记录，耗时: %.2fs", len(quotes), time.Since(start).Seconds()))
	return quotes, nil
}

// FilterQuotes 按关键词过滤行情（代码或名称的大小写不敏感子串匹配），
// 收集到 limit 条即停止，保持原始顺序。
func FilterQuotes(quotes []model.Quote, keyword string, limit int) []model.Quote {
	filtered := make([]model.Quote, 0, limit)
	for _, q := range quotes {
		if containsFold(q.Symbol, keyword) || containsFold(q.Name, keyword) {
			filtered = append(filtered, q)
			if len(filtered) >= limit {
				break
			}
		}
	}
	return filtered
}
