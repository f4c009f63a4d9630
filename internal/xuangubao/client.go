package xuangubao

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"stock-market-gateway/internal/apperrors"
	"stock-market-gateway/internal/model"
)

// 上游业务成功码
const successCode = 20000

// 重试策略：最多 3 次，指数退避 2s 起步、10s 封顶，仅网络/超时类失败重试
const (
	maxRetries      = 2 // 首次之外的重试次数
	initialInterval = 2 * time.Second
	maxInterval     = 10 * time.Second
)

// 请求头伪装
var requestHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Referer":         "https://xuangubao.com.cn",
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "zh-CN,zh;q=0.9,en;q=0.8",
}

const dateLayout = "2006-01-02"

// Client 选股宝股票池客户端。http.Client 进程级共享，仅复用连接，
// 无每次调用的可变状态，可被并发请求安全使用。
type Client struct {
	baseURL string
	http    *http.Client
	audit   *zap.Logger

	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewClient 创建客户端；audit 用于记录上游原始响应
func NewClient(baseURL string, timeout time.Duration, audit *zap.Logger) *Client {
	return &Client{
		baseURL:        baseURL,
		http:           &http.Client{Timeout: timeout},
		audit:          audit,
		initialBackoff: initialInterval,
		maxBackoff:     maxInterval,
	}
}

// FetchPool 获取指定股票池数据。
// tradeDate 为空时默认当天；与当天相同时不带 date 参数（当天为隐式情形）。
// 池类型或日期非法返回 InvalidArgument；上游业务码非 20000 返回 UpstreamError；
// 空结果是合法结果，返回空切片。
func (c *Client) FetchPool(poolKey string, tradeDate string) ([]model.PoolStock, error) {
	if !ValidKey(poolKey) {
		return nil, apperrors.New(apperrors.InvalidArgument,
			"不支持的股票池类型：%s，支持类型：%s", poolKey, validKeyList())
	}

	today := time.Now().Format(dateLayout)
	if tradeDate == "" {
		tradeDate = today
	} else if _, err := time.Parse(dateLayout, tradeDate); err != nil {
		return nil, apperrors.New(apperrors.InvalidArgument,
			"日期格式错误：%s，正确格式：yyyy-MM-dd", tradeDate)
	}

	params := url.Values{}
	params.Set("pool_name", poolNames[PoolKey(poolKey)])
	if tradeDate != today {
		params.Set("date", tradeDate)
	}

	c.audit.Info(fmt.Sprintf("选股宝API请求参数: %s", params.Encode()))

	var stocks []model.PoolStock
	operation := func() error {
		body, err := c.get(params)
		if err != nil {
			// 网络/超时类失败，交给退避重试
			return err
		}

		// 记录原始响应数据到审计日志
		c.audit.Info(fmt.Sprintf("选股宝原始API响应: %s", body))

		code := gjson.GetBytes(body, "code")
		if !code.Exists() {
			return backoff.Permanent(apperrors.New(apperrors.UpstreamError,
				"获取数据失败：响应格式异常"))
		}
		if code.Int() != successCode {
			message := gjson.GetBytes(body, "message").String()
			c.audit.Error(fmt.Sprintf("选股宝API返回错误：%s", message))
			return backoff.Permanent(apperrors.New(apperrors.UpstreamError,
				"选股宝API错误：%s", message))
		}

		data := gjson.GetBytes(body, "data")
		if !data.Exists() || data.Type == gjson.Null || len(data.Array()) == 0 {
			c.audit.Info(fmt.Sprintf("%s的%s股票池无数据", tradeDate, poolKey))
			stocks = []model.PoolStock{}
			return nil
		}

		parsed := make([]model.PoolStock, 0, len(data.Array()))
		data.ForEach(func(_, stock gjson.Result) bool {
			parsed = append(parsed, NormalizePoolStock(stock, PoolKey(poolKey), tradeDate))
			return true
		})
		stocks = parsed
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialBackoff
	b.MaxInterval = c.maxBackoff
	b.MaxElapsedTime = 0

	if err := backoff.Retry(operation, backoff.WithMaxRetries(b, maxRetries)); err != nil {
		if ae, ok := apperrors.As(err); ok {
			return nil, ae
		}
		// 重试耗尽后不吞错，原样上抛
		c.audit.Error(fmt.Sprintf("获取%s的%s股票池数据失败: %v", tradeDate, poolKey, err))
		return nil, apperrors.Wrap(apperrors.UpstreamError, err, "获取数据失败：%v", err)
	}

	c.audit.Info(fmt.Sprintf("成功获取%s的%s股票池数据，共%d只股票", tradeDate, poolKey, len(stocks)))
	return stocks, nil
}

// get 发起单次请求并读出响应体；非 2xx 状态不参与重试，直接作为上游错误
func (c *Client) get(params url.Values) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, backoff.Permanent(apperrors.Wrap(apperrors.UpstreamError, err, "获取数据失败：%v", err))
	}
	for k, v := range requestHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, backoff.Permanent(apperrors.New(apperrors.UpstreamError,
			"获取数据失败：HTTP %d", resp.StatusCode))
	}
	return body, nil
}
