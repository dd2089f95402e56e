package pubchem

import (
	"context"
	"time"

	resty "github.com/go-resty/resty/v2"

	"github.com/scienceol/pubchem/pkg/common/code"
	"github.com/scienceol/pubchem/pkg/middleware/logger"
)

// Response 一次 GET 的原始结果，任何状态码都算有效响应，只有请求本身失败才返回错误
type Response struct {
	StatusCode int
	Body       []byte
}

type Transport interface {
	Get(ctx context.Context, url string) (*Response, error)
}

type restyTransport struct {
	client *resty.Client
}

// NewTransport 每次调用只发一次 GET，不重试
func NewTransport(timeout time.Duration) Transport {
	return &restyTransport{
		client: resty.New().
			SetTimeout(timeout).
			SetRetryCount(0).
			EnableTrace().
			SetHeader("Accept", "application/json, chemical/x-mdl-sdfile, */*"),
	}
}

func (t *restyTransport) Get(ctx context.Context, url string) (*Response, error) {
	res, err := t.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		logger.Errorf(ctx, "pubchem get %s err: %+v", url, err)
		return nil, code.TransportErr.WithErr(err)
	}

	logger.Debugf(ctx, "pubchem get %s status: %d took: %s", url, res.StatusCode(), res.Time())
	return &Response{
		StatusCode: res.StatusCode(),
		Body:       res.Body(),
	}, nil
}
