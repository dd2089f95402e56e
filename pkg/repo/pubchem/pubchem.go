package pubchem

import (
	"context"
	"net/http"
	"strings"

	"github.com/scienceol/pubchem/internal/config"
	"github.com/scienceol/pubchem/pkg/common/code"
	"github.com/scienceol/pubchem/pkg/middleware/logger"
	"github.com/scienceol/pubchem/pkg/repo"
)

type formulaState int

const (
	formulaSubmitted formulaState = iota
	formulaResolved
)

type Option func(*pubchemImpl)

func WithTransport(t Transport) Option {
	return func(p *pubchemImpl) {
		if t != nil {
			p.transport = t
		}
	}
}

func WithLimiter(l Limiter) Option {
	return func(p *pubchemImpl) {
		if l != nil {
			p.limiter = l
		}
	}
}

func WithAddr(addr string) Option {
	return func(p *pubchemImpl) {
		p.urls = NewURLBuilder(addr)
	}
}

func WithMaxRecords(n int) Option {
	return func(p *pubchemImpl) {
		if n > 0 && n <= MaxFormulaRecords {
			p.maxRecords = n
		}
	}
}

type pubchemImpl struct {
	urls       *URLBuilder
	transport  Transport
	limiter    Limiter
	maxRecords int
}

// NewPubChemRepo 根据全局配置创建客户端，默认每次请求后休眠配置的延迟
func NewPubChemRepo(opts ...Option) repo.PubChemRepo {
	conf := config.Global().PubChem
	p := &pubchemImpl{
		urls:       NewURLBuilder(conf.Addr),
		transport:  NewTransport(conf.Timeout),
		limiter:    NewFixedDelay(conf.Delay),
		maxRecords: MaxFormulaRecords,
	}
	WithMaxRecords(conf.MaxRecords)(p)

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// get 在限速器的 Acquire 和 Release 之间发出一次请求，返回前总会调用 Release
func (p *pubchemImpl) get(ctx context.Context, url string) (*Response, error) {
	if err := p.limiter.Acquire(ctx); err != nil {
		return nil, code.TransportErr.WithErr(err)
	}
	defer p.limiter.Release(ctx)

	return p.transport.Get(ctx, url)
}

func (p *pubchemImpl) GetCID(ctx context.Context, name string) (repo.CID, error) {
	if strings.TrimSpace(name) == "" {
		return repo.CIDNotFound, code.ParamErr.WithMsg("compound name is empty")
	}

	res, err := p.get(ctx, p.urls.CID(name))
	if err != nil {
		return repo.CIDNotFound, err
	}

	cid, err := ExtractCID(res.StatusCode, res.Body)
	if err != nil {
		logger.Errorf(ctx, "GetCID name: %s err: %+v", name, err)
		return repo.CIDNotFound, err
	}
	return cid, nil
}

func (p *pubchemImpl) GetCAS(ctx context.Context, cid repo.CID) (string, error) {
	res, err := p.get(ctx, p.urls.CAS(cid))
	if err != nil {
		return repo.NA, err
	}

	cas, err := ExtractCAS(res.StatusCode, res.Body)
	if err != nil {
		logger.Errorf(ctx, "GetCAS cid: %d err: %+v", cid, err)
		return repo.NA, err
	}
	return cas, nil
}

func (p *pubchemImpl) GetProperties(ctx context.Context, cid repo.CID) (*repo.Properties, error) {
	res, err := p.get(ctx, p.urls.Properties(cid))
	if err != nil {
		return nil, err
	}

	props, err := ExtractProperties(res.StatusCode, res.Body)
	if err != nil {
		logger.Errorf(ctx, "GetProperties cid: %d err: %+v", cid, err)
		return nil, err
	}
	return props, nil
}

func (p *pubchemImpl) GetSDF(ctx context.Context, cid repo.CID) (string, error) {
	res, err := p.get(ctx, p.urls.Structure(cid))
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		logger.Warnf(ctx, "GetSDF cid: %d http code: %d", cid, res.StatusCode)
	}
	return ExtractStructure(res.StatusCode, res.Body), nil
}

// SearchFormula 提交快速分子式搜索，任务排队时只轮询一次 list key
// 轮询后仍未完成则返回不完整结果，不再重试
func (p *pubchemImpl) SearchFormula(ctx context.Context, formula string) (*repo.FormulaSearchResult, error) {
	if strings.TrimSpace(formula) == "" {
		return nil, code.ParamErr.WithMsg("formula is empty")
	}

	result := &repo.FormulaSearchResult{Formula: formula, CIDs: []string{}}
	state := formulaSubmitted
	url := p.urls.Formula(formula)

	for {
		res, err := p.get(ctx, url)
		if err != nil {
			return nil, err
		}

		switch state {
		case formulaSubmitted:
			if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusAccepted {
				logger.Warnf(ctx, "SearchFormula formula: %s http code: %d", formula, res.StatusCode)
				result.Complete = true
				return result, nil
			}

			key, pending, err := ExtractWaiting(res.Body)
			if err != nil {
				logger.Errorf(ctx, "SearchFormula formula: %s err: %+v", formula, err)
				return nil, err
			}
			if !pending {
				if result.CIDs, err = ExtractCIDList(res.StatusCode, res.Body, p.maxRecords); err != nil {
					return nil, err
				}
				result.Complete = true
				return result, nil
			}

			logger.Infof(ctx, "SearchFormula formula: %s queued with list key: %s", formula, key)
			result.ListKey = key
			url = p.urls.ListKey(key)
			state = formulaResolved

		case formulaResolved:
			if result.CIDs, err = ExtractCIDList(res.StatusCode, res.Body, p.maxRecords); err != nil {
				logger.Errorf(ctx, "SearchFormula list key: %s err: %+v", result.ListKey, err)
				return nil, err
			}
			// 轮询失败时任务状态未知，不能标记为已完成
			if res.StatusCode != http.StatusOK {
				logger.Warnf(ctx, "SearchFormula list key: %s poll http code: %d", result.ListKey, res.StatusCode)
				return result, nil
			}
			if _, running, _ := ExtractWaiting(res.Body); running {
				logger.Warnf(ctx, "SearchFormula list key: %s still running after poll", result.ListKey)
				return result, nil
			}
			result.Complete = true
			return result, nil
		}
	}
}
