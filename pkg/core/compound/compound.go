package compound

import (
	"context"

	"github.com/scienceol/pubchem/pkg/repo"
)

// Service 化合物查询业务接口，每个方法对应一次或多次 PubChem 请求
type Service interface {
	CID(ctx context.Context, req *NameReq) (*CIDResp, error)
	CAS(ctx context.Context, req *CIDReq) (*CASResp, error)
	Properties(ctx context.Context, req *CIDReq) (*PropertiesResp, error)
	SDF(ctx context.Context, req *CIDReq) (string, error)
	Formula(ctx context.Context, req *FormulaReq) (*repo.FormulaSearchResult, error)
	// Record 名称 -> CID -> CAS/属性/结构，CID 未找到时直接返回占位值
	Record(ctx context.Context, req *RecordReq) (*repo.CompoundRecord, error)
}
