package repo

import (
	"context"
	"strconv"
)

// CID PubChem 化合物编号
type CID int64

// CIDNotFound 名称查不到化合物时返回
const CIDNotFound CID = -1

// NA 表示 PubChem 未返回该文本属性
const NA = "NA"

func (c CID) String() string {
	return strconv.FormatInt(int64(c), 10)
}

func (c CID) Found() bool {
	return c != CIDNotFound
}

// Properties 化合物的 InChIKey 和 canonical SMILES
type Properties struct {
	SMILES   string `json:"smiles"`
	InChIKey string `json:"inchikey"`
}

// CompoundRecord 单个化合物名称的完整查询结果
type CompoundRecord struct {
	Name     string `json:"name"`
	CID      CID    `json:"cid"`
	CAS      string `json:"cas"`
	InChIKey string `json:"inchikey"`
	SMILES   string `json:"smiles"`
	SDF      string `json:"sdf,omitempty"`
}

// FormulaSearchResult 分子式搜索结果，最多 5 个 CID
// 唯一一次轮询时任务仍在运行或轮询失败，Complete 为 false，CIDs 可能不全或为空
type FormulaSearchResult struct {
	Formula  string   `json:"formula"`
	CIDs     []string `json:"cids"`
	ListKey  string   `json:"list_key,omitempty"`
	Complete bool     `json:"complete"`
}

// PubChemRepo PubChem API 访问接口
type PubChemRepo interface {
	GetCID(ctx context.Context, name string) (CID, error)
	GetCAS(ctx context.Context, cid CID) (string, error)
	GetProperties(ctx context.Context, cid CID) (*Properties, error)
	GetSDF(ctx context.Context, cid CID) (string, error)
	SearchFormula(ctx context.Context, formula string) (*FormulaSearchResult, error)
}
