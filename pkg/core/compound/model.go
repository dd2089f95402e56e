package compound

import "github.com/scienceol/pubchem/pkg/repo"

type NameReq struct {
	Name string `form:"name" binding:"required"`
}

type CIDReq struct {
	CID repo.CID `uri:"cid" binding:"required"`
}

type FormulaReq struct {
	Formula string `uri:"formula" binding:"required"`
}

// RecordReq 按名称汇总一个化合物的全部信息，WithSDF 时附带 2D 结构
type RecordReq struct {
	Name    string `form:"name" binding:"required"`
	WithSDF bool   `form:"sdf"`
}

type CIDResp struct {
	Name  string   `json:"name"`
	CID   repo.CID `json:"cid"`
	Found bool     `json:"found"`
}

type CASResp struct {
	CID repo.CID `json:"cid"`
	CAS string   `json:"cas"`
}

type PropertiesResp struct {
	CID repo.CID `json:"cid"`
	repo.Properties
}
