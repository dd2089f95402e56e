package pubchem

import (
	"strings"

	"github.com/scienceol/pubchem/pkg/repo"
)

const (
	restPath = "/rest/pug"
	viewPath = "/rest/pug_view"
)

// URLBuilder 基于 PUG REST 和 PUG View 地址拼接请求 URL
// 名称、分子式和 list key 原样拼接，不做转义
type URLBuilder struct {
	rest string
	view string
}

func NewURLBuilder(addr string) *URLBuilder {
	addr = strings.TrimRight(addr, "/")
	return &URLBuilder{
		rest: addr + restPath,
		view: addr + viewPath,
	}
}

func (u *URLBuilder) CID(name string) string {
	return u.rest + "/compound/name/" + name + "/cids/JSON"
}

func (u *URLBuilder) CAS(cid repo.CID) string {
	return u.view + "/data/compound/" + cid.String() + "/JSON?heading=CAS"
}

func (u *URLBuilder) Properties(cid repo.CID) string {
	return u.rest + "/compound/cid/" + cid.String() + "/property/InChIKey,CanonicalSMILES/JSON"
}

func (u *URLBuilder) Structure(cid repo.CID) string {
	return u.rest + "/compound/cid/" + cid.String() + "/SDF?record_type=2d"
}

func (u *URLBuilder) Formula(formula string) string {
	return u.rest + "/compound/fastformula/" + formula + "/cids/JSON?MaxRecords=5"
}

func (u *URLBuilder) ListKey(key string) string {
	return u.rest + "/compound/listkey/" + key + "/cids/JSON"
}
