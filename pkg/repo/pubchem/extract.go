package pubchem

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/scienceol/pubchem/pkg/common/code"
	"github.com/scienceol/pubchem/pkg/repo"
)

// WaitingMessage 列表任务仍在运行时 PubChem 返回的提示
const WaitingMessage = "Your request is running"

// MaxFormulaRecords 分子式搜索保留的 CID 上限
const MaxFormulaRecords = 5

func parse(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, code.ParseErr.WithMsgf("invalid json body: %.64q", body)
	}
	return gjson.ParseBytes(body), nil
}

// walk 按顺序逐级查找，返回第一个缺失的路径
func walk(doc gjson.Result, hops ...string) (gjson.Result, error) {
	cur := doc
	for i, hop := range hops {
		next := cur.Get(hop)
		if !next.Exists() {
			return gjson.Result{}, code.ShapeErr.WithMsgf("missing %s", strings.Join(hops[:i+1], "."))
		}
		cur = next
	}
	return cur, nil
}

func text(v gjson.Result, field string) (string, error) {
	switch v.Type {
	case gjson.String, gjson.Number:
		return v.String(), nil
	default:
		return "", code.ShapeErr.WithMsgf("%s is not text: %s", field, v.Raw)
	}
}

// ExtractCID 读取 IdentifierList.CID[0]
func ExtractCID(status int, body []byte) (repo.CID, error) {
	if status != http.StatusOK {
		return repo.CIDNotFound, nil
	}

	doc, err := parse(body)
	if err != nil {
		return repo.CIDNotFound, err
	}

	v, err := walk(doc, "IdentifierList", "CID", "0")
	if err != nil {
		return repo.CIDNotFound, err
	}
	if v.Type != gjson.Number {
		return repo.CIDNotFound, code.ShapeErr.WithMsgf("IdentifierList.CID.0 is not a number: %s", v.Raw)
	}

	return repo.CID(v.Int()), nil
}

// ExtractCAS 读取 PUG View 记录中的第一个 CAS 号
func ExtractCAS(status int, body []byte) (string, error) {
	if status != http.StatusOK {
		return repo.NA, nil
	}

	doc, err := parse(body)
	if err != nil {
		return repo.NA, err
	}

	v, err := walk(doc,
		"Record",
		"Section", "0",
		"Section", "0",
		"Section", "0",
		"Information", "0",
		"Value",
		"StringWithMarkup", "0",
		"String")
	if err != nil {
		return repo.NA, err
	}

	cas, err := text(v, "CAS")
	if err != nil {
		return repo.NA, err
	}
	return cas, nil
}

// ExtractProperties 从属性表第一行读取 CanonicalSMILES 和 InChIKey
func ExtractProperties(status int, body []byte) (*repo.Properties, error) {
	na := &repo.Properties{SMILES: repo.NA, InChIKey: repo.NA}
	if status != http.StatusOK {
		return na, nil
	}

	doc, err := parse(body)
	if err != nil {
		return na, err
	}

	row, err := walk(doc, "PropertyTable", "Properties", "0")
	if err != nil {
		return na, err
	}

	smilesV, err := walk(row, "CanonicalSMILES")
	if err != nil {
		return na, err
	}
	smiles, err := text(smilesV, "CanonicalSMILES")
	if err != nil {
		return na, err
	}

	keyV, err := walk(row, "InChIKey")
	if err != nil {
		return na, err
	}
	key, err := text(keyV, "InChIKey")
	if err != nil {
		return na, err
	}

	return &repo.Properties{SMILES: smiles, InChIKey: key}, nil
}

// ExtractStructure 原样返回 SDF 内容，不检查状态码，需要时由调用方自行判断
func ExtractStructure(_ int, body []byte) string {
	return string(body)
}

// ExtractWaiting 判断响应是否为排队中的任务，并返回其 list key
func ExtractWaiting(body []byte) (string, bool, error) {
	doc, err := parse(body)
	if err != nil {
		return "", false, err
	}

	msg := doc.Get("Waiting.Message")
	if !msg.Exists() || msg.String() != WaitingMessage {
		return "", false, nil
	}

	key := doc.Get("Waiting.ListKey").String()
	if key == "" {
		return "", true, code.ShapeErr.WithMsg("missing Waiting.ListKey")
	}
	return key, true, nil
}

// ExtractCIDList 以文本形式读取 IdentifierList.CID，最多保留 limit 个
// 没有 IdentifierList 时返回空切片
func ExtractCIDList(status int, body []byte, limit int) ([]string, error) {
	cids := make([]string, 0, limit)
	if status != http.StatusOK {
		return cids, nil
	}

	doc, err := parse(body)
	if err != nil {
		return cids, err
	}

	list := doc.Get("IdentifierList.CID")
	if !list.Exists() {
		return cids, nil
	}
	if !list.IsArray() {
		return cids, code.ShapeErr.WithMsgf("IdentifierList.CID is not a list: %s", list.Raw)
	}

	for _, v := range list.Array() {
		if len(cids) >= limit {
			break
		}
		if v.Type != gjson.Number {
			return cids, code.ShapeErr.WithMsgf("IdentifierList.CID entry is not a number: %s", v.Raw)
		}
		cids = append(cids, strconv.FormatInt(v.Int(), 10))
	}
	return cids, nil
}
