package compound

import (
	"context"

	core "github.com/scienceol/pubchem/pkg/core/compound"
	"github.com/scienceol/pubchem/pkg/middleware/logger"
	"github.com/scienceol/pubchem/pkg/repo"
)

type compoundImpl struct {
	pubchem repo.PubChemRepo
}

func New(pubchem repo.PubChemRepo) core.Service {
	return &compoundImpl{pubchem: pubchem}
}

func (c *compoundImpl) CID(ctx context.Context, req *core.NameReq) (*core.CIDResp, error) {
	cid, err := c.pubchem.GetCID(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	return &core.CIDResp{Name: req.Name, CID: cid, Found: cid.Found()}, nil
}

func (c *compoundImpl) CAS(ctx context.Context, req *core.CIDReq) (*core.CASResp, error) {
	cas, err := c.pubchem.GetCAS(ctx, req.CID)
	if err != nil {
		return nil, err
	}
	return &core.CASResp{CID: req.CID, CAS: cas}, nil
}

func (c *compoundImpl) Properties(ctx context.Context, req *core.CIDReq) (*core.PropertiesResp, error) {
	props, err := c.pubchem.GetProperties(ctx, req.CID)
	if err != nil {
		return nil, err
	}
	return &core.PropertiesResp{CID: req.CID, Properties: *props}, nil
}

func (c *compoundImpl) SDF(ctx context.Context, req *core.CIDReq) (string, error) {
	return c.pubchem.GetSDF(ctx, req.CID)
}

func (c *compoundImpl) Formula(ctx context.Context, req *core.FormulaReq) (*repo.FormulaSearchResult, error) {
	return c.pubchem.SearchFormula(ctx, req.Formula)
}

func (c *compoundImpl) Record(ctx context.Context, req *core.RecordReq) (*repo.CompoundRecord, error) {
	record := &repo.CompoundRecord{
		Name:     req.Name,
		CID:      repo.CIDNotFound,
		CAS:      repo.NA,
		InChIKey: repo.NA,
		SMILES:   repo.NA,
	}

	cid, err := c.pubchem.GetCID(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if !cid.Found() {
		logger.Infof(ctx, "Record name: %s not found in pubchem", req.Name)
		return record, nil
	}
	record.CID = cid

	if record.CAS, err = c.pubchem.GetCAS(ctx, cid); err != nil {
		return nil, err
	}

	props, err := c.pubchem.GetProperties(ctx, cid)
	if err != nil {
		return nil, err
	}
	record.SMILES = props.SMILES
	record.InChIKey = props.InChIKey

	if req.WithSDF {
		if record.SDF, err = c.pubchem.GetSDF(ctx, cid); err != nil {
			return nil, err
		}
	}

	return record, nil
}
