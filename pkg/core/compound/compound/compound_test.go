package compound

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scienceol/pubchem/pkg/common/code"
	core "github.com/scienceol/pubchem/pkg/core/compound"
	"github.com/scienceol/pubchem/pkg/repo"
)

type fakeRepo struct {
	cids   map[string]repo.CID
	cas    map[repo.CID]string
	props  map[repo.CID]*repo.Properties
	sdf    map[repo.CID]string
	casErr error
	calls  []string
}

func (f *fakeRepo) GetCID(_ context.Context, name string) (repo.CID, error) {
	f.calls = append(f.calls, "cid")
	if cid, ok := f.cids[name]; ok {
		return cid, nil
	}
	return repo.CIDNotFound, nil
}

func (f *fakeRepo) GetCAS(_ context.Context, cid repo.CID) (string, error) {
	f.calls = append(f.calls, "cas")
	if f.casErr != nil {
		return repo.NA, f.casErr
	}
	if cas, ok := f.cas[cid]; ok {
		return cas, nil
	}
	return repo.NA, nil
}

func (f *fakeRepo) GetProperties(_ context.Context, cid repo.CID) (*repo.Properties, error) {
	f.calls = append(f.calls, "properties")
	if p, ok := f.props[cid]; ok {
		return p, nil
	}
	return &repo.Properties{SMILES: repo.NA, InChIKey: repo.NA}, nil
}

func (f *fakeRepo) GetSDF(_ context.Context, cid repo.CID) (string, error) {
	f.calls = append(f.calls, "sdf")
	return f.sdf[cid], nil
}

func (f *fakeRepo) SearchFormula(_ context.Context, formula string) (*repo.FormulaSearchResult, error) {
	f.calls = append(f.calls, "formula")
	return &repo.FormulaSearchResult{Formula: formula, CIDs: []string{"2244"}, Complete: true}, nil
}

func aspirinRepo() *fakeRepo {
	return &fakeRepo{
		cids: map[string]repo.CID{"aspirin": 2244},
		cas:  map[repo.CID]string{2244: "50-78-2"},
		props: map[repo.CID]*repo.Properties{2244: {
			SMILES:   "CC(=O)OC1=CC=CC=C1C(=O)O",
			InChIKey: "BSYNRYMUTXBXSQ-UHFFFAOYSA-N",
		}},
		sdf: map[repo.CID]string{2244: "2244\nM  END\n$$$$\n"},
	}
}

func TestRecord(t *testing.T) {
	f := aspirinRepo()
	svc := New(f)

	record, err := svc.Record(context.Background(), &core.RecordReq{Name: "aspirin"})
	require.NoError(t, err)
	assert.Equal(t, &repo.CompoundRecord{
		Name:     "aspirin",
		CID:      2244,
		CAS:      "50-78-2",
		InChIKey: "BSYNRYMUTXBXSQ-UHFFFAOYSA-N",
		SMILES:   "CC(=O)OC1=CC=CC=C1C(=O)O",
	}, record)
	assert.Equal(t, []string{"cid", "cas", "properties"}, f.calls)
}

func TestRecordWithSDF(t *testing.T) {
	f := aspirinRepo()
	svc := New(f)

	record, err := svc.Record(context.Background(), &core.RecordReq{Name: "aspirin", WithSDF: true})
	require.NoError(t, err)
	assert.Equal(t, "2244\nM  END\n$$$$\n", record.SDF)
	assert.Equal(t, []string{"cid", "cas", "properties", "sdf"}, f.calls)
}

func TestRecordNotFoundShortCircuits(t *testing.T) {
	f := aspirinRepo()
	svc := New(f)

	record, err := svc.Record(context.Background(), &core.RecordReq{Name: "unobtainium", WithSDF: true})
	require.NoError(t, err)
	assert.Equal(t, repo.CIDNotFound, record.CID)
	assert.Equal(t, repo.NA, record.CAS)
	assert.Equal(t, repo.NA, record.InChIKey)
	assert.Equal(t, repo.NA, record.SMILES)
	assert.Empty(t, record.SDF)
	assert.Equal(t, []string{"cid"}, f.calls)
}

func TestRecordPropagatesHardErrors(t *testing.T) {
	f := aspirinRepo()
	f.casErr = code.TransportErr.WithMsg("network is unreachable")
	svc := New(f)

	record, err := svc.Record(context.Background(), &core.RecordReq{Name: "aspirin"})
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, code.TransportErr))
}

func TestSingleOperations(t *testing.T) {
	svc := New(aspirinRepo())
	ctx := context.Background()

	cidResp, err := svc.CID(ctx, &core.NameReq{Name: "aspirin"})
	require.NoError(t, err)
	assert.Equal(t, &core.CIDResp{Name: "aspirin", CID: 2244, Found: true}, cidResp)

	cidResp, err = svc.CID(ctx, &core.NameReq{Name: "nothing"})
	require.NoError(t, err)
	assert.False(t, cidResp.Found)

	casResp, err := svc.CAS(ctx, &core.CIDReq{CID: 2244})
	require.NoError(t, err)
	assert.Equal(t, "50-78-2", casResp.CAS)

	props, err := svc.Properties(ctx, &core.CIDReq{CID: 2244})
	require.NoError(t, err)
	assert.Equal(t, "BSYNRYMUTXBXSQ-UHFFFAOYSA-N", props.InChIKey)
	assert.Equal(t, repo.CID(2244), props.CID)

	sdf, err := svc.SDF(ctx, &core.CIDReq{CID: 2244})
	require.NoError(t, err)
	assert.Equal(t, "2244\nM  END\n$$$$\n", sdf)

	res, err := svc.Formula(ctx, &core.FormulaReq{Formula: "C9H8O4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2244"}, res.CIDs)
}
