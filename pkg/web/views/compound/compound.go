package compound

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scienceol/pubchem/pkg/common"
	"github.com/scienceol/pubchem/pkg/common/code"
	core "github.com/scienceol/pubchem/pkg/core/compound"
	"github.com/scienceol/pubchem/pkg/middleware/logger"
)

const sdfContentType = "chemical/x-mdl-sdfile"

type Handle struct{ svc core.Service }

func NewHandle(svc core.Service) *Handle { return &Handle{svc: svc} }

func (h *Handle) CID(ctx *gin.Context) {
	req := &core.NameReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.CID(ctx, req)
	common.Reply(ctx, err, resp)
}

func (h *Handle) CAS(ctx *gin.Context) {
	req := &core.CIDReq{}
	if err := ctx.ShouldBindUri(req); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.CAS(ctx, req)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Properties(ctx *gin.Context) {
	req := &core.CIDReq{}
	if err := ctx.ShouldBindUri(req); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Properties(ctx, req)
	common.Reply(ctx, err, resp)
}

// SDF 原样返回 PubChem 的结构文本
func (h *Handle) SDF(ctx *gin.Context) {
	req := &core.CIDReq{}
	if err := ctx.ShouldBindUri(req); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	sdf, err := h.svc.SDF(ctx, req)
	if err != nil {
		logger.Errorf(ctx, "SDF cid: %d err: %+v", req.CID, err)
		common.ReplyErr(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, sdfContentType, []byte(sdf))
}

func (h *Handle) Formula(ctx *gin.Context) {
	req := &core.FormulaReq{}
	if err := ctx.ShouldBindUri(req); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Formula(ctx, req)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Record(ctx *gin.Context) {
	req := &core.RecordReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Record(ctx, req)
	common.Reply(ctx, err, resp)
}
