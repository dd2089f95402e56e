package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scienceol/pubchem/pkg/common/code"
)

type Error struct {
	Msg string `json:"msg"`
}

type Resp struct {
	Code  code.ErrCode `json:"code"`
	Data  any          `json:"data,omitempty"`
	Error *Error       `json:"error,omitempty"`
}

type RespT[T any] struct {
	Code  code.ErrCode `json:"code"`
	Data  T            `json:"data,omitempty"`
	Error *Error       `json:"error,omitempty"`
}

// Reply err 为空时返回 data，否则按错误码返回
func Reply(ctx *gin.Context, err error, data ...any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}
	ReplyOk(ctx, data...)
}

func ReplyOk(ctx *gin.Context, data ...any) {
	resp := &Resp{Code: code.Success}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	ctx.JSON(http.StatusOK, resp)
}

func ReplyErr(ctx *gin.Context, err error, msgs ...string) {
	c := code.From(err)
	msg := err.Error()
	if len(msgs) > 0 {
		msg = msgs[0]
	}

	ctx.JSON(httpStatus(err), &Resp{
		Code:  c,
		Error: &Error{Msg: msg},
	})
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, code.ParamErr):
		return http.StatusBadRequest
	case errors.Is(err, code.TransportErr):
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}
