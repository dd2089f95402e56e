package code

import (
	"errors"
	"fmt"
)

type ErrCode int

const (
	Success ErrCode = 0
)

const (
	UnDefineErr ErrCode = iota + 1000
	ParamErr
)

// 上游 PubChem 调用相关
const (
	TransportErr ErrCode = iota + 2000
	ParseErr
	ShapeErr
)

var codeMsg = map[ErrCode]string{
	Success:      "success",
	UnDefineErr:  "undefined error",
	ParamErr:     "parameter error",
	TransportErr: "pubchem request could not be completed",
	ParseErr:     "pubchem response is not valid json",
	ShapeErr:     "pubchem response is missing an expected field",
}

func (c ErrCode) String() string {
	if msg, ok := codeMsg[c]; ok {
		return msg
	}
	return fmt.Sprintf("error code %d", int(c))
}

func (c ErrCode) Error() string {
	return c.String()
}

func (c ErrCode) Int() int {
	return int(c)
}

func (c ErrCode) WithMsg(msg string) error {
	return &Error{Code: c, Msg: msg}
}

func (c ErrCode) WithMsgf(format string, args ...any) error {
	return &Error{Code: c, Msg: fmt.Sprintf(format, args...)}
}

func (c ErrCode) WithErr(err error) error {
	if err == nil {
		return c
	}
	return &Error{Code: c, Msg: err.Error(), Err: err}
}

// Error 携带错误码和上下文信息，errors.Is 可以与 ErrCode 直接比较
type Error struct {
	Code ErrCode
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code.String(), e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	c, ok := target.(ErrCode)
	return ok && c == e.Code
}

// From 提取 err 链上的错误码，没有则返回 UnDefineErr
func From(err error) ErrCode {
	if err == nil {
		return Success
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	var c ErrCode
	if errors.As(err, &c) {
		return c
	}

	return UnDefineErr
}
