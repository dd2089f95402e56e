package code

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithMsgKeepsCode(t *testing.T) {
	err := ShapeErr.WithMsgf("missing %s", "IdentifierList")

	assert.True(t, errors.Is(err, ShapeErr))
	assert.False(t, errors.Is(err, ParseErr))
	assert.Equal(t, ShapeErr, From(err))
	assert.Equal(t, "pubchem response is missing an expected field: missing IdentifierList", err.Error())
}

func TestWithErrUnwraps(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("get cid: %w", TransportErr.WithErr(cause))

	assert.True(t, errors.Is(err, TransportErr))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, TransportErr, From(err))
}

func TestWithErrNil(t *testing.T) {
	assert.Equal(t, error(ParseErr), ParseErr.WithErr(nil))
}

func TestFrom(t *testing.T) {
	assert.Equal(t, Success, From(nil))
	assert.Equal(t, ParamErr, From(ParamErr))
	assert.Equal(t, UnDefineErr, From(errors.New("boom")))
}
