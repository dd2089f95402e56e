package pubchem

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scienceol/pubchem/pkg/common/code"
)

func TestTransportReturnsStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		if r.URL.Path == "/rest/pug/compound/name/aspirin/cids/JSON" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(cidBody))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(faultBody))
	}))
	defer srv.Close()

	tr := NewTransport(5 * time.Second)
	u := NewURLBuilder(srv.URL)

	res, err := tr.Get(context.Background(), u.CID("aspirin"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, cidBody, string(res.Body))

	res, err = tr.Get(context.Background(), u.CID("nothing"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, faultBody, string(res.Body))
}

func TestTransportDoesNotRetry(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	res, err := NewTransport(5*time.Second).Get(context.Background(), srv.URL+"/rest/pug/compound/cid/1/SDF")
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	assert.Equal(t, int32(1), hits.Load())
}

func TestTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	closedURL := srv.URL
	srv.Close()

	tr := NewTransport(time.Second)
	for _, url := range []string{closedURL + "/rest/pug", "http://%zz/bad"} {
		res, err := tr.Get(context.Background(), url)
		assert.Nil(t, res)
		assert.True(t, errors.Is(err, code.TransportErr), "url %s: %v", url, err)
	}
}

func TestTransportTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := NewTransport(50*time.Millisecond).Get(context.Background(), srv.URL)
	assert.True(t, errors.Is(err, code.TransportErr))
}

func TestRepoOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/pug/compound/cid/2244/property/InChIKey,CanonicalSMILES/JSON":
			_, _ = w.Write([]byte(propsBody))
		case "/rest/pug_view/data/compound/2244/JSON":
			assert.Equal(t, "CAS", r.URL.Query().Get("heading"))
			_, _ = w.Write([]byte(casBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	r := NewPubChemRepo(WithAddr(srv.URL), WithTransport(NewTransport(5*time.Second)), WithLimiter(Nop{}))

	props, err := r.GetProperties(context.Background(), 2244)
	require.NoError(t, err)
	assert.Equal(t, "BSYNRYMUTXBXSQ-UHFFFAOYSA-N", props.InChIKey)

	cas, err := r.GetCAS(context.Background(), 2244)
	require.NoError(t, err)
	assert.Equal(t, "50-78-2", cas)
}
