package common

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeClient_SetsUserAgent(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer ts.Close()

	cl, err := MakeClient("recent-catalog/test", "", time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cl.Timeout)

	resp, err := cl.Get(ts.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "recent-catalog/test", got)
}

func TestMakeClient_InvalidProxy(t *testing.T) {
	_, err := MakeClient("", "://bad", time.Second)
	assert.Error(t, err)
}
