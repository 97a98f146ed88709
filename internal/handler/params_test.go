package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/actuallystonmai/basket-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryInt(t *testing.T) {
	q := url.Values{"limit": {"10"}, "zero": {"0"}, "bad": {"ten"}, "blank": {" "}}

	n, err := queryInt(q, "limit")
	require.NoError(t, err)
	assert.Equal(t, 10, *n)

	n, err = queryInt(q, "missing")
	require.NoError(t, err)
	assert.Nil(t, n)

	n, err = queryInt(q, "blank")
	require.NoError(t, err)
	assert.Nil(t, n)

	_, err = queryInt(q, "zero")
	assert.True(t, domain.IsClientError(err))

	_, err = queryInt(q, "bad")
	assert.EqualError(t, err, "Invalid bad parameter")
}

func TestQueryFloatAndFraction(t *testing.T) {
	q := url.Values{"lift": {"1.5"}, "neg": {"-1"}, "support": {"0.02"}, "big": {"1.5"}, "zero": {"0"}}

	f, err := queryFloat(q, "lift")
	require.NoError(t, err)
	assert.Equal(t, 1.5, *f)

	_, err = queryFloat(q, "neg")
	assert.Error(t, err)

	f, err = queryFraction(q, "support")
	require.NoError(t, err)
	assert.Equal(t, 0.02, *f)

	_, err = queryFraction(q, "big")
	assert.Error(t, err)
	_, err = queryFraction(q, "zero")
	assert.Error(t, err)

	f, err = queryFraction(q, "missing")
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestSplitItems(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitItems(" a, b,,c ,"))
	assert.Equal(t, []string{"p2", "p1"}, splitItems("p2,p1,p2, p1"))
	assert.Empty(t, splitItems(""))
	assert.Empty(t, splitItems(" , "))
}

func TestDecodeArray(t *testing.T) {
	items, ok := decodeArray[domain.ItemInput](json.RawMessage(`["p1",{"id":"p2"}]`))
	require.True(t, ok)
	assert.Len(t, items, 2)

	for _, in := range []string{``, `null`, `[]`, `"p1"`, `{"id":"p1"}`, `[1]`} {
		_, ok := decodeArray[domain.ItemInput](json.RawMessage(in))
		assert.False(t, ok, "input %q", in)
	}
}

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	in, err := decodeJSON[TrainRequest](req)
	require.NoError(t, err)
	assert.Nil(t, in.MinSupport)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"min_support":0.05,"max_length":3}`))
	in, err = decodeJSON[TrainRequest](req)
	require.NoError(t, err)
	assert.Equal(t, 0.05, *in.MinSupport)
	assert.Equal(t, 3, *in.MaxLength)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"min_support":2}`))
	_, err = decodeJSON[TrainRequest](req)
	assert.True(t, domain.IsClientError(err))
	assert.Contains(t, err.Error(), "min_support")

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"min_support":`))
	_, err = decodeJSON[TrainRequest](req)
	assert.True(t, domain.IsClientError(err))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{} {}`))
	_, err = decodeJSON[TrainRequest](req)
	assert.True(t, domain.IsClientError(err))
}
