package currency

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMarshalJSON(t *testing.T) {
	currencies := List{
		{Acronym: "AUD", FullName: "Australian Dollar"},
		{Acronym: "AED", FullName: "United Arab Emirates Dirham"},
	}

	b, err := json.Marshal(currencies)
	require.NoError(t, err)
	assert.JSONEq(t, `{"AED": "United Arab Emirates Dirham", "AUD": "Australian Dollar"}`, string(b))

	s := string(b)
	assert.Less(t, strings.Index(s, `"AED"`), strings.Index(s, `"AUD"`), "keys should be sorted")

	b, err = json.Marshal(List(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))
}

func TestListMarshalJSONMatchesDefaultEncode(t *testing.T) {
	currencies := List{
		{Acronym: "AWG", FullName: "Aruban Florin"},
		{Acronym: "AED", FullName: "United Arab Emirates Dirham"},
	}

	b, err := currencies.MarshalJSON()
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, defaultDecoder.Encode(&buf, currencies))
	assert.Equal(t, string(b), strings.TrimSpace(buf.String()))
}

func TestListUnmarshalJSON(t *testing.T) {
	var response struct {
		Base       string `json:"base"`
		Currencies List   `json:"currencies"`
	}

	err := json.Unmarshal([]byte(`{"base": "AED", "currencies": {"AUD": "Australian Dollar", "AED": "United Arab Emirates Dirham"}}`), &response)
	require.NoError(t, err)
	assert.Equal(t, "AED", response.Base)
	assert.Equal(t, List{
		{Acronym: "AED", FullName: "United Arab Emirates Dirham"},
		{Acronym: "AUD", FullName: "Australian Dollar"},
	}, response.Currencies)
}

func TestListUnmarshalJSONMalformed(t *testing.T) {
	var response struct {
		Currencies List `json:"currencies"`
	}

	err := json.Unmarshal([]byte(`{"currencies": {"AED": 5}}`), &response)

	var merr *MalformedInputError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "AED", merr.Key)
	assert.Equal(t, "number", merr.Kind)

	err = json.Unmarshal([]byte(`{"currencies": ["AED"]}`), &response)
	assert.True(t, IsMalformedInput(err))
}

func TestListUnmarshalJSONNull(t *testing.T) {
	currencies := List{{Acronym: "AED", FullName: "United Arab Emirates Dirham"}}

	err := json.Unmarshal([]byte(`null`), &currencies)
	require.NoError(t, err)
	assert.Len(t, currencies, 1, "null should leave the list untouched")
}

func TestListUnmarshalJSONDirect(t *testing.T) {
	var currencies List
	err := json.Unmarshal([]byte(sampleDocument), &currencies)
	require.NoError(t, err)
	assert.Equal(t, sampleCurrencies, currencies.Map())
}
