package flexjson

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDecimal_ToleratesStringAndNumber(t *testing.T) {
	var payload struct {
		A Decimal `json:"a"`
		B Decimal `json:"b"`
		C Decimal `json:"c"`
		D Decimal `json:"d"`
		E Decimal `json:"e"`
	}
	raw := `{"a": 12.5, "b": "7.25", "c": "", "d": null, "e": "not-a-number"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	require.True(t, payload.A.Valid)
	require.True(t, payload.A.Equal(decimal.NewFromFloat(12.5)))
	require.True(t, payload.B.Valid)
	require.True(t, payload.B.Equal(decimal.RequireFromString("7.25")))
	require.False(t, payload.C.Valid)
	require.True(t, payload.C.IsZero())
	require.False(t, payload.D.Valid)
	require.False(t, payload.E.Valid)
}

func TestDecimal_ObjectInputDefaultsToZero(t *testing.T) {
	var d Decimal
	require.NoError(t, json.Unmarshal([]byte(`{"nested": 1}`), &d))
	require.False(t, d.Valid)
	require.True(t, d.IsZero())
}

func TestInt_Variants(t *testing.T) {
	var payload struct {
		A Int `json:"a"`
		B Int `json:"b"`
		C Int `json:"c"`
		D Int `json:"d"`
	}
	raw := `{"a": 3, "b": "41", "c": "", "d": 2.9}`
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	require.Equal(t, int64(3), payload.A.Int64)
	require.Equal(t, int64(41), payload.B.Int64)
	require.False(t, payload.C.Valid)
	require.Equal(t, int64(2), payload.D.Int64)
	require.True(t, payload.D.Valid)
}

func TestString_KeepsNumericText(t *testing.T) {
	var payload struct {
		A String `json:"a"`
		B String `json:"b"`
		C String `json:"c"`
	}
	raw := `{"a": "hello", "b": 42, "c": null}`
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	require.Equal(t, "hello", payload.A.Str())
	require.Equal(t, "42", payload.B.Str())
	require.Equal(t, "", payload.C.Str())
}

func TestFlag_Variants(t *testing.T) {
	cases := []struct {
		raw     string
		ok      bool
		present bool
	}{
		{`"1"`, true, true},
		{`"0"`, false, true},
		{`"Success"`, true, true},
		{`"Failed"`, false, true},
		{`"Failure"`, false, true},
		{`1`, true, true},
		{`-1`, false, true},
		{`0`, false, true},
		{`true`, true, true},
		{`false`, false, true},
		{`null`, false, false},
		{`""`, false, true},
	}
	for _, tc := range cases {
		var f Flag
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &f), tc.raw)
		require.Equal(t, tc.ok, f.OK(), tc.raw)
		require.Equal(t, tc.present, f.Present(), tc.raw)
	}
}
