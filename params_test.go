package viewq

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRegistry(t *testing.T) {
	expect := []struct {
		param Param
		name  string
		kind  Kind
	}{
		{ParamDescending, "descending", KindBool},
		{ParamEndKey, "endkey", KindJSON},
		{ParamEndKeyDocID, "endkey_docid", KindString},
		{ParamFullSet, "full_set", KindBool},
		{ParamGroup, "group", KindBool},
		{ParamGroupLevel, "group_level", KindNumber},
		{ParamInclusiveEnd, "inclusive_end", KindBool},
		{ParamKeys, "keys", KindJSONArray},
		{ParamKey, "key", KindJSON},
		{ParamOnError, "on_error", KindOnError},
		{ParamReduce, "reduce", KindBool},
		{ParamStale, "stale", KindStale},
		{ParamSkip, "skip", KindNumber},
		{ParamLimit, "limit", KindNumber},
		{ParamStartKey, "startkey", KindJSON},
		{ParamStartKeyDocID, "startkey_docid", KindString},
		{ParamDebug, "debug", KindBool},
	}
	require.Len(t, registry, len(expect))
	for i, e := range expect {
		t.Run(e.name, func(t *testing.T) {
			assert.Equal(t, e.param, registry[i].param)
			assert.Equal(t, e.name, e.param.Name())
			assert.Equal(t, e.kind, e.param.Kind())
			assert.Equal(t, e.name, e.param.String())
			p, ok := ParamNamed(e.name)
			require.True(t, ok)
			assert.Equal(t, e.param, p)
		})
	}
}

func TestParams(t *testing.T) {
	ps := Params()
	require.Len(t, ps, 17)
	assert.Equal(t, ParamDescending, ps[0])
	assert.Equal(t, ParamDebug, ps[16])
}

func TestParamNamed_exactMatchOnly(t *testing.T) {
	testCases := []string{
		"",
		"Stale",
		"STALE",
		"stal",
		"stale ",
		"stalex",
		"descending\x00",
		"bogus",
	}
	for _, name := range testCases {
		t.Run("\""+name+"\"", func(t *testing.T) {
			_, ok := ParamNamed(name)
			assert.False(t, ok)
		})
	}
}

func TestParam_unrecognized(t *testing.T) {
	assert.Equal(t, "", ParamPassthrough.Name())
	assert.Equal(t, KindUnknown, ParamPassthrough.Kind())
	assert.Equal(t, "Param(0)", ParamPassthrough.String())
	assert.Equal(t, "Param(99)", Param(99).String())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "json", KindJSON.String())
	assert.Equal(t, "json-array", KindJSONArray.String())
	assert.Equal(t, "stale", KindStale.String())
	assert.Equal(t, "on-error", KindOnError.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
