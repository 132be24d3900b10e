package viewq

import "strconv"

// Kind denotes the coercion a view option applies to its assigned value
type Kind int

const (
	KindUnknown Kind = iota
	KindBool         // accepts bools, ints and the strings "true"/"false" (any case)
	KindNumber       // accepts ints and strings of optionally signed digits
	KindString       // accepts any non-empty string, verbatim
	KindJSON         // a JSON-encoded value, treated as a string
	KindJSONArray    // a JSON-encoded array, treated as a string
	KindStale        // accepts bools plus the literals "ok" and "update_after"
	KindOnError      // accepts the literals "stop" and "continue"
)

var kindStrings = map[Kind]string{
	KindUnknown:   "unknown",
	KindBool:      "bool",
	KindNumber:    "number",
	KindString:    "string",
	KindJSON:      "json",
	KindJSONArray: "json-array",
	KindStale:     "stale",
	KindOnError:   "on-error",
}

func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Param identifies a recognized view query option
type Param int

const (
	// ParamPassthrough is reserved - it never matches a registered option and
	// exists only so that zero is not a valid Param
	ParamPassthrough Param = iota
	ParamDescending
	ParamEndKey
	ParamEndKeyDocID
	ParamFullSet
	ParamGroup
	ParamGroupLevel
	ParamInclusiveEnd
	ParamKeys
	ParamKey
	ParamOnError
	ParamReduce
	ParamStale
	ParamSkip
	ParamLimit
	ParamStartKey
	ParamStartKeyDocID
	ParamDebug
)

type paramEntry struct {
	param Param
	name  string
	kind  Kind
}

// registry of every recognized option, in canonical order
var registry = []paramEntry{
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

var registryByName = func() map[string]paramEntry {
	m := make(map[string]paramEntry, len(registry))
	for _, e := range registry {
		m[e.name] = e
	}
	return m
}()

var registryByParam = func() map[Param]paramEntry {
	m := make(map[Param]paramEntry, len(registry))
	for _, e := range registry {
		m[e.param] = e
	}
	return m
}()

// Name returns the canonical option name, or an empty string for an
// unrecognized Param
func (p Param) Name() string {
	return registryByParam[p].name
}

// Kind returns the kind of value the option accepts, or KindUnknown for an
// unrecognized Param
func (p Param) Kind() Kind {
	return registryByParam[p].kind
}

func (p Param) String() string {
	if e, ok := registryByParam[p]; ok {
		return e.name
	}
	return "Param(" + strconv.Itoa(int(p)) + ")"
}

// ParamNamed returns the Param registered under the given option name - the
// match is exact and case-sensitive
func ParamNamed(name string) (Param, bool) {
	e, ok := registryByName[name]
	return e.param, ok
}

// Params returns every recognized Param, in canonical order
func Params() []Param {
	ps := make([]Param, len(registry))
	for i, e := range registry {
		ps[i] = e.param
	}
	return ps
}
