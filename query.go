package viewq

// Options is an ordered set of assigned view options
//
// Order is preserved through serialization, and duplicate names are emitted
// as repeated query parameters
type Options []*Option

// EncodedLen returns the exact length, in bytes, of the query string that
// Encode produces - zero for an empty set
func (opts Options) EncodedLen() int {
	if len(opts) == 0 {
		return 0
	}
	n := 0
	for _, o := range opts {
		// '?' or '&' separator plus '='
		n += len(o.name) + len(o.value) + 2
	}
	return n
}

// AppendQuery appends the serialized query string to dst and returns the
// extended slice - an empty set appends nothing, so callers never see a
// dangling "?"
func (opts Options) AppendQuery(dst []byte) []byte {
	for i, o := range opts {
		if i == 0 {
			dst = append(dst, '?')
		} else {
			dst = append(dst, '&')
		}
		dst = append(dst, o.name...)
		dst = append(dst, '=')
		dst = append(dst, o.value...)
	}
	return dst
}

// Encode returns the options serialized as a query string, e.g.
// "?stale=false&limit=20", or an empty string when the set is empty
func (opts Options) Encode() string {
	n := opts.EncodedLen()
	if n == 0 {
		return ""
	}
	return string(opts.AppendQuery(make([]byte, 0, n)))
}

// Reset resets every option in the set so that each can be reassigned
func (opts Options) Reset() {
	for _, o := range opts {
		o.Reset()
	}
}

// ViewURI composes the request URI for a design document view - the
// two-segment view path followed by the serialized options
//
// example:
//
//	viewq.ViewURI("beer", "by_location", opts) // "_design/beer/_view/by_location?..."
func ViewURI(design, view string, opts Options) string {
	buf := make([]byte, 0, len("_design//_view/")+len(design)+len(view)+opts.EncodedLen())
	buf = append(buf, "_design/"...)
	buf = append(buf, design...)
	buf = append(buf, "/_view/"...)
	buf = append(buf, view...)
	return string(opts.AppendQuery(buf))
}
