package viewq

// FromPairs builds an ordered option set from alternating name/value pairs
//
// example:
//
//	opts, err := viewq.FromPairs(
//	    "stale", "false",
//	    "limit", "20",
//	)
//
// Every pair is validated with default flags (no pass-through, no percent
// encoding). The first failing pair aborts the build and its error is
// returned with a nil set
func FromPairs(pairs ...string) (Options, error) {
	if len(pairs) == 0 {
		return nil, newOptionError("", ErrNoPairs)
	}
	if len(pairs)%2 != 0 {
		return nil, newOptionError(pairs[len(pairs)-1], ErrOddPairs)
	}
	opts := make(Options, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		o, err := New(pairs[i], pairs[i+1])
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, nil
}
