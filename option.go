package viewq

// Flag alters how Assign interprets its name and value
type Flag uint

const (
	// PctEncode percent-encodes the value of a string-kinded option before it
	// is stored
	PctEncode Flag = 1 << iota
	// Passthrough accepts the name without consulting the registry - the name
	// must be a literal string, and the value is checked only for type (ints
	// as numbers, strings verbatim)
	Passthrough
)

func foldFlags(flags []Flag) Flag {
	var f Flag
	for _, a := range flags {
		f |= a
	}
	return f
}

// Option is a single validated view option - a name/value pair ready to be
// serialized into a query string
//
// The zero Option is empty; populate it with Assign (or use New) and it then
// holds the canonical name and value until Reset
type Option struct {
	name  string
	value string
}

// New creates an Option and assigns the given name and value to it
func New(name, value any, flags ...Flag) (*Option, error) {
	o := &Option{}
	if err := o.Assign(name, value, flags...); err != nil {
		return nil, err
	}
	return o, nil
}

// Name returns the assigned option name (the canonical registry name when the
// option was assigned by Param), or an empty string for an empty option
func (o *Option) Name() string {
	return o.name
}

// Value returns the canonical assigned value
func (o *Option) Value() string {
	return o.value
}

// String returns the option as it appears in a query string
func (o *Option) String() string {
	if o.name == "" {
		return ""
	}
	return o.name + "=" + o.value
}

// Reset returns the option to its empty state so that it can be reassigned -
// resetting an already empty option is a no-op
func (o *Option) Reset() {
	o.name = ""
	o.value = ""
}

// Assign validates the name/value pair and populates the option
//
// name may be a string or a recognized Param. value may be a string, an int
// (int32 and int64 are accepted too) or a bool; non-string values are folded
// to numbers before coercion, with true as 1 and false as 0.
//
// On failure the option is left empty and the returned error is an
// *OptionError wrapping one of the categorical Err values
func (o *Option) Assign(name, value any, flags ...Flag) error {
	o.Reset()
	f := foldFlags(flags)
	nameStr, param, byParam, err := normalizeName(name)
	if err != nil {
		return newOptionError("", err)
	}
	errName := nameStr
	if byParam {
		errName = param.String()
	}
	raw, err := normalizeValue(value)
	if err != nil {
		return newOptionError(errName, err)
	}
	if !raw.numeric && raw.str == "" {
		return newOptionError(errName, ErrValueEmpty)
	}
	if !byParam && nameStr == "" {
		return newOptionError("", ErrNameEmpty)
	}
	if f&Passthrough != 0 {
		if byParam {
			return newOptionError(errName, ErrPassthroughParam)
		}
		kind := KindString
		if raw.numeric {
			kind = KindNumber
		}
		v, cerr := coerce(kind, raw, f)
		if cerr != nil {
			return newOptionError(nameStr, cerr)
		}
		o.name, o.value = nameStr, v
		return nil
	}
	var entry paramEntry
	var ok bool
	if byParam {
		entry, ok = registryByParam[param]
	} else {
		entry, ok = registryByName[nameStr]
	}
	if !ok {
		return newOptionError(errName, ErrUnknownOption)
	}
	v, err := coerce(entry.kind, raw, f)
	if err != nil {
		return newOptionError(entry.name, err)
	}
	o.name, o.value = entry.name, v
	return nil
}

func normalizeName(name any) (str string, param Param, byParam bool, err error) {
	switch nt := name.(type) {
	case string:
		str = nt
	case Param:
		param, byParam = nt, true
	default:
		err = ErrNameType
	}
	return str, param, byParam, err
}
