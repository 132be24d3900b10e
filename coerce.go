package viewq

import (
	"strconv"
	"strings"
)

// rawValue is a normalized assignment value - either a string or a number
// (bools arrive as 1/0)
type rawValue struct {
	str     string
	num     int
	numeric bool
}

func normalizeValue(value any) (raw rawValue, err error) {
	switch vt := value.(type) {
	case string:
		raw.str = vt
	case int:
		raw.num, raw.numeric = vt, true
	case int32:
		raw.num, raw.numeric = int(vt), true
	case int64:
		raw.num, raw.numeric = int(vt), true
	case bool:
		raw.numeric = true
		if vt {
			raw.num = 1
		}
	default:
		err = ErrValueType
	}
	return raw, err
}

// coerce validates raw against the kind tag and returns the canonical value
// to store
func coerce(kind Kind, raw rawValue, flags Flag) (string, error) {
	switch kind {
	case KindBool:
		return coerceBool(raw)
	case KindNumber:
		return coerceNumber(raw)
	case KindString, KindJSON, KindJSONArray:
		return coerceString(raw, flags)
	case KindStale:
		return coerceStale(raw)
	case KindOnError:
		return coerceOnError(raw)
	}
	return "", ErrUnknownOption
}

func coerceBool(raw rawValue) (string, error) {
	if raw.numeric {
		if raw.num != 0 {
			return "true", nil
		}
		return "false", nil
	}
	switch {
	case strings.EqualFold(raw.str, "true"):
		return "true", nil
	case strings.EqualFold(raw.str, "false"):
		return "false", nil
	}
	return "", ErrBoolValue
}

func coerceNumber(raw rawValue) (string, error) {
	if raw.numeric {
		return strconv.Itoa(raw.num), nil
	}
	if raw.str == "" {
		return "", ErrNumberEmpty
	}
	digits := raw.str
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return "", ErrNumberMalformed
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", ErrNumberMalformed
		}
	}
	return raw.str, nil
}

func coerceString(raw rawValue, flags Flag) (string, error) {
	if raw.numeric {
		return "", ErrStringValue
	}
	if flags&PctEncode != 0 {
		return PctEncoded(raw.str), nil
	}
	return raw.str, nil
}

// coerceStale folds booleans onto the server literals - true means "ok",
// false stays "false"
func coerceStale(raw rawValue) (string, error) {
	if v, err := coerceBool(raw); err == nil {
		if v == "true" {
			return "ok", nil
		}
		return "false", nil
	}
	switch {
	case strings.EqualFold(raw.str, "ok"):
		return "ok", nil
	case strings.EqualFold(raw.str, "update_after"):
		return "update_after", nil
	}
	return "", ErrStaleValue
}

func coerceOnError(raw rawValue) (string, error) {
	if !raw.numeric {
		switch {
		case strings.EqualFold(raw.str, "stop"):
			return "stop", nil
		case strings.EqualFold(raw.str, "continue"):
			return "continue", nil
		}
	}
	return "", ErrOnErrorValue
}
