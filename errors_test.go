package viewq

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestOptionError(t *testing.T) {
	t.Run("with option name", func(t *testing.T) {
		err := newOptionError("stale", ErrStaleValue)
		var oe *OptionError
		require.True(t, errors.As(err, &oe))
		assert.Equal(t, "stale", oe.Option)
		assert.Equal(t, ErrStaleValue, oe.Err)
		assert.Equal(t, `view option "stale": value must be a boolean, "ok" or "update_after"`, err.Error())
		assert.True(t, errors.Is(err, ErrStaleValue))
	})
	t.Run("without option name", func(t *testing.T) {
		err := newOptionError("", ErrNameEmpty)
		assert.Equal(t, "view option: option name is empty", err.Error())
		assert.True(t, errors.Is(err, ErrNameEmpty))
	})
}

func TestErrorCategories(t *testing.T) {
	o := &Option{}
	testCases := []struct {
		name      any
		value     any
		flags     []Flag
		expectErr error
	}{
		{"", "x", nil, ErrNameEmpty},
		{1, "x", nil, ErrNameType},
		{"stale", "", nil, ErrValueEmpty},
		{"stale", 1.5, nil, ErrValueType},
		{"bogus", "x", nil, ErrUnknownOption},
		{ParamStale, "x", []Flag{Passthrough}, ErrPassthroughParam},
		{"descending", "x", nil, ErrBoolValue},
		{"limit", "x", nil, ErrNumberMalformed},
		{"endkey_docid", 1, nil, ErrStringValue},
		{"stale", "x", nil, ErrStaleValue},
		{"on_error", "x", nil, ErrOnErrorValue},
	}
	for _, tc := range testCases {
		t.Run(tc.expectErr.Error(), func(t *testing.T) {
			err := o.Assign(tc.name, tc.value, tc.flags...)
			require.ErrorIs(t, err, tc.expectErr)
			var oe *OptionError
			require.ErrorAs(t, err, &oe)
		})
	}
}
