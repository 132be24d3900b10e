package couch

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"testing"
	"time"
)

func TestOptions_Defaults(t *testing.T) {
	t.Run("baseURL", func(t *testing.T) {
		o := Options{}
		assert.Equal(t, defaultBaseURL, o.baseURL())
		o = Options{BaseURL: "http://couch:8092"}
		assert.Equal(t, "http://couch:8092", o.baseURL())
	})
	t.Run("bucket", func(t *testing.T) {
		o := Options{}
		assert.Equal(t, defaultBucket, o.bucket())
		o = Options{Bucket: "beer-sample"}
		assert.Equal(t, "beer-sample", o.bucket())
	})
	t.Run("timeout", func(t *testing.T) {
		o := Options{}
		assert.Equal(t, defaultTimeout, o.timeout())
		o = Options{Timeout: time.Second}
		assert.Equal(t, time.Second, o.timeout())
	})
	t.Run("httpDo", func(t *testing.T) {
		o := Options{}
		hc, ok := o.httpDo().(*http.Client)
		require.True(t, ok)
		assert.Equal(t, defaultTimeout, hc.Timeout)
		o = Options{Timeout: time.Second}
		hc, ok = o.httpDo().(*http.Client)
		require.True(t, ok)
		assert.Equal(t, time.Second, hc.Timeout)
		d := &dummyDo{}
		o = Options{HttpDo: d}
		assert.Equal(t, HttpDo(d), o.httpDo())
	})
	t.Run("debug", func(t *testing.T) {
		o := Options{}
		assert.Equal(t, io.Discard, o.debug())
		var buf bytes.Buffer
		o = Options{Debug: &buf}
		assert.Equal(t, io.Writer(&buf), o.debug())
	})
}
