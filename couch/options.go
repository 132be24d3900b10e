package couch

import (
	"io"
	"net/http"
	"time"
)

// HttpDo is the interface used to make http calls - satisfied by *http.Client
type HttpDo interface {
	Do(req *http.Request) (*http.Response, error)
}

type Options struct {
	BaseURL string        // defaults to "http://localhost:8092"
	Bucket  string        // defaults to "default"
	Timeout time.Duration // request timeout for the default http client, defaults to 30s
	// HttpDo overrides how http calls are made (Timeout is then the caller's
	// concern)
	HttpDo HttpDo
	// Auth, when set, supplies the Authorization header for each request
	Auth Auth
	// Debug, when set, receives a line per request and response
	Debug io.Writer
}

const (
	defaultBaseURL = "http://localhost:8092"
	defaultBucket  = "default"
	defaultTimeout = 30 * time.Second
)

func (o Options) baseURL() string {
	if o.BaseURL != "" {
		return o.BaseURL
	}
	return defaultBaseURL
}

func (o Options) bucket() string {
	if o.Bucket != "" {
		return o.Bucket
	}
	return defaultBucket
}

func (o Options) timeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}
	return defaultTimeout
}

func (o Options) httpDo() HttpDo {
	if o.HttpDo != nil {
		return o.HttpDo
	}
	return &http.Client{
		Timeout: o.timeout(),
	}
}

func (o Options) debug() io.Writer {
	if o.Debug != nil {
		return o.Debug
	}
	return io.Discard
}
