package couch

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-andiamo/gopt"
	"github.com/go-andiamo/urit"
	"github.com/go-andiamo/viewq"
	"net/http"
	"time"
)

var viewTemplate = func() urit.Template {
	t, err := urit.NewTemplate("/{bucket}/_design/{design}/_view/{view}")
	if err != nil {
		panic(err)
	}
	return t
}()

// Client queries design document views over the couch view API
type Client struct {
	options Options
}

func NewClient(options Options) *Client {
	return &Client{
		options: options,
	}
}

// ViewURL returns the full request url for a view - base url, bucket path and
// the serialized options
func (c *Client) ViewURL(design, view string, opts viewq.Options) (string, error) {
	path, err := viewTemplate.PathFrom(pathParams{c.options.bucket(), design, view})
	if err != nil {
		return "", err
	}
	return c.options.baseURL() + path + opts.Encode(), nil
}

// View executes a view request and returns the decoded result
//
// opts must already be assigned (see viewq.FromPairs or viewq.New) - no
// further validation happens here. A non-200 response is returned as a
// *ServerError
func (c *Client) View(ctx context.Context, design, view string, opts viewq.Options) (*ViewResult, error) {
	url, err := c.ViewURL(design, view, opts)
	if err != nil {
		return nil, err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.options.Auth != nil {
		var hv string
		if hv, err = c.options.Auth.AuthHeader(); err != nil {
			return nil, err
		}
		request.Header.Set("Authorization", hv)
	}
	_, _ = fmt.Fprintf(c.options.debug(), ">>> GET %s\n", url)
	start := time.Now()
	res, err := c.options.httpDo().Do(request)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	_, _ = fmt.Fprintf(c.options.debug(), "<<< %s (%s)\n", res.Status, time.Since(start))
	if res.StatusCode != http.StatusOK {
		se := &ServerError{Status: res.StatusCode}
		_ = json.NewDecoder(res.Body).Decode(se)
		return nil, se
	}
	result := &ViewResult{}
	if err = json.NewDecoder(res.Body).Decode(result); err != nil {
		return nil, err
	}
	return result, nil
}

// ViewResult is the decoded body of a successful view request
//
// TotalRows and Offset are optional - reduced views omit them
type ViewResult struct {
	TotalRows gopt.Optional[int64] `json:"total_rows"`
	Offset    gopt.Optional[int64] `json:"offset"`
	Rows      []ViewRow            `json:"rows"`
	// Errors lists per-node failures (populated when querying with
	// on_error=continue)
	Errors []ViewError `json:"errors,omitempty"`
}

// ViewRow is a single row of a view result - Key, Value and Doc are raw JSON
// for the caller to decode
type ViewRow struct {
	ID    string          `json:"id,omitempty"`
	Key   json.RawMessage `json:"key,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
	Doc   json.RawMessage `json:"doc,omitempty"`
}

// ViewError is a per-node failure reported inside an otherwise successful
// result
type ViewError struct {
	From   string `json:"from"`
	Reason string `json:"reason"`
}

// ServerError is the error returned when the view server answers with a
// non-200 status
type ServerError struct {
	Status    int    `json:"-"`
	ErrorName string `json:"error"`
	Reason    string `json:"reason"`
}

var _ error = (*ServerError)(nil)

func (e *ServerError) Error() string {
	if e.ErrorName == "" {
		return fmt.Sprintf("view server: status %d", e.Status)
	}
	return fmt.Sprintf("view server: %d %s: %s", e.Status, e.ErrorName, e.Reason)
}
