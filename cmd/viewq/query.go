package main

import (
	"fmt"
	"github.com/go-andiamo/viewq"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
)

// querySpec is a complete view query - design document, view name and the
// options to apply, collected from a yaml file, flags and name=value args
type querySpec struct {
	Design string       `yaml:"design"`
	View   string       `yaml:"view"`
	Params []queryParam `yaml:"params"`
}

type queryParam struct {
	Name string `yaml:"name"`
	// Value may be a yaml string, integer or boolean
	Value any `yaml:"value"`
	// Encode percent-encodes the value (string options only)
	Encode bool `yaml:"encode"`
	// Raw skips option name validation
	Raw bool `yaml:"raw"`
}

// loadQuery assembles a querySpec - the yaml file (when given) first, then
// design/view flags override, then name=value args append to the params
func loadQuery(file string, design string, view string, args []string) (*querySpec, error) {
	q := &querySpec{}
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = f.Close()
		}()
		if err = yaml.NewDecoder(f).Decode(q); err != nil {
			return nil, fmt.Errorf("unable to read query file: %w", err)
		}
	}
	if design != "" {
		q.Design = design
	}
	if view != "" {
		q.View = view
	}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("argument %q is not name=value", arg)
		}
		q.Params = append(q.Params, queryParam{Name: name, Value: value})
	}
	if q.Design == "" {
		return nil, fmt.Errorf("no design document name (use --design or a query file)")
	}
	if q.View == "" {
		return nil, fmt.Errorf("no view name (use --view or a query file)")
	}
	return q, nil
}

func (q *querySpec) options() (viewq.Options, error) {
	opts := make(viewq.Options, 0, len(q.Params))
	for _, p := range q.Params {
		var flags []viewq.Flag
		if p.Encode {
			flags = append(flags, viewq.PctEncode)
		}
		if p.Raw {
			flags = append(flags, viewq.Passthrough)
		}
		o, err := viewq.New(p.Name, p.Value, flags...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, nil
}
