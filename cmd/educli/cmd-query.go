package main

import (
	"fmt"
	"strings"

	"github.com/edu-platform/educlient/shared/query"
)

type queryCmd struct {
	Build queryBuildCmd `cmd:"" help:"print the query string the client would send"`
}

type queryBuildCmd struct {
	Params    []string `arg:"" optional:"" help:"key=value pairs, a value with the delimiter becomes a list"`
	Delimiter string   `help:"list delimiter" default:","`
	Sorted    bool     `help:"sort parameters by name instead of keeping argument order"`
}

func (b *queryBuildCmd) Run(g *globalOptions) error {
	opts := make(query.Options, 0, len(b.Params))
	loose := make(map[string]any, len(b.Params))
	for _, kv := range b.Params {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("expected key=value, got %q", kv)
		}
		var v any = value
		if strings.Contains(value, b.Delimiter) {
			v = strings.Split(value, b.Delimiter)
		}
		opts = append(opts, query.Option{Name: name, Value: v, Delimiter: b.Delimiter})
		loose[name] = v
	}
	if b.Sorted {
		opts = query.FromMap(loose)
		for i := range opts {
			opts[i].Delimiter = b.Delimiter
		}
	}

	qs := query.BuildQueryString(opts)
	if g.JSON {
		return g.printJSON(map[string]string{"query": qs})
	}
	fmt.Fprintln(g.out, qs)
	return nil
}
