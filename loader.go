package valuation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// SourcePaths holds the JSONPath expression locating each source collection
// in a payload. An empty path skips that collection.
type SourcePaths struct {
	PriceHistory  string `yaml:"price_history"`
	FundingRounds string `yaml:"funding_rounds"`
	Orders        string `yaml:"orders"`
	Allocations   string `yaml:"allocations"`
	Portfolio     string `yaml:"portfolio"`
}

// DefaultSourcePaths locates the collections at the root of the payload,
// under their JSON names.
func DefaultSourcePaths() SourcePaths {
	return SourcePaths{
		PriceHistory:  "$.priceHistory",
		FundingRounds: "$.fundingRounds",
		Orders:        "$.orders",
		Allocations:   "$.allocations",
		Portfolio:     "$.portfolio",
	}
}

// LoadSources decodes a JSON payload and extracts every collection from it.
//
// A collection missing from the payload, or null, is empty; it is not an
// error. Numbers are kept exact.
func LoadSources(r io.Reader, paths SourcePaths) (Sources, error) {
	var s Sources
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return s, fmt.Errorf("cannot decode sources: %w", err)
	}

	for _, c := range []struct {
		path string
		out  any
	}{
		{paths.PriceHistory, &s.PriceHistory},
		{paths.FundingRounds, &s.FundingRounds},
		{paths.Orders, &s.Orders},
		{paths.Allocations, &s.Allocations},
		{paths.Portfolio, &s.Portfolio},
	} {
		if err := extract(doc, c.path, c.out); err != nil {
			return s, err
		}
	}
	return s, nil
}

// LoadSourcesFile is LoadSources on the content of file name.
func LoadSourcesFile(name string, paths SourcePaths) (Sources, error) {
	f, err := os.Open(name)
	if err != nil {
		return Sources{}, fmt.Errorf("cannot open sources: %w", err)
	}
	defer f.Close()
	s, err := LoadSources(f, paths)
	if err != nil {
		return s, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// extract evaluates path on doc and decodes the result into out.
func extract(doc any, path string, out any) error {
	if path == "" {
		return nil
	}
	if absent(doc, path) {
		return nil
	}
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", path, err)
	}
	if jval == nil {
		return nil
	}
	raw, err := json.Marshal(jval)
	if err != nil {
		return fmt.Errorf("error reading %q: %w", path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("error decoding %q: %w", path, err)
	}
	return nil
}

// absent reports whether a plain member path like "$.data.orders" leads to a
// missing key or crosses a null value in doc.
//
// Paths using any other JSONPath syntax are never absent: jsonpath decides.
func absent(doc any, path string) bool {
	rest, ok := strings.CutPrefix(path, "$.")
	if !ok || rest == "" || strings.ContainsAny(rest, "[]*()?@$' \"") {
		return false
	}
	cur := doc
	for _, key := range strings.Split(rest, ".") {
		if cur == nil {
			return true
		}
		m, ok := cur.(map[string]any)
		if !ok {
			return false
		}
		if cur, ok = m[key]; !ok {
			return true
		}
	}
	return false
}
