package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/tidbytes/tidbytes/region"
)

// Case is a single <TestCase> entry: an operation name, its positional
// inputs, its expected positional outputs, and a free-form tag used to
// group results (e.g. by the boundary case it targets).
type Case struct {
	Op  string  `json:"op"`
	In  []Value `json:"in"`
	Out []Value `json:"out"`
	Tag string  `json:"tag"`
}

// Suite is the top-level {"version": ..., "tests": [...]} document.
type Suite struct {
	Version string `json:"version"`
	Tests   []Case `json:"tests"`
}

// Load parses a conformance suite document.
func Load(r io.Reader) (*Suite, error) {
	var s Suite
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("suite: decode: %w", err)
	}
	return &s, nil
}

// Build reconstructs a case's in/out Values as plain Go values ready for
// Dispatch and comparison.
func (c Case) Build() (in []any, out []any) {
	in = make([]any, len(c.In))
	for i, v := range c.In {
		in[i] = v.raw()
	}
	out = make([]any, len(c.Out))
	for i, v := range c.Out {
		out[i] = v.raw()
	}
	return in, out
}

// Result is the outcome of running a single Case.
type Result struct {
	Tag     string
	Op      string
	Passed  bool
	Err     error
	Wanted  []any
	Got     []any
}

// Report summarizes a Run over an entire Suite.
type Report struct {
	Results []Result
}

// Passed counts results that matched expectations.
func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// Failed counts results that did not match expectations or errored.
func (r Report) Failed() int {
	return len(r.Results) - r.Passed()
}

// ByTag buckets pass/fail counts per Case.Tag, in first-seen order.
func (r Report) ByTag() (tags []string, passed, failed map[string]int) {
	passed = map[string]int{}
	failed = map[string]int{}
	seen := map[string]bool{}
	for _, res := range r.Results {
		if !seen[res.Tag] {
			seen[res.Tag] = true
			tags = append(tags, res.Tag)
		}
		if res.Passed {
			passed[res.Tag]++
		} else {
			failed[res.Tag]++
		}
	}
	return tags, passed, failed
}

// Run executes every case in s and compares actual outputs to expected
// ones under structural equality (region.Equal for Regions, reflect-free
// scalar comparison otherwise).
func Run(s *Suite) Report {
	report := Report{Results: make([]Result, 0, len(s.Tests))}
	for _, c := range s.Tests {
		in, want := c.Build()
		got, err := Dispatch(c.Op, in)

		res := Result{Tag: c.Tag, Op: c.Op, Wanted: want, Got: got, Err: err}
		if err != nil {
			res.Passed = false
		} else {
			res.Passed = valuesEqual(want, got)
		}
		report.Results = append(report.Results, res)
	}
	return report
}

func valuesEqual(want, got []any) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if !valueEqual(want[i], got[i]) {
			return false
		}
	}
	return true
}

func valueEqual(want, got any) bool {
	switch w := want.(type) {
	case region.Region:
		g, ok := got.(region.Region)
		return ok && region.Equal(w, g)
	case *big.Int:
		g, ok := got.(*big.Int)
		return ok && w.Cmp(g) == 0
	case []int:
		g, ok := got.([]int)
		if !ok || len(w) != len(g) {
			return false
		}
		for i := range w {
			if w[i] != g[i] {
				return false
			}
		}
		return true
	default:
		return want == got
	}
}
