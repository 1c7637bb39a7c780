// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"slices"

	"github.com/samber/lo"
)

// Status is the coverage class of one intrinsic.
type Status int

const (
	// Missing intrinsics are expected but have no Go function.
	Missing Status = iota
	// Implemented intrinsics have an exported function in package neon.
	Implemented
	// Excluded intrinsics use lane types outside the supported set.
	Excluded
)

func (s Status) String() string {
	switch s {
	case Missing:
		return "missing"
	case Implemented:
		return "implemented"
	case Excluded:
		return "excluded"
	}
	return "unknown"
}

// Result is the classification of one catalog entry.
type Result struct {
	Entry
	Status Status
}

// SectionSummary counts one section.
type SectionSummary struct {
	Section     string
	Implemented int
	Expected    int
	Excluded    int
}

// Rate is Implemented / Expected, or 1 for a section with nothing
// expected.
func (s SectionSummary) Rate() float64 {
	if s.Expected == 0 {
		return 1
	}
	return float64(s.Implemented) / float64(s.Expected)
}

// Report is the coverage of a set of Go functions against a catalog.
type Report struct {
	Results []Result
	// Extra lists exported Go functions that match no catalog entry.
	Extra []string
}

// Classify joins the catalog with the exported Go function names of
// package neon.
func Classify(entries []Entry, goFuncs []string) Report {
	have := lo.Keyify(lo.Map(goFuncs, func(n string, _ int) string { return CName(n) }))
	results := lo.Map(entries, func(e Entry, _ int) Result {
		switch {
		case ExcludedShape(e.Name):
			return Result{Entry: e, Status: Excluded}
		case lo.HasKey(have, e.Name):
			return Result{Entry: e, Status: Implemented}
		default:
			return Result{Entry: e, Status: Missing}
		}
	})
	known := lo.Map(entries, func(e Entry, _ int) string { return GoName(e.Name) })
	_, extra := lo.Difference(known, goFuncs)
	slices.Sort(extra)
	return Report{Results: results, Extra: extra}
}

func (r Report) count(s Status) int {
	return lo.CountBy(r.Results, func(x Result) bool { return x.Status == s })
}

// Implemented is the number of implemented entries.
func (r Report) Implemented() int { return r.count(Implemented) }

// Expected is the number of entries that are not excluded.
func (r Report) Expected() int { return len(r.Results) - r.count(Excluded) }

// Excluded is the number of excluded entries.
func (r Report) Excluded() int { return r.count(Excluded) }

// Rate is Implemented / Expected.
func (r Report) Rate() float64 {
	return SectionSummary{Implemented: r.Implemented(), Expected: r.Expected()}.Rate()
}

// Missing returns the missing entries in catalog order.
func (r Report) Missing() []Entry {
	return lo.FilterMap(r.Results, func(x Result, _ int) (Entry, bool) {
		return x.Entry, x.Status == Missing
	})
}

// Sections summarises the report per section, in catalog order.
func (r Report) Sections() []SectionSummary {
	groups := lo.GroupBy(r.Results, func(x Result) string { return x.Section })
	order := lo.Uniq(lo.Map(r.Results, func(x Result, _ int) string { return x.Section }))
	return lo.Map(order, func(s string, _ int) SectionSummary {
		g := Report{Results: groups[s]}
		return SectionSummary{
			Section:     s,
			Implemented: g.Implemented(),
			Expected:    g.Expected(),
			Excluded:    g.Excluded(),
		}
	})
}
