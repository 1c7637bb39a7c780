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

// Package catalog lists the NEON intrinsics and classifies each one against
// the functions exported by the neon package.
//
// The list is a text file of intrinsic names grouped under [section]
// headers. Blank lines and lines starting with # are ignored.
package catalog

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

//go:embed intrinsics.txt
var intrinsics string

// Entry is one intrinsic of the catalog.
type Entry struct {
	Name    string // C name, e.g. vqaddq_s8
	Section string // section header it was listed under
}

var (
	nameRE    = regexp.MustCompile(`^v[a-z0-9_]+$`)
	sectionRE = regexp.MustCompile(`^\[([a-z0-9_]+)\]$`)
)

// ErrDuplicate is returned by Parse when a name is listed twice.
var ErrDuplicate = errors.New("duplicate intrinsic")

// Parse reads a catalog. Names must follow a section header.
func Parse(r io.Reader) ([]Entry, error) {
	var (
		entries []Entry
		section string
		line    int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		switch {
		case s == "" || strings.HasPrefix(s, "#"):
			continue
		case sectionRE.MatchString(s):
			section = sectionRE.FindStringSubmatch(s)[1]
		case !nameRE.MatchString(s):
			return nil, fmt.Errorf("line %d: invalid intrinsic name %q", line, s)
		case section == "":
			return nil, fmt.Errorf("line %d: %s listed before any section", line, s)
		default:
			entries = append(entries, Entry{Name: s, Section: section})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	names := lo.Map(entries, func(e Entry, _ int) string { return e.Name })
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicate, strings.Join(dups, ", "))
	}
	return entries, nil
}

// ValidName reports whether name has the form of a NEON intrinsic name.
func ValidName(name string) bool {
	return nameRE.MatchString(name)
}

// Default returns the embedded catalog.
func Default() []Entry {
	entries, err := Parse(strings.NewReader(intrinsics))
	if err != nil {
		panic("catalog: embedded list: " + err.Error())
	}
	return entries
}

// Write writes entries in the format read by Parse, one section per
// block, sections in order of first appearance.
func Write(w io.Writer, header string, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, l := range strings.Split(strings.TrimSpace(header), "\n") {
		if l != "" {
			fmt.Fprintf(bw, "# %s\n", l)
		}
	}
	groups := lo.GroupBy(entries, func(e Entry) string { return e.Section })
	sections := lo.Uniq(lo.Map(entries, func(e Entry, _ int) string { return e.Section }))
	for _, s := range sections {
		fmt.Fprintf(bw, "\n[%s]\n", s)
		for _, e := range groups[s] {
			fmt.Fprintln(bw, e.Name)
		}
	}
	return bw.Flush()
}

// excludedShapes are the lane types the neon package does not model.
var excludedShapes = []string{"p8", "p16", "p64", "p128", "f16", "bf16"}

// ExcludedShape reports whether name operates on polynomial or
// half-precision lanes. The BFloat16 arithmetic intrinsics (vbfdot,
// vbfmmla) name only their float32 result type.
func ExcludedShape(name string) bool {
	parts := strings.Split(name, "_")[1:]
	return strings.HasPrefix(name, "vbf") || lo.SomeBy(parts, func(p string) bool { return lo.Contains(excludedShapes, p) })
}

func halfShape(name string) bool {
	return strings.HasPrefix(name, "vbf") || lo.SomeBy(strings.Split(name, "_")[1:], func(p string) bool {
		return p == "f16" || p == "bf16"
	})
}

// GoName returns the exported Go name of an intrinsic.
func GoName(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// CName is the inverse of GoName.
func CName(goName string) string {
	if goName == "" {
		return ""
	}
	return strings.ToLower(goName[:1]) + goName[1:]
}

// Section returns the section of a name not present in the catalog,
// guessed from its shape.
func Section(name string) string {
	switch {
	case halfShape(name):
		return "half"
	case ExcludedShape(name):
		return "polynomial"
	default:
		return "unsorted"
	}
}
