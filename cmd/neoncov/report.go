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


package main

import (
	"fmt"
	"go/types"
	"io"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/tools/go/packages"

	"github.com/ajroetker/neon2rvv/internal/catalog"
	"github.com/ajroetker/neon2rvv/rvv"
)

// exportedFuncs returns the exported package-level functions of the
// package named by pattern.
func exportedFuncs(pattern, dir string) ([]string, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", pattern, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("loading %s: matched %d packages, want 1", pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("loading %s: %v", pattern, pkg.Errors[0])
	}
	scope := pkg.Types.Scope()
	return lo.Filter(scope.Names(), func(name string, _ int) bool {
		fn, ok := scope.Lookup(name).(*types.Func)
		return ok && fn.Exported()
	}), nil
}

func printReport(w io.Writer, r catalog.Report, extra bool) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%-12s %8s %8s %8s %7s\n", "section", "done", "expected", "excluded", "rate")
	for _, s := range r.Sections() {
		p.Fprintf(w, "%-12s %8d %8d %8d %6.1f%%\n", s.Section, s.Implemented, s.Expected, s.Excluded, 100*s.Rate())
	}
	p.Fprintf(w, "%-12s %8d %8d %8d %6.1f%%\n", "total", r.Implemented(), r.Expected(), r.Excluded(), 100*r.Rate())
	if extra && len(r.Extra) > 0 {
		p.Fprintf(w, "\n%d exported functions not in the catalog:\n", len(r.Extra))
		for _, name := range r.Extra {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
}

// printMissing lists missing names under their section; an empty section
// lists all of them.
func printMissing(w io.Writer, missing []catalog.Entry, section string) {
	if section != "" {
		missing = lo.Filter(missing, func(e catalog.Entry, _ int) bool { return e.Section == section })
	}
	last := ""
	for _, e := range missing {
		if e.Section != last {
			fmt.Fprintf(w, "[%s]\n", e.Section)
			last = e.Section
		}
		fmt.Fprintf(w, "  %s\n", e.Name)
	}
}

func printHost(w io.Writer) {
	info := rvv.Info()
	fmt.Fprintf(w, "arch:      %s\n", info.Arch)
	fmt.Fprintf(w, "VLEN:      %d bits\n", info.VLEN)
	fmt.Fprintf(w, "native:    %s\n", hostFeatures(info))
}

type feature struct {
	name string
	ok   bool
}

// hostFeatures names the native vector extensions reported by info.
func hostFeatures(info rvv.HostInfo) string {
	features := []feature{
		{"rvv", info.NativeRVV},
		{"asimd", info.NativeNEON},
		{"aes", info.NativeAES},
		{"sha1", info.NativeSHA1},
		{"sha2", info.NativeSHA2},
		{"dotprod", info.NativeDotProd},
		{"rdm", info.NativeRDM},
	}
	names := lo.FilterMap(features, func(f feature, _ int) (string, bool) { return f.name, f.ok })
	if len(names) == 0 {
		return "none (scalar model only)"
	}
	return strings.Join(names, " ")
}
