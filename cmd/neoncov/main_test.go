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
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ajroetker/neon2rvv/internal/catalog"
	"github.com/ajroetker/neon2rvv/rvv"
)

func syntheticReport() catalog.Report {
	var entries []catalog.Entry
	var funcs []string
	for i := range 2000 {
		name := fmt.Sprintf("vop%d_s8", i)
		entries = append(entries, catalog.Entry{Name: name, Section: "arith"})
		if i < 1500 {
			funcs = append(funcs, catalog.GoName(name))
		}
	}
	entries = append(entries, catalog.Entry{Name: "vmul_p8", Section: "polynomial"})
	funcs = append(funcs, "Vhelper_s8")
	return catalog.Classify(entries, funcs)
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, syntheticReport(), true)
	out := buf.String()
	for _, want := range []string{"1,500", "2,000", "75.0%", "polynomial", "100.0%", "total", "Vhelper_s8"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	buf.Reset()
	printReport(&buf, syntheticReport(), false)
	if strings.Contains(buf.String(), "Vhelper_s8") {
		t.Errorf("report lists extra functions without --extra:\n%s", buf.String())
	}
}

func TestPrintMissing(t *testing.T) {
	missing := []catalog.Entry{{"vsub_s8", "arith"}, {"vmulx_f32", "arith"}, {"vld1_u8_x2", "memory"}}
	var buf bytes.Buffer
	printMissing(&buf, missing, "")
	want := "[arith]\n  vsub_s8\n  vmulx_f32\n[memory]\n  vld1_u8_x2\n"
	if buf.String() != want {
		t.Errorf("printMissing: got\n%s\nwant\n%s", buf.String(), want)
	}
	buf.Reset()
	printMissing(&buf, missing, "memory")
	if want := "[memory]\n  vld1_u8_x2\n"; buf.String() != want {
		t.Errorf("printMissing memory: got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestCheckRate(t *testing.T) {
	r := syntheticReport()
	if err := checkRate(r, 0.75); err != nil {
		t.Errorf("checkRate(0.75): %v", err)
	}
	if err := checkRate(r, 0.8); !errors.Is(err, errBelowMinRate) {
		t.Errorf("checkRate(0.8): got %v, want errBelowMinRate", err)
	}
}

func TestHostFeatures(t *testing.T) {
	if got := hostFeatures(rvv.HostInfo{}); got != "none (scalar model only)" {
		t.Errorf("no features: got %q", got)
	}
	if got := hostFeatures(rvv.HostInfo{NativeNEON: true, NativeAES: true, NativeRDM: true}); got != "asimd aes rdm" {
		t.Errorf("arm64 features: got %q", got)
	}
}

func TestExportedFuncs(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	funcs, err := exportedFuncs(defaultPkg, "")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Vqaddq_s8", "Vld4q_u16", "Vsha256hq_u32"} {
		if !slices.Contains(funcs, name) {
			t.Errorf("%s not exported", name)
		}
	}
	if slices.ContainsFunc(funcs, func(n string) bool { return n == "bindOf" || n == "Int8x8" }) {
		t.Errorf("unexported function or type listed")
	}
}

func TestMissingCommand(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	path := filepath.Join(t.TempDir(), "intrinsics.txt")
	if err := os.WriteFile(path, []byte("[arith]\nvqaddq_s8\nvnotreal_s8\nvadd_p8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"missing", "--catalog", path})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if want := "[arith]\n  vnotreal_s8\n"; out.String() != want {
		t.Errorf("missing: got %q, want %q", out.String(), want)
	}

	root = newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"report", "--catalog", path, "--min-rate", "0.9"})
	if err := root.Execute(); !errors.Is(err, errBelowMinRate) {
		t.Errorf("report --min-rate 0.9: got %v, want errBelowMinRate", err)
	}
}
