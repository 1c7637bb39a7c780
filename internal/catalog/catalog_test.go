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
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestDefaultParses(t *testing.T) {
	entries := Default()
	if len(entries) < 2000 {
		t.Fatalf("Default: got %d entries, want at least 2000", len(entries))
	}
	for _, name := range []string{"vqaddq_s8", "vld4q_u16", "vsha256hq_u32", "vmull_p64"} {
		if !slices.ContainsFunc(entries, func(e Entry) bool { return e.Name == name }) {
			t.Errorf("Default: %s not listed", name)
		}
	}
}

func TestParse(t *testing.T) {
	src := `# comment

[arith]
vadd_s8
  vaddq_s8

[memory]
vld1_u8
`
	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{{"vadd_s8", "arith"}, {"vaddq_s8", "arith"}, {"vld1_u8", "memory"}}
	if !slices.Equal(got, want) {
		t.Errorf("Parse: got %v, want %v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name, src, want string
	}{
		{"no section", "vadd_s8\n", "before any section"},
		{"bad name", "[arith]\nVadd_s8\n", "invalid intrinsic name"},
		{"bad section", "[Arith]\n", "invalid intrinsic name"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(c.src))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Errorf("Parse: got error %v, want %q", err, c.want)
			}
		})
	}
	_, err := Parse(strings.NewReader("[a]\nvadd_s8\n[b]\nvadd_s8\n"))
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("Parse duplicate: got %v, want ErrDuplicate", err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	entries := []Entry{{"vadd_s8", "arith"}, {"vld1_u8", "memory"}, {"vsub_s8", "arith"}}
	var buf bytes.Buffer
	if err := Write(&buf, "generated\nby a test", entries); err != nil {
		t.Fatal(err)
	}
	got, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	// Write groups by section.
	want := []Entry{{"vadd_s8", "arith"}, {"vsub_s8", "arith"}, {"vld1_u8", "memory"}}
	if !slices.Equal(got, want) {
		t.Errorf("round trip: got %v, want %v", got, want)
	}
}

func TestExcludedShape(t *testing.T) {
	cases := map[string]bool{
		"vadd_p8":             true,
		"vmull_p64":           true,
		"vaddq_p128":          true,
		"vcvt_f32_f16":        true,
		"vbfdot_f32":          true,
		"vcvt_bf16_f32":       true,
		"vreinterpret_u8_p16": true,
		"vadd_s8":             false,
		"vld1q_f64":           false,
		"vbsl_f32":            false,
		"vsha1h_u32":          false,
	}
	for name, want := range cases {
		if got := ExcludedShape(name); got != want {
			t.Errorf("ExcludedShape(%s): got %v, want %v", name, got, want)
		}
	}
}

func TestNames(t *testing.T) {
	if got := GoName("vqaddq_s8"); got != "Vqaddq_s8" {
		t.Errorf("GoName: got %s", got)
	}
	if got := CName("Vqaddq_s8"); got != "vqaddq_s8" {
		t.Errorf("CName: got %s", got)
	}
	if got := Section("vld1_f16"); got != "half" {
		t.Errorf("Section(vld1_f16): got %s, want half", got)
	}
	if got := Section("vbfdotq_f32"); got != "half" {
		t.Errorf("Section(vbfdotq_f32): got %s, want half", got)
	}
	if got := Section("vmul_p8"); got != "polynomial" {
		t.Errorf("Section(vmul_p8): got %s, want polynomial", got)
	}
	if !ValidName("vld1q_u8_x2") || ValidName("__crc32b") || ValidName("Vadd_s8") {
		t.Errorf("ValidName: wrong classification")
	}
	if got := Section("vfoo_s8"); got != "unsorted" {
		t.Errorf("Section(vfoo_s8): got %s, want unsorted", got)
	}
}

func TestClassify(t *testing.T) {
	entries := []Entry{
		{"vadd_s8", "arith"},
		{"vsub_s8", "arith"},
		{"vadd_p8", "arith"},
		{"vld1_u8", "memory"},
	}
	r := Classify(entries, []string{"Vadd_s8", "Vld1_u8", "Vextra_s8"})
	wantStatus := []Status{Implemented, Missing, Excluded, Implemented}
	for i, res := range r.Results {
		if res.Status != wantStatus[i] {
			t.Errorf("%s: got %v, want %v", res.Name, res.Status, wantStatus[i])
		}
	}
	if r.Implemented() != 2 || r.Expected() != 3 || r.Excluded() != 1 {
		t.Errorf("counts: got %d/%d excluded %d, want 2/3 excluded 1", r.Implemented(), r.Expected(), r.Excluded())
	}
	if got, want := r.Rate(), 2.0/3; got != want {
		t.Errorf("Rate: got %v, want %v", got, want)
	}
	if got := r.Missing(); !slices.Equal(got, []Entry{{"vsub_s8", "arith"}}) {
		t.Errorf("Missing: got %v", got)
	}
	if !slices.Equal(r.Extra, []string{"Vextra_s8"}) {
		t.Errorf("Extra: got %v", r.Extra)
	}
	want := []SectionSummary{
		{Section: "arith", Implemented: 1, Expected: 2, Excluded: 1},
		{Section: "memory", Implemented: 1, Expected: 1},
	}
	if got := r.Sections(); !slices.Equal(got, want) {
		t.Errorf("Sections: got %v, want %v", got, want)
	}
}

func TestEmptySectionRate(t *testing.T) {
	s := SectionSummary{Section: "polynomial", Excluded: 10}
	if s.Rate() != 1 {
		t.Errorf("Rate: got %v, want 1", s.Rate())
	}
	if Missing.String() != "missing" || Status(9).String() != "unknown" {
		t.Errorf("Status.String: got %s, %s", Missing, Status(9))
	}
}
