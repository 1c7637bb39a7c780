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
	"slices"
	"strings"
	"testing"

	"github.com/ajroetker/neon2rvv/internal/catalog"
)

func TestPageURL(t *testing.T) {
	if got := pageURL(0); got != searchURL {
		t.Errorf("pageURL(0): got %s", got)
	}
	if got := pageURL(3); !strings.HasSuffix(got, "[Neon]&first=60") {
		t.Errorf("pageURL(3): got %s", got)
	}
}

func TestPageScript(t *testing.T) {
	s := pageScript()
	if n := strings.Count(s, "text(\""); n != rowsPerPage*len(signatureColumns) {
		t.Errorf("pageScript: %d cells, want %d", n, rowsPerPage*len(signatureColumns))
	}
	if !strings.Contains(s, `tr[20]/td[5]/code`) {
		t.Errorf("pageScript does not address the last cell")
	}
}

func TestParseRows(t *testing.T) {
	cells := []string{
		"int8x8_t", " vadd_s8 ", "int8x8_t a, int8x8_t b",
		"", "", "",
		"uint32_t", "__crc32b", "uint32_t a, uint8_t b",
		"int8x16_t", "vaddq_s8",
	}
	got := parseRows(cells)
	want := []row{
		{"int8x8_t", "vadd_s8", "int8x8_t a, int8x8_t b"},
		{"uint32_t", "__crc32b", "uint32_t a, uint8_t b"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("parseRows: got %v, want %v", got, want)
	}
}

func TestMerge(t *testing.T) {
	known := []catalog.Entry{{"vadd_s8", "arith"}, {"vld1_u8", "memory"}}
	got := merge(known, []string{"vld1_u8", "vnew_s8", "__crc32b", "vmul_p8", "vnew_s8", "vld1_f16"})
	want := []catalog.Entry{
		{"vadd_s8", "arith"},
		{"vld1_u8", "memory"},
		{"vnew_s8", "unsorted"},
		{"vmul_p8", "polynomial"},
		{"vld1_f16", "half"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("merge: got %v, want %v", got, want)
	}
	if len(known) != 2 {
		t.Errorf("merge modified its input")
	}
}
