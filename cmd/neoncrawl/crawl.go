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
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/samber/lo"

	"github.com/ajroetker/neon2rvv/internal/catalog"
)

const (
	searchURL   = "https://developer.arm.com/architectures/instruction-sets/intrinsics/#f:@navigationhierarchiessimdisa=[Neon]"
	rowsPerPage = 20

	// rowXPath addresses one cell of the result table; the arguments are
	// the row (1-based) and the column.
	rowXPath = `//*[@id="app"]/div/div[2]/div[2]/main/div/div[2]/div[2]/div[3]/table/tbody/tr[%d]/td[%d]/code`
)

// Result table columns holding the signature.
var signatureColumns = []int{3, 4, 5}

// row is one intrinsic signature of the result table.
type row struct {
	ReturnType string
	Name       string
	Arguments  string
}

type crawlConfig struct {
	Pages    int
	Wait     time.Duration
	Progress io.Writer
}

// pageURL returns the URL of result page i, counting from 0.
func pageURL(i int) string {
	if i == 0 {
		return searchURL
	}
	return fmt.Sprintf("%s&first=%d", searchURL, i*rowsPerPage)
}

// pageScript returns JavaScript evaluating to the text of every signature
// cell of a page, row by row, with "" for cells that do not exist.
func pageScript() string {
	var b strings.Builder
	b.WriteString("(() => { const text = x => { const n = document.evaluate(x, document, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null).singleNodeValue; return n ? n.textContent : \"\"; }; return [")
	for r := 1; r <= rowsPerPage; r++ {
		for _, col := range signatureColumns {
			fmt.Fprintf(&b, "text(%q),", fmt.Sprintf(rowXPath, r, col))
		}
	}
	b.WriteString("]; })()")
	return b.String()
}

// parseRows groups the cell texts returned by pageScript into rows,
// dropping empty rows.
func parseRows(cells []string) []row {
	var rows []row
	for _, c := range lo.Chunk(cells, len(signatureColumns)) {
		if len(c) < len(signatureColumns) {
			break
		}
		r := row{
			ReturnType: strings.TrimSpace(c[0]),
			Name:       strings.TrimSpace(c[1]),
			Arguments:  strings.TrimSpace(c[2]),
		}
		if r.Name != "" {
			rows = append(rows, r)
		}
	}
	return rows
}

// crawl visits result pages until one comes back empty or cfg.Pages is
// reached, and returns the intrinsic names in page order.
func crawl(ctx context.Context, cfg crawlConfig) ([]string, error) {
	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	script := pageScript()
	var names []string
	for i := 0; i < cfg.Pages; i++ {
		var cells []string
		err := chromedp.Run(ctx,
			chromedp.Navigate(pageURL(i)),
			chromedp.Sleep(cfg.Wait),
			chromedp.Evaluate(script, &cells),
		)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		rows := parseRows(cells)
		if cfg.Progress != nil {
			fmt.Fprintf(cfg.Progress, "page %d: %d intrinsics\n", i, len(rows))
		}
		if len(rows) == 0 {
			break
		}
		names = append(names, lo.Map(rows, func(r row, _ int) string { return r.Name })...)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no intrinsics found at %s", searchURL)
	}
	return names, nil
}

// merge adds the crawled names to the known catalog. Known entries keep
// their section and order; new names are appended under the section
// guessed by catalog.Section. Names that are not NEON intrinsics (such as
// the __crc32 family) are dropped.
func merge(known []catalog.Entry, crawled []string) []catalog.Entry {
	have := lo.Keyify(lo.Map(known, func(e catalog.Entry, _ int) string { return e.Name }))
	fresh := lo.Uniq(lo.Filter(crawled, func(name string, _ int) bool {
		return catalog.ValidName(name) && !lo.HasKey(have, name)
	}))
	return append(slices.Clone(known), lo.Map(fresh, func(name string, _ int) catalog.Entry {
		return catalog.Entry{Name: name, Section: catalog.Section(name)}
	})...)
}
