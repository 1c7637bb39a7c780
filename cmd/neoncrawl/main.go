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


// Command neoncrawl refreshes the intrinsic catalog from Arm's intrinsics
// search pages.
//
// Usage:
//
//	neoncrawl -o internal/catalog/intrinsics.txt
//	neoncrawl --pages 5 -o /tmp/first-pages.txt   # quick check of the page layout
//
// The search is rendered client-side, so neoncrawl drives a headless Chrome
// through chromedp; a Chrome or Chromium binary must be on PATH. Names
// already in the catalog keep their section. New names are filed under
// half, polynomial or unsorted.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/neon2rvv/internal/catalog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		out     string
		pages   int
		wait    time.Duration
		timeout time.Duration
	)
	c := &cobra.Command{
		Use:           "neoncrawl",
		Short:         "Crawl Arm's NEON intrinsics list into a catalog file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()
			names, err := crawl(ctx, crawlConfig{Pages: pages, Wait: wait, Progress: c.ErrOrStderr()})
			if err != nil {
				return err
			}
			entries := merge(catalog.Default(), names)
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := catalog.Write(f, header, entries); err != nil {
				f.Close()
				return fmt.Errorf("writing %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(c.ErrOrStderr(), "wrote %d intrinsics to %s\n", len(entries), out)
			return nil
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "intrinsics.txt", "output catalog file")
	c.Flags().IntVar(&pages, "pages", 250, "maximum number of result pages to visit")
	c.Flags().DurationVar(&wait, "wait", 5*time.Second, "time to let each page render")
	c.Flags().DurationVar(&timeout, "timeout", 30*time.Minute, "overall crawl timeout")
	return c
}

const header = `NEON intrinsics known to the coverage report, one per line under the
section that groups them. Generated by cmd/neoncrawl; sections of names
already listed are kept, new names go to half, polynomial or unsorted.`
