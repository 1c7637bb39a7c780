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


// Command neoncov reports how much of the NEON intrinsic catalog the neon
// package implements.
//
// Usage:
//
//	neoncov report                    # per-section counts and the total rate
//	neoncov report --min-rate 0.85    # exit status 1 below 85%
//	neoncov missing --section memory  # names still to implement
//	neoncov host                      # host CPU features and the modelled VLEN
//
// The neon package is loaded from source with go/packages, so neoncov must
// run inside a module that can resolve --pkg. An alternative catalog file
// in the format of internal/catalog/intrinsics.txt can be given with
// --catalog.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/neon2rvv/internal/catalog"
)

const defaultPkg = "github.com/ajroetker/neon2rvv/neon"

// errBelowMinRate is returned by report when --min-rate is not met.
var errBelowMinRate = errors.New("coverage below minimum rate")

type options struct {
	pkg     string
	dir     string
	catalog string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "neoncov",
		Short:         "Report NEON intrinsic coverage of the neon package",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.pkg, "pkg", defaultPkg, "import path of the package to inspect")
	root.PersistentFlags().StringVar(&opts.dir, "dir", "", "directory to resolve --pkg from (default: current directory)")
	root.PersistentFlags().StringVar(&opts.catalog, "catalog", "", "catalog file (default: the embedded list)")
	root.AddCommand(newReportCmd(opts), newMissingCmd(opts), newHostCmd())
	return root
}

func newReportCmd(opts *options) *cobra.Command {
	var minRate float64
	var extra bool
	c := &cobra.Command{
		Use:   "report",
		Short: "Print implemented and expected counts per section",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			r, err := opts.classify()
			if err != nil {
				return err
			}
			printReport(c.OutOrStdout(), r, extra)
			return checkRate(r, minRate)
		},
	}
	c.Flags().Float64Var(&minRate, "min-rate", 0, "fail when the implemented/expected ratio is below this value")
	c.Flags().BoolVar(&extra, "extra", false, "also list exported functions that are not in the catalog")
	return c
}

func newMissingCmd(opts *options) *cobra.Command {
	var section string
	c := &cobra.Command{
		Use:   "missing",
		Short: "List catalog intrinsics without a Go function",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			r, err := opts.classify()
			if err != nil {
				return err
			}
			printMissing(c.OutOrStdout(), r.Missing(), section)
			return nil
		},
	}
	c.Flags().StringVar(&section, "section", "", "only list this catalog section")
	return c
}

func newHostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Print host CPU features and the modelled vector length",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			printHost(c.OutOrStdout())
			return nil
		},
	}
}

// classify loads the catalog and the package and joins them.
func (o *options) classify() (catalog.Report, error) {
	entries, err := o.entries()
	if err != nil {
		return catalog.Report{}, err
	}
	funcs, err := exportedFuncs(o.pkg, o.dir)
	if err != nil {
		return catalog.Report{}, err
	}
	return catalog.Classify(entries, funcs), nil
}

func (o *options) entries() ([]catalog.Entry, error) {
	if o.catalog == "" {
		return catalog.Default(), nil
	}
	f, err := os.Open(o.catalog)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	entries, err := catalog.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", o.catalog, err)
	}
	return entries, nil
}

func checkRate(r catalog.Report, minRate float64) error {
	if rate := r.Rate(); rate < minRate {
		return fmt.Errorf("%w: %.4f < %.4f", errBelowMinRate, rate, minRate)
	}
	return nil
}
