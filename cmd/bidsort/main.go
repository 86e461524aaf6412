// Copyright 2025 go-bidsort Authors
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

// Command bidsort loads auction bid records from a CSV export and compares
// four classic sorting algorithms over them through an interactive menu.
//
// Usage:
//
//	bidsort                      # uses eBid_Monthly_Sales.csv
//	bidsort monthly_sales.csv
//	bidsort --csv monthly_sales.csv
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultCSV = "eBid_Monthly_Sales.csv"

// newCommand returns the root command for the bidsort CLI.
func newCommand() *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "bidsort [csv-file]",
		Short: "load, sort, and benchmark auction bid records",
		Long: `bidsort loads bid records from a CSV export and compares four classic
sorting algorithms (selection, quick, merge, heap) over them, reporting
wall-clock timings per algorithm.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				csvPath = args[0]
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				With().Timestamp().Logger()

			m := &menu{
				csvPath: csvPath,
				in:      bufio.NewScanner(cmd.InOrStdin()),
				out:     cmd.OutOrStdout(),
				log:     log,
			}
			return m.run()
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", defaultCSV, "path to the bid CSV export")
	return cmd
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
