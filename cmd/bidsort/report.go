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

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/sgreen/go-bidsort/sorting"
)

// renderReport writes the benchmark comparison as a table with one row per
// algorithm: name, input size, elapsed milliseconds, complexity label.
func renderReport(w io.Writer, results []sorting.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Data Size", "Time (ms)", "Complexity"})
	for _, r := range results {
		table.Append([]string{
			r.Algorithm.String(),
			strconv.Itoa(r.Size),
			fmt.Sprintf("%.3f", r.Millis()),
			r.Algorithm.Complexity(),
		})
	}
	table.Render()
}
