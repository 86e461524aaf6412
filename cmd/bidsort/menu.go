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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/sgreen/go-bidsort/bid"
	"github.com/sgreen/go-bidsort/sorting"
)

// Menu choices, in display order.
const (
	choiceLoad = iota + 1
	choiceDisplay
	choiceAdd
	choiceSelection
	choiceQuick
	choiceMerge
	choiceHeap
	choiceBenchmark
	choiceClear
	choiceExit
)

// menu drives the interactive loop. It owns the in-memory bid sequence;
// the sort operations borrow it for their duration.
type menu struct {
	csvPath string
	in      *bufio.Scanner
	out     io.Writer
	log     zerolog.Logger
	bids    []bid.Bid
}

func (m *menu) run() error {
	color.New(color.Bold).Fprintln(m.out, "bidsort - bid sorting and benchmarking")
	fmt.Fprintf(m.out, "CSV file: %s\n", m.csvPath)

	for {
		m.printMenu()
		switch m.readChoice() {
		case choiceLoad:
			m.load()
		case choiceDisplay:
			m.display()
		case choiceAdd:
			m.addBid()
		case choiceSelection:
			m.sortWith(sorting.Selection)
		case choiceQuick:
			m.sortWith(sorting.Quick)
		case choiceMerge:
			m.sortWith(sorting.Merge)
		case choiceHeap:
			m.sortWith(sorting.Heap)
		case choiceBenchmark:
			m.benchmark()
		case choiceClear:
			m.bids = nil
			fmt.Fprintln(m.out, "All bids cleared.")
		case choiceExit:
			fmt.Fprintln(m.out, "Good bye.")
			return nil
		}
	}
}

func (m *menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Menu:")
	fmt.Fprintf(m.out, "  %d. Load Bids\n", choiceLoad)
	fmt.Fprintf(m.out, "  %d. Display All Bids\n", choiceDisplay)
	fmt.Fprintf(m.out, "  %d. Add Bid\n", choiceAdd)
	fmt.Fprintf(m.out, "  %d. Selection Sort (O(n^2))\n", choiceSelection)
	fmt.Fprintf(m.out, "  %d. Quick Sort (O(n log n))\n", choiceQuick)
	fmt.Fprintf(m.out, "  %d. Merge Sort (O(n log n))\n", choiceMerge)
	fmt.Fprintf(m.out, "  %d. Heap Sort (O(n log n))\n", choiceHeap)
	fmt.Fprintf(m.out, "  %d. Run Benchmark Comparison\n", choiceBenchmark)
	fmt.Fprintf(m.out, "  %d. Clear All Bids\n", choiceClear)
	fmt.Fprintf(m.out, "  %d. Exit\n", choiceExit)
}

// readChoice prompts until it gets a number within the menu range. End of
// input is treated as exit so piped sessions terminate cleanly.
func (m *menu) readChoice() int {
	for {
		fmt.Fprintf(m.out, "Enter choice (%d-%d): ", choiceLoad, choiceExit)
		line, ok := m.readLine()
		if !ok {
			return choiceExit
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= choiceLoad && choice <= choiceExit {
			return choice
		}
		fmt.Fprintf(m.out, "Invalid input. Please enter a number between %d and %d.\n",
			choiceLoad, choiceExit)
	}
}

func (m *menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *menu) prompt(label string) string {
	fmt.Fprintf(m.out, "%s: ", label)
	line, _ := m.readLine()
	return strings.TrimSpace(line)
}

func (m *menu) load() {
	start := time.Now()
	bids, err := bid.LoadFile(m.csvPath)
	if err != nil {
		m.log.Error().Err(err).Str("path", m.csvPath).Msg("load failed")
	}
	m.bids = bids
	fmt.Fprintf(m.out, "%s bids read in %.3f ms\n",
		humanize.Comma(int64(len(bids))),
		float64(time.Since(start))/float64(time.Millisecond))
}

func (m *menu) display() {
	if len(m.bids) == 0 {
		fmt.Fprintln(m.out, "No bids to display. Load data first.")
		return
	}
	fmt.Fprintf(m.out, "Displaying %s bids:\n", humanize.Comma(int64(len(m.bids))))
	for _, b := range m.bids {
		fmt.Fprintln(m.out, b)
	}
}

func (m *menu) addBid() {
	b := bid.Bid{
		ID:    m.prompt("Enter id"),
		Title: m.prompt("Enter title"),
		Fund:  m.prompt("Enter fund"),
	}
	b.Amount = bid.ParseAmount(m.prompt("Enter amount"))
	m.bids = append(m.bids, b)
	fmt.Fprintf(m.out, "Bid added. Total bids: %d\n", len(m.bids))
}

func (m *menu) sortWith(algo sorting.Algorithm) {
	if len(m.bids) == 0 {
		fmt.Fprintln(m.out, "No data to sort. Load bids first.")
		return
	}

	start := time.Now()
	algo.Sort(m.bids)
	elapsed := time.Since(start)

	fmt.Fprintf(m.out, "%s: %s bids sorted in %.3f ms\n",
		algo, humanize.Comma(int64(len(m.bids))),
		float64(elapsed)/float64(time.Millisecond))
}

func (m *menu) benchmark() {
	if len(m.bids) == 0 {
		fmt.Fprintln(m.out, "No data to benchmark. Load bids first.")
		return
	}

	fmt.Fprintf(m.out, "Running benchmark comparison on %s bids...\n",
		humanize.Comma(int64(len(m.bids))))
	renderReport(m.out, sorting.BenchmarkAll(m.bids))
}
