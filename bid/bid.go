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

// Package bid defines the auction bid record and its CSV ingestion.
package bid

import (
	"fmt"
	"strconv"
	"strings"
)

// Bid is one auction record. Title is the sort key used throughout.
// Bids are plain values with no identity beyond their fields.
type Bid struct {
	ID     string
	Title  string
	Fund   string
	Amount float64
}

// ParseAmount converts a currency-formatted string to a float64. The
// currency symbol and thousands separators are stripped before conversion.
// Malformed input yields 0 rather than an error.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// String renders the bid in the display form used by the CLI.
func (b Bid) String() string {
	return fmt.Sprintf("%s: %s | $%.2f | %s", b.ID, b.Title, b.Amount, b.Fund)
}
