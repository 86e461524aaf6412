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

package bid

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Field positions in the eBid monthly sales export.
const (
	fieldTitle  = 0
	fieldID     = 1
	fieldAmount = 4
	fieldFund   = 8

	minFields = 9
)

// Load reads bids from CSV data. The first row is a header and is skipped.
// Fields are consumed by position: 0 is the title, 1 the bid id, 4 the
// amount, 8 the fund. On a malformed row or read error, Load returns the
// bids parsed so far together with the error.
func Load(r io.Reader) ([]Bid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var bids []Bid
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return bids, nil
		}
		if err != nil {
			return bids, fmt.Errorf("row %d: %w", row, err)
		}
		if len(rec) < minFields {
			return bids, fmt.Errorf("row %d: %d fields, want at least %d", row, len(rec), minFields)
		}
		bids = append(bids, Bid{
			ID:     rec[fieldID],
			Title:  rec[fieldTitle],
			Fund:   rec[fieldFund],
			Amount: ParseAmount(rec[fieldAmount]),
		})
	}
}

// LoadFile reads bids from the CSV file at path.
func LoadFile(path string) ([]Bid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
