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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Title,ID,Dept,Close Date,Winning Bid,CC Fee,Fee Percent,Paid,Fund\n"

func TestLoad(t *testing.T) {
	data := header +
		"Riding Mower,98109,OPS,2016-06-28,$1500.50,$45.02,3%,Yes,General Fund\n" +
		"Office Chairs,98110,FAC,2016-06-28,\"$1,204.00\",$36.12,3%,Yes,Enterprise\n"

	bids, err := Load(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, bids, 2)

	assert.Equal(t, Bid{ID: "98109", Title: "Riding Mower", Fund: "General Fund", Amount: 1500.5}, bids[0])
	assert.Equal(t, Bid{ID: "98110", Title: "Office Chairs", Fund: "Enterprise", Amount: 1204}, bids[1])
}

func TestLoadEmpty(t *testing.T) {
	bids, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, bids)
}

func TestLoadHeaderOnly(t *testing.T) {
	bids, err := Load(strings.NewReader(header))
	require.NoError(t, err)
	assert.Empty(t, bids)
}

func TestLoadMalformedAmount(t *testing.T) {
	data := header +
		"Riding Mower,98109,OPS,2016-06-28,oops,$45.02,3%,Yes,General Fund\n"

	bids, err := Load(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, bids, 1)
	assert.Zero(t, bids[0].Amount)
}

func TestLoadShortRowReturnsPartial(t *testing.T) {
	data := header +
		"Riding Mower,98109,OPS,2016-06-28,$1500.50,$45.02,3%,Yes,General Fund\n" +
		"Broken Row,98111\n" +
		"Office Chairs,98110,FAC,2016-06-28,$1204.00,$36.12,3%,Yes,Enterprise\n"

	bids, err := Load(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	require.Len(t, bids, 1)
	assert.Equal(t, "Riding Mower", bids[0].Title)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bids.csv")
	data := header +
		"Riding Mower,98109,OPS,2016-06-28,$1500.50,$45.02,3%,Yes,General Fund\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	bids, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, bids, 1)
	assert.Equal(t, "98109", bids[0].ID)
}

func TestLoadFileMissing(t *testing.T) {
	bids, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Empty(t, bids)
}
