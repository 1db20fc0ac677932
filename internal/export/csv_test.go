// Copyright (c) 2026 Aura Vanya
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

package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
	"time"

	"github.com/callrav/ticketrouter/internal/models"
)

func TestWriteCSV(t *testing.T) {
	ts := time.Date(2024, 8, 12, 10, 0, 0, 0, time.UTC)

	tickets := []models.Ticket{
		{
			ID:        "1",
			Subject:   "Bug in checkout",
			From:      "alice@example.com",
			Category:  models.CategoryFrontend,
			Timestamp: ts,
			Summary:   "Bug in checkout",
		},
		{
			ID:       "2",
			Subject:  "no timestamp",
			Category: models.CategoryBackend,
			Summary:  "no timestamp",
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tickets); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := []string{"subject", "from", "date", "summary", "department", "timestamp"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v", rows[0])
	}

	want := []string{"Bug in checkout", "alice@example.com", "2024-08-12", "Bug in checkout", "Frontend", "1723456800"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("row 1 = %v, want %v", rows[1], want)
	}

	// Zero timestamp leaves date and epoch empty.
	if rows[2][2] != "" || rows[2][5] != "" {
		t.Errorf("row 2 date/timestamp = %q/%q, want empty", rows[2][2], rows[2][5])
	}
	if rows[2][4] != "Backend" {
		t.Errorf("row 2 department = %q", rows[2][4])
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}
