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

// Package export writes ticket batches to CSV for spreadsheet triage.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/callrav/ticketrouter/internal/models"
)

// header is the fixed CSV column order.
var header = []string{"subject", "from", "date", "summary", "department", "timestamp"}

// WriteCSV writes one row per ticket to w. The date column is the ticket
// timestamp formatted as YYYY-MM-DD, empty when the timestamp is unset.
func WriteCSV(w io.Writer, tickets []models.Ticket) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, t := range tickets {
		date, epoch := "", ""
		if !t.Timestamp.IsZero() && t.Timestamp.Unix() != 0 {
			date = t.Timestamp.Format("2006-01-02")
			epoch = strconv.FormatInt(t.Timestamp.Unix(), 10)
		}

		row := []string{
			t.Subject,
			t.From,
			date,
			t.Summary,
			string(t.Category),
			epoch,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write CSV row for ticket %s: %w", t.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}
	return nil
}

// WriteFile writes the tickets to a CSV file at path.
func WriteFile(path string, tickets []models.Ticket) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file %s: %w", path, err)
	}

	if err := WriteCSV(f, tickets); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
