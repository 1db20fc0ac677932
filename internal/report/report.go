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

// Package report aggregates ticket batches into summary statistics.
package report

import "github.com/callrav/ticketrouter/internal/models"

// Build computes a report over the given tickets: total count, count per
// category, and the number of urgent tickets. Pure aggregation; the
// breakdown map holds only categories that actually occur.
func Build(tickets []models.Ticket) models.Report {
	r := models.Report{
		TotalTickets:      len(tickets),
		CategoryBreakdown: make(map[models.Category]int),
	}

	for _, t := range tickets {
		r.CategoryBreakdown[t.Category]++
		if t.IsUrgent {
			r.UrgentTickets++
		}
	}

	return r
}
