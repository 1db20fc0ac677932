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

// Package models defines the data structures shared across the ticket
// routing pipeline.
package models

import "time"

// Category is the department a ticket is routed to.
//
// The set is closed: routing and reporting switch on the variant, never
// on substrings of the display name.
type Category string

const (
	CategoryFrontend        Category = "Frontend"
	CategoryBackend         Category = "Backend"
	CategorySysops          Category = "Sysops"
	CategoryCrossFunctional Category = "Cross-Functional"
)

// Email represents a normalized inbox message ready for classification.
//
// Every field is optional: a malformed source message yields zero values,
// never an error. BodyText is guaranteed non-empty whenever BodyHTML is
// non-empty (the extractor converts HTML when no plain-text part exists).
type Email struct {
	ID        string `json:"id"`
	ThreadID  string `json:"thread_id"`
	Subject   string `json:"subject"`
	From      string `json:"from"`
	To        string `json:"to"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"` // epoch seconds
	Snippet   string `json:"snippet,omitempty"`
	BodyText  string `json:"body_text"`
	BodyHTML  string `json:"body_html,omitempty"`
}

// Ticket is a classified, routable representation of a detected
// bug-report message. Immutable after creation.
type Ticket struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Category  Category  `json:"category"`
	IsUrgent  bool      `json:"is_urgent"`
	Timestamp time.Time `json:"timestamp"`
	From      string    `json:"from"`
	ForwardTo []string  `json:"forward_to"`
	Body      string    `json:"body"`
	Summary   string    `json:"summary"`
}

// Report summarises a batch of tickets. Recomputed on demand, never
// persisted.
type Report struct {
	TotalTickets      int              `json:"total_tickets"`
	CategoryBreakdown map[Category]int `json:"category_breakdown"`
	UrgentTickets     int              `json:"urgent_tickets"`
}
