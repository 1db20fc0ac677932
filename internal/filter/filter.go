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

// Package filter selects bug-report candidates from normalized inbox
// messages by keyword matching and removes duplicate message IDs.
package filter

import (
	"strings"

	"github.com/callrav/ticketrouter/internal/models"
)

// DefaultKeywords is the fixed candidate keyword list. A case-insensitive
// substring match against subject or body qualifies a message as a ticket
// candidate.
var DefaultKeywords = []string{
	"bug",
	"issue",
	"problem",
	"error",
	"not working",
	"fails",
	"broken",
	"crash",
	"down",
	"support request",
	"help needed",
	"502",
	"500",
	"slow loading",
	"timeout",
	"page not loading",
	"site is down",
}

// Filter scans messages for ticket-indicating keywords.
type Filter struct {
	keywords []string
}

// New creates a filter with the given keyword list. Passing nil uses
// DefaultKeywords.
func New(keywords []string) *Filter {
	if keywords == nil {
		keywords = DefaultKeywords
	}
	return &Filter{keywords: keywords}
}

// Candidates returns the messages that match at least one keyword, in
// input order, with duplicate IDs removed (first occurrence kept). The
// keyword loop stops at the first match, so a message qualifies at most
// once regardless of how many keywords it contains.
func (f *Filter) Candidates(emails []models.Email) []models.Email {
	var matched []models.Email

	for _, email := range emails {
		if f.matches(email) {
			matched = append(matched, email)
		}
	}

	return Dedupe(matched)
}

// matches reports whether any keyword occurs in the subject or body.
func (f *Filter) matches(email models.Email) bool {
	subject := strings.ToLower(email.Subject)
	body := strings.ToLower(email.BodyText)

	for _, kw := range f.keywords {
		if strings.Contains(subject, kw) || strings.Contains(body, kw) {
			return true
		}
	}
	return false
}

// Dedupe keeps the first occurrence of each message ID, preserving input
// order.
func Dedupe(emails []models.Email) []models.Email {
	seen := make(map[string]bool, len(emails))
	unique := make([]models.Email, 0, len(emails))

	for _, email := range emails {
		if seen[email.ID] {
			continue
		}
		seen[email.ID] = true
		unique = append(unique, email)
	}

	return unique
}
