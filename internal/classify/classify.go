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

// Package classify maps ticket text to a department category and an
// urgency flag using ordered keyword matching.
package classify

import (
	"strings"

	"github.com/callrav/ticketrouter/internal/models"
)

// Rule binds one category to its keyword set. Rules are evaluated in
// declaration order: the first category with a matching keyword wins.
type Rule struct {
	Category models.Category
	Keywords []string
}

// DefaultRules is the ordered category-to-keyword mapping. Earlier rules
// take priority when keywords from several categories appear in the same
// message.
var DefaultRules = []Rule{
	{
		Category: models.CategoryFrontend,
		Keywords: []string{
			"ui", "ux", "layout", "button", "form validation", "design", "style",
			"visual", "alignment", "text overflow", "mobile view", "responsive",
			"dropdown", "checkbox", "radio button", "modal", "link not working",
		},
	},
	{
		Category: models.CategoryBackend,
		Keywords: []string{
			"api", "data mismatch", "data error", "processing error", "database",
			"data inconsistency", "query error", "logic bug", "long loading time",
			"backend crash", "json error", "500 error",
		},
	},
	{
		Category: models.CategorySysops,
		Keywords: []string{
			"server", "downtime", "deployment", "dns", "infrastructure",
			"unable to connect", "timeout", "network issue", "ssl error",
			"hosting", "latency", "maintenance", "outage", "502", "504", "bad gateway",
		},
	},
	{
		Category: models.CategoryCrossFunctional,
		Keywords: []string{
			"slowness", "intermittent issue", "frontend triggers backend crash",
			"authentication error affecting ui", "mixed origin issue",
			"combined api and ui failure", "user action leads to server error",
			"redirect loops involving infra", "complex failure", "timeout after form submission",
		},
	},
}

// urgencyKeywords mark a ticket urgent regardless of its category.
var urgencyKeywords = []string{
	"urgent", "asap", "immediately", "critical", "important",
	"high priority", "500", "502", "crash",
}

// summaryKeywords indicate a subject line that already describes the issue.
var summaryKeywords = []string{"bug", "issue", "error", "problem", "not working"}

// noSummary is returned when neither subject nor snippet yields a summary.
const noSummary = "No clear issue summary available"

// snippetLimit caps the snippet fallback used as an issue summary.
const snippetLimit = 200

// Classifier assigns categories and urgency flags to ticket text.
type Classifier struct {
	rules []Rule
}

// New creates a classifier with the given ordered rules. Passing nil uses
// DefaultRules.
func New(rules []Rule) *Classifier {
	if rules == nil {
		rules = DefaultRules
	}
	return &Classifier{rules: rules}
}

// Classify returns the department category for the given subject and body.
// Subject and body are combined and lower-cased; the first rule whose
// keyword set contains a matching substring wins. Text matching no rule
// defaults to Cross-Functional.
func (c *Classifier) Classify(subject, body string) models.Category {
	text := strings.ToLower(subject + " " + body)

	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Category
			}
		}
	}

	return models.CategoryCrossFunctional
}

// IsUrgent reports whether the combined subject and body contain any
// urgency keyword. Independent of the category decision.
func (c *Classifier) IsUrgent(subject, body string) bool {
	text := strings.ToLower(subject + " " + body)

	for _, kw := range urgencyKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Summarize extracts a short issue description for display and export.
// The subject line is preferred when it names an issue; otherwise the
// message snippet is truncated; otherwise a fixed placeholder is used.
func Summarize(email models.Email) string {
	subject := strings.TrimSpace(email.Subject)
	if subject != "" {
		lower := strings.ToLower(subject)
		for _, kw := range summaryKeywords {
			if strings.Contains(lower, kw) {
				return subject
			}
		}
	}

	snippet := strings.TrimSpace(email.Snippet)
	if snippet != "" {
		if len(snippet) > snippetLimit {
			return snippet[:snippetLimit]
		}
		return snippet
	}

	return noSummary
}
