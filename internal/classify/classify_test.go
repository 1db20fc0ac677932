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

package classify

import (
	"strings"
	"testing"

	"github.com/callrav/ticketrouter/internal/models"
)

// TestClassify verifies category assignment for representative inputs.
func TestClassify(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name    string
		subject string
		body    string
		want    models.Category
	}{
		{
			name:    "frontend keyword in subject",
			subject: "Button misaligned on checkout page",
			want:    models.CategoryFrontend,
		},
		{
			name:    "backend keyword in body",
			subject: "Something is off",
			body:    "The database returns stale rows after an update.",
			want:    models.CategoryBackend,
		},
		{
			name:    "sysops keyword",
			subject: "Site unreachable",
			body:    "We keep getting a 502 bad gateway since this morning.",
			want:    models.CategorySysops,
		},
		{
			name:    "cross functional keyword",
			subject: "Weird behaviour",
			body:    "There is general slowness across the app.",
			want:    models.CategoryCrossFunctional,
		},
		{
			name:    "no keyword defaults to cross functional",
			subject: "Hello there",
			body:    "Just wanted to say thanks for the great product!",
			want:    models.CategoryCrossFunctional,
		},
		{
			name:    "matching is case insensitive",
			subject: "DATABASE QUERY ERROR",
			want:    models.CategoryBackend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.subject, tt.body)
			if got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.subject, tt.body, got, tt.want)
			}
		})
	}
}

// TestClassify_EarlierCategoryWins verifies rule priority: when keywords
// from both the frontend and backend sets appear, the earlier-declared
// frontend rule wins.
func TestClassify_EarlierCategoryWins(t *testing.T) {
	c := New(nil)

	got := c.Classify("Button click corrupts database", "")
	if got != models.CategoryFrontend {
		t.Errorf("Classify = %q, want %q", got, models.CategoryFrontend)
	}
}

// TestClassify_Deterministic verifies identical input always yields an
// identical (category, urgency) pair.
func TestClassify_Deterministic(t *testing.T) {
	c := New(nil)

	subject := "Intermittent issue with the API timeout"
	body := "Users report slowness and occasional 500 error pages."

	wantCat := c.Classify(subject, body)
	wantUrgent := c.IsUrgent(subject, body)

	for i := 0; i < 50; i++ {
		if got := c.Classify(subject, body); got != wantCat {
			t.Fatalf("iteration %d: Classify = %q, want %q", i, got, wantCat)
		}
		if got := c.IsUrgent(subject, body); got != wantUrgent {
			t.Fatalf("iteration %d: IsUrgent = %v, want %v", i, got, wantUrgent)
		}
	}
}

// TestIsUrgent verifies the urgency flag is set independently of category.
func TestIsUrgent(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name    string
		subject string
		body    string
		want    bool
	}{
		{name: "502 in body", body: "getting a 502 when saving", want: true},
		{name: "urgent in subject", subject: "URGENT: checkout broken", want: true},
		{name: "asap", body: "please fix asap", want: true},
		{name: "crash", body: "the app crashes on login", want: true},
		{name: "calm report", subject: "small layout nit", body: "the footer looks odd", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsUrgent(tt.subject, tt.body); got != tt.want {
				t.Errorf("IsUrgent(%q, %q) = %v, want %v", tt.subject, tt.body, got, tt.want)
			}
		})
	}
}

// TestSummarize verifies summary selection: issue-bearing subject first,
// then truncated snippet, then the fixed placeholder.
func TestSummarize(t *testing.T) {
	longSnippet := strings.Repeat("x", 300)

	tests := []struct {
		name  string
		email models.Email
		want  string
	}{
		{
			name:  "subject with issue keyword wins",
			email: models.Email{Subject: "Bug in the export flow", Snippet: "some snippet"},
			want:  "Bug in the export flow",
		},
		{
			name:  "subject without keyword falls back to snippet",
			email: models.Email{Subject: "Quick question", Snippet: "the page shows a blank screen"},
			want:  "the page shows a blank screen",
		},
		{
			name:  "long snippet is truncated",
			email: models.Email{Snippet: longSnippet},
			want:  longSnippet[:200],
		},
		{
			name:  "no subject or snippet yields placeholder",
			email: models.Email{},
			want:  noSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.email); got != tt.want {
				t.Errorf("Summarize = %q, want %q", got, tt.want)
			}
		})
	}
}
