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

// Package scan orchestrates a full inbox scan: retrieval, candidate
// filtering, classification, routing, and report aggregation. Each run
// returns a fresh ticket list; no state is carried between runs.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/callrav/ticketrouter/internal/classify"
	"github.com/callrav/ticketrouter/internal/dedup"
	"github.com/callrav/ticketrouter/internal/filter"
	"github.com/callrav/ticketrouter/internal/models"
	"github.com/callrav/ticketrouter/internal/report"
	"github.com/callrav/ticketrouter/internal/route"
)

// Source is the inbound mail collaborator. Implemented by gmail.Client.
type Source interface {
	ListInbox(ctx context.Context) ([]models.Email, error)
}

// Result holds everything a single scan produced.
type Result struct {
	Tickets    []models.Ticket
	Report     models.Report
	InboxCount int // messages seen in the inbox
	Candidates int // messages that matched a ticket keyword
	Skipped    int // candidates skipped by the cross-scan seen filter
}

// Scanner runs the classification pipeline over an inbox.
type Scanner struct {
	source     Source
	filter     *filter.Filter
	classifier *classify.Classifier
	router     *route.Router
	seen       *dedup.Filter // optional; nil disables cross-scan dedup
}

// ScannerConfig holds the scanner's collaborators. Filter, Classifier,
// and Router fall back to their defaults when nil; Seen is optional.
type ScannerConfig struct {
	Source     Source
	Filter     *filter.Filter
	Classifier *classify.Classifier
	Router     *route.Router
	Seen       *dedup.Filter
}

// New creates a scanner.
func New(cfg ScannerConfig) *Scanner {
	f := cfg.Filter
	if f == nil {
		f = filter.New(nil)
	}
	c := cfg.Classifier
	if c == nil {
		c = classify.New(nil)
	}
	r := cfg.Router
	if r == nil {
		r = route.New(route.DefaultDepartments)
	}
	return &Scanner{
		source:     cfg.Source,
		filter:     f,
		classifier: c,
		router:     r,
		seen:       cfg.Seen,
	}
}

// Run performs one scan. Retrieval failure aborts with an error; an
// empty inbox or zero candidates is a normal result, not an error.
func (s *Scanner) Run(ctx context.Context) (*Result, error) {
	emails, err := s.source.ListInbox(ctx)
	if err != nil {
		return nil, fmt.Errorf("retrieve inbox: %w", err)
	}

	candidates := s.filter.Candidates(emails)

	result := &Result{
		InboxCount: len(emails),
		Candidates: len(candidates),
	}

	for _, email := range candidates {
		if s.seen != nil {
			isNew, err := s.seen.IsNew(ctx, email.ID)
			if err != nil {
				slog.Warn("seen filter check failed", "message_id", email.ID, "error", err)
			} else if !isNew {
				result.Skipped++
				continue
			}
		}

		result.Tickets = append(result.Tickets, s.buildTicket(email))
	}

	result.Report = report.Build(result.Tickets)

	slog.Info("scan complete",
		"inbox", result.InboxCount,
		"candidates", result.Candidates,
		"tickets", len(result.Tickets),
		"skipped", result.Skipped,
		"urgent", result.Report.UrgentTickets,
	)

	return result, nil
}

// buildTicket classifies and routes one candidate message.
func (s *Scanner) buildTicket(email models.Email) models.Ticket {
	category := s.classifier.Classify(email.Subject, email.BodyText)

	return models.Ticket{
		ID:        email.ID,
		Subject:   email.Subject,
		Category:  category,
		IsUrgent:  s.classifier.IsUrgent(email.Subject, email.BodyText),
		Timestamp: time.Unix(email.Timestamp, 0),
		From:      email.From,
		ForwardTo: s.router.Addresses(category),
		Body:      email.BodyText,
		Summary:   classify.Summarize(email),
	}
}
