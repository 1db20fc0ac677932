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

// Package forward composes and dispatches one outbound message per
// (ticket, destination) pair, recording the outcome of every attempt.
package forward

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/callrav/ticketrouter/internal/models"
)

// Sender is the outbound mail collaborator. Implemented by gmail.Client.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Forwarder dispatches classified tickets to their department mailboxes.
type Forwarder struct {
	sender Sender
}

// New creates a forwarder over the given sender.
func New(sender Sender) *Forwarder {
	return &Forwarder{sender: sender}
}

// ForwardAll sends each ticket to every address in its ForwardTo list and
// returns one status line per attempted send, grouped by ticket and then
// by destination. A failed send is recorded and never aborts the
// remaining destinations or tickets; there are no retries. Tickets with
// an empty destination list are skipped silently.
func (f *Forwarder) ForwardAll(ctx context.Context, tickets []models.Ticket) []string {
	var statuses []string

	for _, ticket := range tickets {
		if len(ticket.ForwardTo) == 0 {
			continue
		}

		subject := composeSubject(ticket)
		body := composeBody(ticket)

		for _, recipient := range ticket.ForwardTo {
			if err := f.sender.Send(ctx, recipient, subject, body); err != nil {
				slog.Warn("failed to forward ticket",
					"ticket_id", ticket.ID,
					"recipient", recipient,
					"error", err,
				)
				statuses = append(statuses,
					fmt.Sprintf("%q to %s - failed to forward: %v", ticket.Subject, recipient, err))
				continue
			}

			slog.Info("forwarded ticket",
				"ticket_id", ticket.ID,
				"category", ticket.Category,
				"recipient", recipient,
			)
			statuses = append(statuses,
				fmt.Sprintf("%q to %s - forwarded successfully", ticket.Subject, recipient))
		}
	}

	return statuses
}

// composeSubject builds the outbound subject with the forwarding marker
// and, for urgent tickets, the urgency marker.
func composeSubject(ticket models.Ticket) string {
	if ticket.IsUrgent {
		return fmt.Sprintf("[FORWARDED] URGENT - %s", ticket.Subject)
	}
	return fmt.Sprintf("[FORWARDED] - %s", ticket.Subject)
}

// composeBody builds the outbound body carrying the original sender,
// subject, ticket ID, and body text.
func composeBody(ticket models.Ticket) string {
	return fmt.Sprintf(
		"Forwarded message from: %s\nSubject: %s\nTicket ID: %s\n\n%s",
		ticket.From, ticket.Subject, ticket.ID, ticket.Body,
	)
}
