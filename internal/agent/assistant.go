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

// Package agent provides an optional LLM-backed triage assistant. It is
// a thin adapter over the core pipeline: tickets are classified and
// routed before they reach it, and it carries no classification logic of
// its own — it only produces a short human-readable triage note.
package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/callrav/ticketrouter/internal/models"
)

const systemPrompt = `You are a Ticket Classification and Routing Assistant. Bug reports
found in email messages have already been classified into a department
(frontend, backend, sysops, or cross-functional) and routed. Given one
classified ticket, write a concise, well-structured triage note for the
receiving department. Do not change the classification.`

// Assistant annotates classified tickets with triage notes.
type Assistant struct {
	client *openai.Client
	model  string
}

// NewAssistant creates an assistant against an OpenAI-compatible API.
// baseURL may be empty for the default endpoint.
func NewAssistant(apiKey, model, baseURL string) *Assistant {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &Assistant{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Annotate returns a short triage note for the ticket.
func (a *Assistant) Annotate(ctx context.Context, ticket models.Ticket) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: describeTicket(ticket)},
		},
		Temperature: 0.2,
		MaxTokens:   300,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// describeTicket renders the ticket for the model. The body is truncated:
// triage notes need context, not the full thread.
func describeTicket(ticket models.Ticket) string {
	body := ticket.Body
	if len(body) > 5000 {
		body = body[:5000]
	}

	return fmt.Sprintf(
		"Ticket ID: %s\nCategory: %s\nUrgent: %v\nFrom: %s\nSubject: %s\nSummary: %s\n\n%s",
		ticket.ID, ticket.Category, ticket.IsUrgent, ticket.From, ticket.Subject, ticket.Summary, body,
	)
}
