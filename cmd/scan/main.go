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

// Ticket Router — Inbox Scan Command
//
// Scans the configured Gmail inbox for bug-report-like messages,
// classifies each into a department category, forwards the resulting
// tickets to the department mailboxes, and prints a summary report.
//
// Usage:
//
//	go run ./cmd/scan/ [--config config.yaml] [--export tickets.csv] [--dry-run] [--annotate]
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/callrav/ticketrouter/internal/agent"
	"github.com/callrav/ticketrouter/internal/config"
	"github.com/callrav/ticketrouter/internal/dedup"
	"github.com/callrav/ticketrouter/internal/export"
	"github.com/callrav/ticketrouter/internal/forward"
	"github.com/callrav/ticketrouter/internal/gmail"
	"github.com/callrav/ticketrouter/internal/queue"
	"github.com/callrav/ticketrouter/internal/route"
	"github.com/callrav/ticketrouter/internal/scan"
)

func main() {
	// Structured JSON logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// --- CLI Flags ---
	configFlag := flag.String("config", "", "Path to config.yaml (default: CONFIG_PATH or ./config.yaml)")
	exportFlag := flag.String("export", "", "Path to export CSV results (optional)")
	dryRunFlag := flag.Bool("dry-run", false, "Classify and report without forwarding")
	annotateFlag := flag.Bool("annotate", false, "Produce LLM triage notes per ticket (requires assistant API key)")
	flag.Parse()

	// Local development keeps secrets in .env
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	// --- Load Configuration ---
	cfg, err := config.Load(*configFlag)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Authenticate with Gmail ---
	client := gmail.NewClient(cfg.GmailCredentials, cfg.GmailToken)
	if err := client.Authenticate(ctx); err != nil {
		slog.Error("gmail authentication failed, check credentials", "error", err)
		os.Exit(1)
	}
	slog.Info("authenticated with Gmail")

	// --- Optional Redis: cross-scan dedup + ticket queue ---
	var seen *dedup.Filter
	var publisher *queue.Publisher
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			slog.Error("invalid redis URL", "error", err)
			os.Exit(1)
		}
		rdb := redis.NewClient(opt)
		defer rdb.Close()

		publisher = queue.NewPublisher(rdb, cfg.TicketsQueue)
		if err := publisher.Ping(ctx); err != nil {
			slog.Error("failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		seen = dedup.NewFilter(rdb)
		slog.Info("connected to Redis", "queue", cfg.TicketsQueue)
	}

	// --- Scan ---
	scanner := scan.New(scan.ScannerConfig{
		Source: client,
		Router: route.New(route.Departments{
			Frontend: cfg.Departments.Frontend,
			Backend:  cfg.Departments.Backend,
			Sysops:   cfg.Departments.Sysops,
		}),
		Seen: seen,
	})

	result, err := scanner.Run(ctx)
	if err != nil {
		slog.Error("scan failed", "error", err)
		os.Exit(1)
	}

	slog.Info("scan summary",
		"inbox_messages", result.InboxCount,
		"candidates", result.Candidates,
		"total_tickets", result.Report.TotalTickets,
		"urgent_tickets", result.Report.UrgentTickets,
	)
	for category, count := range result.Report.CategoryBreakdown {
		slog.Info("category breakdown", "category", category, "count", count)
	}

	if len(result.Tickets) == 0 {
		slog.Info("no tickets found")
		return
	}

	// --- Optional triage notes ---
	if *annotateFlag {
		if cfg.AssistantAPIKey == "" {
			slog.Warn("annotation requested but no assistant API key configured")
		} else {
			assistant := agent.NewAssistant(cfg.AssistantAPIKey, cfg.AssistantModel, cfg.AssistantBaseURL)
			for _, ticket := range result.Tickets {
				note, err := assistant.Annotate(ctx, ticket)
				if err != nil {
					slog.Warn("annotation failed", "ticket_id", ticket.ID, "error", err)
					continue
				}
				slog.Info("triage note", "ticket_id", ticket.ID, "note", note)
			}
		}
	}

	// --- Publish tickets for downstream triage workers ---
	if publisher != nil {
		for i := range result.Tickets {
			if err := publisher.PublishTicket(ctx, &result.Tickets[i]); err != nil {
				slog.Warn("failed to publish ticket", "ticket_id", result.Tickets[i].ID, "error", err)
			}
		}
	}

	// --- Forward to departments ---
	if *dryRunFlag {
		slog.Info("dry run, skipping forwarding", "tickets", len(result.Tickets))
	} else {
		forwarder := forward.New(client)
		statuses := forwarder.ForwardAll(ctx, result.Tickets)
		for _, status := range statuses {
			slog.Info("forward status", "status", status)
		}
	}

	// --- CSV Export ---
	if *exportFlag != "" {
		if err := export.WriteFile(*exportFlag, result.Tickets); err != nil {
			slog.Error("CSV export failed", "path", *exportFlag, "error", err)
			os.Exit(1)
		}
		slog.Info("exported ticket data", "path", *exportFlag, "tickets", len(result.Tickets))
	}
}
