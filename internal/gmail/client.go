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

// Package gmail provides the Gmail API adapter: OAuth2 authentication,
// inbox retrieval with content extraction, and outbound sending.
package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/callrav/ticketrouter/internal/models"
)

// Client wraps the Gmail API service for the scanning pipeline.
type Client struct {
	credentialsPath string
	tokenPath       string
	service         *gmailapi.Service
}

// NewClient creates an unauthenticated client. Authenticate must be
// called before ListInbox or Send.
func NewClient(credentialsPath, tokenPath string) *Client {
	return &Client{
		credentialsPath: credentialsPath,
		tokenPath:       tokenPath,
	}
}

// Authenticate builds the Gmail service from the OAuth2 client secrets
// and a previously stored token. Expired tokens are refreshed through the
// token source and the refreshed token is written back to the token file.
// An error here means the scan cannot proceed.
func (c *Client) Authenticate(ctx context.Context) error {
	secrets, err := os.ReadFile(c.credentialsPath)
	if err != nil {
		return fmt.Errorf("read credentials file %s: %w", c.credentialsPath, err)
	}

	config, err := google.ConfigFromJSON(secrets,
		gmailapi.GmailReadonlyScope,
		gmailapi.GmailComposeScope,
	)
	if err != nil {
		return fmt.Errorf("parse client secrets: %w", err)
	}

	token, err := readToken(c.tokenPath)
	if err != nil {
		return fmt.Errorf("read token file %s: %w", c.tokenPath, err)
	}

	source := config.TokenSource(ctx, token)

	// Force a refresh now so an invalid grant surfaces as an
	// authentication failure instead of a mid-scan retrieval error.
	fresh, err := source.Token()
	if err != nil {
		return fmt.Errorf("refresh token: %w", err)
	}
	if fresh.AccessToken != token.AccessToken {
		if err := writeToken(c.tokenPath, fresh); err != nil {
			slog.Warn("failed to persist refreshed token", "path", c.tokenPath, "error", err)
		}
	}

	service, err := gmailapi.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return fmt.Errorf("create gmail service: %w", err)
	}

	c.service = service
	return nil
}

// ListInbox retrieves every message currently in the inbox, fully
// fetched and normalized. A failure listing message IDs aborts with an
// error; a failure fetching an individual message is logged and the
// message skipped.
func (c *Client) ListInbox(ctx context.Context) ([]models.Email, error) {
	if c.service == nil {
		return nil, fmt.Errorf("gmail client not authenticated")
	}

	var emails []models.Email

	pageToken := ""
	for {
		call := c.service.Users.Messages.List("me").LabelIds("INBOX")
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("list inbox messages: %w", err)
		}

		for _, stub := range resp.Messages {
			msg, err := c.service.Users.Messages.Get("me", stub.Id).
				Format("full").
				Context(ctx).
				Do()
			if err != nil {
				slog.Warn("failed to fetch message, skipping",
					"message_id", stub.Id,
					"error", err,
				)
				continue
			}
			emails = append(emails, ExtractEmail(msg))
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	slog.Info("inbox retrieved", "messages", len(emails))
	return emails, nil
}

// Send composes a plain-text RFC 822 message and dispatches it through
// the Gmail send endpoint.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	if c.service == nil {
		return fmt.Errorf("gmail client not authenticated")
	}

	var sb strings.Builder
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)

	msg := &gmailapi.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(sb.String())),
	}

	if _, err := c.service.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// readToken loads a stored OAuth2 token from disk.
func readToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("parse token JSON: %w", err)
	}
	return &token, nil
}

// writeToken persists a token to disk with owner-only permissions.
func writeToken(path string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
