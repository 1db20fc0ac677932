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

package gmail

import (
	"encoding/base64"
	"log/slog"

	"github.com/jaytaylor/html2text"
	gmailapi "google.golang.org/api/gmail/v1"

	"github.com/callrav/ticketrouter/internal/models"
)

// ExtractEmail normalizes a raw Gmail message into a flat Email. Pure
// transform: absent headers or body parts yield zero values, never an
// error. InternalDate is millisecond precision and is converted to epoch
// seconds.
func ExtractEmail(msg *gmailapi.Message) models.Email {
	email := models.Email{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		Snippet:  msg.Snippet,
	}

	if msg.InternalDate != 0 {
		email.Timestamp = msg.InternalDate / 1000
	}

	if msg.Payload == nil {
		return email
	}

	for _, header := range msg.Payload.Headers {
		switch header.Name {
		case "Subject":
			email.Subject = header.Value
		case "From":
			email.From = header.Value
		case "To":
			email.To = header.Value
		case "Date":
			email.Date = header.Value
		}
	}

	email.BodyText, email.BodyHTML = extractBody(msg.Payload)

	// No plain-text part: derive one from the HTML so downstream
	// matching always has text to work with.
	if email.BodyText == "" && email.BodyHTML != "" {
		text, err := html2text.FromString(email.BodyHTML)
		if err != nil {
			slog.Warn("html to text conversion failed, keeping raw HTML",
				"message_id", msg.Id,
				"error", err,
			)
			text = email.BodyHTML
		}
		email.BodyText = text
	}

	return email
}

// extractBody walks the payload tree and returns the first plain-text
// and first HTML part found. Single-part messages carry the body on the
// payload itself; multipart messages nest parts, possibly recursively
// (multipart/alternative inside multipart/mixed).
func extractBody(payload *gmailapi.MessagePart) (text, html string) {
	if payload == nil {
		return "", ""
	}

	if payload.Body != nil && payload.Body.Data != "" {
		switch payload.MimeType {
		case "text/plain":
			text = decodeBody(payload.Body.Data)
		case "text/html":
			html = decodeBody(payload.Body.Data)
		}
	}

	for _, part := range payload.Parts {
		t, h := extractBody(part)
		if text == "" {
			text = t
		}
		if html == "" {
			html = h
		}
		if text != "" && html != "" {
			break
		}
	}

	return text, html
}

// decodeBody decodes Gmail's base64url body data. Gmail omits padding,
// but padded data shows up in stored fixtures, so both forms are accepted.
func decodeBody(data string) string {
	if decoded, err := base64.RawURLEncoding.DecodeString(data); err == nil {
		return string(decoded)
	}
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		return ""
	}
	return string(decoded)
}
