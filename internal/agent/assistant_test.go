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

package agent

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/callrav/ticketrouter/internal/models"
)

// TestAnnotate verifies the assistant sends the classified ticket and
// returns the model's note.
func TestAnnotate(t *testing.T) {
	var gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"choices": []map[string]interface{}{
				{
					"index": 0,
					"message": map[string]string{
						"role":    "assistant",
						"content": "Likely a CDN misconfiguration; escalate to sysops on-call.",
					},
					"finish_reason": "stop",
				},
			},
		})
	}))
	defer server.Close()

	a := NewAssistant("test-key", "test-model", server.URL)

	note, err := a.Annotate(context.Background(), models.Ticket{
		ID:       "msg-1",
		Subject:  "502 on production",
		Category: models.CategorySysops,
		IsUrgent: true,
		Body:     "every request fails",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if note != "Likely a CDN misconfiguration; escalate to sysops on-call." {
		t.Errorf("note = %q", note)
	}

	// The request must carry the pre-classified category — the assistant
	// never classifies.
	if !strings.Contains(gotBody, "Category: Sysops") {
		t.Errorf("request body missing category:\n%s", gotBody)
	}
	if !strings.Contains(gotBody, "msg-1") {
		t.Errorf("request body missing ticket ID:\n%s", gotBody)
	}
}

// TestAnnotate_NoChoices verifies an empty response surfaces as an error.
func TestAnnotate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-2","object":"chat.completion","choices":[]}`))
	}))
	defer server.Close()

	a := NewAssistant("test-key", "test-model", server.URL)

	if _, err := a.Annotate(context.Background(), models.Ticket{ID: "msg-2"}); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
