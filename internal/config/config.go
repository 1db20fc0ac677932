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

// Package config loads configuration from config.yaml and environment
// variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Departments holds the support mailbox address per department.
type Departments struct {
	Frontend string `yaml:"frontend"`
	Backend  string `yaml:"backend"`
	Sysops   string `yaml:"sysops"`
}

// Config holds all configuration for the ticket router.
type Config struct {
	// Gmail OAuth2 material
	GmailCredentials string
	GmailToken       string

	// Department routing targets
	Departments Departments

	// Redis (optional; empty URL disables the seen filter and the
	// ticket queue)
	RedisURL     string
	TicketsQueue string

	// Triage assistant (optional; empty key disables annotation)
	AssistantAPIKey  string
	AssistantModel   string
	AssistantBaseURL string
}

// rawConfig mirrors the YAML structure for unmarshalling.
type rawConfig struct {
	Gmail struct {
		Credentials string `yaml:"credentials"`
		Token       string `yaml:"token"`
	} `yaml:"gmail"`
	Departments Departments `yaml:"departments"`
	Redis       struct {
		URL    string `yaml:"url"`
		Queues struct {
			Tickets string `yaml:"tickets"`
		} `yaml:"queues"`
	} `yaml:"redis"`
	Assistant struct {
		APIKey  string `yaml:"api_key"`
		Model   string `yaml:"model"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"assistant"`
}

// Load reads configuration from the given YAML file (with env var
// expansion) and environment variables. An absent config file is not an
// error: every setting has a default or an env override. Passing an empty
// path uses CONFIG_PATH, falling back to ./config.yaml.
func Load(path string) (*Config, error) {
	if path == "" {
		path = envOrDefault("CONFIG_PATH", "config.yaml")
	}

	var raw rawConfig

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// Expand ${VAR} references in the YAML
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
			return nil, fmt.Errorf("parse config YAML %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults and env vars only
	default:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg := &Config{
		GmailCredentials: firstNonEmpty(raw.Gmail.Credentials, envOrDefault("GMAIL_CREDENTIALS", "config/credentials.json")),
		GmailToken:       firstNonEmpty(raw.Gmail.Token, envOrDefault("GMAIL_TOKEN", "config/token.json")),
		Departments: Departments{
			Frontend: firstNonEmpty(raw.Departments.Frontend, envOrDefault("FRONTEND_ADDRESS", "frontend@fakemail.com")),
			Backend:  firstNonEmpty(raw.Departments.Backend, envOrDefault("BACKEND_ADDRESS", "backend@fakemail.com")),
			Sysops:   firstNonEmpty(raw.Departments.Sysops, envOrDefault("SYSOPS_ADDRESS", "sysops@fakemail.com")),
		},
		RedisURL:         firstNonEmpty(raw.Redis.URL, os.Getenv("REDIS_URL")),
		TicketsQueue:     firstNonEmpty(raw.Redis.Queues.Tickets, envOrDefault("TICKETS_QUEUE", "tickets")),
		AssistantAPIKey:  firstNonEmpty(raw.Assistant.APIKey, os.Getenv("ASSISTANT_API_KEY")),
		AssistantModel:   firstNonEmpty(raw.Assistant.Model, envOrDefault("ASSISTANT_MODEL", "gpt-4o-mini")),
		AssistantBaseURL: firstNonEmpty(raw.Assistant.BaseURL, os.Getenv("ASSISTANT_BASE_URL")),
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
