/*
Copyright 2026 the Orchard QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the public reference deployment of the bookstore API.
const DefaultBaseURL = "https://fakerestapi.azurewebsites.net"

// Seed sizes and ID ranges of the reference deployment. Books are seeded
// 1..200 and authors 1..595; IDs generated for created entities live in a
// disjoint higher range so parallel scenarios never collide with seed data.
const (
	DefaultSeededBookCount   = 200
	DefaultSeededAuthorCount = 595
	DefaultNewIDMin          = 10000
	DefaultNewIDMax          = 999999
)

type TestConfig struct {
	BaseURL           string
	RequestTimeout    time.Duration
	SeededBookCount   int
	SeededAuthorCount int
	NewIDMin          int
	NewIDMax          int
	LogRequests       bool
	LogResponses      bool
}

// LoadTestConfig loads configuration from environment variables and .env
// files. Every value has a default suitable for the public reference
// deployment, so an empty environment is valid.
func LoadTestConfig() *TestConfig {
	loadEnvFile()

	return &TestConfig{
		BaseURL:           getStringWithDefault("BOOKSTORE_BASE_URL", DefaultBaseURL),
		RequestTimeout:    getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		SeededBookCount:   getIntWithDefault("SEEDED_BOOK_COUNT", DefaultSeededBookCount),
		SeededAuthorCount: getIntWithDefault("SEEDED_AUTHOR_COUNT", DefaultSeededAuthorCount),
		NewIDMin:          getIntWithDefault("NEW_ID_MIN", DefaultNewIDMin),
		NewIDMax:          getIntWithDefault("NEW_ID_MAX", DefaultNewIDMax),
		LogRequests:       getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:      getBoolWithDefault("LOG_RESPONSES", false),
	}
}

// IsReferenceDeployment reports whether the suite targets the public demo
// endpoint. Assertions on exact seed sizes only hold there.
func (c *TestConfig) IsReferenceDeployment() bool {
	return c.BaseURL == DefaultBaseURL
}

func getStringWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getIntWithDefault gets an integer from environment variable or returns default.
func getIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../.env",    // From test/api directory
		"../../.env", // From test/api/suites directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
