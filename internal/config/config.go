// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level process configuration of the
// configuration server. It is populated by merging environment variables,
// command-line flags, an optional JSON file and finally [defaultConfig].
//
// It does not hold the served configuration document: that document lives at
// Storage.Document.Path and is read by the store on every request.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the files the server reads and writes.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds timeout settings for the HTTP server. The bind address is
	// taken from the configuration document, not from here.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the outbound upstream HTTP client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds switches for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is a free-form label of the running deployment, logged at
	// startup.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the file locations used by the application.
type Storage struct {
	// Document holds the location of the served configuration document.
	Document Document `envPrefix:"DOCUMENT_"`

	// ClientDownload holds the location where the resolved client download
	// URL is written.
	ClientDownload ClientDownload `envPrefix:"CLIENT_DOWNLOAD_"`
}

// Document locates the served configuration document.
type Document struct {
	// Path is the path of the JSON document.
	// Env: STORAGE_DOCUMENT_PATH
	Path string `env:"PATH"`
}

// ClientDownload locates the text file holding the latest client URL.
type ClientDownload struct {
	// Path is the path of the text file.
	// Env: STORAGE_CLIENT_DOWNLOAD_PATH
	Path string `env:"PATH"`
}

// Server holds timeout settings for the inbound HTTP server.
type Server struct {
	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds settings of the upstream HTTP client.
type Adapter struct {
	// UpstreamURL is the base URL of the official configuration host that
	// versions and announcements are fetched from.
	// Env: ADAPTER_UPSTREAM_URL
	UpstreamURL string `env:"UPSTREAM_URL"`

	// ClientDownloadURL is the URL that redirects to the latest client
	// package.
	// Env: ADAPTER_CLIENT_DOWNLOAD_URL
	ClientDownloadURL string `env:"CLIENT_DOWNLOAD_URL"`

	// RequestTimeout bounds every upstream request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds switches for background workers.
type Workers struct {
	// ResolveClientDownload enables the one-shot latest-client resolver.
	// Env: WORKERS_RESOLVE_CLIENT_DOWNLOAD
	ResolveClientDownload bool `env:"RESOLVE_CLIENT_DOWNLOAD"`
}

// GetStructuredConfig loads, merges, and validates the process configuration
// from all available sources. For every field the first source providing a
// non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
