package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses command-line flags from args (without the program name)
// into a fresh [StructuredConfig]. Unset flags stay zero so that they do not
// shadow later sources during the merge.
//
// Flags:
//
//	-d document path
//	-client-download-path path of the resolved client URL file
//	-c/-config json file path with configs
//	-version-label deployment version label
//	-log-level log level (debug, info, warn, error)
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-upstream-url base URL of the official configuration host
//	-client-download-url URL redirecting to the latest client package
//	-upstream-timeout upstream request timeout
//	-resolve-client-download enable the latest-client resolver
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var (
		documentPath          string
		clientDownloadPath    string
		jsonConfigPath        string
		versionLabel          string
		logLevel              string
		requestTimeout        time.Duration
		shutdownTimeout       time.Duration
		upstreamURL           string
		clientDownloadURL     string
		upstreamTimeout       time.Duration
		resolveClientDownload bool
	)

	fs.StringVar(&documentPath, "d", "", "Configuration document path")
	fs.StringVar(&clientDownloadPath, "client-download-path", "", "Path of the resolved client URL file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&versionLabel, "version-label", "", "Deployment version label")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 5s)")
	fs.StringVar(&upstreamURL, "upstream-url", "", "Base URL of the official configuration host")
	fs.StringVar(&clientDownloadURL, "client-download-url", "", "URL redirecting to the latest client package")
	fs.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Upstream request timeout (e.g., 30s)")
	fs.BoolVar(&resolveClientDownload, "resolve-client-download", false, "Resolve the latest client download URL at startup")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:  versionLabel,
			LogLevel: logLevel,
		},
		Storage: Storage{
			Document:       Document{Path: documentPath},
			ClientDownload: ClientDownload{Path: clientDownloadPath},
		},
		Server: Server{
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Adapter: Adapter{
			UpstreamURL:       upstreamURL,
			ClientDownloadURL: clientDownloadURL,
			RequestTimeout:    upstreamTimeout,
		},
		Workers: Workers{
			ResolveClientDownload: resolveClientDownload,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
