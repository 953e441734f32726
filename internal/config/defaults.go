package config

import "time"

const (
	defaultDocumentPath       = "./config/config.json"
	defaultClientDownloadPath = "./game.txt"
	defaultUpstreamURL        = "https://ak-conf.hypergryph.com"
	defaultClientDownloadURL  = "https://ak.hypergryph.com/downloads/android_lastest"
	defaultLogLevel           = "debug"
	defaultAppVersion         = "N/A"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  defaultAppVersion,
			LogLevel: defaultLogLevel,
		},
		Storage: Storage{
			Document:       Document{Path: defaultDocumentPath},
			ClientDownload: ClientDownload{Path: defaultClientDownloadPath},
		},
		Server: Server{
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Adapter: Adapter{
			UpstreamURL:       defaultUpstreamURL,
			ClientDownloadURL: defaultClientDownloadURL,
			RequestTimeout:    30 * time.Second,
		},
	}
}
