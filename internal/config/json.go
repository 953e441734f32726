package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DocumentPath       string `json:"document_path"`
		ClientDownloadPath string `json:"client_download_path"`
	} `json:"storage,omitempty"`

	Server struct {
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		UpstreamURL       string   `json:"upstream_url"`
		ClientDownloadURL string   `json:"client_download_url"`
		RequestTimeout    Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ResolveClientDownload bool `json:"resolve_client_download"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			Document:       Document{Path: jsonCfg.Storage.DocumentPath},
			ClientDownload: ClientDownload{Path: jsonCfg.Storage.ClientDownloadPath},
		},
		Server: Server{
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			UpstreamURL:       jsonCfg.Adapter.UpstreamURL,
			ClientDownloadURL: jsonCfg.Adapter.ClientDownloadURL,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			ResolveClientDownload: jsonCfg.Workers.ResolveClientDownload,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
