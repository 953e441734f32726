// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Document.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: non-positive request timeout", ErrInvalidAdapterConfigs)
	}
	if _, err := url.ParseRequestURI(cfg.Adapter.UpstreamURL); err != nil {
		return fmt.Errorf("%w: upstream url: %w", ErrInvalidAdapterConfigs, err)
	}

	if cfg.Workers.ResolveClientDownload {
		if cfg.Storage.ClientDownload.Path == "" {
			return fmt.Errorf("%w: client download path is empty", ErrInvalidWorkerConfigs)
		}
		if _, err := url.ParseRequestURI(cfg.Adapter.ClientDownloadURL); err != nil {
			return fmt.Errorf("%w: client download url: %w", ErrInvalidWorkerConfigs, err)
		}
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}
