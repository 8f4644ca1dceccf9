// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		APIToken string `json:"api_token"`
		Resource string `json:"resource"`
		Version  string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Upload struct {
		Endpoint  string `json:"endpoint"`
		AccessKey string `json:"access_key"`
		SecretKey string `json:"secret_key"`
		Bucket    string `json:"bucket"`
		UseSSL    bool   `json:"use_ssl"`
		PublicURL string `json:"public_url"`
		Region    string `json:"region"`
	} `json:"upload,omitempty"`

	Sync struct {
		MaxRetries     int      `json:"max_retries"`
		BackoffUnit    Duration `json:"backoff_unit"`
		SearchDebounce Duration `json:"search_debounce"`
		PageSize       int      `json:"page_size"`
	} `json:"sync,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
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
			APIToken: jsonCfg.App.APIToken,
			Resource: jsonCfg.App.Resource,
			Version:  jsonCfg.App.Version,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Upload: Upload{
			Endpoint:  jsonCfg.Upload.Endpoint,
			AccessKey: jsonCfg.Upload.AccessKey,
			SecretKey: jsonCfg.Upload.SecretKey,
			Bucket:    jsonCfg.Upload.Bucket,
			UseSSL:    jsonCfg.Upload.UseSSL,
			PublicURL: jsonCfg.Upload.PublicURL,
			Region:    jsonCfg.Upload.Region,
		},
		Sync: Sync{
			MaxRetries:     jsonCfg.Sync.MaxRetries,
			BackoffUnit:    time.Duration(jsonCfg.Sync.BackoffUnit),
			SearchDebounce: time.Duration(jsonCfg.Sync.SearchDebounce),
			PageSize:       jsonCfg.Sync.PageSize,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
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
