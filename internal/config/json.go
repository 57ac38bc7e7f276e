// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// configuration file. Durations accept either strings ("300s") or numbers
// of nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		PlaintextPasswords bool   `json:"plaintext_passwords"`
		PasswordHashCost   int    `json:"password_hash_cost"`
		LogLevel           string `json:"log_level"`
		Version            string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Objects struct {
			Backend      string   `json:"backend"`
			Bucket       string   `json:"bucket"`
			Region       string   `json:"region"`
			Prefix       string   `json:"prefix"`
			URLExpires   Duration `json:"url_expires"`
			Endpoint     string   `json:"endpoint"`
			AccessKey    string   `json:"access_key"`
			SecretKey    string   `json:"secret_key"`
			UsePathStyle bool     `json:"use_path_style"`
		} `json:"objects,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Session struct {
		Backend      string   `json:"backend"`
		CookieName   string   `json:"cookie_name"`
		CookieSecure bool     `json:"cookie_secure"`
		SignKey      string   `json:"sign_key"`
		Issuer       string   `json:"issuer"`
		Duration     Duration `json:"duration"`
		Redis        struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"session,omitempty"`
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
			PlaintextPasswords: jsonCfg.App.PlaintextPasswords,
			PasswordHashCost:   jsonCfg.App.PasswordHashCost,
			LogLevel:           jsonCfg.App.LogLevel,
			Version:            jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Objects: Objects{
				Backend:      jsonCfg.Storage.Objects.Backend,
				Bucket:       jsonCfg.Storage.Objects.Bucket,
				Region:       jsonCfg.Storage.Objects.Region,
				Prefix:       jsonCfg.Storage.Objects.Prefix,
				URLExpires:   time.Duration(jsonCfg.Storage.Objects.URLExpires),
				Endpoint:     jsonCfg.Storage.Objects.Endpoint,
				AccessKey:    jsonCfg.Storage.Objects.AccessKey,
				SecretKey:    jsonCfg.Storage.Objects.SecretKey,
				UsePathStyle: jsonCfg.Storage.Objects.UsePathStyle,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
		Session: Session{
			Backend:      jsonCfg.Session.Backend,
			CookieName:   jsonCfg.Session.CookieName,
			CookieSecure: jsonCfg.Session.CookieSecure,
			SignKey:      jsonCfg.Session.SignKey,
			Issuer:       jsonCfg.Session.Issuer,
			Duration:     time.Duration(jsonCfg.Session.Duration),
			Redis: Redis{
				Address:  jsonCfg.Session.Redis.Address,
				Password: jsonCfg.Session.Redis.Password,
				DB:       jsonCfg.Session.Redis.DB,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
