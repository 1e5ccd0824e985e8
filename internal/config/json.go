package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	Vault struct {
		DB struct {
			Path string `json:"path"`
		} `json:"db,omitempty"`
		KeyFilePath string `json:"key_file"`
	} `json:"vault,omitempty"`

	Mail struct {
		BaseURL        string   `json:"base_url"`
		APIToken       string   `json:"api_token"`
		Sender         string   `json:"sender"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"mail,omitempty"`

	Session struct {
		SignKey          string   `json:"sign_key"`
		Issuer           string   `json:"issuer"`
		InactivityWindow Duration `json:"inactivity_window"`
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
		Vault: Vault{
			DB:          VaultDB{Path: jsonCfg.Vault.DB.Path},
			KeyFilePath: jsonCfg.Vault.KeyFilePath,
		},
		Mail: Mail{
			BaseURL:        jsonCfg.Mail.BaseURL,
			APIToken:       jsonCfg.Mail.APIToken,
			Sender:         jsonCfg.Mail.Sender,
			RequestTimeout: time.Duration(jsonCfg.Mail.RequestTimeout),
		},
		Session: Session{
			SignKey:          jsonCfg.Session.SignKey,
			Issuer:           jsonCfg.Session.Issuer,
			InactivityWindow: time.Duration(jsonCfg.Session.InactivityWindow),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
