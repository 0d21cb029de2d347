package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string durations.
type StructuredJSONConfig struct {
	Session struct {
		AuthDir    string `json:"auth_dir"`
		DeviceName string `json:"device_name"`
		OSName     string `json:"os_name"`
	} `json:"session,omitempty"`

	Connection struct {
		ConnectTimeout     Duration `json:"connect_timeout"`
		KeepAliveInterval  Duration `json:"keepalive_interval"`
		RetryDelay         Duration `json:"retry_delay"`
		FallbackRetryDelay Duration `json:"fallback_retry_delay"`
		MinRecipientDigits int      `json:"min_recipient_digits"`
	} `json:"connection,omitempty"`

	Version struct {
		DiscoveryURL     string   `json:"discovery_url"`
		DiscoveryTimeout Duration `json:"discovery_timeout"`
		Fallback         string   `json:"fallback"`
	} `json:"version,omitempty"`

	API struct {
		HTTPAddress    string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
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
		Session: Session{
			AuthDir:    jsonCfg.Session.AuthDir,
			DeviceName: jsonCfg.Session.DeviceName,
			OSName:     jsonCfg.Session.OSName,
		},
		Connection: Connection{
			ConnectTimeout:     time.Duration(jsonCfg.Connection.ConnectTimeout),
			KeepAliveInterval:  time.Duration(jsonCfg.Connection.KeepAliveInterval),
			RetryDelay:         time.Duration(jsonCfg.Connection.RetryDelay),
			FallbackRetryDelay: time.Duration(jsonCfg.Connection.FallbackRetryDelay),
			MinRecipientDigits: jsonCfg.Connection.MinRecipientDigits,
		},
		Version: Version{
			DiscoveryURL:     jsonCfg.Version.DiscoveryURL,
			DiscoveryTimeout: time.Duration(jsonCfg.Version.DiscoveryTimeout),
			Fallback:         jsonCfg.Version.Fallback,
		},
		API: API{
			HTTPAddress:    jsonCfg.API.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
