package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-wa-sender/models"
	"github.com/spf13/pflag"
)

// ClientSession holds the credential location and device identity.
type ClientSession struct {
	// AuthDir is the directory with all persisted session material.
	AuthDir string
	// DeviceName is shown in the phone's list of linked devices.
	DeviceName string
	// OSName is the OS/browser name announced on pairing.
	OSName string
}

// ClientConnection holds transport timeouts and the reconnect policy.
type ClientConnection struct {
	ConnectTimeout     time.Duration
	KeepAliveInterval  time.Duration
	RetryDelay         time.Duration
	FallbackRetryDelay time.Duration
	MinRecipientDigits int
}

// ClientVersion holds the parsed protocol version discovery settings.
type ClientVersion struct {
	DiscoveryURL     string
	DiscoveryTimeout time.Duration
	Fallback         models.ProtocolVersion
}

// ClientAPI holds the HTTP send API settings. An empty HTTPAddress disables it.
type ClientAPI struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientLog holds the log destination and level.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the validated runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Session    ClientSession
	Connection ClientConnection
	Version    ClientVersion
	API        ClientAPI
	Log        ClientLog
}

// GetClientConfig builds the runtime config view from the merged structured
// configuration. fs is the parsed flag set of the running command and may be
// nil.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	fallback, err := models.ParseProtocolVersion(cfg.Version.Fallback)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidVersionConfigs, err)
	}

	return &ClientConfig{
		Session: ClientSession{
			AuthDir:    cfg.Session.AuthDir,
			DeviceName: cfg.Session.DeviceName,
			OSName:     cfg.Session.OSName,
		},
		Connection: ClientConnection{
			ConnectTimeout:     cfg.Connection.ConnectTimeout,
			KeepAliveInterval:  cfg.Connection.KeepAliveInterval,
			RetryDelay:         cfg.Connection.RetryDelay,
			FallbackRetryDelay: cfg.Connection.FallbackRetryDelay,
			MinRecipientDigits: cfg.Connection.MinRecipientDigits,
		},
		Version: ClientVersion{
			DiscoveryURL:     cfg.Version.DiscoveryURL,
			DiscoveryTimeout: cfg.Version.DiscoveryTimeout,
			Fallback:         fallback,
		},
		API: ClientAPI{
			HTTPAddress:    cfg.API.HTTPAddress,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}, nil
}
