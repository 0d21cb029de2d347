package config

import "time"

// Built-in defaults. They are the lowest-priority source of the merge.
const (
	DefaultAuthDir            = "auth_info"
	DefaultDeviceName         = "WhatsApp Sender"
	DefaultOSName             = "Chrome"
	DefaultConnectTimeout     = 90 * time.Second
	DefaultKeepAliveInterval  = 30 * time.Second
	DefaultRetryDelay         = 5 * time.Second
	DefaultFallbackRetryDelay = 3 * time.Second
	DefaultMinRecipientDigits = 10
	DefaultDiscoveryURL       = "https://web.whatsapp.com/sw.js"
	DefaultDiscoveryTimeout   = 10 * time.Second
	DefaultFallbackVersion    = "2.3000.1023223821"
	DefaultAPIRequestTimeout  = 30 * time.Second
	DefaultLogLevel           = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Session: Session{
			AuthDir:    DefaultAuthDir,
			DeviceName: DefaultDeviceName,
			OSName:     DefaultOSName,
		},
		Connection: Connection{
			ConnectTimeout:     DefaultConnectTimeout,
			KeepAliveInterval:  DefaultKeepAliveInterval,
			RetryDelay:         DefaultRetryDelay,
			FallbackRetryDelay: DefaultFallbackRetryDelay,
			MinRecipientDigits: DefaultMinRecipientDigits,
		},
		Version: Version{
			DiscoveryURL:     DefaultDiscoveryURL,
			DiscoveryTimeout: DefaultDiscoveryTimeout,
			Fallback:         DefaultFallbackVersion,
		},
		API: API{
			RequestTimeout: DefaultAPIRequestTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
