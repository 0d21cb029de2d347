package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	flagConfig             = "config"
	flagAuthDir            = "auth-dir"
	flagDeviceName         = "device-name"
	flagOSName             = "os-name"
	flagConnectTimeout     = "connect-timeout"
	flagKeepAliveInterval  = "keepalive-interval"
	flagRetryDelay         = "retry-delay"
	flagFallbackRetryDelay = "fallback-retry-delay"
	flagMinDigits          = "min-digits"
	flagVersionURL         = "version-url"
	flagVersionTimeout     = "version-timeout"
	flagVersionFallback    = "version-fallback"
	flagAPIAddress         = "api-address"
	flagAPITimeout         = "api-timeout"
	flagLogFile            = "log-file"
	flagLogLevel           = "log-level"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterFlags defines all configuration flags on fs.
//
// Flags:
//
//	-c/--config              json file path with configs
//	--auth-dir               directory with persisted session material
//	--device-name            name shown in the phone's linked devices
//	--os-name                OS/browser name announced on pairing
//	--connect-timeout        connect timeout (e.g. "90s")
//	--keepalive-interval     keep-alive ping interval (e.g. "30s")
//	--retry-delay            reconnect delay after timeouts and lost connections
//	--fallback-retry-delay   reconnect delay after any other close
//	--min-digits             minimum digits in a recipient number
//	--version-url            protocol version discovery URL
//	--version-timeout        protocol version discovery timeout
//	--version-fallback       last-known-good protocol version
//	-a/--api-address         HTTP API address in format [host]:[port]
//	--api-timeout            HTTP API request timeout
//	--log-file               client log file
//	--log-level              log level
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(flagConfig, "c", "", "JSON config file path")
	fs.String(flagAuthDir, "", "Directory with persisted session material")
	fs.String(flagDeviceName, "", "Name shown in the phone's linked devices")
	fs.String(flagOSName, "", "OS/browser name announced on pairing")
	fs.Duration(flagConnectTimeout, 0, "Connect timeout (e.g., 90s)")
	fs.Duration(flagKeepAliveInterval, 0, "Keep-alive ping interval (e.g., 30s)")
	fs.Duration(flagRetryDelay, 0, "Reconnect delay after timeouts and lost connections")
	fs.Duration(flagFallbackRetryDelay, 0, "Reconnect delay after any other close")
	fs.Int(flagMinDigits, 0, "Minimum digits in a recipient number")
	fs.String(flagVersionURL, "", "Protocol version discovery URL")
	fs.Duration(flagVersionTimeout, 0, "Protocol version discovery timeout")
	fs.String(flagVersionFallback, "", "Last-known-good protocol version, e.g. 2.3000.1023223821")
	fs.VarP(&NetAddress{}, flagAPIAddress, "a", "HTTP API address host:port")
	fs.Duration(flagAPITimeout, 0, "HTTP API request timeout")
	fs.String(flagLogFile, "", "Client log file")
	fs.String(flagLogLevel, "", "Log level (debug, info, warn, error)")
}

// parseFlags collects the flags the user set explicitly. Unset flags stay
// zero so lower-priority sources can fill them.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	p := flagParser{fs: fs}

	p.str(flagConfig, &cfg.JSONFilePath)
	p.str(flagAuthDir, &cfg.Session.AuthDir)
	p.str(flagDeviceName, &cfg.Session.DeviceName)
	p.str(flagOSName, &cfg.Session.OSName)
	p.duration(flagConnectTimeout, &cfg.Connection.ConnectTimeout)
	p.duration(flagKeepAliveInterval, &cfg.Connection.KeepAliveInterval)
	p.duration(flagRetryDelay, &cfg.Connection.RetryDelay)
	p.duration(flagFallbackRetryDelay, &cfg.Connection.FallbackRetryDelay)
	p.integer(flagMinDigits, &cfg.Connection.MinRecipientDigits)
	p.str(flagVersionURL, &cfg.Version.DiscoveryURL)
	p.duration(flagVersionTimeout, &cfg.Version.DiscoveryTimeout)
	p.str(flagVersionFallback, &cfg.Version.Fallback)
	p.str(flagAPIAddress, &cfg.API.HTTPAddress)
	p.duration(flagAPITimeout, &cfg.API.RequestTimeout)
	p.str(flagLogFile, &cfg.Log.File)
	p.str(flagLogLevel, &cfg.Log.Level)

	if p.err != nil {
		return nil, p.err
	}
	return cfg, nil
}

type flagParser struct {
	fs  *pflag.FlagSet
	err error
}

func (p *flagParser) changed(name string) bool {
	f := p.fs.Lookup(name)
	return f != nil && f.Changed
}

func (p *flagParser) str(name string, dst *string) {
	if !p.changed(name) {
		return
	}
	*dst = p.fs.Lookup(name).Value.String()
}

func (p *flagParser) duration(name string, dst *time.Duration) {
	if !p.changed(name) {
		return
	}
	v, err := p.fs.GetDuration(name)
	if err != nil {
		p.err = errors.Join(p.err, err)
		return
	}
	*dst = v
}

func (p *flagParser) integer(name string, dst *int) {
	if !p.changed(name) {
		return
	}
	v, err := p.fs.GetInt(name)
	if err != nil {
		p.err = errors.Join(p.err, err)
		return
	}
	*dst = v
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type names the value kind in pflag usage output.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is empty or
// "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
