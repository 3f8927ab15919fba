package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses relay configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-env application environment (development|production)
//	-log-level log level
//	-pixel-id vendor pixel id
//	-access-token vendor access token
//	-capi-base-url vendor API base URL
//	-capi-version vendor API version
//	-capi-timeout outbound request timeout (e.g., "8s")
//	-rate-limit requests allowed per window
//	-rate-window rate limit window (e.g., "1m")
//	-redis-url redis URL for the shared rate-limit store
//	-failed-events-path failed-event log path
//	-trust-proxy take the client IP from proxy headers
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("capi-relay", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var appEnv, logLevel string
	var pixelID, accessToken, baseURL, apiVersion string
	var capiTimeout, rateWindow time.Duration
	var rateRequests int
	var redisURL, failedEventsPath string
	var trustProxy bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&appEnv, "env", "", "Application environment (development|production)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&pixelID, "pixel-id", "", "Vendor pixel id")
	fs.StringVar(&accessToken, "access-token", "", "Vendor access token")
	fs.StringVar(&baseURL, "capi-base-url", "", "Vendor API base URL")
	fs.StringVar(&apiVersion, "capi-version", "", "Vendor API version")
	fs.DurationVar(&capiTimeout, "capi-timeout", 0, "Outbound request timeout (e.g., 8s)")
	fs.IntVar(&rateRequests, "rate-limit", 0, "Requests allowed per window")
	fs.DurationVar(&rateWindow, "rate-window", 0, "Rate limit window (e.g., 1m)")
	fs.StringVar(&redisURL, "redis-url", "", "Redis URL for the rate-limit store")
	fs.StringVar(&failedEventsPath, "failed-events-path", "", "Failed-event log path")
	fs.BoolVar(&trustProxy, "trust-proxy", false, "Take the client IP from proxy headers")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Env:      appEnv,
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			TrustProxyHeaders: trustProxy,
		},
		CAPI: CAPI{
			AccessToken: accessToken,
			PixelID:     pixelID,
			BaseURL:     baseURL,
			APIVersion:  apiVersion,
			Timeout:     capiTimeout,
		},
		RateLimit: RateLimit{
			Requests: rateRequests,
			Window:   rateWindow,
			RedisURL: redisURL,
		},
		FailedEvents: FailedEvents{
			Path: failedEventsPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host means all interfaces. It validates the port
// range and checks IP correctness unless host is empty or "localhost".
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
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
