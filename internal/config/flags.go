// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
)

var (
	errEmptyAddress = errors.New("empty api address")
	errHostPort     = errors.New("need address in a form `host:port` or `http(s)://host[:port][/path]`")
	errPortRange    = errors.New("port must be between 1 and 65535")
)

// APIAddress is the -a flag value: where the content API listens.
type APIAddress struct {
	Scheme string
	Host   string
	Port   int
	Path   string
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a content API address, host:port or http(s)://host[:port][/path]
//	-d local database DSN
//	-c/-config json file path with configs
//	-r resource to open (blogs, products)
//	-t API bearer token
//	-request-timeout request timeout (e.g., "15s")
//	-retries attempts per operation
//	-backoff linear backoff unit (e.g., "1s")
//	-debounce search debounce (e.g., "500ms")
//	-page-size items per page
//	-refresh-interval background refresh period, 0 disables
//	-upload-endpoint object storage host:port
//	-upload-bucket object storage bucket
//	-upload-access-key object storage access key
//	-upload-secret-key object storage secret key
//	-upload-ssl use https for object storage
//	-upload-public-url base of public object URLs
//	-upload-region bucket region
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var apiAddress APIAddress
	var cfg StructuredConfig

	fs.Var(&apiAddress, "a", "Content API address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Local database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.Resource, "r", "", "Resource to manage (blogs, products)")
	fs.StringVar(&cfg.App.APIToken, "t", "", "API bearer token")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.IntVar(&cfg.Sync.MaxRetries, "retries", 0, "Attempts per operation")
	fs.DurationVar(&cfg.Sync.BackoffUnit, "backoff", 0, "Linear backoff unit (e.g., 1s)")
	fs.DurationVar(&cfg.Sync.SearchDebounce, "debounce", 0, "Search debounce (e.g., 500ms)")
	fs.IntVar(&cfg.Sync.PageSize, "page-size", 0, "Items per page")
	fs.DurationVar(&cfg.Workers.RefreshInterval, "refresh-interval", 0, "Background refresh period, 0 disables")
	fs.StringVar(&cfg.Upload.Endpoint, "upload-endpoint", "", "Object storage host:port")
	fs.StringVar(&cfg.Upload.Bucket, "upload-bucket", "", "Object storage bucket")
	fs.StringVar(&cfg.Upload.AccessKey, "upload-access-key", "", "Object storage access key")
	fs.StringVar(&cfg.Upload.SecretKey, "upload-secret-key", "", "Object storage secret key")
	fs.BoolVar(&cfg.Upload.UseSSL, "upload-ssl", false, "Use https for object storage")
	fs.StringVar(&cfg.Upload.PublicURL, "upload-public-url", "", "Base of public object URLs")
	fs.StringVar(&cfg.Upload.Region, "upload-region", "", "Bucket region")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Adapter.HTTPAddress = apiAddress.String()
	return &cfg, nil
}

// String returns the address as given to Set, or "" when unset.
func (a *APIAddress) String() string {
	if a.Host == "" {
		return ""
	}

	hostPort := a.Host
	if a.Port != 0 {
		hostPort = net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
	}
	if a.Scheme == "" {
		return hostPort + a.Path
	}
	return a.Scheme + "://" + hostPort + a.Path
}

// Set accepts "host:port" or an http(s) URL such as
// "https://api.example.com/v1". Hosts may be names or IP addresses.
func (a *APIAddress) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errEmptyAddress
	}

	var parsed APIAddress
	hostPort := s
	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil {
			return fmt.Errorf("parse api address: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("unsupported scheme %q", u.Scheme)
		}
		parsed.Scheme = u.Scheme
		parsed.Path = strings.TrimRight(u.Path, "/")
		hostPort = u.Host
	}

	host, portStr, err := net.SplitHostPort(hostPort)
	switch {
	case err == nil:
		port, convErr := strconv.Atoi(portStr)
		if convErr != nil {
			return fmt.Errorf("invalid port %q: %w", portStr, convErr)
		}
		if port < 1 || port > 65535 {
			return errPortRange
		}
		parsed.Port = port
	case parsed.Scheme != "":
		// the scheme implies the port
		host = hostPort
	default:
		return errHostPort
	}

	if host == "" {
		return errHostPort
	}
	parsed.Host = host

	*a = parsed
	return nil
}
