// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ParseFlags parses command-line configuration flags from args (without the
// program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-driver database driver (sqlite3 or pgx)
//	-d database DSN
//	-object-backend object store backend (s3 or minio)
//	-bucket object store bucket
//	-region object store region
//	-prefix object key prefix
//	-url-expires pre-signed URL validity (e.g., "300s")
//	-endpoint object store endpoint override
//	-session-backend session backend (cookie or redis)
//	-session-sign-key session signing key
//	-log-level log level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var dbDriver, databaseDSN string
	var objectBackend, bucket, region, prefix, endpoint string
	var urlExpires time.Duration
	var sessionBackend, sessionSignKey string
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("go-user-profile", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&dbDriver, "driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&objectBackend, "object-backend", "", "Object store backend (s3, minio)")
	fs.StringVar(&bucket, "bucket", "", "Object store bucket")
	fs.StringVar(&region, "region", "", "Object store region")
	fs.StringVar(&prefix, "prefix", "", "Object key prefix")
	fs.DurationVar(&urlExpires, "url-expires", 0, "Pre-signed URL validity (e.g., 300s)")
	fs.StringVar(&endpoint, "endpoint", "", "Object store endpoint override")
	fs.StringVar(&sessionBackend, "session-backend", "", "Session backend (cookie, redis)")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session signing key")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
			Objects: Objects{
				Backend:    objectBackend,
				Bucket:     bucket,
				Region:     region,
				Prefix:     prefix,
				URLExpires: urlExpires,
				Endpoint:   endpoint,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			Backend: sessionBackend,
			SignKey: sessionSignKey,
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

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
