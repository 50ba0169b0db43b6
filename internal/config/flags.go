package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args. A nil args slice
// means os.Args[1:].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (postgres:// URL or SQLite file path)
//	-c/-config JSON or TOML file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-breach-url breach range API base URL
//	-breach-timeout breach range request timeout
//	-breach-rate breach lookups per second
//	-breach-burst breach rate limiter burst
//	-max-length maximum secret length
//	-max-bulk maximum bulk count
//	-max-words maximum passphrase word count
func ParseFlags(args []string) (*StructuredConfig, error) {
	if args == nil {
		args = os.Args[1:]
	}

	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("go-pass-gen", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON or TOML config file path (alias)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Breach.BaseURL, "breach-url", "", "Breach range API base URL")
	fs.DurationVar(&cfg.Breach.Timeout, "breach-timeout", 0, "Breach range request timeout")
	fs.Float64Var(&cfg.Server.BreachRateLimit, "breach-rate", 0, "Breach lookups per second")
	fs.IntVar(&cfg.Server.BreachRateBurst, "breach-burst", 0, "Breach rate limiter burst")
	fs.IntVar(&cfg.Generator.MaxLength, "max-length", 0, "Maximum secret length")
	fs.IntVar(&cfg.Generator.MaxBulkCount, "max-bulk", 0, "Maximum bulk count")
	fs.IntVar(&cfg.Generator.MaxWordCount, "max-words", 0, "Maximum passphrase word count")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	return cfg, nil
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
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
