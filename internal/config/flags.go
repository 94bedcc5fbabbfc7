package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a server HTTP address in format [host]:[port]
//	-grpc-address gRPC health endpoint address in format [host]:[port]
//	-d history database DSN
//	-db-driver history database driver (pgx or sqlite3)
//	-request-timeout server request timeout (e.g. "10s")
//	-v validator service URL used by the client
//	-adapter-timeout client request timeout (e.g. "10s")
//	-health-interval client health polling interval (e.g. "30s")
//	-input-limit maximum characters accepted by the card input
//	-hash-key fingerprint hash key
//	-log-level log level (debug, info, warn, error)
//	-log-file client log file path
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlagArgs(os.Args[1:])
}

func parseFlagArgs(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("card-validator", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, databaseDriver string
	var requestTimeout, adapterTimeout, healthInterval time.Duration
	var validatorAddress string
	var inputLimit int
	var hashKey, logLevel, logFile string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health address host:port")
	fs.StringVar(&databaseDSN, "d", "", "History database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "History database driver (pgx, sqlite3)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 10s)")
	fs.StringVar(&validatorAddress, "v", "", "Validator service URL")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Client health polling interval (e.g., 30s)")
	fs.IntVar(&inputLimit, "input-limit", 0, "Card input character limit")
	fs.StringVar(&hashKey, "hash-key", "", "Fingerprint hash key")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:  hashKey,
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    validatorAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers:      Workers{HealthInterval: healthInterval},
		Client:       Client{InputLimit: inputLimit},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty (all interfaces).
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
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
