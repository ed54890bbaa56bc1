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

// parseFlags parses command-line flags from args.
//
// Flags:
//
//	-u upload service base URL
//	-upload-path upload endpoint path
//	-request-timeout per-batch request timeout (e.g., "30s", "1m")
//	-token bearer token
//	-token-file file holding the bearer token
//	-email submitter email (headless mode)
//	-folder destination folder ID (headless mode)
//	-a stub server address in format [host]:[port]
//	-server-timeout stub server request timeout
//	-c/-config json file path with configs
//	-version print build information and exit
//
// Remaining positional arguments are the files or directories to upload.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("uploader", flag.ContinueOnError)

	var serverAddress NetAddress
	var uploadAddress, uploadPath string
	var requestTimeout, serverTimeout time.Duration
	var token, tokenFile string
	var email, folderID string
	var jsonConfigPath string
	var showVersion bool

	fs.StringVar(&uploadAddress, "u", "", "Upload service base URL")
	fs.StringVar(&uploadPath, "upload-path", "", "Upload endpoint path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Per-batch request timeout (e.g., 30s, 1m)")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.StringVar(&tokenFile, "token-file", "", "File holding the bearer token")
	fs.StringVar(&email, "email", "", "Submitter email")
	fs.StringVar(&folderID, "folder", "", "Destination folder ID")
	fs.Var(&serverAddress, "a", "Stub server net address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Stub server request timeout")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&showVersion, "version", false, "Print build information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    uploadAddress,
			UploadPath:     uploadPath,
			RequestTimeout: requestTimeout,
		},
		Auth: Auth{
			Token:     token,
			TokenFile: tokenFile,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Upload: Upload{
			Email:    email,
			FolderID: folderID,
			Paths:    fs.Args(),
		},
		ShowVersion:  showVersion,
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
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
