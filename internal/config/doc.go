// Package config provides configuration loading, merging, and validation
// for the uploader client and the stub upload server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetClientConfig] and [GetServerConfig].
package config
