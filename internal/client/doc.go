// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the uploader client runtime.
//
// It runs either the interactive upload form or, when paths are given on
// the command line, a single headless upload that prints the server's
// records as JSON.
package client
