// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the card validator client runtime.
//
// It runs the terminal UI in the foreground and the validator health check
// in the background for the lifetime of a single process.
package client
