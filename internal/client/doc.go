// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the stored wallet session, runs the terminal UI and shuts the
// session watch job and storage down when the UI exits.
package client
