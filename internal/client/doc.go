// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Mekhanov

// Package client implements the interactive client application runtime.
//
// It wires the command loop, journal services, and background connectivity
// observation into a single process lifecycle.
package client
