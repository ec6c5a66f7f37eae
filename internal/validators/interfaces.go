// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Mekhanov

// Package validators provides input validation for drilling journal records.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Records are validated locally before any write, whether the write goes to
// the server or to the pending cache. The same rules apply on both paths, so
// a record that passes here is a record the server is expected to accept.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named struct fields.
	Validate(context.Context, any, ...string) error
}
