// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the upload form before anything is sent.
//
// Validation happens on the caller side: the batch uploader trusts its
// input and leaves the final word to the upload service. Every rule that
// fails contributes its own message, so one submit can report all problems
// at once.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
