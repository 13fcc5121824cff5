// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks shortage and account input before it reaches
// the stores.
//
// Field errors wrap models.ErrValidation and name the rejected field, so the
// shell can show the reason as is. Passing field
// names to Validate limits the check to those fields. A form can use that to
// validate one input at a time.
package validators

import "context"

// Validator validates one supported value, optionally limited to fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
