// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrInvalidPlan       = errors.New("invalid plan")
	ErrInvalidStep       = errors.New("invalid step")
	ErrInvalidMethod     = errors.New("invalid method")
	ErrMissingParam      = errors.New("missing parameter")
	ErrNamedKeyNotFound  = errors.New("named key not found")
	ErrDuplicateKeyName  = errors.New("duplicate key name")
	ErrUnknownStep       = errors.New("step has no address")
	ErrUnexpectedError   = errors.New("step failed unexpectedly")
	ErrMissingError      = errors.New("step succeeded but was expected to fail")
	ErrAssertionFailed   = errors.New("assertion failed")
	ErrInvalidOperator   = errors.New("invalid operator")
)
