// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/config"
)

type Plan struct {
	// The name of the plan.
	Name string `json:"name" yaml:"name"`
	// A description of the plan.
	Description string `json:"description" yaml:"description"`
	// Steps to perform during simulation.
	Steps []Step `json:"steps" yaml:"steps"`
}

type Step struct {
	// Description of the step.
	Description string `json:"description" yaml:"description"`
	// The operation to perform. (required)
	Method Method `json:"method" yaml:"method"`
	// The named key that signs and pays for the step. Defaults to the
	// faucet.
	Caller string `json:"caller,omitempty" yaml:"caller,omitempty"`
	// The parameters of the method.
	Params Params `json:"params" yaml:"params"`
	// Define required assertions against this step.
	Require *Require `json:"require,omitempty" yaml:"require,omitempty"`
}

type Method string

const (
	// Create a named key, optionally funded by the faucet.
	KeyMethod Method = "key"
	// Move native balance from the caller to an account.
	TransferMethod Method = "transfer"
	// Create a mint controlled by the caller.
	CreateMintMethod Method = "create_mint"
	// Create an empty holding of a mint.
	CreateHoldingMethod Method = "create_holding"
	// Mint tokens into a holding. The caller must be the mint authority.
	MintToMethod Method = "mint_to"
	// Create a keyed buffer owned by the echo program.
	CreateBufferMethod Method = "create_buffer"

	EchoMethod                 Method = "echo"
	InitAuthorizedBufferMethod Method = "init_authorized_buffer"
	AuthorizedEchoMethod       Method = "authorized_echo"
	InitVendingBufferMethod    Method = "init_vending_buffer"
	VendingEchoMethod          Method = "vending_echo"

	// Read the native balance of an account.
	BalanceMethod Method = "balance"
	// Read the token amount of a holding.
	HoldingMethod Method = "holding"
	// Read the data of a buffer.
	ReadMethod Method = "read"
)

// Params holds every parameter a method may take. Accounts are given as a
// key name, a name assigned by an earlier step, "step_N" for the address
// created by step N, or a base58 address.
type Params struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Account  string `json:"account,omitempty" yaml:"account,omitempty"`
	Mint     string `json:"mint,omitempty" yaml:"mint,omitempty"`
	Holding  string `json:"holding,omitempty" yaml:"holding,omitempty"`
	Buffer   string `json:"buffer,omitempty" yaml:"buffer,omitempty"`
	Data     string `json:"data,omitempty" yaml:"data,omitempty"`
	Amount   uint64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	Price    uint64 `json:"price,omitempty" yaml:"price,omitempty"`
	Seed     uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	Capacity uint32 `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Decimals uint8  `json:"decimals,omitempty" yaml:"decimals,omitempty"`
}

type Require struct {
	// The step must fail with an error containing this text.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
	// Assertion against the balance or amount returned by the step.
	Result *ResultAssertion `json:"result,omitempty" yaml:"result,omitempty"`
}

type ResultAssertion struct {
	// The operator to use for the assertion.
	Operator string `json:"operator" yaml:"operator"`
	// The value to compare against.
	Value string `json:"value" yaml:"value"`
}

type Operator string

const (
	NumericGt Operator = ">"
	NumericLt Operator = "<"
	NumericGe Operator = ">="
	NumericLe Operator = "<="
	NumericEq Operator = "=="
	NumericNe Operator = "!="
)

func newResponse(id int) *Response {
	return &Response{
		ID: id,
	}
}

type Response struct {
	// The index of the step that generated this response.
	ID int `json:"id"`
	// The result of the step.
	Result Result `json:"result"`
	// The error message if available.
	Error string `json:"error,omitempty"`
}

type Result struct {
	// The id of the transaction the step executed.
	TxID string `json:"txID,omitempty"`
	// The address the step created or read.
	Address string `json:"address,omitempty"`
	// The native balance read by the step.
	Balance uint64 `json:"balance,omitempty"`
	// The token amount read by the step.
	Amount uint64 `json:"amount,omitempty"`
	// The account data read by the step.
	Data codec.Bytes `json:"data,omitempty"`
	// An optional message.
	Msg string `json:"msg,omitempty"`
}

func (r *Response) setError(err error) {
	r.Error = err.Error()
}

// Print writes the response as a single JSON line.
func (r *Response) Print(w io.Writer) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// validateAssertion returns true if [actual] satisfies [assertion].
func validateAssertion(actual uint64, assertion *ResultAssertion) (bool, error) {
	value, err := strconv.ParseUint(assertion.Value, 10, 64)
	if err != nil {
		return false, err
	}

	switch Operator(assertion.Operator) {
	case NumericGt:
		return actual > value, nil
	case NumericLt:
		return actual < value, nil
	case NumericGe:
		return actual >= value, nil
	case NumericLe:
		return actual <= value, nil
	case NumericEq:
		return actual == value, nil
	case NumericNe:
		return actual != value, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidOperator, assertion.Operator)
	}
}

func unmarshalPlan(b []byte) (*Plan, error) {
	var p Plan
	if err := config.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	return &p, nil
}

// verifyStep checks that [step] names a known method and carries the
// parameters the method needs.
func verifyStep(i int, step *Step) error {
	var missing string
	p := &step.Params
	switch step.Method {
	case KeyMethod, CreateMintMethod:
		if len(p.Name) == 0 {
			missing = "name"
		}
	case TransferMethod, BalanceMethod:
		if len(p.Account) == 0 {
			missing = "account"
		}
	case CreateHoldingMethod:
		switch {
		case len(p.Name) == 0:
			missing = "name"
		case len(p.Mint) == 0:
			missing = "mint"
		}
	case MintToMethod:
		switch {
		case len(p.Mint) == 0:
			missing = "mint"
		case len(p.Holding) == 0:
			missing = "holding"
		}
	case CreateBufferMethod:
		switch {
		case len(p.Name) == 0:
			missing = "name"
		case p.Capacity == 0:
			missing = "capacity"
		}
	case EchoMethod, AuthorizedEchoMethod, ReadMethod:
		if len(p.Buffer) == 0 {
			missing = "buffer"
		}
	case InitAuthorizedBufferMethod:
	case InitVendingBufferMethod:
		if len(p.Mint) == 0 {
			missing = "mint"
		}
	case VendingEchoMethod:
		switch {
		case len(p.Buffer) == 0:
			missing = "buffer"
		case len(p.Holding) == 0:
			missing = "holding"
		case len(p.Mint) == 0:
			missing = "mint"
		}
	case HoldingMethod:
		if len(p.Holding) == 0 {
			missing = "holding"
		}
	default:
		return fmt.Errorf("%w %d: %w: %q", ErrInvalidStep, i, ErrInvalidMethod, step.Method)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w %d: %w: %s requires %s", ErrInvalidStep, i, ErrMissingParam, step.Method, missing)
	}
	return nil
}
