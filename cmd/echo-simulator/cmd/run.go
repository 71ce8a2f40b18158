// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/echovm/client"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/config"
	"github.com/ava-labs/echovm/crypto/ed25519"
	"github.com/ava-labs/echovm/ledger"
)

const faucetName = "faucet"

type runCmd struct {
	plan   *Plan
	sim    *simulator
	client *client.Client
	out    io.Writer

	nonce uint64
	keys  map[string]ed25519.PrivateKey
	// names maps key names, names given by steps and "step_N" to addresses.
	names map[string]codec.Address
}

func newRunCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "run [path]",
		Short: "Run a simulation plan, use - to read it from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planBytes, err := readPlan(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			cfg, err := load()
			if err != nil {
				return err
			}
			sim, err := newSimulator(cfg)
			if err != nil {
				return err
			}
			defer sim.Close()

			r, err := newRunner(sim, planBytes, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.Run(cmd.Context())
		},
	}
}

func readPlan(stdin io.Reader, arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(arg)
}

func newRunner(sim *simulator, planBytes []byte, out io.Writer) (*runCmd, error) {
	plan, err := unmarshalPlan(planBytes)
	if err != nil {
		return nil, err
	}
	r := &runCmd{
		plan:   plan,
		sim:    sim,
		client: client.New(sim.programID),
		out:    out,
		keys:   map[string]ed25519.PrivateKey{faucetName: sim.faucet},
		names:  map[string]codec.Address{faucetName: sim.faucet.Address()},
	}
	return r, r.Verify()
}

func (c *runCmd) Verify() error {
	if len(c.plan.Steps) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPlan, "no steps found")
	}
	for i := range c.plan.Steps {
		if err := verifyStep(i, &c.plan.Steps[i]); err != nil {
			return err
		}
	}
	return nil
}

// Run executes every step and prints one response per step. It stops at the
// first step whose outcome does not match its requirements.
func (c *runCmd) Run(ctx context.Context) error {
	c.sim.log.Info("simulation",
		zap.String("plan", c.plan.Name),
		zap.String("description", c.plan.Description),
	)

	for i := range c.plan.Steps {
		step := &c.plan.Steps[i]
		c.sim.log.Info("simulation",
			zap.Int("step", i),
			zap.String("description", step.Description),
			zap.String("method", string(step.Method)),
			zap.String("caller", step.Caller),
		)

		resp := newResponse(i)
		stepErr := c.runStep(ctx, i, step, resp)
		if stepErr != nil {
			resp.setError(stepErr)
		}
		if err := resp.Print(c.out); err != nil {
			return err
		}
		if err := checkRequire(i, step.Method, step.Require, resp, stepErr); err != nil {
			return err
		}
	}
	return nil
}

func checkRequire(i int, method Method, require *Require, resp *Response, stepErr error) error {
	if require == nil || len(require.Error) == 0 {
		if stepErr != nil {
			return fmt.Errorf("%w: step %d: %w", ErrUnexpectedError, i, stepErr)
		}
	} else {
		if stepErr == nil {
			return fmt.Errorf("%w: step %d", ErrMissingError, i)
		}
		if !strings.Contains(stepErr.Error(), require.Error) {
			return fmt.Errorf("%w: step %d: %w", ErrUnexpectedError, i, stepErr)
		}
	}
	if require == nil || require.Result == nil {
		return nil
	}
	actual := resp.Result.Balance
	if method == HoldingMethod {
		actual = resp.Result.Amount
	}
	ok, err := validateAssertion(actual, require.Result)
	if err != nil {
		return fmt.Errorf("step %d: %w", i, err)
	}
	if !ok {
		return fmt.Errorf("%w: step %d: %d %s %s", ErrAssertionFailed, i, actual, require.Result.Operator, require.Result.Value)
	}
	return nil
}

func (c *runCmd) runStep(ctx context.Context, i int, step *Step, resp *Response) error {
	caller, err := c.caller(step.Caller)
	if err != nil {
		return err
	}
	p := &step.Params

	switch step.Method {
	case KeyMethod:
		if _, ok := c.keys[p.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateKeyName, p.Name)
		}
		k, err := ed25519.GeneratePrivateKey()
		if err != nil {
			return err
		}
		if p.Amount > 0 {
			ins, err := ledger.TransferInstruction(caller.Address(), k.Address(), p.Amount)
			if err != nil {
				return err
			}
			if err := c.execute(ctx, resp, []ed25519.PrivateKey{caller}, ins); err != nil {
				return err
			}
		}
		c.keys[p.Name] = k
		c.setName(i, p.Name, k.Address(), resp)
		resp.Result.Msg = fmt.Sprintf("created named key %s", p.Name)
		return nil

	case TransferMethod:
		to, err := c.resolve(p.Account)
		if err != nil {
			return err
		}
		ins, err := ledger.TransferInstruction(caller.Address(), to, p.Amount)
		if err != nil {
			return err
		}
		return c.execute(ctx, resp, []ed25519.PrivateKey{caller}, ins)

	case CreateMintMethod:
		mint, err := ed25519.GeneratePrivateKey()
		if err != nil {
			return err
		}
		create, err := c.createAccount(caller.Address(), mint.Address(), ledger.MintLen, ledger.TokenProgramID)
		if err != nil {
			return err
		}
		initialize, err := ledger.InitializeMintInstruction(mint.Address(), caller.Address(), p.Decimals)
		if err != nil {
			return err
		}
		if err := c.execute(ctx, resp, []ed25519.PrivateKey{caller, mint}, create, initialize); err != nil {
			return err
		}
		c.setName(i, p.Name, mint.Address(), resp)
		return nil

	case CreateHoldingMethod:
		mint, err := c.resolve(p.Mint)
		if err != nil {
			return err
		}
		owner := caller.Address()
		if len(p.Account) > 0 {
			if owner, err = c.resolve(p.Account); err != nil {
				return err
			}
		}
		holding, err := ed25519.GeneratePrivateKey()
		if err != nil {
			return err
		}
		create, err := c.createAccount(caller.Address(), holding.Address(), ledger.HoldingLen, ledger.TokenProgramID)
		if err != nil {
			return err
		}
		initialize, err := ledger.InitializeHoldingInstruction(holding.Address(), mint, owner)
		if err != nil {
			return err
		}
		if err := c.execute(ctx, resp, []ed25519.PrivateKey{caller, holding}, create, initialize); err != nil {
			return err
		}
		c.setName(i, p.Name, holding.Address(), resp)
		return nil

	case MintToMethod:
		mint, err := c.resolve(p.Mint)
		if err != nil {
			return err
		}
		holding, err := c.resolve(p.Holding)
		if err != nil {
			return err
		}
		ins, err := ledger.MintToInstruction(mint, holding, caller.Address(), p.Amount)
		if err != nil {
			return err
		}
		return c.execute(ctx, resp, []ed25519.PrivateKey{caller}, ins)

	case CreateBufferMethod:
		buffer, err := ed25519.GeneratePrivateKey()
		if err != nil {
			return err
		}
		ins, err := c.createAccount(caller.Address(), buffer.Address(), uint64(p.Capacity), c.sim.programID)
		if err != nil {
			return err
		}
		if err := c.execute(ctx, resp, []ed25519.PrivateKey{caller, buffer}, ins); err != nil {
			return err
		}
		c.setName(i, p.Name, buffer.Address(), resp)
		return nil

	case EchoMethod:
		buffer, err := c.resolve(p.Buffer)
		if err != nil {
			return err
		}
		ins, err := c.client.Echo(buffer, []byte(p.Data))
		if err != nil {
			return err
		}
		return c.execute(ctx, resp, []ed25519.PrivateKey{caller}, ins)

	case InitAuthorizedBufferMethod:
		ins, err := c.client.InitAuthorizedBuffer(caller.Address(), p.Seed, p.Capacity)
		if err != nil {
			return err
		}
		if err := c.execute(ctx, resp, []ed25519.PrivateKey{caller}, ins); err != nil {
			return err
		}
		c.setName(i, p.Name, ins.Accounts[0].Address, resp)
		return nil

	case AuthorizedEchoMethod:
		buffer, err := c.resolve(p.Buffer)
		if err != nil {
			return err
		}
		ins, err := c.client.AuthorizedEcho(buffer, caller.Address(), []byte(p.Data))
		if err != nil {
			return err
		}
		return c.execute(ctx, resp, []ed25519.PrivateKey{caller}, ins)

	case InitVendingBufferMethod:
		mint, err := c.resolve(p.Mint)
		if err != nil {
			return err
		}
		ins, err := c.client.InitVendingBuffer(mint, caller.Address(), p.Price, p.Capacity)
		if err != nil {
			return err
		}
		if err := c.execute(ctx, resp, []ed25519.PrivateKey{caller}, ins); err != nil {
			return err
		}
		c.setName(i, p.Name, ins.Accounts[0].Address, resp)
		return nil

	case VendingEchoMethod:
		buffer, err := c.resolve(p.Buffer)
		if err != nil {
			return err
		}
		holding, err := c.resolve(p.Holding)
		if err != nil {
			return err
		}
		mint, err := c.resolve(p.Mint)
		if err != nil {
			return err
		}
		ins, err := c.client.VendingEcho(buffer, caller.Address(), holding, mint, []byte(p.Data))
		if err != nil {
			return err
		}
		return c.execute(ctx, resp, []ed25519.PrivateKey{caller}, ins)

	case BalanceMethod:
		addr, err := c.resolve(p.Account)
		if err != nil {
			return err
		}
		a, err := c.sim.ledger.GetAccount(ctx, addr)
		if err != nil {
			return err
		}
		resp.Result.Address = addr.String()
		resp.Result.Balance = a.Balance
		return nil

	case HoldingMethod:
		addr, err := c.resolve(p.Holding)
		if err != nil {
			return err
		}
		h, err := c.sim.ledger.Holding(ctx, addr)
		if err != nil {
			return err
		}
		resp.Result.Address = addr.String()
		resp.Result.Amount = h.Amount
		return nil

	case ReadMethod:
		addr, err := c.resolve(p.Buffer)
		if err != nil {
			return err
		}
		a, err := c.sim.ledger.GetAccount(ctx, addr)
		if err != nil {
			return err
		}
		resp.Result.Address = addr.String()
		resp.Result.Data = a.Data
		resp.Result.Msg = string(bytes.TrimRight(a.Data, "\x00"))
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidMethod, step.Method)
}

// createAccount funds a rent exempt account of [space] bytes.
func (c *runCmd) createAccount(payer, target codec.Address, space uint64, owner codec.Address) (*ledger.Instruction, error) {
	balance := c.sim.ledger.Rules().MinimumBalance(space)
	return ledger.CreateAccountInstruction(payer, target, balance, space, owner)
}

func (c *runCmd) execute(ctx context.Context, resp *Response, signers []ed25519.PrivateKey, instructions ...*ledger.Instruction) error {
	c.nonce++
	tx := ledger.NewTransaction(c.nonce, instructions...)
	if err := tx.Sign(signers...); err != nil {
		return err
	}
	txID, err := tx.ID()
	if err != nil {
		return err
	}
	resp.Result.TxID = txID.String()
	return c.sim.ledger.Execute(ctx, tx)
}

func (c *runCmd) caller(name string) (ed25519.PrivateKey, error) {
	if len(name) == 0 {
		name = faucetName
	}
	k, ok := c.keys[name]
	if !ok {
		return ed25519.EmptyPrivateKey, fmt.Errorf("%w: %s", ErrNamedKeyNotFound, name)
	}
	return k, nil
}

// setName records [addr] as the result of step [i] and, if given, under
// [name].
func (c *runCmd) setName(i int, name string, addr codec.Address, resp *Response) {
	c.names[fmt.Sprintf("step_%d", i)] = addr
	if len(name) > 0 {
		c.names[name] = addr
	}
	resp.Result.Address = addr.String()
}

func (c *runCmd) resolve(s string) (codec.Address, error) {
	if addr, ok := c.names[s]; ok {
		return addr, nil
	}
	if strings.HasPrefix(s, "step_") {
		return codec.EmptyAddress, fmt.Errorf("%w: %s", ErrUnknownStep, s)
	}
	return codec.ParseAddress(s)
}
