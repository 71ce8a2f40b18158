// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/state"
	"github.com/ava-labs/echovm/tstate"

	oteltrace "go.opentelemetry.io/otel/trace"
)

var _ state.Immutable = (*dbReader)(nil)

// Allocation funds a system account at genesis.
type Allocation struct {
	Address codec.Address `json:"address"`
	Balance uint64        `json:"balance"`
}

// Ledger executes transactions against the accounts stored in [db]. Each
// transaction is atomic: its changes are written only if every instruction
// succeeds.
type Ledger struct {
	log     logging.Logger
	tracer  trace.Tracer
	rules   *Rules
	db      database.Database
	metrics *metrics

	l        sync.Mutex
	programs map[codec.Address]chain.Invocation
}

// New returns a ledger with the system and token programs deployed and the
// accounts of [genesis] funded.
func New(
	log logging.Logger,
	tracer trace.Tracer,
	rules *Rules,
	genesis []*Allocation,
	db database.Database,
	r prometheus.Registerer,
) (*Ledger, error) {
	m, err := newMetrics(r)
	if err != nil {
		return nil, err
	}
	system, err := chain.NewProcessor(log, SystemActions, prometheus.WrapRegistererWithPrefix("system_", r))
	if err != nil {
		return nil, err
	}
	token, err := chain.NewProcessor(log, TokenActions, prometheus.WrapRegistererWithPrefix("token_", r))
	if err != nil {
		return nil, err
	}
	l := &Ledger{
		log:     log,
		tracer:  tracer,
		rules:   rules,
		db:      db,
		metrics: m,
		programs: map[codec.Address]chain.Invocation{
			SystemProgramID: system,
			TokenProgramID:  token,
		},
	}
	if err := l.fund(genesis); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Ledger) fund(genesis []*Allocation) error {
	seen := set.NewSet[codec.Address](len(genesis))
	batch := l.db.NewBatch()
	for _, alloc := range genesis {
		if seen.Contains(alloc.Address) {
			return fmt.Errorf("%w: %s", ErrDuplicateGenesis, alloc.Address)
		}
		seen.Add(alloc.Address)
		if alloc.Balance == 0 {
			return fmt.Errorf("%w: %s has no balance", ErrInvalidGenesis, alloc.Address)
		}
		v, err := codec.Marshal(&storedAccount{
			Owner:   SystemProgramID,
			Balance: alloc.Balance,
		})
		if err != nil {
			return err
		}
		if err := batch.Put(AccountKey(alloc.Address), v); err != nil {
			return err
		}
	}
	return batch.Write()
}

// Deploy makes [program] invocable at [id].
func (l *Ledger) Deploy(id codec.Address, program chain.Invocation) error {
	l.l.Lock()
	defer l.l.Unlock()

	if _, ok := l.programs[id]; ok {
		return fmt.Errorf("%w: %s", ErrProgramExists, id)
	}
	l.programs[id] = program
	l.log.Info("deployed program", zap.Stringer("program", id))
	return nil
}

func (l *Ledger) Rules() *Rules {
	return l.rules
}

// Execute verifies the signatures of [tx] and runs its instructions in
// order. If any instruction fails, no change of [tx] is kept and the error
// of the failed instruction is returned.
func (l *Ledger) Execute(ctx context.Context, tx *Transaction) error {
	ctx, span := l.tracer.Start(ctx, "Ledger.Execute", oteltrace.WithAttributes(
		attribute.Int("instructions", len(tx.Message.Instructions)),
		attribute.Int("signatures", len(tx.Signatures)),
	))
	defer span.End()

	l.l.Lock()
	defer l.l.Unlock()

	signers, err := tx.Verify()
	if err != nil {
		return err
	}
	txID, err := tx.ID()
	if err != nil {
		return err
	}

	scope := tx.StateKeys()
	storage := make(map[string][]byte, len(scope))
	for k := range scope {
		v, err := l.db.Get([]byte(k))
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		storage[k] = v
	}

	ts := tstate.New(len(scope))
	view := ts.NewView(scope, storage)
	for i := range tx.Message.Instructions {
		ins := &tx.Message.Instructions[i]
		if err := l.executeInstruction(ctx, view, signers, ins); err != nil {
			view.Rollback(ctx, 0)
			l.metrics.rolledBack.Inc()
			l.log.Debug("transaction rolled back",
				zap.Stringer("txID", txID),
				zap.Int("instruction", i),
				zap.Stringer("program", ins.ProgramID),
				zap.Error(err),
			)
			return fmt.Errorf("instruction %d: %w", i, err)
		}
	}
	view.Commit()

	batch := l.db.NewBatch()
	if err := ts.WriteChanges(batch); err != nil {
		return err
	}
	if err := batch.Write(); err != nil {
		return err
	}
	l.metrics.accepted.Inc()
	l.metrics.instructions.Add(float64(len(tx.Message.Instructions)))
	l.log.Debug("transaction accepted",
		zap.Stringer("txID", txID),
		zap.Int("instructions", len(tx.Message.Instructions)),
		zap.Int("changedKeys", ts.PendingChanges()),
	)
	return nil
}

func (l *Ledger) executeInstruction(
	ctx context.Context,
	view state.Mutable,
	signers set.Set[codec.Address],
	ins *Instruction,
) error {
	ctx, span := l.tracer.Start(ctx, "Ledger.Instruction", oteltrace.WithAttributes(
		attribute.Stringer("program", ins.ProgramID),
		attribute.Int("accounts", len(ins.Accounts)),
	))
	defer span.End()

	program, ok := l.programs[ins.ProgramID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProgram, ins.ProgramID)
	}

	// An address listed more than once refers to the same account, which is
	// signer or writable if any of its entries are.
	loaded := make(accountSet, len(ins.Accounts))
	accounts := make([]*chain.Account, len(ins.Accounts))
	for i, meta := range ins.Accounts {
		a, ok := loaded[meta.Address]
		if !ok {
			var err error
			a, err = getAccount(ctx, view, meta.Address)
			if err != nil {
				return err
			}
			loaded[meta.Address] = a
		}
		a.Signer = a.Signer || (meta.Signer && signers.Contains(meta.Address))
		a.Writable = a.Writable || meta.Writable
		accounts[i] = a
	}
	original := loaded.clone()

	env := newInvocationEnv(l.rules, ins.ProgramID, loaded)
	if err := program.Handle(ctx, env, accounts, ins.Data); err != nil {
		return err
	}
	if err := env.verify(); err != nil {
		return err
	}

	addrs := maps.Keys(loaded)
	slices.SortFunc(addrs, func(a, b codec.Address) int {
		return bytes.Compare(a[:], b[:])
	})
	for _, addr := range addrs {
		a := loaded[addr]
		if !modified(original[addr], a) {
			continue
		}
		if err := putAccount(ctx, view, a); err != nil {
			return err
		}
	}
	return nil
}

// GetAccount returns the committed state of [addr].
func (l *Ledger) GetAccount(ctx context.Context, addr codec.Address) (*chain.Account, error) {
	return getAccount(ctx, &dbReader{db: l.db}, addr)
}

// Holding returns the token holding stored at [addr].
func (l *Ledger) Holding(ctx context.Context, addr codec.Address) (*Holding, error) {
	a, err := l.GetAccount(ctx, addr)
	if err != nil {
		return nil, err
	}
	return parseHolding(a)
}

// Mint returns the mint stored at [addr].
func (l *Ledger) Mint(ctx context.Context, addr codec.Address) (*Mint, error) {
	a, err := l.GetAccount(ctx, addr)
	if err != nil {
		return nil, err
	}
	return parseMint(a)
}

type dbReader struct {
	db database.KeyValueReader
}

func (r *dbReader) GetValue(_ context.Context, key []byte) ([]byte, error) {
	return r.db.Get(key)
}
