// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

const (
	// MintLen and HoldingLen are the data sizes of token accounts.
	MintLen    = codec.AddressLen + 8 + 1 + 1
	HoldingLen = codec.AddressLen + codec.AddressLen + 8 + 1
)

const (
	InitializeMintID uint8 = iota
	InitializeHoldingID
	MintToID
	BurnID
)

var (
	TokenActions = codec.NewTypeParser[chain.Action]()

	_ chain.Action = (*InitializeMint)(nil)
	_ chain.Action = (*InitializeHolding)(nil)
	_ chain.Action = (*MintTo)(nil)
	_ chain.Action = (*Burn)(nil)
)

func init() {
	errs := &wrappers.Errs{}
	errs.Add(
		TokenActions.Register(&InitializeMint{}, UnmarshalInitializeMint),
		TokenActions.Register(&InitializeHolding{}, UnmarshalInitializeHolding),
		TokenActions.Register(&MintTo{}, UnmarshalMintTo),
		TokenActions.Register(&Burn{}, UnmarshalBurn),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

type Mint struct {
	Authority   codec.Address `json:"authority"`
	Supply      uint64        `json:"supply"`
	Decimals    uint8         `json:"decimals"`
	Initialized bool          `json:"initialized"`
}

type Holding struct {
	Mint        codec.Address `json:"mint"`
	Owner       codec.Address `json:"owner"`
	Amount      uint64        `json:"amount"`
	Initialized bool          `json:"initialized"`
}

func (h *Holding) TokenHolding() *chain.TokenHolding {
	return &chain.TokenHolding{
		Mint:   h.Mint,
		Owner:  h.Owner,
		Amount: h.Amount,
	}
}

func decodeTokenAccount[T any](a *chain.Account, size int) (*T, error) {
	if a.Owner != TokenProgramID {
		return nil, fmt.Errorf("%w: %s is owned by %s", chain.ErrIncorrectProgramID, a.Address, a.Owner)
	}
	if len(a.Data) != size {
		return nil, fmt.Errorf("%w: %s has %d bytes, expected %d", chain.ErrInvalidAccountData, a.Address, len(a.Data), size)
	}
	v, err := codec.Decode[T](a.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", chain.ErrInvalidAccountData, a.Address, err)
	}
	return v, nil
}

func parseMint(a *chain.Account) (*Mint, error) {
	m, err := decodeTokenAccount[Mint](a, MintLen)
	if err != nil {
		return nil, err
	}
	if !m.Initialized {
		return nil, fmt.Errorf("%w: mint %s", ErrUninitialized, a.Address)
	}
	return m, nil
}

func parseHolding(a *chain.Account) (*Holding, error) {
	h, err := decodeTokenAccount[Holding](a, HoldingLen)
	if err != nil {
		return nil, err
	}
	if !h.Initialized {
		return nil, fmt.Errorf("%w: holding %s", ErrUninitialized, a.Address)
	}
	return h, nil
}

// store writes [v] over the data of [a]. The size of token accounts never
// changes.
func store(a *chain.Account, v any) error {
	b, err := codec.Marshal(v)
	if err != nil {
		return err
	}
	if len(b) != len(a.Data) {
		return fmt.Errorf("%w: %s has %d bytes, encoding is %d", chain.ErrInvalidAccountData, a.Address, len(a.Data), len(b))
	}
	copy(a.Data, b)
	return nil
}

// burn destroys [amount] units from [holding] and reduces the supply of
// [mint]. [owner] must be the signing owner of the holding.
func burn(holding *chain.Account, mint *chain.Account, owner *chain.Account, amount uint64) error {
	h, err := parseHolding(holding)
	if err != nil {
		return err
	}
	m, err := parseMint(mint)
	if err != nil {
		return err
	}
	if h.Mint != mint.Address {
		return fmt.Errorf("%w: holding is for %s, not %s", chain.ErrMintMismatch, h.Mint, mint.Address)
	}
	if h.Owner != owner.Address {
		return fmt.Errorf("%w: holding belongs to %s, not %s", chain.ErrOwnerMismatch, h.Owner, owner.Address)
	}
	if !owner.Signer {
		return fmt.Errorf("%w: owner %s", chain.ErrMissingSigner, owner.Address)
	}
	remaining, err := smath.Sub(h.Amount, amount)
	if err != nil {
		return fmt.Errorf("%w: holding has %d, burning %d", chain.ErrInsufficientBalance, h.Amount, amount)
	}
	supply, err := smath.Sub(m.Supply, amount)
	if err != nil {
		return fmt.Errorf("%w: supply %d, burning %d", chain.ErrInvalidAccountData, m.Supply, amount)
	}
	h.Amount = remaining
	m.Supply = supply
	if err := store(holding, h); err != nil {
		return err
	}
	return store(mint, m)
}

// InitializeMint turns a zeroed token account into a mint controlled by
// [Authority].
//
// Accounts: [mint]
type InitializeMint struct {
	Decimals  uint8         `json:"decimals"`
	Authority codec.Address `json:"authority"`
}

func (*InitializeMint) GetTypeID() uint8 {
	return InitializeMintID
}

func (i *InitializeMint) Execute(_ context.Context, _ chain.Env, accounts []*chain.Account) error {
	mint, err := chain.NewAccountIter(accounts).Next("mint")
	if err != nil {
		return err
	}
	m, err := decodeTokenAccount[Mint](mint, MintLen)
	if err != nil {
		return err
	}
	if m.Initialized {
		return fmt.Errorf("%w: mint %s", chain.ErrAccountAlreadyInUse, mint.Address)
	}
	return store(mint, &Mint{
		Authority:   i.Authority,
		Decimals:    i.Decimals,
		Initialized: true,
	})
}

func UnmarshalInitializeMint(b []byte) (chain.Action, error) {
	return codec.Decode[InitializeMint](b)
}

// InitializeHolding turns a zeroed token account into an empty holding of
// the mint owned by the owner account.
//
// Accounts: [holding, mint, owner]
type InitializeHolding struct{}

func (*InitializeHolding) GetTypeID() uint8 {
	return InitializeHoldingID
}

func (*InitializeHolding) Execute(_ context.Context, _ chain.Env, accounts []*chain.Account) error {
	it := chain.NewAccountIter(accounts)
	holding, err := it.Next("holding")
	if err != nil {
		return err
	}
	mint, err := it.Next("mint")
	if err != nil {
		return err
	}
	owner, err := it.Next("owner")
	if err != nil {
		return err
	}
	h, err := decodeTokenAccount[Holding](holding, HoldingLen)
	if err != nil {
		return err
	}
	if h.Initialized {
		return fmt.Errorf("%w: holding %s", chain.ErrAccountAlreadyInUse, holding.Address)
	}
	if _, err := parseMint(mint); err != nil {
		return err
	}
	return store(holding, &Holding{
		Mint:        mint.Address,
		Owner:       owner.Address,
		Initialized: true,
	})
}

func UnmarshalInitializeHolding(b []byte) (chain.Action, error) {
	return codec.Decode[InitializeHolding](b)
}

// MintTo creates [Amount] new units in a holding.
//
// Accounts: [mint, holding, mint authority (signer)]
type MintTo struct {
	Amount uint64 `json:"amount"`
}

func (*MintTo) GetTypeID() uint8 {
	return MintToID
}

func (t *MintTo) Execute(_ context.Context, _ chain.Env, accounts []*chain.Account) error {
	it := chain.NewAccountIter(accounts)
	mint, err := it.Next("mint")
	if err != nil {
		return err
	}
	holding, err := it.Next("holding")
	if err != nil {
		return err
	}
	authority, err := it.Next("mint authority")
	if err != nil {
		return err
	}
	m, err := parseMint(mint)
	if err != nil {
		return err
	}
	h, err := parseHolding(holding)
	if err != nil {
		return err
	}
	if h.Mint != mint.Address {
		return fmt.Errorf("%w: holding is for %s, not %s", chain.ErrMintMismatch, h.Mint, mint.Address)
	}
	if m.Authority != authority.Address {
		return fmt.Errorf("%w: %s", ErrMintAuthority, authority.Address)
	}
	if !authority.Signer {
		return fmt.Errorf("%w: mint authority %s", chain.ErrMissingSigner, authority.Address)
	}
	if m.Supply, err = smath.Add(m.Supply, t.Amount); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMintAmount, err)
	}
	if h.Amount, err = smath.Add(h.Amount, t.Amount); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMintAmount, err)
	}
	if err := store(holding, h); err != nil {
		return err
	}
	return store(mint, m)
}

func UnmarshalMintTo(b []byte) (chain.Action, error) {
	return codec.Decode[MintTo](b)
}

// Burn destroys [Amount] units of a holding.
//
// Accounts: [holding, mint, owner (signer)]
type Burn struct {
	Amount uint64 `json:"amount"`
}

func (*Burn) GetTypeID() uint8 {
	return BurnID
}

func (b *Burn) Execute(_ context.Context, _ chain.Env, accounts []*chain.Account) error {
	it := chain.NewAccountIter(accounts)
	holding, err := it.Next("holding")
	if err != nil {
		return err
	}
	mint, err := it.Next("mint")
	if err != nil {
		return err
	}
	owner, err := it.Next("owner")
	if err != nil {
		return err
	}
	return burn(holding, mint, owner, b.Amount)
}

func UnmarshalBurn(b []byte) (chain.Action, error) {
	return codec.Decode[Burn](b)
}
