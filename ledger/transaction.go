// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/ava-labs/avalanchego/utils/set"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/crypto/ed25519"
	"github.com/ava-labs/echovm/state"
)

type AccountMeta struct {
	Address  codec.Address `json:"address"`
	Signer   bool          `json:"signer"`
	Writable bool          `json:"writable"`
}

// Instruction invokes [ProgramID] with [Data] on [Accounts].
type Instruction struct {
	ProgramID codec.Address `json:"programID"`
	Accounts  []AccountMeta `json:"accounts"`
	Data      []byte        `json:"data"`
}

// Message is the signed part of a transaction. [Nonce] distinguishes
// otherwise identical messages.
type Message struct {
	Nonce        uint64        `json:"nonce"`
	Instructions []Instruction `json:"instructions"`
}

type Signature struct {
	PublicKey ed25519.PublicKey `json:"publicKey"`
	Signature ed25519.Signature `json:"signature"`
}

// Transaction is executed atomically: either every instruction succeeds or
// no account changes.
type Transaction struct {
	Message    Message     `json:"message"`
	Signatures []Signature `json:"signatures"`
}

func NewTransaction(nonce uint64, instructions ...*Instruction) *Transaction {
	tx := &Transaction{Message: Message{Nonce: nonce}}
	for _, ins := range instructions {
		tx.Message.Instructions = append(tx.Message.Instructions, *ins)
	}
	return tx
}

// Digest is the message hash every signer signs.
func (tx *Transaction) Digest() ([]byte, error) {
	b, err := codec.Marshal(&tx.Message)
	if err != nil {
		return nil, err
	}
	return hashing.ComputeHash256(b), nil
}

// ID identifies the signed transaction.
func (tx *Transaction) ID() (ids.ID, error) {
	b, err := codec.Marshal(tx)
	if err != nil {
		return ids.Empty, err
	}
	return hashing.ComputeHash256Array(b), nil
}

// Sign appends a signature of the message by each of [keys].
func (tx *Transaction) Sign(keys ...ed25519.PrivateKey) error {
	digest, err := tx.Digest()
	if err != nil {
		return err
	}
	for _, k := range keys {
		tx.Signatures = append(tx.Signatures, Signature{
			PublicKey: k.PublicKey(),
			Signature: ed25519.Sign(digest, k),
		})
	}
	return nil
}

// Verify checks every signature in one batch and returns the addresses that
// signed. Every account marked as signer must be among them.
func (tx *Transaction) Verify() (set.Set[codec.Address], error) {
	if len(tx.Message.Instructions) == 0 {
		return nil, ErrNoInstructions
	}
	if len(tx.Signatures) == 0 {
		return nil, ErrNoSignatures
	}
	digest, err := tx.Digest()
	if err != nil {
		return nil, err
	}
	batch := ed25519.NewBatch(len(tx.Signatures))
	signers := set.NewSet[codec.Address](len(tx.Signatures))
	for _, sig := range tx.Signatures {
		batch.Add(digest, sig.PublicKey, sig.Signature)
		signers.Add(sig.PublicKey.Address())
	}
	if !batch.Verify() {
		return nil, ErrInvalidSignature
	}
	for i, ins := range tx.Message.Instructions {
		for _, meta := range ins.Accounts {
			if meta.Signer && !signers.Contains(meta.Address) {
				return nil, fmt.Errorf("%w: instruction %d account %s has no signature", chain.ErrMissingSigner, i, meta.Address)
			}
		}
	}
	return signers, nil
}

// StateKeys returns the state every instruction of the transaction may
// touch. Writable accounts may be created, updated and removed.
func (tx *Transaction) StateKeys() state.Keys {
	keys := state.Keys{}
	for _, ins := range tx.Message.Instructions {
		for _, meta := range ins.Accounts {
			perm := state.Read
			if meta.Writable {
				perm = state.All
			}
			keys.Add(string(AccountKey(meta.Address)), perm)
		}
	}
	return keys
}
