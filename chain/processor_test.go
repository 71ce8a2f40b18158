// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/echovm/codec"
)

type setByte struct {
	Value uint8
}

func (*setByte) GetTypeID() uint8 { return 0 }

func (s *setByte) Execute(_ context.Context, _ Env, accounts []*Account) error {
	a, err := NewAccountIter(accounts).Next("target")
	if err != nil {
		return err
	}
	if !a.Signer {
		return ErrMissingSigner
	}
	a.Data[0] = s.Value
	return nil
}

func unmarshalSetByte(b []byte) (Action, error) {
	return codec.Decode[setByte](b)
}

type testEnv struct{}

func (testEnv) ProgramID() codec.Address { return codec.Address{1} }

func (testEnv) Rules() Rules { return nil }

func (testEnv) Allocator(*Account) (Allocator, error) { return nil, ErrIncorrectProgramID }

func (testEnv) Tokens(*Account) (TokenCollaborator, error) { return nil, ErrIncorrectProgramID }

func newTestProcessor(t *testing.T) (*Processor, *codec.TypeParser[Action]) {
	parser := codec.NewTypeParser[Action]()
	require.NoError(t, parser.Register(&setByte{}, unmarshalSetByte))
	p, err := NewProcessor(logging.NoLog{}, parser, prometheus.NewRegistry())
	require.NoError(t, err)
	return p, parser
}

func TestProcessorHandle(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	p, parser := newTestProcessor(t)

	data, err := parser.Marshal(&setByte{Value: 7})
	require.NoError(err)
	require.Equal([]byte{0, 7}, data)

	target := &Account{Signer: true, Data: make([]byte, 1)}
	require.NoError(p.Handle(ctx, testEnv{}, []*Account{target}, data))
	require.Equal([]byte{7}, target.Data)
	require.InDelta(1, testutil.ToFloat64(p.metrics.executed.WithLabelValues("chain.setByte")), 0)

	target.Signer = false
	require.ErrorIs(p.Handle(ctx, testEnv{}, []*Account{target}, data), ErrMissingSigner)
	require.InDelta(1, testutil.ToFloat64(p.metrics.failed.WithLabelValues("chain.setByte")), 0)

	require.ErrorIs(p.Handle(ctx, testEnv{}, nil, data), ErrNotEnoughAccounts)
}

func TestProcessorInvalidData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"Empty", nil},
		{"UnknownOpcode", []byte{9, 1}},
		{"ShortBody", []byte{0}},
		{"TrailingBytes", []byte{0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			p, _ := newTestProcessor(t)

			target := &Account{Signer: true, Data: make([]byte, 1)}
			err := p.Handle(context.Background(), testEnv{}, []*Account{target}, tt.data)
			require.ErrorIs(err, ErrInvalidInstructionData)
			require.Equal([]byte{0}, target.Data)
			require.InDelta(1, testutil.ToFloat64(p.metrics.invalid), 0)
		})
	}
}

func TestProcessorDuplicateMetrics(t *testing.T) {
	require := require.New(t)

	r := prometheus.NewRegistry()
	parser := codec.NewTypeParser[Action]()
	_, err := NewProcessor(logging.NoLog{}, parser, r)
	require.NoError(err)
	_, err = NewProcessor(logging.NoLog{}, parser, r)
	require.Error(err)
}
