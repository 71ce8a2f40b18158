// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/echovm/codec"
)

var _ Invocation = (*Processor)(nil)

// Processor decodes instruction data with [actions] and executes the
// resulting action.
type Processor struct {
	log     logging.Logger
	actions *codec.TypeParser[Action]
	metrics *processorMetrics
}

func NewProcessor(
	log logging.Logger,
	actions *codec.TypeParser[Action],
	r prometheus.Registerer,
) (*Processor, error) {
	m, err := newMetrics(r)
	if err != nil {
		return nil, err
	}
	return &Processor{
		log:     log,
		actions: actions,
		metrics: m,
	}, nil
}

func (p *Processor) Handle(ctx context.Context, env Env, accounts []*Account, data []byte) error {
	action, err := p.actions.Unmarshal(data)
	if err != nil {
		p.metrics.invalid.Inc()
		p.log.Debug("dropping invalid instruction",
			zap.Stringer("program", env.ProgramID()),
			zap.Int("size", len(data)),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrInvalidInstructionData, err)
	}

	typeID := action.GetTypeID()
	name, _ := p.actions.Name(typeID)
	if err := action.Execute(ctx, env, accounts); err != nil {
		p.metrics.failed.WithLabelValues(name).Inc()
		p.log.Debug("instruction failed",
			zap.Stringer("program", env.ProgramID()),
			zap.Uint8("opcode", typeID),
			zap.String("action", name),
			zap.Error(err),
		)
		return err
	}
	p.metrics.executed.WithLabelValues(name).Inc()
	return nil
}
