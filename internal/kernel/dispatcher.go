package kernel

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/latticework/tensorkernel/internal/config"
	"github.com/latticework/tensorkernel/internal/tensor"
)

// Dispatcher is the process-wide entry point the façade submits op
// descriptors to. It holds no mutable state beyond a log handle, a tuning
// config, and an instance id used to tag diagnostics, so it is safe to
// construct and discard many times; replacing it (or its logger) is how a
// caller would swap in an alternate backend without touching operation
// semantics.
type Dispatcher struct {
	id     uuid.UUID
	logger *slog.Logger
	cfg    config.Config
}

// New creates a Dispatcher logging through the given slog.Logger and tuned
// by cfg. A nil logger defaults to slog.Default().
func New(logger *slog.Logger, cfg config.Config) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{id: uuid.New(), logger: logger, cfg: cfg}
}

var (
	defaultOnce       sync.Once
	defaultDispatcher *Dispatcher
)

// Default returns the lazily created, process-wide Dispatcher instance,
// tuned by config.Default().
func Default() *Dispatcher {
	defaultOnce.Do(func() {
		defaultDispatcher = New(nil, config.Default())
	})
	return defaultDispatcher
}

// Config returns the tuning config this dispatcher was constructed with, so
// callers above the kernel (the façade) can honor knobs like
// StrictShapeChecks that apply before an op descriptor is even built.
func (d *Dispatcher) Config() config.Config {
	return d.cfg
}

// Exec dispatches a pairwise, transform, reduction, or special op. Index
// family ops (which need a target axis) must go through ExecAtDim instead.
func (d *Dispatcher) Exec(op *tensor.Op) error {
	switch op.Family {
	case tensor.Special:
		return d.execSpecial(op)
	case tensor.Pairwise:
		execPairwise(op, d.cfg)
		return nil
	case tensor.Transform:
		execTransform(op, d.cfg)
		return nil
	case tensor.Reduction:
		execReduction(op, d.cfg)
		return nil
	case tensor.IndexReduction, tensor.IndexSet:
		return tensor.ShapeErrorf("exec: family %s requires a dimension argument, use ExecAtDim", op.Family)
	default:
		d.logger.Warn("kernel: unknown op family", "dispatcher", d.id, "family", int(op.Family))
		return tensor.RankErrorf("exec: unknown op family %d", op.Family)
	}
}

// ExecAtDim dispatches an index-reduction (e.g. argmax) or index-set (e.g.
// scatter by argmax) op, both of which operate relative to a target axis.
func (d *Dispatcher) ExecAtDim(op *tensor.Op, dim int) error {
	switch op.Family {
	case tensor.IndexReduction:
		resolved, err := tensor.NormalizeAxis(dim, op.In.Rank())
		if err != nil {
			return err
		}
		execIndexReduction(op, resolved)
		return nil
	case tensor.IndexSet:
		return execIndexSet(op, dim)
	default:
		d.logger.Warn("kernel: family does not take a dimension argument", "dispatcher", d.id, "family", op.Family.String())
		return tensor.ShapeErrorf("execAtDim: family %s does not take a dimension argument", op.Family)
	}
}

func (d *Dispatcher) execSpecial(op *tensor.Op) error {
	switch op.Kind {
	case tensor.MatMulSpecial:
		return execMatMul(op)
	case tensor.SoftmaxSpecial:
		return execSoftmax(op)
	default:
		d.logger.Warn("kernel: unknown special op kind", "dispatcher", d.id, "kind", int(op.Kind))
		return tensor.RankErrorf("exec: unknown special op kind %d", op.Kind)
	}
}
