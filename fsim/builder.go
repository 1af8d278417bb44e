package fsim

import (
	"log/slog"

	"github.com/yusuke-matsunaga/druid-sub000/fsim/packedval"
	"github.com/yusuke-matsunaga/druid-sub000/netlist"
)

// Builder constructs a Simulator, following the teacher's fluent
// With*-then-Build shape (config.DeviceBuilder, core/builder.go).
type Builder struct {
	circuit      NetworkView
	hasPrevState bool
	hasXValues   bool
	logger       *slog.Logger
}

// NewBuilder creates an empty Simulator builder.
func NewBuilder() Builder {
	return Builder{}
}

// WithCircuit sets the circuit the simulator binds to. Required.
func (b Builder) WithCircuit(c NetworkView) Builder {
	b.circuit = c
	return b
}

// WithPrevState enables the previous-time-frame (hval) storage needed to
// excite transition-delay faults.
func (b Builder) WithPrevState(v bool) Builder {
	b.hasPrevState = v
	return b
}

// WithXValues selects the 3-valued (Kleene) value representation. Without
// it the simulator is 2-valued and rejects any test vector containing X.
func (b Builder) WithXValues(v bool) Builder {
	b.hasXValues = v
	return b
}

// WithLogger overrides the package-level default logger for this
// simulator's construction-time diagnostics.
func (b Builder) WithLogger(l *slog.Logger) Builder {
	b.logger = l
	return b
}

// Build finalizes the Simulator. It panics if WithCircuit was never called,
// the same way core/builder.go panics on an incomplete configuration.
func (b Builder) Build() *Simulator {
	if b.circuit == nil {
		panic("fsim.Builder: WithCircuit is required")
	}

	logger := b.logger
	if logger == nil {
		logger = pkgLogger
	}

	g := buildGraph(b.circuit)
	n := len(g.nodes)
	var maxLevel int32
	for _, nd := range g.nodes {
		if nd.level > maxLevel {
			maxLevel = nd.level
		}
	}

	s := &Simulator{
		g:            g,
		threeValued:  b.hasXValues,
		hasPrevState: b.hasPrevState,
		fvalGen:      make([]uint32, n),
		queue:        newLevelQueue(n, maxLevel),
		logger:       logger,
	}
	if s.threeValued {
		s.gval3 = make([]packedval.Word3, n)
		s.fval3 = make([]packedval.Word3, n)
		s.fanin3Buf = make([]packedval.Word3, 0, 8)
		if s.hasPrevState {
			s.hval3 = make([]packedval.Word3, n)
		}
	} else {
		s.gval2 = make([]packedval.Word, n)
		s.fval2 = make([]packedval.Word, n)
		s.fanin2Buf = make([]packedval.Word, 0, 8)
		if s.hasPrevState {
			s.hval2 = make([]packedval.Word, n)
		}
	}

	var ffrRoots int
	for _, nd := range g.nodes {
		if nd.ffrRoot == nd.id {
			ffrRoots++
		}
	}
	fields := []any{
		"nodes", n, "inputs", g.inputNum, "dffs", g.dffNum, "outputs", g.outputNum,
		"ffrs", ffrRoots, "threeValued", s.threeValued, "hasPrevState", s.hasPrevState,
	}
	if circ, ok := b.circuit.(*netlist.Circuit); ok {
		fields = append(fields, "circuit", netlist.Describe(circ))
	}
	logger.Info("fsim: simulator built", fields...)

	return s
}
