package netlist

import (
	"fmt"

	"github.com/yusuke-matsunaga/druid-sub000/simerr"
)

// Circuit is the immutable gate-level network the fault simulator binds to.
// It is built once (via Builder) and never mutated afterward.
type Circuit struct {
	gates []*Gate // indexed by Gate.ID

	piOrder  []int // gate IDs, primary-input order
	ppiOrder []int // gate IDs, DFF order (pseudo-primary inputs)
	poOrder  []int // gate IDs, primary-output order
	ppoOrder []int // gate IDs, DFF order (pseudo-primary outputs)
}

// NodeNum is the total number of gates in the network.
func (c *Circuit) NodeNum() int { return len(c.gates) }

// InputNum is the number of primary inputs.
func (c *Circuit) InputNum() int { return len(c.piOrder) }

// DffNum is the number of flip-flops (PPI/PPO pairs).
func (c *Circuit) DffNum() int { return len(c.ppiOrder) }

// OutputNum is the number of primary outputs.
func (c *Circuit) OutputNum() int { return len(c.poOrder) }

// Gate returns the gate with the given ID.
func (c *Circuit) Gate(id int) *Gate { return c.gates[id] }

// Kind returns the gate kind at id, satisfying fsim.NetworkView.
func (c *Circuit) Kind(id int) GateKind { return c.gates[id].Kind }

// Fanin returns the fanin gate IDs at id, satisfying fsim.NetworkView.
func (c *Circuit) Fanin(id int) []int { return c.gates[id].Fanin }

// IsOutput reports whether id is a PO or PPO, satisfying fsim.NetworkView.
func (c *Circuit) IsOutput(id int) bool { return c.gates[id].IsOutput() }

// Name returns the gate's name, satisfying fsim.NetworkView.
func (c *Circuit) Name(id int) string { return c.gates[id].Name }

// PrimaryInput returns the gate ID of the i-th primary input.
func (c *Circuit) PrimaryInput(i int) int { return c.piOrder[i] }

// DffOutput returns the gate ID of the PPI (pseudo-primary input) of DFF i.
func (c *Circuit) DffOutput(i int) int { return c.ppiOrder[i] }

// PrimaryOutput returns the gate ID of the i-th primary output.
func (c *Circuit) PrimaryOutput(i int) int { return c.poOrder[i] }

// DffInput returns the gate ID of the PPO (pseudo-primary output) of DFF i.
func (c *Circuit) DffInput(i int) int { return c.ppoOrder[i] }

// Builder constructs a Circuit. Gates are added in an order such that every
// fanin already exists (Fanin[i].ID < new gate's ID is therefore automatic),
// which keeps the network acyclic by construction.
type Builder struct {
	gates    []*Gate
	piOrder  []int
	ppiOrder []int
	poOrder  []int
	ppoOrder []int // index i holds the driver gate for DFF i, or -1 until set
	names    map[string]int
}

// NewBuilder creates an empty circuit builder.
func NewBuilder() *Builder {
	return &Builder{names: make(map[string]int)}
}

func (b *Builder) addGate(kind GateKind, name string, fanin []int) (int, error) {
	id := len(b.gates)
	for _, f := range fanin {
		if f < 0 || f >= len(b.gates) {
			return 0, simerr.New(simerr.InvalidArgument, "Builder.AddGate",
				fmt.Sprintf("fanin id %d does not reference an already-added gate", f))
		}
	}
	if name == "" {
		name = fmt.Sprintf("g%d", id)
	}
	if _, dup := b.names[name]; dup {
		return 0, simerr.New(simerr.InvalidArgument, "Builder.AddGate",
			fmt.Sprintf("gate name %q already used", name))
	}

	level := 0
	for _, f := range fanin {
		if lv := b.gates[f].Level + 1; lv > level {
			level = lv
		}
	}

	g := &Gate{ID: id, Kind: kind, Name: name, Fanin: append([]int(nil), fanin...), Level: level}
	b.gates = append(b.gates, g)
	b.names[name] = id

	for _, f := range fanin {
		fg := b.gates[f]
		fg.FanoutIpos = append(fg.FanoutIpos, len(b.gates[f].Fanout))
		fg.Fanout = append(fg.Fanout, id)
	}

	return id, nil
}

// AddInput adds a primary input terminal and returns its gate ID.
func (b *Builder) AddInput(name string) int {
	id, err := b.addGate(Input, name, nil)
	if err != nil {
		panic(err)
	}
	b.gates[id].IsPI = true
	b.piOrder = append(b.piOrder, id)
	return id
}

// AddConst adds a constant-0 or constant-1 source and returns its gate ID.
func (b *Builder) AddConst(name string, value int) int {
	kind := Const0
	if value != 0 {
		kind = Const1
	}
	id, err := b.addGate(kind, name, nil)
	if err != nil {
		panic(err)
	}
	return id
}

// AddDFFOutput adds a flip-flop's pseudo-primary-input (Q) terminal and
// reserves its pseudo-primary-output (D) slot, returning the PPI gate ID.
// The caller must later call SetDFFInput for the same index to bind D.
func (b *Builder) AddDFFOutput(name string) int {
	id, err := b.addGate(Input, name, nil)
	if err != nil {
		panic(err)
	}
	b.gates[id].IsPPI = true
	b.ppiOrder = append(b.ppiOrder, id)
	b.ppoOrder = append(b.ppoOrder, -1)
	return id
}

// AddGate adds a combinational gate with the given fanin (gate IDs, in
// input-position order) and returns its gate ID. It returns an error if the
// arity is wrong for kind or a fanin ID is unknown.
func (b *Builder) AddGate(kind GateKind, name string, fanin ...int) (int, error) {
	if kind.IsTerminal() {
		return 0, simerr.New(simerr.InvalidArgument, "Builder.AddGate",
			fmt.Sprintf("%s must be added via AddInput/AddConst, not AddGate", kind))
	}
	if kind.IsUnary() && len(fanin) != 1 {
		return 0, simerr.New(simerr.InvalidArgument, "Builder.AddGate",
			fmt.Sprintf("%s requires exactly 1 fanin, got %d", kind, len(fanin)))
	}
	if !kind.IsUnary() && len(fanin) < 2 {
		return 0, simerr.New(simerr.InvalidArgument, "Builder.AddGate",
			fmt.Sprintf("%s requires at least 2 fanins, got %d", kind, len(fanin)))
	}
	return b.addGate(kind, name, fanin)
}

// MarkOutput marks gate id as a primary output, in call order.
func (b *Builder) MarkOutput(id int) {
	b.gates[id].IsPO = true
	b.poOrder = append(b.poOrder, id)
}

// SetDFFInput binds the combinational driver of DFF dffIndex's D terminal
// (the pseudo-primary output), marking driver as a PPO.
func (b *Builder) SetDFFInput(dffIndex int, driver int) {
	b.gates[driver].IsPPO = true
	b.ppoOrder[dffIndex] = driver
}

// Build finalizes the circuit. It fails if any DFF's input was never bound.
func (b *Builder) Build() (*Circuit, error) {
	for i, drv := range b.ppoOrder {
		if drv < 0 {
			return nil, simerr.New(simerr.InvalidState, "Builder.Build",
				fmt.Sprintf("DFF %d has no bound input (SetDFFInput was never called)", i))
		}
	}
	c := &Circuit{
		gates:    b.gates,
		piOrder:  b.piOrder,
		ppiOrder: b.ppiOrder,
		poOrder:  b.poOrder,
		ppoOrder: b.ppoOrder,
	}
	return c, nil
}
