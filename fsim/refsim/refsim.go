// Package refsim is the naive, gate-by-gate reference simulator used only
// by tests to check fsim's bit-parallel propagators against a
// straightforward, unpacked evaluation (spec.md §8 invariant 1, "Reference
// equivalence"). It trades every optimization fsim relies on — packing,
// FFR partitioning, event-driven propagation — for a single linear pass
// in gate-id order, which netlist.Builder already guarantees is
// topological (a gate's fanin IDs are always lower than its own, since
// AddGate can only reference already-built gates).
package refsim

import (
	"github.com/yusuke-matsunaga/druid-sub000/fault"
	"github.com/yusuke-matsunaga/druid-sub000/netlist"
	"github.com/yusuke-matsunaga/druid-sub000/tvec"
)

// Wave is one combinational evaluation of every gate in a circuit, indexed
// by original gate ID.
type Wave []tvec.Val3

// Good evaluates circ's good (fault-free) current-frame wave for tv, and
// its previous-frame wave too when tv.HasPrevState.
func Good(circ *netlist.Circuit, tv *tvec.TestVector) (cur, prev Wave) {
	cur = evalWave(circ, func(id int) tvec.Val3 { return terminalValue(circ, tv, id, false) })
	if tv.HasPrevState {
		prev = evalWave(circ, func(id int) tvec.Val3 { return terminalValue(circ, tv, id, true) })
	}
	return cur, prev
}

// Faulty evaluates circ's wave under fault f, given the already-computed
// good current/previous waves (Good's output). Stuck-at faults always
// override the injection point with the fixed stuck value. Transition-delay
// faults are direction-specific (spec.md §4.5.1: rising is ~hval&gval,
// falling is hval&~gval) — the injection point is only overridden when
// srcID's actual good/previous transition matches f.Polarity's declared
// direction; otherwise the fault is not excited and the point keeps its
// normal (good) value, exactly like fsim's excitation2/3 (fsim/ffr.go).
func Faulty(circ *netlist.Circuit, tv *tvec.TestVector, f fault.Fault, good, prevGood Wave) Wave {
	inject := func(srcID int) (tvec.Val3, bool) {
		switch f.Type {
		case fault.StuckAt:
			if f.Polarity == fault.Zero {
				return tvec.Val0, true
			}
			return tvec.Val1, true
		default: // TransitionDelay
			if !transitionExcited(good, prevGood, srcID, f.Polarity) {
				return tvec.ValX, false
			}
			return prevGood[srcID], true
		}
	}

	override := func(id int) (tvec.Val3, bool) {
		if id == f.OriginGate && f.BranchIpos < 0 {
			return inject(f.InputGate)
		}
		return tvec.ValX, false
	}

	branchOverride := func(readerID, ipos, driverID int) (tvec.Val3, bool) {
		if readerID == f.OriginGate && ipos == f.BranchIpos {
			return inject(driverID)
		}
		return tvec.ValX, false
	}

	return evalWaveFaulty(circ, func(id int) tvec.Val3 { return terminalValue(circ, tv, id, false) }, override, branchOverride)
}

// transitionExcited reports whether srcID's good/previous values constitute
// the transition direction f.Polarity declares: Zero is rising (0 -> 1), One
// is falling (1 -> 0). A fault declared for one direction is not excited by
// the opposite one.
func transitionExcited(good, prevGood Wave, srcID int, polarity fault.Polarity) bool {
	if polarity == fault.Zero {
		return prevGood[srcID] == tvec.Val0 && good[srcID] == tvec.Val1
	}
	return prevGood[srcID] == tvec.Val1 && good[srcID] == tvec.Val0
}

// DiffOutputs returns the sorted, deduplicated set of output positions
// (POs first by circuit output order, then PPOs at output_num+dff_id) at
// which good and faulty disagree — the same layout fsim.DiffBits uses.
func DiffOutputs(circ *netlist.Circuit, good, faulty Wave) []int {
	var diffs []int
	outputNum := circ.OutputNum()
	for i := 0; i < outputNum; i++ {
		id := circ.PrimaryOutput(i)
		if good[id] != faulty[id] {
			diffs = append(diffs, i)
		}
	}
	for i := 0; i < circ.DffNum(); i++ {
		id := circ.DffInput(i)
		if good[id] != faulty[id] {
			diffs = append(diffs, outputNum+i)
		}
	}
	return diffs
}

func terminalValue(circ *netlist.Circuit, tv *tvec.TestVector, id int, prev bool) tvec.Val3 {
	switch circ.Kind(id) {
	case netlist.Const0:
		return tvec.Val0
	case netlist.Const1:
		return tvec.Val1
	}
	for i := 0; i < circ.InputNum(); i++ {
		if circ.PrimaryInput(i) == id {
			if prev {
				v, _ := tv.PrevPI(i) // Good only calls this when HasPrevState is true
				return v
			}
			return tv.PI(i)
		}
	}
	for i := 0; i < circ.DffNum(); i++ {
		if circ.DffOutput(i) == id {
			return tv.PPI(i) // DFF state is shared across both time frames
		}
	}
	return tvec.ValX
}

func evalWave(circ *netlist.Circuit, terminal func(id int) tvec.Val3) Wave {
	n := circ.NodeNum()
	w := make(Wave, n)
	for id := 0; id < n; id++ {
		if circ.Kind(id).IsTerminal() {
			w[id] = terminal(id)
			continue
		}
		fanin := circ.Fanin(id)
		ins := make([]tvec.Val3, len(fanin))
		for p, f := range fanin {
			ins[p] = w[f]
		}
		w[id] = evalGateScalar(circ.Kind(id), ins)
	}
	return w
}

func evalWaveFaulty(
	circ *netlist.Circuit,
	terminal func(id int) tvec.Val3,
	override func(id int) (tvec.Val3, bool),
	branchOverride func(readerID, ipos, driverID int) (tvec.Val3, bool),
) Wave {
	n := circ.NodeNum()
	w := make(Wave, n)
	for id := 0; id < n; id++ {
		if circ.Kind(id).IsTerminal() {
			if v, ok := override(id); ok {
				w[id] = v
			} else {
				w[id] = terminal(id)
			}
			continue
		}
		fanin := circ.Fanin(id)
		ins := make([]tvec.Val3, len(fanin))
		for p, f := range fanin {
			if v, ok := branchOverride(id, p, f); ok {
				ins[p] = v
			} else {
				ins[p] = w[f]
			}
		}
		v := evalGateScalar(circ.Kind(id), ins)
		if ov, ok := override(id); ok {
			v = ov
		}
		w[id] = v
	}
	return w
}

// evalGateScalar is refsim's single-lane, Kleene-logic gate evaluator: the
// same truth tables as fsim/packedval, worked one value at a time instead
// of 64-wide, so the two implementations never share code to compare
// against.
func evalGateScalar(kind netlist.GateKind, ins []tvec.Val3) tvec.Val3 {
	switch kind {
	case netlist.Buf:
		return ins[0]
	case netlist.Not:
		return notVal(ins[0])
	case netlist.And:
		return andAll(ins)
	case netlist.Nand:
		return notVal(andAll(ins))
	case netlist.Or:
		return orAll(ins)
	case netlist.Nor:
		return notVal(orAll(ins))
	case netlist.Xor:
		return xorAll(ins)
	case netlist.Xnor:
		return notVal(xorAll(ins))
	default:
		return tvec.ValX
	}
}

func notVal(v tvec.Val3) tvec.Val3 {
	switch v {
	case tvec.Val0:
		return tvec.Val1
	case tvec.Val1:
		return tvec.Val0
	default:
		return tvec.ValX
	}
}

func andAll(ins []tvec.Val3) tvec.Val3 {
	sawX := false
	for _, v := range ins {
		if v == tvec.Val0 {
			return tvec.Val0
		}
		if v == tvec.ValX {
			sawX = true
		}
	}
	if sawX {
		return tvec.ValX
	}
	return tvec.Val1
}

func orAll(ins []tvec.Val3) tvec.Val3 {
	sawX := false
	for _, v := range ins {
		if v == tvec.Val1 {
			return tvec.Val1
		}
		if v == tvec.ValX {
			sawX = true
		}
	}
	if sawX {
		return tvec.ValX
	}
	return tvec.Val0
}

func xorAll(ins []tvec.Val3) tvec.Val3 {
	r := tvec.Val0
	for _, v := range ins {
		if v == tvec.ValX {
			return tvec.ValX
		}
		if v == tvec.Val1 {
			r = notVal(r)
		}
	}
	return r
}
