package fsim

import (
	"github.com/yusuke-matsunaga/druid-sub000/fault"
	"github.com/yusuke-matsunaga/druid-sub000/fsim/packedval"
	"github.com/yusuke-matsunaga/druid-sub000/netlist"
)

// excitation2 computes, for the current 2-valued good-value wave, the mask
// of lanes where sf's fault is excited (spec.md §4.5 point 1).
func (s *Simulator) excitation2(sf *simFault) packedval.Word {
	iv := sf.inputSim
	switch sf.src.Type {
	case fault.StuckAt:
		if sf.src.Polarity == fault.Zero {
			return s.gval2[iv]
		}
		return packedval.Not2(s.gval2[iv])
	default: // TransitionDelay
		if sf.src.Polarity == fault.Zero { // rising: 0 -> 1
			return packedval.Not2(s.hval2[iv]) & s.gval2[iv]
		}
		return s.hval2[iv] & packedval.Not2(s.gval2[iv]) // falling: 1 -> 0
	}
}

// excitation3 is excitation2's 3-valued analogue: excitation requires the
// relevant plane(s) to be *known*, never inferred from X.
func (s *Simulator) excitation3(sf *simFault) packedval.Word {
	iv := sf.inputSim
	switch sf.src.Type {
	case fault.StuckAt:
		if sf.src.Polarity == fault.Zero {
			return s.gval3[iv].V1
		}
		return s.gval3[iv].V0
	default:
		if sf.src.Polarity == fault.Zero {
			return s.hval3[iv].V0 & s.gval3[iv].V1
		}
		return s.hval3[iv].V1 & s.gval3[iv].V0
	}
}

// sideCond2 computes, over node nd's fanin positions other than
// excludePos, the mask of lanes where every one of them holds its
// non-controlling value — the condition under which a change at
// excludePos is observable at nd's output. Gates with no controlling value
// (XOR family, unary, terminals) impose no condition.
func (s *Simulator) sideCond2(nd *simNode, excludePos int) packedval.Word {
	ncVal, ok := ncValueOf(nd.kind)
	if !ok {
		return packedval.AllOne
	}
	cond := packedval.AllOne
	for p, f := range nd.fanin {
		if p == excludePos {
			continue
		}
		v := s.gval2[f]
		if ncVal == 1 {
			cond &= v
		} else {
			cond &= packedval.Not2(v)
		}
	}
	return cond
}

func (s *Simulator) sideCond3(nd *simNode, excludePos int) packedval.Word {
	ncVal, ok := ncValueOf(nd.kind)
	if !ok {
		return packedval.AllOne
	}
	cond := packedval.AllOne
	for p, f := range nd.fanin {
		if p == excludePos {
			continue
		}
		w := s.gval3[f]
		if ncVal == 1 {
			cond &= w.V1
		} else {
			cond &= w.V0
		}
	}
	return cond
}

func ncValueOf(kind int8) (int, bool) {
	return netlist.GateKind(kind).NonControllingValue()
}

// pathCondition walks the single fanout chain from originID up to (and
// including the branch-exclusion step at) rootID, ANDing the side-input
// condition at each hop. originID == rootID is valid (a branch fault whose
// gate is itself a multi-fanout node): only the branch-exclusion step runs.
func (s *Simulator) pathCondition(originID int32, branchIpos int, rootID int32, sideCond func(nd *simNode, excludePos int) packedval.Word) packedval.Word {
	cond := packedval.AllOne
	cur := originID
	if branchIpos >= 0 {
		cond &= sideCond(&s.g.nodes[originID], branchIpos)
	}
	for cur != rootID {
		nd := &s.g.nodes[cur]
		fo := nd.fanout[0]
		ipos := int(nd.fanoutIpos[0])
		cond &= sideCond(&s.g.nodes[fo], ipos)
		cur = fo
	}
	return cond
}

// runFFRLocal computes each fault in chunk's observability mask at its
// FFR's root and returns the aggregate request word for the root (spec.md
// §4.4/§4.5). exclusive selects SPPFP's one-fault-per-lane packing;
// non-exclusive (SPSFP/PPSFP) gives each fault the whole word.
func (s *Simulator) runFFRLocal(root int32, chunk []*simFault, exclusive bool) packedval.Word {
	var req packedval.Word
	for lane, sf := range chunk {
		var obs packedval.Word
		if s.threeValued {
			obs = s.excitation3(sf) & s.pathCondition(sf.originSim, sf.branchIpos, root, s.sideCond3)
		} else {
			obs = s.excitation2(sf) & s.pathCondition(sf.originSim, sf.branchIpos, root, s.sideCond2)
		}
		if exclusive {
			bit := obs.Bit(lane)
			obs = packedval.Word(bit) << uint(lane)
		}
		sf.obsMask = obs
		req |= obs
	}
	return req
}
