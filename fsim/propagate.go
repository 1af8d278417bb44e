package fsim

import "github.com/yusuke-matsunaga/druid-sub000/fsim/packedval"

// getFval2 returns node id's faulty value for the in-progress call: its
// stored fval if this call already wrote one, its good value otherwise.
// This generation-stamp check is the "clear list" (spec.md §4.6 point 6):
// fval slots never need an O(n) reset between calls, only curGen++.
func (s *Simulator) getFval2(id int32) packedval.Word {
	if s.fvalGen[id] == s.curGen {
		return s.fval2[id]
	}
	return s.gval2[id]
}

func (s *Simulator) getFval3(id int32) packedval.Word3 {
	if s.fvalGen[id] == s.curGen {
		return s.fval3[id]
	}
	return s.gval3[id]
}

func (s *Simulator) setFval2(id int32, v packedval.Word) {
	s.fval2[id] = v
	s.fvalGen[id] = s.curGen
	s.touched = append(s.touched, id)
}

func (s *Simulator) setFval3(id int32, v packedval.Word3) {
	s.fval3[id] = v
	s.fvalGen[id] = s.curGen
	s.touched = append(s.touched, id)
}

// flipInitial2 is gval XOR req: the value root takes on when exactly the
// lanes in req (the FFR's aggregate observability request) are inverted
// (spec.md §4.6 point 2).
func flipInitial2(gval, req packedval.Word) packedval.Word {
	return gval ^ req
}

// flipInitial3 is flipInitial2's Kleene analogue: within req, swap the V0/V1
// planes (Kleene negation); outside req, keep gval as is.
func flipInitial3(gval packedval.Word3, req packedval.Word) packedval.Word3 {
	notG := packedval.Not3(gval)
	return packedval.Word3{
		V0: (req & notG.V0) | (^req & gval.V0),
		V1: (req & notG.V1) | (^req & gval.V1),
	}
}

func blend2(raw, mask, prev packedval.Word) packedval.Word {
	return (raw & mask) | (prev &^ mask)
}

func blend3(raw packedval.Word3, mask packedval.Word, prev packedval.Word3) packedval.Word3 {
	return packedval.Word3{
		V0: (raw.V0 & mask) | (prev.V0 &^ mask),
		V1: (raw.V1 & mask) | (prev.V1 &^ mask),
	}
}

func diffMask2(a, b packedval.Word) packedval.Word { return a ^ b }

func diffMask3(a, b packedval.Word3) packedval.Word {
	return (a.V0 ^ b.V0) | (a.V1 ^ b.V1)
}

// propagate runs one event-driven pass seeded from a single FFR root whose
// already-computed aggregate request word is req (spec.md §4.6). It returns
// the word of differing lanes reached at each output index, keyed by
// outputIndex. Per-output breakdown is always wanted by every mode this
// simulator implements, so the "mask can only shrink" early-termination
// optimization described in the design notes is deliberately not applied
// here — it is only sound when a caller only needs a single aggregate
// detected/not-detected bit.
func (s *Simulator) propagate(root int32, req packedval.Word) map[int32]packedval.Word {
	results := make(map[int32]packedval.Word)
	if req == 0 {
		return results
	}

	rootNd := &s.g.nodes[root]
	if rootNd.isOutput() {
		results[rootNd.outputIndex] = req
		if len(rootNd.fanout) == 0 {
			return results
		}
	}

	s.curGen++
	s.touched = s.touched[:0]

	if s.threeValued {
		s.setFval3(root, flipInitial3(s.gval3[root], req))
	} else {
		s.setFval2(root, flipInitial2(s.gval2[root], req))
	}
	for _, fo := range rootNd.fanout {
		s.queue.push(fo, s.g.nodes[fo].level)
	}

	s.queue.drain(func(id int32) {
		nd := &s.g.nodes[id]
		if s.threeValued {
			s.fanin3Buf = s.fanin3Buf[:0]
			for _, f := range nd.fanin {
				s.fanin3Buf = append(s.fanin3Buf, s.getFval3(f))
			}
			raw := evalGate3(nd.kind, s.fanin3Buf)
			prev := s.getFval3(id)
			newVal := blend3(raw, req, prev)
			if diffMask3(newVal, s.gval3[id])&req == 0 {
				return
			}
			s.setFval3(id, newVal)
		} else {
			s.fanin2Buf = s.fanin2Buf[:0]
			for _, f := range nd.fanin {
				s.fanin2Buf = append(s.fanin2Buf, s.getFval2(f))
			}
			raw := evalGate2(nd.kind, s.fanin2Buf)
			prev := s.getFval2(id)
			newVal := blend2(raw, req, prev)
			if diffMask2(newVal, s.gval2[id])&req == 0 {
				return
			}
			s.setFval2(id, newVal)
		}

		if nd.isOutput() {
			var d packedval.Word
			if s.threeValued {
				d = diffMask3(s.fval3[id], s.gval3[id]) & req
			} else {
				d = diffMask2(s.fval2[id], s.gval2[id]) & req
			}
			results[nd.outputIndex] |= d
		}
		for _, fo := range nd.fanout {
			s.queue.push(fo, s.g.nodes[fo].level)
		}
	})

	return results
}
