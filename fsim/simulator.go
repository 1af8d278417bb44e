package fsim

import (
	"fmt"
	"log/slog"

	"github.com/yusuke-matsunaga/druid-sub000/fault"
	"github.com/yusuke-matsunaga/druid-sub000/fsim/packedval"
	"github.com/yusuke-matsunaga/druid-sub000/simerr"
	"github.com/yusuke-matsunaga/druid-sub000/tvec"
)

// Simulator is the bound simulator core: a SimNode graph built once from a
// NetworkView, plus the packed good/previous/faulty-value storage the
// propagators read and write. Every public method here is synchronous and
// single-threaded (spec.md §5): none of them suspend or hand control to
// another goroutine mid-call.
type Simulator struct {
	g *graph

	threeValued  bool
	hasPrevState bool

	gval2, hval2, fval2 []packedval.Word
	gval3, hval3, fval3 []packedval.Word3
	fvalGen             []uint32
	curGen              uint32

	queue     *levelQueue
	touched   []int32
	fanin2Buf []packedval.Word
	fanin3Buf []packedval.Word3

	faults *faultSet

	logger *slog.Logger
}

// SetFaultList installs the faults the simulator evaluates, replacing any
// previously installed list and resetting every skip flag to false.
func (s *Simulator) SetFaultList(faults []fault.Fault) error {
	if err := s.setFaultList(faults); err != nil {
		return err
	}
	s.logger.Info("fsim: fault list installed", "faults", len(faults), "ffrs", len(s.faults.byFFR))
	return nil
}

// SetSkip marks fault id to be skipped by subsequent simulation calls.
func (s *Simulator) SetSkip(id int) error { return s.setSkip(id, true) }

// ClearSkip clears fault id's skip flag. A fault installed with an
// untestable status stays skipped.
func (s *Simulator) ClearSkip(id int) error { return s.setSkip(id, false) }

// SetSkipAll marks every installed fault to be skipped.
func (s *Simulator) SetSkipAll() error { return s.setSkipAll(true) }

// ClearSkipAll clears every installed fault's skip flag. Faults installed
// with an untestable status stay skipped.
func (s *Simulator) ClearSkipAll() error { return s.setSkipAll(false) }

// GetSkip reports whether fault id is currently skipped: its skip flag is
// set, or it was installed with an untestable status.
func (s *Simulator) GetSkip(id int) (bool, error) { return s.getSkip(id) }

// loadVector validates tv against this simulator's configuration and runs
// the good-value (and, if needed, previous-time-frame) combinational wave.
func (s *Simulator) loadVector(op string, tv *tvec.TestVector) error {
	if tv.InputNum != s.g.inputNum || tv.DffNum != s.g.dffNum {
		return simerr.New(simerr.InvalidArgument, op, "test vector size does not match the bound circuit")
	}
	if s.hasPrevState && !tv.HasPrevState {
		return simerr.New(simerr.InvalidState, op, "simulator requires a previous-state test vector")
	}
	if !s.threeValued && !tv.IsBinary() {
		return simerr.New(simerr.ValueError, op, "test vector has X values but the simulator is 2-valued")
	}

	if s.hasPrevState {
		s.broadcastFrame(tv, true)
		s.runPrevWave()
	}
	s.broadcastFrame(tv, false)
	s.runGoodWave()
	return nil
}

func (s *Simulator) broadcastFrame(tv *tvec.TestVector, prev bool) {
	for i := 0; i < s.g.inputNum; i++ {
		var v tvec.Val3
		if prev {
			v, _ = tv.PrevPI(i) // loadVector already checked HasPrevState
		} else {
			v = tv.PI(i)
		}
		s.setTerminal(s.g.piSim[i], v, prev)
	}
	for i := 0; i < s.g.dffNum; i++ {
		// The PPI slot holds the register's current-frame state; the same
		// value is used to evaluate both time frames (spec.md §6's
		// previous-frame vector covers PIs only).
		s.setTerminal(s.g.ppiSim[i], tv.PPI(i), prev)
	}
}

func (s *Simulator) setTerminal(id int32, v tvec.Val3, prev bool) {
	if s.threeValued {
		w := word3FromVal3(v)
		if prev {
			s.hval3[id] = w
		} else {
			s.gval3[id] = w
		}
		return
	}
	w := word2FromVal3(v)
	if prev {
		s.hval2[id] = w
	} else {
		s.gval2[id] = w
	}
}

func (s *Simulator) runGoodWave() {
	for i := int(s.g.terminalNum); i < len(s.g.nodes); i++ {
		nd := &s.g.nodes[i]
		if s.threeValued {
			s.fanin3Buf = s.fanin3Buf[:0]
			for _, f := range nd.fanin {
				s.fanin3Buf = append(s.fanin3Buf, s.gval3[f])
			}
			s.gval3[i] = evalGate3(nd.kind, s.fanin3Buf)
		} else {
			s.fanin2Buf = s.fanin2Buf[:0]
			for _, f := range nd.fanin {
				s.fanin2Buf = append(s.fanin2Buf, s.gval2[f])
			}
			s.gval2[i] = evalGate2(nd.kind, s.fanin2Buf)
		}
	}
}

func (s *Simulator) runPrevWave() {
	for i := int(s.g.terminalNum); i < len(s.g.nodes); i++ {
		nd := &s.g.nodes[i]
		if s.threeValued {
			s.fanin3Buf = s.fanin3Buf[:0]
			for _, f := range nd.fanin {
				s.fanin3Buf = append(s.fanin3Buf, s.hval3[f])
			}
			s.hval3[i] = evalGate3(nd.kind, s.fanin3Buf)
		} else {
			s.fanin2Buf = s.fanin2Buf[:0]
			for _, f := range nd.fanin {
				s.fanin2Buf = append(s.fanin2Buf, s.hval2[f])
			}
			s.hval2[i] = evalGate2(nd.kind, s.fanin2Buf)
		}
	}
}

// decodeLane builds the DiffBits for a single lane from a propagate() result.
func decodeLane(out map[int32]packedval.Word, lane int) *DiffBits {
	d := NewDiffBits()
	for outIdx, word := range out {
		if word.Bit(lane) == 1 {
			d.AddOutput(int(outIdx))
		}
	}
	return d
}

// SPSFP runs a single pattern against a single fault (single-pattern,
// single-fault propagation).
func (s *Simulator) SPSFP(tv *tvec.TestVector, faultID int) (bool, *DiffBits, error) {
	const op = "Simulator.SPSFP"
	if err := s.loadVector(op, tv); err != nil {
		return false, nil, err
	}
	sf, err := s.lookupFault(faultID)
	if err != nil {
		return false, nil, err
	}
	if sf.effectiveSkip() {
		return false, NewDiffBits(), nil
	}

	req := s.runFFRLocal(sf.ffrRoot, []*simFault{sf}, false)
	out := s.propagate(sf.ffrRoot, req)
	diff := decodeLane(out, 0)
	return !diff.Empty(), diff, nil
}

// SPPFP runs a single pattern against every installed, non-skipped fault
// (single-pattern, parallel-fault propagation), packing up to
// packedval.LaneCount faults per FFR per pass.
func (s *Simulator) SPPFP(tv *tvec.TestVector) (*FsimResults, error) {
	const op = "Simulator.SPPFP"
	if s.faults == nil {
		return nil, simerr.New(simerr.InvalidState, op, "no fault list installed")
	}
	if err := s.loadVector(op, tv); err != nil {
		return nil, err
	}

	results := newFsimResults(1)
	for root, faults := range s.faults.byFFR {
		for _, chunk := range liveFaultChunks(faults) {
			req := s.runFFRLocal(root, chunk, true)
			out := s.propagate(root, req)
			for lane, sf := range chunk {
				diff := decodeLane(out, lane)
				if !diff.Empty() {
					results.record(0, sf.src.ID, diff)
				}
			}
		}
	}
	return results, nil
}

// PPSFP runs up to packedval.LaneCount patterns against every installed,
// non-skipped fault (pattern-parallel, single-fault propagation): each
// pattern occupies one lane and faults are evaluated one at a time.
func (s *Simulator) PPSFP(tvs []*tvec.TestVector) (*FsimResults, error) {
	const op = "Simulator.PPSFP"
	if len(tvs) == 0 {
		return newFsimResults(0), nil
	}
	if len(tvs) > packedval.LaneCount {
		return nil, simerr.New(simerr.InvalidArgument, op,
			fmt.Sprintf("at most %d patterns per call, got %d", packedval.LaneCount, len(tvs)))
	}
	if s.faults == nil {
		return nil, simerr.New(simerr.InvalidState, op, "no fault list installed")
	}
	if err := s.loadVectors(op, tvs); err != nil {
		return nil, err
	}

	results := newFsimResults(len(tvs))
	for _, sf := range s.faults.all {
		if sf.effectiveSkip() {
			continue
		}
		req := s.runFFRLocal(sf.ffrRoot, []*simFault{sf}, false)
		out := s.propagate(sf.ffrRoot, req)
		for lane := 0; lane < len(tvs); lane++ {
			diff := decodeLane(out, lane)
			if !diff.Empty() {
				results.record(lane, sf.src.ID, diff)
			}
		}
	}
	return results, nil
}

func (s *Simulator) loadVectors(op string, tvs []*tvec.TestVector) error {
	for _, tv := range tvs {
		if tv.InputNum != s.g.inputNum || tv.DffNum != s.g.dffNum {
			return simerr.New(simerr.InvalidArgument, op, "test vector size does not match the bound circuit")
		}
		if s.hasPrevState && !tv.HasPrevState {
			return simerr.New(simerr.InvalidState, op, "simulator requires a previous-state test vector")
		}
		if !s.threeValued && !tv.IsBinary() {
			return simerr.New(simerr.ValueError, op, "test vector has X values but the simulator is 2-valued")
		}
	}
	if s.hasPrevState {
		s.broadcastFramePacked(tvs, true)
		s.runPrevWave()
	}
	s.broadcastFramePacked(tvs, false)
	s.runGoodWave()
	return nil
}

func (s *Simulator) broadcastFramePacked(tvs []*tvec.TestVector, prev bool) {
	n := len(tvs)
	for i := 0; i < s.g.inputNum; i++ {
		id := s.g.piSim[i]
		if s.threeValued {
			var w packedval.Word3
			for lane := 0; lane < n; lane++ {
				w = setLane3(w, lane, picked(tvs[lane], i, -1, prev))
			}
			if prev {
				s.hval3[id] = w
			} else {
				s.gval3[id] = w
			}
		} else {
			var w packedval.Word
			for lane := 0; lane < n; lane++ {
				w = setLane2(w, lane, picked(tvs[lane], i, -1, prev))
			}
			if prev {
				s.hval2[id] = w
			} else {
				s.gval2[id] = w
			}
		}
	}
	for i := 0; i < s.g.dffNum; i++ {
		id := s.g.ppiSim[i]
		if s.threeValued {
			var w packedval.Word3
			for lane := 0; lane < n; lane++ {
				w = setLane3(w, lane, picked(tvs[lane], -1, i, prev))
			}
			if prev {
				s.hval3[id] = w
			} else {
				s.gval3[id] = w
			}
		} else {
			var w packedval.Word
			for lane := 0; lane < n; lane++ {
				w = setLane2(w, lane, picked(tvs[lane], -1, i, prev))
			}
			if prev {
				s.hval2[id] = w
			} else {
				s.gval2[id] = w
			}
		}
	}
}

// picked reads either PI index piIdx (when piIdx >= 0, previous frame if
// prev) or PPI index ppiIdx (when ppiIdx >= 0, always current-frame).
func picked(tv *tvec.TestVector, piIdx, ppiIdx int, prev bool) tvec.Val3 {
	if ppiIdx >= 0 {
		return tv.PPI(ppiIdx)
	}
	if prev {
		v, _ := tv.PrevPI(piIdx)
		return v
	}
	return tv.PI(piIdx)
}

// idToIndex maps an original gate ID to its position in a TestVector's
// current frame (tvec.AssignList.ToTestVector's idToIndex contract).
func (s *Simulator) idToIndex(gateID int) (int, bool) {
	simID, ok := s.g.toSim(gateID)
	if !ok {
		return 0, false
	}
	for i, id := range s.g.piSim {
		if id == simID {
			return i, true
		}
	}
	for i, id := range s.g.ppiSim {
		if id == simID {
			return s.g.inputNum + i, true
		}
	}
	return 0, false
}

// XSPSFP is SPSFP over a partial assignment instead of a full test vector:
// unassigned PI/PPI bits are left at X, which requires a 3-valued simulator.
func (s *Simulator) XSPSFP(al tvec.AssignList, faultID int) (bool, *DiffBits, error) {
	const op = "Simulator.XSPSFP"
	if !s.threeValued {
		return false, nil, simerr.New(simerr.InvalidState, op, "xspsfp requires a 3-valued simulator")
	}
	tv, err := al.ToTestVector(s.g.inputNum, s.g.dffNum, s.idToIndex)
	if err != nil {
		return false, nil, err
	}
	return s.SPSFP(tv, faultID)
}

// XSPPFP is SPPFP over a partial assignment instead of a full test vector.
func (s *Simulator) XSPPFP(al tvec.AssignList) (*FsimResults, error) {
	const op = "Simulator.XSPPFP"
	if !s.threeValued {
		return nil, simerr.New(simerr.InvalidState, op, "xsppfp requires a 3-valued simulator")
	}
	tv, err := al.ToTestVector(s.g.inputNum, s.g.dffNum, s.idToIndex)
	if err != nil {
		return nil, err
	}
	return s.SPPFP(tv)
}
