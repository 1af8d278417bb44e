package fsim

import (
	"fmt"

	"github.com/yusuke-matsunaga/druid-sub000/fault"
	"github.com/yusuke-matsunaga/druid-sub000/fsim/packedval"
	"github.com/yusuke-matsunaga/druid-sub000/simerr"
)

// simFault is the installed, SimNode-addressed form of a fault.Fault.
type simFault struct {
	src fault.Fault

	originSim  int32
	inputSim   int32
	branchIpos int // -1 for a stem fault

	ffrRoot int32

	skip       bool
	untestable bool // src.Status was UntestableStatus at install time; a standing skip ClearSkip cannot lift
	obsMask    packedval.Word // set by the FFR-local propagator, per call
}

// effectiveSkip reports whether sf should be excluded from simulation: an
// explicit skip flag, or a caller-recorded untestable status, which
// Simulator honors as a permanent skip (spec.md §9).
func (sf *simFault) effectiveSkip() bool { return sf.skip || sf.untestable }

// faultSet is the installed fault list: per-FFR grouping for the local
// propagator, plus a lookup table for the skip-flag API.
type faultSet struct {
	all   []*simFault
	byID  map[int]*simFault
	byFFR map[int32][]*simFault // insertion order determines lane assignment
}

// setFaultList installs faults, replacing any previously installed list and
// resetting every skip flag to false (original_source's Fsim2.cc: a fresh
// fault-list install always starts from "nothing skipped").
func (s *Simulator) setFaultList(faults []fault.Fault) error {
	fs := &faultSet{
		all:   make([]*simFault, 0, len(faults)),
		byID:  make(map[int]*simFault, len(faults)),
		byFFR: make(map[int32][]*simFault),
	}
	for _, f := range faults {
		originSim, ok := s.g.toSim(f.OriginGate)
		if !ok {
			return simerr.New(simerr.InvalidArgument, "Simulator.SetFaultList",
				fmt.Sprintf("fault %d: origin gate %d is not in the bound circuit", f.ID, f.OriginGate))
		}
		inputSim, ok := s.g.toSim(f.InputGate)
		if !ok {
			return simerr.New(simerr.InvalidArgument, "Simulator.SetFaultList",
				fmt.Sprintf("fault %d: input gate %d is not in the bound circuit", f.ID, f.InputGate))
		}
		if _, dup := fs.byID[f.ID]; dup {
			return simerr.New(simerr.InvalidArgument, "Simulator.SetFaultList",
				fmt.Sprintf("duplicate fault ID %d", f.ID))
		}

		sf := &simFault{
			src:        f,
			originSim:  originSim,
			inputSim:   inputSim,
			branchIpos: f.BranchIpos,
			ffrRoot:    s.g.nodes[originSim].ffrRoot,
			untestable: f.Status.Tag() == fault.UntestableStatus,
		}
		fs.all = append(fs.all, sf)
		fs.byID[f.ID] = sf
		fs.byFFR[sf.ffrRoot] = append(fs.byFFR[sf.ffrRoot], sf)
	}
	s.faults = fs
	return nil
}

func (s *Simulator) lookupFault(id int) (*simFault, error) {
	if s.faults == nil {
		return nil, simerr.New(simerr.InvalidState, "Simulator", "no fault list installed")
	}
	sf, ok := s.faults.byID[id]
	if !ok {
		return nil, simerr.New(simerr.InvalidArgument, "Simulator", fmt.Sprintf("fault %d is not installed", id))
	}
	return sf, nil
}

// setSkip sets fault id's skip flag.
func (s *Simulator) setSkip(id int, skip bool) error {
	sf, err := s.lookupFault(id)
	if err != nil {
		return err
	}
	sf.skip = skip
	return nil
}

// getSkip returns fault id's current effective skip state (explicit skip
// flag or a standing untestable status).
func (s *Simulator) getSkip(id int) (bool, error) {
	sf, err := s.lookupFault(id)
	if err != nil {
		return false, err
	}
	return sf.effectiveSkip(), nil
}

func (s *Simulator) setSkipAll(skip bool) error {
	if s.faults == nil {
		return simerr.New(simerr.InvalidState, "Simulator", "no fault list installed")
	}
	for _, sf := range s.faults.all {
		sf.skip = skip
	}
	return nil
}

// liveFaultChunks returns root's live (non-skipped, non-untestable) faults
// split into chunks of at most packedval.LaneCount, in installation order
// (spec.md §4.4: insertion order fixes lane assignment within a chunk).
func liveFaultChunks(faults []*simFault) [][]*simFault {
	live := make([]*simFault, 0, len(faults))
	for _, sf := range faults {
		if !sf.effectiveSkip() {
			live = append(live, sf)
		}
	}
	if len(live) == 0 {
		return nil
	}
	var chunks [][]*simFault
	for len(live) > 0 {
		n := len(live)
		if n > packedval.LaneCount {
			n = packedval.LaneCount
		}
		chunks = append(chunks, live[:n])
		live = live[n:]
	}
	return chunks
}
