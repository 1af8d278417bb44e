// Package fault defines the network-level fault descriptors the simulator
// is handed via Simulator.SetFaultList, and the Status tagged union a
// caller (DTPG) uses to record how a fault was resolved.
package fault

import (
	"fmt"

	"github.com/yusuke-matsunaga/druid-sub000/simerr"
	"github.com/yusuke-matsunaga/druid-sub000/tvec"
)

// Polarity is the stuck value (stuck-at) or transition direction
// (transition-delay): 0 for stuck-at-0/rising, 1 for stuck-at-1/falling.
type Polarity int

const (
	Zero Polarity = 0
	One  Polarity = 1
)

// Type distinguishes the two supported fault models.
type Type int

const (
	StuckAt Type = iota
	TransitionDelay
)

func (t Type) String() string {
	if t == TransitionDelay {
		return "transition_delay"
	}
	return "stuck_at"
}

// Fault is a single network-level fault: a stem fault observed at a gate's
// own output, or a branch fault observed on one specific fanin edge.
type Fault struct {
	ID   int
	Name string

	// OriginGate is the gate at which the fault is observed: the faulty
	// gate itself for a stem fault, or the reader gate for a branch fault.
	OriginGate int

	// BranchIpos is the fanin position of the affected branch, or -1 for
	// a stem fault.
	BranchIpos int

	// InputGate is the gate whose value determines excitation: equal to
	// OriginGate for a stem fault, or OriginGate's driver at BranchIpos
	// for a branch fault.
	InputGate int

	Polarity Polarity
	Type     Type

	// Status is the fault's caller-recorded resolution. The zero value has
	// tag Untested. A caller (external DTPG) that has proven a fault
	// untestable sets this to NewUntestable() via WithStatus before
	// installing the fault; Simulator.SetFaultList then treats it as
	// permanently skipped, the same as spec.md §9's "per-fault
	// representation variants" note that fsim honors an untestable
	// resolution like a standing skip.
	Status Status
}

// IsBranch reports whether this is a branch fault.
func (f Fault) IsBranch() bool { return f.BranchIpos >= 0 }

// WithStatus returns a copy of f with its Status replaced.
func (f Fault) WithStatus(st Status) Fault {
	f.Status = st
	return f
}

// NewStem creates a stem fault observed at gate's own output.
func NewStem(id int, name string, gate int, polarity Polarity, typ Type) Fault {
	return Fault{ID: id, Name: name, OriginGate: gate, BranchIpos: -1, InputGate: gate, Polarity: polarity, Type: typ, Status: NewUntested()}
}

// NewBranch creates a branch fault on the fanin edge at position ipos of
// gate, driven by inputGate.
func NewBranch(id int, name string, gate, ipos, inputGate int, polarity Polarity, typ Type) Fault {
	return Fault{ID: id, Name: name, OriginGate: gate, BranchIpos: ipos, InputGate: inputGate, Polarity: polarity, Type: typ, Status: NewUntested()}
}

// StatusTag is the discriminant of Status's tagged union.
type StatusTag int

const (
	Untested StatusTag = iota
	DetectedByVector
	DetectedByAssignments
	UntestableStatus
)

// Status is a fault's resolution as recorded by a caller (DTPG): detected
// by a specific test vector, detected by a partial assignment list,
// determined untestable, or not yet resolved. Model as a tagged sum with
// accessors that fail cleanly on the wrong variant rather than simulating
// inheritance among "kinds of result" (spec design note on per-fault
// representation variants).
type Status struct {
	tag         StatusTag
	vector      *tvec.TestVector
	assignments tvec.AssignList
}

// NewUntested returns the default, unresolved status.
func NewUntested() Status { return Status{tag: Untested} }

// NewDetectedByVector returns a status recording detection by tv.
func NewDetectedByVector(tv *tvec.TestVector) Status {
	return Status{tag: DetectedByVector, vector: tv}
}

// NewDetectedByAssignments returns a status recording detection by a
// partial assignment list.
func NewDetectedByAssignments(al tvec.AssignList) Status {
	return Status{tag: DetectedByAssignments, assignments: al}
}

// NewUntestable returns the status for a fault proven to have no exciting
// input (original_source's PyFaultStatus.cc third status value).
func NewUntestable() Status { return Status{tag: UntestableStatus} }

// Tag returns the active variant.
func (s Status) Tag() StatusTag { return s.tag }

// Vector returns the detecting test vector. It fails if Tag() is not
// DetectedByVector.
func (s Status) Vector() (*tvec.TestVector, error) {
	if s.tag != DetectedByVector {
		return nil, simerr.New(simerr.InvalidState, "Status.Vector",
			fmt.Sprintf("status is %v, not DetectedByVector", s.tag))
	}
	return s.vector, nil
}

// Assignments returns the detecting assignment list. It fails if Tag() is
// not DetectedByAssignments.
func (s Status) Assignments() (tvec.AssignList, error) {
	if s.tag != DetectedByAssignments {
		return nil, simerr.New(simerr.InvalidState, "Status.Assignments",
			fmt.Sprintf("status is %v, not DetectedByAssignments", s.tag))
	}
	return s.assignments, nil
}

func (t StatusTag) String() string {
	switch t {
	case Untested:
		return "Untested"
	case DetectedByVector:
		return "DetectedByVector"
	case DetectedByAssignments:
		return "DetectedByAssignments"
	case UntestableStatus:
		return "Untestable"
	default:
		return fmt.Sprintf("StatusTag(%d)", int(t))
	}
}
