// Package tvec implements TestVector, the simulator's input-pattern type,
// and Assignment/AssignList, the partial-assignment representation used by
// the x-prefixed simulation entry points and by fault status bookkeeping.
package tvec

import (
	"fmt"
	"strings"

	"github.com/yusuke-matsunaga/druid-sub000/simerr"
)

// Val3 is a single three-valued logic value.
type Val3 int

const (
	ValX Val3 = iota
	Val0
	Val1
)

func (v Val3) String() string {
	switch v {
	case Val0:
		return "0"
	case Val1:
		return "1"
	default:
		return "X"
	}
}

func charToVal3(ch byte) (Val3, error) {
	switch ch {
	case '0':
		return Val0, nil
	case '1':
		return Val1, nil
	case 'X', 'x', '?':
		return ValX, nil
	default:
		return ValX, fmt.Errorf("invalid test-vector character %q", ch)
	}
}

// TestVector is one simulation input: InputNum values for the primary
// inputs followed by DffNum values for the pseudo-primary inputs (DFF
// outputs), plus, when HasPrevState is set, InputNum more values holding
// the previous time frame's primary-input assignment (flip-flops have no
// "previous previous" state in frame 1, so the previous frame covers PIs
// only — see original_source/c++-src/types/tvect/TestVector.cc).
type TestVector struct {
	InputNum     int
	DffNum       int
	HasPrevState bool

	cur  []Val3 // len InputNum+DffNum
	prev []Val3 // len InputNum, only meaningful when HasPrevState
}

// New creates an all-X test vector sized for a circuit with the given
// input/DFF counts.
func New(inputNum, dffNum int, hasPrevState bool) *TestVector {
	tv := &TestVector{InputNum: inputNum, DffNum: dffNum, HasPrevState: hasPrevState,
		cur: make([]Val3, inputNum+dffNum)}
	if hasPrevState {
		tv.prev = make([]Val3, inputNum)
	}
	return tv
}

// SetPI sets primary input i's value in the current frame.
func (tv *TestVector) SetPI(i int, v Val3) { tv.cur[i] = v }

// PI returns primary input i's value in the current frame.
func (tv *TestVector) PI(i int) Val3 { return tv.cur[i] }

// SetPPI sets pseudo-primary input (DFF) i's value.
func (tv *TestVector) SetPPI(i int, v Val3) { tv.cur[tv.InputNum+i] = v }

// PPI returns pseudo-primary input (DFF) i's value.
func (tv *TestVector) PPI(i int) Val3 { return tv.cur[tv.InputNum+i] }

// SetPrevPI sets primary input i's value in the previous time frame. It
// panics if the vector was not constructed with HasPrevState.
func (tv *TestVector) SetPrevPI(i int, v Val3) {
	if !tv.HasPrevState {
		panic("SetPrevPI: test vector has no previous-state frame")
	}
	tv.prev[i] = v
}

// PrevPI returns primary input i's value in the previous time frame. It
// returns a *simerr.SimError of kind InvalidState if HasPrevState is false.
func (tv *TestVector) PrevPI(i int) (Val3, error) {
	if !tv.HasPrevState {
		return ValX, simerr.New(simerr.InvalidState, "TestVector.PrevPI",
			"vector was not constructed with a previous-state frame")
	}
	return tv.prev[i], nil
}

// Len is the total number of current-frame bits (InputNum+DffNum).
func (tv *TestVector) Len() int { return len(tv.cur) }

// FromString parses s into the current frame, most-significant character
// first (s[0] is bit Len()-1). Previous-frame bits, if hasPrevState, are
// parsed from prevS the same way and must have length InputNum.
func FromString(s string, inputNum, dffNum int, hasPrevState bool, prevS string) (*TestVector, error) {
	tv := New(inputNum, dffNum, hasPrevState)
	if len(s) != len(tv.cur) {
		return nil, simerr.New(simerr.InvalidArgument, "tvec.FromString",
			fmt.Sprintf("expected %d characters, got %d", len(tv.cur), len(s)))
	}
	for i := 0; i < len(s); i++ {
		v, err := charToVal3(s[len(s)-1-i])
		if err != nil {
			return nil, simerr.Wrap(simerr.InvalidArgument, "tvec.FromString", "bad character", err)
		}
		tv.cur[i] = v
	}
	if hasPrevState {
		if len(prevS) != inputNum {
			return nil, simerr.New(simerr.InvalidArgument, "tvec.FromString",
				fmt.Sprintf("expected %d previous-frame characters, got %d", inputNum, len(prevS)))
		}
		for i := 0; i < len(prevS); i++ {
			v, err := charToVal3(prevS[len(prevS)-1-i])
			if err != nil {
				return nil, simerr.Wrap(simerr.InvalidArgument, "tvec.FromString", "bad character", err)
			}
			tv.prev[i] = v
		}
	}
	return tv, nil
}

// IsBinary reports whether every assigned bit (current and, if present,
// previous frame) is 0 or 1 — i.e. the vector is valid input to a
// 2-valued simulator.
func (tv *TestVector) IsBinary() bool {
	for _, v := range tv.cur {
		if v == ValX {
			return false
		}
	}
	for _, v := range tv.prev {
		if v == ValX {
			return false
		}
	}
	return true
}

// String renders the current frame, most-significant character first.
func (tv *TestVector) String() string {
	var sb strings.Builder
	for i := len(tv.cur) - 1; i >= 0; i-- {
		sb.WriteString(tv.cur[i].String())
	}
	return sb.String()
}

// Assignment is a single gate-ID/value pair, used for partial assignment
// lists (original_source's AssignList.cc).
type Assignment struct {
	GateID int
	Value  Val3
}

// AssignList is an ordered list of Assignments.
type AssignList []Assignment

// ToTestVector materializes an AssignList as a TestVector with positions
// 0..inputNum+dffNum-1, unassigned positions left at X. idToIndex maps a
// gate ID to its position in the vector (PI index, or InputNum+dffIndex
// for a PPI); it returns false for gate IDs that aren't PI/PPI terminals.
func (al AssignList) ToTestVector(inputNum, dffNum int, idToIndex func(gateID int) (int, bool)) (*TestVector, error) {
	tv := New(inputNum, dffNum, false)
	for _, a := range al {
		idx, ok := idToIndex(a.GateID)
		if !ok {
			return nil, simerr.New(simerr.InvalidArgument, "AssignList.ToTestVector",
				fmt.Sprintf("gate %d is not a PI/PPI terminal", a.GateID))
		}
		tv.cur[idx] = a.Value
	}
	return tv, nil
}
