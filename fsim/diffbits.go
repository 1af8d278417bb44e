package fsim

import (
	"fmt"
	"sort"
	"strings"
)

// DiffBits is the set of output positions (primary outputs first, then PPOs)
// at which a simulation run observed a difference from the good circuit.
// Positions are kept sorted and unique, matching spec.md §4's "ordered
// sorted-vector index set" description of the result recorder.
type DiffBits struct {
	outputs []int
}

// NewDiffBits returns an empty DiffBits.
func NewDiffBits() *DiffBits { return &DiffBits{} }

// AddOutput records output index i, idempotently.
func (d *DiffBits) AddOutput(i int) {
	pos := sort.SearchInts(d.outputs, i)
	if pos < len(d.outputs) && d.outputs[pos] == i {
		return
	}
	d.outputs = append(d.outputs, 0)
	copy(d.outputs[pos+1:], d.outputs[pos:])
	d.outputs[pos] = i
}

// ElemNum is the number of distinct output positions recorded.
func (d *DiffBits) ElemNum() int { return len(d.outputs) }

// Output returns the k-th recorded output position, in ascending order.
func (d *DiffBits) Output(k int) int { return d.outputs[k] }

// Outputs returns the recorded output positions, ascending. The returned
// slice must not be modified by the caller.
func (d *DiffBits) Outputs() []int { return d.outputs }

// Empty reports whether no output differed (the fault was not detected by
// this call).
func (d *DiffBits) Empty() bool { return len(d.outputs) == 0 }

// Equal reports whether d and o record the same output positions.
func (d *DiffBits) Equal(o *DiffBits) bool {
	if len(d.outputs) != len(o.outputs) {
		return false
	}
	for i, v := range d.outputs {
		if o.outputs[i] != v {
			return false
		}
	}
	return true
}

// Hash returns a stable hash over the recorded output positions, suitable
// for grouping faults by equivalent observability (spec.md §4 "DiffBits").
func (d *DiffBits) Hash() uint64 {
	var h uint64 = 14695981039346656037 // FNV-1a offset basis
	for _, v := range d.outputs {
		h ^= uint64(uint32(v))
		h *= 1099511628211
	}
	return h
}

func (d *DiffBits) String() string {
	parts := make([]string, len(d.outputs))
	for i, v := range d.outputs {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// FaultDetection pairs a fault ID with the DiffBits observed for it in one
// simulation pattern.
type FaultDetection struct {
	FaultID int
	Diff    *DiffBits
}

// FsimResults collects, per test pattern, the faults detected and the
// outputs each was observed at (spec.md §4 "FsimResults"). SPPFP and XSPPFP
// always report a single pattern (index 0); PPSFP reports one entry per
// input pattern. SPSFP and XSPSFP return a DiffBits directly instead.
type FsimResults struct {
	byPattern [][]FaultDetection
}

func newFsimResults(patternNum int) *FsimResults {
	return &FsimResults{byPattern: make([][]FaultDetection, patternNum)}
}

func (r *FsimResults) record(pattern int, faultID int, diff *DiffBits) {
	r.byPattern[pattern] = append(r.byPattern[pattern], FaultDetection{FaultID: faultID, Diff: diff})
}

// NumPatterns is the number of patterns this result set covers.
func (r *FsimResults) NumPatterns() int { return len(r.byPattern) }

// Detections returns the faults detected for the given pattern index, each
// with the outputs it was observed at.
func (r *FsimResults) Detections(pattern int) []FaultDetection { return r.byPattern[pattern] }
