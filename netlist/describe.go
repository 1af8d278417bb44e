package netlist

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser renders a gate-kind mnemonic in Title case for human-facing
// summaries (e.g. "AND" -> "And"), the same replacement for the deprecated
// strings.Title used by the teacher's core/emu.go.
var titleCaser = cases.Title(language.English)

func (k GateKind) titleCase() string {
	return titleCaser.String(strings.ToLower(k.String()))
}

// Describe renders a one-line, human-readable summary of circ: its
// terminal counts and a tally of gate kinds present, in Title case. Used
// for construction-time logging (fsim.Builder.Build) rather than anywhere
// on the simulation hot path.
func Describe(circ *Circuit) string {
	counts := make(map[GateKind]int)
	for id := 0; id < circ.NodeNum(); id++ {
		k := circ.Kind(id)
		if !k.IsTerminal() {
			counts[k]++
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d inputs, %d dffs, %d outputs", circ.InputNum(), circ.DffNum(), circ.OutputNum())
	for k := Buf; k <= Xnor; k++ {
		if n := counts[k]; n > 0 {
			fmt.Fprintf(&sb, ", %d %s", n, k.titleCase())
		}
	}
	return sb.String()
}
