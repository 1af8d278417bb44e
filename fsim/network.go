// Package fsim implements the bit-parallel fault simulator: the SimNode
// graph built from a netlist, Fanout-Free Region partitioning, the FFR-local
// and event-driven global propagators, and the SPSFP/SPPFP/PPSFP entry
// points exposed on Simulator.
package fsim

import "github.com/yusuke-matsunaga/druid-sub000/netlist"

// NetworkView is the minimal surface fsim needs from a circuit in order to
// build its SimNode graph. *netlist.Circuit satisfies it directly; a caller
// may supply any other representation (or, in tests, a generated mock)
// instead.
type NetworkView interface {
	NodeNum() int
	InputNum() int
	DffNum() int
	OutputNum() int
	Kind(id int) netlist.GateKind
	Fanin(id int) []int
	IsOutput(id int) bool
	Name(id int) string
	PrimaryInput(i int) int
	DffOutput(i int) int
	PrimaryOutput(i int) int
	DffInput(i int) int
}

var _ NetworkView = (*netlist.Circuit)(nil)

//go:generate mockgen -write_package_comment=false -package=fsim -destination=mock_network_test.go github.com/yusuke-matsunaga/druid-sub000/fsim NetworkView
