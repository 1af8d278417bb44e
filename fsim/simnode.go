package fsim

import "sort"

// simNode is one node of the dense SimNode graph built from a NetworkView:
// primary/pseudo-primary inputs occupy ids [0, terminalNum), followed by
// every other gate ordered by (level, original id) — an edge always runs
// from a lower id to a higher one (spec.md §3 "SimNode" invariant 1).
type simNode struct {
	id     int32
	kind   int8 // netlist.GateKind, narrowed for locality
	fanin  []int32
	fanout []int32
	// fanoutIpos[j] is the input position of fanout[j] that this node drives.
	fanoutIpos []int32
	level      int32

	// ffrRoot is the id of the FFR this node belongs to, assigned by
	// assignFFRRoots. Zero until that pass runs.
	ffrRoot int32

	// outputIndex is this node's position in the DiffBits output space (POs
	// first, then PPOs), or -1 if the node is not an output.
	outputIndex int32
}

func (n *simNode) isOutput() bool { return n.outputIndex >= 0 }

// graph is the built SimNode arena plus the bookkeeping needed to translate
// between a caller's original gate ids and dense SimNode ids.
type graph struct {
	nodes []simNode

	inputNum, dffNum, outputNum int
	terminalNum                 int32 // inputNum + dffNum

	origToSim map[int]int32
	piSim     []int32 // dense id of primary input i
	ppiSim    []int32 // dense id of DFF output (PPI) i
}

func (g *graph) toSim(origID int) (int32, bool) {
	id, ok := g.origToSim[origID]
	return id, ok
}

// buildGraph computes per-gate levels from nv's fanin structure (so it works
// for any NetworkView, not just one whose original ids happen to already be
// topologically ordered), then lays out the dense SimNode order.
func buildGraph(nv NetworkView) *graph {
	n := nv.NodeNum()
	levels := computeLevels(nv, n)

	order := make([]int32, 0, n)
	isTerminal := make([]bool, n)

	inputNum := nv.InputNum()
	dffNum := nv.DffNum()
	for i := 0; i < inputNum; i++ {
		id := nv.PrimaryInput(i)
		order = append(order, int32(id))
		isTerminal[id] = true
	}
	for i := 0; i < dffNum; i++ {
		id := nv.DffOutput(i)
		order = append(order, int32(id))
		isTerminal[id] = true
	}
	terminalNum := int32(len(order))

	rest := make([]int32, 0, n-len(order))
	for id := 0; id < n; id++ {
		if !isTerminal[id] {
			rest = append(rest, int32(id))
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		li, lj := levels[rest[i]], levels[rest[j]]
		if li != lj {
			return li < lj
		}
		return rest[i] < rest[j]
	})
	order = append(order, rest...)

	origToSim := make(map[int]int32, n)
	for simID, origID := range order {
		origToSim[int(origID)] = int32(simID)
	}

	outputNum := nv.OutputNum()
	outputIndexOf := make(map[int]int32, outputNum+dffNum)
	for i := 0; i < outputNum; i++ {
		outputIndexOf[nv.PrimaryOutput(i)] = int32(i)
	}
	for i := 0; i < dffNum; i++ {
		outputIndexOf[nv.DffInput(i)] = int32(outputNum + i)
	}

	nodes := make([]simNode, n)
	for simID, origID := range order {
		fanin := nv.Fanin(int(origID))
		simFanin := make([]int32, len(fanin))
		for p, f := range fanin {
			simFanin[p] = origToSim[f]
		}
		idx, isOut := outputIndexOf[int(origID)]
		if !isOut {
			idx = -1
		}
		nodes[simID] = simNode{
			id:          int32(simID),
			kind:        int8(nv.Kind(int(origID))),
			fanin:       simFanin,
			level:       levels[origID],
			outputIndex: idx,
		}
	}

	for i := range nodes {
		for p, f := range nodes[i].fanin {
			nodes[f].fanout = append(nodes[f].fanout, int32(i))
			nodes[f].fanoutIpos = append(nodes[f].fanoutIpos, int32(p))
		}
	}

	piSim := make([]int32, inputNum)
	for i := 0; i < inputNum; i++ {
		piSim[i] = origToSim[nv.PrimaryInput(i)]
	}
	ppiSim := make([]int32, dffNum)
	for i := 0; i < dffNum; i++ {
		ppiSim[i] = origToSim[nv.DffOutput(i)]
	}

	g := &graph{
		nodes:       nodes,
		inputNum:    inputNum,
		dffNum:      dffNum,
		outputNum:   outputNum,
		terminalNum: terminalNum,
		origToSim:   origToSim,
		piSim:       piSim,
		ppiSim:      ppiSim,
	}
	assignFFRRoots(g.nodes)
	return g
}

// computeLevels assigns every gate the longest input-to-node path length,
// independent of whether the caller's original ids are already
// topologically ordered.
func computeLevels(nv NetworkView, n int) []int32 {
	levels := make([]int32, n)
	done := make([]bool, n)

	var level func(id int) int32
	level = func(id int) int32 {
		if done[id] {
			return levels[id]
		}
		fanin := nv.Fanin(id)
		var max int32
		for _, f := range fanin {
			if lv := level(f); lv > max {
				max = lv
			}
		}
		if len(fanin) == 0 {
			levels[id] = 0
		} else {
			levels[id] = max + 1
		}
		done[id] = true
		return levels[id]
	}
	for id := 0; id < n; id++ {
		level(id)
	}
	return levels
}

// assignFFRRoots walks the dense graph in reverse (spec.md §4.3): a node
// with fanout other than exactly one, or that is itself an output, is its
// own FFR root; every other node inherits its single reader's root. Because
// every edge runs from a lower to a higher SimNode id, a node's fanout is
// always already resolved by the time this loop reaches it.
func assignFFRRoots(nodes []simNode) {
	for i := len(nodes) - 1; i >= 0; i-- {
		nd := &nodes[i]
		if !nd.isOutput() && len(nd.fanout) == 1 {
			nd.ffrRoot = nodes[nd.fanout[0]].ffrRoot
		} else {
			nd.ffrRoot = nd.id
		}
	}
}
