package fsim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/yusuke-matsunaga/druid-sub000/fault"
	"github.com/yusuke-matsunaga/druid-sub000/fsim/refsim"
	"github.com/yusuke-matsunaga/druid-sub000/netlist"
	"github.com/yusuke-matsunaga/druid-sub000/tvec"
)

// These exercise spec.md §8 invariant 1, "Reference equivalence": spsfp's
// DiffBits must equal a naive gate-by-gate reference simulator's output
// difference, for both a stem and a branch fault, across the circuits
// already built elsewhere in this package.
var _ = Describe("Reference equivalence", func() {
	check := func(circ *netlist.Circuit, tv *tvec.TestVector, f fault.Fault) {
		good, prevGood := refsim.Good(circ, tv)
		faulty := refsim.Faulty(circ, tv, f, good, prevGood)
		want := refsim.DiffOutputs(circ, good, faulty)

		sim := NewBuilder().WithCircuit(circ).WithPrevState(tv.HasPrevState).Build()
		Expect(sim.SetFaultList([]fault.Fault{f})).To(Succeed())
		_, diff, err := sim.SPSFP(tv, f.ID)
		Expect(err).NotTo(HaveOccurred())

		if want == nil {
			Expect(diff.Empty()).To(BeTrue())
		} else {
			Expect(diff.Outputs()).To(Equal(want))
		}
	}

	It("agrees on a stem fault in the AND-OR tree", func() {
		circ := buildAndOr()
		and1 := 4 // see buildAndOr's add order: a,b,c,d,and1,and2,or1
		tv := tvec.New(4, 0, false)
		tv.SetPI(0, tvec.Val1)
		tv.SetPI(1, tvec.Val1)
		tv.SetPI(2, tvec.Val0)
		tv.SetPI(3, tvec.Val0)
		check(circ, tv, fault.NewStem(7, "f", and1, fault.Zero, fault.StuckAt))
	})

	It("agrees on a branch fault in the AND-OR tree", func() {
		circ := buildAndOr()
		a, and1 := 0, 4
		tv := tvec.New(4, 0, false)
		tv.SetPI(0, tvec.Val0)
		tv.SetPI(1, tvec.Val1)
		tv.SetPI(2, tvec.Val1)
		tv.SetPI(3, tvec.Val1)
		check(circ, tv, fault.NewBranch(7, "f", and1, 0, a, fault.One, fault.StuckAt))
	})

	It("agrees on the reconvergent-fanout circuit", func() {
		circ, _, _, n1, _ := buildReconvergent()
		tv := tvec.New(2, 0, false)
		tv.SetPI(0, tvec.Val0)
		tv.SetPI(1, tvec.Val1)
		check(circ, tv, fault.NewStem(7, "f", n1, fault.Zero, fault.StuckAt))
	})

	It("agrees on a transition-delay fault", func() {
		b := netlist.NewBuilder()
		a := b.AddInput("a")
		buf, _ := b.AddGate(netlist.Buf, "buf", a)
		b.MarkOutput(buf)
		circ, _ := b.Build()

		tv, err := tvec.FromString("1", 1, 0, true, "0")
		Expect(err).NotTo(HaveOccurred())
		check(circ, tv, fault.NewStem(7, "f", buf, fault.Zero, fault.TransitionDelay))
	})

	It("agrees that a transition-delay fault is not excited by the opposite direction", func() {
		b := netlist.NewBuilder()
		a := b.AddInput("a")
		buf, _ := b.AddGate(netlist.Buf, "buf", a)
		b.MarkOutput(buf)
		circ, _ := b.Build()

		// prev "0" -> cur "1" is a rising transition; a falling-declared
		// (Polarity: One) fault must not be excited by it.
		tv, err := tvec.FromString("1", 1, 0, true, "0")
		Expect(err).NotTo(HaveOccurred())
		check(circ, tv, fault.NewStem(7, "f", buf, fault.One, fault.TransitionDelay))
	})
})
