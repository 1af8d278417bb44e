package fsim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/yusuke-matsunaga/druid-sub000/fault"
	"github.com/yusuke-matsunaga/druid-sub000/netlist"
	"github.com/yusuke-matsunaga/druid-sub000/tvec"
)

// These mirror the named scenarios a careful reviewer would check against
// the spec's worked examples, one Describe per scenario letter.

var _ = Describe("Scenario A: stuck-at-1 on an AND input", func() {
	It("detects with gval(x)=0, faulty fval(x)=1", func() {
		circ, a, b, x := buildAndCircuit()
		sim := NewBuilder().WithCircuit(circ).Build()
		branch := fault.NewBranch(0, "f", x, 0, a, fault.One, fault.StuckAt)
		Expect(sim.SetFaultList([]fault.Fault{branch})).To(Succeed())

		tv := tvec.New(2, 0, false)
		tv.SetPI(0, tvec.Val0)
		tv.SetPI(1, tvec.Val1)
		_ = b

		detected, diff, err := sim.SPSFP(tv, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(detected).To(BeTrue())
		Expect(diff.Outputs()).To(Equal([]int{0}))
	})
})

var _ = Describe("Scenario A': masked via an AND-OR tree", func() {
	It("does not detect a branch fault masked by the other OR side input", func() {
		b := netlist.NewBuilder()
		a := b.AddInput("a")
		bb := b.AddInput("b")
		c := b.AddInput("c")
		d := b.AddInput("d")
		and1, _ := b.AddGate(netlist.And, "and1", a, bb)
		and2, _ := b.AddGate(netlist.And, "and2", c, d)
		or1, _ := b.AddGate(netlist.Or, "or1", and1, and2)
		b.MarkOutput(or1)
		circ, _ := b.Build()

		sim := NewBuilder().WithCircuit(circ).Build()
		branch := fault.NewBranch(0, "f", and1, 0, a, fault.One, fault.StuckAt)
		Expect(sim.SetFaultList([]fault.Fault{branch})).To(Succeed())

		tv := tvec.New(4, 0, false)
		tv.SetPI(0, tvec.Val0) // a
		tv.SetPI(1, tvec.Val1) // b
		tv.SetPI(2, tvec.Val1) // c
		tv.SetPI(3, tvec.Val1) // d

		detected, diff, err := sim.SPSFP(tv, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(detected).To(BeFalse())
		Expect(diff.Empty()).To(BeTrue())
	})
})

var _ = Describe("Scenario C: transition-delay rising fault on a buffer", func() {
	It("detects a->x's rising transition stuck low in the second frame", func() {
		b := netlist.NewBuilder()
		a := b.AddInput("a")
		x, _ := b.AddGate(netlist.Buf, "x", a)
		b.MarkOutput(x)
		circ, _ := b.Build()

		sim := NewBuilder().WithCircuit(circ).WithPrevState(true).Build()
		Expect(sim.SetFaultList([]fault.Fault{fault.NewStem(0, "f", x, fault.Zero, fault.TransitionDelay)})).To(Succeed())

		tv, err := tvec.FromString("1", 1, 0, true, "0")
		Expect(err).NotTo(HaveOccurred())

		detected, diff, err := sim.SPSFP(tv, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(detected).To(BeTrue())
		Expect(diff.Outputs()).To(Equal([]int{0}))
	})
})

var _ = Describe("Scenario D: three-valued X masking", func() {
	It("does not detect a stuck-at-0 on b when a is X but b=0 already forces the AND to 0", func() {
		circ, _, b, _ := buildAndCircuit()
		sim := NewBuilder().WithCircuit(circ).WithXValues(true).Build()
		Expect(sim.SetFaultList([]fault.Fault{fault.NewStem(0, "f", b, fault.Zero, fault.StuckAt)})).To(Succeed())

		tv := tvec.New(2, 0, false)
		tv.SetPI(0, tvec.ValX)
		tv.SetPI(1, tvec.Val0)

		detected, _, err := sim.SPSFP(tv, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(detected).To(BeFalse())
	})
})

var _ = Describe("Scenario E: DFF pseudo-output indexing", func() {
	It("records a PPO detection at offset output_num + dff_id", func() {
		b := netlist.NewBuilder()
		a := b.AddInput("a")
		notA, _ := b.AddGate(netlist.Not, "notA", a)
		dff := b.AddDFFOutput("q")
		b.SetDFFInput(0, notA)
		circ, err := b.Build()
		Expect(err).NotTo(HaveOccurred())
		_ = dff

		sim := NewBuilder().WithCircuit(circ).Build()
		Expect(sim.SetFaultList([]fault.Fault{fault.NewStem(0, "f", a, fault.Zero, fault.StuckAt)})).To(Succeed())

		tv := tvec.New(1, 1, false)
		tv.SetPI(0, tvec.Val1)
		tv.SetPPI(0, tvec.Val0) // unread by this circuit, but must be binary

		detected, diff, err := sim.SPSFP(tv, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(detected).To(BeTrue())
		// output_num is 0 here, dff index 0 -> PPO offset 0.
		Expect(diff.Outputs()).To(Equal([]int{0}))
	})
})

var _ = Describe("Scenario F: PPSFP packing agrees with repeated SPSFP", func() {
	It("matches per-pattern detection and DiffBits between ppsfp and three spsfp calls", func() {
		circ, _, _, x := buildAndCircuit()
		sim := NewBuilder().WithCircuit(circ).Build()
		Expect(sim.SetFaultList([]fault.Fault{fault.NewStem(0, "f", x, fault.Zero, fault.StuckAt)})).To(Succeed())

		patterns := []struct{ a, b tvec.Val3 }{
			{tvec.Val1, tvec.Val1},
			{tvec.Val0, tvec.Val1},
			{tvec.Val1, tvec.Val0},
		}
		tvs := make([]*tvec.TestVector, len(patterns))
		for i, p := range patterns {
			tvs[i] = tvec.New(2, 0, false)
			tvs[i].SetPI(0, p.a)
			tvs[i].SetPI(1, p.b)
		}

		batch, err := sim.PPSFP(tvs)
		Expect(err).NotTo(HaveOccurred())
		Expect(batch.NumPatterns()).To(Equal(3))

		for i, tv := range tvs {
			detected, diff, err := sim.SPSFP(tv, 0)
			Expect(err).NotTo(HaveOccurred())

			dets := batch.Detections(i)
			if detected {
				Expect(dets).To(HaveLen(1))
				Expect(dets[0].Diff.Outputs()).To(Equal(diff.Outputs()))
			} else {
				Expect(dets).To(BeEmpty())
			}
		}
	})
})
