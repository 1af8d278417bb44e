package fsim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DiffBits", func() {
	It("stays sorted and de-duplicates", func() {
		d := NewDiffBits()
		d.AddOutput(3)
		d.AddOutput(1)
		d.AddOutput(3)
		d.AddOutput(2)
		Expect(d.Outputs()).To(Equal([]int{1, 2, 3}))
		Expect(d.ElemNum()).To(Equal(3))
	})

	It("is empty until something is added", func() {
		Expect(NewDiffBits().Empty()).To(BeTrue())
	})

	It("compares equal regardless of insertion order", func() {
		a, b := NewDiffBits(), NewDiffBits()
		a.AddOutput(1)
		a.AddOutput(2)
		b.AddOutput(2)
		b.AddOutput(1)
		Expect(a.Equal(b)).To(BeTrue())
	})

	It("hashes equal sets to the same value", func() {
		a, b := NewDiffBits(), NewDiffBits()
		a.AddOutput(5)
		b.AddOutput(5)
		Expect(a.Hash()).To(Equal(b.Hash()))
	})
})

var _ = Describe("FsimResults", func() {
	It("records detections per pattern", func() {
		r := newFsimResults(2)
		d := NewDiffBits()
		d.AddOutput(0)
		r.record(1, 42, d)
		Expect(r.NumPatterns()).To(Equal(2))
		Expect(r.Detections(0)).To(BeEmpty())
		Expect(r.Detections(1)).To(HaveLen(1))
		Expect(r.Detections(1)[0].FaultID).To(Equal(42))
	})
})
