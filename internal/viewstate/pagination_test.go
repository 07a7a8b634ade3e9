package viewstate_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"witnessconsole/internal/viewstate"
)

var _ = Describe("Pagination", func() {
	DescribeTable("TotalPages",
		func(total int64, limit, expected int) {
			Expect(viewstate.TotalPages(total, limit)).To(Equal(expected))
		},
		Entry("no results", int64(0), 24, 0),
		Entry("partial page", int64(1), 24, 1),
		Entry("exact fit", int64(48), 24, 2),
		Entry("one over", int64(49), 24, 3),
		Entry("bad limit", int64(10), 0, 0),
	)

	It("should clamp pages into range", func() {
		Expect(viewstate.ClampPage(0, 5)).To(Equal(1))
		Expect(viewstate.ClampPage(9, 5)).To(Equal(5))
		Expect(viewstate.ClampPage(3, 5)).To(Equal(3))
		Expect(viewstate.ClampPage(3, 0)).To(Equal(1))
	})

	It("should centre the window on the current page", func() {
		Expect(viewstate.PageWindow(5, 10, 5)).To(Equal([]int{3, 4, 5, 6, 7}))
		Expect(viewstate.PageWindow(1, 10, 5)).To(Equal([]int{1, 2, 3, 4, 5}))
		Expect(viewstate.PageWindow(10, 10, 5)).To(Equal([]int{6, 7, 8, 9, 10}))
		Expect(viewstate.PageWindow(2, 3, 5)).To(Equal([]int{1, 2, 3}))
		Expect(viewstate.PageWindow(1, 0, 5)).To(BeEmpty())
	})

	It("should never render a page outside [1, totalPages]", func() {
		for total := 0; total <= 12; total++ {
			for current := -2; current <= total+3; current++ {
				for size := 0; size <= 7; size++ {
					for _, p := range viewstate.PageWindow(current, total, size) {
						Expect(p).To(BeNumerically(">=", 1))
						Expect(p).To(BeNumerically("<=", total))
					}
				}
			}
		}
	})

	It("should describe the pager", func() {
		p := viewstate.NewPagination(9, 24, 100)

		Expect(p.TotalPages).To(Equal(5))
		Expect(p.Page).To(Equal(5))
		Expect(p.HasNext).To(BeFalse())
		Expect(p.HasPrev).To(BeTrue())
		Expect(p.Window).To(Equal([]int{1, 2, 3, 4, 5}))
	})
})
