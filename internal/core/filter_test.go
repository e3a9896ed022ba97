package core_test

import (
	"usdcdash/internal/core"

	"github.com/jellydator/validation"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func block(n uint64) *uint64 {
	return &n
}

var _ = Describe("Filter", func() {
	Describe("Normalize", func() {
		It("should apply defaults to zero values", func() {
			f := core.Filter{}.Normalize()
			Expect(f.Sort).To(Equal(core.SortDesc))
			Expect(f.Page).To(Equal(core.DefaultPage))
			Expect(f.Offset).To(Equal(core.DefaultOffset))
			Expect(f.StartBlock).To(BeNil())
			Expect(f.EndBlock).To(BeNil())
		})

		It("should keep explicit values", func() {
			f := core.Filter{Sort: core.SortAsc, Page: 3, Offset: 25, StartBlock: block(10)}.Normalize()
			Expect(f).To(Equal(core.Filter{Sort: core.SortAsc, Page: 3, Offset: 25, StartBlock: block(10)}))
		})
	})

	Describe("Validate", func() {
		DescribeTable("rejects",
			func(f core.Filter, field string) {
				err := f.Normalize().Validate()
				Expect(err).To(HaveOccurred())

				var verrs validation.Errors
				Expect(err).To(BeAssignableToTypeOf(verrs))
				Expect(err.(validation.Errors)).To(HaveKey(field))
			},
			Entry("unknown sort", core.Filter{Sort: "sideways"}, "sort"),
			Entry("negative page", core.Filter{Page: -1}, "page"),
			Entry("offset above max", core.Filter{Offset: core.MaxOffset + 1}, "offset"),
			Entry("inverted block range", core.Filter{StartBlock: block(20), EndBlock: block(10)}, "endBlock"),
		)

		It("should accept the stats filter", func() {
			Expect(core.StatsFilter().Validate()).To(Succeed())
		})

		It("should accept an equal block range", func() {
			Expect(core.Filter{StartBlock: block(10), EndBlock: block(10)}.Normalize().Validate()).To(Succeed())
		})
	})

	Describe("CacheKey", func() {
		It("should render the normalized filter", func() {
			Expect(core.Filter{}.CacheKey()).To(Equal("desc:1:100::"))
			Expect(core.Filter{Sort: core.SortAsc, StartBlock: block(5), EndBlock: block(9)}.CacheKey()).
				To(Equal("asc:1:100:5:9"))
		})

		It("should not tell defaults from their explicit values", func() {
			Expect(core.Filter{}.CacheKey()).To(Equal(core.StatsFilter().CacheKey()))
		})
	})
})
