package format_test

import (
	"math/big"
	"time"
	"usdcdash/internal/format"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Format", func() {
	Describe("Address", func() {
		It("keeps the leading and trailing characters", func() {
			Expect(format.Address("0x1234567890123456789012345678901234567890", 4)).To(Equal("0x12...7890"))
		})

		It("uses six characters by default", func() {
			Expect(format.Address("0x1234567890123456789012345678901234567890", 0)).To(Equal("0x1234...567890"))
		})

		It("returns short input untouched", func() {
			Expect(format.Address("0x12", 4)).To(Equal("0x12"))
		})

		It("handles an empty address", func() {
			Expect(format.Address("", 6)).To(BeEmpty())
		})
	})

	Describe("TransactionHash", func() {
		It("shortens a full hash", func() {
			hash := "0x1234567890123456789012345678901234567890123456789012345678901234"
			Expect(format.TransactionHash(hash)).To(Equal("0x12345678...78901234"))
		})

		It("handles an empty hash", func() {
			Expect(format.TransactionHash("")).To(BeEmpty())
		})
	})

	Describe("Balance", func() {
		DescribeTable("token precision",
			func(raw, expected string) {
				Expect(format.Balance(raw, format.TokenDecimals)).To(Equal(expected))
			},
			Entry("one token", "1000000", "1.00"),
			Entry("zero", "0", "0.00"),
			Entry("empty", "", "0"),
			Entry("fractional", "2500000", "2.50"),
			Entry("six digits", "1234567", "1.234567"),
			Entry("grouped thousands", "1234567000000", "1,234,567.00"),
			Entry("garbage", "abc", "0"),
		)

		It("uses fixed digits for ether precision", func() {
			Expect(format.Balance("1000000000000000", format.EtherDecimals)).To(Equal("0.001000"))
		})
	})

	Describe("Units", func() {
		It("scales raw values", func() {
			Expect(format.Units("2500000", format.TokenDecimals)).To(Equal(2.5))
			Expect(format.UnitsOf(big.NewInt(1000000), format.TokenDecimals)).To(Equal(1.0))
		})

		It("returns zero for malformed input", func() {
			Expect(format.Units("", format.TokenDecimals)).To(BeZero())
			Expect(format.UnitsOf(nil, format.TokenDecimals)).To(BeZero())
		})
	})

	Describe("DateTime", func() {
		It("renders unix seconds", func() {
			Expect(format.DateTime(time.Unix(1609459200, 0))).To(Equal("2021-01-01 00:00:00 UTC"))
		})

		It("renders nothing for zero time", func() {
			Expect(format.DateTime(time.Time{})).To(BeEmpty())
		})
	})

	Describe("GasPrice", func() {
		It("converts wei to gwei", func() {
			Expect(format.GasPrice("20000000000")).To(Equal("20.00 Gwei"))
			Expect(format.GasPrice("1000000000")).To(Equal("1.00 Gwei"))
		})
	})

	Describe("GasUsed", func() {
		It("parses hex", func() {
			Expect(format.GasUsed("0x5208")).To(Equal("21,000"))
		})

		It("parses decimal", func() {
			Expect(format.GasUsed("65000")).To(Equal("65,000"))
		})

		It("handles zero", func() {
			Expect(format.GasUsed("0x0")).To(Equal("0"))
		})
	})

	Describe("ParseUnits", func() {
		It("converts decimals exactly", func() {
			v, ok := format.ParseUnits("12.345678", format.TokenDecimals)
			Expect(ok).To(BeTrue())
			Expect(v.String()).To(Equal("12345678"))
		})

		It("keeps the sign", func() {
			v, ok := format.ParseUnits("-5", format.TokenDecimals)
			Expect(ok).To(BeTrue())
			Expect(v.Sign()).To(Equal(-1))
		})

		It("rejects excess precision", func() {
			_, ok := format.ParseUnits("0.0000001", format.TokenDecimals)
			Expect(ok).To(BeFalse())
		})

		It("rejects non numeric input", func() {
			_, ok := format.ParseUnits("1e6", format.TokenDecimals)
			Expect(ok).To(BeFalse())
			_, ok = format.ParseUnits(".", format.TokenDecimals)
			Expect(ok).To(BeFalse())
		})
	})
})
