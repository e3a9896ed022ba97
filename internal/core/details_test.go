package core_test

import (
	"math/big"
	"time"
	"usdcdash/internal/core"
	"usdcdash/internal/ethereum"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MergeDetails", func() {
	var lookup ethereum.TransactionLookup

	BeforeEach(func() {
		lookup = ethereum.TransactionLookup{
			Hash:              "0xFEED",
			BlockNumber:       100,
			TxIndex:           4,
			From:              addrA,
			To:                tokenAddr,
			Value:             big.NewInt(0),
			Input:             "0xa9059cbb000000000000000000000000bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
			Gas:               60000,
			GasPrice:          big.NewInt(20000000000),
			GasUsed:           45000,
			CumulativeGasUsed: 90000,
			Status:            1,
			Timestamp:         1609459200,
			Head:              112,
			Transfers: []ethereum.TransferLog{
				liveLog("0xfeed", 100, 4, addrA, addrB, 2500000),
			},
		}
	})

	It("should let the token Transfer event supersede the raw call", func() {
		d := core.MergeDetails(lookup, tokenAddr)
		Expect(d.Hash).To(Equal("0xfeed"))
		Expect(d.From).To(Equal(addrA))
		Expect(d.To).To(Equal(addrB))
		Expect(d.Value).To(Equal("2500000"))
		Expect(d.ValueFormatted).To(Equal("2.50"))
		Expect(d.ContractAddress).To(Equal(tokenAddr))
		Expect(d.TokenSymbol).To(Equal(core.TokenSymbol))
	})

	It("should carry receipt and block data", func() {
		d := core.MergeDetails(lookup, tokenAddr)
		Expect(d.GasPrice).To(Equal("20000000000"))
		Expect(d.GasUsed).To(Equal("45000"))
		Expect(d.CumulativeGasUsed).To(Equal("90000"))
		Expect(d.Confirmations).To(Equal("12"))
		Expect(d.TimeStamp).To(Equal(time.Unix(1609459200, 0).UTC()))
		Expect(d.Status).To(Equal(uint64(1)))
		Expect(d.IsError).To(Equal("0"))
		Expect(d.MethodID).To(Equal("0xa9059cbb"))
		Expect(d.FunctionName).To(Equal("transfer"))
	})

	It("should render display values", func() {
		d := core.MergeDetails(lookup, tokenAddr)
		Expect(d.Display.Hash).To(Equal("0xfeed"))
		Expect(d.Display.From).To(Equal(addrA[:6] + "..." + addrA[len(addrA)-6:]))
		Expect(d.Display.To).To(Equal(addrB[:6] + "..." + addrB[len(addrB)-6:]))
		Expect(d.Display.Amount).To(Equal(2.5))
		Expect(d.Display.TimeStamp).To(Equal("2021-01-01 00:00:00 UTC"))
		Expect(d.Display.GasPrice).To(Equal("20.00 Gwei"))
		Expect(d.Display.GasUsed).To(Equal("45,000"))
	})

	It("should ignore Transfer events of other tokens", func() {
		other := liveLog("0xfeed", 100, 4, addrC, addrC, 7)
		other.Token = "0x0000000000000000000000000000000000000001"
		lookup.To = addrB
		lookup.Value = big.NewInt(1000000000000000000)
		lookup.Input = "0x"
		lookup.Transfers = []ethereum.TransferLog{other}

		d := core.MergeDetails(lookup, tokenAddr)
		Expect(d.From).To(Equal(addrA))
		Expect(d.To).To(Equal(addrB))
		Expect(d.Value).To(Equal("1000000000000000000"))
		Expect(d.ContractAddress).To(BeEmpty())
		Expect(d.FunctionName).To(BeEmpty())
		Expect(d.MethodID).To(BeEmpty())
	})

	It("should flag a reverted transaction", func() {
		lookup.Status = 0
		d := core.MergeDetails(lookup, tokenAddr)
		Expect(d.IsError).To(Equal("1"))
	})

	It("should report zero confirmations at the head block", func() {
		lookup.Head = lookup.BlockNumber
		Expect(core.MergeDetails(lookup, tokenAddr).Confirmations).To(Equal("0"))
	})
})
