package core_test

import (
	"time"
	"usdcdash/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func txAt(hash, from, to, value string, at time.Time) core.Transaction {
	return core.Transaction{Hash: hash, From: from, To: to, Value: value, TimeStamp: at}
}

var _ = Describe("Stats", func() {
	day := func(d int) time.Time {
		return time.Date(2024, 5, d, 10, 0, 0, 0, time.UTC)
	}

	Describe("ComputeStats", func() {
		It("should split sent and received in token units", func() {
			stats := core.ComputeStats([]core.Transaction{
				txAt("0x1", addrA, addrB, "1000000", day(1)),
				txAt("0x2", addrC, addrA, "2500000", day(1)),
			}, addrA)

			Expect(stats.TotalTransactions).To(Equal(2))
			Expect(stats.TotalSent).To(Equal(1.0))
			Expect(stats.TotalReceived).To(Equal(2.5))
			Expect(stats.TotalSentRaw).To(Equal("1000000"))
			Expect(stats.TotalReceivedRaw).To(Equal("2500000"))
		})

		It("should compare addresses case-insensitively", func() {
			stats := core.ComputeStats([]core.Transaction{
				txAt("0x1", "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", addrB, "1000000", day(1)),
			}, "0xAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAa")
			Expect(stats.TotalSent).To(Equal(1.0))
		})

		It("should only count records the address is not part of", func() {
			stats := core.ComputeStats([]core.Transaction{
				txAt("0x1", addrB, addrC, "1000000", day(1)),
			}, addrA)
			Expect(stats.TotalTransactions).To(Equal(1))
			Expect(stats.TotalSent).To(BeZero())
			Expect(stats.TotalReceived).To(BeZero())
		})

		It("should count a self-transfer as sent", func() {
			stats := core.ComputeStats([]core.Transaction{
				txAt("0x1", addrA, addrA, "3000000", day(1)),
			}, addrA)
			Expect(stats.TotalSent).To(Equal(3.0))
			Expect(stats.TotalReceived).To(BeZero())
		})

		It("should be all zero for no records", func() {
			stats := core.ComputeStats(nil, addrA)
			Expect(stats).To(Equal(core.Stats{TotalSentRaw: "0", TotalReceivedRaw: "0"}))
		})

		It("should not lose precision on large sums", func() {
			stats := core.ComputeStats([]core.Transaction{
				txAt("0x1", addrC, addrA, "9007199254740993", day(1)),
				txAt("0x2", addrC, addrA, "1", day(1)),
			}, addrA)
			Expect(stats.TotalReceivedRaw).To(Equal("9007199254740994"))
		})
	})

	Describe("VolumeSeries", func() {
		It("should group per day, oldest first", func() {
			points := core.VolumeSeries([]core.Transaction{
				txAt("0x1", addrA, addrB, "1000000", day(3)),
				txAt("0x2", addrC, addrA, "2000000", day(1)),
				txAt("0x3", addrC, addrA, "500000", day(3)),
			}, addrA, core.VolumeDays)

			Expect(points).To(Equal([]core.VolumePoint{
				{Date: "2024-05-01", Sent: 0, Received: 2, Count: 1},
				{Date: "2024-05-03", Sent: 1, Received: 0.5, Count: 2},
			}))
		})

		It("should keep only the most recent days", func() {
			var txs []core.Transaction
			for d := 1; d <= 10; d++ {
				txs = append(txs, txAt("0x", addrA, addrB, "1000000", day(d)))
			}

			points := core.VolumeSeries(txs, addrA, core.VolumeDays)
			Expect(points).To(HaveLen(core.VolumeDays))
			Expect(points[0].Date).To(Equal("2024-05-04"))
			Expect(points[6].Date).To(Equal("2024-05-10"))
		})

		It("should be empty for no records", func() {
			Expect(core.VolumeSeries(nil, addrA, core.VolumeDays)).To(BeEmpty())
		})
	})
})
