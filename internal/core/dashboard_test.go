package core_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"
	"usdcdash/internal/cache"
	"usdcdash/internal/core"
	"usdcdash/internal/core/fake"
	"usdcdash/internal/ethereum"
	"usdcdash/internal/explorer"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Dashboard", func() {
	var (
		fakeLive   *fake.LiveSource
		fakeRemote *fake.RemoteSource
		fakeChain  *fake.ChainReader
		ctx        context.Context

		dashboard *core.Dashboard

		fakeErr error
	)

	BeforeEach(func() {
		fakeLive = new(fake.LiveSource)
		fakeRemote = new(fake.RemoteSource)
		fakeChain = new(fake.ChainReader)
		ctx = context.Background()

		logger := zap.NewNop().Sugar()
		loader := cache.NewLoader(logger, cache.NewMemoryStore(128, time.Minute), 5*time.Second)
		dashboard = core.NewDashboard(logger, fakeLive, fakeRemote, fakeChain, loader, tokenAddr)

		fakeErr = errors.New("fake error")
	})

	Describe("Transactions", func() {
		var (
			address string
			filter  core.Filter
			txs     []core.Transaction
			err     error
		)

		BeforeEach(func() {
			address = addrA
			filter = core.Filter{}
		})

		JustBeforeEach(func() {
			txs, err = dashboard.Transactions(ctx, address, filter)
		})

		When("the address is empty", func() {
			BeforeEach(func() {
				address = ""
			})

			It("should return an empty result without asking any source", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txs).NotTo(BeNil())
				Expect(txs).To(BeEmpty())
				Expect(fakeLive.FetchTransferLogsCallCount()).To(Equal(0))
				Expect(fakeRemote.TokenTransfersCallCount()).To(Equal(0))
			})
		})

		When("the filter is invalid", func() {
			BeforeEach(func() {
				filter = core.Filter{Sort: "sideways"}
			})

			It("should reject it before any source call", func() {
				Expect(err).To(MatchError(core.ErrInvalidFilter))
				Expect(fakeLive.FetchTransferLogsCallCount()).To(Equal(0))
			})
		})

		When("the live source returns records", func() {
			BeforeEach(func() {
				fakeLive.FetchTransferLogsReturns([]ethereum.TransferLog{
					liveLog("0x01", 5, 0, addrA, addrB, 1000000),
					liveLog("0x02", 8, 0, addrC, addrA, 2500000),
					liveLog("0x01", 5, 0, addrA, addrB, 1000000),
				}, nil)
			})

			It("should not query the remote source", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRemote.TokenTransfersCallCount()).To(Equal(0))
			})

			It("should return deduplicated records newest first", func() {
				Expect(hashes(txs)).To(Equal([]string{"0x02", "0x01"}))
			})

			It("should read from block zero to the head", func() {
				Expect(fakeLive.FetchTransferLogsCallCount()).To(Equal(1))
				_, argAddress, argFrom, argTo := fakeLive.FetchTransferLogsArgsForCall(0)
				Expect(argAddress).To(Equal(addrA))
				Expect(argFrom).To(BeZero())
				Expect(argTo).To(BeNil())
			})

			It("should serve the same request from cache", func() {
				again, err := dashboard.Transactions(ctx, addrA, core.Filter{})
				Expect(err).NotTo(HaveOccurred())
				Expect(hashes(again)).To(Equal(hashes(txs)))
				Expect(fakeLive.FetchTransferLogsCallCount()).To(Equal(1))
			})
		})

		When("live logs are normalized", func() {
			var clockReads int

			BeforeEach(func() {
				clockReads = 0
				core.TimeNow = func() time.Time {
					clockReads++
					return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
				}
				fakeLive.FetchTransferLogsReturns([]ethereum.TransferLog{
					liveLog("0x01", 5, 0, addrA, addrB, 1),
					liveLog("0x02", 6, 0, addrA, addrB, 2),
				}, nil)
			})

			AfterEach(func() {
				core.TimeNow = time.Now
			})

			It("should normalize every log once", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txs).To(HaveLen(2))
				Expect(clockReads).To(Equal(2))
			})
		})

		When("a block range is given", func() {
			BeforeEach(func() {
				filter = core.Filter{StartBlock: block(100), EndBlock: block(200)}
				fakeLive.FetchTransferLogsReturns([]ethereum.TransferLog{liveLog("0x01", 150, 0, addrA, addrB, 1)}, nil)
			})

			It("should pass it to the live source", func() {
				_, _, argFrom, argTo := fakeLive.FetchTransferLogsArgsForCall(0)
				Expect(argFrom).To(Equal(uint64(100)))
				Expect(*argTo).To(Equal(uint64(200)))
			})
		})

		When("the live source fails", func() {
			BeforeEach(func() {
				filter = core.Filter{Page: 2, Offset: 10, Sort: core.SortAsc}
				fakeLive.FetchTransferLogsReturns(nil, fakeErr)
				fakeRemote.TokenTransfersReturns([]explorer.TokenTransfer{
					restRecord("0x0a", "12", "1", addrC, addrA, "2500000"),
				}, nil)
			})

			It("should return exactly the remote records without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(hashes(txs)).To(Equal([]string{"0x0a"}))
			})

			It("should ask the remote source with the same filter", func() {
				Expect(fakeRemote.TokenTransfersCallCount()).To(Equal(1))
				_, q := fakeRemote.TokenTransfersArgsForCall(0)
				Expect(q).To(Equal(explorer.Query{Address: addrA, Page: 2, Offset: 10, Sort: core.SortAsc}))
			})
		})

		When("the live source returns a malformed log", func() {
			BeforeEach(func() {
				bad := liveLog("0x01", 5, 0, addrA, addrB, 1)
				bad.Value = nil
				fakeLive.FetchTransferLogsReturns([]ethereum.TransferLog{bad}, nil)
				fakeRemote.TokenTransfersReturns([]explorer.TokenTransfer{
					restRecord("0x0a", "12", "1", addrC, addrA, "1"),
				}, nil)
			})

			It("should fall back to the remote source", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRemote.TokenTransfersCallCount()).To(Equal(1))
				Expect(hashes(txs)).To(Equal([]string{"0x0a"}))
			})
		})

		When("both sources are empty", func() {
			BeforeEach(func() {
				fakeLive.FetchTransferLogsReturns([]ethereum.TransferLog{}, nil)
				fakeRemote.TokenTransfersReturns([]explorer.TokenTransfer{}, nil)
			})

			It("should return an empty sequence, not an error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txs).NotTo(BeNil())
				Expect(txs).To(BeEmpty())
				Expect(fakeRemote.TokenTransfersCallCount()).To(Equal(1))
			})
		})

		When("the remote source fails too", func() {
			BeforeEach(func() {
				fakeLive.FetchTransferLogsReturns(nil, fakeErr)
				fakeRemote.TokenTransfersReturns(nil, fmt.Errorf("%w: 502", explorer.ErrRequestFailed))
			})

			It("should surface the failure", func() {
				Expect(err).To(MatchError(core.ErrSourceUnavailable))
				Expect(txs).To(BeNil())
			})

			It("should not cache the failure", func() {
				fakeRemote.TokenTransfersReturns([]explorer.TokenTransfer{}, nil)
				_, err := dashboard.Transactions(ctx, address, filter)
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRemote.TokenTransfersCallCount()).To(Equal(2))
			})
		})

		When("the remote source is rate limited", func() {
			BeforeEach(func() {
				fakeRemote.TokenTransfersReturns(nil, fmt.Errorf("%w: Max calls per sec rate limit reached", explorer.ErrRateLimited))
			})

			It("should report rate limiting without retrying", func() {
				Expect(err).To(MatchError(core.ErrRateLimited))
				Expect(fakeRemote.TokenTransfersCallCount()).To(Equal(1))
			})
		})

		When("the remote source returns a malformed record", func() {
			BeforeEach(func() {
				fakeRemote.TokenTransfersReturns([]explorer.TokenTransfer{
					restRecord("0x0a", "twelve", "1", addrC, addrA, "1"),
				}, nil)
			})

			It("should fail rather than pass it through", func() {
				Expect(err).To(MatchError(core.ErrMalformedRecord))
				Expect(err).To(MatchError(core.ErrSourceUnavailable))
			})
		})
	})

	Describe("Stats", func() {
		BeforeEach(func() {
			fakeLive.FetchTransferLogsReturns([]ethereum.TransferLog{
				liveLog("0x01", 5, 0, addrA, addrB, 1000000),
				liveLog("0x02", 6, 0, addrC, addrA, 2500000),
			}, nil)
		})

		It("should aggregate the default listing", func() {
			stats, err := dashboard.Stats(ctx, addrA)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalTransactions).To(Equal(2))
			Expect(stats.TotalSent).To(Equal(1.0))
			Expect(stats.TotalReceived).To(Equal(2.5))
		})

		It("should share the cached listing with Transactions", func() {
			_, err := dashboard.Stats(ctx, addrA)
			Expect(err).NotTo(HaveOccurred())
			_, err = dashboard.Transactions(ctx, addrA, core.Filter{})
			Expect(err).NotTo(HaveOccurred())
			_, err = dashboard.Volume(ctx, addrA)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeLive.FetchTransferLogsCallCount()).To(Equal(1))
		})

		When("every source fails", func() {
			BeforeEach(func() {
				fakeLive.FetchTransferLogsReturns(nil, fakeErr)
				fakeRemote.TokenTransfersReturns(nil, explorer.ErrRequestFailed)
			})

			It("should return the error", func() {
				_, err := dashboard.Stats(ctx, addrA)
				Expect(err).To(MatchError(core.ErrSourceUnavailable))
			})
		})
	})

	Describe("Balance", func() {
		It("should return raw and display values", func() {
			fakeChain.BalanceOfReturns(big.NewInt(1500000), nil)

			balance, err := dashboard.Balance(ctx, "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(core.Balance{Address: addrA, Balance: "1500000", BalanceFormatted: "1.50"}))
		})

		It("should not ask the explorer when the chain answers", func() {
			fakeChain.BalanceOfReturns(big.NewInt(1), nil)

			_, err := dashboard.Balance(ctx, addrA)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRemote.TokenBalanceCallCount()).To(Equal(0))
		})

		When("the chain is unavailable", func() {
			BeforeEach(func() {
				fakeChain.BalanceOfReturns(nil, fakeErr)
				fakeRemote.TokenBalanceReturns("2500000", nil)
			})

			It("should fall back to the explorer", func() {
				balance, err := dashboard.Balance(ctx, addrA)
				Expect(err).NotTo(HaveOccurred())
				Expect(balance).To(Equal(core.Balance{Address: addrA, Balance: "2500000", BalanceFormatted: "2.50"}))

				_, argAddress := fakeRemote.TokenBalanceArgsForCall(0)
				Expect(argAddress).To(Equal(addrA))
			})

			It("should report both sources down", func() {
				fakeRemote.TokenBalanceReturns("", fakeErr)

				_, err := dashboard.Balance(ctx, addrA)
				Expect(err).To(MatchError(core.ErrSourceUnavailable))
				Expect(err).To(MatchError(fakeErr))
			})

			It("should report explorer throttling", func() {
				fakeRemote.TokenBalanceReturns("", explorer.ErrRateLimited)

				_, err := dashboard.Balance(ctx, addrA)
				Expect(err).To(MatchError(core.ErrRateLimited))
			})

			It("should reject a non-numeric explorer balance", func() {
				fakeRemote.TokenBalanceReturns("Error! Invalid address format", nil)

				_, err := dashboard.Balance(ctx, addrA)
				Expect(err).To(MatchError(core.ErrMalformedRecord))
			})
		})
	})

	Describe("TransactionDetails", func() {
		It("should merge the lookup", func() {
			fakeChain.LookupTransactionReturns(ethereum.TransactionLookup{
				Hash:      "0xfeed",
				From:      addrA,
				To:        tokenAddr,
				Value:     big.NewInt(0),
				Status:    1,
				Transfers: []ethereum.TransferLog{liveLog("0xfeed", 1, 0, addrA, addrB, 1000000)},
			}, nil)

			d, err := dashboard.TransactionDetails(ctx, "0xFEED")
			Expect(err).NotTo(HaveOccurred())
			Expect(d.To).To(Equal(addrB))
			Expect(d.Value).To(Equal("1000000"))

			_, hash := fakeChain.LookupTransactionArgsForCall(0)
			Expect(hash).To(Equal("0xfeed"))
		})

		It("should report an unknown transaction", func() {
			fakeChain.LookupTransactionReturns(ethereum.TransactionLookup{}, ethereum.ErrTransactionNotFound)

			_, err := dashboard.TransactionDetails(ctx, "0xfeed")
			Expect(err).To(MatchError(core.ErrTransactionNotFound))
		})

		It("should report an unavailable chain", func() {
			fakeChain.LookupTransactionReturns(ethereum.TransactionLookup{}, fakeErr)

			_, err := dashboard.TransactionDetails(ctx, "0xfeed")
			Expect(err).To(MatchError(core.ErrSourceUnavailable))
		})
	})

	Describe("Refresh", func() {
		It("should make the next read go upstream", func() {
			fakeChain.BalanceOfReturns(big.NewInt(1), nil)
			_, err := dashboard.Balance(ctx, addrA)
			Expect(err).NotTo(HaveOccurred())

			fakeChain.BalanceOfReturns(big.NewInt(2), nil)
			cached, err := dashboard.Balance(ctx, addrA)
			Expect(err).NotTo(HaveOccurred())
			Expect(cached.Balance).To(Equal("1"))

			Expect(dashboard.Refresh(ctx, addrA)).To(Succeed())

			fresh, err := dashboard.Balance(ctx, addrA)
			Expect(err).NotTo(HaveOccurred())
			Expect(fresh.Balance).To(Equal("2"))
			Expect(fakeChain.BalanceOfCallCount()).To(Equal(2))
		})
	})
})
