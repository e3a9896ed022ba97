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
	"usdcdash/internal/repository"

	"github.com/jellydator/validation"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TransferWorkflow", func() {
	var (
		fakeRepo   *fake.Repository
		fakeSender *fake.TransferSender
		fakeCache  *fake.CacheInvalidator
		ctx        context.Context

		workflow *core.TransferWorkflow

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeSender = new(fake.TransferSender)
		fakeCache = new(fake.CacheInvalidator)
		ctx = context.Background()

		fakeSender.FromReturns("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")

		workflow = core.NewTransferWorkflow(zap.NewNop().Sugar(), fakeRepo, fakeSender, fakeCache, time.Minute)

		fakeErr = errors.New("fake error")
	})

	Describe("Submit", func() {
		var (
			req      core.TransferRequest
			transfer core.Transfer
			err      error
		)

		BeforeEach(func() {
			req = core.TransferRequest{Recipient: "0xBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBb", Amount: "1.5"}
		})

		JustBeforeEach(func() {
			transfer, err = workflow.Submit(ctx, req)
			workflow.Close()
		})

		When("the transfer is broadcast and confirmed", func() {
			BeforeEach(func() {
				fakeSender.SendTransferReturns("0xhash", nil)
				fakeSender.WaitReceiptReturns(1, nil)
			})

			It("should return the submitted transfer", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transfer.State).To(Equal(core.TransferSubmitted))
				Expect(transfer.TxHash).To(Equal("0xhash"))
				Expect(transfer.From).To(Equal(addrA))
				Expect(transfer.Recipient).To(Equal(addrB))
				Expect(transfer.AmountRaw).To(Equal("1500000"))
			})

			It("should record pending before broadcasting", func() {
				Expect(fakeRepo.CreateTransferCallCount()).To(Equal(1))
				_, created := fakeRepo.CreateTransferArgsForCall(0)
				Expect(created.State).To(Equal(string(core.TransferPending)))
				Expect(created.ID).To(Equal(transfer.ID))

				_, recipient, amount := fakeSender.SendTransferArgsForCall(0)
				Expect(recipient).To(Equal(addrB))
				Expect(amount).To(Equal(big.NewInt(1500000)))
			})

			It("should move through submitted to confirmed", func() {
				Expect(fakeRepo.UpdateTransferCallCount()).To(Equal(2))
				_, submitted := fakeRepo.UpdateTransferArgsForCall(0)
				Expect(submitted.State).To(Equal(string(core.TransferSubmitted)))
				_, confirmed := fakeRepo.UpdateTransferArgsForCall(1)
				Expect(confirmed.State).To(Equal(string(core.TransferConfirmed)))
				Expect(confirmed.TxHash).To(Equal("0xhash"))

				_, hash := fakeSender.WaitReceiptArgsForCall(0)
				Expect(hash).To(Equal("0xhash"))
			})

			It("should invalidate cached reads of both parties", func() {
				Expect(fakeCache.InvalidateCallCount()).To(Equal(2))
				_, first := fakeCache.InvalidateArgsForCall(0)
				_, second := fakeCache.InvalidateArgsForCall(1)
				Expect([]cache.Predicate{first, second}).To(ConsistOf(
					cache.Predicate{Address: addrA},
					cache.Predicate{Address: addrB},
				))
			})
		})

		When("invalidation fails", func() {
			BeforeEach(func() {
				fakeSender.SendTransferReturns("0xhash", nil)
				fakeSender.WaitReceiptReturns(1, nil)
				fakeCache.InvalidateReturns(fakeErr)
			})

			It("should still confirm the transfer", func() {
				Expect(err).NotTo(HaveOccurred())
				_, confirmed := fakeRepo.UpdateTransferArgsForCall(1)
				Expect(confirmed.State).To(Equal(string(core.TransferConfirmed)))
				Expect(confirmed.Error).To(BeEmpty())
			})
		})

		When("the transaction reverts", func() {
			BeforeEach(func() {
				fakeSender.SendTransferReturns("0xhash", nil)
				fakeSender.WaitReceiptReturns(0, nil)
			})

			It("should fail the transfer and leave the cache alone", func() {
				_, failed := fakeRepo.UpdateTransferArgsForCall(1)
				Expect(failed.State).To(Equal(string(core.TransferFailed)))
				Expect(failed.Error).To(Equal("transaction reverted"))
				Expect(fakeCache.InvalidateCallCount()).To(Equal(0))
			})
		})

		When("the receipt never arrives", func() {
			BeforeEach(func() {
				fakeSender.SendTransferReturns("0xhash", nil)
				fakeSender.WaitReceiptReturns(0, ethereum.ErrReceiptTimeout)
			})

			It("should fail the transfer with the wait error", func() {
				_, failed := fakeRepo.UpdateTransferArgsForCall(1)
				Expect(failed.State).To(Equal(string(core.TransferFailed)))
				Expect(failed.Error).To(Equal(ethereum.ErrReceiptTimeout.Error()))
			})
		})

		When("the signer refuses", func() {
			BeforeEach(func() {
				fakeSender.SendTransferReturns("", fmt.Errorf("%w: user denied", ethereum.ErrSignatureRejected))
			})

			It("should fail with the message verbatim", func() {
				Expect(err).To(MatchError(core.ErrSignatureRejected))
				Expect(transfer.State).To(Equal(core.TransferFailed))
				Expect(transfer.Error).To(Equal("signature rejected: user denied"))
				Expect(fakeSender.WaitReceiptCallCount()).To(Equal(0))

				_, failed := fakeRepo.UpdateTransferArgsForCall(0)
				Expect(failed.State).To(Equal(string(core.TransferFailed)))
			})
		})

		When("the broadcast fails", func() {
			BeforeEach(func() {
				fakeSender.SendTransferReturns("", fmt.Errorf("%w: nonce too low", ethereum.ErrBroadcastFailed))
			})

			It("should fail the transfer", func() {
				Expect(err).To(MatchError(core.ErrBroadcastFailed))
				Expect(err).NotTo(MatchError(core.ErrSignatureRejected))
				Expect(transfer.State).To(Equal(core.TransferFailed))
				Expect(transfer.Error).To(ContainSubstring("nonce too low"))
			})
		})

		When("the request is malformed", func() {
			BeforeEach(func() {
				req = core.TransferRequest{Recipient: "invalid-address", Amount: "-5"}
			})

			It("should report both fields before any state change", func() {
				Expect(err).To(MatchError(core.ErrInvalidTransfer))

				var verrs validation.Errors
				Expect(errors.As(err, &verrs)).To(BeTrue())
				Expect(verrs).To(HaveKey("recipient"))
				Expect(verrs).To(HaveKey("amount"))

				Expect(fakeRepo.CreateTransferCallCount()).To(Equal(0))
				Expect(fakeSender.SendTransferCallCount()).To(Equal(0))
			})
		})

		When("the pending record cannot be stored", func() {
			BeforeEach(func() {
				fakeRepo.CreateTransferReturns(fakeErr)
			})

			It("should not broadcast", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeSender.SendTransferCallCount()).To(Equal(0))
			})
		})
	})

	Describe("TransferRequest.Validate", func() {
		const recipient = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

		DescribeTable("amount",
			func(amount string, valid bool) {
				err := core.TransferRequest{Recipient: recipient, Amount: amount}.Validate()
				if valid {
					Expect(err).NotTo(HaveOccurred())
				} else {
					Expect(err).To(HaveOccurred())
				}
			},
			Entry("smallest unit", "0.000001", true),
			Entry("whole tokens", "25", true),
			Entry("at the cap", "1000000", true),
			Entry("zero", "0", false),
			Entry("negative", "-1", false),
			Entry("too precise", "1.0000001", false),
			Entry("above the cap", "1000000.000001", false),
			Entry("not a number", "ten", false),
			Entry("exponent", "1e6", false),
			Entry("empty", "", false),
		)

		DescribeTable("recipient",
			func(r string, valid bool) {
				err := core.TransferRequest{Recipient: r, Amount: "1"}.Validate()
				if valid {
					Expect(err).NotTo(HaveOccurred())
				} else {
					Expect(err).To(HaveOccurred())
				}
			},
			Entry("mixed case", "0xAbCdEf0123456789abcdef0123456789ABCDEF01", true),
			Entry("missing prefix", "abcdef0123456789abcdef0123456789abcdef0123", false),
			Entry("too short", "0xabc", false),
			Entry("non hex", "0xzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", false),
		)
	})

	When("no sender is configured", func() {
		BeforeEach(func() {
			workflow = core.NewTransferWorkflow(zap.NewNop().Sugar(), fakeRepo, nil, fakeCache, time.Minute)
		})

		It("should refuse submissions", func() {
			_, err := workflow.Submit(ctx, core.TransferRequest{Recipient: addrB, Amount: "1"})
			Expect(err).To(MatchError(core.ErrTransfersDisabled))
			Expect(fakeRepo.CreateTransferCallCount()).To(Equal(0))
		})

		It("should still report field errors for a malformed request", func() {
			_, err := workflow.Submit(ctx, core.TransferRequest{Recipient: "invalid-address", Amount: "-5"})
			Expect(err).To(MatchError(core.ErrInvalidTransfer))
			Expect(err).NotTo(MatchError(core.ErrTransfersDisabled))

			var verrs validation.Errors
			Expect(errors.As(err, &verrs)).To(BeTrue())
			Expect(verrs).To(HaveKey("recipient"))
			Expect(verrs).To(HaveKey("amount"))
		})
	})

	Describe("Close", func() {
		It("should abandon outstanding waits and leave them submitted", func() {
			waiting := make(chan struct{})
			fakeSender.SendTransferReturns("0xhash", nil)
			fakeSender.WaitReceiptStub = func(ctx context.Context, _ string) (uint64, error) {
				close(waiting)
				<-ctx.Done()
				return 0, ctx.Err()
			}

			_, err := workflow.Submit(ctx, core.TransferRequest{Recipient: addrB, Amount: "1"})
			Expect(err).NotTo(HaveOccurred())
			Eventually(waiting).Should(BeClosed())

			workflow.Close()
			Expect(fakeRepo.UpdateTransferCallCount()).To(Equal(1))
			Expect(fakeCache.InvalidateCallCount()).To(Equal(0))
		})

		It("should refuse submissions once closed", func() {
			workflow.Close()

			_, err := workflow.Submit(ctx, core.TransferRequest{Recipient: addrB, Amount: "1"})
			Expect(err).To(MatchError(core.ErrTransfersDisabled))
			Expect(fakeSender.SendTransferCallCount()).To(Equal(0))
		})

		It("should not start a wait when closing races a broadcast", func() {
			fakeSender.SendTransferStub = func(context.Context, string, *big.Int) (string, error) {
				workflow.Close()
				return "0xhash", nil
			}

			transfer, err := workflow.Submit(ctx, core.TransferRequest{Recipient: addrB, Amount: "1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(transfer.State).To(Equal(core.TransferSubmitted))

			workflow.Close()
			Expect(fakeSender.WaitReceiptCallCount()).To(Equal(0))
		})
	})

	Describe("Get", func() {
		It("should return the stored transfer", func() {
			fakeRepo.GetTransferReturns(repository.Transfer{ID: "t-1", State: "confirmed", TxHash: "0xhash"}, nil)

			t, err := workflow.Get(ctx, "t-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(t.State).To(Equal(core.TransferConfirmed))
			Expect(t.TxHash).To(Equal("0xhash"))
		})

		It("should report an unknown transfer", func() {
			fakeRepo.GetTransferReturns(repository.Transfer{}, repository.ErrTransferNotFound)

			_, err := workflow.Get(ctx, "t-1")
			Expect(err).To(MatchError(core.ErrTransferNotFound))
		})
	})
})
