package repository_test

import (
	"context"
	"errors"
	"usdcdash/internal/db"
	"usdcdash/internal/repository"
	"usdcdash/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DashboardRepository", func() {
	var (
		repo        *repository.DashboardRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewDashboardRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			It("should migrate operators and transfers", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				models := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(models).To(HaveLen(2))
				Expect(models[0]).To(BeAssignableToTypeOf(&repository.Operator{}))
				Expect(models[1]).To(BeAssignableToTypeOf(&repository.Transfer{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SeedOperators", func() {
		var (
			seeds []repository.OperatorSeed
			err   error
		)

		BeforeEach(func() {
			seeds = []repository.OperatorSeed{
				{Username: "alice", PasswordHash: "$2a$10$hash-a"},
				{Username: "bob", PasswordHash: "$2a$10$hash-b"},
			}
		})

		JustBeforeEach(func() {
			err = repo.SeedOperators(ctx, seeds)
		})

		When("seeding succeeds", func() {
			It("should seed one operator per entry with fresh ids", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.SeedCallCount()).To(Equal(1))

				_, records := fakeStorage.SeedArgsForCall(0)
				operators, ok := records.(*[]repository.Operator)
				Expect(ok).To(BeTrue())
				Expect(*operators).To(HaveLen(2))
				Expect((*operators)[0].Username).To(Equal("alice"))
				Expect((*operators)[1].PasswordHash).To(Equal("$2a$10$hash-b"))

				_, parseErr := uuid.Parse((*operators)[0].ID)
				Expect(parseErr).NotTo(HaveOccurred())
				Expect((*operators)[0].ID).NotTo(Equal((*operators)[1].ID))
			})
		})

		When("there is nothing to seed", func() {
			BeforeEach(func() {
				seeds = nil
			})

			It("should not touch storage", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.SeedCallCount()).To(Equal(0))
			})
		})

		When("seeding fails", func() {
			BeforeEach(func() {
				fakeStorage.SeedReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetOperator", func() {
		var (
			operator repository.Operator
			err      error
		)

		JustBeforeEach(func() {
			operator, err = repo.GetOperator(ctx, "alice")
		})

		When("the operator exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					Expect(column).To(Equal("username"))
					Expect(value).To(Equal("alice"))
					op := entity.(*repository.Operator)
					op.ID = "op-1"
					op.Username = "alice"
					return nil
				}
			})

			It("should return the operator", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(operator.ID).To(Equal("op-1"))
				Expect(operator.Username).To(Equal("alice"))
			})
		})

		When("the operator does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("CreateTransfer", func() {
		var (
			transfer repository.Transfer
			err      error
		)

		BeforeEach(func() {
			transfer = repository.Transfer{ID: "t-1", State: "pending", Amount: "1.5", AmountRaw: "1500000"}
		})

		JustBeforeEach(func() {
			err = repo.CreateTransfer(ctx, transfer)
		})

		It("should insert the transfer", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.CreateCallCount()).To(Equal(1))
			_, record := fakeStorage.CreateArgsForCall(0)
			Expect(record).To(Equal(&transfer))
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateTransfer", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.UpdateTransfer(ctx, repository.Transfer{ID: "t-1", State: "submitted", TxHash: "0xabc"})
		})

		It("should save the transfer", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.SaveCallCount()).To(Equal(1))
			_, record := fakeStorage.SaveArgsForCall(0)
			Expect(record.(*repository.Transfer).TxHash).To(Equal("0xabc"))
		})

		When("save fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveReturns(fakeErr)
			})

			It("should return an error naming the transfer", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(ContainSubstring("t-1"))
			})
		})
	})

	Describe("GetTransfer", func() {
		var (
			transfer repository.Transfer
			err      error
		)

		JustBeforeEach(func() {
			transfer, err = repo.GetTransfer(ctx, "t-1")
		})

		When("the transfer exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					Expect(column).To(Equal("id"))
					t := entity.(*repository.Transfer)
					t.ID = value.(string)
					t.State = "confirmed"
					return nil
				}
			})

			It("should return the transfer", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transfer.ID).To(Equal("t-1"))
				Expect(transfer.State).To(Equal("confirmed"))
			})
		})

		When("the transfer does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return transfer not found error", func() {
				Expect(err).To(MatchError(repository.ErrTransferNotFound))
			})
		})
	})
})
