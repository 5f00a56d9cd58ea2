//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"book-rental-tracker/internal/domain/transaction"
	"book-rental-tracker/internal/infra"
	"book-rental-tracker/internal/pkg/clock"
	"book-rental-tracker/internal/pkg/errs"
	"book-rental-tracker/internal/usecase/commands"
	"book-rental-tracker/internal/usecase/shared"
	"book-rental-tracker/tests/common/builder"
	"book-rental-tracker/tests/mock/storemock"

	"github.com/samber/lo"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	storedAt = time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	issued   = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	now      = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
)

type TransactionCommandsTestSuite struct {
	suite.Suite
	books        *storemock.MockBookStore
	users        *storemock.MockUserStore
	transactions *storemock.MockTransactionStore
	clock        *clock.FixedClock
	commands     commands.TransactionCommands

	book *builder.BookBuilder
	user *builder.UserBuilder
}

func (s *TransactionCommandsTestSuite) SetupTest() {
	s.books = new(storemock.MockBookStore)
	s.users = new(storemock.MockUserStore)
	s.transactions = new(storemock.MockTransactionStore)
	s.clock = clock.NewFixedClock(now)
	s.commands = commands.NewTransactionCommands(s.books, s.users, s.transactions, s.clock)

	s.book = builder.NewBookBuilder().WithName("Dune").WithRentPerDay(10)
	s.user = builder.NewUserBuilder().WithName("Alice")
}

func TestTransactionCommandsSuite(t *testing.T) {
	suite.Run(t, new(TransactionCommandsTestSuite))
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func (s *TransactionCommandsTestSuite) openTransaction() *transaction.Transaction {
	return builder.NewTransactionBuilder().
		WithBookID(s.book.ID).
		WithUserID(s.user.ID).
		WithIssueDate(issued).
		BuildDomain()
}

// ================================================================================
// IssueBook
// ================================================================================

func (s *TransactionCommandsTestSuite) TestIssueBook() {
	s.Run("creates an open transaction", func() {
		s.SetupTest()
		s.books.On("FindOne", mock.Anything, shared.BookFilter{NameContains: lo.ToPtr("dun")}).
			Return(s.book.BuildStored(storedAt), nil)
		s.users.On("FindOne", mock.Anything, shared.UserFilter{NameContains: lo.ToPtr("ali")}).
			Return(s.user.BuildStored(storedAt), nil)

		var inserted *transaction.Transaction
		s.transactions.On("Insert", mock.Anything, mock.AnythingOfType("*transaction.Transaction")).
			Run(func(args mock.Arguments) { inserted = args.Get(1).(*transaction.Transaction) }).
			Return(nil)

		res, err := s.commands.IssueBook(context.Background(), commands.IssueBookRequest{
			BookName:  "dun",
			UserName:  "ali",
			IssueDate: &issued,
		})

		s.Require().NoError(err)
		s.Require().NotNil(inserted)
		s.Equal(inserted.ID(), res.TransactionID)
		s.Equal(s.book.ID, inserted.BookID())
		s.Equal(s.user.ID, inserted.UserID())
		s.Equal(issued, inserted.IssueDate())
		s.True(inserted.IsOpen())
		s.transactions.AssertExpectations(s.T())
	})

	s.Run("issue date defaults to now", func() {
		s.SetupTest()
		s.books.On("FindOne", mock.Anything, mock.Anything).Return(s.book.BuildStored(storedAt), nil)
		s.users.On("FindOne", mock.Anything, mock.Anything).Return(s.user.BuildStored(storedAt), nil)
		s.transactions.On("Insert", mock.Anything, mock.MatchedBy(func(t *transaction.Transaction) bool {
			return t.IssueDate().Equal(now)
		})).Return(nil)

		_, err := s.commands.IssueBook(context.Background(), commands.IssueBookRequest{BookName: "Dune", UserName: "Alice"})

		s.Require().NoError(err)
		s.transactions.AssertExpectations(s.T())
	})

	s.Run("issuing a book that is already out opens a second transaction", func() {
		s.SetupTest()
		s.books.On("FindOne", mock.Anything, mock.Anything).Return(s.book.BuildStored(storedAt), nil)
		s.users.On("FindOne", mock.Anything, mock.Anything).Return(s.user.BuildStored(storedAt), nil)

		var inserted []*transaction.Transaction
		s.transactions.On("Insert", mock.Anything, mock.AnythingOfType("*transaction.Transaction")).
			Run(func(args mock.Arguments) { inserted = append(inserted, args.Get(1).(*transaction.Transaction)) }).
			Return(nil)

		req := commands.IssueBookRequest{BookName: "Dune", UserName: "Alice", IssueDate: &issued}
		first, err := s.commands.IssueBook(context.Background(), req)
		s.Require().NoError(err)
		second, err := s.commands.IssueBook(context.Background(), req)
		s.Require().NoError(err)

		s.transactions.AssertNumberOfCalls(s.T(), "Insert", 2)
		s.NotEqual(first.TransactionID, second.TransactionID)
		s.Require().Len(inserted, 2)
		for _, tx := range inserted {
			s.True(tx.IsOpen())
			s.Equal(s.book.ID, tx.BookID())
		}
		s.transactions.AssertNotCalled(s.T(), "FindOne", mock.Anything, mock.Anything)
	})

	s.Run("unknown book", func() {
		s.SetupTest()
		s.books.On("FindOne", mock.Anything, mock.Anything).Return(nil, notFound("book"))

		res, err := s.commands.IssueBook(context.Background(), commands.IssueBookRequest{BookName: "nope", UserName: "Alice"})

		s.Nil(res)
		s.ErrorIs(err, errs.ErrBookNotFound)
		s.Equal("Book not found", err.Error())
		s.users.AssertNotCalled(s.T(), "FindOne", mock.Anything, mock.Anything)
	})

	s.Run("unknown user", func() {
		s.SetupTest()
		s.books.On("FindOne", mock.Anything, mock.Anything).Return(s.book.BuildStored(storedAt), nil)
		s.users.On("FindOne", mock.Anything, mock.Anything).Return(nil, notFound("user"))

		res, err := s.commands.IssueBook(context.Background(), commands.IssueBookRequest{BookName: "Dune", UserName: "nobody"})

		s.Nil(res)
		s.ErrorIs(err, errs.ErrUserNotFound)
		s.transactions.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
	})

	s.Run("insert failure", func() {
		s.SetupTest()
		s.books.On("FindOne", mock.Anything, mock.Anything).Return(s.book.BuildStored(storedAt), nil)
		s.users.On("FindOne", mock.Anything, mock.Anything).Return(s.user.BuildStored(storedAt), nil)
		s.transactions.On("Insert", mock.Anything, mock.Anything).
			Return(infra.WrapRepoErr("failed to insert transaction", errors.New("disk full")))

		res, err := s.commands.IssueBook(context.Background(), commands.IssueBookRequest{BookName: "Dune", UserName: "Alice"})

		s.Nil(res)
		s.ErrorIs(err, errs.ErrQueryFailed)
		s.Equal("disk full", err.Error())
	})
}

// ================================================================================
// ReturnBook
// ================================================================================

func (s *TransactionCommandsTestSuite) TestReturnBook() {
	s.Run("closes the open transaction with rent", func() {
		s.SetupTest()
		open := s.openTransaction()
		returned := issued.AddDate(0, 0, 3)

		s.books.On("FindOne", mock.Anything, shared.BookFilter{NameEquals: lo.ToPtr("Dune")}).
			Return(s.book.BuildStored(storedAt), nil)
		s.users.On("FindOne", mock.Anything, shared.UserFilter{NameContains: lo.ToPtr("ali")}).
			Return(s.user.BuildStored(storedAt), nil)
		s.transactions.On("FindOne", mock.Anything, shared.TransactionFilter{
			BookID:   lo.ToPtr(s.book.ID),
			UserID:   lo.ToPtr(s.user.ID),
			OpenOnly: true,
		}).Return(open, nil)
		s.transactions.On("Update", mock.Anything, open).Return(nil)

		res, err := s.commands.ReturnBook(context.Background(), commands.ReturnBookRequest{
			BookName:   "Dune",
			UserName:   "ali",
			ReturnDate: &returned,
		})

		s.Require().NoError(err)
		s.Equal(open.ID(), res.TransactionID)
		s.Equal(int64(3), res.DaysRented)
		s.InDelta(30.0, res.RentGenerated, 0)
		s.False(open.IsOpen())
		s.Equal(returned, *open.ReturnDate())
		s.transactions.AssertExpectations(s.T())
	})

	s.Run("same day return costs nothing", func() {
		s.SetupTest()
		open := s.openTransaction()
		s.books.On("FindOne", mock.Anything, mock.Anything).Return(s.book.BuildStored(storedAt), nil)
		s.users.On("FindOne", mock.Anything, mock.Anything).Return(s.user.BuildStored(storedAt), nil)
		s.transactions.On("FindOne", mock.Anything, mock.Anything).Return(open, nil)
		s.transactions.On("Update", mock.Anything, open).Return(nil)

		res, err := s.commands.ReturnBook(context.Background(), commands.ReturnBookRequest{
			BookName:   "Dune",
			UserName:   "Alice",
			ReturnDate: &issued,
		})

		s.Require().NoError(err)
		s.Equal(int64(0), res.DaysRented)
		s.InDelta(0.0, res.RentGenerated, 0)
	})

	s.Run("return date defaults to now", func() {
		s.SetupTest()
		open := s.openTransaction()
		s.books.On("FindOne", mock.Anything, mock.Anything).Return(s.book.BuildStored(storedAt), nil)
		s.users.On("FindOne", mock.Anything, mock.Anything).Return(s.user.BuildStored(storedAt), nil)
		s.transactions.On("FindOne", mock.Anything, mock.Anything).Return(open, nil)
		s.transactions.On("Update", mock.Anything, open).Return(nil)

		res, err := s.commands.ReturnBook(context.Background(), commands.ReturnBookRequest{BookName: "Dune", UserName: "Alice"})

		s.Require().NoError(err)
		// 2024-01-01 09:00 to 2024-02-01 12:00 is 31 days and 3 hours
		s.Equal(int64(32), res.DaysRented)
		s.InDelta(320.0, res.RentGenerated, 0)
		s.Equal(now, *open.ReturnDate())
	})

	s.Run("book name must match exactly", func() {
		s.SetupTest()
		s.books.On("FindOne", mock.Anything, shared.BookFilter{NameEquals: lo.ToPtr("dune")}).Return(nil, notFound("book"))

		res, err := s.commands.ReturnBook(context.Background(), commands.ReturnBookRequest{BookName: "dune", UserName: "Alice"})

		s.Nil(res)
		s.ErrorIs(err, errs.ErrBookNotFound)
	})

	s.Run("unknown user", func() {
		s.SetupTest()
		s.books.On("FindOne", mock.Anything, mock.Anything).Return(s.book.BuildStored(storedAt), nil)
		s.users.On("FindOne", mock.Anything, mock.Anything).Return(nil, notFound("user"))

		res, err := s.commands.ReturnBook(context.Background(), commands.ReturnBookRequest{BookName: "Dune", UserName: "nobody"})

		s.Nil(res)
		s.ErrorIs(err, errs.ErrUserNotFound)
	})

	s.Run("no open transaction", func() {
		s.SetupTest()
		s.books.On("FindOne", mock.Anything, mock.Anything).Return(s.book.BuildStored(storedAt), nil)
		s.users.On("FindOne", mock.Anything, mock.Anything).Return(s.user.BuildStored(storedAt), nil)
		s.transactions.On("FindOne", mock.Anything, mock.Anything).Return(nil, notFound("transaction"))

		res, err := s.commands.ReturnBook(context.Background(), commands.ReturnBookRequest{BookName: "Dune", UserName: "Alice"})

		s.Nil(res)
		s.ErrorIs(err, errs.ErrTransactionNotFound)
		s.Equal("Transaction not found", err.Error())
		s.transactions.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	})

	s.Run("update failure", func() {
		s.SetupTest()
		s.books.On("FindOne", mock.Anything, mock.Anything).Return(s.book.BuildStored(storedAt), nil)
		s.users.On("FindOne", mock.Anything, mock.Anything).Return(s.user.BuildStored(storedAt), nil)
		s.transactions.On("FindOne", mock.Anything, mock.Anything).Return(s.openTransaction(), nil)
		s.transactions.On("Update", mock.Anything, mock.Anything).
			Return(infra.WrapRepoErr("failed to update transaction", errors.New("deadlock detected")))

		res, err := s.commands.ReturnBook(context.Background(), commands.ReturnBookRequest{BookName: "Dune", UserName: "Alice"})

		s.Nil(res)
		s.ErrorIs(err, errs.ErrQueryFailed)
	})
}
