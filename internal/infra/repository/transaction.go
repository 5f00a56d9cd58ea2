package repository

import (
	"context"

	"book-rental-tracker/internal/domain/transaction"
	"book-rental-tracker/internal/infra"
	"book-rental-tracker/internal/pkg/pgconv"
	"book-rental-tracker/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgtype"
)

const tableTransactions = "transactions"

type transactionRow struct {
	ID            pgtype.UUID        `db:"id"`
	BookID        pgtype.UUID        `db:"book_id"`
	UserID        pgtype.UUID        `db:"user_id"`
	IssueDate     pgtype.Timestamptz `db:"issue_date"`
	ReturnDate    pgtype.Timestamptz `db:"return_date"`
	RentGenerated pgtype.Float8      `db:"rent_generated"`
	CreatedAt     pgtype.Timestamptz `db:"created_at"`
}

type TransactionRepository struct {
	db DBTX
}

func NewTransactionRepository(db DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Insert(ctx context.Context, t *transaction.Transaction) error {
	stmt := dialect.Insert(tableTransactions).Prepared(true).Rows(goqu.Record{
		"id":             pgconv.UUIDToPgtype(t.ID()),
		"book_id":        pgconv.UUIDToPgtype(t.BookID()),
		"user_id":        pgconv.UUIDToPgtype(t.UserID()),
		"issue_date":     pgconv.TimeToPgtype(t.IssueDate()),
		"return_date":    pgconv.TimePtrToPgtype(t.ReturnDate()),
		"rent_generated": pgconv.Float64PtrToPgtype(t.RentGenerated()),
	})
	if _, err := execStmt(ctx, r.db, stmt); err != nil {
		return infra.WrapRepoErr("failed to insert transaction", err)
	}
	return nil
}

func (r *TransactionRepository) FindOne(ctx context.Context, filter shared.TransactionFilter) (*transaction.Transaction, error) {
	row, err := collectOne[transactionRow](ctx, r.db, selectTransactions(filter).Limit(1))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find transaction", err)
	}
	return toTransaction(row)
}

func (r *TransactionRepository) Find(ctx context.Context, filter shared.TransactionFilter) ([]*transaction.Transaction, error) {
	rows, err := collectRows[transactionRow](ctx, r.db, selectTransactions(filter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find transactions", err)
	}

	txs := make([]*transaction.Transaction, len(rows))
	for i, row := range rows {
		if txs[i], err = toTransaction(row); err != nil {
			return nil, err
		}
	}
	return txs, nil
}

// Update writes only return_date and rent_generated.
func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	tag, err := execStmt(ctx, r.db, updateTransaction(t))
	if err != nil {
		return infra.WrapRepoErr("failed to update transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("transaction not found", nil, infra.KindNotFound)
	}
	return nil
}

func transactionColumns() []interface{} {
	return []interface{}{"id", "book_id", "user_id", "issue_date", "return_date", "rent_generated", "created_at"}
}

func selectTransactions(filter shared.TransactionFilter) *goqu.SelectDataset {
	ds := dialect.From(tableTransactions).Prepared(true).Select(transactionColumns()...)
	if where := transactionConditions(filter); len(where) > 0 {
		ds = ds.Where(where...)
	}
	return storageOrder(ds)
}

func transactionConditions(filter shared.TransactionFilter) []exp.Expression {
	var where []exp.Expression
	if filter.BookID != nil {
		where = append(where, goqu.C("book_id").Eq(pgconv.UUIDToPgtype(*filter.BookID)))
	}
	if filter.UserID != nil {
		where = append(where, goqu.C("user_id").Eq(pgconv.UUIDToPgtype(*filter.UserID)))
	}
	if filter.OpenOnly {
		where = append(where, goqu.C("return_date").IsNull())
	}
	if filter.IssuedFrom != nil {
		where = append(where, goqu.C("issue_date").Gte(*filter.IssuedFrom))
	}
	if filter.IssuedTo != nil {
		where = append(where, goqu.C("issue_date").Lte(*filter.IssuedTo))
	}
	return where
}

func updateTransaction(t *transaction.Transaction) *goqu.UpdateDataset {
	return dialect.Update(tableTransactions).Prepared(true).
		Set(goqu.Record{
			"return_date":    pgconv.TimePtrToPgtype(t.ReturnDate()),
			"rent_generated": pgconv.Float64PtrToPgtype(t.RentGenerated()),
		}).
		Where(goqu.C("id").Eq(pgconv.UUIDToPgtype(t.ID())))
}

func toTransaction(row transactionRow) (*transaction.Transaction, error) {
	rent, err := pgconv.Float64PtrFromPgtype(row.RentGenerated)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert rent_generated", err)
	}
	return transaction.ReconstructTransaction(
		pgconv.UUIDFromPgtype(row.ID),
		pgconv.UUIDFromPgtype(row.BookID),
		pgconv.UUIDFromPgtype(row.UserID),
		pgconv.TimeFromPgtype(row.IssueDate),
		pgconv.TimePtrFromPgtype(row.ReturnDate),
		rent,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

