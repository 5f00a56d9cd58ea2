package repository

import (
	"context"

	"book-rental-tracker/internal/domain/book"
	"book-rental-tracker/internal/infra"
	"book-rental-tracker/internal/pkg/pgconv"
	"book-rental-tracker/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const tableBooks = "books"

type bookRow struct {
	ID         pgtype.UUID        `db:"id"`
	Name       string             `db:"name"`
	Category   string             `db:"category"`
	RentPerDay float64            `db:"rent_per_day"`
	CreatedAt  pgtype.Timestamptz `db:"created_at"`
}

type BookRepository struct {
	db DBTX
}

func NewBookRepository(db DBTX) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Insert(ctx context.Context, b *book.Book) error {
	stmt := dialect.Insert(tableBooks).Prepared(true).Rows(goqu.Record{
		"id":           pgconv.UUIDToPgtype(b.ID()),
		"name":         b.Name(),
		"category":     b.Category(),
		"rent_per_day": b.RentPerDay(),
	})
	if _, err := execStmt(ctx, r.db, stmt); err != nil {
		return infra.WrapRepoErr("failed to insert book", err)
	}
	return nil
}

func (r *BookRepository) FindOne(ctx context.Context, filter shared.BookFilter) (*book.Book, error) {
	row, err := collectOne[bookRow](ctx, r.db, selectBooks(filter).Limit(1))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book", err)
	}
	return toBook(row), nil
}

func (r *BookRepository) Find(ctx context.Context, filter shared.BookFilter) ([]*book.Book, error) {
	rows, err := collectRows[bookRow](ctx, r.db, selectBooks(filter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find books", err)
	}
	return toBooks(rows), nil
}

func (r *BookRepository) FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	stmt := dialect.From(tableBooks).Prepared(true).
		Select(bookColumns()...).
		Where(goqu.C("id").Eq(pgconv.UUIDToPgtype(id)))

	row, err := collectOne[bookRow](ctx, r.db, stmt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book by ID", err)
	}
	return toBook(row), nil
}

func bookColumns() []interface{} {
	return []interface{}{"id", "name", "category", "rent_per_day", "created_at"}
}

func selectBooks(filter shared.BookFilter) *goqu.SelectDataset {
	ds := dialect.From(tableBooks).Prepared(true).Select(bookColumns()...)
	if where := bookConditions(filter); len(where) > 0 {
		ds = ds.Where(where...)
	}
	return storageOrder(ds)
}

func bookConditions(filter shared.BookFilter) []exp.Expression {
	var where []exp.Expression
	if filter.NameContains != nil {
		where = append(where, goqu.C("name").ILike(containsPattern(*filter.NameContains)))
	}
	if filter.NameEquals != nil {
		where = append(where, goqu.C("name").Eq(*filter.NameEquals))
	}
	if filter.Category != nil {
		where = append(where, goqu.C("category").Eq(*filter.Category))
	}
	if filter.Rent != nil {
		where = append(where, goqu.C("rent_per_day").Gte(filter.Rent.Min()))
		if filter.Rent.HasUpperBound() {
			where = append(where, goqu.C("rent_per_day").Lte(filter.Rent.Max()))
		}
	}
	return where
}

func toBook(row bookRow) *book.Book {
	return book.ReconstructBook(
		pgconv.UUIDFromPgtype(row.ID),
		row.Name,
		row.Category,
		row.RentPerDay,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func toBooks(rows []bookRow) []*book.Book {
	books := make([]*book.Book, len(rows))
	for i, row := range rows {
		books[i] = toBook(row)
	}
	return books
}
