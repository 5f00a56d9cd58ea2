package repository

import (
	"context"

	"book-rental-tracker/internal/domain/user"
	"book-rental-tracker/internal/infra"
	"book-rental-tracker/internal/pkg/pgconv"
	"book-rental-tracker/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/samber/lo"
)

const tableUsers = "users"

type userRow struct {
	ID        pgtype.UUID        `db:"id"`
	Name      string             `db:"name"`
	Email     string             `db:"email"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Insert(ctx context.Context, u *user.User) error {
	stmt := dialect.Insert(tableUsers).Prepared(true).Rows(goqu.Record{
		"id":    pgconv.UUIDToPgtype(u.ID()),
		"name":  u.Name(),
		"email": u.Email().Value(),
	})
	if _, err := execStmt(ctx, r.db, stmt); err != nil {
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) FindOne(ctx context.Context, filter shared.UserFilter) (*user.User, error) {
	row, err := collectOne[userRow](ctx, r.db, selectUsers(filter).Limit(1))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return toUser(row), nil
}

func (r *UserRepository) Find(ctx context.Context, filter shared.UserFilter) ([]*user.User, error) {
	rows, err := collectRows[userRow](ctx, r.db, selectUsers(filter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find users", err)
	}
	return toUsers(rows), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	stmt := dialect.From(tableUsers).Prepared(true).
		Select(userColumns()...).
		Where(goqu.C("id").Eq(pgconv.UUIDToPgtype(id)))

	row, err := collectOne[userRow](ctx, r.db, stmt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUser(row), nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	rows, err := collectRows[userRow](ctx, r.db, selectUsersByIDs(ids))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find users by IDs", err)
	}
	return toUsers(rows), nil
}

func userColumns() []interface{} {
	return []interface{}{"id", "name", "email", "created_at"}
}

func selectUsers(filter shared.UserFilter) *goqu.SelectDataset {
	ds := dialect.From(tableUsers).Prepared(true).Select(userColumns()...)
	if filter.NameContains != nil {
		ds = ds.Where(goqu.C("name").ILike(containsPattern(*filter.NameContains)))
	}
	return storageOrder(ds)
}

func selectUsersByIDs(ids []uuid.UUID) *goqu.SelectDataset {
	keys := lo.Map(lo.Uniq(ids), func(id uuid.UUID, _ int) string { return id.String() })
	ds := dialect.From(tableUsers).Prepared(true).
		Select(userColumns()...).
		Where(goqu.C("id").In(keys))
	return storageOrder(ds)
}

func toUser(row userRow) *user.User {
	return user.ReconstructUser(
		pgconv.UUIDFromPgtype(row.ID),
		row.Name,
		row.Email,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func toUsers(rows []userRow) []*user.User {
	return lo.Map(rows, func(row userRow, _ int) *user.User { return toUser(row) })
}
