package repository

import (
	"context"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

const dialectPostgres = "postgres"

var dialect = goqu.Dialect(dialectPostgres)

type sqlBuilder interface {
	ToSQL() (string, []interface{}, error)
}

// Storage order is creation order with id as the tie-break.
func storageOrder(ds *goqu.SelectDataset) *goqu.SelectDataset {
	return ds.Order(goqu.C("created_at").Asc(), goqu.C("id").Asc())
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern that matches term literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func collectRows[R any](ctx context.Context, db DBTX, q sqlBuilder) ([]R, error) {
	query, args, err := q.ToSQL()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[R])
}

// collectOne returns pgx.ErrNoRows when nothing matches.
func collectOne[R any](ctx context.Context, db DBTX, q sqlBuilder) (R, error) {
	var zero R
	query, args, err := q.ToSQL()
	if err != nil {
		return zero, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[R])
}

func execStmt(ctx context.Context, db DBTX, q sqlBuilder) (pgconn.CommandTag, error) {
	query, args, err := q.ToSQL()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return db.Exec(ctx, query, args...)
}
