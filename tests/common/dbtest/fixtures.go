//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// createdAt spaces fixtures apart so storage order follows insertion order.
var fixtureSeq atomic.Int64

func nextCreatedAt() time.Time {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(fixtureSeq.Add(1)) * time.Millisecond)
}

func CreateTestBook(t *testing.T, db Execer, name, category string, rentPerDay float64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO books (id, name, category, rent_per_day, created_at) VALUES ($1, $2, $3, $4, $5)",
		id, name, category, rentPerDay, nextCreatedAt())
	require.NoError(t, err)

	return id
}

func CreateTestUser(t *testing.T, db Execer, name, email string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, name, email, created_at) VALUES ($1, $2, $3, $4)",
		id, name, email, nextCreatedAt())
	require.NoError(t, err)

	return id
}

// CreateTestTransaction inserts an open transaction.
func CreateTestTransaction(t *testing.T, db Execer, bookID, userID uuid.UUID, issueDate time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO transactions (id, book_id, user_id, issue_date, created_at) VALUES ($1, $2, $3, $4, $5)",
		id, bookID, userID, issueDate, nextCreatedAt())
	require.NoError(t, err)

	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + ";")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
