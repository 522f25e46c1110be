package fromrow

import (
	"context"
	"database/sql"
)

// Get executes the SQL query and binds the first row through s.
//
// It returns [sql.ErrNoRows] if the query yields no rows and does not enforce
// "exactly one row" beyond the first; if more rows exist, they are ignored.
// Use LIMIT 1 (or an equivalent WHERE clause) when you require at-most-one
// row. A bind failure surfaces as a [*BindError].
//
// Example:
//
//	type User struct {
//	    ID    int64  `db:"id"`
//	    Email string `db:"email"`
//	}
//
//	users := fromrow.Derive[User]()
//	u, err := fromrow.Get(ctx, db, users, `SELECT id, email FROM users WHERE id = $1`, 42)
//	if err != nil {
//	    if errors.Is(err, sql.ErrNoRows) {
//	        // handle not found
//	    }
//	    // handle other errors
//	}
func Get[T any](ctx context.Context, q Querier, s *Schema[T], query string, args ...any) (out T, err error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return out, err
	}
	// Ensure Close error is propagated if no earlier error occurred.
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if !rows.Next() {
		if ne := rows.Err(); ne != nil {
			return out, ne
		}
		return out, sql.ErrNoRows
	}

	r, err := ScanRow(rows)
	if err != nil {
		return out, err
	}
	v, bindErr := s.Bind(r)
	if bindErr != nil {
		return out, bindErr
	}
	return v, nil
}
