package fromrow

import (
	"context"
)

// Query executes the SQL query and binds every result row through s,
// returning the records in row order.
//
// The first row that fails to bind aborts the whole call with a
// [*BindError]; iterator and protocol errors surface via rows.Err at the
// end, matching database/sql semantics.
//
// Example:
//
//	type User struct {
//	    ID    int64  `db:"id"`
//	    Email string `db:"email"`
//	}
//
//	users := fromrow.Derive[User]()
//	all, err := fromrow.Query(ctx, db, users, `SELECT id, email FROM users ORDER BY id`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, u := range all {
//	    fmt.Println(u.ID, u.Email)
//	}
func Query[T any](ctx context.Context, q Querier, s *Schema[T], query string, args ...any) (out []T, err error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	// Propagate rows.Close() error if nothing else failed.
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for rows.Next() {
		r, scanErr := ScanRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		v, bindErr := s.Bind(r)
		if bindErr != nil {
			return nil, bindErr
		}
		out = append(out, v)
	}
	if ne := rows.Err(); ne != nil {
		return nil, ne
	}
	return out, nil
}
