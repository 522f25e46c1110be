package fromrow

import (
	"database/sql"
	"errors"
)

// ScanRow materializes the current row of rows into a [Row] keyed by column
// name. rows.Next must already have returned true; ScanRow consumes the
// row's values but does not advance the cursor, so it composes with the
// usual Next/Err loop (see [Query] and [Get]).
//
// The returned Row owns its values outright and stays valid after rows is
// closed. When the result set repeats a column name, the first occurrence
// wins.
func ScanRow(rows *sql.Rows) (Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, errors.New("fromrow: query returned zero columns")
	}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	m := make(MapRow, len(cols))
	for i, c := range cols {
		if _, ok := m[c]; ok {
			continue
		}
		if b, ok := vals[i].([]byte); ok {
			// database/sql reuses the buffer on the next Scan.
			m[c] = append([]byte(nil), b...)
			continue
		}
		m[c] = vals[i]
	}
	return m, nil
}
