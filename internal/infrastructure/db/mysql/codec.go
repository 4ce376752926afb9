package mysql

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/venuepass/ticketing-api/internal/core/ports"
)

// isoLayout renders DATETIME values as naive ISO-8601, the wall-clock time
// stored in the table with no zone suffix.
const isoLayout = "2006-01-02T15:04:05"

// scanRows drains rows into JSON-ready records keyed by column name.
// The result is never nil.
func scanRows(rows *sql.Rows) (ports.Rows, error) {
	cols, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("column types: %w", err)
	}

	out := ports.Rows{}
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		rec := make(ports.Row, len(cols))
		for i, col := range cols {
			rec[col.Name()] = normalize(col.DatabaseTypeName(), vals[i])
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// normalize converts a scanned driver value into a value encoding/json can
// render: timestamps become ISO-8601 strings, fixed-point decimals become
// float64 (lossy by contract), and raw bytes become strings.
func normalize(dbType string, v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		return x.Format(isoLayout)
	case []byte:
		if isDecimal(dbType) {
			return decimalToFloat(string(x))
		}
		return string(x)
	case string:
		if isDecimal(dbType) {
			return decimalToFloat(x)
		}
		return x
	default:
		return x
	}
}

func isDecimal(dbType string) bool {
	t := strings.ToUpper(dbType)
	return strings.HasPrefix(t, "DECIMAL") || strings.HasPrefix(t, "NUMERIC")
}

// decimalToFloat falls back to the original text if it is not a number.
func decimalToFloat(s string) any {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.InexactFloat64()
}
