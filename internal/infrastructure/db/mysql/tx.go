package mysql

import (
	"context"
	"database/sql"
	"errors"

	driver "github.com/go-sql-driver/mysql"

	"github.com/venuepass/ticketing-api/internal/core/domain"
	"github.com/venuepass/ticketing-api/internal/pkg/metrics"
)

// withTx runs fn inside a transaction on conn. It commits when fn returns nil
// and rolls back when fn returns an error or panics; the caller never handles
// either branch itself.
func withTx(ctx context.Context, conn *sql.Conn, op string, fn func(tx *sql.Tx) error) (err error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return domain.QueryFailed(op, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			metrics.TransactionsTotal.WithLabelValues(op, "rollback").Inc()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			metrics.TransactionsTotal.WithLabelValues(op, "rollback").Inc()
			err = classifyWrite(op, err)
			return
		}
		if err = tx.Commit(); err != nil {
			metrics.TransactionsTotal.WithLabelValues(op, "rollback").Inc()
			err = classifyWrite(op, err)
			return
		}
		metrics.TransactionsTotal.WithLabelValues(op, "commit").Inc()
	}()

	return fn(tx)
}

// classifyWrite separates errors the engine raised about the statement itself
// (400) from everything else: dropped connections, deadlines, driver faults
// (500). Only a server error packet counts as an engine error.
func classifyWrite(op string, err error) error {
	var se *domain.StoreError
	if errors.As(err, &se) {
		return err
	}
	var engineErr *driver.MySQLError
	if errors.As(err, &engineErr) {
		return domain.Rejected(op, err)
	}
	return domain.QueryFailed(op, err)
}
