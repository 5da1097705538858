package source

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taisazevedo9/gridview/internal/dataview"
	"github.com/taisazevedo9/gridview/internal/util"
)

// DB holds the database connection pool behind the query source.
type DB struct {
	pool *pgxpool.Pool
}

// ConnectDB establishes a connection pool to the database. Query views
// are read-only and short-lived, so the pool stays small.
func ConnectDB(ctx context.Context, url string) (*DB, error) {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("invalid connection URL: %w", err)
	}

	config.MaxConns = 4
	config.MinConns = 0
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close releases the pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Query returns a source that runs the given SQL on every fetch, so a
// refetch re-executes the query against live data.
func (db *DB) Query(sql string) Func {
	return func(ctx context.Context) (Result, error) {
		rows, err := db.pool.Query(ctx, sql)
		if err != nil {
			return Result{}, err
		}
		defer rows.Close()

		fieldDescs := rows.FieldDescriptions()
		cols := make([]string, len(fieldDescs))
		for i, fd := range fieldDescs {
			cols[i] = string(fd.Name)
		}

		var out []dataview.Row
		for rows.Next() {
			values, err := rows.Values()
			if err != nil {
				return Result{}, err
			}
			row := make(dataview.Row, len(cols))
			for i, name := range cols {
				if i >= len(values) {
					break
				}
				row[name] = sanitizeValue(values[i])
			}
			out = append(out, row)
		}
		if err := rows.Err(); err != nil {
			return Result{}, err
		}

		return Result{Rows: out, Columns: cols, Total: len(out)}, nil
	}
}

// sanitizeValue makes query values safe for display. Text from legacy
// encodings is coerced to valid UTF-8; byte slices become strings.
func sanitizeValue(v any) any {
	switch x := v.(type) {
	case string:
		return util.ToValidUTF8(x)
	case []byte:
		return util.ToValidUTF8(string(x))
	default:
		return v
	}
}
