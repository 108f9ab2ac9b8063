package store

import (
	"context"
	"database/sql"
	"ecommerce-dashboard/internal/dataset"
	"ecommerce-dashboard/internal/model"
	"ecommerce-dashboard/internal/report"
	"ecommerce-dashboard/pkg/utils"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Open opens a SQLite dataset file read-only
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", dbPath, err)
	}
	return db, nil
}

// LoadOrders reads the dataset columns of table, which may be a table of any
// kind or a view. Rows come back in SQLite's scan order, which is rowid order
// for ordinary tables.
func LoadOrders(ctx context.Context, db *sql.DB, table string) ([]model.Order, error) {
	if !identifier.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	start := time.Now()
	rows, err := db.QueryContext(ctx, selectQuery(table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var at, score, city, payment, category, product any
		if err := rows.Scan(&at, &score, &city, &payment, &category, &product); err != nil {
			return nil, err
		}

		var o model.Order
		line := len(orders) + 1
		if o.PurchasedAt, err = timestamp(at); err != nil {
			return nil, cellError(line, dataset.ColPurchasedAt, err)
		}
		if o.ReviewScore, err = number(score); err != nil {
			return nil, cellError(line, dataset.ColReviewScore, err)
		}
		if o.Payment, err = number(payment); err != nil {
			return nil, cellError(line, dataset.ColPayment, err)
		}
		o.City = text(city)
		o.Category = text(category)
		o.ProductID = text(product)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Infof("🗄️ loaded %d rows from table %s in %v", len(orders), table, time.Since(start))
	return orders, nil
}

// LoadTable opens dbPath, reads table and builds the report table from it
func LoadTable(ctx context.Context, dbPath, table string) (*report.Table, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	orders, err := LoadOrders(ctx, db, table)
	if err != nil {
		return nil, err
	}
	return dataset.NewTable(orders)
}

func selectQuery(table string) string {
	cols := dataset.Columns()
	for i, c := range cols {
		cols[i] = `"` + c + `"`
	}
	return fmt.Sprintf(`SELECT %s FROM "%s"`, strings.Join(cols, ", "), table)
}

func timestamp(v any) (time.Time, error) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return val.UTC(), nil
	case []byte:
		return timestamp(string(val))
	case string:
		if strings.TrimSpace(val) == "" {
			return time.Time{}, nil
		}
		return dataset.ParseTimestamp(strings.TrimSpace(val))
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp %T", v)
	}
}

func number(v any) (float64, error) {
	switch val := v.(type) {
	case nil:
		return math.NaN(), nil
	case []byte:
		return number(string(val))
	case string:
		if strings.TrimSpace(val) == "" {
			return math.NaN(), nil
		}
		return strconv.ParseFloat(strings.TrimSpace(val), 64)
	default:
		return utils.Numeric(v)
	}
}

func text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

func cellError(line int, col string, err error) error {
	return fmt.Errorf("%w: row %d column %q: %v", report.ErrSchema, line, col, err)
}
