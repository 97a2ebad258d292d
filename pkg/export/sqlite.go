package export

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"fooddash/pkg/frame"
	"fooddash/pkg/restaurant"
)

// Table is the SQLite table holding the canonical dataset.
const Table = "restaurants"

// columnTypes holds the storage type of every non-text column.
var columnTypes = map[restaurant.Field]string{
	restaurant.RestaurantID:      "INTEGER",
	restaurant.PriceRange:        "INTEGER",
	restaurant.AverageCostForTwo: "INTEGER",
	restaurant.Votes:             "INTEGER",
	restaurant.HasTableBooking:   "INTEGER",
	restaurant.HasOnlineDelivery: "INTEGER",
	restaurant.IsDeliveringNow:   "INTEGER",
	restaurant.Longitude:         "REAL",
	restaurant.Latitude:          "REAL",
	restaurant.AggregateRating:   "REAL",
}

// WriteSQLite replaces the database at path with one table of the dataset.
func WriteSQLite(path string, ds restaurant.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "mkdir")
	}
	_ = os.Remove(path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return errors.Wrap(err, "open sqlite")
	}
	defer db.Close()

	cols := restaurant.Columns()
	defs := make([]string, len(cols))
	quoted := make([]string, len(cols))
	for i, c := range restaurant.Fields {
		t := columnTypes[c]
		if t == "" {
			t = "TEXT"
		}
		defs[i] = fmt.Sprintf("%q %s", c, t)
		quoted[i] = fmt.Sprintf("%q", c)
	}
	if _, err := db.Exec(fmt.Sprintf(`CREATE TABLE %q (%s)`, Table, strings.Join(defs, ","))); err != nil {
		return errors.Wrap(err, "create table")
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	ph := strings.TrimRight(strings.Repeat("?,", len(cols)), ",")
	stmt, err := tx.Prepare(fmt.Sprintf(`INSERT INTO %q (%s) VALUES (%s)`, Table, strings.Join(quoted, ","), ph))
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()
	for i := 0; i < ds.Len(); i++ {
		if _, err := stmt.Exec(typedValues(ds.At(i))...); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "insert row %d", i)
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}

	for _, idx := range []string{
		`CREATE INDEX IF NOT EXISTS idx_restaurants_country ON restaurants(country)`,
		`CREATE INDEX IF NOT EXISTS idx_restaurants_city ON restaurants(country, city)`,
		`CREATE INDEX IF NOT EXISTS idx_restaurants_cuisines ON restaurants(cuisines)`,
		`CREATE INDEX IF NOT EXISTS idx_restaurants_rating ON restaurants(aggregate_rating DESC, restaurant_id)`,
	} {
		if _, err := db.Exec(idx); err != nil {
			return errors.Wrap(err, "create index")
		}
	}
	return nil
}

// typedValues returns the row with numbers kept numeric.
func typedValues(r restaurant.Restaurant) []any {
	args := make([]any, len(restaurant.Fields))
	for i, f := range restaurant.Fields {
		switch columnTypes[f] {
		case "INTEGER":
			v, _ := r.Number(f)
			args[i] = int64(v)
		case "REAL":
			args[i], _ = r.Number(f)
		default:
			args[i] = r.Text(f)
		}
	}
	return args
}

// ReadSQLite loads the restaurants table back as a raw frame in insertion
// order, so it can be cleaned again like a CSV export.
func ReadSQLite(path string) (*frame.Frame, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, "stat sqlite")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf(`SELECT * FROM %q ORDER BY rowid`, Table))
	if err != nil {
		return nil, errors.Wrap(err, "query")
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "columns")
	}
	f := &frame.Frame{Columns: cols}
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "scan")
		}
		rec := make([]string, len(cols))
		for i, v := range vals {
			rec[i] = sqliteText(v)
		}
		f.Rows = append(f.Rows, rec)
	}
	return f, errors.Wrap(rows.Err(), "rows")
}

func sqliteText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return restaurant.FormatFloat(x)
	case []byte:
		return string(x)
	case string:
		return x
	}
	return fmt.Sprint(v)
}
