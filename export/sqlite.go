package export

import (
	"database/sql"
	"fmt"
	"strings"

	// driver for the record store
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	excelhandler "github.com/sina-karimi-93/microsoft-excel-handler"
)

// SQLite appends the records to table inside the database at path, creating
// both when missing. Columns come from the record headers; values that read
// as numbers are stored as numbers, everything else as text. It returns how
// many records were stored.
func SQLite(path, table string, recs *excelhandler.Records) (int, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?cache=shared&mode=rwc&_journal_mode=WAL")
	if err != nil {
		return 0, errors.Wrap(err, "database open failed")
	}
	defer db.Close()

	store := &recordStore{db: db, table: table, columns: recs.Headers()}
	if err := store.open(); err != nil {
		return 0, err
	}
	defer store.close()

	n := 0
	for recs.Next() {
		if err := store.save(recs.Record()); err != nil {
			return n, err
		}
		n++
	}
	return n, recs.Err()
}

// recordStore manages the table and the prepared insert.
type recordStore struct {
	db      *sql.DB
	table   string
	columns []string
	stmt    *sql.Stmt
}

func (s *recordStore) open() error {
	if len(s.columns) == 0 {
		return errors.New("no header row to derive columns from")
	}

	cols := make([]string, len(s.columns))
	marks := make([]string, len(s.columns))
	for i, c := range s.columns {
		cols[i] = quoteIdent(c)
		marks[i] = "?"
	}

	create := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (%s);`,
		quoteIdent(s.table), strings.Join(cols, ", "))
	if _, err := s.db.Exec(create); err != nil {
		return errors.Wrapf(err, "creating table %s", s.table)
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s);`,
		quoteIdent(s.table), strings.Join(cols, ", "), strings.Join(marks, ","))
	stmt, err := s.db.Prepare(insert)
	if err != nil {
		return errors.Wrapf(err, "preparing insert on %s", s.table)
	}
	s.stmt = stmt
	return nil
}

// save stores one record. Labels the record does not carry become NULL.
func (s *recordStore) save(rec excelhandler.Record) error {
	args := make([]interface{}, len(s.columns))
	for i, c := range s.columns {
		if v, ok := rec[c]; ok {
			args[i] = coerce(v)
		}
	}
	_, err := s.stmt.Exec(args...)
	return errors.Wrap(err, "inserting record")
}

func (s *recordStore) close() error {
	if s.stmt == nil {
		return nil
	}
	return s.stmt.Close()
}

// quoteIdent makes a sheet header safe to use as a sqlite identifier.
func quoteIdent(name string) string {
	return `"` + strings.Replace(name, `"`, `""`, -1) + `"`
}
