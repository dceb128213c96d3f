package excelhandler

// Record is one labeled data row, mapping a header label to the cell value
// stored under it. Map iteration order is not the column order; Records
// keeps that in Headers.
type Record map[string]string

// Records lazily turns streamed rows into labeled records. Labels pair with
// cells by position and pairing stops at the shorter side, so surplus cells
// are dropped and missing ones do not invent keys.
type Records struct {
	rows    *Rows
	headers []string
	rec     Record
}

// AsRecords pairs every row still left on rows against headers. The rows
// iterator is consumed as the records are.
func AsRecords(headers []string, rows *Rows) *Records {
	return &Records{rows: rows, headers: headers}
}

// FetchRecords streams the populated extent of the bound sheet as records,
// taking the first row as the header row. The extent row count includes
// that header row, so a sheet holding only headers yields no records.
func (h *Handler) FetchRecords() (*Records, error) {
	rows, err := h.FetchAll()
	if err != nil {
		return nil, err
	}
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return &Records{rows: rows}, nil
	}
	headers := append([]string(nil), rows.Values()...)
	return AsRecords(headers, rows), nil
}

// Next advances to the following record. It returns false when the rows are
// exhausted or a read failed; Err tells the two apart.
func (rs *Records) Next() bool {
	if rs.rows == nil || !rs.rows.Next() {
		return false
	}
	row := rs.rows.Values()
	n := len(rs.headers)
	if len(row) < n {
		n = len(row)
	}
	rec := make(Record, n)
	for i := 0; i < n; i++ {
		rec[rs.headers[i]] = row[i]
	}
	rs.rec = rec
	return true
}

// Record returns the current record.
func (rs *Records) Record() Record { return rs.rec }

// Headers returns the labels records are built from, in column order.
func (rs *Records) Headers() []string { return rs.headers }

// Err returns the first error hit while iterating, if any.
func (rs *Records) Err() error {
	if rs.rows == nil {
		return nil
	}
	return rs.rows.Err()
}
