// Package export writes streamed sheet records out as csv, json, yaml or
// rows of a sqlite table.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	excelhandler "github.com/sina-karimi-93/microsoft-excel-handler"
)

// CSV writes the records to w, header row first. Cells a record does not
// carry are written empty to keep the columns aligned.
func CSV(w io.Writer, recs *excelhandler.Records) error {
	headers := recs.Headers()
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return errors.Wrap(err, "writing header row")
	}
	row := make([]string, len(headers))
	for recs.Next() {
		rec := recs.Record()
		for i, h := range headers {
			row[i] = rec[h]
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "writing record")
		}
	}
	if err := recs.Err(); err != nil {
		return err
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing output")
}

// JSON writes the records to w as an array of objects. Cell text that reads
// as a number becomes one; labels a record does not carry are left out of
// its object.
func JSON(w io.Writer, recs *excelhandler.Records, pretty bool) error {
	headers := recs.Headers()
	out := []map[string]interface{}{}
	for recs.Next() {
		rec := recs.Record()
		obj := make(map[string]interface{}, len(headers))
		for _, h := range headers {
			if v, ok := rec[h]; ok {
				obj[h] = coerce(v)
			}
		}
		out = append(out, obj)
	}
	if err := recs.Err(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return errors.Wrap(enc.Encode(out), "encoding records")
}

// YAML writes the records to w as a list of mappings. yaml.MapSlice keeps
// the keys in column order, which plain maps would scramble.
func YAML(w io.Writer, recs *excelhandler.Records) error {
	headers := recs.Headers()
	out := []yaml.MapSlice{}
	for recs.Next() {
		rec := recs.Record()
		doc := make(yaml.MapSlice, 0, len(headers))
		for _, h := range headers {
			if v, ok := rec[h]; ok {
				doc = append(doc, yaml.MapItem{Key: h, Value: coerce(v)})
			}
		}
		out = append(out, doc)
	}
	if err := recs.Err(); err != nil {
		return err
	}
	b, err := yaml.Marshal(out)
	if err != nil {
		return errors.Wrap(err, "encoding records")
	}
	_, err = w.Write(b)
	return errors.Wrap(err, "writing output")
}

// coerce turns numeric-looking cell text into a number for the formats that
// distinguish types. Everything else stays text.
func coerce(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
