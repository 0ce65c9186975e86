package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ReadCSV parses a feature table: one record per line, first field an opaque
// identifier, remaining fields float values. Malformed numeric tokens are
// skipped with a diagnostic through warn rather than aborting the load, and
// lines that yield no values are dropped entirely. Uniform field counts are
// the producer's responsibility; a short record surfaces later as a
// dimension-mismatch error at distance time.
func ReadCSV(r io.Reader, warn func(format string, args ...any)) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var out []Record
	line := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("store: line %d: %w", line, err)
		}
		if len(fields) == 0 || (len(fields) == 1 && fields[0] == "") {
			continue
		}
		rec := Record{ID: fields[0]}
		for _, token := range fields[1:] {
			v, err := strconv.ParseFloat(token, 32)
			if err != nil {
				if warn != nil {
					warn("store: line %d: invalid float value %q", line, token)
				}
				continue
			}
			rec.Vector = append(rec.Vector, float32(v))
		}
		if len(rec.Vector) == 0 {
			if warn != nil {
				warn("store: line %d: no feature values", line)
			}
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// WriteCSV writes records in the format ReadCSV parses, with values formatted
// to 6 decimal places to match the reference tables.
func WriteCSV(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)
	for _, r := range records {
		fields := make([]string, 0, len(r.Vector)+1)
		fields = append(fields, r.ID)
		for _, v := range r.Vector {
			fields = append(fields, strconv.FormatFloat(float64(v), 'f', 6, 32))
		}
		if err := writer.Write(fields); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
