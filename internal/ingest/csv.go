package ingest

import (
	"encoding/csv"
	"io"
	"strings"
)

// readRecords decodes delimited text into header-keyed records. Headers are
// lowercased and trimmed so column matching is case-insensitive. Short rows
// leave trailing columns absent rather than failing.
func readRecords(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i, h := range header {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var out []map[string]string
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rec := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(fields) {
				rec[h] = fields[i]
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
