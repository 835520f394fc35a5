package catalog

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/estimatics/roofline/pkg/claims"
	"github.com/estimatics/roofline/pkg/errors"
	"github.com/estimatics/roofline/pkg/logging"
)

// LoadFile loads a catalog from a CSV or YAML file, dispatching on the
// file extension. Anything that is not .yaml/.yml is treated as CSV.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c, err := LoadYAML(f)
		if err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
		return c, nil
	default:
		c, err := LoadCSV(f)
		if err != nil {
			return nil, errors.WrapParse("csv", path, err)
		}
		return c, nil
	}
}

// LoadCSV reads a three-column catalog (description, unit, unit price).
// The delimiter is sniffed (comma or tab), the header row is optional, and
// rows with unparseable prices load with price 0 and a logged warning so a
// single bad row never sinks the catalog. Rows without a description are
// skipped.
func LoadCSV(r io.Reader) (*Catalog, error) {
	br := bufio.NewReader(r)

	delim, err := sniffDelimiter(br)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	log := logging.Default()
	var entries []Entry
	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}
		if i == 0 && isHeader(rec) {
			continue
		}

		desc := strings.TrimSpace(rec[0])
		if desc == "" {
			continue
		}

		var unit claims.Unit
		if len(rec) > 1 {
			unit = claims.Unit(strings.ToUpper(strings.TrimSpace(rec[1])))
		}

		var price float64
		if len(rec) > 2 {
			raw := cleanPrice(rec[2])
			price, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				log.Warn().
					Int("row", i+1).
					Str("description", desc).
					Str("price", rec[2]).
					Msg("Unparseable catalog price, loading as 0")
				price = 0
			}
		}

		entries = append(entries, Entry{Description: desc, Unit: unit, UnitPrice: price})
	}
	return New(entries...), nil
}

// yamlCatalog accepts both a bare entry list and a document wrapping it
// under an entries key.
type yamlCatalog struct {
	Entries []Entry `yaml:"entries"`
}

// LoadYAML reads a catalog from YAML.
func LoadYAML(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc yamlCatalog
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc.Entries) > 0 {
		return New(doc.Entries...), nil
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return New(entries...), nil
}

// sniffDelimiter peeks at the first line and picks tab when present,
// comma otherwise.
func sniffDelimiter(br *bufio.Reader) (rune, error) {
	peek, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return 0, err
	}
	line := string(peek)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.ContainsRune(line, '\t') {
		return '\t', nil
	}
	return ',', nil
}

// isHeader reports whether a row looks like a header rather than data.
// Headers are matched case-insensitively with spaces normalized to
// underscores; a first row whose price column parses as a number is data.
func isHeader(rec []string) bool {
	name := strings.ToLower(strings.TrimSpace(rec[0]))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "description" || name == "item" || name == "item_description" {
		return true
	}
	if len(rec) > 2 {
		if _, err := strconv.ParseFloat(cleanPrice(rec[2]), 64); err == nil {
			return false
		}
		col := strings.ToLower(strings.TrimSpace(rec[2]))
		col = strings.ReplaceAll(col, " ", "_")
		return col == "unit_price" || col == "price"
	}
	return false
}

// cleanPrice strips currency noise before parsing.
func cleanPrice(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	return strings.ReplaceAll(s, ",", "")
}
