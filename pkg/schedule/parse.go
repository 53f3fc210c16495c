package schedule

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// HeaderLines is the number of leading lines of every export that never carry lesson data.
const HeaderLines = 6

// Delimiter separates the columns of the export.
const Delimiter = ';'

// ErrRead is returned when a schedule file cannot be opened or decoded.
var ErrRead = errors.New("cannot read schedule")

// Parse reads a schedule export. The header block is dropped without being
// inspected and short or malformed rows are kept as-is; callers decide which
// rows they can use.
func Parse(r io.Reader) ([]Row, error) {
	br := bufio.NewReader(r)
	for i := 0; i < HeaderLines; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
	}

	reader := csv.NewReader(br)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row(record))
	}

	return rows, nil
}

// ParseFile opens and parses the schedule at path. UTF-8 (with or without BOM)
// and UTF-16 with a BOM are accepted.
func ParseFile(path string) ([]Row, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}

	data, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}

	rows, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	return rows, nil
}

func decode(raw []byte) ([]byte, error) {
	utf16BOM := bytes.HasPrefix(raw, []byte{0xFF, 0xFE}) || bytes.HasPrefix(raw, []byte{0xFE, 0xFF})
	if !utf16BOM && !utf8.Valid(raw) {
		return nil, errors.New("file is not valid UTF-8")
	}

	data, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, fmt.Errorf("could not decode file: %w", err)
	}
	return data, nil
}
