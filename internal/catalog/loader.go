package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultPath is the conventional location of the trimmed Tycho catalog.
const DefaultPath = "data/tycho-trimmed.csv"

// Loader reads whitespace-separated star records of the form:
//
//	ID RightAscension Declination
//
// one record per line, coordinates in degrees.
type Loader struct {
	maxRecords int
	comment    string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithMaxRecords caps the number of records read; 0 means unlimited.
func WithMaxRecords(n int) LoaderOption {
	return func(l *Loader) {
		l.maxRecords = n
	}
}

// WithComment sets a prefix marking comment lines to skip (e.g., "#").
func WithComment(prefix string) LoaderOption {
	return func(l *Loader) {
		l.comment = prefix
	}
}

// NewLoader creates a catalog loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads a catalog file from disk.
func (l *Loader) Load(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	cat, err := l.Parse(f)
	if err != nil {
		return Catalog{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cat, nil
}

// Parse reads star records from r until EOF.
//
// Blank lines and comment lines are skipped. A line with more or fewer
// than three columns, or with a malformed number, is an error carrying
// the line number.
func (l *Loader) Parse(r io.Reader) (Catalog, error) {
	var stars []Star

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if l.comment != "" && strings.HasPrefix(line, l.comment) {
			continue
		}

		star, err := parseRecord(line)
		if err != nil {
			return Catalog{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		stars = append(stars, star)

		if l.maxRecords > 0 && len(stars) >= l.maxRecords {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	return New(stars), nil
}

// parseRecord parses a single "ID RA Dec" record.
func parseRecord(line string) (Star, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Star{}, fmt.Errorf("expected 3 columns, got %d", len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Star{}, fmt.Errorf("parse ID %q: %w", fields[0], err)
	}

	ra, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Star{}, fmt.Errorf("parse right ascension %q: %w", fields[1], err)
	}

	dec, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Star{}, fmt.Errorf("parse declination %q: %w", fields[2], err)
	}

	return Star{ID: id, RAdeg: ra, DecDeg: dec}, nil
}
