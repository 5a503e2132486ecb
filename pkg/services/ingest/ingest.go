package ingest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/isteps/burnout-risk/pkg/models/domain"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"

	dateLayout = "2006-01-02"
)

var (
	ErrNegativeCount     = errors.New("step count cannot be negative")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Parse reads step records in the given format. Date-only values are
// interpreted as midnight in loc.
func Parse(r io.Reader, format Format, loc *time.Location) ([]domain.StepRecord, error) {
	if loc == nil {
		loc = time.Local
	}

	switch format {
	case FormatCSV:
		return parseCSV(r, loc)
	case FormatJSON:
		return parseJSON(r, loc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func parseCSV(r io.Reader, loc *time.Location) ([]domain.StepRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []domain.StepRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateCol, countCol, sourceCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateCol = i
		case "count", "steps":
			countCol = i
		case "source":
			sourceCol = i
		}
	}
	if dateCol < 0 || countCol < 0 {
		return nil, fmt.Errorf("header must contain date and count columns, got %v", header)
	}

	records := make([]domain.StepRecord, 0)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		date, err := ParseDate(row[dateCol], loc)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		count, err := strconv.Atoi(strings.TrimSpace(row[countCol]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid count %q", line, row[countCol])
		}
		if count < 0 {
			return nil, fmt.Errorf("line %d: %w", line, ErrNegativeCount)
		}

		rec := domain.StepRecord{Date: date, Count: count}
		if sourceCol >= 0 {
			rec.Source = strings.TrimSpace(row[sourceCol])
		}
		records = append(records, rec)
	}

	return records, nil
}

type jsonRecord struct {
	Date   string `json:"date"`
	Count  *int   `json:"count"`
	Source string `json:"source"`
}

func parseJSON(r io.Reader, loc *time.Location) ([]domain.StepRecord, error) {
	var raw []jsonRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	records := make([]domain.StepRecord, 0, len(raw))
	for i, rec := range raw {
		date, err := ParseDate(rec.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if rec.Count == nil {
			return nil, fmt.Errorf("record %d: count is required", i)
		}
		if *rec.Count < 0 {
			return nil, fmt.Errorf("record %d: %w", i, ErrNegativeCount)
		}
		records = append(records, domain.StepRecord{Date: date, Count: *rec.Count, Source: rec.Source})
	}

	return records, nil
}

// ParseDate accepts RFC3339 timestamps and YYYY-MM-DD dates.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected RFC3339 or YYYY-MM-DD", value)
	}
	return t, nil
}
