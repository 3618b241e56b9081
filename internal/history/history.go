// Package history keeps an append-only CSV log of past analyses so users
// can audit what the analyzer guessed and how confident it was.
package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/octopus-money/octopus/internal/model"
)

// Entry is one row in the history log.
type Entry struct {
	ID         string
	Timestamp  time.Time
	SMS        string // digest of the original text, newlines collapsed
	Name       string
	Amount     decimal.Decimal
	Type       model.Direction
	Confidence decimal.Decimal
	Status     model.ReviewStatus
}

// Header is the CSV header for history.csv.
const Header = "id,timestamp,sms,name,amount,type,confidence,status"

const (
	numFields     = 8
	logDir        = "logs"
	logFile       = "logs/history.csv"
	smsDigestMax  = 80
	colID         = 0
	colTimestamp  = 1
	colSMS        = 2
	colName       = 3
	colAmount     = 4
	colType       = 5
	colConfidence = 6
	colStatus     = 7
)

// NewEntry builds a history entry for one successful analysis.
func NewEntry(smsText string, txn model.Transaction, status model.ReviewStatus) Entry {
	return Entry{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		SMS:        digest(smsText),
		Name:       txn.Name,
		Amount:     txn.Amount,
		Type:       txn.Type,
		Confidence: txn.Confidence,
		Status:     status,
	}
}

// digest collapses whitespace and truncates so one SMS stays one CSV cell
// of readable length.
func digest(smsText string) string {
	s := strings.Join(strings.Fields(smsText), " ")
	if len(s) > smsDigestMax {
		s = s[:smsDigestMax]
	}
	return s
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colID] = e.ID
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSMS] = e.SMS
	row[colName] = e.Name
	row[colAmount] = e.Amount.StringFixed(2)
	row[colType] = string(e.Type)
	row[colConfidence] = e.Confidence.StringFixed(2)
	row[colStatus] = string(e.Status)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}
	confidence, err := decimal.NewFromString(record[colConfidence])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing confidence %q: %w", record[colConfidence], err)
	}

	return Entry{
		ID:         record[colID],
		Timestamp:  ts,
		SMS:        record[colSMS],
		Name:       record[colName],
		Amount:     amount,
		Type:       model.Direction(record[colType]),
		Confidence: confidence,
		Status:     model.ReviewStatus(record[colStatus]),
	}, nil
}

// Append writes entries to <dataDir>/logs/history.csv, creating the file
// and header if needed.
func Append(dataDir string, entries []Entry) error {
	dir := filepath.Join(dataDir, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(dataDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening history log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <dataDir>/logs/history.csv. Returns an
// empty slice if the file does not exist.
func Read(dataDir string) ([]Entry, error) {
	path := filepath.Join(dataDir, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading history CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
