package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sjsage522/olxworker/internal/extractor"
	"sjsage522/olxworker/logger"
	apperrors "sjsage522/olxworker/pkg/errors"
)

// ErrNoListings is returned when there is nothing to write
var ErrNoListings = errors.New("no listings to save")

// Encoder renders records into one file format
type Encoder interface {
	// Extension is the file extension without the dot
	Extension() string
	Encode(records []extractor.Record) ([]byte, error)
}

// Sink writes records to one file per configured format
type Sink struct {
	dir      string
	baseName string
	encoders []Encoder
}

// NewSink creates a sink for the given formats (csv, json, txt)
func NewSink(dir, baseName string, formats []string) (*Sink, error) {
	sink := &Sink{dir: dir, baseName: baseName}
	for _, format := range formats {
		encoder, err := EncoderFor(format)
		if err != nil {
			return nil, err
		}
		sink.encoders = append(sink.encoders, encoder)
	}
	return sink, nil
}

// EncoderFor returns the encoder for a format name
func EncoderFor(format string) (Encoder, error) {
	switch strings.ToLower(format) {
	case "csv":
		return CSVEncoder{}, nil
	case "json":
		return JSONEncoder{}, nil
	case "txt", "text":
		return TextEncoder{}, nil
	default:
		return nil, apperrors.NewConfiguration("unsupported output format: "+format, nil)
	}
}

// Write writes every format and returns the paths written.
// A name suffix keeps results of several target pages apart.
func (s *Sink) Write(suffix string, records []extractor.Record) ([]string, error) {
	if len(records) == 0 {
		return nil, ErrNoListings
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, apperrors.NewOutput(s.dir, "failed to create output directory", err)
	}

	name := s.baseName
	if suffix != "" {
		name += "_" + suffix
	}

	log := logger.ForOutput()
	var paths []string
	for _, encoder := range s.encoders {
		data, err := encoder.Encode(records)
		if err != nil {
			return paths, apperrors.NewOutput(encoder.Extension(), "failed to encode listings", err)
		}

		path := filepath.Join(s.dir, name+"."+encoder.Extension())
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, apperrors.NewOutput(path, "failed to write file", err)
		}
		paths = append(paths, path)
	}

	log.Info().Strs("files", paths).Int("listings", len(records)).Msg("Saved listings")
	return paths, nil
}

// CSVEncoder writes a header row followed by one row per record
type CSVEncoder struct{}

func (CSVEncoder) Extension() string { return "csv" }

func (CSVEncoder) Encode(records []extractor.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(extractor.Fields()); err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := w.Write(r.Values()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// JSONEncoder writes an indented array, leaving non-ASCII text unescaped
type JSONEncoder struct{}

func (JSONEncoder) Extension() string { return "json" }

func (JSONEncoder) Encode(records []extractor.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TextEncoder writes a human-readable listing report
type TextEncoder struct{}

func (TextEncoder) Extension() string { return "txt" }

func (TextEncoder) Encode(records []extractor.Record) ([]byte, error) {
	var b strings.Builder
	b.WriteString("CAR COVER LISTINGS FROM OLX\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	for i, r := range records {
		fmt.Fprintf(&b, "LISTING %d:\n", i+1)
		fmt.Fprintf(&b, "Title: %s\n", r.Title)
		fmt.Fprintf(&b, "Price: %s\n", r.Price)
		fmt.Fprintf(&b, "Location: %s\n", r.Location)
		fmt.Fprintf(&b, "Date: %s\n", r.Date)
		fmt.Fprintf(&b, "URL: %s\n", r.URL)
		b.WriteString(strings.Repeat("-", 50) + "\n\n")
	}
	return []byte(b.String()), nil
}
