// Package export serializes single scan results to the external JSON
// document format: an envelope carrying the format version and an export
// timestamp around the unmodified result.
package export

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/raysh454/linkscope/internal/model"
)

// ErrNilResult is returned when asked to export a missing result.
var ErrNilResult = errors.New("export: nil result")

// Envelope wraps r for export, stamped with the current UTC time.
func Envelope(r *model.ScanResult) (*model.ExportEnvelope, error) {
	if r == nil {
		return nil, ErrNilResult
	}
	return &model.ExportEnvelope{
		FormatVersion: model.ExportFormatVersion,
		ExportedAt:    time.Now().UTC(),
		Result:        r,
	}, nil
}

// Marshal renders the export document as indented JSON.
func Marshal(r *model.ScanResult) ([]byte, error) {
	env, err := Envelope(r)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(env, "", "  ")
}

// Write streams the export document to w with a trailing newline.
func Write(w io.Writer, r *model.ScanResult) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
