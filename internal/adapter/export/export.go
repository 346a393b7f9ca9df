package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"passwordCheckerBackend/internal/core/domain"
)

// FormatJSON and FormatCSV are the supported export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

var csvHeader = []string{
	"index", "strength_label", "score", "password_length",
	"entropy_bits", "crack_time", "is_known_common",
	"has_keyboard_or_sequence_pattern",
}

// WriteJSON emits the full reports as an indented JSON array.
func WriteJSON(w io.Writer, reports []domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(reports)
}

// WriteCSV emits one summary row per report. The CSV carries the scalar
// fields only; suggestions and breach details stay JSON-only.
func WriteCSV(w io.Writer, reports []domain.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, r := range reports {
		row := []string{
			strconv.Itoa(i + 1),
			string(r.Strength),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Length),
			strconv.FormatFloat(r.EntropyBits, 'f', 2, 64),
			r.CrackTime,
			strconv.FormatBool(r.KnownCommon),
			strconv.FormatBool(r.HasPattern),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToFile writes reports to path in the given format. An empty path picks a
// timestamped default name. Returns the path written.
func ToFile(path, format string, reports []domain.Report) (string, error) {
	if format != FormatJSON && format != FormatCSV {
		return "", fmt.Errorf("unsupported export format %q", format)
	}
	if path == "" {
		path = DefaultFilename(format)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if format == FormatCSV {
		err = WriteCSV(f, reports)
	} else {
		err = WriteJSON(f, reports)
	}
	if err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

func DefaultFilename(format string) string {
	return fmt.Sprintf("password_analysis_%s.%s", time.Now().Format("20060102_150405"), format)
}
