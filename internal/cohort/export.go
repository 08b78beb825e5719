package cohort

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strconv"

	"github.com/gosimple/slug"
	"github.com/zarlcorp/core/pkg/zfilesystem"
)

// CohortFile is the name Export writes for an unnamed cohort.
const CohortFile = "cohort.csv"

// FileName turns a free-form cohort name such as "ACSE 2024/25 Intake" into
// a flat file name ("acse-2024-25-intake.csv"). Names with nothing usable
// in them map to CohortFile.
func FileName(name string) string {
	s := slug.Make(name)
	if s == "" {
		return CohortFile
	}
	return s + ".csv"
}

var cohortHeader = []string{
	"cid", "gender", "nationality", "first_name", "last_name", "title", "course",
	"username", "email", "personal_email", "github", "fee_status", "enrollment_status", "tutor",
}

// WriteCSV writes one row per student with a header line.
func WriteCSV(w io.Writer, c Cohort) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cohortHeader); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, s := range c.Students {
		rec := []string{
			s.CID, s.Gender, s.Nationality, s.FirstName, s.LastName, s.Title, s.Course,
			s.Username, s.Email, s.PersonalEmail, s.GitHub, s.FeeStatus, s.EnrollmentStatus, s.Tutor,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteAssignmentCSV writes username, mark and feedback columns.
func WriteAssignmentCSV(w io.Writer, a Assignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"username", "mark", "feedback"}); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, r := range a.Rows {
		rec := []string{r.Username, strconv.FormatFloat(r.Mark, 'f', 2, 64), r.Feedback}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// Export writes the cohort as CSV to dir/FileName(name) and returns the path.
func Export(fsys zfilesystem.ReadWriteFileFS, dir, name string, c Cohort) (string, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create %s: %w", dir, err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, c); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	p := path.Join(dir, FileName(name))
	if err := fsys.WriteFile(p, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	return p, nil
}
