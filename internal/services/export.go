package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"gdg-registration/internal/models"
)

// ExportColumns is the fixed CSV header. Internal ids are never exported.
var ExportColumns = []string{
	"name", "gender", "email", "phone", "enrollment", "college", "otherCollege",
	"year", "branch", "experience", "interests", "expectations", "registeredAt",
}

// InterestSeparator joins interests into a single cell.
const InterestSeparator = "; "

// WriteRegistrationsCSV writes the header and one row per registration.
func WriteRegistrationsCSV(w io.Writer, regs []models.Registration) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range regs {
		row := []string{
			r.Name,
			string(r.Gender),
			r.Email,
			r.Phone,
			r.Enrollment,
			r.College,
			r.OtherCollege,
			string(r.Year),
			string(r.Branch),
			string(r.Experience),
			strings.Join(r.Interests, InterestSeparator),
			r.Expectations,
			r.RegisteredAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
