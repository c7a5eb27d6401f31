package service

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"mvcc_assessment_backend/internal/model"
	"mvcc_assessment_backend/internal/util"
)

// ExportAssessmentsCSV renders assessment summaries as CSV for the admin
// dashboard download. Rows follow the order they were given (the listing
// is already newest first).
func ExportAssessmentsCSV(assessments []model.Assessment) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"email", "date", "stage", "total_score", "seeker_override"}); err != nil {
		return nil, err
	}

	for _, a := range assessments {
		record := []string{
			a.Email,
			a.CreatedAt.Format(util.DateFormat),
			string(a.Stage),
			strconv.Itoa(a.TotalScore),
			strconv.FormatBool(a.IsSeekerOverride),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
