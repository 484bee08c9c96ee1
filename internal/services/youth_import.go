package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/logging"
	"dare/enterprisehub/internal/models/dtos/requests"
	gormModels "dare/enterprisehub/internal/models/gorm"
)

// ImportFailure is one rejected CSV row. Line counts the header as line 1.
type ImportFailure struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

type ImportReport struct {
	Imported int             `json:"imported"`
	Failed   []ImportFailure `json:"failed"`
}

var requiredYouthColumns = []string{"first_name", "last_name", "district"}

// ImportCSV creates one youth profile per row. Bad rows are reported and
// skipped; storage failures abort the import. With dryRun set rows are
// validated only.
func (s *YouthService) ImportCSV(ctx context.Context, r io.Reader, dryRun bool) (*ImportReport, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, apperr.Invalid("file", fmt.Sprintf("cannot read header: %v", err))
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredYouthColumns {
		if _, ok := cols[name]; !ok {
			return nil, apperr.Invalid("file", "missing column "+name)
		}
	}

	report := &ImportReport{Failed: []ImportFailure{}}
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			report.Failed = append(report.Failed, ImportFailure{Line: line, Error: err.Error()})
			continue
		}

		req, err := youthRequestFromRow(cols, record)
		if err == nil {
			err = validateRequest(req)
		}
		if err == nil && !dryRun {
			_, err = s.Create(ctx, req)
		}
		if err != nil {
			if !apperr.IsDomain(err) {
				return report, err
			}
			report.Failed = append(report.Failed, ImportFailure{Line: line, Error: err.Error()})
			continue
		}
		report.Imported++
	}

	logging.Info("Youth import finished", "imported", report.Imported, "failed", len(report.Failed), "dry_run", dryRun)
	return report, nil
}

func youthRequestFromRow(cols map[string]int, record []string) (*requests.CreateYouthRequest, error) {
	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	req := &requests.CreateYouthRequest{
		FirstName:      get("first_name"),
		LastName:       get("last_name"),
		Gender:         constants.Gender(get("gender")),
		PhoneNumber:    get("phone_number"),
		Email:          get("email"),
		District:       constants.District(get("district")),
		Subcounty:      get("subcounty"),
		Village:        get("village"),
		EducationLevel: get("education_level"),
		TrainingStatus: get("training_status"),
		ProgramStatus:  get("program_status"),
		Skills:         gormModels.StringList{},
	}

	if v := get("national_id"); v != "" {
		req.NationalID = &v
	}
	if v := get("dare_model"); v != "" {
		m := constants.DareModel(v)
		req.DareModel = &m
	}
	if v := get("skills"); v != "" {
		for _, skill := range strings.Split(v, ";") {
			if skill = strings.TrimSpace(skill); skill != "" {
				req.Skills = append(req.Skills, skill)
			}
		}
	}
	if v := get("date_of_birth"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, apperr.Invalid("dateOfBirth", "expected YYYY-MM-DD")
		}
		req.DateOfBirth = requests.NewDate(t)
	}
	return req, nil
}
