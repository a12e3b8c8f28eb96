// Package validator checks submitted portfolio records before anything is written.
package validator

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so errors point at the request field
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Profile requires name, title and bio.
func Profile(in domain.ProfileInput) error {
	return check(in)
}

// Project requires title, description and a non-null techStack (an empty list is fine).
func Project(in domain.ProjectInput) error {
	return check(in)
}

// Experience requires title, description, startDate and type, type being work or education.
// company and institution are not checked.
func Experience(in domain.ExperienceInput) error {
	if err := check(in); err != nil {
		return err
	}
	if _, err := ParseDate(in.StartDate); err != nil {
		return domain.InvalidDate("startDate", in.StartDate)
	}
	if in.EndDate != "" {
		if _, err := ParseDate(in.EndDate); err != nil {
			return domain.InvalidDate("endDate", in.EndDate)
		}
	}
	return nil
}

// check runs the struct tags and reports missing fields before enum violations.
func check(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return domain.MissingField(fe.Field())
		}
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "oneof" {
			return domain.InvalidEnum(fe.Field(), strings.Fields(fe.Param())...)
		}
	}
	return domain.MissingField(fieldErrs[0].Field())
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// ParseDate accepts a year, a year-month, a calendar date or a full RFC 3339 timestamp.
// Values without a zone are taken as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
