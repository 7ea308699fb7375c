// Package applications handles the competition application form.
package applications

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/thepitchdeck/portal/internal/backend"
	"github.com/thepitchdeck/portal/internal/filters"
)

// PitchDeck is the competition key of the flagship championship.
const PitchDeck = "pitch-deck"

// Form is the submitted application. Checks here only improve the form's
// feedback; the backend remains the authority on what it accepts.
type Form struct {
	FirstName    string `form:"first_name" validate:"required,max=80"`
	LastName     string `form:"last_name" validate:"required,max=80"`
	Email        string `form:"email" validate:"required,email"`
	School       string `form:"school" validate:"required,max=120"`
	Grade        string `form:"grade" validate:"required,grade"`
	TeamName     string `form:"team_name" validate:"max=80"`
	TeamSize     int    `form:"team_size" validate:"required,min=1,max=5"`
	PitchSummary string `form:"pitch_summary" validate:"required,min=50,max=2000"`
}

// FieldErrors maps a form field name to a message for the user.
type FieldErrors map[string]string

// Validator checks Forms.
type Validator struct {
	v *validator.Validate
}

// NewValidator builds a Validator that reports fields by their form names.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
		return filters.ParseGrade(fl.Field().String()).Constrains()
	})
	return &Validator{v: v}
}

// Validate returns nil when f is acceptable.
func (val *Validator) Validate(f Form) FieldErrors {
	err := val.v.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"": err.Error()}
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "grade":
		return "Choose a grade level."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Use at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Use at most %s characters.", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s.", fe.Param())
	}
	return "This value is not valid."
}

// Submitter forwards applications to the backend.
type Submitter interface {
	SubmitApplication(ctx context.Context, cookies []*http.Cookie, app backend.Application) (string, error)
}

// Service validates and submits applications.
type Service struct {
	validator *Validator
	submitter Submitter
}

// ErrInvalid is returned with FieldErrors when the form fails validation.
var ErrInvalid = errors.New("application is invalid")

// NewService creates a Service.
func NewService(v *Validator, s Submitter) *Service {
	return &Service{validator: v, submitter: s}
}

// Check runs the form checks without contacting the backend.
func (s *Service) Check(f Form) FieldErrors {
	return s.validator.Validate(normalize(f))
}

// Submit validates f and sends it to the backend for competition. It returns
// the backend's reference for the application.
func (s *Service) Submit(ctx context.Context, cookies []*http.Cookie, competition string, f Form) (string, FieldErrors, error) {
	f = normalize(f)
	if fe := s.validator.Validate(f); fe != nil {
		return "", fe, ErrInvalid
	}
	id, err := s.submitter.SubmitApplication(ctx, cookies, backend.Application{
		Competition:  competition,
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		Email:        f.Email,
		School:       f.School,
		Grade:        f.Grade,
		TeamName:     f.TeamName,
		TeamSize:     f.TeamSize,
		PitchSummary: f.PitchSummary,
	})
	if err != nil {
		return "", nil, fmt.Errorf("submit application: %w", err)
	}
	return id, nil, nil
}

func normalize(f Form) Form {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.School = strings.TrimSpace(f.School)
	f.TeamName = strings.TrimSpace(f.TeamName)
	f.PitchSummary = strings.TrimSpace(f.PitchSummary)
	return f
}
