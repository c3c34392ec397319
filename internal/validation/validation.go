// Package validation is the authoritative copy of the registration form
// rules. The public page runs the same rules in the browser for instant
// feedback; this copy decides.
package validation

import (
	"reflect"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"gdg-registration/dto"
	"gdg-registration/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError is one failed rule, keyed by the form field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors holds every failed rule in form order. Error returns the
// first message.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}
	return fe[0].Message
}

// form order, used to sort errors
var fieldRank = map[string]int{
	"name":         0,
	"gender":       1,
	"email":        2,
	"phone":        3,
	"enrollment":   4,
	"college":      5,
	"otherCollege": 6,
	"year":         7,
	"branch":       8,
	"experience":   9,
}

type registrationInput struct {
	Name         string `json:"name" validate:"min=3"`
	Gender       string `json:"gender" validate:"required,gender"`
	Email        string `json:"email" validate:"looseemail"`
	Phone        string `json:"phone" validate:"len=10,number"`
	Enrollment   string `json:"enrollment" validate:"min=8,alphanum"`
	College      string `json:"college" validate:"required"`
	OtherCollege string `json:"otherCollege"`
	Year         string `json:"year" validate:"required,year"`
	Branch       string `json:"branch" validate:"required,branch"`
	Experience   string `json:"experience" validate:"required,experience"`
}

// Engine validates registration submissions.
type Engine struct {
	v *validator.Validate
}

// New builds an Engine. It panics only if a rule fails to register, which
// is a programming error.
func New() *Engine {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]func(string) bool{
		"gender":     func(s string) bool { _, ok := models.ParseGender(s); return ok },
		"year":       func(s string) bool { _, ok := models.ParseYear(s); return ok },
		"branch":     func(s string) bool { _, ok := models.ParseBranch(s); return ok },
		"experience": func(s string) bool { _, ok := models.ParseExperience(s); return ok },
		"looseemail": emailPattern.MatchString,
	}
	for tag, fn := range rules {
		fn := fn
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}
	v.RegisterStructValidation(validateOtherCollege, registrationInput{})

	return &Engine{v: v}
}

func validateOtherCollege(sl validator.StructLevel) {
	in := sl.Current().Interface().(registrationInput)
	if in.College == models.CollegeOther && utf8.RuneCountInString(in.OtherCollege) < 3 {
		sl.ReportError(in.OtherCollege, "otherCollege", "OtherCollege", "othercollege", "")
	}
}

// Validate normalizes req and checks every rule. On failure the error is a
// FieldErrors holding all failures in form order.
func (e *Engine) Validate(req dto.RegistrationRequest) (models.Registration, error) {
	in := normalize(req)

	if err := e.v.Struct(in); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return models.Registration{}, err
		}
		return models.Registration{}, toFieldErrors(verrs)
	}

	gender, _ := models.ParseGender(in.Gender)
	year, _ := models.ParseYear(in.Year)
	branch, _ := models.ParseBranch(in.Branch)
	experience, _ := models.ParseExperience(in.Experience)

	reg := models.Registration{
		Name:         in.Name,
		Gender:       gender,
		Email:        in.Email,
		Phone:        in.Phone,
		Enrollment:   in.Enrollment,
		College:      in.College,
		Year:         year,
		Branch:       branch,
		Experience:   experience,
		Interests:    normalizeInterests(req.Interests),
		Expectations: strings.TrimSpace(req.Expectations),
	}
	if in.College == models.CollegeOther {
		reg.OtherCollege = in.OtherCollege
	}
	return reg, nil
}

// normalize applies the same input filters the form applies while typing.
func normalize(req dto.RegistrationRequest) registrationInput {
	return registrationInput{
		Name:         strings.TrimSpace(req.Name),
		Gender:       strings.TrimSpace(req.Gender),
		Email:        strings.TrimSpace(req.Email),
		Phone:        keepDigits(string(req.Phone)),
		Enrollment:   strings.ToUpper(keepAlphanumeric(req.Enrollment)),
		College:      strings.TrimSpace(req.College),
		OtherCollege: strings.TrimSpace(req.OtherCollege),
		Year:         strings.TrimSpace(req.Year),
		Branch:       strings.TrimSpace(req.Branch),
		Experience:   strings.TrimSpace(req.Experience),
	}
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keepAlphanumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeInterests trims, drops blanks and de-duplicates, keeping the
// first occurrence order.
func normalizeInterests(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func toFieldErrors(verrs validator.ValidationErrors) FieldErrors {
	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe.Field(), fe.Tag())})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return fieldRank[out[i].Field] < fieldRank[out[j].Field]
	})
	return out
}

func message(field, tag string) string {
	switch field {
	case "name":
		return "Name must be at least 3 characters"
	case "gender":
		if tag == "required" {
			return "Gender is required"
		}
		return "Invalid gender"
	case "email":
		return "Invalid email format"
	case "phone":
		return "Phone must be exactly 10 digits"
	case "enrollment":
		return "Enrollment number must be at least 8 characters"
	case "college":
		return "College is required"
	case "otherCollege":
		return "Please specify your college name"
	case "year":
		if tag == "required" {
			return "Current year is required"
		}
		return "Invalid year"
	case "branch":
		if tag == "required" {
			return "Branch is required"
		}
		return "Invalid branch"
	case "experience":
		if tag == "required" {
			return "Programming experience is required"
		}
		return "Invalid programming experience"
	}
	return "Invalid " + field
}
