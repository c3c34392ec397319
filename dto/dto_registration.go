package dto

import (
	"encoding/json"
	"fmt"
)

// RegistrationRequest is the raw public form. Fields are untrusted; the
// validation engine normalizes and checks them.
type RegistrationRequest struct {
	Name         string     `json:"name" form:"name"`
	Gender       string     `json:"gender" form:"gender"`
	Email        string     `json:"email" form:"email"`
	Phone        FlexString `json:"phone" form:"phone"`
	Enrollment   string     `json:"enrollment" form:"enrollment"`
	College      string     `json:"college" form:"college"`
	OtherCollege string     `json:"otherCollege" form:"otherCollege"`
	Year         string     `json:"year" form:"year"`
	Branch       string     `json:"branch" form:"branch"`
	Experience   string     `json:"experience" form:"experience"`
	Interests    StringList `json:"interests" form:"interests"`
	Expectations string     `json:"expectations" form:"expectations"`
}

// StringList accepts either a JSON array of strings or a single string, the
// way a form with one checked box serializes.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = nil
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err != nil {
		return fmt.Errorf("interests must be a string or a list of strings")
	}
	*l = StringList{one}
	return nil
}

// FlexString accepts a JSON string or a JSON number. A number keeps its
// literal text, so 9876543210 reads as "9876543210".
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("expected a string or a number")
	}
	*s = FlexString(num.String())
	return nil
}

type RegistrationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
