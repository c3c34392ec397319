package models

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

var genders = []Gender{GenderMale, GenderFemale, GenderOther}

func ParseGender(s string) (Gender, bool) {
	for _, g := range genders {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

type Year string

const (
	YearFirst    Year = "1st Year"
	YearSecond   Year = "2nd Year"
	YearThird    Year = "3rd Year"
	YearFourth   Year = "4th Year"
	YearGraduate Year = "Graduate"
)

var years = []Year{YearFirst, YearSecond, YearThird, YearFourth, YearGraduate}

func ParseYear(s string) (Year, bool) {
	for _, y := range years {
		if string(y) == s {
			return y, true
		}
	}
	return "", false
}

type Branch string

const (
	BranchCSE   Branch = "CSE"
	BranchIT    Branch = "IT"
	BranchECE   Branch = "ECE"
	BranchEE    Branch = "EE"
	BranchME    Branch = "ME"
	BranchCE    Branch = "CE"
	BranchOther Branch = "Other"
)

var branches = []Branch{BranchCSE, BranchIT, BranchECE, BranchEE, BranchME, BranchCE, BranchOther}

func ParseBranch(s string) (Branch, bool) {
	for _, b := range branches {
		if string(b) == s {
			return b, true
		}
	}
	return "", false
}

type Experience string

const (
	ExperienceBeginner     Experience = "Beginner"
	ExperienceIntermediate Experience = "Intermediate"
	ExperienceAdvanced     Experience = "Advanced"
)

var experiences = []Experience{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}

func ParseExperience(s string) (Experience, bool) {
	for _, e := range experiences {
		if string(e) == s {
			return e, true
		}
	}
	return "", false
}

// CollegeOther is the college choice that makes OtherCollege mandatory.
const CollegeOther = "Other"

// Registration is one attendee's validated submission. Records are never
// updated after insert.
type Registration struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Gender       Gender     `json:"gender"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Enrollment   string     `json:"enrollment"`
	College      string     `json:"college"`
	OtherCollege string     `json:"otherCollege,omitempty"`
	Year         Year       `json:"year"`
	Branch       Branch     `json:"branch"`
	Experience   Experience `json:"experience"`
	Interests    []string   `json:"interests"`
	Expectations string     `json:"expectations"`
	EventName    string     `json:"eventName"`
	RegisteredAt time.Time  `json:"registeredAt"`
}
