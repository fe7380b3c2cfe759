package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recognized values for the contactMethod field.
var ContactMethods = map[string]bool{
	"email": true,
	"phone": true,
	"text":  true,
}

// Recognized values for the topics field. Anything else is dropped at intake.
var TopicOptions = map[string]bool{
	"intake":  true,
	"billing": true,
	"tech":    true,
	"other":   true,
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsDateYYYYMMDD reports whether s is a well-formed YYYY-MM-DD calendar date.
func IsDateYYYYMMDD(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Submission is one intake-form entry as stored in the submissions collection.
// CreatedAt is stamped server-side; the store assigns the ID.
type Submission struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email,omitempty"`
	Phone         string             `bson:"phone,omitempty"`
	Age           *float64           `bson:"age,omitempty"`
	Dob           string             `bson:"dob,omitempty"`
	State         string             `bson:"state,omitempty"`
	ContactMethod string             `bson:"contactMethod,omitempty"`
	Topics        []string           `bson:"topics"`
	Message       string             `bson:"message"`
	Agree         bool               `bson:"agree"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty"`
}

// SubmissionView is the wire form of a Submission: the ID rendered as a hex
// string and createdAt as an RFC 3339 UTC string, omitted when the stored
// document has none.
type SubmissionView struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Email         string   `json:"email,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Age           *float64 `json:"age,omitempty"`
	Dob           string   `json:"dob,omitempty"`
	State         string   `json:"state,omitempty"`
	ContactMethod string   `json:"contactMethod,omitempty"`
	Topics        []string `json:"topics"`
	Message       string   `json:"message"`
	Agree         bool     `json:"agree"`
	CreatedAt     string   `json:"createdAt,omitempty"`
}

// View converts a stored Submission to its wire form.
func (s *Submission) View() SubmissionView {
	v := SubmissionView{
		ID:            s.ID.Hex(),
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		Age:           s.Age,
		Dob:           s.Dob,
		State:         s.State,
		ContactMethod: s.ContactMethod,
		Topics:        s.Topics,
		Message:       s.Message,
		Agree:         s.Agree,
	}
	if v.Topics == nil {
		v.Topics = []string{}
	}
	if !s.CreatedAt.IsZero() {
		v.CreatedAt = s.CreatedAt.UTC().Format(time.RFC3339)
	}
	return v
}
