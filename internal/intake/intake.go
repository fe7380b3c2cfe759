// Package intake converts the untyped body of a submit request into a
// Submission candidate. Rules run in a fixed order and the first failure
// wins, so a given bad payload always reports the same reason.
package intake

import (
	"math"
	"strconv"
	"strings"

	"portfolio-api/internal/models"
)

// ValidationError reports client input that violates the intake contract.
// Store failures are ordinary errors; handlers tell the two apart with
// errors.As.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func failf(reason string) error {
	return &ValidationError{Reason: reason}
}

// Parse validates and normalizes an untyped request body. On success the
// returned Submission has no ID and no CreatedAt; the service stamps the
// timestamp and the store assigns the ID.
func Parse(body map[string]any) (*models.Submission, error) {
	name := strings.TrimSpace(asString(body["name"]))
	message := strings.TrimSpace(asString(body["message"]))
	if name == "" || message == "" {
		return nil, failf("Missing required fields: name and message.")
	}

	sub := &models.Submission{
		Name:    name,
		Message: message,
		Email:   optionalString(body["email"]),
		Phone:   optionalString(body["phone"]),
	}

	if v, present := body["age"]; present && v != nil && v != "" {
		age, ok := asNumber(v)
		if !ok || math.IsNaN(age) || math.IsInf(age, 0) || age < 0 || age > 120 {
			return nil, failf("Age must be a number between 0 and 120.")
		}
		sub.Age = &age
	}

	// Malformed dates are dropped, not rejected.
	if dob, ok := body["dob"].(string); ok && models.IsDateYYYYMMDD(dob) {
		sub.Dob = dob
	}

	sub.State = optionalString(body["state"])

	if cm := optionalString(body["contactMethod"]); cm != "" {
		if !models.ContactMethods[cm] {
			return nil, failf("Invalid contactMethod.")
		}
		sub.ContactMethod = cm
	}

	sub.Topics = filterTopics(body["topics"])

	if !truthy(body["agree"]) {
		return nil, failf("You must check the required confirmation box.")
	}
	sub.Agree = true

	return sub, nil
}

// filterTopics keeps only recognized topic values, deduplicated in
// first-seen order. Non-array input yields an empty set.
func filterTopics(v any) []string {
	topics := []string{}
	raw, ok := v.([]any)
	if !ok {
		return topics
	}
	seen := make(map[string]bool, len(raw))
	for _, t := range raw {
		s := strings.TrimSpace(asString(t))
		if models.TopicOptions[s] && !seen[s] {
			seen[s] = true
			topics = append(topics, s)
		}
	}
	return topics
}

// asString renders a decoded JSON scalar as text. Nil and composite values
// render empty, which downstream trimming treats as absent.
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// optionalString returns the trimmed text of an optional field, or "" when
// the field is absent, empty, or otherwise falsy.
func optionalString(v any) string {
	if !truthy(v) {
		return ""
	}
	return strings.TrimSpace(asString(v))
}

// asNumber converts a scalar to a float the way a loosely-typed client
// would expect: numbers pass through, numeric strings parse, booleans
// become 0 or 1. ok is false for anything else.
func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// truthy mirrors loose-typing truthiness: false, 0, "", and null are falsy;
// every other value, including empty arrays and objects, is truthy.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}
