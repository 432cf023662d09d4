package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"fairway/models"
)

// FieldError names the offending field so callers can surface inline errors.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var structValidator = newStructValidator()

// newStructValidator reports failing fields by their json names so inline
// errors match the wire shape the dashboard renders.
func newStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var (
	hhmmRe   = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	nonDigit = regexp.MustCompile(`\D`)
)

// TimeValid reports whether s is a zero-padded 24-hour HH:MM string.
func TimeValid(s string) bool {
	return hhmmRe.MatchString(s)
}

// TimeWindowValid checks earliest <= desired <= latest. Plain string
// comparison is correct because zero-padded 24-hour times sort
// lexicographically.
func TimeWindowValid(desired, earliest, latest string) bool {
	if desired < earliest || desired > latest || earliest > latest {
		return false
	}
	return true
}

// HolesValid accepts only 9- or 18-hole rounds.
func HolesValid(n int) bool {
	return n == 9 || n == 18
}

// PlayersValid accepts party sizes the booking site allows.
func PlayersValid(n int) bool {
	return n >= 1 && n <= 4
}

// CanonicalPhone normalizes a phone number to +1XXXXXXXXXX. A bare ten-digit
// string gets the +1 prefix; an already-prefixed E.164 US number passes
// through. Empty input is allowed since the field is optional.
func CanonicalPhone(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	digits := nonDigit.ReplaceAllString(s, "")
	if strings.HasPrefix(strings.TrimSpace(s), "+") {
		if strings.HasPrefix(digits, "1") && len(digits) == 11 {
			return "+" + digits, nil
		}
		return "", &FieldError{Field: "phone", Message: "must be a +1 number with 10 digits"}
	}
	if len(digits) != 10 {
		return "", &FieldError{Field: "phone", Message: "must have exactly 10 digits"}
	}
	return "+1" + digits, nil
}

// EmailValid runs the struct validator's email rule on a single address.
func EmailValid(s string) bool {
	return structValidator.Var(s, "required,email") == nil
}

// Account runs the full validation suite on a candidate record and returns a
// copy with the phone number canonicalized. The input is never mutated.
func Account(rec models.AccountRecord) (models.AccountRecord, error) {
	if err := structValidator.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return rec, &FieldError{Field: f.Field(), Message: "failed " + f.Tag() + " check"}
		}
		return rec, err
	}

	for _, t := range []struct {
		field, value string
	}{
		{"desiredTime", rec.DesiredTime},
		{"earliestTime", rec.EarliestTime},
		{"latestTime", rec.LatestTime},
	} {
		if !TimeValid(t.value) {
			return rec, &FieldError{Field: t.field, Message: "must be HH:MM"}
		}
	}
	if !TimeWindowValid(rec.DesiredTime, rec.EarliestTime, rec.LatestTime) {
		return rec, &FieldError{Field: "desiredTime", Message: "desired time must be between earliest and latest time"}
	}
	if !HolesValid(rec.NumHoles) {
		return rec, &FieldError{Field: "numHoles", Message: "must be 9 or 18"}
	}
	if !PlayersValid(rec.NumPlayers) {
		return rec, &FieldError{Field: "numPlayers", Message: "must be between 1 and 4"}
	}
	for _, sid := range rec.ScheduleIDs {
		if !models.ValidScheduleID(sid) {
			return rec, &FieldError{Field: "scheduleIds", Message: "unknown course " + sid}
		}
	}
	for _, day := range rec.TargetDays {
		if !models.ValidDayOfWeek(day) {
			return rec, &FieldError{Field: "targetDays", Message: "unknown day " + day}
		}
	}

	phone, err := CanonicalPhone(rec.Phone)
	if err != nil {
		return rec, err
	}
	rec.Phone = phone
	return rec, nil
}
