package dashboard

import (
	"context"
	"errors"

	"fairway/models"
	"fairway/validate"
)

// FormState is the account dialog's lifecycle: closed, open with a draft, or
// waiting on a persistence write.
type FormState int

const (
	FormClosed FormState = iota
	FormOpen
	FormSubmitting
)

var ErrFormNotOpen = errors.New("form is not open")
var ErrFormIncomplete = errors.New("required fields are missing")

// SaveFunc persists a validated record under its account id.
type SaveFunc func(ctx context.Context, accountID string, rec models.AccountRecord) error

// Form collects one account's fields. Callers mutate Draft directly between
// Open and Submit; Submit gates on CanSubmit and the full validation suite.
type Form struct {
	state     FormState
	editing   bool
	accountID string

	Draft models.AccountRecord

	// Transient error surface: a banner message plus the blur-time flag on
	// the desired-time field.
	Err            string
	DesiredTimeErr bool
}

// OpenBlank opens the dialog seeded with the documented defaults.
func (f *Form) OpenBlank() {
	f.state = FormOpen
	f.editing = false
	f.accountID = ""
	f.Draft = models.DefaultAccount()
	f.clearErrors()
}

// OpenEdit opens the dialog pre-filled from an existing record. The account
// id stays fixed for the life of the edit.
func (f *Form) OpenEdit(accountID string, rec models.AccountRecord) {
	f.state = FormOpen
	f.editing = true
	f.accountID = accountID
	f.Draft = rec
	f.clearErrors()
}

func (f *Form) clearErrors() {
	f.Err = ""
	f.DesiredTimeErr = false
}

func (f *Form) State() FormState { return f.state }
func (f *Form) IsEditing() bool  { return f.editing }

func (f *Form) Title() string {
	if f.editing {
		return "Edit Account"
	}
	return "Add Account"
}

func (f *Form) SubmitLabel() string {
	if f.editing {
		return "Update Account"
	}
	return "Create Account"
}

// CanSubmit requires every always-required field to be present. Courses and
// target days may be empty here; they are checked at submit time.
func (f *Form) CanSubmit() bool {
	if f.state != FormOpen {
		return false
	}
	d := f.Draft
	return d.Email != "" &&
		d.Password != "" &&
		d.NumPlayers != 0 &&
		d.TimeOfDay != "" &&
		d.DesiredTime != "" &&
		d.EarliestTime != "" &&
		d.LatestTime != ""
}

// CheckDesiredTime gives blur-time feedback on the time window without
// blocking further edits.
func (f *Form) CheckDesiredTime() {
	if !validate.TimeWindowValid(f.Draft.DesiredTime, f.Draft.EarliestTime, f.Draft.LatestTime) {
		f.DesiredTimeErr = true
		f.Err = "Desired time must be between earliest and latest time"
		return
	}
	f.DesiredTimeErr = false
	f.Err = ""
}

// Cancel discards the draft unconditionally.
func (f *Form) Cancel() {
	f.state = FormClosed
	f.editing = false
	f.accountID = ""
	f.Draft = models.AccountRecord{}
	f.clearErrors()
}

// Submit re-runs the full validation suite and, on success, hands the record
// to save. A validation failure or a rejected write leaves the dialog open
// with the draft intact; success closes and clears it. The write is awaited,
// and a second Submit while one is in flight is refused.
func (f *Form) Submit(ctx context.Context, save SaveFunc) error {
	if f.state != FormOpen {
		return ErrFormNotOpen
	}
	if !f.CanSubmit() {
		f.Err = "Please fill out all required fields"
		return ErrFormIncomplete
	}

	rec, err := validate.Account(f.Draft)
	if err != nil {
		f.Err = err.Error()
		return err
	}

	accountID := f.accountID
	if !f.editing {
		accountID = rec.Email
	}

	f.state = FormSubmitting
	if err := save(ctx, accountID, rec); err != nil {
		f.state = FormOpen
		f.Err = err.Error()
		return err
	}

	f.Cancel()
	return nil
}
