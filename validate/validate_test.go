package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fairway/models"
)

func TestTimeWindowValid(t *testing.T) {
	cases := []struct {
		desired, earliest, latest string
		want                      bool
	}{
		{"08:00", "06:00", "18:00", true},
		{"06:00", "06:00", "18:00", true},
		{"18:00", "06:00", "18:00", true},
		{"07:59", "08:00", "18:00", false},
		{"18:01", "06:00", "18:00", false},
		{"12:00", "14:00", "10:00", false}, // inverted window
	}
	for _, c := range cases {
		require.Equal(t, c.want, TimeWindowValid(c.desired, c.earliest, c.latest),
			"desired=%s earliest=%s latest=%s", c.desired, c.earliest, c.latest)
	}
}

func TestHolesValid(t *testing.T) {
	require.True(t, HolesValid(9))
	require.True(t, HolesValid(18))
	require.False(t, HolesValid(12))
	require.False(t, HolesValid(0))
}

func TestPlayersValid(t *testing.T) {
	require.False(t, PlayersValid(0))
	require.True(t, PlayersValid(1))
	require.True(t, PlayersValid(4))
	require.False(t, PlayersValid(5))
}

func TestCanonicalPhone(t *testing.T) {
	got, err := CanonicalPhone("5551234567")
	require.NoError(t, err)
	require.Equal(t, "+15551234567", got)

	got, err = CanonicalPhone("(555) 123-4567")
	require.NoError(t, err)
	require.Equal(t, "+15551234567", got)

	got, err = CanonicalPhone("+1 555 123 4567")
	require.NoError(t, err)
	require.Equal(t, "+15551234567", got)

	_, err = CanonicalPhone("555123456") // 9 digits
	require.Error(t, err)

	_, err = CanonicalPhone("+44 20 7946 0958")
	require.Error(t, err)

	got, err = CanonicalPhone("")
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestTimeValid(t *testing.T) {
	require.True(t, TimeValid("06:00"))
	require.True(t, TimeValid("23:59"))
	require.False(t, TimeValid("24:00"))
	require.False(t, TimeValid("6:00"))
	require.False(t, TimeValid("0600"))
}

func validRecord() models.AccountRecord {
	rec := models.DefaultAccount()
	rec.Email = "a@b.com"
	rec.Password = "pw"
	rec.TargetDays = []string{"Monday"}
	return rec
}

func TestAccountAcceptsValidRecord(t *testing.T) {
	got, err := Account(validRecord())
	require.NoError(t, err)
	require.Equal(t, "a@b.com", got.Email)
}

func TestAccountCanonicalizesPhone(t *testing.T) {
	rec := validRecord()
	rec.Phone = "5551234567"

	got, err := Account(rec)
	require.NoError(t, err)
	require.Equal(t, "+15551234567", got.Phone)
	// input untouched
	require.Equal(t, "5551234567", rec.Phone)
}

func TestAccountFieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.AccountRecord)
		field  string
	}{
		{"missing email", func(r *models.AccountRecord) { r.Email = "" }, "email"},
		{"bad email", func(r *models.AccountRecord) { r.Email = "not-an-email" }, "email"},
		{"missing password", func(r *models.AccountRecord) { r.Password = "" }, "password"},
		{"desired before earliest", func(r *models.AccountRecord) { r.DesiredTime = "05:59" }, "desiredTime"},
		{"desired after latest", func(r *models.AccountRecord) { r.DesiredTime = "18:01" }, "desiredTime"},
		{"bad holes", func(r *models.AccountRecord) { r.NumHoles = 12 }, "numHoles"},
		{"bad time format", func(r *models.AccountRecord) { r.DesiredTime = "8am" }, "desiredTime"},
		{"too many players", func(r *models.AccountRecord) { r.NumPlayers = 5 }, "numPlayers"},
		{"bad time of day", func(r *models.AccountRecord) { r.TimeOfDay = "dawn" }, "timeOfDay"},
		{"unknown course", func(r *models.AccountRecord) { r.ScheduleIDs = []string{"9999"} }, "scheduleIds"},
		{"unknown day", func(r *models.AccountRecord) { r.TargetDays = []string{"Funday"} }, "targetDays"},
		{"bad phone", func(r *models.AccountRecord) { r.Phone = "123" }, "phone"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := validRecord()
			c.mutate(&rec)

			_, err := Account(rec)
			require.Error(t, err)
			ferr, ok := err.(*FieldError)
			require.True(t, ok, "expected FieldError, got %T", err)
			require.Equal(t, c.field, ferr.Field)
		})
	}
}

func TestAccountPlayersOutOfRange(t *testing.T) {
	rec := validRecord()
	rec.NumPlayers = 5
	_, err := Account(rec)
	require.Error(t, err)

	rec.NumPlayers = 0
	_, err = Account(rec)
	require.Error(t, err)

	ferr, ok := err.(*FieldError)
	require.True(t, ok)
	require.Equal(t, "numPlayers", ferr.Field)
}
