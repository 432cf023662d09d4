package models

// AccountRecord is one set of login credentials plus booking preferences for
// the reservation bot. The account id (login email) is the key of the owning
// client's accounts map and is never stored inside the record itself.
type AccountRecord struct {
	Email                     string   `json:"email" bson:"email" validate:"required,email"`
	Password                  string   `json:"password" bson:"password" validate:"required"`
	Phone                     string   `json:"phone,omitempty" bson:"phone,omitempty"`
	ScheduleIDs               []string `json:"scheduleIds" bson:"scheduleIds"`
	NumPlayers                int      `json:"numPlayers" bson:"numPlayers" validate:"min=1,max=4"`
	TimeOfDay                 string   `json:"timeOfDay" bson:"timeOfDay" validate:"required,oneof=morning midday afternoon all"`
	NumHoles                  int      `json:"numHoles" bson:"numHoles"`
	DesiredTime               string   `json:"desiredTime" bson:"desiredTime" validate:"required"`
	EarliestTime              string   `json:"earliestTime" bson:"earliestTime" validate:"required"`
	LatestTime                string   `json:"latestTime" bson:"latestTime" validate:"required"`
	TargetDays                []string `json:"targetDays" bson:"targetDays"`
	AllowMultipleReservations bool     `json:"allowMultipleReservations" bson:"allowMultipleReservations"`
	AllowNextDayBooking       bool     `json:"allowNextDayBooking" bson:"allowNextDayBooking"`
	IsResident                bool     `json:"isResident,omitempty" bson:"isResident,omitempty"`
}

// AccountItem is a record paired with its map key, the shape handed to the
// dashboard list.
type AccountItem struct {
	AccountID string `json:"accountId" bson:"-"`
	AccountRecord
}

// MaxAccounts is the quota of booking accounts a single client may hold.
const MaxAccounts = 3

// Form defaults for a brand-new account.
const (
	DefaultEarliestTime = "06:00"
	DefaultLatestTime   = "18:00"
	DefaultDesiredTime  = "08:00"
	DefaultNumPlayers   = 4
	DefaultNumHoles     = 18
)

// Times of day the bot will target.
const (
	TimeMorning   = "morning"
	TimeMidday    = "midday"
	TimeAfternoon = "afternoon"
	TimeAll       = "all"
)

var TimesOfDay = []string{TimeMorning, TimeMidday, TimeAfternoon, TimeAll}

// Courses maps course name to the booking site's schedule id.
var Courses = map[string]string{
	"Black":  "2431",
	"Red":    "2432",
	"Blue":   "2433",
	"Green":  "2434",
	"Yellow": "2435",
}

// SchedIDToBookingClass maps a schedule id to the booking class the
// reservation bot submits for it.
var SchedIDToBookingClass = map[string]string{
	"2431": "2136",
	"2432": "2138",
	"2433": "2140",
	"2434": "2142",
	"2435": "2144",
	"2517": "2159",
	"2538": "2161",
	"2539": "2163",
}

var DaysOfWeek = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func ValidScheduleID(id string) bool {
	for _, sid := range Courses {
		if sid == id {
			return true
		}
	}
	return false
}

func ValidDayOfWeek(day string) bool {
	for _, d := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// DefaultAccount seeds the add-account form.
func DefaultAccount() AccountRecord {
	return AccountRecord{
		ScheduleIDs:  []string{},
		NumPlayers:   DefaultNumPlayers,
		TimeOfDay:    TimeAll,
		NumHoles:     DefaultNumHoles,
		DesiredTime:  DefaultDesiredTime,
		EarliestTime: DefaultEarliestTime,
		LatestTime:   DefaultLatestTime,
		TargetDays:   []string{},
	}
}
