package models

// EmailNotification holds the address updates are mailed to and whether they
// are enabled at all.
type EmailNotification struct {
	Email          string `json:"email" bson:"email"`
	UpdatesEnabled bool   `json:"updatesEnabled" bson:"updatesEnabled"`
}

type SMSNotification struct {
	Phone          string `json:"phone,omitempty" bson:"phone,omitempty"`
	UpdatesEnabled bool   `json:"updatesEnabled" bson:"updatesEnabled"`
}

type Notifications struct {
	Email EmailNotification `json:"email" bson:"email"`
	SMS   SMSNotification   `json:"sms" bson:"sms"`
}

type ClientPreferences struct {
	Notifications Notifications `json:"notifications" bson:"notifications"`
}

// ClientConfig is the full per-client document: notification preferences plus
// the map of booking accounts keyed by account id. The Accounts map stays nil
// when the field is absent on the stored document, which is how "not loaded
// yet" is told apart from "no accounts yet".
type ClientConfig struct {
	ClientID    string                   `json:"clientId" bson:"clientId"`
	Preferences ClientPreferences        `json:"preferences" bson:"preferences"`
	Accounts    map[string]AccountRecord `json:"accounts" bson:"accounts"`
}

// DefaultClientConfig is the document inserted the first time a client logs in.
func DefaultClientConfig(clientID string) ClientConfig {
	return ClientConfig{
		ClientID: clientID,
		Preferences: ClientPreferences{
			Notifications: Notifications{
				Email: EmailNotification{Email: "", UpdatesEnabled: true},
				SMS:   SMSNotification{UpdatesEnabled: true},
			},
		},
		Accounts: map[string]AccountRecord{},
	}
}
