package configs

import (
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fairway/db"
	"fairway/models"
	"fairway/mq"
)

// Snapshot is an immutable point-in-time view of one client's config
// document, as delivered to the dashboard.
type Snapshot struct {
	ClientID string              `json:"clientId"`
	Config   models.ClientConfig `json:"config"`
}

// Loading reports whether the accounts mapping has not been delivered yet.
// A client with zero accounts still carries an empty (non-nil) map.
func (s Snapshot) Loading() bool {
	return s.Config.Accounts == nil
}

// Items returns the accounts mapping as an ordered list. Storage gives no
// ordering guarantee, so the list is sorted by account id.
func (s Snapshot) Items() []models.AccountItem {
	items := make([]models.AccountItem, 0, len(s.Config.Accounts))
	for id, rec := range s.Config.Accounts {
		items = append(items, models.AccountItem{AccountID: id, AccountRecord: rec})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].AccountID < items[j].AccountID })
	return items
}

func accountField(accountID string) string {
	return "accounts." + accountID
}

// Get fetches the client's config document. A missing document yields a
// zero snapshot whose Loading() is true.
func Get(ctx context.Context, clientID string) (Snapshot, error) {
	var cfg models.ClientConfig
	err := db.ConfigsCollection.FindOne(ctx, bson.M{"clientId": clientID}).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		return Snapshot{ClientID: clientID}, nil
	} else if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{ClientID: clientID, Config: cfg}, nil
}

// EnsureConfig inserts the default document for a client that has none.
// Returns true when a new document was created.
func EnsureConfig(ctx context.Context, clientID string) (bool, error) {
	var existing models.ClientConfig
	err := db.ConfigsCollection.FindOne(ctx, bson.M{"clientId": clientID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		_, err := db.ConfigsCollection.InsertOne(ctx, models.DefaultClientConfig(clientID))
		if err != nil {
			return false, err
		}
		mq.Emit(ctx, mq.ConfigEvent{ClientID: clientID, Field: "config", Method: "init"})
		return true, nil
	} else if err != nil {
		return false, err
	}
	return false, nil
}

// SetAccount writes one account record at its field path. The write targets
// only accounts.<id>; sibling accounts and preferences are never touched.
func SetAccount(ctx context.Context, clientID, accountID string, rec models.AccountRecord) error {
	filter := bson.M{"clientId": clientID}
	update := bson.M{"$set": bson.M{accountField(accountID): rec}}

	opts := options.Update().SetUpsert(true)
	if _, err := db.ConfigsCollection.UpdateOne(ctx, filter, update, opts); err != nil {
		return err
	}
	mq.Emit(ctx, mq.ConfigEvent{ClientID: clientID, Field: accountField(accountID), Method: "set"})
	return nil
}

// DeleteAccount removes one account's field from the mapping. Deleting an id
// that is already gone is a success.
func DeleteAccount(ctx context.Context, clientID, accountID string) error {
	filter := bson.M{"clientId": clientID}
	update := bson.M{"$unset": bson.M{accountField(accountID): ""}}

	if _, err := db.ConfigsCollection.UpdateOne(ctx, filter, update); err != nil {
		return err
	}
	mq.Emit(ctx, mq.ConfigEvent{ClientID: clientID, Field: accountField(accountID), Method: "delete"})
	return nil
}

// Preference field paths the API may write, keyed by their public names.
var preferenceFields = map[string]string{
	"email.address":        "preferences.notifications.email.email",
	"email.updatesEnabled": "preferences.notifications.email.updatesEnabled",
	"sms.phone":            "preferences.notifications.sms.phone",
	"sms.updatesEnabled":   "preferences.notifications.sms.updatesEnabled",
}

var ErrUnknownPreference = errors.New("unknown preference field")

// SetPreference writes one whitelisted notification-preference field.
func SetPreference(ctx context.Context, clientID, field string, value any) error {
	path, ok := preferenceFields[field]
	if !ok {
		return ErrUnknownPreference
	}

	filter := bson.M{"clientId": clientID}
	update := bson.M{"$set": bson.M{path: value}}

	opts := options.Update().SetUpsert(true)
	if _, err := db.ConfigsCollection.UpdateOne(ctx, filter, update, opts); err != nil {
		return err
	}
	mq.Emit(ctx, mq.ConfigEvent{ClientID: clientID, Field: path, Method: "set"})
	return nil
}

// Mongo is the store handed to dashboard tabs; it binds the package-level
// write operations to the value the orchestrator expects.
type Mongo struct{}

func (Mongo) SetAccount(ctx context.Context, clientID, accountID string, rec models.AccountRecord) error {
	return SetAccount(ctx, clientID, accountID, rec)
}

func (Mongo) DeleteAccount(ctx context.Context, clientID, accountID string) error {
	return DeleteAccount(ctx, clientID, accountID)
}

// All returns every client config, for the privileged all-clients view.
func All(ctx context.Context) ([]models.ClientConfig, error) {
	cur, err := db.ConfigsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ClientConfig
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
