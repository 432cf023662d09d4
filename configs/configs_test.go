package configs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"fairway/models"
)

func TestSnapshotLoading(t *testing.T) {
	// absent accounts field: still loading
	s := Snapshot{ClientID: "user@x.com"}
	require.True(t, s.Loading())

	// empty but present mapping: loaded, no accounts
	s.Config.Accounts = map[string]models.AccountRecord{}
	require.False(t, s.Loading())
	require.Empty(t, s.Items())
}

func TestSnapshotItemsOrderedByID(t *testing.T) {
	s := Snapshot{
		ClientID: "user@x.com",
		Config: models.ClientConfig{
			Accounts: map[string]models.AccountRecord{
				"c@d.com": {Email: "c@d.com"},
				"a@b.com": {Email: "a@b.com"},
				"b@c.com": {Email: "b@c.com"},
			},
		},
	}

	items := s.Items()
	require.Len(t, items, 3)
	require.Equal(t, "a@b.com", items[0].AccountID)
	require.Equal(t, "b@c.com", items[1].AccountID)
	require.Equal(t, "c@d.com", items[2].AccountID)
	require.Equal(t, "b@c.com", items[1].Email)
}

func TestDefaultConfigStoresEmptyAccountsMapping(t *testing.T) {
	// The seeded document must carry accounts: {} so a fresh client reads
	// back as loaded with zero accounts, not as still loading.
	data, err := bson.Marshal(models.DefaultClientConfig("user@x.com"))
	require.NoError(t, err)

	var cfg models.ClientConfig
	require.NoError(t, bson.Unmarshal(data, &cfg))

	require.NotNil(t, cfg.Accounts)
	require.False(t, Snapshot{ClientID: "user@x.com", Config: cfg}.Loading())
}

func TestDocumentWithoutAccountsFieldDecodesAsLoading(t *testing.T) {
	data, err := bson.Marshal(bson.M{"clientId": "user@x.com"})
	require.NoError(t, err)

	var cfg models.ClientConfig
	require.NoError(t, bson.Unmarshal(data, &cfg))

	require.Nil(t, cfg.Accounts)
	require.True(t, Snapshot{ClientID: "user@x.com", Config: cfg}.Loading())
}

func TestAccountFieldPath(t *testing.T) {
	require.Equal(t, "accounts.a@b.com", accountField("a@b.com"))
}

func TestPreferenceFieldWhitelist(t *testing.T) {
	require.Equal(t, "preferences.notifications.email.email", preferenceFields["email.address"])
	require.Equal(t, "preferences.notifications.sms.phone", preferenceFields["sms.phone"])
	_, ok := preferenceFields["accounts.a@b.com"]
	require.False(t, ok)
}
