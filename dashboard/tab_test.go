package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"fairway/configs"
	"fairway/models"
)

type storeCall struct {
	op        string
	clientID  string
	accountID string
	rec       models.AccountRecord
}

type fakeStore struct {
	calls []storeCall
	fail  map[string]error
}

func (s *fakeStore) SetAccount(_ context.Context, clientID, accountID string, rec models.AccountRecord) error {
	s.calls = append(s.calls, storeCall{"set", clientID, accountID, rec})
	return s.fail[accountID]
}

func (s *fakeStore) DeleteAccount(_ context.Context, clientID, accountID string) error {
	s.calls = append(s.calls, storeCall{"delete", clientID, accountID, models.AccountRecord{}})
	return s.fail[accountID]
}

func record(email string) models.AccountRecord {
	rec := models.DefaultAccount()
	rec.Email = email
	rec.Password = "pw"
	rec.TargetDays = []string{"Monday"}
	return rec
}

func snapshot(clientID string, accounts map[string]models.AccountRecord) configs.Snapshot {
	return configs.Snapshot{
		ClientID: clientID,
		Config:   models.ClientConfig{ClientID: clientID, Accounts: accounts},
	}
}

func TestLoadingUntilAccountsMappingArrives(t *testing.T) {
	tab := NewTab("user@x.com", &fakeStore{})
	require.True(t, tab.Loading())

	// an absent mapping is still loading
	tab.Apply(snapshot("user@x.com", nil))
	require.True(t, tab.Loading())

	// an empty mapping is loaded with zero accounts
	tab.Apply(snapshot("user@x.com", map[string]models.AccountRecord{}))
	require.False(t, tab.Loading())
	require.Empty(t, tab.Items())
}

func TestQuotaGatesAddControl(t *testing.T) {
	store := &fakeStore{}
	tab := NewTab("user@x.com", store)

	full := map[string]models.AccountRecord{
		"a@b.com": record("a@b.com"),
		"c@d.com": record("c@d.com"),
		"e@f.com": record("e@f.com"),
	}
	tab.Apply(snapshot("user@x.com", full))

	require.False(t, tab.CanAdd())
	require.Zero(t, tab.RemainingQuota())
	require.False(t, tab.OpenAdd())
	require.Equal(t, FormClosed, tab.Form.State())

	// deleting one re-enables add
	delete(full, "e@f.com")
	tab.Apply(snapshot("user@x.com", full))
	require.True(t, tab.CanAdd())
	require.Equal(t, 1, tab.RemainingQuota())
	require.True(t, tab.OpenAdd())
	require.Equal(t, FormOpen, tab.Form.State())
}

func TestCreateWritesExactlyOneTargetedSet(t *testing.T) {
	store := &fakeStore{}
	tab := NewTab("user@x.com", store)
	tab.Apply(snapshot("user@x.com", map[string]models.AccountRecord{}))

	require.True(t, tab.OpenAdd())
	tab.Form.Draft.Email = "a@b.com"
	tab.Form.Draft.Password = "pw"
	tab.Form.Draft.TargetDays = []string{"Monday"}

	require.NoError(t, tab.Submit(context.Background()))

	require.Len(t, store.calls, 1)
	call := store.calls[0]
	require.Equal(t, "set", call.op)
	require.Equal(t, "user@x.com", call.clientID)
	require.Equal(t, "a@b.com", call.accountID)
	require.Equal(t, "a@b.com", call.rec.Email)
	require.Equal(t, FormClosed, tab.Form.State())
}

func TestEditStaleIDIsSilentNoOp(t *testing.T) {
	tab := NewTab("user@x.com", &fakeStore{})
	tab.Apply(snapshot("user@x.com", map[string]models.AccountRecord{
		"a@b.com": record("a@b.com"),
	}))

	tab.OpenEdit("gone@b.com")
	require.Equal(t, FormClosed, tab.Form.State())

	tab.OpenEdit("a@b.com")
	require.Equal(t, FormOpen, tab.Form.State())
	require.True(t, tab.Form.IsEditing())
	require.Equal(t, "a@b.com", tab.Form.Draft.Email)
}

func TestDeleteIssuesOneFieldDeletion(t *testing.T) {
	store := &fakeStore{}
	tab := NewTab("user@x.com", store)
	tab.Apply(snapshot("user@x.com", map[string]models.AccountRecord{
		"a@b.com": record("a@b.com"),
		"c@d.com": record("c@d.com"),
	}))

	require.NoError(t, tab.Delete(context.Background(), "a@b.com"))

	require.Len(t, store.calls, 1)
	require.Equal(t, storeCall{"delete", "user@x.com", "a@b.com", models.AccountRecord{}}, store.calls[0])
}

func TestBulkDeleteIsIndependentPerItem(t *testing.T) {
	store := &fakeStore{fail: map[string]error{"c@d.com": errors.New("boom")}}
	tab := NewTab("user@x.com", store)
	tab.Apply(snapshot("user@x.com", map[string]models.AccountRecord{
		"a@b.com": record("a@b.com"),
		"c@d.com": record("c@d.com"),
		"e@f.com": record("e@f.com"),
	}))

	tab.List.Toggle("a@b.com")
	tab.List.Toggle("c@d.com")
	tab.List.Toggle("e@f.com")

	tab.BulkDelete(context.Background())

	// every selected id attempted, in selection order, despite the failure
	require.Len(t, store.calls, 3)
	require.Equal(t, "a@b.com", store.calls[0].accountID)
	require.Equal(t, "c@d.com", store.calls[1].accountID)
	require.Equal(t, "e@f.com", store.calls[2].accountID)
}

func TestPersistenceFailureKeepsDialogOpen(t *testing.T) {
	store := &fakeStore{fail: map[string]error{"a@b.com": errors.New("write rejected")}}
	tab := NewTab("user@x.com", store)
	tab.Apply(snapshot("user@x.com", map[string]models.AccountRecord{}))

	require.True(t, tab.OpenAdd())
	tab.Form.Draft.Email = "a@b.com"
	tab.Form.Draft.Password = "pw"

	err := tab.Submit(context.Background())
	require.Error(t, err)
	require.Equal(t, FormOpen, tab.Form.State())
	require.Equal(t, "write rejected", tab.Form.Err)
	require.Equal(t, "a@b.com", tab.Form.Draft.Email)
}

func TestItemsAreOrdered(t *testing.T) {
	tab := NewTab("user@x.com", &fakeStore{})
	tab.Apply(snapshot("user@x.com", map[string]models.AccountRecord{
		"c@d.com": record("c@d.com"),
		"a@b.com": record("a@b.com"),
	}))

	require.Equal(t, []string{"a@b.com", "c@d.com"}, tab.ExistingAccountIDs())
	require.Equal(t, []string{"a@b.com", "c@d.com"}, tab.List.Visible())
}
