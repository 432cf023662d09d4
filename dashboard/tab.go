package dashboard

import (
	"context"
	"log"

	"fairway/configs"
	"fairway/models"
)

// Store is the document-store capability the tab is handed: targeted
// field writes only, never whole-document overwrites.
type Store interface {
	SetAccount(ctx context.Context, clientID, accountID string, rec models.AccountRecord) error
	DeleteAccount(ctx context.Context, clientID, accountID string) error
}

// Tab orchestrates the accounts view for one client: it is a pure function
// of the latest delivered snapshot plus the form and list state it owns.
type Tab struct {
	clientID string
	store    Store

	snap   configs.Snapshot
	loaded bool

	Form *Form
	List *List
}

func NewTab(clientID string, store Store) *Tab {
	return &Tab{
		clientID: clientID,
		store:    store,
		Form:     &Form{},
		List:     NewList(),
	}
}

// Apply installs a fresh snapshot and re-derives the ordered item list.
func (t *Tab) Apply(snap configs.Snapshot) {
	t.snap = snap
	t.loaded = !snap.Loading()

	ids := make([]string, 0, len(snap.Config.Accounts))
	for _, item := range snap.Items() {
		ids = append(ids, item.AccountID)
	}
	t.List.SetItems(ids)
}

// Loading is true until a snapshot carrying the accounts mapping arrives.
// Zero accounts is not loading; an absent mapping is.
func (t *Tab) Loading() bool { return !t.loaded }

func (t *Tab) Items() []models.AccountItem { return t.snap.Items() }

func (t *Tab) ExistingAccountIDs() []string {
	items := t.snap.Items()
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.AccountID)
	}
	return ids
}

// RemainingQuota reports how many more accounts the client may add.
func (t *Tab) RemainingQuota() int {
	n := models.MaxAccounts - len(t.snap.Config.Accounts)
	if n < 0 {
		n = 0
	}
	return n
}

// CanAdd gates the add control.
func (t *Tab) CanAdd() bool {
	return t.loaded && len(t.snap.Config.Accounts) < models.MaxAccounts
}

// OpenAdd opens the form with defaults. Refused when the quota is exhausted.
func (t *Tab) OpenAdd() bool {
	if !t.CanAdd() {
		return false
	}
	t.Form.OpenBlank()
	return true
}

// OpenEdit locates the record by id and opens the form pre-filled. A stale
// id is a silent no-op.
func (t *Tab) OpenEdit(accountID string) {
	rec, ok := t.snap.Config.Accounts[accountID]
	if !ok {
		return
	}
	t.Form.OpenEdit(accountID, rec)
}

// Submit pushes the form's draft through validation and into the store. The
// written payload is the record only; the account id is the map key.
func (t *Tab) Submit(ctx context.Context) error {
	return t.Form.Submit(ctx, func(ctx context.Context, accountID string, rec models.AccountRecord) error {
		return t.store.SetAccount(ctx, t.clientID, accountID, rec)
	})
}

// Delete issues a single field-deletion write.
func (t *Tab) Delete(ctx context.Context, accountID string) error {
	return t.store.DeleteAccount(ctx, t.clientID, accountID)
}

// BulkDelete applies the delete to every selected id independently, in
// selection order. Per-item failures are logged, not aggregated; there is no
// atomicity across items.
func (t *Tab) BulkDelete(ctx context.Context) {
	for _, accountID := range t.List.Selected() {
		if err := t.store.DeleteAccount(ctx, t.clientID, accountID); err != nil {
			log.Printf("bulk delete %s failed: %v", accountID, err)
		}
	}
}
