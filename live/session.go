package live

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"fairway/configs"
	"fairway/dashboard"
	"fairway/middleware"
	"fairway/models"
)

// actionMsg is one dashboard gesture sent by the browser.
type actionMsg struct {
	Action    string                `json:"action"`
	AccountID string                `json:"accountId,omitempty"`
	Draft     *models.AccountRecord `json:"draft,omitempty"`
}

// formRender is the dialog's state as sent to the browser.
type formRender struct {
	State          string                `json:"state"`
	Title          string                `json:"title,omitempty"`
	SubmitLabel    string                `json:"submitLabel,omitempty"`
	CanSubmit      bool                  `json:"canSubmit"`
	Draft          *models.AccountRecord `json:"draft,omitempty"`
	Err            string                `json:"error,omitempty"`
	DesiredTimeErr bool                  `json:"desiredTimeError,omitempty"`
}

// render is the full view state: a pure function of the latest snapshot plus
// the session's form and list state.
type render struct {
	Loading        bool                 `json:"loading"`
	Accounts       []models.AccountItem `json:"accounts"`
	Selected       []string             `json:"selected"`
	Window         int                  `json:"window"`
	RemainingQuota int                  `json:"remainingQuota"`
	CanAdd         bool                 `json:"canAdd"`
	Form           formRender           `json:"form"`
}

// Session holds one connected dashboard's view state server-side. All
// mutations run on the session's single event loop, so the tab never needs
// locking.
type Session struct {
	tab *dashboard.Tab
}

func NewSession(clientID string, store dashboard.Store) *Session {
	return &Session{tab: dashboard.NewTab(clientID, store)}
}

func formStateName(s dashboard.FormState) string {
	switch s {
	case dashboard.FormOpen:
		return "open"
	case dashboard.FormSubmitting:
		return "submitting"
	default:
		return "closed"
	}
}

// Render snapshots the current view state.
func (s *Session) Render() render {
	tab := s.tab

	visible := tab.List.Visible()
	byID := make(map[string]models.AccountItem)
	for _, item := range tab.Items() {
		byID[item.AccountID] = item
	}
	items := make([]models.AccountItem, 0, len(visible))
	for _, id := range visible {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}

	fr := formRender{
		State:          formStateName(tab.Form.State()),
		CanSubmit:      tab.Form.CanSubmit(),
		Err:            tab.Form.Err,
		DesiredTimeErr: tab.Form.DesiredTimeErr,
	}
	if tab.Form.State() != dashboard.FormClosed {
		draft := tab.Form.Draft
		fr.Title = tab.Form.Title()
		fr.SubmitLabel = tab.Form.SubmitLabel()
		fr.Draft = &draft
	}

	return render{
		Loading:        tab.Loading(),
		Accounts:       items,
		Selected:       tab.List.Selected(),
		Window:         tab.List.Window(),
		RemainingQuota: tab.RemainingQuota(),
		CanAdd:         tab.CanAdd(),
		Form:           fr,
	}
}

// ApplySnapshot feeds a freshly delivered snapshot into the tab.
func (s *Session) ApplySnapshot(snap configs.Snapshot) {
	s.tab.Apply(snap)
}

// Apply runs one gesture against the tab. Write errors surface through the
// rendered form state, never as a session failure.
func (s *Session) Apply(ctx context.Context, msg actionMsg) {
	tab := s.tab
	switch msg.Action {
	case "openAdd":
		tab.OpenAdd()
	case "openEdit":
		tab.OpenEdit(msg.AccountID)
	case "cancel":
		tab.Form.Cancel()
	case "draft":
		if msg.Draft != nil && tab.Form.State() == dashboard.FormOpen {
			tab.Form.Draft = *msg.Draft
		}
	case "blurDesiredTime":
		tab.Form.CheckDesiredTime()
	case "submit":
		if err := tab.Submit(ctx); err != nil {
			log.Printf("dashboard submit: %v", err)
		}
	case "toggle":
		tab.List.Toggle(msg.AccountID)
	case "toggleAll":
		tab.List.ToggleAll()
	case "showMore":
		tab.List.ShowMore()
	case "showLess":
		tab.List.ShowLess()
	case "showMin":
		tab.List.ShowMin()
	case "showAll":
		tab.List.ShowAll()
	case "delete":
		if err := tab.Delete(ctx, msg.AccountID); err != nil {
			log.Printf("dashboard delete %s: %v", msg.AccountID, err)
		}
	case "bulkDelete":
		tab.BulkDelete(ctx)
	default:
		log.Printf("dashboard: unknown action %q", msg.Action)
	}
}

// DashboardSocket runs the accounts view for one browser over a websocket:
// gestures in, rendered view state out. The store writes happen here; the
// refreshed list arrives back through the snapshot subscription like any
// other external change.
func DashboardSocket() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		claims, err := middleware.ValidateJWT(r.URL.Query().Get("token"))
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		clientID := claims.UserID

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}
		defer conn.Close()

		snaps, cancel, err := configs.Subscribe(r.Context(), clientID)
		if err != nil {
			log.Printf("dashboard subscribe %s: %v", clientID, err)
			return
		}
		defer cancel()

		session := NewSession(clientID, configs.Mongo{})

		actions := make(chan actionMsg)
		readerDone := make(chan struct{})
		loopDone := make(chan struct{})
		defer close(loopDone)
		go func() {
			defer close(readerDone)
			conn.SetReadLimit(8 << 10)
			for {
				var msg actionMsg
				if err := conn.ReadJSON(&msg); err != nil {
					return
				}
				select {
				case actions <- msg:
				case <-loopDone:
					return
				}
			}
		}()

		send := func() bool {
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			return conn.WriteJSON(session.Render()) == nil
		}

		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case snap, ok := <-snaps:
				if !ok {
					return
				}
				session.ApplySnapshot(snap)
				if !send() {
					return
				}
			case msg := <-actions:
				ctx, cancelOp := context.WithTimeout(context.Background(), 10*time.Second)
				session.Apply(ctx, msg)
				cancelOp()
				if !send() {
					return
				}
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-readerDone:
				return
			case <-r.Context().Done():
				return
			}
		}
	}
}
