package realtime

import (
	"log"
	"sync"

	memodomain "planner-backend/internal/memo/domain"
	taskdomain "planner-backend/internal/task/domain"
	"planner-backend/pkg/datekey"
)

// TaskSource provides ordered task snapshots.
type TaskSource interface {
	GetUserTasks(userID string, list taskdomain.List) ([]*taskdomain.Task, error)
}

// NoteSource provides calendar note snapshots.
type NoteSource interface {
	NotesByDay(userID string) (map[datekey.Key]string, error)
}

// MemoSource provides memo snapshots.
type MemoSource interface {
	GetUserMemos(userID string) ([]*memodomain.Memo, error)
}

// Sender pushes events out to SSE connections.
type Sender interface {
	HasClient(clientID string) bool
	SendToClient(clientID, event string, data any) bool
	SendToUser(userID, event string, data any)
}

// activeSub is the one task list a client is currently watching.
type activeSub struct {
	userID string
	list   taskdomain.List
}

// Hub tracks which task list each connected client watches and pushes full
// collection snapshots whenever the underlying data changes. A client holds
// exactly one task subscription at a time; switching lists replaces it.
// Calendar note and memo snapshots are always pushed to every connection of
// the affected user.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]activeSub

	sender Sender
	tasks  TaskSource
	notes  NoteSource
	memos  MemoSource
}

// NewHub creates a new Hub
func NewHub(sender Sender, tasks TaskSource, notes NoteSource, memos MemoSource) *Hub {
	return &Hub{
		subs:   make(map[string]activeSub),
		sender: sender,
		tasks:  tasks,
		notes:  notes,
		memos:  memos,
	}
}

// ClientConnected subscribes a fresh connection to the default task list and
// pushes its initial snapshots.
func (h *Hub) ClientConnected(clientID, userID string) {
	h.SwitchList(clientID, userID, taskdomain.ListLife)
	h.pushNotes(clientID, userID)
	h.pushMemos(clientID, userID)
}

// ClientDisconnected drops a connection's subscription.
func (h *Hub) ClientDisconnected(clientID, userID string) {
	h.mu.Lock()
	delete(h.subs, clientID)
	h.mu.Unlock()
}

// SwitchList replaces the client's task subscription with the given list and
// pushes the new list's snapshot. The previous subscription is torn down
// first so the client never watches two lists at once. A connection can only
// be re-pointed by the user that owns it, and ids without a live connection
// are ignored so fabricated ids cannot grow the subscription map.
func (h *Hub) SwitchList(clientID, userID string, list taskdomain.List) {
	if !h.sender.HasClient(clientID) {
		log.Printf("[Hub] Rejected list switch on client %s: no live connection", clientID)
		return
	}

	h.mu.Lock()
	if existing, ok := h.subs[clientID]; ok && existing.userID != userID {
		h.mu.Unlock()
		log.Printf("[Hub] Rejected list switch on client %s: not owned by user %s", clientID, userID)
		return
	}
	h.subs[clientID] = activeSub{userID: userID, list: list}
	h.mu.Unlock()

	h.pushTasks(clientID, userID, list)
}

// TasksChanged re-queries the changed list and pushes it to every client
// currently subscribed to it.
func (h *Hub) TasksChanged(userID string, list taskdomain.List) {
	h.mu.RLock()
	targets := make([]string, 0, 1)
	for clientID, sub := range h.subs {
		if sub.userID == userID && sub.list == list {
			targets = append(targets, clientID)
		}
	}
	h.mu.RUnlock()

	for _, clientID := range targets {
		h.pushTasks(clientID, userID, list)
	}
}

// NotesChanged pushes a fresh calendar snapshot to all of a user's clients.
func (h *Hub) NotesChanged(userID string) {
	notes, err := h.notes.NotesByDay(userID)
	if err != nil {
		log.Printf("[Hub] Failed to load notes for user %s: %v", userID, err)
		return
	}
	h.sender.SendToUser(userID, "calendar_snapshot", notesPayload(notes))
}

// MemosChanged pushes a fresh memo snapshot to all of a user's clients.
func (h *Hub) MemosChanged(userID string) {
	memos, err := h.memos.GetUserMemos(userID)
	if err != nil {
		log.Printf("[Hub] Failed to load memos for user %s: %v", userID, err)
		return
	}
	h.sender.SendToUser(userID, "memo_snapshot", memos)
}

func (h *Hub) pushTasks(clientID, userID string, list taskdomain.List) {
	tasks, err := h.tasks.GetUserTasks(userID, list)
	if err != nil {
		log.Printf("[Hub] Failed to load %s tasks for user %s: %v", list, userID, err)
		return
	}
	h.sender.SendToClient(clientID, "tasks_snapshot", map[string]any{
		"list":  list,
		"tasks": tasks,
	})
}

func (h *Hub) pushNotes(clientID, userID string) {
	notes, err := h.notes.NotesByDay(userID)
	if err != nil {
		log.Printf("[Hub] Failed to load notes for user %s: %v", userID, err)
		return
	}
	h.sender.SendToClient(clientID, "calendar_snapshot", notesPayload(notes))
}

func (h *Hub) pushMemos(clientID, userID string) {
	memos, err := h.memos.GetUserMemos(userID)
	if err != nil {
		log.Printf("[Hub] Failed to load memos for user %s: %v", userID, err)
		return
	}
	h.sender.SendToClient(clientID, "memo_snapshot", memos)
}

// notesPayload flattens the day-keyed note map into JSON-friendly string keys.
func notesPayload(notes map[datekey.Key]string) map[string]string {
	out := make(map[string]string, len(notes))
	for day, note := range notes {
		out[day.String()] = note
	}
	return out
}
