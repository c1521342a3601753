package usecase

import (
	"errors"
	"testing"
	"time"

	"planner-backend/internal/task/domain"
	"planner-backend/pkg/datekey"

	"github.com/google/uuid"
)

// fakeTaskRepo is an in-memory TaskRepository for usecase tests.
type fakeTaskRepo struct {
	tasks map[string]*domain.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (r *fakeTaskRepo) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) FindByID(id string) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) FindByList(userID string, list domain.List) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, task := range r.tasks {
		if task.UserID == userID && task.List == list {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(task *domain.Task) error {
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(id string) error {
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) FindDueReminders(day datekey.Key) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, task := range r.tasks {
		if task.DueDate != nil && *task.DueDate == day && !task.ReminderSent {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) MarkReminderSent(id string) error {
	if task, ok := r.tasks[id]; ok {
		task.ReminderSent = true
	}
	return nil
}

type mirrorCall struct {
	day  datekey.Key
	line string
}

type fakeMirror struct {
	calls []mirrorCall
	err   error
}

func (m *fakeMirror) AppendTaskLine(userID string, day datekey.Key, line string) error {
	if m.err != nil {
		return m.err
	}
	m.calls = append(m.calls, mirrorCall{day: day, line: line})
	return nil
}

type fakeNotifier struct {
	changed []domain.List
}

func (n *fakeNotifier) TasksChanged(userID string, list domain.List) {
	n.changed = append(n.changed, list)
}

func newTestUsecase() (TaskUsecase, *fakeTaskRepo, *fakeMirror, *fakeNotifier) {
	repo := newFakeTaskRepo()
	mirror := &fakeMirror{}
	notifier := &fakeNotifier{}
	uc := NewTaskUsecase(repo)
	uc.SetMirror(mirror)
	uc.SetNotifier(notifier)
	return uc, repo, mirror, notifier
}

func TestCreateTask_ExtractsDueDateAndMirrors(t *testing.T) {
	uc, _, mirror, notifier := newTestUsecase()

	task, err := uc.CreateTask("u1", domain.ListLife, "Buy milk 05.03.2025")
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task.Text != "Buy milk" {
		t.Errorf("display text: got %q", task.Text)
	}
	if task.DueDate == nil || *task.DueDate != datekey.Key("2025-03-05") {
		t.Errorf("due date not extracted: %v", task.DueDate)
	}
	if len(mirror.calls) != 1 {
		t.Fatalf("expected one mirror write, got %d", len(mirror.calls))
	}
	if mirror.calls[0].day != datekey.Key("2025-03-05") || mirror.calls[0].line != "Buy milk" {
		t.Errorf("unexpected mirror call: %+v", mirror.calls[0])
	}
	if len(notifier.changed) != 1 || notifier.changed[0] != domain.ListLife {
		t.Errorf("expected one life snapshot notification, got %v", notifier.changed)
	}
}

func TestCreateTask_NoDueDateNoMirror(t *testing.T) {
	uc, _, mirror, _ := newTestUsecase()

	task, err := uc.CreateTask("u1", domain.ListWork, "Prepare slides")
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task.DueDate != nil {
		t.Errorf("expected no due date, got %s", *task.DueDate)
	}
	if len(mirror.calls) != 0 {
		t.Errorf("mirror should not be called, got %d calls", len(mirror.calls))
	}
}

func TestCreateTask_EmptyTextRejected(t *testing.T) {
	uc, _, _, notifier := newTestUsecase()

	if _, err := uc.CreateTask("u1", domain.ListLife, "   "); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if len(notifier.changed) != 0 {
		t.Error("rejected input must not publish a snapshot")
	}
}

func TestCreateTask_MirrorFailureKeepsTask(t *testing.T) {
	uc, repo, mirror, _ := newTestUsecase()
	mirror.err = errors.New("store write failed")

	task, err := uc.CreateTask("u1", domain.ListLife, "Buy milk 05.03.2025")
	if err != nil {
		t.Fatalf("mirror failure must not fail the create: %v", err)
	}
	stored, _ := repo.FindByID(task.ID)
	if stored == nil {
		t.Fatal("task should persist when the mirror write fails")
	}
}

func TestUpdateTask_NewDateMirrorsOnce(t *testing.T) {
	uc, _, mirror, _ := newTestUsecase()

	task, _ := uc.CreateTask("u1", domain.ListLife, "Call landlord")
	if len(mirror.calls) != 0 {
		t.Fatal("setup: undated create should not mirror")
	}

	text := "Call landlord 10.04.2025"
	updated, err := uc.UpdateTask("u1", task.ID, TaskUpdateRequest{Text: &text})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if updated.DueDate == nil || *updated.DueDate != datekey.Key("2025-04-10") {
		t.Fatalf("due date not set: %v", updated.DueDate)
	}
	if len(mirror.calls) != 1 {
		t.Fatalf("expected one mirror write, got %d", len(mirror.calls))
	}
}

func TestUpdateTask_UnchangedDateDoesNotMirrorAgain(t *testing.T) {
	uc, _, mirror, _ := newTestUsecase()

	task, _ := uc.CreateTask("u1", domain.ListLife, "Buy milk 05.03.2025")
	text := "Buy oat milk 05.03.2025"
	if _, err := uc.UpdateTask("u1", task.ID, TaskUpdateRequest{Text: &text}); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if len(mirror.calls) != 1 {
		t.Fatalf("same due date must not mirror again, got %d calls", len(mirror.calls))
	}
}

func TestUpdateTask_ManualDateOverridesAndValidates(t *testing.T) {
	uc, _, _, _ := newTestUsecase()

	task, _ := uc.CreateTask("u1", domain.ListWork, "Quarterly report")

	bad := "31/12/2025"
	if _, err := uc.UpdateTask("u1", task.ID, TaskUpdateRequest{DueDate: &bad}); err == nil {
		t.Fatal("malformed manual date must be rejected")
	}

	good := "2025-12-31"
	updated, err := uc.UpdateTask("u1", task.ID, TaskUpdateRequest{DueDate: &good})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if updated.DueDate == nil || *updated.DueDate != datekey.Key("2025-12-31") {
		t.Fatalf("manual date not applied: %v", updated.DueDate)
	}

	clear := ""
	updated, err = uc.UpdateTask("u1", task.ID, TaskUpdateRequest{DueDate: &clear})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if updated.DueDate != nil {
		t.Fatalf("empty manual date should clear, got %s", *updated.DueDate)
	}
}

func TestTaskOwnership(t *testing.T) {
	uc, _, _, _ := newTestUsecase()

	task, _ := uc.CreateTask("u1", domain.ListLife, "Private task")

	if _, err := uc.ToggleImportant("u2", task.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := uc.DeleteTask("u2", task.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := uc.UpdateTask("u1", "missing", TaskUpdateRequest{}); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestToggleImportant(t *testing.T) {
	uc, _, _, _ := newTestUsecase()

	task, _ := uc.CreateTask("u1", domain.ListLife, "Water plants")
	toggled, err := uc.ToggleImportant("u1", task.ID)
	if err != nil {
		t.Fatalf("ToggleImportant failed: %v", err)
	}
	if !toggled.Important {
		t.Error("important should be true after first toggle")
	}
	toggled, _ = uc.ToggleImportant("u1", task.ID)
	if toggled.Important {
		t.Error("important should be false after second toggle")
	}
}
