package usecase

import (
	"errors"
	"testing"
	"time"

	memodomain "planner-backend/internal/memo/domain"
	taskdomain "planner-backend/internal/task/domain"

	"github.com/google/uuid"
)

type fakeMemoRepo struct {
	memos map[string]*memodomain.Memo
}

func newFakeMemoRepo() *fakeMemoRepo {
	return &fakeMemoRepo{memos: make(map[string]*memodomain.Memo)}
}

func (r *fakeMemoRepo) Create(memo *memodomain.Memo) error {
	memo.ID = uuid.New().String()
	memo.CreatedAt = time.Now()
	copied := *memo
	r.memos[memo.ID] = &copied
	return nil
}

func (r *fakeMemoRepo) FindByID(id string) (*memodomain.Memo, error) {
	memo, ok := r.memos[id]
	if !ok {
		return nil, nil
	}
	copied := *memo
	return &copied, nil
}

func (r *fakeMemoRepo) FindByUser(userID string) ([]*memodomain.Memo, error) {
	var out []*memodomain.Memo
	for _, memo := range r.memos {
		if memo.UserID == userID {
			copied := *memo
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeMemoRepo) Update(memo *memodomain.Memo) error {
	copied := *memo
	r.memos[memo.ID] = &copied
	return nil
}

func (r *fakeMemoRepo) Delete(id string) error {
	delete(r.memos, id)
	return nil
}

type fakeTaskCreator struct {
	created []struct {
		list taskdomain.List
		text string
	}
}

func (c *fakeTaskCreator) CreateTask(userID string, list taskdomain.List, text string) (*taskdomain.Task, error) {
	c.created = append(c.created, struct {
		list taskdomain.List
		text string
	}{list, text})
	return &taskdomain.Task{ID: "t1", UserID: userID, List: list, Text: text}, nil
}

func TestCreateMemo_TrimsAndRejectsEmpty(t *testing.T) {
	uc := NewMemoUsecase(newFakeMemoRepo())

	memo, err := uc.CreateMemo("u1", "  remember the thing  ")
	if err != nil {
		t.Fatalf("CreateMemo failed: %v", err)
	}
	if memo.Text != "remember the thing" {
		t.Errorf("text not trimmed: %q", memo.Text)
	}

	if _, err := uc.CreateMemo("u1", "   "); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}

func TestAddAsTask_RoutesThroughTaskPipeline(t *testing.T) {
	uc := NewMemoUsecase(newFakeMemoRepo())
	creator := &fakeTaskCreator{}
	uc.SetTaskCreator(creator)

	memo, _ := uc.CreateMemo("u1", "Buy milk 05.03.2025")
	task, err := uc.AddAsTask("u1", memo.ID, taskdomain.ListWork)
	if err != nil {
		t.Fatalf("AddAsTask failed: %v", err)
	}
	if task.List != taskdomain.ListWork {
		t.Errorf("wrong list: %s", task.List)
	}
	if len(creator.created) != 1 || creator.created[0].text != "Buy milk 05.03.2025" {
		t.Errorf("raw memo text must reach the task pipeline: %+v", creator.created)
	}
}

func TestMemoOwnership(t *testing.T) {
	uc := NewMemoUsecase(newFakeMemoRepo())
	memo, _ := uc.CreateMemo("u1", "mine")

	if _, err := uc.UpdateMemo("u2", memo.ID, "stolen"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := uc.DeleteMemo("u2", memo.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := uc.DeleteMemo("u1", "missing"); !errors.Is(err, ErrMemoNotFound) {
		t.Fatalf("expected ErrMemoNotFound, got %v", err)
	}
}
