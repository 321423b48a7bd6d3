package service_test

import (
	"sync"
	"testing"
	"time"

	appErrors "github.com/heartielabs/heartie-backend/internal/errors"
	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/schedule"
	"github.com/heartielabs/heartie-backend/internal/service"
)

// mockActivityRepo keeps activities in memory and counts writes.
type mockActivityRepo struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]model.Activity
	saves  int
}

func newMockActivityRepo() *mockActivityRepo {
	return &mockActivityRepo{nextID: 1, byID: map[int]model.Activity{}}
}

func (m *mockActivityRepo) Create(a *model.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = m.nextID
	m.nextID++
	m.byID[a.ID] = *a
	return nil
}

func (m *mockActivityRepo) GetByID(id int) (*model.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, appErrors.NewActivityNotFound(id)
	}
	return &a, nil
}

func (m *mockActivityRepo) ListByUser(userID int) ([]model.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Activity
	for _, a := range m.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockActivityRepo) UpsertForUser(userID int, activities []model.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range activities {
		m.byID[a.ID] = a
	}
	m.saves++
	return nil
}

func (m *mockActivityRepo) Delete(id, userID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok || a.UserID != userID {
		return appErrors.NewActivityNotFound(id)
	}
	delete(m.byID, id)
	return nil
}

func (m *mockActivityRepo) UpdateStatus(id int, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return appErrors.NewActivityNotFound(id)
	}
	a.Status = status
	m.byID[id] = a
	return nil
}

func (m *mockActivityRepo) CountsByDimension(userID int, dimension string, from, to time.Time) (map[string]int, error) {
	return map[string]int{}, nil
}

func (m *mockActivityRepo) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// mockCampaignRepo returns nothing; the board tests do not exercise overlays.
type mockCampaignRepo struct{}

func (m *mockCampaignRepo) Create(c *model.Campaign) error          { return nil }
func (m *mockCampaignRepo) GetByID(id int) (*model.Campaign, error) { return nil, appErrors.NewCampaignNotFound(id) }
func (m *mockCampaignRepo) ListByUser(userID int) ([]model.Campaign, error) {
	return nil, nil
}
func (m *mockCampaignRepo) ListOverlapping(userID int, from, to time.Time) ([]model.Campaign, error) {
	return nil, nil
}
func (m *mockCampaignRepo) Update(c *model.Campaign) error { return nil }
func (m *mockCampaignRepo) Delete(id, userID int) error    { return nil }

// mockQueue records published payloads per topic.
type mockQueue struct {
	mu        sync.Mutex
	published map[string][]any
}

func newMockQueue() *mockQueue {
	return &mockQueue{published: map[string][]any{}}
}

func (q *mockQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.published[topic] = append(q.published[topic], payload)
	return nil
}

func (q *mockQueue) Subscribe(topic string, handler func(payload any) error) error { return nil }

func (q *mockQueue) publishedTo(topic string) []any {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.published[topic]
}

func newTestService() (*service.ActivityService, *mockActivityRepo, *mockQueue) {
	repo := newMockActivityRepo()
	q := newMockQueue()
	return service.NewActivityService(repo, &mockCampaignRepo{}, q, nil), repo, q
}

func testDay(key string) time.Time {
	d, err := schedule.ParseDayKey(key)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreateActivityAppendsToDay(t *testing.T) {
	svc, _, _ := newTestService()

	first, err := svc.CreateActivity(1, model.Activity{
		Title: "Launch teaser", Date: testDay("2025-06-10"),
		FunnelStage: model.StageAwareness, Channel: "linkedin",
	})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.CreateActivity(1, model.Activity{
		Title: "Follow-up post", Date: testDay("2025-06-10"),
		FunnelStage: model.StageAwareness, Channel: "linkedin",
	})
	if err != nil {
		t.Fatal(err)
	}

	if first.Position != 0 {
		t.Errorf("first position = %d, want 0", first.Position)
	}
	if second.Position != 1 {
		t.Errorf("second position = %d, want 1", second.Position)
	}
	if first.Status != model.StatusIdea {
		t.Errorf("default status = %q, want %q", first.Status, model.StatusIdea)
	}
}

func TestCreateActivityValidation(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []model.Activity{
		{Date: testDay("2025-06-10"), FunnelStage: model.StageAwareness, Channel: "linkedin"}, // no title
		{Title: "x", Date: testDay("2025-06-10"), FunnelStage: "middle", Channel: "linkedin"},
		{Title: "x", Date: testDay("2025-06-10"), FunnelStage: model.StageAwareness, Channel: "carrier-pigeon"},
		{Title: "x", Date: testDay("2025-06-10"), FunnelStage: model.StageAwareness, Channel: "linkedin", Status: "done"},
	}
	for i, in := range cases {
		if _, err := svc.CreateActivity(1, in); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestCreateScheduledActivityPublishesReminder(t *testing.T) {
	svc, _, q := newTestService()

	created, err := svc.CreateActivity(1, model.Activity{
		Title: "Newsletter", Date: testDay("2025-06-12"),
		FunnelStage: model.StageRetention, Channel: "email",
		Status: model.StatusScheduled,
	})
	if err != nil {
		t.Fatal(err)
	}

	msgs := q.publishedTo("activity_reminders")
	if len(msgs) != 1 {
		t.Fatalf("published %d reminders, want 1", len(msgs))
	}
	if msgs[0] != created.ID {
		t.Errorf("published payload = %v, want %d", msgs[0], created.ID)
	}
}

func TestUpdateActivityDateChangeMovesToEndOfNewDay(t *testing.T) {
	svc, _, _ := newTestService()

	moved, err := svc.CreateActivity(1, model.Activity{
		Title: "Reel", Date: testDay("2025-06-10"),
		FunnelStage: model.StageAwareness, Channel: "instagram",
	})
	if err != nil {
		t.Fatal(err)
	}
	existing, err := svc.CreateActivity(1, model.Activity{
		Title: "Story", Date: testDay("2025-06-12"),
		FunnelStage: model.StageAwareness, Channel: "instagram",
	})
	if err != nil {
		t.Fatal(err)
	}

	updated := *moved
	updated.Date = testDay("2025-06-12")
	got, err := svc.UpdateActivity(1, moved.ID, updated)
	if err != nil {
		t.Fatal(err)
	}

	if !schedule.SameDay(got.Date, testDay("2025-06-12")) {
		t.Errorf("date = %v, want 2025-06-12", got.Date)
	}
	if got.Position != 1 {
		t.Errorf("position = %d, want 1 (after %q)", got.Position, existing.Title)
	}
	day, _, err := svc.ListRange(1, testDay("2025-06-10"), testDay("2025-06-10"), schedule.Filters{})
	if err != nil {
		t.Fatal(err)
	}
	if len(day) != 0 {
		t.Errorf("old day still has %d activities", len(day))
	}
}

func TestUpdateActivityStatusChangeSchedulesReminderOnce(t *testing.T) {
	svc, _, q := newTestService()

	a, err := svc.CreateActivity(1, model.Activity{
		Title: "Webinar invite", Date: testDay("2025-06-12"),
		FunnelStage: model.StageConversion, Channel: "email",
	})
	if err != nil {
		t.Fatal(err)
	}

	upd := *a
	upd.Status = model.StatusScheduled
	if _, err := svc.UpdateActivity(1, a.ID, upd); err != nil {
		t.Fatal(err)
	}
	// Saving again without a status change must not requeue.
	upd.Title = "Webinar invite v2"
	if _, err := svc.UpdateActivity(1, a.ID, upd); err != nil {
		t.Fatal(err)
	}

	if n := len(q.publishedTo("activity_reminders")); n != 1 {
		t.Errorf("published %d reminders, want 1", n)
	}
}

func TestMoveActivityNoOpDoesNotSave(t *testing.T) {
	svc, repo, _ := newTestService()

	a, err := svc.CreateActivity(1, model.Activity{
		Title: "Post", Date: testDay("2025-06-10"),
		FunnelStage: model.StageAwareness, Channel: "linkedin",
	})
	if err != nil {
		t.Fatal(err)
	}
	before := repo.saveCount()

	if svc.MoveActivity(1, a.ID, "June 10th", nil) {
		t.Error("malformed day key should not move")
	}
	if svc.MoveActivity(1, 9999, "2025-06-12", nil) {
		t.Error("unknown id should not move")
	}
	if svc.MoveActivity(1, a.ID, "2025-06-12", &a.ID) {
		t.Error("drop on self should not move")
	}
	if repo.saveCount() != before {
		t.Errorf("no-op moves wrote to storage: %d saves", repo.saveCount()-before)
	}

	if !svc.MoveActivity(1, a.ID, "2025-06-12", nil) {
		t.Fatal("valid move reported false")
	}
	if repo.saveCount() != before+1 {
		t.Errorf("valid move saves = %d, want %d", repo.saveCount(), before+1)
	}
}

func TestMoveDoesNotRevertExternalStatusUpdate(t *testing.T) {
	svc, repo, _ := newTestService()

	flipped, err := svc.CreateActivity(1, model.Activity{
		Title: "Newsletter", Date: testDay("2025-06-10"),
		FunnelStage: model.StageRetention, Channel: "email",
		Status: model.StatusScheduled,
	})
	if err != nil {
		t.Fatal(err)
	}
	other, err := svc.CreateActivity(1, model.Activity{
		Title: "Reel", Date: testDay("2025-06-11"),
		FunnelStage: model.StageAwareness, Channel: "instagram",
	})
	if err != nil {
		t.Fatal(err)
	}

	// The broker worker flips the status directly in storage.
	if err := repo.UpdateStatus(flipped.ID, model.StatusRunning); err != nil {
		t.Fatal(err)
	}

	// Dragging an unrelated activity must only write the rows the drag
	// touched, never the whole collection.
	if !svc.MoveActivity(1, other.ID, "2025-06-12", nil) {
		t.Fatal("valid move reported false")
	}

	stored, err := repo.GetByID(flipped.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != model.StatusRunning {
		t.Errorf("stored status = %q, want %q after unrelated move", stored.Status, model.StatusRunning)
	}
}

func TestMarkRunningUpdatesBoardAndStorage(t *testing.T) {
	svc, repo, _ := newTestService()

	a, err := svc.CreateActivity(1, model.Activity{
		Title: "Promo", Date: testDay("2025-06-10"),
		FunnelStage: model.StageConversion, Channel: "email",
		Status: model.StatusScheduled,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.MarkRunning(a.ID); err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetActivity(1, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != model.StatusRunning {
		t.Errorf("board status = %q, want %q", got.Status, model.StatusRunning)
	}
	stored, err := repo.GetByID(a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != model.StatusRunning {
		t.Errorf("stored status = %q, want %q", stored.Status, model.StatusRunning)
	}
}

func TestUpdateActivityReplacesEditableFields(t *testing.T) {
	svc, _, _ := newTestService()

	goalID := 4
	a, err := svc.CreateActivity(1, model.Activity{
		Title: "Launch post", Content: "draft copy", Date: testDay("2025-06-10"),
		FunnelStage: model.StageAwareness, Channel: "linkedin",
		ActivityType: "post", ContentPillar: "education", GoalID: &goalID,
	})
	if err != nil {
		t.Fatal(err)
	}

	// The body is the full detail-panel state: fields left out are cleared.
	got, err := svc.UpdateActivity(1, a.ID, model.Activity{
		Title: "Launch post v2", FunnelStage: model.StageAwareness, Channel: "linkedin",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Content != "" {
		t.Errorf("content = %q, want cleared", got.Content)
	}
	if got.GoalID != nil {
		t.Errorf("goal id = %v, want cleared", *got.GoalID)
	}
	if got.ActivityType != "" || got.ContentPillar != "" {
		t.Errorf("type/pillar = %q/%q, want cleared", got.ActivityType, got.ContentPillar)
	}
	if !schedule.SameDay(got.Date, a.Date) {
		t.Errorf("zero date must keep the current day, got %v", got.Date)
	}
	if got.Position != a.Position {
		t.Errorf("position = %d, want %d", got.Position, a.Position)
	}

	if _, err := svc.UpdateActivity(1, a.ID, model.Activity{
		FunnelStage: model.StageAwareness, Channel: "linkedin",
	}); err == nil {
		t.Error("expected error for missing title")
	}
}

func TestDeleteActivityUnknown(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.DeleteActivity(1, 42)
	if !appErrors.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestActivitiesAreScopedToUser(t *testing.T) {
	svc, _, _ := newTestService()

	mine, err := svc.CreateActivity(1, model.Activity{
		Title: "Mine", Date: testDay("2025-06-10"),
		FunnelStage: model.StageAwareness, Channel: "linkedin",
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.GetActivity(2, mine.ID); !appErrors.IsNotFound(err) {
		t.Errorf("other user read my activity: %v", err)
	}
	if err := svc.DeleteActivity(2, mine.ID); !appErrors.IsNotFound(err) {
		t.Errorf("other user deleted my activity: %v", err)
	}
}
