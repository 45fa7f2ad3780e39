package activity

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"castlog/internal/models"
	"castlog/internal/storage"
	"castlog/internal/validation"
)

type fakeStore struct {
	entries  []models.Entry
	settings models.Settings
	addErr   error
	getErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{settings: storage.DefaultSettings()}
}

func (f *fakeStore) Init() error  { return nil }
func (f *fakeStore) Load() error  { return nil }
func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) GetSettings() (models.Settings, error) { return f.settings, nil }
func (f *fakeStore) SaveSettings(s models.Settings) error {
	f.settings = s
	return nil
}

func (f *fakeStore) AddEntry(e models.Entry) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.entries = append([]models.Entry{e}, f.entries...)
	return nil
}

func (f *fakeStore) GetEntries() ([]models.Entry, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.entries, nil
}

func (f *fakeStore) GetEntriesForDay(day string) ([]models.Entry, error) {
	var out []models.Entry
	for _, e := range f.entries {
		if e.Date == day {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) GetConfigPath() string { return "fake" }

type fakePublisher struct {
	hash  string
	err   error
	calls int
	text  string
}

func (f *fakePublisher) PublishCast(ctx context.Context, text, imageURL, channel string) (string, error) {
	f.calls++
	f.text = text
	return f.hash, f.err
}

func TestAppendRejectsEmptyText(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)

	for _, text := range []string{"", "   ", "\t\n"} {
		_, _, err := svc.Append(context.Background(), AppendInput{Text: text})
		if !errors.Is(err, validation.ErrEmptyText) {
			t.Errorf("Append(%q) error = %v, want ErrEmptyText", text, err)
		}
	}

	if len(store.entries) != 0 {
		t.Errorf("ledger has %d entries after rejected appends, want 0", len(store.entries))
	}
}

func TestAppendAssignsIDAndDate(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)

	entry, results, err := svc.Append(context.Background(), AppendInput{Text: "shipped the thing"})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if results != nil {
		t.Error("Append() without publisher returned a result channel")
	}
	if entry.ID == "" {
		t.Error("entry has no id")
	}
	if _, perr := time.Parse("2006-01-02", entry.Date); perr != nil {
		t.Errorf("entry date %q is not YYYY-MM-DD", entry.Date)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("entry has no creation timestamp")
	}

	got, _ := svc.Entries()
	if len(got) != 1 || got[0].ID != entry.ID {
		t.Errorf("ledger = %+v, want the appended entry", got)
	}
}

func TestAppendUsesDefaultChannel(t *testing.T) {
	store := newFakeStore()
	store.settings.DefaultChannel = "productivity"
	svc := NewService(store, nil)

	entry, _, err := svc.Append(context.Background(), AppendInput{Text: "morning pages"})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if entry.Channel != "productivity" {
		t.Errorf("channel = %q, want settings default", entry.Channel)
	}

	entry, _, err = svc.Append(context.Background(), AppendInput{Text: "ran 5k", Channel: "running"})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if entry.Channel != "running" {
		t.Errorf("channel = %q, want explicit override", entry.Channel)
	}
}

func TestAppendPublishes(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{hash: "0xabc"}
	svc := NewService(store, pub)

	entry, results, err := svc.Append(context.Background(), AppendInput{Text: "logged", Publish: true})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if results == nil {
		t.Fatal("Append() with publish returned nil result channel")
	}

	select {
	case res := <-results:
		if res.Err != nil {
			t.Errorf("publish error = %v", res.Err)
		}
		if res.CastHash != "0xabc" {
			t.Errorf("cast hash = %q, want 0xabc", res.CastHash)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("publish result never delivered")
	}

	if pub.calls != 1 {
		t.Errorf("publisher called %d times, want 1", pub.calls)
	}
	if !strings.Contains(pub.text, "logged") {
		t.Errorf("published text %q does not contain entry text", pub.text)
	}

	got, _ := svc.Entries()
	if len(got) != 1 || got[0].ID != entry.ID {
		t.Errorf("ledger = %+v, want the appended entry", got)
	}
}

func TestAppendPublishFailureKeepsEntry(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{err: errors.New("api down")}
	svc := NewService(store, pub)

	entry, results, err := svc.Append(context.Background(), AppendInput{Text: "persisted anyway", Publish: true})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	select {
	case res := <-results:
		if res.Err == nil {
			t.Error("expected publish error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("publish result never delivered")
	}

	got, _ := svc.Entries()
	if len(got) != 1 || got[0].ID != entry.ID {
		t.Error("publish failure must not remove the local entry")
	}
}

func TestAppendSkipsPublishWhenNotRequested(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{hash: "0xabc"}
	svc := NewService(store, pub)

	_, results, err := svc.Append(context.Background(), AppendInput{Text: "local only"})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if results != nil {
		t.Error("result channel returned without publish requested")
	}
	if pub.calls != 0 {
		t.Errorf("publisher called %d times, want 0", pub.calls)
	}
}

func TestAppendStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.addErr = errors.New("disk full")
	pub := &fakePublisher{}
	svc := NewService(store, pub)

	_, _, err := svc.Append(context.Background(), AppendInput{Text: "doomed", Publish: true})
	if err == nil {
		t.Fatal("expected store error")
	}
	if pub.calls != 0 {
		t.Error("publisher must not be called when the local append fails")
	}
}

func TestServiceDerivedViews(t *testing.T) {
	store := newFakeStore()
	store.entries = entriesOn("2024-01-10", "2024-01-09")
	svc := NewService(store, nil)
	today := mustDate(t, "2024-01-10")

	streak, err := svc.Streak(PolicyDaily, today)
	if err != nil {
		t.Fatalf("Streak() error = %v", err)
	}
	if streak != 2 {
		t.Errorf("streak = %d, want 2", streak)
	}

	grid, err := svc.Grid(today)
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	if grid[0][0].Date != "2024-01-08" {
		t.Errorf("grid starts at %s, want 2024-01-08", grid[0][0].Date)
	}

	store.getErr = errors.New("read failed")
	if _, err := svc.Streak(PolicyDaily, today); err == nil {
		t.Error("Streak() should surface store read errors")
	}
	if _, err := svc.Grid(today); err == nil {
		t.Error("Grid() should surface store read errors")
	}
}
