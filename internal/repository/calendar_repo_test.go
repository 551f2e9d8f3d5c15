package repository

import (
	"SocialDash/internal/model"
	"SocialDash/internal/pkg/database/dbtest"
	"context"
	"testing"
	"time"
)

func TestCalendarUpdateDeleteScopedToOwner(t *testing.T) {
	db := dbtest.NewDB(t)
	repo := NewCalendarRepo(db)
	ctx := context.Background()

	owner := &model.User{Email: "owner@example.com"}
	other := &model.User{Email: "other@example.com"}
	db.Create(owner)
	db.Create(other)

	event := &model.CalendarEvent{UserID: owner.ID, Title: "Launch", Date: time.Now()}
	if err := repo.Create(ctx, event); err != nil {
		t.Fatal(err)
	}

	n, err := repo.Update(ctx, &model.CalendarEvent{ID: event.ID, UserID: other.ID, Title: "Hijack", Date: time.Now()})
	if err != nil || n != 0 {
		t.Fatalf("foreign update affected %d rows, err %v", n, err)
	}
	n, err = repo.Delete(ctx, event.ID, other.ID)
	if err != nil || n != 0 {
		t.Fatalf("foreign delete affected %d rows, err %v", n, err)
	}

	stored, err := repo.GetByID(ctx, event.ID, owner.ID)
	if err != nil || stored == nil || stored.Title != "Launch" {
		t.Fatalf("event changed: %+v, %v", stored, err)
	}

	n, err = repo.Update(ctx, &model.CalendarEvent{ID: event.ID, UserID: owner.ID, Title: "Launch v2", Date: time.Now()})
	if err != nil || n != 1 {
		t.Fatalf("owner update affected %d rows, err %v", n, err)
	}
	n, err = repo.Delete(ctx, event.ID, owner.ID)
	if err != nil || n != 1 {
		t.Fatalf("owner delete affected %d rows, err %v", n, err)
	}
}

func TestCalendarListOrderedAndWindowed(t *testing.T) {
	db := dbtest.NewDB(t)
	repo := NewCalendarRepo(db)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	for _, d := range []int{10, 1, 5} {
		_ = repo.Create(ctx, &model.CalendarEvent{UserID: 1, Title: "e", Date: base.AddDate(0, 0, d)})
	}
	_ = repo.Create(ctx, &model.CalendarEvent{UserID: 2, Title: "x", Date: base})

	events, err := repo.ListByUser(ctx, 1, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Date.Before(events[i-1].Date) {
			t.Errorf("events not ordered by date")
		}
	}

	from := base.AddDate(0, 0, 2)
	to := base.AddDate(0, 0, 6)
	windowed, err := repo.ListByUser(ctx, 1, &from, &to)
	if err != nil {
		t.Fatal(err)
	}
	if len(windowed) != 1 {
		t.Errorf("windowed len = %d, want 1", len(windowed))
	}
}
