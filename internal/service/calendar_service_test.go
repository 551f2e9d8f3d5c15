package service

import (
	"SocialDash/internal/api/dto"
	"context"
	"errors"
	"testing"
)

func TestCalendarCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCalendarService(env.userRepo, env.calendarRepo)
	p := env.createUser(t, "a@example.com")
	ctx := context.Background()

	tests := []struct {
		name  string
		input dto.CalendarEventInput
		want  error
	}{
		{"missing title", dto.CalendarEventInput{Date: "2024-06-01"}, ErrEventFieldsRequired},
		{"blank title", dto.CalendarEventInput{Title: "  ", Date: "2024-06-01"}, ErrEventFieldsRequired},
		{"missing date", dto.CalendarEventInput{Title: "Post"}, ErrEventFieldsRequired},
		{"bad date", dto.CalendarEventInput{Title: "Post", Date: "next week"}, ErrEventDateInvalid},
		{"date only", dto.CalendarEventInput{Title: "Post", Date: "2024-06-01"}, nil},
		{"rfc3339", dto.CalendarEventInput{Title: "Post", Date: "2024-06-01T09:00:00Z"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, p, &tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Create() err = %v, want %v", err, tt.want)
			}
		})
	}

	events, err := svc.List(ctx, p, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Errorf("len = %d, want 2", len(events))
	}
}

func TestCalendarOtherUsersEventIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCalendarService(env.userRepo, env.calendarRepo)
	owner := env.createUser(t, "owner@example.com")
	intruder := env.createUser(t, "intruder@example.com")
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, &dto.CalendarEventInput{Title: "Launch", Date: "2024-06-01"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Update(ctx, intruder, &dto.CalendarEventInput{ID: created.ID, Title: "Mine", Date: "2024-06-02"})
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("Update() err = %v, want ErrEventNotFound", err)
	}
	if err = svc.Delete(ctx, intruder, created.ID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("Delete() err = %v, want ErrEventNotFound", err)
	}
	if _, err = svc.Get(ctx, intruder, created.ID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("Get() err = %v, want ErrEventNotFound", err)
	}

	stored, err := svc.Get(ctx, owner, created.ID)
	if err != nil || stored.Title != "Launch" {
		t.Fatalf("owner event = %+v, %v", stored, err)
	}

	updated, err := svc.Update(ctx, owner, &dto.CalendarEventInput{ID: created.ID, Title: "Launch day", Date: "2024-06-03"})
	if err != nil || updated.Title != "Launch day" || updated.Date.Day() != 3 {
		t.Fatalf("Update() = %+v, %v", updated, err)
	}
	if err = svc.Delete(ctx, owner, created.ID); err != nil {
		t.Fatalf("Delete() err = %v", err)
	}
	if err = svc.Delete(ctx, owner, created.ID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("second Delete() err = %v, want ErrEventNotFound", err)
	}
}

func TestCalendarListWindow(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCalendarService(env.userRepo, env.calendarRepo)
	p := env.createUser(t, "a@example.com")
	ctx := context.Background()

	for _, d := range []string{"2024-06-10", "2024-06-01", "2024-07-01"} {
		if _, err := svc.Create(ctx, p, &dto.CalendarEventInput{Title: d, Date: d}); err != nil {
			t.Fatal(err)
		}
	}

	events, err := svc.List(ctx, p, &dto.CalendarQueryDTO{From: "2024-06-01", To: "2024-06-30"})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 || events[0].Title != "2024-06-01" || events[1].Title != "2024-06-10" {
		t.Errorf("events = %+v", events)
	}

	if _, err := svc.List(ctx, p, &dto.CalendarQueryDTO{From: "soon"}); !errors.Is(err, ErrEventDateInvalid) {
		t.Errorf("bad window err = %v", err)
	}
}
