package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/sdkthunder/site-api/internal/models"
	"github.com/sdkthunder/site-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCalendarServiceTest(t *testing.T) *CalendarService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CalendarEvent{}); err != nil {
		t.Fatalf("migrate calendar failed: %v", err)
	}
	return NewCalendarService(repository.NewCalendarRepository(db))
}

func TestCalendarCreateAcceptsDateFormats(t *testing.T) {
	svc := setupCalendarServiceTest(t)

	for _, raw := range []string{
		"2026-09-20T18:00:00Z",
		"2026-09-20T18:00:00",
		"2026-09-20 18:00:00",
		"2026-09-20",
	} {
		event, err := svc.Create(CalendarEventInput{Title: "Match", Date: raw})
		if err != nil {
			t.Fatalf("date %q rejected: %v", raw, err)
		}
		if event.Date.IsZero() {
			t.Fatalf("date %q parsed to zero time", raw)
		}
	}
}

func TestCalendarCreateValidation(t *testing.T) {
	svc := setupCalendarServiceTest(t)

	if _, err := svc.Create(CalendarEventInput{Date: "2026-09-20"}); !IsValidationError(err) {
		t.Fatalf("missing title want validation error got %v", err)
	}
	if _, err := svc.Create(CalendarEventInput{Title: "x"}); !IsValidationError(err) {
		t.Fatalf("missing date want validation error got %v", err)
	}
	if _, err := svc.Create(CalendarEventInput{Title: "x", Date: "next friday"}); !IsValidationError(err) {
		t.Fatalf("bad date want validation error got %v", err)
	}
}

func TestCalendarReplaceIsWholesale(t *testing.T) {
	svc := setupCalendarServiceTest(t)

	event, err := svc.Create(CalendarEventInput{
		Title:       "Qualifier",
		Description: "round one",
		Location:    "Berlin",
		Date:        "2026-09-05",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	replaced, err := svc.Replace(fmt.Sprint(event.ID), CalendarEventInput{
		Title: "Qualifier (moved)",
		Date:  "2026-09-06",
	})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if replaced.ID != event.ID {
		t.Fatalf("replace must keep identity")
	}
	// 整体替换：未提供的字段被清空而不是保留
	if replaced.Description != "" || replaced.Location != "" {
		t.Fatalf("replace must overwrite all fields, got %+v", replaced)
	}
	wantDate := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	if !replaced.Date.Equal(wantDate) {
		t.Fatalf("date want %v got %v", wantDate, replaced.Date)
	}
}
