package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sdkthunder/site-api/internal/models"
	"github.com/sdkthunder/site-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAboutServiceTest(t *testing.T) *AboutService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.AboutStat{}, &models.AboutValue{}); err != nil {
		t.Fatalf("migrate about failed: %v", err)
	}
	return NewAboutService(repository.NewAboutStatRepository(db), repository.NewAboutValueRepository(db))
}

func TestAboutStatCreateDefaults(t *testing.T) {
	svc := setupAboutServiceTest(t)

	stat, err := svc.CreateStat(CreateAboutStatInput{Icon: "trophy", Number: "12", Label: "Titles"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if stat.Color != "from-blue-500 to-cyan-500" {
		t.Fatalf("color must default, got %s", stat.Color)
	}
	if !stat.IsActive {
		t.Fatalf("isActive must default to true")
	}
}

func TestAboutStatCreateReportsAllMissingFields(t *testing.T) {
	svc := setupAboutServiceTest(t)

	_, err := svc.CreateStat(CreateAboutStatInput{})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want validation error got %v", err)
	}
	for _, field := range []string{"icon", "number", "label"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Fatalf("validation must cover %s, got %v", field, ve.Fields)
		}
	}
}

func TestAboutValueCreateTrimsText(t *testing.T) {
	svc := setupAboutServiceTest(t)

	value, err := svc.CreateValue(CreateAboutValueInput{Text: "  Integrity  "})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if value.Text != "Integrity" {
		t.Fatalf("text must be trimmed, got %q", value.Text)
	}

	if _, err := svc.CreateValue(CreateAboutValueInput{Text: "   "}); !IsValidationError(err) {
		t.Fatalf("blank text want validation error got %v", err)
	}
}

func TestAboutValueUpdateAndDelete(t *testing.T) {
	svc := setupAboutServiceTest(t)

	value, err := svc.CreateValue(CreateAboutValueInput{Text: "Teamwork"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	rawID := fmt.Sprint(value.ID)

	hidden := false
	updated, err := svc.UpdateValue(rawID, UpdateAboutValueInput{IsActive: &hidden})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("isActive must be updated")
	}

	if err := svc.DeleteValue(rawID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetValue(rawID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted value want ErrNotFound got %v", err)
	}
}
