package service

import (
	"fmt"
	"testing"

	"github.com/sdkthunder/site-api/internal/models"
	"github.com/sdkthunder/site-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupGalleryServiceTest(t *testing.T) *GalleryService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.GalleryItem{}); err != nil {
		t.Fatalf("migrate gallery failed: %v", err)
	}
	return NewGalleryService(repository.NewGalleryRepository(db))
}

func TestGalleryCreateDefaults(t *testing.T) {
	svc := setupGalleryServiceTest(t)

	item, err := svc.Create(CreateGalleryItemInput{
		Title: "Bootcamp Day 1",
		URL:   "https://cdn.example.com/bootcamp.jpg",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if item.Type != "PHOTO" {
		t.Fatalf("type must default to PHOTO, got %s", item.Type)
	}
	if item.Category != "all" {
		t.Fatalf("category must default to all, got %s", item.Category)
	}
	if item.Author != "SDKThunder" {
		t.Fatalf("author must default to SDKThunder, got %s", item.Author)
	}
}

func TestGalleryCreateValidation(t *testing.T) {
	svc := setupGalleryServiceTest(t)

	if _, err := svc.Create(CreateGalleryItemInput{URL: "x"}); !IsValidationError(err) {
		t.Fatalf("missing title want validation error got %v", err)
	}
	if _, err := svc.Create(CreateGalleryItemInput{Title: "x"}); !IsValidationError(err) {
		t.Fatalf("missing url want validation error got %v", err)
	}
	if _, err := svc.Create(CreateGalleryItemInput{Title: "x", URL: "y", Type: "GIF"}); !IsValidationError(err) {
		t.Fatalf("bad type want validation error got %v", err)
	}
}

func TestGalleryListRejectsUnknownTypeFilter(t *testing.T) {
	svc := setupGalleryServiceTest(t)

	if _, err := svc.List("", "GIF"); !IsValidationError(err) {
		t.Fatalf("unknown type filter want validation error got %v", err)
	}
	if _, err := svc.List("", "video"); err != nil {
		t.Fatalf("lowercase type must be accepted, got %v", err)
	}
}

func TestGalleryUpdateTypeNormalized(t *testing.T) {
	svc := setupGalleryServiceTest(t)

	item, err := svc.Create(CreateGalleryItemInput{Title: "Clip", URL: "https://cdn.example.com/clip.mp4"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	videoType := "video"
	updated, err := svc.Update(fmt.Sprint(item.ID), UpdateGalleryItemInput{Type: &videoType})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Type != "VIDEO" {
		t.Fatalf("type must be normalized, got %s", updated.Type)
	}
}
