package repository

import (
	"fmt"
	"testing"

	"github.com/sdkthunder/site-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupGalleryRepositoryTest(t *testing.T) *GormGalleryRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.GalleryItem{}); err != nil {
		t.Fatalf("migrate gallery failed: %v", err)
	}
	return NewGalleryRepository(db)
}

func createGalleryItem(t *testing.T, repo *GormGalleryRepository, title, category, mediaType string, featured bool, sortOrder int) *models.GalleryItem {
	t.Helper()
	item := &models.GalleryItem{
		Title:     title,
		Type:      mediaType,
		URL:       "https://cdn.example.com/" + title,
		Category:  category,
		Featured:  featured,
		SortOrder: sortOrder,
	}
	if err := repo.Create(item); err != nil {
		t.Fatalf("create gallery item failed: %v", err)
	}
	return item
}

func TestGalleryListFeaturedFirst(t *testing.T) {
	repo := setupGalleryRepositoryTest(t)
	createGalleryItem(t, repo, "plain", "events", "PHOTO", false, 0)
	createGalleryItem(t, repo, "star", "events", "PHOTO", true, 9)

	items, err := repo.List(GalleryListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if items[0].Title != "star" {
		t.Fatalf("featured should come first, got %s", items[0].Title)
	}
}

func TestGalleryListCategoryAndTypeFilter(t *testing.T) {
	repo := setupGalleryRepositoryTest(t)
	createGalleryItem(t, repo, "p1", "events", "PHOTO", false, 0)
	createGalleryItem(t, repo, "v1", "events", "VIDEO", false, 0)
	createGalleryItem(t, repo, "p2", "teams", "PHOTO", false, 0)

	items, err := repo.List(GalleryListFilter{Category: "events", Type: "VIDEO"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].Title != "v1" {
		t.Fatalf("filter mismatch: %+v", items)
	}

	items, err = repo.List(GalleryListFilter{Category: "all"})
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("category all want 3 got %d", len(items))
	}
}
