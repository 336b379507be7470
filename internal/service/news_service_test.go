package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sdkthunder/site-api/internal/models"
	"github.com/sdkthunder/site-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupNewsServiceTest(t *testing.T) *NewsService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.NewsArticle{}); err != nil {
		t.Fatalf("migrate news failed: %v", err)
	}
	return NewNewsService(repository.NewNewsRepository(db), nil, 0)
}

func TestNewsCreatePublishedDerivesTimestamp(t *testing.T) {
	svc := setupNewsServiceTest(t)

	article, err := svc.Create(context.Background(), CreateNewsInput{
		Title:     "Roster Announcement",
		Content:   "We are excited to announce our new roster.",
		Published: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !article.Published || article.PublishedAt == nil {
		t.Fatalf("published article must carry publishedAt, got %+v", article)
	}
	if article.Slug != "roster-announcement" {
		t.Fatalf("slug want roster-announcement got %s", article.Slug)
	}
	if article.ReadTime == "" {
		t.Fatalf("readTime should be derived")
	}
}

func TestNewsCreateDraftHasNoTimestamp(t *testing.T) {
	svc := setupNewsServiceTest(t)

	article, err := svc.Create(context.Background(), CreateNewsInput{Title: "Draft"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if article.Published || article.PublishedAt != nil {
		t.Fatalf("draft must not carry publishedAt, got %+v", article)
	}
}

func TestNewsCreateRequiresTitle(t *testing.T) {
	svc := setupNewsServiceTest(t)

	_, err := svc.Create(context.Background(), CreateNewsInput{Title: "   "})
	if !IsValidationError(err) {
		t.Fatalf("want validation error got %v", err)
	}
}

func TestNewsUpdatePublishTransition(t *testing.T) {
	svc := setupNewsServiceTest(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, CreateNewsInput{Title: "Match Recap"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	rawID := fmt.Sprint(article.ID)

	published := true
	updated, err := svc.Update(ctx, rawID, UpdateNewsInput{Published: &published})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if updated.PublishedAt == nil {
		t.Fatalf("publish must set publishedAt")
	}
	firstPublishedAt := *updated.PublishedAt

	// 再次发布不应刷新时间戳
	updated, err = svc.Update(ctx, rawID, UpdateNewsInput{Published: &published})
	if err != nil {
		t.Fatalf("republish failed: %v", err)
	}
	if !updated.PublishedAt.Equal(firstPublishedAt) {
		t.Fatalf("publishedAt must be stable across repeated publish")
	}

	unpublished := false
	updated, err = svc.Update(ctx, rawID, UpdateNewsInput{Published: &unpublished})
	if err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}
	if updated.Published || updated.PublishedAt != nil {
		t.Fatalf("unpublish must clear publishedAt, got %+v", updated)
	}
}

func TestNewsUpdatePartialKeepsOtherFields(t *testing.T) {
	svc := setupNewsServiceTest(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, CreateNewsInput{
		Title:    "Original",
		Summary:  "summary",
		Category: "esports",
		Tags:     []string{"cs2"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newTitle := "Renamed"
	updated, err := svc.Update(ctx, fmt.Sprint(article.ID), UpdateNewsInput{Title: &newTitle})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Renamed" || updated.Summary != "summary" || updated.Category != "esports" {
		t.Fatalf("partial update altered untouched fields: %+v", updated)
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "cs2" {
		t.Fatalf("tags must survive partial update: %+v", updated.Tags)
	}
}

func TestNewsGetPublicHidesDrafts(t *testing.T) {
	svc := setupNewsServiceTest(t)

	article, err := svc.Create(context.Background(), CreateNewsInput{Title: "Hidden Draft"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.GetPublic(fmt.Sprint(article.ID))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("draft must look like 404 publicly, got %v", err)
	}
}

func TestNewsIncrementViewsReturnsCount(t *testing.T) {
	svc := setupNewsServiceTest(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, CreateNewsInput{Title: "Counted", Published: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for want := 1; want <= 3; want++ {
		views, err := svc.IncrementViews(ctx, fmt.Sprint(article.ID))
		if err != nil {
			t.Fatalf("increment failed: %v", err)
		}
		if views != want {
			t.Fatalf("views want %d got %d", want, views)
		}
	}
}

func TestNewsUpdatePreservesViewCounter(t *testing.T) {
	svc := setupNewsServiceTest(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, CreateNewsInput{Title: "Counted", Published: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	rawID := fmt.Sprint(article.ID)
	for i := 0; i < 5; i++ {
		if _, err := svc.IncrementViews(ctx, rawID); err != nil {
			t.Fatalf("increment failed: %v", err)
		}
	}

	title := "Renamed"
	updated, err := svc.Update(ctx, rawID, UpdateNewsInput{Title: &title})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Views != 5 {
		t.Fatalf("updated views want 5 got %d", updated.Views)
	}

	got, err := svc.Get(rawID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Views != 5 {
		t.Fatalf("stored views want 5 got %d", got.Views)
	}
}

func TestNewsInvalidIDRejectedBeforeStorage(t *testing.T) {
	svc := setupNewsServiceTest(t)

	for _, raw := range []string{"abc", "-1", "0", "1.5", ""} {
		if _, err := svc.Get(raw); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("raw %q want ErrInvalidID got %v", raw, err)
		}
	}

	if _, err := svc.IncrementViews(context.Background(), "abc"); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("increment invalid id want ErrInvalidID got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Roster Announcement":  "roster-announcement",
		"  CS2 -- Major 2026 ": "cs2-major-2026",
		"---":                  "",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("slugify(%q) want %q got %q", in, want, got)
		}
	}
}
