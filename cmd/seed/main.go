// Command seed provisions a demo user with a handful of saved outfits so the
// web client has data to render against a fresh database.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"tryon/internal/config"
	"tryon/internal/db"
	"tryon/internal/model"
	"tryon/internal/repository"
)

func strPtr(s string) *string { return &s }

func main() {
	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.Outfit{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userRepo := repository.NewUserRepository(gormDB)
	outfitRepo := repository.NewOutfitRepository(gormDB)

	user, err := userRepo.FindByEmail(ctx, "demo@example.com")
	if err != nil {
		user = &model.User{Email: "demo@example.com", Name: "Demo User"}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("seed user: %v", err)
		}
		log.Printf("created demo user id=%d", user.ID)
	} else {
		log.Printf("demo user already present id=%d", user.ID)
	}

	outfits := []struct {
		itemID string
		name   string
	}{
		{"101", "Denim Jacket"},
		{"102", "Summer Dress"},
		{"103", "Wool Coat"},
	}

	cdn := fmt.Sprintf("%s/projects/%s/bucket", cfg.CDNBase, cfg.AWSAccessKeyID)
	for i, o := range outfits {
		outfit := &model.Outfit{
			UserID:           user.ID,
			OriginalPhotoURL: fmt.Sprintf("%s/tryon/original_seed-%d.jpg", cdn, i),
			ResultPhotoURL:   fmt.Sprintf("%s/tryon/result_seed-%d.jpg", cdn, i),
			ClothingItemID:   strPtr(o.itemID),
			ClothingName:     strPtr(o.name),
		}
		if err := outfitRepo.Create(ctx, outfit); err != nil {
			log.Fatalf("seed outfit %q: %v", o.name, err)
		}
		// staggered timestamps keep the newest-first listing deterministic
		time.Sleep(10 * time.Millisecond)
	}

	log.Printf("seeded %d outfits for user id=%d", len(outfits), user.ID)
}
