package server

import (
	"context"
	"log"
	"time"

	"helpdesk/internal/config"
	"helpdesk/internal/model"
	"helpdesk/pkg/util"

	"go.mongodb.org/mongo-driver/bson"
)

var defaultBranches = []string{
	"Chennai", "Trichy", "Salem", "Coimbatore", "Madurai", "Tirunelveli",
	"Erode", "Vellore", "Thanjavur", "Kanyakumari",
}

var defaultCategories = []model.Category{
	{Name: "Software", Type: "IT"},
	{Name: "Hardware", Type: "IT"},
	{Name: "Internal Function", Type: "General"},
	{Name: "External Function", Type: "General"},
}

// PopulateInitialData seeds reference data and the bootstrap admin.
// Idempotent: every insert is preceded by a lookup.
func PopulateInitialData(cfg *config.Config, repos *Repositories) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, name := range defaultBranches {
		_, exists, err := repos.Branches.FindOne(ctx, bson.M{"name": name})
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := repos.Branches.Create(ctx, &model.Branch{Name: name, Active: true}); err != nil {
			return err
		}
		log.Printf("[seed] branch created: %s", name)
	}

	for _, cat := range defaultCategories {
		_, exists, err := repos.Categories.FindOne(ctx, bson.M{"name": cat.Name})
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		c := cat
		if err := repos.Categories.Create(ctx, &c); err != nil {
			return err
		}
		log.Printf("[seed] category created: %s", cat.Name)
	}

	return seedAdmin(ctx, cfg, repos)
}

// seedAdmin creates the bootstrap admin account when configured and
// not yet present. Without ADMIN_PASSWORD no account is created.
func seedAdmin(ctx context.Context, cfg *config.Config, repos *Repositories) error {
	if cfg.Admin.Password == "" {
		return nil
	}

	existing, err := repos.Users.FindByUsername(ctx, cfg.Admin.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := util.HashPassword(cfg.Admin.Password, cfg.BCryptCost)
	if err != nil {
		return err
	}

	if _, err := repos.Users.Create(ctx, &model.User{
		Username: cfg.Admin.Username,
		Password: hash,
		Role:     model.RoleAdmin,
		Branch:   cfg.Admin.Branch,
		IsAdmin:  true,
	}); err != nil {
		return err
	}
	log.Printf("[seed] admin user created: %s", cfg.Admin.Username)
	return nil
}
