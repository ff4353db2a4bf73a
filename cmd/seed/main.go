package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"coachbook/internal/database"
	"coachbook/internal/domain"
	"coachbook/internal/pkg/timeutil"
	"coachbook/internal/repository"
)

func main() {
	db, err := database.Connect("coachbook.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM availability_blocks")
	db.Exec("DELETE FROM branches")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	branches := repository.NewBranchRepository(db)
	blocks := repository.NewBlockRepository(db)

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "coach@coachbook.dev",
		PasswordHash: string(adminHash),
		Name:         "Head Coach",
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}
	log.Println("Admin created: coach@coachbook.dev / admin123")

	clientNames := map[string]string{
		"alex@example.com":  "Alex Ponomarev",
		"maria@example.com": "Maria Kim",
		"timur@example.com": "Timur Akhmetov",
	}
	for email, name := range clientNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		u := &domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Name:         name,
			Role:         domain.RoleClient,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating branches...")
	branchRows := []*domain.Branch{
		{Name: "Downtown", Address: "12 Abay Ave", IsActive: true},
		{Name: "Riverside", Address: "4 Rotary St", IsActive: true},
	}
	for _, b := range branchRows {
		if err := branches.Create(ctx, b); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating a week of availability blocks...")
	today := time.Now()
	for day := 0; day < 7; day++ {
		date := timeutil.FormatDate(today.AddDate(0, 0, day))
		for _, b := range branchRows {
			block := &domain.AvailabilityBlock{
				Date:      date,
				StartTime: "09:00",
				EndTime:   "13:00",
				BranchID:  b.ID,
			}
			if err := blocks.Create(ctx, block); err != nil {
				log.Fatal(err)
			}
		}
	}

	log.Println("Seed complete")
}
