package main

import (
	"context"
	"fmt"
	"log"

	"hoteldesk/internal/database"
	"hoteldesk/internal/domain"
	"hoteldesk/internal/pkg/logger"
	"hoteldesk/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()
	logger.Init("dev")
	ctx := context.Background()

	db, err := database.Connect("hoteldesk.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Room{},
		&domain.Guest{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM guests")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewGuestRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@hoteldesk.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Front Desk Admin",
	}
	if err := userRepo.Create(ctx, &admin); err != nil {
		log.Fatal("Creating admin failed:", err)
	}
	log.Println("Admin created: admin@hoteldesk.local / admin123")

	for i := 1; i <= 2; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
		staff := domain.User{
			Email:        fmt.Sprintf("staff%d@hoteldesk.local", i),
			PasswordHash: string(hash),
			Role:         domain.RoleStaff,
			Name:         fmt.Sprintf("Receptionist %d", i),
		}
		if err := userRepo.Create(ctx, &staff); err != nil {
			log.Fatal("Creating staff failed:", err)
		}
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	categories := []domain.RoomCategory{domain.RoomStandard, domain.RoomDeluxe, domain.RoomSuite}
	count := 0
	for floor := 1; floor <= 3; floor++ {
		for n := 1; n <= 4; n++ {
			room := domain.Room{
				ID:         uuid.NewString(),
				RoomNumber: fmt.Sprintf("%d%02d", floor, n),
				Category:   categories[(n-1)%len(categories)],
				Floor:      floor,
			}
			if err := roomRepo.Create(ctx, &room); err != nil {
				log.Fatal("Creating room failed:", err)
			}
			count++
		}
	}
	log.Printf("Created %d rooms", count)

	// ================== GUESTS ==================
	log.Println("Creating guests...")

	guests := []domain.Guest{
		{ID: uuid.NewString(), Name: "Ahmed Khan", NationalID: "BX782435", Phone: "01712345678"},
		{ID: uuid.NewString(), Name: "Fatima Rahman", NationalID: "AZ567890", Phone: "01898765432"},
		{ID: uuid.NewString(), Name: "Kamal Hossain", NationalID: "CY123456", Phone: "01612345678"},
	}
	for i := range guests {
		if err := guestRepo.Create(ctx, &guests[i]); err != nil {
			log.Fatal("Creating guest failed:", err)
		}
	}
	log.Printf("Created %d guests", len(guests))

	log.Println("Seed complete")
}
