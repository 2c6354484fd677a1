package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"safelogist/internal/database"
	"safelogist/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "safelogist.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	// AutoMigrate to ensure schema is up to date
	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Company{},
		&domain.Review{},
		&domain.ReviewRequest{},
		&domain.CompanyClaim{},
		&domain.LandingBlock{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM company_claims")
	db.Exec("DELETE FROM review_requests")
	db.Exec("DELETE FROM landing_blocks")
	db.Exec("DELETE FROM companies")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@safelogist.net",
		Phone:        "+7 900 000 00 01",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@safelogist.net / admin123")

	users := []domain.User{}
	seedUsers := []struct {
		email   string
		role    domain.UserRole
		company string
	}{
		{"ivanov@translog.ru", domain.RoleCarrier, "ТрансЛогистик"},
		{"petrova@cargoexpress.ru", domain.RoleShipper, "КаргоЭкспресс"},
		{"sousa@atlanticofreight.pt", domain.RoleForwarder, "Atlantico Freight"},
	}
	for i, su := range seedUsers {
		hash, _ := bcrypt.GenerateFromPassword([]byte("user1234"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        su.email,
			Phone:        fmt.Sprintf("+7 900 123 45%02d", i+10),
			PasswordHash: string(hash),
			Role:         su.role,
			IsActive:     true,
			CompanyName:  su.company,
		}
		db.Create(&u)
		users = append(users, u)
	}

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")

	subjects := []string{"ТрансЛогистик", "КаргоЭкспресс", "Atlantico Freight", "БелТрансСервис"}
	comments := []string{
		"Груз доставлен в срок, документы оформлены без замечаний. Рекомендуем как надёжного контрагента.",
		"Были небольшие задержки на погрузке, но в целом сотрудничеством довольны, оплата прошла вовремя.",
		"Отличная коммуникация на всех этапах перевозки, водитель выходил на связь регулярно.",
		"Сорвали сроки подачи машины без предупреждения, пришлось срочно искать замену. Не рекомендуем.",
	}
	n := 0
	for si, subj := range subjects {
		for ci := 0; ci <= si%2+1; ci++ {
			n++
			r := domain.Review{
				Subject:    subj,
				ReviewID:   fmt.Sprintf("SEED-%d", n),
				Comment:    comments[(si+ci)%len(comments)],
				Reviewer:   seedUsers[ci%len(seedUsers)].company,
				Rating:     3 + (si+ci)%3,
				Status:     domain.ReviewStatusPublished,
				ReviewDate: time.Now().AddDate(0, -si, -ci*7),
				Source:     domain.SourceInternal,
			}
			db.Create(&r)
		}
	}

	// ================== COMPANIES (derived stats) ==================
	log.Println("Recomputing company stats...")
	for _, subj := range subjects {
		db.Exec(`
			INSERT INTO companies (name, reviews_count, min_review_id, created_at, updated_at)
			SELECT ?, COUNT(*), MIN(id), CURRENT_TIMESTAMP, CURRENT_TIMESTAMP
			FROM reviews WHERE subject = ?
			HAVING COUNT(*) > 0
			ON CONFLICT (name) DO UPDATE SET
				reviews_count = excluded.reviews_count,
				min_review_id = excluded.min_review_id,
				updated_at    = CURRENT_TIMESTAMP
		`, subj, subj)
	}

	// ================== LANDING ==================
	log.Println("Creating landing blocks...")
	blocks := []domain.LandingBlock{
		{Slug: "hero", Title: "Проверяйте контрагентов до сделки", Body: "База отзывов о логистических компаниях России, Португалии, Беларуси и Молдовы.", Position: 1, IsPublished: true},
		{Slug: "how-it-works", Title: "Как это работает", Body: "Отзывы проходят ручную модерацию. Каждый отзыв подкреплён документом.", Position: 2, IsPublished: true},
		{Slug: "for-owners", Title: "Владельцам компаний", Body: "Подтвердите владение компанией и отвечайте на отзывы от её имени.", Position: 3, IsPublished: true},
		{Slug: "faq-draft", Title: "FAQ (черновик)", Body: "", Position: 4, IsPublished: false},
	}
	for i := range blocks {
		db.Create(&blocks[i])
	}

	log.Printf("Seed complete: %d users, %d reviews, %d subjects, %d landing blocks", len(users)+1, n, len(subjects), len(blocks))
}
