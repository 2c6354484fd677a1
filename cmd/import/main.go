package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"safelogist/internal/database"
	"safelogist/internal/domain"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm/clause"
)

// Expected sheet layout (first row is a header):
// subject | review_id | reviewer | rating | comment | review_date | source |
// legal_form | tax_id | registration_id | jurisdiction | legal_address |
// report_year | revenue | profit
func main() {
	_ = godotenv.Load()

	var (
		filePath = flag.String("file", "", "path to the .xlsx file with reviews")
		sheet    = flag.String("sheet", "", "sheet name (default: first sheet)")
		source   = flag.String("source", "import", "source tag for rows without one")
	)
	flag.Parse()

	if *filePath == "" {
		log.Fatal("usage: import -file reviews.xlsx [-sheet Sheet1] [-source egrul]")
	}
	if !strings.HasSuffix(*filePath, ".xlsx") {
		log.Fatal("only .xlsx files are supported")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "safelogist.db"
	}
	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := db.AutoMigrate(&domain.Review{}, &domain.Company{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	f, err := excelize.OpenFile(*filePath)
	if err != nil {
		log.Fatal("failed to open xlsx:", err)
	}
	defer f.Close()

	sheetName := *sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		log.Fatal("failed to read sheet:", err)
	}
	if len(rows) < 2 {
		log.Fatal("sheet has no data rows")
	}

	subjects := map[string]struct{}{}
	imported, skipped := 0, 0

	for i, row := range rows[1:] {
		review, err := parseRow(row, *source)
		if err != nil {
			log.Printf("row %d skipped: %v", i+2, err)
			skipped++
			continue
		}

		// повторный импорт того же файла не создаёт дублей
		res := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "review_id"}},
			DoNothing: true,
		}).Create(review)
		if res.Error != nil {
			log.Printf("row %d failed: %v", i+2, res.Error)
			skipped++
			continue
		}
		if res.RowsAffected == 0 {
			skipped++
			continue
		}

		subjects[review.Subject] = struct{}{}
		imported++
	}

	// full recompute pass over every touched company name
	log.Printf("Recomputing stats for %d companies...", len(subjects))
	for subj := range subjects {
		err := db.Exec(`
			INSERT INTO companies (name, reviews_count, min_review_id, created_at, updated_at)
			SELECT ?, COUNT(*), MIN(id), CURRENT_TIMESTAMP, CURRENT_TIMESTAMP
			FROM reviews WHERE subject = ?
			HAVING COUNT(*) > 0
			ON CONFLICT (name) DO UPDATE SET
				reviews_count = excluded.reviews_count,
				min_review_id = excluded.min_review_id,
				updated_at    = CURRENT_TIMESTAMP
		`, subj, subj).Error
		if err != nil {
			log.Printf("stats recompute failed for %q: %v", subj, err)
		}
	}

	log.Printf("Import complete: %d imported, %d skipped", imported, skipped)
}

func parseRow(row []string, defaultSource string) (*domain.Review, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	subject := cell(0)
	reviewID := cell(1)
	if subject == "" || reviewID == "" {
		return nil, fmt.Errorf("subject and review_id are required")
	}

	rating, err := strconv.Atoi(cell(3))
	if err != nil || rating < 1 || rating > 5 {
		return nil, fmt.Errorf("invalid rating %q", cell(3))
	}

	reviewDate := time.Now()
	if raw := cell(5); raw != "" {
		for _, layout := range []string{time.DateOnly, "02.01.2006", "01-02-06"} {
			if t, perr := time.Parse(layout, raw); perr == nil {
				reviewDate = t
				break
			}
		}
	}

	source := cell(6)
	if source == "" {
		source = defaultSource
	}

	review := &domain.Review{
		Subject:        subject,
		ReviewID:       reviewID,
		Reviewer:       cell(2),
		Rating:         rating,
		Comment:        cell(4),
		Status:         domain.ReviewStatusPublished,
		ReviewDate:     reviewDate,
		Source:         source,
		LegalForm:      cell(7),
		TaxID:          cell(8),
		RegistrationID: cell(9),
		Jurisdiction:   cell(10),
		LegalAddress:   cell(11),
	}

	if y, err := strconv.Atoi(cell(12)); err == nil {
		review.ReportYear = y
	}
	if v, err := strconv.ParseFloat(cell(13), 64); err == nil {
		review.Revenue = v
	}
	if v, err := strconv.ParseFloat(cell(14), 64); err == nil {
		review.Profit = v
	}

	return review, nil
}
