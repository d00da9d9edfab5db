// Command seed loads the demo profiles and, when a catalog CSV is
// supplied, ingests the recipe catalog.
//
// The catalog CSV is expected to carry the columns RCP_SNO, RCP_TTL,
// CKG_NM, ingredients_json, CKG_MTH_ACTO_NM, CKG_TIME_NM and
// CKG_INBUN_NM, in that order, with a header row.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bobfit/backend/config"
	"github.com/bobfit/backend/internal/database"
	"github.com/bobfit/backend/internal/models"
)

var demoProfiles = []models.User{
	{Username: "김다이어트", Preferences: "한식, 일식, 채소", RestrictionsAllergies: "게, 새우", RestrictionsOther: "종교(돼지고기 x)", Goals: "다이어트, 저염식, 채식", Budget: 15000},
	{Username: "박벌크업", Preferences: "육류, 양식", RestrictionsAllergies: "없음", RestrictionsOther: "없음", Goals: "단백질 섭취, 근력 증가", Budget: 10000},
	{Username: "이채식", Preferences: "채식, 비건", RestrictionsAllergies: "복숭아, 닭고기", RestrictionsOther: "채식, 비건", Goals: "영양균형, 비건", Budget: 20000},
	{Username: "최바쁨", Preferences: "간편식, 한식", RestrictionsAllergies: "없음", RestrictionsOther: "조리시간 30분 이내", Goals: "빠른 식사", Budget: 0},
	{Username: "오영양", Preferences: "전체, 한식", RestrictionsAllergies: "없음", RestrictionsOther: "없음", Goals: "영양균형", Budget: 0},
}

func main() {
	catalogPath := flag.String("catalog", "", "path to the recipe catalog CSV (optional)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := seedProfiles(db); err != nil {
		log.Fatalf("Failed to seed profiles: %v", err)
	}
	log.Printf("Seeded %d demo profiles", len(demoProfiles))

	if *catalogPath != "" {
		count, err := seedCatalog(db, *catalogPath)
		if err != nil {
			log.Fatalf("Failed to ingest catalog: %v", err)
		}
		log.Printf("Ingested %d catalog rows", count)
	}
}

func seedProfiles(db *gorm.DB) error {
	for i := range demoProfiles {
		user := demoProfiles[i]

		var existing models.User
		err := db.First(&existing, "username = ?", user.Username).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create profile %s: %w", user.Username, err)
		}
	}
	return nil
}

func seedCatalog(db *gorm.DB, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 7

	// Header row.
	if _, err := reader.Read(); err != nil {
		return 0, fmt.Errorf("failed to read catalog header: %w", err)
	}

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read catalog row: %w", err)
		}

		sno, err := strconv.ParseUint(record[0], 10, 32)
		if err != nil {
			log.Printf("Skipping row with invalid serial number %q", record[0])
			continue
		}

		recipe := models.Recipe{
			RecipeSNO:       uint(sno),
			Title:           record[1],
			Name:            record[2],
			IngredientsJSON: record[3],
			CookingMethod:   record[4],
			TimeCategory:    record[5],
			Servings:        record[6],
		}

		// Re-running the seeder refreshes catalog rows in place.
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "RCP_SNO"}},
			DoUpdates: clause.AssignmentColumns([]string{"RCP_TTL", "CKG_NM", "ingredients_json", "CKG_MTH_ACTO_NM", "CKG_TIME_NM", "CKG_INBUN_NM"}),
		}).Create(&recipe).Error
		if err != nil {
			return count, fmt.Errorf("failed to store recipe %d: %w", sno, err)
		}
		count++
	}
	return count, nil
}
