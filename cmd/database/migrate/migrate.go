package migration

import (
	"RecipeShare-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SavedLink{}); err != nil {
		log.Fatalf("Error migrating saved link database: %v", err)
		return err
	}

	// secondary lookups not covered by column index tags
	db.Exec("CREATE INDEX IF NOT EXISTS idx_saved_links_owner_platform ON saved_links (owner_subject, platform);")

	fmt.Println("Database migration complete")
	return nil
}
