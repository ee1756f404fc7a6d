package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with reference data",
	Long:  `Seed roles, statuses, the competence lookup set and a recruiter account.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm connection: %v", err)
		}

		if clearData {
			for _, table := range []string{"applications", "availability", "competence_profile", "persons"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		for _, role := range []string{"applicant", "recruiter"} {
			var exists int
			if err := db.Raw("SELECT 1 FROM roles WHERE name = ?", role).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO roles (name) VALUES (?)", role).Error; err != nil {
				log.Fatalf("failed to insert role %s: %v", role, err)
			}
			fmt.Println("Seeded role:", role)
		}

		for _, status := range []string{"unhandled", "accepted", "rejected"} {
			var exists int
			if err := db.Raw("SELECT 1 FROM statuses WHERE name = ?", status).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO statuses (name) VALUES (?)", status).Error; err != nil {
				log.Fatalf("failed to insert status %s: %v", status, err)
			}
			fmt.Println("Seeded status:", status)
		}

		for _, competence := range []string{"ticket sales", "lotteries", "roller coaster operation"} {
			var exists int
			if err := db.Raw("SELECT 1 FROM competences WHERE name = ?", competence).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO competences (name) VALUES (?)", competence).Error; err != nil {
				log.Fatalf("failed to insert competence %s: %v", competence, err)
			}
			fmt.Println("Seeded competence:", competence)
		}

		recruiterUsername := "recruiter_admin"
		var exists int
		if err := db.Raw("SELECT 1 FROM persons WHERE username = ?", recruiterUsername).Row().Scan(&exists); err == nil {
			fmt.Println("Recruiter account already exists:", recruiterUsername)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("RecruiterPass1!"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash recruiter password: %v", err)
		}

		var recruiterRoleID int64
		if err := db.Raw("SELECT id FROM roles WHERE name = ?", "recruiter").Row().Scan(&recruiterRoleID); err != nil {
			log.Fatalf("failed to lookup recruiter role: %v", err)
		}

		err = db.Exec(`INSERT INTO persons (first_name, last_name, username, email, person_number, password_hash, role_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, now())`,
			"Greta", "Borg", recruiterUsername, "recruiter@example.com", "19700101-0001", string(hash), recruiterRoleID).Error
		if err != nil {
			log.Fatalf("failed to insert recruiter account: %v", err)
		}

		fmt.Println("Seeded recruiter account:", recruiterUsername)
	},
}
