package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/TalkBridge-2025/mentorship-service/internal/config"
	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/pdfgen"
	"github.com/TalkBridge-2025/mentorship-service/pkg"
)

// resume-pdf renders a stored resume into a PDF file on disk
func main() {
	resumeID := flag.Uint("id", 0, "resume ID to render")
	userID := flag.Uint("user", 0, "render the resume of this user instead")
	out := flag.String("out", "", "output path, defaults to resume-<id>.pdf")
	flag.Parse()

	if *resumeID == 0 && *userID == 0 {
		log.Fatal("one of -id or -user is required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	resume, err := loadResume(db, *resumeID, *userID)
	if err != nil {
		log.Fatalf("Failed to load resume: %v", err)
	}

	path := *out
	if path == "" {
		path = fmt.Sprintf("resume-%d.pdf", resume.ID)
	}

	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer file.Close()

	layout := pdfgen.Build(resume)
	if err := pdfgen.Render(layout, file); err != nil {
		log.Fatalf("Failed to render PDF: %v", err)
	}

	log.Printf("Wrote %s", path)
}

func loadResume(db *gorm.DB, resumeID, userID uint) (*models.Resume, error) {
	var resume models.Resume
	query := db
	if resumeID != 0 {
		query = query.Where("id = ?", resumeID)
	} else {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.First(&resume).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}
