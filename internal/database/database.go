// Package database owns the GORM handle: opening the right driver for the
// configured DSN, creating the schema, and seeding the rows the rest of
// the system assumes exist. The handle is constructed once in main and
// passed down; nothing in this repo keeps package-level database state.
package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mplus-labs/bonsai-api/internal/models"
)

// Open connects to the database named by url. A postgres:// or
// postgresql:// DSN selects the Postgres driver; anything else is treated
// as a sqlite file path, with parent directories created as needed.
// TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey on both drivers.
func Open(url string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		db, err := gorm.Open(postgres.Open(url), cfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, nil
	}

	if dir := filepath.Dir(url); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(url), cfg)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", url, err)
	}
	return db, nil
}

// Migrate creates or updates the schema for every entity. Safe to run on
// every startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Agent{},
		&models.Session{},
		&models.Message{},
		&models.File{},
		&models.Connection{},
	)
}

// DevUserID is the fixed identity the placeholder auth resolver returns.
// The row must exist so that owned resources satisfy their foreign keys.
const DevUserID = "00000000-0000-0000-0000-000000000001"

// Seed inserts the development user and the system agents if they are not
// already present. Existing rows are never modified, so locally edited
// data survives restarts.
func Seed(db *gorm.DB) error {
	dev := models.User{
		ID:           DevUserID,
		Name:         "Dev User",
		Email:        "dev@bonsai.local",
		PasswordHash: "!",
		Plan:         "Free",
	}
	if err := db.Where("id = ?", dev.ID).FirstOrCreate(&dev).Error; err != nil {
		return fmt.Errorf("seed dev user: %w", err)
	}

	for _, agent := range systemAgents() {
		a := agent
		if err := db.Where("id = ?", a.ID).FirstOrCreate(&a).Error; err != nil {
			return fmt.Errorf("seed agent %s: %w", agent.ID, err)
		}
	}
	return nil
}

func systemAgents() []models.Agent {
	return []models.Agent{
		{
			ID:          "ocr",
			Name:        "OCR Specialist",
			Description: "Extract text from images and documents",
			Avatar:      avatarURL("ocr"),
			Model:       "gpt-4-vision",
			Specialty:   "Document Processing",
			Task:        "Extract and process text from images, PDFs, and scanned documents with high accuracy",
			APIAccess:   []string{"OpenAI Vision API", "Tesseract OCR"},
			MCPServers: []models.MCPServer{{
				ID:           "ocr-mcp",
				Name:         "OCR Processing Server",
				URL:          "mcp://ocr.example.com",
				Description:  "Advanced OCR processing capabilities",
				Capabilities: []string{"text-extraction", "image-processing", "pdf-parsing"},
			}},
		},
		{
			ID:          "summarizer",
			Name:        "Content Summarizer",
			Description: "Intelligent document summarization",
			Avatar:      avatarURL("summarizer"),
			Model:       "gpt-4-turbo",
			Specialty:   "Content Analysis",
			Task:        "Analyze and summarize long documents, articles, and content with intelligent insights",
			APIAccess:   []string{"OpenAI GPT-4", "Claude API"},
		},
		{
			ID:          "data-analyst",
			Name:        "Data Analyst",
			Description: "Data analysis and visualization",
			Avatar:      avatarURL("data-analyst"),
			Model:       "gpt-4-turbo",
			Specialty:   "Data Science",
			Task:        "Analyze data patterns, generate insights, and create comprehensive visualizations",
			APIAccess:   []string{"OpenAI GPT-4", "Python Code Interpreter"},
		},
		{
			ID:          "sql-expert",
			Name:        "SQL Expert",
			Description: "Database queries and operations",
			Avatar:      avatarURL("sql-expert"),
			Model:       "gpt-4-turbo",
			Specialty:   "Database Management",
			Task:        "Generate and execute SQL queries, manage database operations efficiently",
			APIAccess:   []string{"OpenAI GPT-4", "Database Connectors"},
		},
		{
			ID:          "creative-writer",
			Name:        "Creative Writer",
			Description: "Content creation and copywriting",
			Avatar:      avatarURL("creative-writer"),
			Model:       "gpt-4-turbo",
			Specialty:   "Creative Writing",
			Task:        "Generate creative content, articles, and marketing copy with style",
			APIAccess:   []string{"OpenAI GPT-4", "Claude API"},
		},
		{
			ID:          "researcher",
			Name:        "Research Assistant",
			Description: "Information gathering and research",
			Avatar:      avatarURL("researcher"),
			Model:       "gpt-4-turbo",
			Specialty:   "Research & Analysis",
			Task:        "Conduct thorough research and gather relevant information from multiple sources",
			APIAccess:   []string{"OpenAI GPT-4", "Web Search API", "Academic APIs"},
		},
	}
}

func avatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/personas/svg?seed=" + seed
}
