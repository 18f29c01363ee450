package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/TalkBridge-2025/mentorship-service/internal/config"
	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/translator"
	"github.com/TalkBridge-2025/mentorship-service/pkg"
)

// translate-quizzes walks stored quizzes and translates their titles into a
// target language, writing the result back and producing an xlsx report of
// what was translated and what failed. Each quiz costs one provider call;
// failures are recorded and skipped, never retried.
func main() {
	target := flag.String("target", "", "target language code (required)")
	source := flag.String("source", "", "source language code, empty for auto-detect")
	report := flag.String("report", "translation-report.xlsx", "path of the xlsx report")
	limit := flag.Int("limit", 0, "maximum quizzes to process, 0 for all")
	dryRun := flag.Bool("dry-run", false, "translate but do not write back")
	flag.Parse()

	if *target == "" {
		log.Fatal("the -target flag is required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	translatorConfig := translator.Config{
		BaseURL: cfg.Translator.BaseURL,
		APIKey:  cfg.Translator.APIKey,
		Timeout: cfg.Translator.Timeout,
	}
	if !translatorConfig.Enabled() {
		log.Fatal("Translation provider is not configured")
	}
	client := translator.NewClient(translatorConfig, logger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	query := db.Model(&models.Quiz{}).Where("language <> ?", *target).Order("id")
	if *limit > 0 {
		query = query.Limit(*limit)
	}

	var quizzes []models.Quiz
	if err := query.Find(&quizzes).Error; err != nil {
		log.Fatalf("Failed to load quizzes: %v", err)
	}

	logger.Info("Translating quizzes", "count", len(quizzes), "target", *target, "dry_run", *dryRun)

	ctx := context.Background()
	rows := make([][]interface{}, 0, len(quizzes))
	var translated, failed int

	for _, quiz := range quizzes {
		start := time.Now()
		result, err := client.Translate(ctx, quiz.Title, *source, *target)
		if err != nil {
			failed++
			logger.Error("Quiz translation failed", "quiz_id", quiz.ID, "error", err)
			rows = append(rows, []interface{}{quiz.ID, quiz.Title, "", quiz.Language, "failed", err.Error()})
			continue
		}

		if !*dryRun {
			updates := map[string]interface{}{
				"title":      result,
				"language":   *target,
				"updated_at": time.Now(),
			}
			if err := db.Model(&models.Quiz{}).Where("id = ?", quiz.ID).Updates(updates).Error; err != nil {
				failed++
				logger.Error("Quiz update failed", "quiz_id", quiz.ID, "error", err)
				rows = append(rows, []interface{}{quiz.ID, quiz.Title, result, quiz.Language, "write failed", err.Error()})
				continue
			}
		}

		translated++
		logger.Info("Quiz translated", "quiz_id", quiz.ID, "duration_ms", time.Since(start).Milliseconds())
		rows = append(rows, []interface{}{quiz.ID, quiz.Title, result, quiz.Language, "ok", ""})
	}

	if err := writeReport(*report, rows); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	logger.Info("Batch finished", "translated", translated, "failed", failed, "report", *report)
	if failed > 0 {
		os.Exit(1)
	}
}

func writeReport(path string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Translations"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	header := []interface{}{"Quiz ID", "Original Title", "Translated Title", "Original Language", "Status", "Error"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
