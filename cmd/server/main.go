package main

import (
	"fmt"
	"log"

	"tourxls/internal/config"
	"tourxls/internal/handler"
	"tourxls/internal/pdftext"
	"tourxls/internal/router"
	"tourxls/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize the PDF text extractor
	extractor := pdftext.NewExtractor(cfg.Extract.RowTolerance, cfg.Extract.WordGapFactor)

	// Initialize services
	conversionSvc := service.NewConversionService(extractor, &cfg.Upload, &cfg.Extract)

	// Initialize handlers
	conversionH := handler.NewConversionHandler(conversionSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, conversionH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
