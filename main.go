package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/registromx/ocr-credential-extraction/client"
	"github.com/registromx/ocr-credential-extraction/config"
	"github.com/registromx/ocr-credential-extraction/handler"
	"github.com/registromx/ocr-credential-extraction/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize recognition clients
	ocrClient := client.NewOCRSpaceClient(cfg.OCRAPIURL, cfg.OCRAPIKey, cfg.OCRLanguage, cfg.OCRTimeout)

	var fallback service.TextRecognizer
	if cfg.EnableTesseract {
		tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguage)
		defer tesseractClient.Close()
		fallback = tesseractClient
		log.Println("Local Tesseract fallback enabled")
	}

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	classificationService := service.NewClassificationService(ocrClient, fallback)
	extractionService := service.NewExtractionService(ocrClient, fallback, pdfProcessor, cfg.CenturyCutoff)

	// Initialize handler layer
	documentHandler := handler.NewDocumentHandler(classificationService, extractionService)

	// Setup Gin router
	router := gin.Default()

	// Cap request bodies; base64 credential scans should never exceed this
	router.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxImageSize)
		c.Next()
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "OCR Credential Extraction",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		documents := api.Group("/documents")
		{
			documents.POST("/classify", documentHandler.ClassifyDocument)
			documents.POST("/extract", documentHandler.ExtractFields)
		}
	}

	// Start server
	log.Printf("Starting OCR Credential Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
