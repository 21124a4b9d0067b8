package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	OCRAPIURL         string
	OCRAPIKey         string
	OCRLanguage       string
	OCRTimeout        time.Duration
	CenturyCutoff     int
	TesseractDataPath string
	EnableTesseract   bool
	MaxImageSize      int64
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	ocrAPIURL := os.Getenv("OCR_API_URL")
	if ocrAPIURL == "" {
		ocrAPIURL = "https://api.ocr.space/parse/image"
	}

	ocrLanguage := os.Getenv("OCR_LANGUAGE")
	if ocrLanguage == "" {
		ocrLanguage = "spa"
	}

	ocrTimeout := 30 * time.Second
	if v := os.Getenv("OCR_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			ocrTimeout = time.Duration(secs) * time.Second
		}
	}

	// The voter-ID and license registration flows historically used different
	// two-digit-year cutoffs (30 vs 50). One configurable cutoff serves both now.
	centuryCutoff := 30
	if v := os.Getenv("CENTURY_CUTOFF"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 99 {
			centuryCutoff = n
		}
	}

	tessdataPath := os.Getenv("TESSDATA_PREFIX")
	if tessdataPath == "" {
		tessdataPath = "/usr/share/tesseract-ocr/5/tessdata"
	}

	return &Config{
		ServerPort:        serverPort,
		OCRAPIURL:         ocrAPIURL,
		OCRAPIKey:         os.Getenv("OCR_API_KEY"),
		OCRLanguage:       ocrLanguage,
		OCRTimeout:        ocrTimeout,
		CenturyCutoff:     centuryCutoff,
		TesseractDataPath: tessdataPath,
		EnableTesseract:   os.Getenv("ENABLE_TESSERACT_FALLBACK") == "true",
		MaxImageSize:      10 * 1024 * 1024, // 10 MB
	}
}
