package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/registromx/ocr-credential-extraction/dto"
	"github.com/registromx/ocr-credential-extraction/service"
)

type DocumentHandler struct {
	classificationService *service.ClassificationService
	extractionService     *service.ExtractionService
}

func NewDocumentHandler(classificationService *service.ClassificationService, extractionService *service.ExtractionService) *DocumentHandler {
	return &DocumentHandler{
		classificationService: classificationService,
		extractionService:     extractionService,
	}
}

// ClassifyDocument handles the POST /documents/classify endpoint
func (h *DocumentHandler) ClassifyDocument(c *gin.Context) {
	log.Println("Received document classification request")

	var request dto.ClassifyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "VALIDATION_ERROR", "front_image is required", err)
		return
	}

	// Classification never fails: recognition errors fall back to the
	// voter-id default with zero scores.
	result := h.classificationService.ClassifyDocument(c.Request.Context(), request.FrontImage)

	log.Printf("Document classified as %s", result.DocumentType)
	c.JSON(http.StatusOK, result)
}

// ExtractFields handles the POST /documents/extract endpoint
func (h *DocumentHandler) ExtractFields(c *gin.Context) {
	log.Println("Received field extraction request")

	var request dto.ExtractRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body", err)
		return
	}

	record, err := h.extractionService.ExtractFields(c.Request.Context(), &request)
	if err != nil {
		switch {
		case errors.Is(err, dto.ErrNoImageSupplied):
			h.sendError(c, http.StatusBadRequest, "VALIDATION_ERROR", "at least one document image is required", err)
		case errors.Is(err, dto.ErrRecognitionFailed):
			h.sendError(c, http.StatusBadGateway, "SERVICE_ERROR", "text recognition service failed", err)
		default:
			h.sendError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), err)
		}
		return
	}

	log.Printf("Field extraction completed, data_found=%v", record.DataFound)
	c.JSON(http.StatusOK, record)
}

// sendError sends a structured error response
func (h *DocumentHandler) sendError(c *gin.Context, statusCode int, code, message string, err error) {
	if err != nil {
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: message,
		Code:    statusCode,
	})
}
