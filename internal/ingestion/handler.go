package ingestion

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	v1 "github.com/aevon-lab/pos-analytics/internal/api/v1"
	httperr "github.com/aevon-lab/pos-analytics/internal/core/errors"
	"github.com/aevon-lab/pos-analytics/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgPersistFailed  = "Failed to persist sale"
	msgDuplicateSale  = "Sale already exists"
	msgListFailed     = "Failed to list sales"
	msgDeleteFailed   = "Failed to delete sale"
	msgSaleNotFound   = "Sale not found"
)

// ingestionError carries the structured HTTP error shape from a helper back to the handler.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// RecordSaleHandler handles POST /v1/sales.
func (s *Service) RecordSaleHandler(c *gin.Context) {
	sale, payloadSize, err := s.parseSale(c)
	if err != nil {
		writeError(c, err)
		return
	}

	s.complete(sale)

	if err := validateSale(sale); err != nil {
		writeError(c, err)
		return
	}

	if err := s.persistSale(c.Request.Context(), sale); err != nil {
		writeError(c, err)
		return
	}

	slog.Info("[Ingestion] Sale recorded",
		"sale_id", sale.ID,
		"location_id", sale.LocationID,
		"total", sale.Total,
		"payment_method", sale.PaymentMethod,
		"payload_size", payloadSize)

	c.JSON(http.StatusCreated, sale)
}

// parseSale reads the raw request body, enforcing the size limit, and binds it.
func (s *Service) parseSale(c *gin.Context) (*v1.Sale, int, *ingestionError) {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("[Ingestion] Failed to read request body", "error", err)
		return nil, 0, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("[Ingestion] Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var req v1.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("[Ingestion] Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}
	return req.Sale(), len(bodyBytes), nil
}

// complete fills the fields the register may omit: id and checkout time.
func (s *Service) complete(sale *v1.Sale) {
	if sale.ID == "" {
		sale.ID = s.newID()
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = s.nowFn()
	} else {
		sale.CreatedAt = sale.CreatedAt.UTC()
	}
}

func validateSale(sale *v1.Sale) *ingestionError {
	if err := sale.Validate(); err != nil {
		slog.Warn("[Ingestion] Sale validation failed", "error", err, "sale_id", sale.ID)
		return &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidSaleError,
			message:    err.Error(),
		}
	}
	return nil
}

func (s *Service) persistSale(ctx context.Context, sale *v1.Sale) *ingestionError {
	if err := s.ledger.SaveSale(ctx, sale); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			slog.Info("[Ingestion] Duplicate sale rejected", "sale_id", sale.ID)
			return &ingestionError{
				statusCode: http.StatusConflict,
				errorType:  httperr.HttpDuplicateSaleError,
				message:    msgDuplicateSale,
			}
		}

		slog.Error("[Ingestion] Failed to persist sale", "error", err, "sale_id", sale.ID)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}
	return nil
}

type listSalesQuery struct {
	LocationID int `form:"location_id" binding:"omitempty,min=1"`
	Limit      int `form:"limit" binding:"omitempty,min=1"`
}

// ListSalesHandler handles GET /v1/sales
// Query parameters: location_id (optional), limit (default 100, capped at 1000)
func (s *Service) ListSalesHandler(c *gin.Context) {
	var query listSalesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidQueryError,
			message:    "Invalid query parameters",
			details:    err.Error(),
		})
		return
	}

	limit := query.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	var (
		sales []*v1.Sale
		err   error
	)
	if query.LocationID > 0 {
		sales, err = s.ledger.FetchByLocation(c.Request.Context(), query.LocationID, limit)
	} else {
		sales, err = s.ledger.FetchAll(c.Request.Context(), limit)
	}
	if err != nil {
		slog.Error("[Ingestion] Failed to list sales", "error", err, "location_id", query.LocationID)
		writeError(c, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgListFailed,
		})
		return
	}
	if sales == nil {
		sales = []*v1.Sale{}
	}

	c.JSON(http.StatusOK, sales)
}

// DeleteSaleHandler handles DELETE /v1/sales/:id. The delete is permanent.
func (s *Service) DeleteSaleHandler(c *gin.Context) {
	id := c.Param("id")

	if err := s.ledger.DeleteSale(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(c, &ingestionError{
				statusCode: http.StatusNotFound,
				errorType:  httperr.HttpNotFoundError,
				message:    msgSaleNotFound,
				details:    map[string]string{"id": id},
			})
			return
		}

		slog.Error("[Ingestion] Failed to delete sale", "error", err, "sale_id", id)
		writeError(c, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgDeleteFailed,
		})
		return
	}

	slog.Info("[Ingestion] Sale deleted", "sale_id", id)
	c.Status(http.StatusNoContent)
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
