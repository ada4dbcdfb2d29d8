package ingestion

import (
	"time"

	"github.com/aevon-lab/pos-analytics/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

type Service struct {
	ledger           storage.Ledger
	maxBodySizeBytes int
	nowFn            func() time.Time
	newID            func() string
}

func NewService(ledger storage.Ledger, maxBodySizeMB int) *Service {
	if ledger == nil {
		panic("ingestion: ledger must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		ledger:           ledger,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		nowFn:            func() time.Time { return time.Now().UTC() },
		newID:            func() string { return uuid.NewString() },
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/sales", s.RecordSaleHandler)
	r.GET("/v1/sales", s.ListSalesHandler)
	r.DELETE("/v1/sales/:id", s.DeleteSaleHandler)
}
