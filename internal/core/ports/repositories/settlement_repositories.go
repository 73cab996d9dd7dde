package repositories

import (
	"context"
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
)

// SettlementReader defines read operations for settlement history
type SettlementReader interface {
	// FindSettlementByID retrieves a settlement by its ID, with the partner name
	// joined in.
	FindSettlementByID(ctx context.Context, settlementID string) (*domain.Settlement, error)

	// ListSettlements retrieves settlements newest-first, optionally filtered by
	// partner. createdBefore is the cursor: only rows strictly older than it are
	// returned (zero time = from the newest).
	ListSettlements(ctx context.Context, partnerID string, createdBefore time.Time, limit int) ([]domain.Settlement, error)
}

// SettlementWriter defines write operations for settlement history
type SettlementWriter interface {
	// SaveSettlement appends a settlement record.
	SaveSettlement(ctx context.Context, settlement domain.Settlement) error
}

// SettlementRepositoryFacade combines all settlement repository interfaces
type SettlementRepositoryFacade interface {
	SettlementReader
	SettlementWriter
}
