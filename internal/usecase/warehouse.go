package usecase

import (
	"context"

	"auction-hall/internal/domain/auction"
	"auction-hall/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHistoryNotFound  = errs.New("history entry not found")
	ErrNotOwner         = errs.New("account does not own this entry")
	ErrAlreadyCollected = errs.New("entry already collected")
	ErrNotCollectable   = errs.New("entry is not collectable")
	ErrHoldingFull      = errs.New("holding area cannot accept the item")
)

// WarehouseCommands lets the rightful owner of a finished auction retrieve
// its item: the buyer for Sold entries, the seller for Expired and Cancelled
// ones.
type WarehouseCommands interface {
	Collect(ctx context.Context, historyID int64, account uuid.UUID) error
	ListUncollected(ctx context.Context, account uuid.UUID) ([]HistoryEntry, error)
}

type warehouseUseCaseImpl struct {
	store    PersistenceStore
	holdings HoldingStore
}

func NewWarehouseUseCase(store PersistenceStore, holdings HoldingStore) WarehouseCommands {
	return &warehouseUseCaseImpl{store: store, holdings: holdings}
}

func (w *warehouseUseCaseImpl) Collect(ctx context.Context, historyID int64, account uuid.UUID) error {
	entry, err := w.store.FindHistoryEntry(ctx, historyID)
	if err != nil {
		return errs.Mark(err, ErrHistoryNotFound)
	}

	owner, err := entryOwner(entry)
	if err != nil {
		return err
	}
	if owner != account {
		return ErrNotOwner
	}

	if err := w.holdings.Return(ctx, account, entry.Item); err != nil {
		return errs.Mark(err, ErrHoldingFull)
	}
	if err := w.store.MarkHistoryCollected(ctx, historyID); err != nil {
		return errs.Mark(err, ErrPersistenceFailed)
	}
	return nil
}

func (w *warehouseUseCaseImpl) ListUncollected(ctx context.Context, account uuid.UUID) ([]HistoryEntry, error) {
	entries, err := w.store.ListUncollected(ctx, account)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}
	return entries, nil
}

func entryOwner(entry *HistoryEntry) (uuid.UUID, error) {
	switch entry.Status {
	case auction.StatusSold:
		if entry.BuyerID == nil {
			return uuid.Nil, ErrNotCollectable
		}
		return *entry.BuyerID, nil
	case auction.StatusExpired, auction.StatusCancelled:
		return entry.SellerID, nil
	case auction.StatusCollected:
		return uuid.Nil, ErrAlreadyCollected
	default:
		return uuid.Nil, ErrNotCollectable
	}
}
