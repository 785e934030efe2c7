package usecase

import (
	"context"
	"errors"
	"testing"

	"rental_admin/internal/feature/listings/domain/entity"
)

// mockListingStore is a mock implementation of the ListingStore interface.
type mockListingStore struct {
	ListFunc         func(ctx context.Context, page, limit int, status string) (*entity.Page, error)
	GetByIDFunc      func(ctx context.Context, id uint) (*entity.Listing, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status entity.Status, adminEmail string) (*entity.Listing, error)
	UpdateFieldsFunc func(ctx context.Context, id uint, updates entity.ListingUpdate, adminEmail string) (*entity.Listing, error)
	AuditTrailFunc   func(ctx context.Context) ([]entity.AuditEntry, error)
}

func (m *mockListingStore) List(ctx context.Context, page, limit int, status string) (*entity.Page, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, limit, status)
	}
	return &entity.Page{}, nil
}

func (m *mockListingStore) GetByID(ctx context.Context, id uint) (*entity.Listing, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, ErrListingNotFound
}

func (m *mockListingStore) UpdateStatus(ctx context.Context, id uint, status entity.Status, adminEmail string) (*entity.Listing, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, adminEmail)
	}
	return nil, ErrListingNotFound
}

func (m *mockListingStore) UpdateFields(ctx context.Context, id uint, updates entity.ListingUpdate, adminEmail string) (*entity.Listing, error) {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, updates, adminEmail)
	}
	return nil, ErrListingNotFound
}

func (m *mockListingStore) AuditTrail(ctx context.Context) ([]entity.AuditEntry, error) {
	if m.AuditTrailFunc != nil {
		return m.AuditTrailFunc(ctx)
	}
	return nil, nil
}

func TestModerationUsecase_List(t *testing.T) {
	t.Run("normalizes page, limit and status", func(t *testing.T) {
		var gotPage, gotLimit int
		var gotStatus string
		mockStore := &mockListingStore{
			ListFunc: func(ctx context.Context, page, limit int, status string) (*entity.Page, error) {
				gotPage, gotLimit, gotStatus = page, limit, status
				return &entity.Page{Page: page}, nil
			},
		}

		uc := NewModerationUsecase(mockStore)
		_, err := uc.List(context.Background(), 0, -3, "")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPage != DefaultPage {
			t.Errorf("expected page %d, got %d", DefaultPage, gotPage)
		}
		if gotLimit != DefaultLimit {
			t.Errorf("expected limit %d, got %d", DefaultLimit, gotLimit)
		}
		if gotStatus != StatusFilterAll {
			t.Errorf("expected status %q, got %q", StatusFilterAll, gotStatus)
		}
	})

	t.Run("passes explicit parameters through", func(t *testing.T) {
		mockStore := &mockListingStore{
			ListFunc: func(ctx context.Context, page, limit int, status string) (*entity.Page, error) {
				if page != 2 || limit != 5 || status != "pending" {
					t.Errorf("unexpected parameters: page=%d limit=%d status=%q", page, limit, status)
				}
				return &entity.Page{}, nil
			},
		}

		uc := NewModerationUsecase(mockStore)
		if _, err := uc.List(context.Background(), 2, 5, "pending"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestModerationUsecase_UpdateStatus(t *testing.T) {
	t.Run("rejects unknown status before touching the store", func(t *testing.T) {
		storeCalled := false
		mockStore := &mockListingStore{
			UpdateStatusFunc: func(ctx context.Context, id uint, status entity.Status, adminEmail string) (*entity.Listing, error) {
				storeCalled = true
				return nil, nil
			},
		}

		uc := NewModerationUsecase(mockStore)
		_, err := uc.UpdateStatus(context.Background(), 1, entity.Status("archived"), "a@x.com")

		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
		if storeCalled {
			t.Error("store must not be called for an invalid status")
		}
	})

	t.Run("delegates valid status changes", func(t *testing.T) {
		mockStore := &mockListingStore{
			UpdateStatusFunc: func(ctx context.Context, id uint, status entity.Status, adminEmail string) (*entity.Listing, error) {
				if id != 1 || status != entity.StatusApproved || adminEmail != "a@x.com" {
					t.Errorf("unexpected arguments: id=%d status=%q admin=%q", id, status, adminEmail)
				}
				return &entity.Listing{ID: 1, Status: status}, nil
			},
		}

		uc := NewModerationUsecase(mockStore)
		l, err := uc.UpdateStatus(context.Background(), 1, entity.StatusApproved, "a@x.com")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.Status != entity.StatusApproved {
			t.Errorf("expected approved, got %q", l.Status)
		}
	})

	t.Run("propagates not found", func(t *testing.T) {
		uc := NewModerationUsecase(&mockListingStore{})
		_, err := uc.UpdateStatus(context.Background(), 999, entity.StatusApproved, "a@x.com")

		if !errors.Is(err, ErrListingNotFound) {
			t.Errorf("expected ErrListingNotFound, got %v", err)
		}
	})
}

func TestModerationUsecase_Edit(t *testing.T) {
	t.Run("rejects empty update before touching the store", func(t *testing.T) {
		storeCalled := false
		mockStore := &mockListingStore{
			UpdateFieldsFunc: func(ctx context.Context, id uint, updates entity.ListingUpdate, adminEmail string) (*entity.Listing, error) {
				storeCalled = true
				return nil, nil
			},
		}

		uc := NewModerationUsecase(mockStore)
		_, err := uc.Edit(context.Background(), 1, entity.ListingUpdate{}, "a@x.com")

		if !errors.Is(err, ErrEmptyUpdate) {
			t.Errorf("expected ErrEmptyUpdate, got %v", err)
		}
		if storeCalled {
			t.Error("store must not be called for an empty update")
		}
	})

	t.Run("delegates non-empty updates", func(t *testing.T) {
		price := 99.0
		mockStore := &mockListingStore{
			UpdateFieldsFunc: func(ctx context.Context, id uint, updates entity.ListingUpdate, adminEmail string) (*entity.Listing, error) {
				if updates.Price == nil || *updates.Price != price {
					t.Errorf("expected price update %v, got %+v", price, updates)
				}
				return &entity.Listing{ID: id, Price: price}, nil
			},
		}

		uc := NewModerationUsecase(mockStore)
		l, err := uc.Edit(context.Background(), 1, entity.ListingUpdate{Price: &price}, "a@x.com")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.Price != price {
			t.Errorf("expected price %v, got %v", price, l.Price)
		}
	})
}
