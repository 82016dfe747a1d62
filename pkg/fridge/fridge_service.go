package fridge

import (
	"context"
	"errors"
	"strings"
	"time"

	"frigoo-backend/domain"
	"frigoo-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FridgeService interface {
		AddFridgeItem(ctx context.Context, req domain.AddFridgeItemRequest, userID string) (domain.AddFridgeItemResponse, error)
		UpdateFridgeItem(ctx context.Context, id string, req domain.UpdateFridgeItemRequest, userID string) error
		DeleteFridgeItem(ctx context.Context, id string, userID string) error
		GetFridgeItems(ctx context.Context, userID string, status string, search string, page, limit int) ([]domain.FridgeItemResponse, int64, error)
		GetFridgeItemByID(ctx context.Context, id string, userID string) (domain.FridgeItemResponse, error)
		GetFridgeSummary(ctx context.Context, userID string) (domain.FridgeSummaryResponse, error)
	}

	fridgeService struct {
		fridgeRepository FridgeRepository
	}
)

func NewFridgeService(fridgeRepository FridgeRepository) FridgeService {
	return &fridgeService{fridgeRepository: fridgeRepository}
}

func (s *fridgeService) AddFridgeItem(ctx context.Context, req domain.AddFridgeItemRequest, userID string) (domain.AddFridgeItemResponse, error) {
	expiresAt, err := time.Parse("2006-01-02", req.ExpiresAt)
	if err != nil {
		return domain.AddFridgeItemResponse{}, domain.ErrInvalidExpiryDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AddFridgeItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.FridgeItem{
		ID:        uuid.New(),
		UserID:    userUUID,
		Name:      req.Name,
		Quantity:  req.Quantity,
		Type:      req.Type,
		ExpiresAt: expiresAt,
	}

	if err := s.fridgeRepository.AddFridgeItem(ctx, item); err != nil {
		return domain.AddFridgeItemResponse{}, err
	}

	return domain.AddFridgeItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Quantity:  item.Quantity,
		Type:      item.Type,
		ExpiresAt: item.ExpiresAt,
		Status:    string(Classify(item.ExpiresAt, time.Now())),
		CreatedAt: item.CreatedAt,
	}, nil
}

func (s *fridgeService) UpdateFridgeItem(ctx context.Context, id string, req domain.UpdateFridgeItemRequest, userID string) error {
	item, err := s.fridgeRepository.GetFridgeItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFridgeItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if req.Name != "" {
		item.Name = req.Name
	}

	if req.Quantity != "" {
		item.Quantity = req.Quantity
	}

	if req.Type != "" {
		item.Type = req.Type
	}

	if req.ExpiresAt != "" {
		expiresAt, err := time.Parse("2006-01-02", req.ExpiresAt)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiresAt = expiresAt
	}

	return s.fridgeRepository.UpdateFridgeItem(ctx, item)
}

func (s *fridgeService) DeleteFridgeItem(ctx context.Context, id string, userID string) error {
	item, err := s.fridgeRepository.GetFridgeItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFridgeItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	return s.fridgeRepository.DeleteFridgeItem(ctx, id)
}

func (s *fridgeService) GetFridgeItems(ctx context.Context, userID string, status string, search string, page, limit int) ([]domain.FridgeItemResponse, int64, error) {
	items, err := s.fridgeRepository.GetFridgeItems(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	search = strings.ToLower(search)

	filtered := make([]domain.FridgeItemResponse, 0, len(items))
	for _, item := range items {
		itemStatus := Classify(item.ExpiresAt, now)

		if status != domain.ExpiryFilterAll && status != "" && string(itemStatus) != status {
			continue
		}

		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}

		filtered = append(filtered, domain.FridgeItemResponse{
			ID:              item.ID.String(),
			Name:            item.Name,
			Quantity:        item.Quantity,
			Type:            item.Type,
			ExpiresAt:       item.ExpiresAt,
			Status:          string(itemStatus),
			DaysUntilExpiry: DaysUntilExpiry(item.ExpiresAt, now),
			CreatedAt:       item.CreatedAt,
		})
	}

	count := int64(len(filtered))

	offset := (page - 1) * limit
	if offset >= len(filtered) {
		return []domain.FridgeItemResponse{}, count, nil
	}

	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[offset:end], count, nil
}

func (s *fridgeService) GetFridgeItemByID(ctx context.Context, id string, userID string) (domain.FridgeItemResponse, error) {
	item, err := s.fridgeRepository.GetFridgeItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FridgeItemResponse{}, domain.ErrFridgeItemNotFound
		}
		return domain.FridgeItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.FridgeItemResponse{}, domain.ErrUnauthorizedAccess
	}

	now := time.Now()
	return domain.FridgeItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Quantity:        item.Quantity,
		Type:            item.Type,
		ExpiresAt:       item.ExpiresAt,
		Status:          string(Classify(item.ExpiresAt, now)),
		DaysUntilExpiry: DaysUntilExpiry(item.ExpiresAt, now),
		CreatedAt:       item.CreatedAt,
	}, nil
}

func (s *fridgeService) GetFridgeSummary(ctx context.Context, userID string) (domain.FridgeSummaryResponse, error) {
	items, err := s.fridgeRepository.GetFridgeItems(ctx, userID)
	if err != nil {
		return domain.FridgeSummaryResponse{}, err
	}

	now := time.Now()
	summary := domain.FridgeSummaryResponse{TotalItems: len(items)}
	for _, item := range items {
		switch Classify(item.ExpiresAt, now) {
		case StatusFresh:
			summary.FreshItems++
		case StatusExpiringSoon:
			summary.ExpiringItems++
		case StatusExpired:
			summary.ExpiredItems++
		}
	}

	return summary, nil
}
