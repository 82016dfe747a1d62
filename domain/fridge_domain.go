package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFridgeItem    = "fridge item added successfully"
	MessageSuccessUpdateFridgeItem = "fridge item updated successfully"
	MessageSuccessDeleteFridgeItem = "fridge item deleted successfully"
	MessageSuccessGetFridgeItems   = "fridge items retrieved successfully"
	MessageSuccessGetFridgeSummary = "fridge summary retrieved successfully"

	MessageFailedAddFridgeItem    = "failed to add fridge item"
	MessageFailedUpdateFridgeItem = "failed to update fridge item"
	MessageFailedDeleteFridgeItem = "failed to delete fridge item"
	MessageFailedGetFridgeItems   = "failed to retrieve fridge items"
	MessageFailedGetFridgeSummary = "failed to retrieve fridge summary"

	ErrFridgeItemNotFound = errors.New("fridge item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidFoodType    = errors.New("invalid food type")
	ErrUnauthorizedAccess = errors.New("unauthorized access to fridge item")
)

// FoodTypes is the fixed category enumeration a fridge item must belong to.
var FoodTypes = []string{
	"Fruits",
	"Légumes",
	"Produits laitiers",
	"Viandes",
	"Poissons",
	"Céréales",
	"Boissons",
	"Sauces",
	"Épices",
	"Autres",
}

// Expiry filter values accepted by the list endpoint.
const (
	ExpiryFilterAll     = "all"
	ExpiryFilterExpired = "expired"
	ExpiryFilterSoon    = "soon"
	ExpiryFilterOk      = "ok"
)

type (
	AddFridgeItemRequest struct {
		Name      string `json:"name" validate:"required"`
		Quantity  string `json:"quantity" validate:"required"`
		Type      string `json:"type" validate:"required,foodtype"`
		ExpiresAt string `json:"expires_at" validate:"required"`
	}

	AddFridgeItemResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Quantity  string    `json:"quantity"`
		Type      string    `json:"type"`
		ExpiresAt time.Time `json:"expires_at"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}

	// UpdateFridgeItemRequest lists the mutable fields explicitly. An empty
	// field is left untouched; created_at is never updatable.
	UpdateFridgeItemRequest struct {
		Name      string `json:"name" validate:"omitempty"`
		Quantity  string `json:"quantity" validate:"omitempty"`
		Type      string `json:"type" validate:"omitempty,foodtype"`
		ExpiresAt string `json:"expires_at" validate:"omitempty"`
	}

	FridgeItemResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Quantity        string    `json:"quantity"`
		Type            string    `json:"type"`
		ExpiresAt       time.Time `json:"expires_at"`
		Status          string    `json:"status"`
		DaysUntilExpiry int       `json:"days_until_expiry"`
		CreatedAt       time.Time `json:"created_at"`
	}

	FridgeSummaryResponse struct {
		TotalItems    int `json:"total_items"`
		FreshItems    int `json:"fresh_items"`
		ExpiringItems int `json:"expiring_items"`
		ExpiredItems  int `json:"expired_items"`
	}
)
