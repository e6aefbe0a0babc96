package client

import (
	"context"

	"github.com/chairman-shop/chairman/internal/models"
)

type Repository interface {
	Get(ctx context.Context, id uint) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)

	// Search matches name and phone case-insensitively as substrings.
	Search(ctx context.Context, query string) ([]models.Client, error)

	Create(ctx context.Context, c *models.Client) error
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id uint) error

	// NameTaken checks for another record with the same normalized
	// name; excludeID skips the record being updated.
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)

	// HasAppointments reports whether any appointment, in any state,
	// references the client.
	HasAppointments(ctx context.Context, clientID uint) (bool, error)

	IncrementNoShow(ctx context.Context, clientID uint) error
}
