package service

import (
	"context"

	"github.com/chairman-shop/chairman/internal/models"
)

type Repository interface {
	Get(ctx context.Context, id uint) (*models.Service, error)
	List(ctx context.Context) ([]models.Service, error)
	Search(ctx context.Context, query string) ([]models.Service, error)

	Create(ctx context.Context, s *models.Service) error
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id uint) error

	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	HasAppointments(ctx context.Context, serviceID uint) (bool, error)
}
