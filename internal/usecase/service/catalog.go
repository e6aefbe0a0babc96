package service

import (
	"context"

	"github.com/chairman-shop/chairman/internal/apperr"
	"github.com/chairman-shop/chairman/internal/audit"
	"github.com/chairman-shop/chairman/internal/config"
	"github.com/chairman-shop/chairman/internal/models"
	"github.com/chairman-shop/chairman/internal/validate"
)

// Catalog mirrors the client registry for service records: name unique
// within the catalog, price and duration bounded, deletion blocked by
// referencing appointments.
type Catalog struct {
	repo  Repository
	audit *audit.Dispatcher
	rules config.Rules
}

func NewCatalog(repo Repository, audit *audit.Dispatcher, rules config.Rules) *Catalog {
	return &Catalog{
		repo:  repo,
		audit: audit,
		rules: rules,
	}
}

// ======================================================
// INPUTS
// ======================================================

type CreateInput struct {
	Name        string
	Price       float64
	DurationMin int
	BufferMin   int
}

type UpdateInput struct {
	Name        *string
	Price       *float64
	DurationMin *int
	BufferMin   *int
}

// ======================================================
// OPERATIONS
// ======================================================

func (c *Catalog) Create(ctx context.Context, in CreateInput) (*models.Service, error) {
	if err := validate.ServiceName(in.Name, c.rules); err != nil {
		c.fail("service_created", nil, err)
		return nil, err
	}
	if err := validate.Price(in.Price, c.rules); err != nil {
		c.fail("service_created", nil, err)
		return nil, err
	}
	if err := validate.Duration(in.DurationMin, c.rules); err != nil {
		c.fail("service_created", nil, err)
		return nil, err
	}
	if err := validate.Buffer(in.BufferMin, c.rules); err != nil {
		c.fail("service_created", nil, err)
		return nil, err
	}

	name := validate.Sanitize(in.Name)

	taken, err := c.repo.NameTaken(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		err := apperr.Duplicate("service", name)
		c.fail("service_created", nil, err)
		return nil, err
	}

	s := &models.Service{
		Name:        name,
		Price:       in.Price,
		DurationMin: in.DurationMin,
		BufferMin:   in.BufferMin,
	}

	if err := c.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	c.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: &s.ID,
	})

	return s, nil
}

func (c *Catalog) Update(ctx context.Context, id uint, in UpdateInput) (*models.Service, error) {
	s, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if err := validate.ServiceName(*in.Name, c.rules); err != nil {
			c.fail("service_updated", &id, err)
			return nil, err
		}
		name := validate.Sanitize(*in.Name)

		taken, err := c.repo.NameTaken(ctx, name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			err := apperr.Duplicate("service", name)
			c.fail("service_updated", &id, err)
			return nil, err
		}
		s.Name = name
	}

	if in.Price != nil {
		if err := validate.Price(*in.Price, c.rules); err != nil {
			c.fail("service_updated", &id, err)
			return nil, err
		}
		s.Price = *in.Price
	}

	if in.DurationMin != nil {
		if err := validate.Duration(*in.DurationMin, c.rules); err != nil {
			c.fail("service_updated", &id, err)
			return nil, err
		}
		s.DurationMin = *in.DurationMin
	}

	if in.BufferMin != nil {
		if err := validate.Buffer(*in.BufferMin, c.rules); err != nil {
			c.fail("service_updated", &id, err)
			return nil, err
		}
		s.BufferMin = *in.BufferMin
	}

	if err := c.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	c.audit.Dispatch(audit.Event{
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &s.ID,
	})

	return s, nil
}

func (c *Catalog) Delete(ctx context.Context, id uint) error {
	if _, err := c.repo.Get(ctx, id); err != nil {
		return err
	}

	has, err := c.repo.HasAppointments(ctx, id)
	if err != nil {
		return err
	}
	if has {
		err := apperr.HasDependentAppointments("service")
		c.fail("service_deleted", &id, err)
		return err
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}

	c.audit.Dispatch(audit.Event{
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})

	return nil
}

func (c *Catalog) Get(ctx context.Context, id uint) (*models.Service, error) {
	return c.repo.Get(ctx, id)
}

func (c *Catalog) List(ctx context.Context) ([]models.Service, error) {
	return c.repo.List(ctx)
}

func (c *Catalog) Search(ctx context.Context, query string) ([]models.Service, error) {
	return c.repo.Search(ctx, query)
}

func (c *Catalog) fail(action string, id *uint, err error) {
	outcome := "failure"
	if kind, ok := apperr.KindOf(err); ok {
		outcome = string(kind)
	}
	c.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "service",
		EntityID: id,
		Outcome:  outcome,
	})
}
