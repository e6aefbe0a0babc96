package client

import (
	"context"

	"github.com/chairman-shop/chairman/internal/apperr"
	"github.com/chairman-shop/chairman/internal/audit"
	"github.com/chairman-shop/chairman/internal/config"
	"github.com/chairman-shop/chairman/internal/models"
	"github.com/chairman-shop/chairman/internal/validate"
)

// Registry is the client-facing CRUD surface: validation, duplicate
// detection, and deletion guarded by referencing appointments.
type Registry struct {
	repo  Repository
	audit *audit.Dispatcher
	rules config.Rules
}

func NewRegistry(repo Repository, audit *audit.Dispatcher, rules config.Rules) *Registry {
	return &Registry{
		repo:  repo,
		audit: audit,
		rules: rules,
	}
}

// ======================================================
// INPUTS
// ======================================================

type CreateInput struct {
	Name  string
	Phone string
	Notes string
}

type UpdateInput struct {
	Name  *string
	Phone *string
	Notes *string
}

// ======================================================
// OPERATIONS
// ======================================================

func (r *Registry) Create(ctx context.Context, in CreateInput) (*models.Client, error) {
	if err := validate.ClientName(in.Name, r.rules); err != nil {
		r.fail("client_created", nil, err)
		return nil, err
	}
	if err := validate.Phone(in.Phone, r.rules); err != nil {
		r.fail("client_created", nil, err)
		return nil, err
	}
	if err := validate.Notes(in.Notes, r.rules); err != nil {
		r.fail("client_created", nil, err)
		return nil, err
	}

	name := validate.Sanitize(in.Name)

	taken, err := r.repo.NameTaken(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		err := apperr.Duplicate("client", name)
		r.fail("client_created", nil, err)
		return nil, err
	}

	c := &models.Client{
		Name:  name,
		Phone: validate.FormatPhone(validate.Sanitize(in.Phone)),
		Notes: validate.Sanitize(in.Notes),
	}

	if err := r.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	r.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &c.ID,
	})

	return c, nil
}

func (r *Registry) Update(ctx context.Context, id uint, in UpdateInput) (*models.Client, error) {
	c, err := r.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if err := validate.ClientName(*in.Name, r.rules); err != nil {
			r.fail("client_updated", &id, err)
			return nil, err
		}
		name := validate.Sanitize(*in.Name)

		taken, err := r.repo.NameTaken(ctx, name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			err := apperr.Duplicate("client", name)
			r.fail("client_updated", &id, err)
			return nil, err
		}
		c.Name = name
	}

	if in.Phone != nil {
		if err := validate.Phone(*in.Phone, r.rules); err != nil {
			r.fail("client_updated", &id, err)
			return nil, err
		}
		c.Phone = validate.FormatPhone(validate.Sanitize(*in.Phone))
	}

	if in.Notes != nil {
		if err := validate.Notes(*in.Notes, r.rules); err != nil {
			r.fail("client_updated", &id, err)
			return nil, err
		}
		c.Notes = validate.Sanitize(*in.Notes)
	}

	if err := r.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	r.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &c.ID,
	})

	return c, nil
}

// Delete is unconditionally blocked while any appointment references
// the client, past or future. History integrity beats convenience.
func (r *Registry) Delete(ctx context.Context, id uint) error {
	if _, err := r.repo.Get(ctx, id); err != nil {
		return err
	}

	has, err := r.repo.HasAppointments(ctx, id)
	if err != nil {
		return err
	}
	if has {
		err := apperr.HasDependentAppointments("client")
		r.fail("client_deleted", &id, err)
		return err
	}

	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}

	r.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
	})

	return nil
}

func (r *Registry) Get(ctx context.Context, id uint) (*models.Client, error) {
	return r.repo.Get(ctx, id)
}

func (r *Registry) List(ctx context.Context) ([]models.Client, error) {
	return r.repo.List(ctx)
}

func (r *Registry) Search(ctx context.Context, query string) ([]models.Client, error) {
	return r.repo.Search(ctx, query)
}

// IncrementNoShow is the registry-side mutation point used when a
// booked appointment is marked missed.
func (r *Registry) IncrementNoShow(ctx context.Context, id uint) error {
	if err := r.repo.IncrementNoShow(ctx, id); err != nil {
		return err
	}

	r.audit.Dispatch(audit.Event{
		Action:   "client_no_show_incremented",
		Entity:   "client",
		EntityID: &id,
	})

	return nil
}

func (r *Registry) fail(action string, id *uint, err error) {
	outcome := "failure"
	if kind, ok := apperr.KindOf(err); ok {
		outcome = string(kind)
	}
	r.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "client",
		EntityID: id,
		Outcome:  outcome,
	})
}
