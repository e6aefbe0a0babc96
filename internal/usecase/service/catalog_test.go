package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/chairman-shop/chairman/internal/apperr"
	"github.com/chairman-shop/chairman/internal/audit"
	"github.com/chairman-shop/chairman/internal/config"
	dbpkg "github.com/chairman-shop/chairman/internal/db"
	"github.com/chairman-shop/chairman/internal/infra/repository"
	"github.com/chairman-shop/chairman/internal/models"
	usecase "github.com/chairman-shop/chairman/internal/usecase/service"
	"gorm.io/gorm"
)

func testRules() config.Rules {
	return config.Rules{
		ClientNameMinLen:   2,
		ClientNameMaxLen:   100,
		ServiceNameMinLen:  3,
		ServiceNameMaxLen:  100,
		PhoneMinDigits:     10,
		PhoneMaxDigits:     15,
		MaxPrice:           10000,
		MinDurationMinutes: 5,
		MaxDurationMinutes: 480,
		NotesMaxLen:        500,
	}
}

func newCatalog(t *testing.T) (*usecase.Catalog, *gorm.DB) {
	t.Helper()

	db, err := dbpkg.Open(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	repo := repository.NewServiceGormRepository(db)
	return usecase.NewCatalog(repo, audit.NewDispatcher(audit.New(db)), testRules()), db
}

func TestCreate(t *testing.T) {
	cat, _ := newCatalog(t)
	ctx := context.Background()

	s, err := cat.Create(ctx, usecase.CreateInput{
		Name:        " Beard Trim ",
		Price:       15,
		DurationMin: 20,
		BufferMin:   10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.Name != "Beard Trim" {
		t.Fatalf("name = %q, want trimmed", s.Name)
	}
	if s.BufferMin != 10 {
		t.Fatalf("buffer = %d", s.BufferMin)
	}
}

func TestCreate_Invalid(t *testing.T) {
	cat, _ := newCatalog(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   usecase.CreateInput
	}{
		{"name too short", usecase.CreateInput{Name: "Ha", Price: 10, DurationMin: 30}},
		{"negative price", usecase.CreateInput{Name: "Haircut", Price: -1, DurationMin: 30}},
		{"price over ceiling", usecase.CreateInput{Name: "Haircut", Price: 10001, DurationMin: 30}},
		{"duration too short", usecase.CreateInput{Name: "Haircut", Price: 10, DurationMin: 1}},
		{"duration too long", usecase.CreateInput{Name: "Haircut", Price: 10, DurationMin: 481}},
		{"negative buffer", usecase.CreateInput{Name: "Haircut", Price: 10, DurationMin: 30, BufferMin: -5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cat.Create(ctx, tc.in)
			if !apperr.Is(err, apperr.KindInvalidInput) {
				t.Fatalf("err = %v, want invalid_input", err)
			}
		})
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	cat, _ := newCatalog(t)
	ctx := context.Background()

	in := usecase.CreateInput{Name: "Haircut", Price: 25, DurationMin: 30}
	if _, err := cat.Create(ctx, in); err != nil {
		t.Fatalf("first create: %v", err)
	}

	in.Name = "haircut"
	_, err := cat.Create(ctx, in)
	if !apperr.Is(err, apperr.KindDuplicateEntity) {
		t.Fatalf("err = %v, want duplicate_entity", err)
	}
}

func TestUpdate(t *testing.T) {
	cat, _ := newCatalog(t)
	ctx := context.Background()

	s, err := cat.Create(ctx, usecase.CreateInput{Name: "Haircut", Price: 25, DurationMin: 30})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	price := 30.0
	got, err := cat.Update(ctx, s.ID, usecase.UpdateInput{Price: &price})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Price != 30 {
		t.Fatalf("price = %v", got.Price)
	}
	if got.DurationMin != 30 {
		t.Fatalf("untouched field changed: duration = %d", got.DurationMin)
	}

	bad := 0
	_, err = cat.Update(ctx, s.ID, usecase.UpdateInput{DurationMin: &bad})
	if !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("err = %v, want invalid_input", err)
	}
}

func TestDelete(t *testing.T) {
	cat, db := newCatalog(t)
	ctx := context.Background()

	booked, err := cat.Create(ctx, usecase.CreateInput{Name: "Haircut", Price: 25, DurationMin: 30})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	free, err := cat.Create(ctx, usecase.CreateInput{Name: "Beard Trim", Price: 15, DurationMin: 20})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	client := models.Client{Name: "John Smith"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ap := models.Appointment{
		ClientID:    client.ID,
		ServiceID:   booked.ID,
		StartTime:   start,
		EndTime:     start.Add(30 * time.Minute),
		DurationMin: 30,
		Status:      "scheduled",
	}
	if err := db.Create(&ap).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	err = cat.Delete(ctx, booked.ID)
	if !apperr.Is(err, apperr.KindHasDependentAppointments) {
		t.Fatalf("delete of booked service err = %v, want has_dependent_appointments", err)
	}

	if err := cat.Delete(ctx, free.ID); err != nil {
		t.Fatalf("delete of unbooked service: %v", err)
	}
	if _, err := cat.Get(ctx, free.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("get after delete err = %v, want not_found", err)
	}
}

func TestSearch(t *testing.T) {
	cat, _ := newCatalog(t)
	ctx := context.Background()

	for _, in := range []usecase.CreateInput{
		{Name: "Haircut", Price: 25, DurationMin: 30},
		{Name: "Haircut and Beard", Price: 35, DurationMin: 45},
		{Name: "Kids Cut", Price: 18, DurationMin: 25},
	} {
		if _, err := cat.Create(ctx, in); err != nil {
			t.Fatalf("seed %q: %v", in.Name, err)
		}
	}

	got, err := cat.Search(ctx, "haircut")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("search haircut: %d results, want 2", len(got))
	}
}
