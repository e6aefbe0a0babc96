package appointment

import (
	"context"
	"time"

	"github.com/chairman-shop/chairman/internal/config"
	domain "github.com/chairman-shop/chairman/internal/domain/schedule"
	"github.com/chairman-shop/chairman/internal/dto"
)

// CheckAvailability answers whether a candidate slot is free on its
// day. ExcludeID skips one appointment, used when rescheduling it
// against itself.
type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

type CheckAvailabilityInput struct {
	Start     time.Time
	Duration  time.Duration
	Buffer    time.Duration
	ExcludeID uint
}

func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in CheckAvailabilityInput,
) (bool, error) {

	dayStart, dayEnd := domain.DayWindow(in.Start)

	existing, err := uc.repo.ListBlockingForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return false, err
	}

	return domain.IsTimeAvailable(existing, in.Start, in.Duration, in.Buffer, in.ExcludeID), nil
}

// ======================================================
// OPEN SLOTS
// ======================================================

// ListOpenSlots walks the business-hours grid at the configured slot
// interval and returns every start the given service could be booked
// at on that day.
type ListOpenSlots struct {
	repo  domain.Repository
	sched config.ScheduleConfig
}

func NewListOpenSlots(repo domain.Repository, sched config.ScheduleConfig) *ListOpenSlots {
	return &ListOpenSlots{repo: repo, sched: sched}
}

func (uc *ListOpenSlots) Execute(
	ctx context.Context,
	date time.Time,
	serviceID uint,
) ([]dto.TimeSlot, error) {

	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(svc.DurationMin) * time.Minute
	buffer := time.Duration(svc.BufferMin) * time.Minute

	dayStart, dayEnd := domain.DayWindow(date)
	open := dayStart.Add(time.Duration(uc.sched.BusinessHoursStart) * time.Hour)
	close := dayStart.Add(time.Duration(uc.sched.BusinessHoursEnd) * time.Hour)

	existing, err := uc.repo.ListBlockingForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	step := time.Duration(uc.sched.SlotIntervalMinutes) * time.Minute

	var slots []dto.TimeSlot
	for cur := open; !cur.Add(duration).After(close); cur = cur.Add(step) {
		if domain.IsTimeAvailable(existing, cur, duration, buffer, 0) {
			slots = append(slots, dto.TimeSlot{
				Start: cur.Format("15:04"),
				End:   cur.Add(duration).Format("15:04"),
			})
		}
	}

	return slots, nil
}
