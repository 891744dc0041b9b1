package generate_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/massage-bot/schedule-service/internal/domain"
	slotRepo "github.com/massage-bot/schedule-service/internal/infra/storage/slot"
)

// UseCase use case массовой генерации слотов по шаблону расписания
// Каждый слот создается отдельной вставкой: конфликт по идентичности
// (дата, начало, конец) считается пропуском, а не ошибкой, поэтому
// повторный запуск с теми же параметрами идемпотентен
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute генерирует слоты для всех подходящих дат диапазона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := uc.validate(req); err != nil {
		return nil, err
	}

	uc.logger.Info("GenerateSlots: generating slots from %s to %s, %d weekdays, %d time ranges",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		len(req.Weekdays), len(req.TimeRanges))

	weekdays := make(map[time.Weekday]bool, len(req.Weekdays))
	for _, wd := range req.Weekdays {
		weekdays[time.Weekday(wd)] = true
	}

	resp := &Response{}

	for date := req.StartDate; !date.After(req.EndDate); date = date.AddDate(0, 0, 1) {
		if !weekdays[date.Weekday()] {
			continue
		}

		for _, tr := range req.TimeRanges {
			_, err := uc.slotRepo.Create(ctx, &domain.Slot{
				Date:      date,
				StartTime: tr.StartTime,
				EndTime:   tr.EndTime,
				Status:    domain.SlotAvailable,
			})

			switch {
			case err == nil:
				resp.Created++
			case errors.Is(err, slotRepo.ErrSlotAlreadyExists):
				resp.Skipped++
			default:
				uc.logger.Error("GenerateSlots: failed to create slot %s %s-%s: %v",
					date.Format(domain.DateFormat), tr.StartTime, tr.EndTime, err)
				resp.Errors++
			}
		}
	}

	uc.logger.Info("GenerateSlots: done, created=%d skipped=%d errors=%d",
		resp.Created, resp.Skipped, resp.Errors)

	return resp, nil
}

func (uc *UseCase) validate(req *Request) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidDateRange)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidDateRange)
	}

	if req.EndDate.Sub(req.StartDate) > time.Duration(domain.MaxBulkRangeDays)*24*time.Hour {
		return fmt.Errorf("%w: range exceeds %d days", ErrInvalidDateRange, domain.MaxBulkRangeDays)
	}

	if len(req.Weekdays) == 0 {
		return fmt.Errorf("%w: at least one weekday is required", ErrInvalidInput)
	}

	if len(req.TimeRanges) == 0 {
		return fmt.Errorf("%w: at least one time range is required", ErrInvalidInput)
	}

	for _, wd := range req.Weekdays {
		if wd < 0 || wd > 6 {
			return fmt.Errorf("%w: weekday %d is out of range 0..6", ErrInvalidWeekday, wd)
		}
	}

	for _, tr := range req.TimeRanges {
		if !tr.StartTime.IsBefore(tr.EndTime) {
			return fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, tr.StartTime, tr.EndTime)
		}
	}

	return nil
}
