package sync_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/massage-bot/schedule-service/internal/domain"
	"github.com/massage-bot/schedule-service/internal/integrations/gcal"
	slotRepo "github.com/massage-bot/schedule-service/internal/infra/storage/slot"
	"github.com/massage-bot/schedule-service/pkg/ptr"
	"github.com/massage-bot/schedule-service/pkg/types"
)

// UseCase use case синхронизации занятости из внешнего календаря
// События календаря превращаются в заблокированные слоты; забронированные
// слоты синхронизация никогда не трогает
type UseCase struct {
	calendar CalendarClient
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar CalendarClient, slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		calendar: calendar,
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute подтягивает события за период и отражает их в слотах
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.StartDate.IsZero() || req.EndDate.IsZero() || req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	events, err := uc.calendar.GetEvents(ctx, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("SyncCalendar: failed to fetch events: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	uc.logger.Info("SyncCalendar: fetched %d events for %s..%s",
		len(events), req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	resp := &Response{}

	for _, event := range events {
		if err := uc.syncEvent(ctx, event, resp); err != nil {
			uc.logger.Warn("SyncCalendar: event %s skipped: %v", event.ID, err)
			resp.Skipped++
		}
	}

	uc.logger.Info("SyncCalendar: done, created=%d updated=%d skipped=%d",
		resp.Created, resp.Updated, resp.Skipped)

	return resp, nil
}

func (uc *UseCase) syncEvent(ctx context.Context, event gcal.Event, resp *Response) error {
	if event.ID == "" {
		return errors.New("empty event id")
	}

	date, err := time.Parse(domain.DateFormat, event.Date)
	if err != nil {
		return fmt.Errorf("bad date %q: %v", event.Date, err)
	}

	startTime, err := types.NewTimeStringFromString(event.StartTime)
	if err != nil {
		return fmt.Errorf("bad start time %q: %v", event.StartTime, err)
	}

	endTime, err := types.NewTimeStringFromString(event.EndTime)
	if err != nil {
		return fmt.Errorf("bad end time %q: %v", event.EndTime, err)
	}

	if !startTime.IsBefore(endTime) {
		return fmt.Errorf("bad time range %s-%s", startTime, endTime)
	}

	existing, err := uc.slotRepo.GetByGoogleEventID(ctx, event.ID)
	if err != nil && !errors.Is(err, slotRepo.ErrSlotNotFound) {
		return fmt.Errorf("lookup by event id: %v", err)
	}

	if existing == nil {
		_, err := uc.slotRepo.Create(ctx, &domain.Slot{
			Date:          date,
			StartTime:     startTime,
			EndTime:       endTime,
			Status:        domain.SlotBlocked,
			GoogleEventID: ptr.Ptr(event.ID),
		})
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotAlreadyExists) {
				// Слот с такой же идентичностью уже заведен вручную
				resp.Skipped++
				return nil
			}
			return fmt.Errorf("create slot: %v", err)
		}
		resp.Created++
		return nil
	}

	// Забронированный слот принадлежит клиенту, расписанию календаря он
	// больше не подчиняется
	if existing.IsBooked() {
		resp.Skipped++
		return nil
	}

	if existing.StartTime == startTime && existing.EndTime == endTime && existing.Date.Format(domain.DateFormat) == event.Date {
		resp.Skipped++
		return nil
	}

	if err := uc.slotRepo.UpdateTimes(ctx, existing.ID, startTime, endTime); err != nil {
		return fmt.Errorf("update slot times: %v", err)
	}

	resp.Updated++
	return nil
}
