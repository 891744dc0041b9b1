package generate_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/massage-bot/schedule-service/internal/domain"
	generateSlots "github.com/massage-bot/schedule-service/internal/usecase/generate_slots"
	"github.com/massage-bot/schedule-service/pkg/types"
)

// GenerateSlotsRequest HTTP request model
// TimeRanges задаются строками вида "10:00-11:00"
type GenerateSlotsRequest struct {
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Weekdays   []int    `json:"weekdays"`
	TimeRanges []string `json:"time_ranges"`
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
	Skipped int  `json:"skipped"`
	Errors  int  `json:"errors"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest() (*generateSlots.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad start_date %q", generateSlots.ErrInvalidDateRange, r.StartDate)
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad end_date %q", generateSlots.ErrInvalidDateRange, r.EndDate)
	}

	ranges := make([]generateSlots.TimeRange, 0, len(r.TimeRanges))
	for _, raw := range r.TimeRanges {
		parts := strings.SplitN(raw, "-", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: bad time range %q, expected HH:MM-HH:MM", generateSlots.ErrInvalidTimeRange, raw)
		}

		startTime, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: bad time range %q: %v", generateSlots.ErrInvalidTimeRange, raw, err)
		}

		endTime, err := types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: bad time range %q: %v", generateSlots.ErrInvalidTimeRange, raw, err)
		}

		ranges = append(ranges, generateSlots.TimeRange{
			StartTime: startTime,
			EndTime:   endTime,
		})
	}

	return &generateSlots.Request{
		StartDate:  startDate,
		EndDate:    endDate,
		Weekdays:   r.Weekdays,
		TimeRanges: ranges,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		Success: true,
		Created: resp.Created,
		Skipped: resp.Skipped,
		Errors:  resp.Errors,
	}
}
