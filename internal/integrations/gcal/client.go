package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент коллаборатора синхронизации с внешним календарем
// Сам по себе календарь (Google Calendar) - внешняя система; движок общается
// только с её HTTP фасадом и видит события в нормализованном виде
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента календаря
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

const dateLayout = "2006-01-02"

// GetEvents получает события календаря за период (границы включительно)
func (c *Client) GetEvents(ctx context.Context, startDate, endDate time.Time) ([]Event, error) {
	url := fmt.Sprintf("%s/internal/calendar/events?start_date=%s&end_date=%s",
		c.baseURL, startDate.Format(dateLayout), endDate.Format(dateLayout))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("gcal: request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return nil, fmt.Errorf("%w: status code %d", ErrUnavailable, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var parsed eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("gcal: fetched %d events for period %s..%s",
		len(parsed.Events), startDate.Format(dateLayout), endDate.Format(dateLayout))
	return parsed.Events, nil
}
