package gcal

// Event событие внешнего календаря за период синхронизации
// Движок интерпретирует только дату, время и идентификатор;
// остальное содержимое события принадлежит коллаборатору синхронизации
type Event struct {
	ID        string `json:"id"`
	Date      string `json:"date"`       // "2024-12-20"
	StartTime string `json:"start_time"` // "10:00"
	EndTime   string `json:"end_time"`   // "11:00"
	Summary   string `json:"summary,omitempty"`
}

// eventsResponse ответ коллаборатора со списком событий
type eventsResponse struct {
	Events []Event `json:"events"`
}
