package dto

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/shared/mapper"
)

type QueueEntryDTO struct {
	ID          uint                   `json:"id"`
	EventID     string                 `json:"event_id"`
	EventKey    string                 `json:"event_key"`
	ComplaintID *uint                  `json:"complaint_id"`
	Channel     string                 `json:"channel"`
	Recipient   string                 `json:"recipient"`
	Subject     string                 `json:"subject"`
	Payload     string                 `json:"payload"`
	Data        map[string]interface{} `json:"data"`
	Status      string                 `json:"status"`
	Attempts    int                    `json:"attempts"`
	CreatedAt   time.Time              `json:"created_at"`
	SentAt      *time.Time             `json:"sent_at"`
	Error       string                 `json:"error,omitempty"`
}

type TemplateDTO struct {
	ID        uint      `json:"id"`
	EventKey  string    `json:"event_key"`
	Channel   string    `json:"channel"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpsertTemplateRequest struct {
	EventKey string `json:"event_key" binding:"required"`
	Channel  string `json:"channel" binding:"required,max=20"`
	Title    string `json:"title" binding:"max=200"`
	Body     string `json:"body" binding:"required"`
	Enabled  *bool  `json:"enabled"`
}

type ClaimRequest struct {
	Limit int `json:"limit" binding:"omitempty,min=1,max=500"`
}

// DeliveryReport is what an external worker sends back for a claimed entry.
type DeliveryReport struct {
	Status string `json:"status" binding:"required,oneof=SENT FAILED"`
	Error  string `json:"error"`
}

type DispatchResult struct {
	Requeued int64 `json:"requeued"`
	Claimed  int   `json:"claimed"`
	Sent     int   `json:"sent"`
	Failed   int   `json:"failed"`
}

func ToQueueEntryDTO(e *notification.QueueEntry) *QueueEntryDTO {
	if e == nil {
		return nil
	}
	return &QueueEntryDTO{
		ID:          e.ID(),
		EventID:     e.EventID(),
		EventKey:    e.EventKey().String(),
		ComplaintID: e.ComplaintID(),
		Channel:     e.Channel(),
		Recipient:   e.Recipient(),
		Subject:     e.Subject(),
		Payload:     e.Payload(),
		Data:        e.Data(),
		Status:      e.Status().String(),
		Attempts:    e.Attempts(),
		CreatedAt:   e.CreatedAt(),
		SentAt:      e.SentAt(),
		Error:       e.LastError(),
	}
}

func ToQueueEntryDTOList(entries []*notification.QueueEntry) []*QueueEntryDTO {
	out := mapper.MapSlice(entries, ToQueueEntryDTO)
	if out == nil {
		return []*QueueEntryDTO{}
	}
	return out
}

func ToTemplateDTO(t *notification.Template) *TemplateDTO {
	if t == nil {
		return nil
	}
	return &TemplateDTO{
		ID:        t.ID(),
		EventKey:  t.EventKey().String(),
		Channel:   t.Channel(),
		Title:     t.Title(),
		Body:      t.Body(),
		Enabled:   t.Enabled(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func ToTemplateDTOList(templates []*notification.Template) []*TemplateDTO {
	out := mapper.MapSlice(templates, ToTemplateDTO)
	if out == nil {
		return []*TemplateDTO{}
	}
	return out
}
