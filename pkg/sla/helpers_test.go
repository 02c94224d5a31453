package sla

import (
	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/pkg/models"
)

func fakeJob(id, requestID string, chatID int64, level int) *ent.TimerJob {
	return &ent.TimerJob{
		ID: id,
		Payload: models.TimerPayload{
			RequestID: requestID,
			ChatID:    chatID,
			Level:     level,
		},
	}
}
