package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MeetExchange     = "meet"
	MeetTriggerQueue = "meet.trigger"

	RoutingKeyFetchRequested = "meet.fetch.requested"
	RoutingKeyBatchIngested  = "meet.batch.ingested"
)

// FetchRequestedMessage is published by the external scheduler to
// request ingestion of one calendar day. An empty date means
// "yesterday", matching the midnight trigger.
type FetchRequestedMessage struct {
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	RequestedBy string `json:"requested_by,omitempty"`
}

// ActivityBatchIngestedMessage is emitted after a day's records have
// been pushed to the analytics store.
type ActivityBatchIngestedMessage struct {
	BatchID     uuid.UUID `json:"batch_id" validate:"required"`
	Date        string    `json:"date" validate:"required"`
	RecordCount int       `json:"record_count"`
	IngestedAt  time.Time `json:"ingested_at" validate:"required"`
}
