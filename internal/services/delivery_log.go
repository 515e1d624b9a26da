package services

import (
	"sync"
	"time"
)

// DeliveryLog remembers which reminders already went out on which day, so a
// sweep that reruns within the same due window does not re-fire them. It is
// in-memory only; a restart forgets the day's deliveries.
type DeliveryLog struct {
	mu   sync.Mutex
	sent map[string]time.Time
}

func NewDeliveryLog() *DeliveryLog {
	return &DeliveryLog{sent: make(map[string]time.Time)}
}

func (deliveryLog *DeliveryLog) DeliveredOn(reminderID string, day time.Time) bool {
	deliveryLog.mu.Lock()
	defer deliveryLog.mu.Unlock()

	sentOn, ok := deliveryLog.sent[reminderID]
	return ok && sentOn.Format("2006-01-02") == day.Format("2006-01-02")
}

func (deliveryLog *DeliveryLog) MarkDelivered(reminderID string, day time.Time) {
	deliveryLog.mu.Lock()
	defer deliveryLog.mu.Unlock()

	deliveryLog.sent[reminderID] = day
	if len(deliveryLog.sent) > 500 {
		deliveryLog.sent = map[string]time.Time{reminderID: day}
	}
}
