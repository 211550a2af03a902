package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPropertyCreated EventType = "property_created"
	EventPropertySold    EventType = "property_sold"
	EventInquiryReceived EventType = "inquiry_received"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// PropertyCreatedPayload payload.
type PropertyCreatedPayload struct {
	Title        string `json:"title"`
	PropertyType string `json:"property_type"`
	Price        int64  `json:"price"`
	AgentID      string `json:"agent_id"`
}

// PropertySoldPayload payload.
type PropertySoldPayload struct {
	Title   string `json:"title"`
	Price   int64  `json:"price"`
	AgentID string `json:"agent_id"`
}

// InquiryReceivedPayload payload.
type InquiryReceivedPayload struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	PropertyID *string `json:"property_id,omitempty"`
}
