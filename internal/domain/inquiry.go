package domain

import "time"

// InquiryStatus tracks how far an inquiry has been handled.
type InquiryStatus string

const (
	InquiryStatusNew     InquiryStatus = "new"
	InquiryStatusRead    InquiryStatus = "read"
	InquiryStatusReplied InquiryStatus = "replied"
	InquiryStatusClosed  InquiryStatus = "closed"
)

// ValidInquiryStatus reports whether the value is an enumerated status.
func ValidInquiryStatus(s InquiryStatus) bool {
	switch s {
	case InquiryStatusNew, InquiryStatusRead, InquiryStatusReplied, InquiryStatusClosed:
		return true
	}
	return false
}

// Inquiry is a contact message from a visitor, optionally tied to a listing.
type Inquiry struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Message    string
	PropertyID *string
	Status     InquiryStatus
	CreatedAt  time.Time
}
