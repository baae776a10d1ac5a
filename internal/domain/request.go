package domain

import "time"

type RequestType string

const (
	RequestTypeRent RequestType = "rent"
	RequestTypeBuy  RequestType = "buy"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusDeclined  RequestStatus = "declined"
	RequestStatusCompleted RequestStatus = "completed"
)

// PoleRequest records a rent/buy inquiry. OwnerID is a denormalized copy of
// the pole's owner at request time. Multiple pending requests for the same
// pole are allowed; coordination happens off-platform.
type PoleRequest struct {
	ID              int64         `json:"id"`
	PoleID          int64         `json:"pole_id"`
	RequesterID     string        `json:"requester_id"`
	OwnerID         string        `json:"owner_id"`
	RequestType     RequestType   `json:"request_type"`
	Status          RequestStatus `json:"status"`
	Message         *string       `json:"message,omitempty"`
	RentalStartDate *string       `json:"rental_start_date,omitempty"`
	RentalEndDate   *string       `json:"rental_end_date,omitempty"`
	AgreedPrice     *int32        `json:"agreed_price,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// PoleInquiry is the stored fallback for an owner notification when no email
// API key is configured. NotifiedAt is stamped once a later delivery succeeds.
type PoleInquiry struct {
	ID            int64      `json:"id"`
	PoleID        int64      `json:"pole_id"`
	OwnerEmail    string     `json:"owner_email"`
	InquirerEmail string     `json:"inquirer_email"`
	InquirerName  *string    `json:"inquirer_name,omitempty"`
	Message       *string    `json:"message,omitempty"`
	NotifiedAt    *time.Time `json:"notified_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
