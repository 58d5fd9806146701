package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestStatus defines the state of a connection request.
type RequestStatus string

const (
	// StatusPending means the request was sent and awaits receiver action.
	StatusPending RequestStatus = "pending"

	// StatusAccepted means the receiver accepted; a Relationship edge was
	// created in the same transaction. Terminal.
	StatusAccepted RequestStatus = "accepted"

	// StatusRejected means the receiver declined. Terminal.
	StatusRejected RequestStatus = "rejected"
)

// ConnectionRequest is a pending/accepted/rejected request from one user
// to connect with another. At most one row exists per (sender, receiver)
// pair, whatever its status.
type ConnectionRequest struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	SenderID   uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_connection_requests_pair" json:"sender_id"`
	ReceiverID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_connection_requests_pair" json:"receiver_id"`
	Status     RequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`

	Sender   *User `gorm:"foreignKey:SenderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (ConnectionRequest) TableName() string {
	return "connection_requests"
}

func (r *ConnectionRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
