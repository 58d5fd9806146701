package store

import (
	"errors"

	"linkup/backend/internal/database"
	"linkup/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestStore owns the connection-request table and its state machine:
// pending -> accepted or pending -> rejected, each transition exactly
// once, only by the receiver.
type RequestStore struct {
	gw *database.Gateway
}

func NewRequestStore(gw *database.Gateway) *RequestStore {
	return &RequestStore{gw: gw}
}

// Send inserts a new pending request. Returns ErrDuplicateRequest when
// any request for the (sender, receiver) pair already exists.
func (s *RequestStore) Send(senderID, receiverID uuid.UUID) (*models.ConnectionRequest, error) {
	req := models.ConnectionRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.StatusPending,
	}

	err := s.gw.Run(func(db *gorm.DB) error {
		return db.Create(&req).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRequest
		}
		return nil, err
	}
	return &req, nil
}

// ListPending returns the receiver's pending requests with the sender's
// profile preloaded.
func (s *RequestStore) ListPending(receiverID uuid.UUID) ([]models.ConnectionRequest, error) {
	var reqs []models.ConnectionRequest
	err := s.gw.Run(func(db *gorm.DB) error {
		return db.Where("receiver_id = ? AND status = ?", receiverID, models.StatusPending).
			Preload("Sender").
			Find(&reqs).Error
	})
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// Accept transitions a pending request to accepted and creates the
// follow edge sender -> receiver, both inside one transaction.
//
// The status update only matches (id, receiver_id, status = pending), so
// concurrent accepts of the same request race at the database: the first
// update wins, the second matches zero rows and gets
// ErrRequestNotActionable. If the edge insert fails because the edge
// already exists, the whole transaction rolls back and the request stays
// pending; the receiver can still reject it to clear the conflict.
func (s *RequestStore) Accept(requestID, receiverID uuid.UUID) (*models.Relationship, error) {
	var rel models.Relationship

	err := s.gw.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ConnectionRequest{}).
			Where("id = ? AND receiver_id = ? AND status = ?", requestID, receiverID, models.StatusPending).
			Update("status", models.StatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRequestNotActionable
		}

		var req models.ConnectionRequest
		if err := tx.First(&req, "id = ?", requestID).Error; err != nil {
			return err
		}

		rel = models.Relationship{
			FollowerID:  req.SenderID,
			FollowingID: req.ReceiverID,
		}
		return tx.Create(&rel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRelationship
		}
		return nil, err
	}
	return &rel, nil
}

// Reject transitions a pending request to rejected. Zero matched rows
// means the request does not exist, belongs to someone else, or was
// already processed.
func (s *RequestStore) Reject(requestID, receiverID uuid.UUID) error {
	return s.gw.Run(func(db *gorm.DB) error {
		res := db.Model(&models.ConnectionRequest{}).
			Where("id = ? AND receiver_id = ? AND status = ?", requestID, receiverID, models.StatusPending).
			Update("status", models.StatusRejected)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRequestNotActionable
		}
		return nil
	})
}
