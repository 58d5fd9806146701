package store

import (
	"errors"

	"linkup/backend/internal/database"
	"linkup/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultSuggestionLimit bounds Suggest when the caller passes no limit.
const DefaultSuggestionLimit = 5

// Stats holds the two follow counts for a user.
type Stats struct {
	FollowingCount int64 `json:"following_count"`
	FollowersCount int64 `json:"followers_count"`
}

// RelationshipStore owns the follow-edge table.
type RelationshipStore struct {
	gw *database.Gateway
}

func NewRelationshipStore(gw *database.Gateway) *RelationshipStore {
	return &RelationshipStore{gw: gw}
}

// Follow inserts the edge follower -> following. Returns
// ErrDuplicateRelationship when the edge already exists.
func (s *RelationshipStore) Follow(followerID, followingID uuid.UUID) (*models.Relationship, error) {
	rel := models.Relationship{
		FollowerID:  followerID,
		FollowingID: followingID,
	}

	err := s.gw.Run(func(db *gorm.DB) error {
		return db.Create(&rel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRelationship
		}
		return nil, err
	}
	return &rel, nil
}

// Unfollow deletes the matching edge. Deleting an edge that does not
// exist is not an error.
func (s *RelationshipStore) Unfollow(followerID, followingID uuid.UUID) error {
	return s.gw.Run(func(db *gorm.DB) error {
		return db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&models.Relationship{}).Error
	})
}

// ListFollowing returns the user's outgoing edges with the followed
// user's profile preloaded. Order is not defined.
func (s *RelationshipStore) ListFollowing(userID uuid.UUID) ([]models.Relationship, error) {
	var rels []models.Relationship
	err := s.gw.Run(func(db *gorm.DB) error {
		return db.Where("follower_id = ?", userID).
			Preload("Following").
			Find(&rels).Error
	})
	if err != nil {
		return nil, err
	}
	return rels, nil
}

// Stats computes both follow counts in a single round trip.
func (s *RelationshipStore) Stats(userID uuid.UUID) (*Stats, error) {
	var stats Stats
	err := s.gw.Run(func(db *gorm.DB) error {
		return db.Raw(
			`SELECT
				(SELECT COUNT(*) FROM relationships WHERE follower_id = ?) AS following_count,
				(SELECT COUNT(*) FROM relationships WHERE following_id = ?) AS followers_count`,
			userID, userID,
		).Scan(&stats).Error
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Suggest returns up to limit users the given user does not follow yet,
// excluding the user themselves. No ranking is applied.
func (s *RelationshipStore) Suggest(userID uuid.UUID, limit int) ([]models.Profile, error) {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	var users []models.User
	err := s.gw.Run(func(db *gorm.DB) error {
		return db.Where("id <> ?", userID).
			Where("id NOT IN (?)",
				db.Model(&models.Relationship{}).
					Select("following_id").
					Where("follower_id = ?", userID),
			).
			Limit(limit).
			Find(&users).Error
	})
	if err != nil {
		return nil, err
	}

	profiles := make([]models.Profile, len(users))
	for i, u := range users {
		profiles[i] = u.Profile()
	}
	return profiles, nil
}
