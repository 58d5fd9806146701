package store

import (
	"errors"

	"linkup/backend/internal/database"
	"linkup/backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore owns the user table.
type UserStore struct {
	gw *database.Gateway
}

func NewUserStore(gw *database.Gateway) *UserStore {
	return &UserStore{gw: gw}
}

// Create hashes the raw password and inserts a new user. Returns
// ErrDuplicateUser when the username or email is already taken.
func (s *UserStore) Create(username, email, password string) (*models.Profile, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}

	err = s.gw.Run(func(db *gorm.DB) error {
		return db.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}

// FindByEmail returns the full record, password hash included. Only the
// login path should use it.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.gw.Run(func(db *gorm.DB) error {
		return db.Where("email = ?", email).First(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID returns the public profile view.
func (s *UserStore) FindByID(id uuid.UUID) (*models.Profile, error) {
	var user models.User
	err := s.gw.Run(func(db *gorm.DB) error {
		return db.First(&user, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

// Search returns profiles matching the query by username, excluding the
// viewer, with the total match count for pagination.
func (s *UserStore) Search(viewerID uuid.UUID, query string, limit, offset int) ([]models.Profile, int64, error) {
	var users []models.User
	var total int64

	err := s.gw.Run(func(db *gorm.DB) error {
		q := db.Model(&models.User{}).Where("id <> ?", viewerID)
		if query != "" {
			q = q.Where("LOWER(username) LIKE LOWER(?)", "%"+query+"%")
		}
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return q.Limit(limit).Offset(offset).Find(&users).Error
	})
	if err != nil {
		return nil, 0, err
	}

	profiles := make([]models.Profile, len(users))
	for i, u := range users {
		profiles[i] = u.Profile()
	}
	return profiles, total, nil
}

// VerifyPassword checks a raw password against the stored hash.
func (s *UserStore) VerifyPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
