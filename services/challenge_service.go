// services/challenge_service.go - Challenge Lookup and Catalog Logic
package services

import (
	"errors"

	"chaltrack/models"

	"gorm.io/gorm"
)

type ChallengeService struct {
	db *gorm.DB
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{db: db}
}

// CreateChallenge registers a new recurring challenge. The recurrence type is
// validated here so period math never sees an unset cadence.
func (s *ChallengeService) CreateChallenge(title, description string, recurrence models.RecurrenceType) (*models.Challenge, error) {
	if title == "" {
		return nil, errors.New("challenge title is required")
	}
	if !recurrence.Valid() {
		return nil, models.ErrUnknownRecurrence
	}

	challenge := &models.Challenge{
		Title:       title,
		Description: description,
		Recurrence:  recurrence,
	}

	if err := s.db.Create(challenge).Error; err != nil {
		return nil, err
	}

	return challenge, nil
}

// FindByID retrieves a challenge by ID
func (s *ChallengeService) FindByID(challengeID uint) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := s.db.First(&challenge, challengeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}
	return &challenge, nil
}

// GetChallenges returns challenges ordered newest first, optionally filtered
// by a title/description keyword, with offset paging.
func (s *ChallengeService) GetChallenges(keyword string, page, pageSize int) ([]models.Challenge, int64, error) {
	query := s.db.Model(&models.Challenge{})
	if keyword != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	var challenges []models.Challenge
	err := query.Order("created_at DESC").
		Limit(pageSize).
		Offset(page * pageSize).
		Find(&challenges).Error

	return challenges, total, err
}
