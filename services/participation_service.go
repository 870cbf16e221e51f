// services/participation_service.go - Challenge Participation Logic
package services

import (
	"errors"
	"time"

	"chaltrack/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParticipationService struct {
	db         *gorm.DB
	challenges *ChallengeService
}

func NewParticipationService(db *gorm.DB) *ParticipationService {
	return &ParticipationService{
		db:         db,
		challenges: NewChallengeService(db),
	}
}

// JoinChallenge enrolls a member in a challenge. Only one active
// participation may exist per (member, challenge); re-joining after a leave
// creates a new row.
func (s *ParticipationService) JoinChallenge(challengeID uint, memberID uuid.UUID) (*models.ChallengeParticipation, error) {
	if _, err := s.challenges.FindByID(challengeID); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&models.ChallengeParticipation{}).
		Where("challenge_id = ? AND member_id = ? AND left_at IS NULL", challengeID, memberID).
		Count(&count)
	if count > 0 {
		return nil, ErrAlreadyParticipating
	}

	participation := &models.ChallengeParticipation{
		ChallengeID: challengeID,
		MemberID:    memberID,
		JoinedAt:    time.Now().UTC(),
	}

	if err := s.db.Create(participation).Error; err != nil {
		return nil, err
	}

	return participation, nil
}

// LeaveChallenge soft-withdraws the member's active participation.
func (s *ParticipationService) LeaveChallenge(challengeID uint, memberID uuid.UUID) error {
	participation, err := s.FindActive(challengeID, memberID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return s.db.Model(participation).Update("left_at", &now).Error
}

// FindActive returns the member's active participation for a challenge, with
// the challenge preloaded.
func (s *ParticipationService) FindActive(challengeID uint, memberID uuid.UUID) (*models.ChallengeParticipation, error) {
	var participation models.ChallengeParticipation
	err := s.db.Where("challenge_id = ? AND member_id = ? AND left_at IS NULL", challengeID, memberID).
		Preload("Challenge").
		First(&participation).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotParticipating
		}
		return nil, err
	}

	return &participation, nil
}

// GetActiveByMember returns all of a member's active participations with
// challenges preloaded, oldest enrollment first.
func (s *ParticipationService) GetActiveByMember(memberID uuid.UUID) ([]models.ChallengeParticipation, error) {
	var participations []models.ChallengeParticipation
	err := s.db.Where("member_id = ? AND left_at IS NULL", memberID).
		Preload("Challenge").
		Order("joined_at ASC, id ASC").
		Find(&participations).Error

	return participations, err
}

// GetParticipants lists a challenge's active participants with offset paging.
func (s *ParticipationService) GetParticipants(challengeID uint, page, pageSize int) ([]models.ChallengeParticipation, int64, error) {
	if _, err := s.challenges.FindByID(challengeID); err != nil {
		return nil, 0, err
	}

	query := s.db.Model(&models.ChallengeParticipation{}).
		Where("challenge_id = ? AND left_at IS NULL", challengeID)

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

	var participants []models.ChallengeParticipation
	err := query.Preload("Member").
		Order("joined_at ASC, id ASC").
		Limit(pageSize).
		Offset(page * pageSize).
		Find(&participants).Error

	return participants, total, err
}
