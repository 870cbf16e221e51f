// services/period_service.go - Period Tracking Business Logic
package services

import (
	"errors"
	"log"
	"time"

	"chaltrack/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PeriodService orchestrates period records: the get-or-materialize flow,
// completion and cancellation transitions, period-membership queries, and the
// merged persisted/virtual todo listings.
type PeriodService struct {
	db             *gorm.DB
	participations *ParticipationService
	challenges     *ChallengeService
	now            func() time.Time
}

func NewPeriodService(db *gorm.DB) *PeriodService {
	return &PeriodService{
		db:             db,
		participations: NewParticipationService(db),
		challenges:     NewChallengeService(db),
		now:            time.Now,
	}
}

// SetClock overrides the current-date source used to anchor new and virtual
// records.
func (s *PeriodService) SetClock(now func() time.Time) {
	s.now = now
}

// GetOrCreateCurrentPeriod returns the participation's newest period record,
// materializing one anchored to the current date when none exists. A
// concurrent create for the same anchor date trips the unique
// (participation_id, target_date) constraint and surfaces as
// ErrDuplicateRecord so the caller can retry.
func (s *PeriodService) GetOrCreateCurrentPeriod(participation *models.ChallengeParticipation) (*models.PeriodRecord, error) {
	recurrence, err := s.recurrenceOf(participation)
	if err != nil {
		return nil, err
	}
	return s.getOrCreateRecord(s.db, participation.ID, recurrence)
}

// Complete fulfills the participation's current obligation. The whole
// get-or-create-then-mutate sequence commits or rolls back as a unit.
func (s *PeriodService) Complete(participation *models.ChallengeParticipation, currentDate time.Time) error {
	recurrence, err := s.recurrenceOf(participation)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		record, err := s.getOrCreateRecord(tx, participation.ID, recurrence)
		if err != nil {
			return err
		}
		if err := record.Complete(recurrence, currentDate); err != nil {
			return err
		}
		return tx.Save(record).Error
	})
}

// CompleteByChallengeAndMember resolves the challenge and the member's active
// participation before delegating to Complete.
func (s *PeriodService) CompleteByChallengeAndMember(challengeID uint, memberID uuid.UUID, currentDate time.Time) error {
	if _, err := s.challenges.FindByID(challengeID); err != nil {
		return err
	}

	participation, err := s.participations.FindActive(challengeID, memberID)
	if err != nil {
		return err
	}

	return s.Complete(participation, currentDate)
}

// CancelComplete reverts a completion by discarding the period record. A
// record must already exist; cancelled periods keep no history and the next
// completion attempt materializes a fresh record.
func (s *PeriodService) CancelComplete(challengeID uint, memberID uuid.UUID, currentDate time.Time) error {
	if _, err := s.challenges.FindByID(challengeID); err != nil {
		return err
	}

	participation, err := s.participations.FindActive(challengeID, memberID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		record, err := s.findRecord(tx, participation.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		if err != nil {
			return err
		}

		record.Cancel()
		return tx.Delete(record).Error
	})
}

// IsCompletedInPeriod reports whether the participation has a persisted record
// whose own period window contains date and which is completed. Absence of a
// record is false, never an error.
func (s *PeriodService) IsCompletedInPeriod(participation *models.ChallengeParticipation, date time.Time) (bool, error) {
	recurrence, err := s.recurrenceOf(participation)
	if err != nil {
		return false, err
	}

	record, err := s.findRecord(s.db, participation.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	within, err := models.WithinPeriod(recurrence, record.TargetDate, date)
	if err != nil {
		return false, err
	}
	return within && record.IsCompleted(), nil
}

// ListTodos returns one view per active participation of the member. A
// participation without a persisted record yields a virtual entry anchored to
// the current date; virtual entries never satisfy the completed filter. A
// participation whose view cannot be derived is skipped so one corrupt row
// never fails the whole listing.
func (s *PeriodService) ListTodos(memberID uuid.UUID, filter TodoFilter) ([]TodoView, error) {
	participations, err := s.participations.GetActiveByMember(memberID)
	if err != nil {
		return nil, err
	}

	todos := make([]TodoView, 0, len(participations))
	for i := range participations {
		view, include, err := s.todoViewFor(&participations[i], filter)
		if err != nil {
			log.Printf("Skipping todo for participation %d: %v", participations[i].ID, err)
			continue
		}
		if include {
			todos = append(todos, view)
		}
	}

	return todos, nil
}

// ListTodosPaged sorts the filtered listing in memory and slices it. The
// listing merges persisted and virtual entries, so the store cannot page it
// directly.
func (s *PeriodService) ListTodosPaged(memberID uuid.UUID, filter TodoFilter, page, pageSize int, sortKey string, descending bool) (*TodoPage, error) {
	todos, err := s.ListTodos(memberID, filter)
	if err != nil {
		return nil, err
	}

	sortTodoViews(todos, sortKey, descending)

	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = defaultTodoPageSize
	}

	return &TodoPage{
		Todos:      pageTodoViews(todos, page, pageSize),
		Page:       page,
		PageSize:   pageSize,
		TotalCount: len(todos),
	}, nil
}

// getOrCreateRecord looks up the participation's newest record and creates one
// anchored to the current date when none exists.
func (s *PeriodService) getOrCreateRecord(tx *gorm.DB, participationID uint, recurrence models.RecurrenceType) (*models.PeriodRecord, error) {
	record, err := s.findRecord(tx, participationID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	target, err := models.AnchorDate(recurrence, s.now())
	if err != nil {
		return nil, err
	}

	record = &models.PeriodRecord{
		ParticipationID: participationID,
		TargetDate:      target,
	}
	if err := tx.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRecord
		}
		return nil, err
	}

	return record, nil
}

// findRecord returns the participation's newest period record. Historical
// records are not pruned; the newest anchor date is the current obligation.
func (s *PeriodService) findRecord(tx *gorm.DB, participationID uint) (*models.PeriodRecord, error) {
	var record models.PeriodRecord
	err := tx.Where("participation_id = ?", participationID).
		Order("target_date DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// recurrenceOf resolves the challenge's recurrence type, loading the challenge
// when the participation arrived without it.
func (s *PeriodService) recurrenceOf(participation *models.ChallengeParticipation) (models.RecurrenceType, error) {
	if participation.Challenge == nil {
		challenge, err := s.challenges.FindByID(participation.ChallengeID)
		if err != nil {
			return "", err
		}
		participation.Challenge = challenge
	}
	if !participation.Challenge.Recurrence.Valid() {
		return "", models.ErrUnknownRecurrence
	}
	return participation.Challenge.Recurrence, nil
}

// todoViewFor derives the member-facing view for one participation, reporting
// whether it matches the filter.
func (s *PeriodService) todoViewFor(participation *models.ChallengeParticipation, filter TodoFilter) (TodoView, bool, error) {
	recurrence, err := s.recurrenceOf(participation)
	if err != nil {
		return TodoView{}, false, err
	}

	record, err := s.findRecord(s.db, participation.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Never materialized: a virtual record can satisfy every filter
		// except completed.
		if filter == TodoFilterCompleted {
			return TodoView{}, false, nil
		}
		target, aerr := models.AnchorDate(recurrence, s.now())
		if aerr != nil {
			return TodoView{}, false, aerr
		}
		virtual := &models.PeriodRecord{ParticipationID: participation.ID, TargetDate: target}
		view, verr := newTodoView(virtual, participation.Challenge, recurrence, false)
		return view, verr == nil, verr
	}
	if err != nil {
		return TodoView{}, false, err
	}

	switch filter {
	case TodoFilterCompleted:
		if !record.IsCompleted() {
			return TodoView{}, false, nil
		}
	case TodoFilterUncompleted:
		if record.IsCompleted() {
			return TodoView{}, false, nil
		}
	}

	view, err := newTodoView(record, participation.Challenge, recurrence, true)
	return view, err == nil, err
}

func newTodoView(record *models.PeriodRecord, challenge *models.Challenge, recurrence models.RecurrenceType, persisted bool) (TodoView, error) {
	end, err := models.PeriodEnd(recurrence, record.TargetDate)
	if err != nil {
		return TodoView{}, err
	}

	return TodoView{
		ID:              record.ID,
		ParticipationID: record.ParticipationID,
		ChallengeID:     challenge.ID,
		ChallengeTitle:  challenge.Title,
		Recurrence:      recurrence,
		PeriodStart:     models.DateOnly(record.TargetDate),
		PeriodEnd:       end,
		Done:            record.Done,
		Persisted:       persisted,
	}, nil
}
