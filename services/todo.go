// services/todo.go - Todo View Types and In-Memory Sort/Paging
package services

import (
	"sort"
	"time"

	"chaltrack/models"
)

// TodoFilter selects which obligations a listing returns.
type TodoFilter string

const (
	TodoFilterAll         TodoFilter = "all"
	TodoFilterCompleted   TodoFilter = "completed"
	TodoFilterUncompleted TodoFilter = "uncompleted"
)

// Sort keys accepted by ListTodosPaged. Anything else falls back to id order.
const (
	TodoSortTitle       = "title"
	TodoSortPeriodStart = "period_start"
	TodoSortPeriodEnd   = "period_end"
	TodoSortRecurrence  = "recurrence"
)

const defaultTodoPageSize = 20

// TodoView is one member obligation for the current period. Persisted
// distinguishes materialized records from projections that only exist in
// memory; a virtual view always has a zero ID and Done=false.
type TodoView struct {
	ID              uint                  `json:"id"`
	ParticipationID uint                  `json:"participation_id"`
	ChallengeID     uint                  `json:"challenge_id"`
	ChallengeTitle  string                `json:"challenge_title"`
	Recurrence      models.RecurrenceType `json:"recurrence"`
	PeriodStart     time.Time             `json:"period_start"`
	PeriodEnd       time.Time             `json:"period_end"`
	Done            bool                  `json:"done"`
	Persisted       bool                  `json:"persisted"`
}

// TodoPage is an offset-paged slice of todo views.
type TodoPage struct {
	Todos      []TodoView `json:"todos"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalCount int        `json:"total_count"`
}

func sortTodoViews(todos []TodoView, sortKey string, descending bool) {
	less := func(a, b TodoView) bool { return a.ID < b.ID }
	switch sortKey {
	case TodoSortTitle:
		less = func(a, b TodoView) bool { return a.ChallengeTitle < b.ChallengeTitle }
	case TodoSortPeriodStart:
		less = func(a, b TodoView) bool { return a.PeriodStart.Before(b.PeriodStart) }
	case TodoSortPeriodEnd:
		less = func(a, b TodoView) bool { return a.PeriodEnd.Before(b.PeriodEnd) }
	case TodoSortRecurrence:
		less = func(a, b TodoView) bool { return a.Recurrence < b.Recurrence }
	}

	sort.SliceStable(todos, func(i, j int) bool {
		if descending {
			return less(todos[j], todos[i])
		}
		return less(todos[i], todos[j])
	})
}

// pageTodoViews slices [page*pageSize, page*pageSize+pageSize) clamped to the
// list bounds.
func pageTodoViews(todos []TodoView, page, pageSize int) []TodoView {
	start := page * pageSize
	if start >= len(todos) {
		return []TodoView{}
	}
	end := start + pageSize
	if end > len(todos) {
		end = len(todos)
	}
	return todos[start:end]
}
