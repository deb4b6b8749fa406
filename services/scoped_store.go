package services

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scopedStore runs CRUD queries restricted to one coach's rows.
type scopedStore[T any] struct {
	db *gorm.DB
}

func (s scopedStore[T]) list(coachID uuid.UUID) ([]T, error) {
	var rows []T
	err := s.db.
		Where("coach_id = ?", coachID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (s scopedStore[T]) get(coachID, id uuid.UUID) (*T, error) {
	var row T
	err := s.db.
		Where("id = ? AND coach_id = ?", id, coachID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (s scopedStore[T]) create(row *T) error {
	return s.db.Create(row).Error
}

func (s scopedStore[T]) save(row *T) error {
	return s.db.Save(row).Error
}

func (s scopedStore[T]) delete(coachID, id uuid.UUID) error {
	var zero T
	res := s.db.
		Where("id = ? AND coach_id = ?", id, coachID).
		Delete(&zero)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// selectIDs loads the rows named by ids in the order they were selected.
// Duplicates keep their first position and unknown ids are dropped.
func (s scopedStore[T]) selectIDs(coachID uuid.UUID, ids []uuid.UUID, idOf func(T) uuid.UUID) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []T
	if err := s.db.
		Where("coach_id = ? AND id IN ?", coachID, ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]T, len(rows))
	for _, r := range rows {
		byID[idOf(r)] = r
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]T, 0, len(rows))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		r, ok := byID[id]
		if !ok {
			log.Printf("selection: id %s not found for coach %s", id, coachID)
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
