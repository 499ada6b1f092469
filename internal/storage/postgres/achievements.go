package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/avwray/lifedeck/internal/models"
)

func (s *Store) AddAchievement(a models.UnlockedAchievement) error {
	metadata, err := json.Marshal(a.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode achievement metadata: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO habit_achievements (id, owner, habit_id, achievement_key, unlocked_at, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.Owner, a.HabitID, a.Key, a.UnlockedAt.Format(time.RFC3339), string(metadata))
	if err != nil {
		if isUniqueViolation(err) {
			// Already unlocked by a concurrent pass; the fact stands.
			return nil
		}
		return fmt.Errorf("failed to add achievement: %w", err)
	}
	return nil
}

func (s *Store) GetAchievements(owner, habitID string) ([]models.UnlockedAchievement, error) {
	rows, err := s.db.Query(`
		SELECT id, owner, habit_id, achievement_key, unlocked_at, metadata
		FROM habit_achievements
		WHERE owner = $1 AND habit_id = $2
		ORDER BY unlocked_at`, owner, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []models.UnlockedAchievement
	for rows.Next() {
		var a models.UnlockedAchievement
		var unlockedAt string
		var metadata []byte

		if err := rows.Scan(&a.ID, &a.Owner, &a.HabitID, &a.Key, &unlockedAt, &metadata); err != nil {
			return nil, err
		}
		if a.UnlockedAt, err = parseTimestamp(unlockedAt, "unlocked_at"); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(metadata, &a.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode achievement metadata: %w", err)
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}
