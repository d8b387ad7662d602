package store

import (
	"context"

	"skillswap-backend/internal/models"
)

// InsertSkill appends a skill, assigning the next id. Duplicate names are
// permitted.
func (s *MemStore) InsertSkill(_ context.Context, skill models.Skill) (models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skill.ID = s.nextSkillID()
	s.skills = append(s.skills, skill)
	return skill, nil
}

// SkillsByUser returns the user's skills in insertion order.
func (s *MemStore) SkillsByUser(_ context.Context, userID int64) ([]models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Skill
	for _, sk := range s.skills {
		if sk.UserID == userID {
			out = append(out, sk)
		}
	}
	return out, nil
}

// ListSkills returns all skills in insertion order.
func (s *MemStore) ListSkills(_ context.Context) ([]models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Skill, len(s.skills))
	copy(out, s.skills)
	return out, nil
}

// DeleteSkill removes a skill by id. Deleting an absent id is a no-op.
func (s *MemStore) DeleteSkill(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sk := range s.skills {
		if sk.ID == id {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			return nil
		}
	}
	return nil
}
