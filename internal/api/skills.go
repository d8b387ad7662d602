package api

import (
	"context"
	"fmt"
	"strings"

	"skillswap-backend/internal/models"
)

// SkillsAPI handles a user's offered/wanted skill list.
type SkillsAPI struct {
	*base
}

// GetByUser returns the user's skills. An unknown user yields an empty list,
// not an error.
func (a *SkillsAPI) GetByUser(ctx context.Context, userID int64) ([]models.Skill, error) {
	if err := a.delay(ctx); err != nil {
		return nil, err
	}
	return a.store.SkillsByUser(ctx, userID)
}

// Create adds a skill for a user. Duplicate names are allowed.
func (a *SkillsAPI) Create(ctx context.Context, skill models.Skill) (models.Skill, error) {
	if err := a.delay(ctx); err != nil {
		return models.Skill{}, err
	}

	if strings.TrimSpace(skill.Name) == "" {
		return models.Skill{}, fmt.Errorf("%w: skill name is required", ErrValidation)
	}
	if skill.Kind != models.SkillOffered && skill.Kind != models.SkillWanted {
		return models.Skill{}, fmt.Errorf("%w: unknown skill kind %q", ErrValidation, skill.Kind)
	}

	return a.store.InsertSkill(ctx, skill)
}

// Delete removes a skill. Deleting an absent id is a silent no-op.
func (a *SkillsAPI) Delete(ctx context.Context, id int64) error {
	if err := a.delay(ctx); err != nil {
		return err
	}
	return a.store.DeleteSkill(ctx, id)
}
