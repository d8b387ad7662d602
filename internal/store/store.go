package store

import (
	"context"
	"errors"

	"skillswap-backend/internal/models"
)

// ErrNotFound is returned when a lookup or update misses.
var ErrNotFound = errors.New("not found")

// Store is the persistence boundary of the marketplace. The in-memory
// implementation below is the only one today; the interface exists so a real
// backend can be substituted without touching the facade.
type Store interface {
	InsertUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)

	InsertSkill(ctx context.Context, skill models.Skill) (models.Skill, error)
	SkillsByUser(ctx context.Context, userID int64) ([]models.Skill, error)
	ListSkills(ctx context.Context) ([]models.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error

	InsertSwap(ctx context.Context, swap models.Swap) (models.Swap, error)
	GetSwap(ctx context.Context, id int64) (models.Swap, error)
	SwapsByUser(ctx context.Context, userID int64) ([]models.Swap, error)
	UpdateSwap(ctx context.Context, swap models.Swap) error
	DeleteSwap(ctx context.Context, id int64) error

	InsertMessage(ctx context.Context, msg models.Message) (models.Message, error)
	MessagesBySwap(ctx context.Context, swapID int64) ([]models.Message, error)
}
