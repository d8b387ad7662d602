package api

import (
	"context"
	"fmt"
	"strings"

	"skillswap-backend/internal/models"
)

// UsersAPI handles profile reads, profile updates and the browse search.
type UsersAPI struct {
	*base
}

// GetProfile returns the full user record.
func (a *UsersAPI) GetProfile(ctx context.Context, id int64) (models.User, error) {
	if err := a.delay(ctx); err != nil {
		return models.User{}, err
	}
	return a.store.GetUser(ctx, id)
}

// UpdateProfile merges the provided fields into the existing record and
// returns the result.
func (a *UsersAPI) UpdateProfile(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	if err := a.delay(ctx); err != nil {
		return models.User{}, err
	}

	user, err := a.store.GetUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.Location != nil {
		user.Location = *update.Location
	}
	if update.Availability != nil {
		user.Availability = update.Availability
	}
	if update.IsPublic != nil {
		user.IsPublic = *update.IsPublic
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}

	if err := a.store.UpdateUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

// Search returns up to SearchPageSize public users whose name or skill names
// contain the query, case-insensitively. An empty query matches every public
// user. Pagination is a plain slice from offset; it is not stable across
// inserts.
func (a *UsersAPI) Search(ctx context.Context, query string, offset int) ([]models.User, error) {
	if err := a.delay(ctx); err != nil {
		return nil, err
	}

	users, err := a.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	skills, err := a.store.ListSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("search skills: %w", err)
	}

	skillNames := make(map[int64][]string)
	for _, sk := range skills {
		skillNames[sk.UserID] = append(skillNames[sk.UserID], sk.Name)
	}

	q := strings.ToLower(query)
	matched := make([]models.User, 0, len(users))
	for _, u := range users {
		if !u.IsPublic {
			continue
		}
		if q == "" || matchesQuery(u, skillNames[u.ID], q) {
			matched = append(matched, u)
		}
	}

	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []models.User{}, nil
	}
	end := offset + SearchPageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func matchesQuery(u models.User, skillNames []string, q string) bool {
	if strings.Contains(strings.ToLower(u.Name), q) {
		return true
	}
	for _, name := range skillNames {
		if strings.Contains(strings.ToLower(name), q) {
			return true
		}
	}
	return false
}
