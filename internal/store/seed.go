package store

import (
	"context"
	"fmt"
	"time"

	"skillswap-backend/internal/models"
)

// Seed loads the demo dataset: four users with their offered/wanted skills,
// one pending and one active swap, and the active swap's opening exchange.
// Intended for a fresh store; ids are whatever the counters assign.
func Seed(ctx context.Context, s Store) error {
	users := []models.User{
		{
			Name:         "Alex Chen",
			Email:        "alex@example.com",
			Bio:          "Full-stack developer passionate about React and Node.js",
			Location:     "San Francisco, CA",
			Availability: []string{"Weekends", "Evenings"},
			IsPublic:     true,
			AvatarURL:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			RatingAvg:    4.8,
			CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:         "Sarah Johnson",
			Email:        "sarah@example.com",
			Bio:          "UX/UI Designer with 5+ years experience",
			Location:     "New York, NY",
			Availability: []string{"Weekdays", "Mornings"},
			IsPublic:     true,
			AvatarURL:    "https://images.unsplash.com/photo-1494790108755-2616b612b02c?w=150&h=150&fit=crop&crop=face",
			RatingAvg:    4.9,
			CreatedAt:    time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:         "Mike Rodriguez",
			Email:        "mike@example.com",
			Bio:          "Marketing specialist and guitar enthusiast",
			Location:     "Austin, TX",
			Availability: []string{"Weekends"},
			IsPublic:     true,
			AvatarURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			RatingAvg:    4.7,
			CreatedAt:    time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:         "Emma Wilson",
			Email:        "emma@example.com",
			Bio:          "Professional photographer and Photoshop expert",
			Location:     "Seattle, WA",
			Availability: []string{"Weekends", "Evenings"},
			IsPublic:     false,
			AvatarURL:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
			RatingAvg:    4.9,
			CreatedAt:    time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		},
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		created, err := s.InsertUser(ctx, u)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", u.Email, err)
		}
		ids = append(ids, created.ID)
	}

	skills := []models.Skill{
		{UserID: ids[0], Name: "React Development", Kind: models.SkillOffered},
		{UserID: ids[0], Name: "Node.js", Kind: models.SkillOffered},
		{UserID: ids[0], Name: "Guitar Lessons", Kind: models.SkillWanted},
		{UserID: ids[1], Name: "UI/UX Design", Kind: models.SkillOffered},
		{UserID: ids[1], Name: "Figma", Kind: models.SkillOffered},
		{UserID: ids[1], Name: "Web Development", Kind: models.SkillWanted},
		{UserID: ids[2], Name: "Digital Marketing", Kind: models.SkillOffered},
		{UserID: ids[2], Name: "Guitar", Kind: models.SkillOffered},
		{UserID: ids[2], Name: "Photography", Kind: models.SkillWanted},
		{UserID: ids[3], Name: "Photography", Kind: models.SkillOffered},
		{UserID: ids[3], Name: "Photoshop", Kind: models.SkillOffered},
		{UserID: ids[3], Name: "Video Editing", Kind: models.SkillWanted},
	}
	for _, sk := range skills {
		if _, err := s.InsertSkill(ctx, sk); err != nil {
			return fmt.Errorf("seed skill %q: %w", sk.Name, err)
		}
	}

	acceptedAt := time.Date(2024, 7, 8, 15, 0, 0, 0, time.UTC)
	swaps := []models.Swap{
		{
			RequesterID: ids[0],
			TargetID:    ids[1],
			Status:      models.SwapPending,
			RequestedAt: time.Date(2024, 7, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			RequesterID: ids[2],
			TargetID:    ids[0],
			Status:      models.SwapActive,
			RequestedAt: time.Date(2024, 7, 8, 14, 0, 0, 0, time.UTC),
			AcceptedAt:  &acceptedAt,
		},
	}
	swapIDs := make([]int64, 0, len(swaps))
	for _, sw := range swaps {
		created, err := s.InsertSwap(ctx, sw)
		if err != nil {
			return fmt.Errorf("seed swap: %w", err)
		}
		swapIDs = append(swapIDs, created.ID)
	}

	messages := []models.Message{
		{
			SwapID:   swapIDs[1],
			SenderID: ids[2],
			Body:     "Hey Alex! Thanks for accepting the swap. When would be a good time for the React lesson?",
			SentAt:   time.Date(2024, 7, 8, 15, 30, 0, 0, time.UTC),
		},
		{
			SwapID:   swapIDs[1],
			SenderID: ids[0],
			Body:     "Hi Mike! How about this Saturday at 2 PM? We can do it over video call.",
			SentAt:   time.Date(2024, 7, 8, 16, 0, 0, 0, time.UTC),
		},
	}
	for _, m := range messages {
		if _, err := s.InsertMessage(ctx, m); err != nil {
			return fmt.Errorf("seed message: %w", err)
		}
	}

	return nil
}
