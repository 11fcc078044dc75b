package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"nutrilens/meal-svc/internal/domain"
	"nutrilens/session"
)

var ErrInvalidProfile = errors.New("invalid profile")

const profileStateKey = "profile"

type ProfileService struct {
	repo ProfileRepository
}

func NewProfileService(repo ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the caller's profile, falling back to defaults when none is
// stored. The result is remembered on the request session.
func (s *ProfileService) Get(ctx context.Context) (*domain.Profile, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	if cached, ok := sess.Get(profileStateKey); ok {
		if profile, ok := cached.(*domain.Profile); ok {
			return profile, nil
		}
	}

	profile, err := s.repo.GetProfile(ctx, sess.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		defaults := domain.DefaultProfile(sess.UserID)
		profile, err = &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	sess.Set(profileStateKey, profile)
	return profile, nil
}

func (s *ProfileService) Save(ctx context.Context, profile *domain.Profile) error {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	profile.UserID = sess.UserID
	if strings.TrimSpace(profile.DietType) == "" {
		profile.DietType = "Flexible"
	}
	if err := validateProfile(profile); err != nil {
		return err
	}

	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	sess.Set(profileStateKey, profile)
	return nil
}

func validateProfile(p *domain.Profile) error {
	switch {
	case !slices.Contains(domain.Goals, p.Goal):
		return fmt.Errorf("%w: goal must be one of %s", ErrInvalidProfile, strings.Join(domain.Goals, ", "))
	case p.Age < 13 || p.Age > 100:
		return fmt.Errorf("%w: age must be between 13 and 100", ErrInvalidProfile)
	case p.HeightCM < 100 || p.HeightCM > 250:
		return fmt.Errorf("%w: height_cm must be between 100 and 250", ErrInvalidProfile)
	case p.WeightKG < 30 || p.WeightKG > 200:
		return fmt.Errorf("%w: weight_kg must be between 30 and 200", ErrInvalidProfile)
	case !slices.Contains(domain.Activities, p.Activity):
		return fmt.Errorf("%w: activity must be one of %s", ErrInvalidProfile, strings.Join(domain.Activities, ", "))
	}
	return nil
}
