package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ism7788/math-practice/internal/rng"
)

// SeedConfig bootstraps the first admin account and its school.
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	SchoolName    string
}

// SeedResult reports what the seed ended up with.
type SeedResult struct {
	AdminEmail string
	SchoolName string
	SchoolCode string
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func newSchoolCode(src rng.Source) string {
	var b strings.Builder
	b.WriteString("HQ")
	for i := 0; i < 6; i++ {
		b.WriteByte(codeAlphabet[rng.Index(src, len(codeAlphabet))])
	}
	return b.String()
}

// Seed upserts the admin user, ensures the HQ school exists, and
// grants the admin membership. Safe to run repeatedly; the password
// hash is refreshed each time.
func (s *Store) Seed(src rng.Source, cfg SeedConfig, hash func(string) (string, error)) (*SeedResult, error) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" || cfg.SchoolName == "" {
		return nil, errors.New("store: seed config incomplete")
	}

	passwordHash, err := hash(cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	name := "Admin"
	admin, err := s.UpsertUser(cfg.AdminEmail, &name, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	school, err := s.SchoolByName(cfg.SchoolName)
	if errors.Is(err, ErrNotFound) {
		school, err = s.CreateSchool(cfg.SchoolName, newSchoolCode(src), admin.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("seed school: %w", err)
	}

	err = s.UpsertMembership(SchoolMembership{
		UserID:   admin.ID,
		SchoolID: school.ID,
		Role:     RoleAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("seed membership: %w", err)
	}

	return &SeedResult{
		AdminEmail: admin.Email,
		SchoolName: school.Name,
		SchoolCode: school.Code,
	}, nil
}
