// Package store persists users, schools, and memberships in SQLite
// through GORM.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("store: not found")

// Store wraps the database handle.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the database at path and migrates the
// schema. WAL and a busy timeout keep concurrent CLI and server
// processes from tripping over each other.
func Open(path string) (*Store, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on&_synchronous=NORMAL"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if err := db.AutoMigrate(&User{}, &School{}, &SchoolMembership{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// UserByEmail looks up a user by normalized email.
func (s *Store) UserByEmail(email string) (*User, error) {
	var u User
	if err := s.db.Where("email = ?", NormalizeEmail(email)).First(&u).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &u, nil
}

// UserByID looks up a user by ID.
func (s *Store) UserByID(id string) (*User, error) {
	var u User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &u, nil
}

// UpsertUser creates the user for email or updates its name and
// password hash.
func (s *Store) UpsertUser(email string, name *string, passwordHash string) (*User, error) {
	email = NormalizeEmail(email)
	existing, err := s.UserByEmail(email)
	switch {
	case err == nil:
		existing.PasswordHash = passwordHash
		if name != nil {
			existing.Name = name
		}
		if err := s.db.Save(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	case errors.Is(err, ErrNotFound):
		u := User{ID: uuid.NewString(), Email: email, Name: name, PasswordHash: passwordHash}
		if err := s.db.Create(&u).Error; err != nil {
			return nil, err
		}
		return &u, nil
	default:
		return nil, err
	}
}

// SetPassword replaces a user's password hash.
func (s *Store) SetPassword(userID, passwordHash string) error {
	res := s.db.Model(&User{}).Where("id = ?", userID).Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SchoolByName finds a school by exact name.
func (s *Store) SchoolByName(name string) (*School, error) {
	var sc School
	if err := s.db.Where("name = ?", name).First(&sc).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &sc, nil
}

// CreateSchool inserts a new school.
func (s *Store) CreateSchool(name, code, createdByID string) (*School, error) {
	sc := School{ID: uuid.NewString(), Name: name, Code: code, CreatedByID: createdByID}
	if err := s.db.Create(&sc).Error; err != nil {
		return nil, err
	}
	return &sc, nil
}

// MembershipWithRole finds the user's first membership carrying one of
// the given roles.
func (s *Store) MembershipWithRole(userID string, roles ...Role) (*SchoolMembership, error) {
	var m SchoolMembership
	if err := s.db.Where("user_id = ? AND role IN ?", userID, roles).First(&m).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &m, nil
}

// MembershipInSchool finds the user's membership in one school with
// the given role.
func (s *Store) MembershipInSchool(userID, schoolID string, role Role) (*SchoolMembership, error) {
	var m SchoolMembership
	err := s.db.Where("user_id = ? AND school_id = ? AND role = ?", userID, schoolID, role).First(&m).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &m, nil
}

// MembershipsForUser returns all of a user's memberships.
func (s *Store) MembershipsForUser(userID string) ([]SchoolMembership, error) {
	var ms []SchoolMembership
	if err := s.db.Where("user_id = ?", userID).Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

// UpsertMembership inserts the membership or, when the (user, school)
// pair exists, overwrites its role and role-specific fields.
func (s *Store) UpsertMembership(m SchoolMembership) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "school_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"role", "grade_level", "class_name", "subject", "updated_at",
		}),
	}).Create(&m).Error
}

// NormalizeEmail lowercases and trims an email for lookups and
// storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
