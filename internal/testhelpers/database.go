package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ojonugwa/igala-names/backend/internal/database"
	"github.com/ojonugwa/igala-names/backend/internal/models"
)

// SetupTestDatabase opens an isolated in-memory sqlite database with the
// full schema migrated. Each call gets its own database.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// the in-memory database lives on a single connection; a second pooled
	// connection would see an empty schema
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access underlying connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// CreateTestUser inserts a user with a profile and returns the user id.
// The account password is "password123".
func CreateTestUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{Email: email, PasswordHash: string(hashed)}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	profile := models.UserProfile{
		UserID:    user.ID,
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return user.ID
}

// AssignTestRole gives a user a role directly, bypassing the service layer.
func AssignTestRole(t *testing.T, db *gorm.DB, userID uuid.UUID, role string) {
	t.Helper()

	if err := db.Create(&models.UserRole{UserID: userID, Role: role}).Error; err != nil {
		t.Fatalf("failed to assign test role: %v", err)
	}
}
