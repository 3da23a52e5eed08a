package postgres

import (
	"testing"

	"blogapi/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB swaps the global DB for an in-memory SQLite database with the
// full schema migrated, and returns the previous handle.
func setupTestDB(t *testing.T) *gorm.DB {
	oldDB := GetDB()

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err, "Failed to connect to in-memory SQLite")

	db.Exec("PRAGMA foreign_keys = ON")
	db.LogMode(false)

	err = Migrate(db)
	require.NoError(t, err, "Failed to migrate database schema")

	InitDBWithConnection(db)
	return oldDB
}

// teardownTestDB restores the original database handle.
func teardownTestDB(db *gorm.DB) {
	InitDBWithConnection(db)
}

func createTestUser(t *testing.T, username, email string) uint {
	u := &models.User{
		Username: username,
		Email:    email,
		Password: "irrelevant-hash",
	}
	err := DB.Create(u).Error
	require.NoError(t, err, "Failed to create test user")
	return u.ID
}

func createTestPost(t *testing.T, userID uint, title string, published bool) uint {
	p := &models.Post{
		Title:     title,
		Content:   "content of " + title,
		Published: published,
		UserID:    userID,
	}
	err := DB.Create(p).Error
	require.NoError(t, err, "Failed to create test post")
	return p.ID
}

func createTestComment(t *testing.T, userID, postID uint, content string) uint {
	c := &models.Comment{
		Content: content,
		PostID:  postID,
		UserID:  userID,
	}
	err := DB.Create(c).Error
	require.NoError(t, err, "Failed to create test comment")
	return c.ID
}

func TestGetDB(t *testing.T) {
	originalDB := DB

	testDB, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer testDB.Close()

	DB = testDB
	assert.Equal(t, DB, GetDB())

	DB = originalDB
}

func TestInitDBWithConnection(t *testing.T) {
	originalDB := DB

	testDB, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer testDB.Close()

	InitDBWithConnection(testDB)
	assert.Equal(t, testDB, DB)

	DB = originalDB
}

func TestCloseDBWithNilDB(t *testing.T) {
	originalDB := DB

	DB = nil
	assert.NoError(t, CloseDB())

	DB = originalDB
}

func TestLikeUniqueIndex(t *testing.T) {
	oldDB := setupTestDB(t)
	defer teardownTestDB(oldDB)

	userID := createTestUser(t, "alice", "alice@example.com")
	postID := createTestPost(t, userID, "a post", true)

	err := DB.Create(&models.Like{UserID: userID, PostID: postID}).Error
	require.NoError(t, err)

	// Second row for the same (user, post) must be rejected by the index.
	err = DB.Create(&models.Like{UserID: userID, PostID: postID}).Error
	assert.Error(t, err)

	var count int
	DB.Model(&models.Like{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count)
	assert.Equal(t, 1, count)
}
