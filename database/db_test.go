package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickpanel/database/model"
)

func initTestDB(t *testing.T) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, InitDB(dbPath, false))
	t.Cleanup(func() {
		_ = CloseDB()
	})
}

func TestInitDBBootstrapsAdmin(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, InitDB(dbPath, false))
	t.Cleanup(func() {
		_ = CloseDB()
	})

	var admin model.User
	require.NoError(t, GetDB().Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.NotEmpty(t, admin.PasswordHash)
	assert.NotEmpty(t, admin.Id)

	// a second init against the same file must not add another admin
	require.NoError(t, CloseDB())
	require.NoError(t, InitDB(dbPath, false))
	var count int64
	require.NoError(t, GetDB().Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestIsDuplicate(t *testing.T) {
	initTestDB(t)

	first := &model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, GetDB().Create(first).Error)

	err := GetDB().Create(&model.User{Username: "alice", Email: "other@example.com", PasswordHash: "x"}).Error
	require.Error(t, err)
	assert.True(t, IsDuplicate(err, "username"))
	assert.False(t, IsDuplicate(err, "email"))

	err = GetDB().Create(&model.User{Username: "bob", Email: "alice@example.com", PasswordHash: "x"}).Error
	require.Error(t, err)
	assert.True(t, IsDuplicate(err, "email"))
	assert.False(t, IsDuplicate(err, "username"))

	assert.False(t, IsDuplicate(nil, "username"))
}

func TestIsNotFound(t *testing.T) {
	initTestDB(t)

	var user model.User
	err := GetDB().Where("username = ?", "nobody").First(&user).Error
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
