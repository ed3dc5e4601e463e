package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIntFromFile(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "level")
	require.NoError(t, os.WriteFile(filePath, []byte("3\n"), 0o644))

	// WHEN
	value, err := ReadIntFromFile(filePath)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 3, value)
}

func TestReadIntFromFile_Empty(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "level")
	require.NoError(t, os.WriteFile(filePath, []byte("\n"), 0o644))

	// WHEN
	value, err := ReadIntFromFile(filePath)

	// THEN
	assert.Error(t, err)
	assert.Equal(t, -1, value)
}

func TestReadIntFromFile_Missing(t *testing.T) {
	// WHEN
	_, err := ReadIntFromFile(filepath.Join(t.TempDir(), "missing"))

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteIntToFile(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "level")
	require.NoError(t, os.WriteFile(filePath, []byte("0"), 0o644))

	// WHEN
	err := WriteIntToFile(5, filePath)

	// THEN
	assert.NoError(t, err)
	value, err := ReadIntFromFile(filePath)
	assert.NoError(t, err)
	assert.Equal(t, 5, value)
}

func TestWriteIntToFile_FollowsSymlink(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(target, []byte("0"), 0o644))
	require.NoError(t, os.Symlink(target, link))

	// WHEN
	err := WriteIntToFile(2, link)

	// THEN
	assert.NoError(t, err)
	value, _ := ReadIntFromFile(target)
	assert.Equal(t, 2, value)
}

func TestWriteTextToFileAtomic_CreatesFile(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "tpfand.pid")

	// WHEN
	err := WriteTextToFileAtomic("1234\n", filePath)

	// THEN
	assert.NoError(t, err)
	text, err := ReadTextFromFile(filePath)
	assert.NoError(t, err)
	assert.Equal(t, "1234", text)
}

func TestExpandHome(t *testing.T) {
	// WHEN
	result, err := ExpandHome("/etc/tpfand")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "/etc/tpfand", result)
}

func TestExpandHome_Tilde(t *testing.T) {
	// GIVEN
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()

	// WHEN
	result, err := ExpandHome("~/tpfand.yaml")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "tpfand.yaml"), result)
}

func TestExpandHome_OtherUserIsRejected(t *testing.T) {
	// GIVEN
	t.Setenv("HOME", "/home/alice")
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()

	// WHEN
	result, err := ExpandHome("~root/tpfand.yaml")

	// THEN
	assert.Error(t, err)
	assert.Empty(t, result)
}

func TestReadTextFromFile_OtherUserIsRejected(t *testing.T) {
	// WHEN
	_, err := ReadTextFromFile("~root/tpfand.yaml")

	// THEN
	assert.Error(t, err)
}
