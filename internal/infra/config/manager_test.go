package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/depgraph/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetLocalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		path := domain.LocalConfigPath(t.TempDir())
		content := "[graph]\nformat = \"png\""
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		info := NewManagerWithPaths(path, "").GetLocalConfigInfo()

		assert.Equal(t, path, info.Path)
		assert.Equal(t, content, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		path := domain.LocalConfigPath(t.TempDir())

		info := NewManagerWithPaths(path, "").GetLocalConfigInfo()

		assert.Equal(t, path, info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		content := "[log]\nlevel = \"debug\""
		require.NoError(t, os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte(content), 0644))

		info := NewManagerWithPaths("", globalDir).GetGlobalConfigInfo()

		assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
		assert.Equal(t, content, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns empty info when global dir is empty", func(t *testing.T) {
		info := NewManagerWithPaths("", "").GetGlobalConfigInfo()

		assert.Empty(t, info.Path)
		assert.False(t, info.Exists)
	})
}

func TestManager_InitLocalConfig(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		path := domain.LocalConfigPath(t.TempDir())

		err := NewManagerWithPaths(path, "").InitLocalConfig(domain.NewDefaultConfig())
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "[graph]")
		assert.Contains(t, string(content), "# [styles.pending]")
	})

	t.Run("returns error if file exists", func(t *testing.T) {
		path := domain.LocalConfigPath(t.TempDir())
		require.NoError(t, os.WriteFile(path, []byte("existing"), 0644))

		err := NewManagerWithPaths(path, "").InitLocalConfig(domain.NewDefaultConfig())

		assert.ErrorIs(t, err, domain.ErrConfigExists)
		content, _ := os.ReadFile(path)
		assert.Equal(t, "existing", string(content))
	})
}

func TestManager_InitGlobalConfig(t *testing.T) {
	t.Run("creates directory and config file", func(t *testing.T) {
		globalDir := filepath.Join(t.TempDir(), "nested", domain.AppDirName)

		err := NewManagerWithPaths("", globalDir).InitGlobalConfig(domain.NewDefaultConfig())
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(globalDir, domain.ConfigFileName))
		assert.NoError(t, err)
	})

	t.Run("returns error without global dir", func(t *testing.T) {
		err := NewManagerWithPaths("", "").InitGlobalConfig(domain.NewDefaultConfig())
		assert.Error(t, err)
	})
}
