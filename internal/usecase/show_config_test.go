package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/depgraph/internal/domain"
	"github.com/runoshun/depgraph/internal/testutil"
	"github.com/runoshun/depgraph/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	t.Run("returns both config infos and effective config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.LocalConfigInfo = domain.ConfigInfo{
			Path:    "/work/.depgraph.toml",
			Content: "[graph]\nformat = \"png\"",
			Exists:  true,
		}
		manager.GlobalConfigInfo = domain.ConfigInfo{
			Path:    "/home/test/.config/depgraph/config.toml",
			Content: "[log]\nlevel = \"debug\"",
			Exists:  true,
		}
		cfg := domain.NewDefaultConfig()
		cfg.Graph.Format = "png"
		loader := &testutil.MockConfigLoader{Config: cfg}

		uc := usecase.NewShowConfig(manager, loader)
		out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/work/.depgraph.toml", out.LocalConfig.Path)
		assert.True(t, out.LocalConfig.Exists)
		assert.Equal(t, "[log]\nlevel = \"debug\"", out.GlobalConfig.Content)
		assert.Equal(t, "png", out.EffectiveConfig.Graph.Format)
	})

	t.Run("returns load error", func(t *testing.T) {
		loader := &testutil.MockConfigLoader{LoadErr: testutil.ErrMock}

		uc := usecase.NewShowConfig(testutil.NewMockConfigManager(), loader)
		_, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		assert.ErrorIs(t, err, testutil.ErrMock)
	})
}

func TestShowConfigTemplate_Execute(t *testing.T) {
	t.Run("renders configured values", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		cfg.Graph.RankDir = "LR"

		out, err := usecase.NewShowConfigTemplate().Execute(context.Background(), usecase.ShowConfigTemplateInput{Config: cfg})

		require.NoError(t, err)
		assert.Contains(t, out.Template, `# rankdir = "LR"`)
	})

	t.Run("nil config renders defaults", func(t *testing.T) {
		out, err := usecase.NewShowConfigTemplate().Execute(context.Background(), usecase.ShowConfigTemplateInput{})

		require.NoError(t, err)
		assert.Contains(t, out.Template, `# format = "svg"`)
	})
}

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates local config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.LocalConfigInfo = domain.ConfigInfo{Path: "/work/.depgraph.toml"}

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/work/.depgraph.toml", out.Path)
		assert.True(t, manager.InitLocalCalled)
		assert.False(t, manager.InitGlobalCalled)
	})

	t.Run("creates global config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.GlobalConfigInfo = domain.ConfigInfo{Path: "/home/test/.config/depgraph/config.toml"}

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{Global: true})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/depgraph/config.toml", out.Path)
		assert.False(t, manager.InitLocalCalled)
		assert.True(t, manager.InitGlobalCalled)
	})

	t.Run("returns error when config already exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.InitLocalErr = domain.ErrConfigExists

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
