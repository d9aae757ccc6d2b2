package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/depgraph/internal/domain"
	"github.com/runoshun/depgraph/internal/infra/graphviz"
	"github.com/runoshun/depgraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_Setup(t *testing.T) {
	t.Run("creates graphviz engine from config", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(domain.LocalConfigPath(dir), []byte("[render]\ndot_path = \"/opt/dot\"\n[graph]\nbogus = 1\n"), 0644))

		c := New(dir)
		c.Config.GlobalConfigDir = ""
		c.ConfigLoader = nil
		warnings, err := c.Setup(Options{ConfigPath: domain.LocalConfigPath(dir), Stderr: &bytes.Buffer{}})
		require.NoError(t, err)
		defer func() { _ = c.Close() }()

		assert.IsType(t, &graphviz.Engine{}, c.Engine)
		assert.Equal(t, "/opt/dot", c.AppConfig.Render.DotPath)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "bogus")
		assert.NotNil(t, c.RenderGraphUseCase())
	})

	t.Run("keeps injected engine", func(t *testing.T) {
		engine := testutil.NewMockGraphEngine()
		c := NewWithDeps(Config{}, &testutil.MockTaskSource{}, engine, &testutil.MockConfigLoader{}, nil)

		_, err := c.Setup(Options{})
		require.NoError(t, err)

		assert.Same(t, engine, c.Engine)
		assert.Equal(t, domain.DefaultFormat, c.AppConfig.Graph.Format)
	})

	t.Run("log level flag overrides config", func(t *testing.T) {
		var stderr bytes.Buffer
		c := NewWithDeps(Config{}, &testutil.MockTaskSource{}, testutil.NewMockGraphEngine(), &testutil.MockConfigLoader{}, nil)

		_, err := c.Setup(Options{LogLevel: "debug", Stderr: &stderr})
		require.NoError(t, err)
		c.Logger.Debug("expand task")

		assert.Contains(t, stderr.String(), "expand task")
	})

	t.Run("writes logs to configured file", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "depgraph.log")
		cfg := domain.NewDefaultConfig()
		cfg.Log.File = logPath
		c := NewWithDeps(Config{}, &testutil.MockTaskSource{}, testutil.NewMockGraphEngine(), &testutil.MockConfigLoader{Config: cfg}, nil)

		_, err := c.Setup(Options{})
		require.NoError(t, err)
		c.Logger.Info("graph rendered")
		require.NoError(t, c.Close())

		content, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), "graph rendered")
	})

	t.Run("returns load error", func(t *testing.T) {
		c := NewWithDeps(Config{}, nil, nil, &testutil.MockConfigLoader{LoadErr: testutil.ErrMock}, nil)

		_, err := c.Setup(Options{})

		assert.ErrorIs(t, err, testutil.ErrMock)
	})
}
