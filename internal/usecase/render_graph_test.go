package usecase_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/runoshun/depgraph/internal/domain"
	"github.com/runoshun/depgraph/internal/testutil"
	"github.com/runoshun/depgraph/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// homeTasks returns:
//
//	paint (home) -> buy (home)
//	party        -> paint
//	old          (deleted, depended on by party)
func homeTasks() []*domain.Task {
	paint := testutil.NewTask("paint", "Paint the fence", "buy")
	paint.Project = "home"
	buy := testutil.NewTask("buy", "Buy paint")
	buy.Project = "home"
	party := testutil.NewTask("party", "Garden party", "paint", "old")
	old := testutil.NewTask("old", "Old plan")
	old.Status = domain.StatusDeleted
	return []*domain.Task{paint, buy, party, old}
}

func newRenderGraph(source domain.TaskSource, engine domain.GraphEngine, logger *slog.Logger) *usecase.RenderGraph {
	return usecase.NewRenderGraph(source, engine, domain.NewDefaultConfig(), logger)
}

func TestRenderGraph_Execute(t *testing.T) {
	t.Run("clusters projects and adds unassigned tasks to the root", func(t *testing.T) {
		source := &testutil.MockTaskSource{Tasks: homeTasks()}
		engine := testutil.NewMockGraphEngine()
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))

		uc := newRenderGraph(source, engine, logger)
		out, err := uc.Execute(context.Background(), usecase.RenderGraphInput{
			Reader:      strings.NewReader(""),
			InputFormat: domain.InputJSON,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultFormat, out.Format)
		assert.Equal(t, domain.InputJSON, source.LastFormat)

		root := engine.Root()
		assert.Equal(t, domain.DefaultGraphName, root.GraphName)
		assert.Equal(t, "BT", root.Attrs["rankdir"])
		assert.Equal(t, []string{"buy", "paint", "party"}, root.NodeIDs())
		assert.Equal(t, []string{"buy->paint", "paint->party"}, root.EdgePairs())

		require.Len(t, root.Children, 1)
		cluster := root.Children[0]
		assert.Equal(t, "cluster_home", cluster.GraphName)
		assert.Equal(t, []string{"buy", "paint"}, cluster.NodeIDs())
		assert.Equal(t, []string{"buy->paint"}, cluster.EdgePairs())

		assert.Equal(t, 5, out.Stats.Nodes)
		assert.Equal(t, 3, out.Stats.Edges)
		assert.Equal(t, 1, out.Stats.Clusters)
		assert.Contains(t, string(out.Data), "graph Dependencies")
		assert.Contains(t, logs.String(), "graph rendered")
	})

	t.Run("no clusters flattens projects", func(t *testing.T) {
		source := &testutil.MockTaskSource{Tasks: homeTasks()}
		engine := testutil.NewMockGraphEngine()

		uc := newRenderGraph(source, engine, nil)
		out, err := uc.Execute(context.Background(), usecase.RenderGraphInput{
			Reader:     strings.NewReader(""),
			NoClusters: true,
		})

		require.NoError(t, err)
		root := engine.Root()
		assert.Empty(t, root.Children)
		assert.Equal(t, []string{"buy", "paint", "party"}, root.NodeIDs())
		assert.Equal(t, 3, out.Stats.Nodes)
		assert.Equal(t, 0, out.Stats.Clusters)
	})

	t.Run("project filter", func(t *testing.T) {
		source := &testutil.MockTaskSource{Tasks: homeTasks()}
		engine := testutil.NewMockGraphEngine()

		uc := newRenderGraph(source, engine, nil)
		_, err := uc.Execute(context.Background(), usecase.RenderGraphInput{
			Reader:   strings.NewReader(""),
			Projects: []string{"home"},
		})

		require.NoError(t, err)
		root := engine.Root()
		assert.Empty(t, root.Nodes)
		require.Len(t, root.Children, 1)
		assert.Equal(t, []string{"buy", "paint"}, root.Children[0].NodeIDs())
	})

	t.Run("task filter pulls in dependencies", func(t *testing.T) {
		source := &testutil.MockTaskSource{Tasks: homeTasks()}
		engine := testutil.NewMockGraphEngine()

		uc := newRenderGraph(source, engine, nil)
		_, err := uc.Execute(context.Background(), usecase.RenderGraphInput{
			Reader:   strings.NewReader(""),
			TaskRefs: []string{"paint"},
			Format:   "dot",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"buy", "paint"}, engine.Root().NodeIDs())
	})

	t.Run("configured format and graph name", func(t *testing.T) {
		source := &testutil.MockTaskSource{Tasks: homeTasks()}
		engine := testutil.NewMockGraphEngine()
		cfg := domain.NewDefaultConfig()
		cfg.Graph.Format = "dot"
		cfg.Graph.Name = "Home"
		cfg.Graph.RankDir = "LR"

		uc := usecase.NewRenderGraph(source, engine, cfg, nil)
		out, err := uc.Execute(context.Background(), usecase.RenderGraphInput{
			Reader: strings.NewReader(""),
		})

		require.NoError(t, err)
		assert.Equal(t, "dot", out.Format)
		assert.Equal(t, "Home", engine.Root().GraphName)
		assert.Equal(t, "LR", engine.Root().Attrs["rankdir"])
	})
}

func TestRenderGraph_Execute_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		source  *testutil.MockTaskSource
		name    string
		input   usecase.RenderGraphInput
	}{
		{
			name:    "unsupported format",
			source:  &testutil.MockTaskSource{Tasks: homeTasks()},
			input:   usecase.RenderGraphInput{Format: "pdf"},
			wantErr: domain.ErrUnsupportedFormat,
		},
		{
			name:    "load failure",
			source:  &testutil.MockTaskSource{LoadErr: testutil.ErrMock},
			wantErr: testutil.ErrMock,
		},
		{
			name: "duplicate task",
			source: &testutil.MockTaskSource{Tasks: []*domain.Task{
				testutil.NewTask("a", "A"),
				testutil.NewTask("a", "A again"),
			}},
			wantErr: domain.ErrDuplicateTask,
		},
		{
			name:    "unknown project",
			source:  &testutil.MockTaskSource{Tasks: homeTasks()},
			input:   usecase.RenderGraphInput{Projects: []string{"work"}},
			wantErr: domain.ErrProjectNotFound,
		},
		{
			name:    "unknown task",
			source:  &testutil.MockTaskSource{Tasks: homeTasks()},
			input:   usecase.RenderGraphInput{TaskRefs: []string{"nope"}},
			wantErr: domain.ErrTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := testutil.NewMockGraphEngine()
			tt.input.Reader = strings.NewReader("")

			uc := newRenderGraph(tt.source, engine, nil)
			out, err := uc.Execute(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, out)
		})
	}
}

func TestRenderGraph_Execute_UnsupportedFormatSkipsLoad(t *testing.T) {
	source := &testutil.MockTaskSource{Tasks: homeTasks()}
	engine := testutil.NewMockGraphEngine()

	uc := newRenderGraph(source, engine, nil)
	_, err := uc.Execute(context.Background(), usecase.RenderGraphInput{
		Reader:      strings.NewReader(""),
		Format:      "pdf",
		InputFormat: domain.InputYAML,
	})

	var renderErr *domain.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "pdf", renderErr.Format)
	assert.Empty(t, source.LastFormat)
	assert.Empty(t, engine.Graphs)
}
