package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/depgraph/internal/testutil"
	"github.com/runoshun/depgraph/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFormats_Execute(t *testing.T) {
	engine := testutil.NewMockGraphEngine()
	engine.FormatList = []string{"dot", "pdf", "svg"}

	out, err := usecase.NewListFormats(engine, nil).Execute(context.Background(), usecase.ListFormatsInput{})

	require.NoError(t, err)
	assert.Equal(t, []string{"dot", "pdf", "svg"}, out.Formats)
	assert.Equal(t, "svg", out.Default)
}
