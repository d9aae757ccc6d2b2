package taskfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclFile is the top-level structure of an HCL task file.
//
//	task "paint" {
//	  description = "Paint the fence"
//	  project     = "home"
//	  depends     = [task.buy]
//	}
//
// Every task label is available as task.<label>, so references to
// undefined tasks are reported when the file is decoded.
type hclFile struct {
	Tasks []*hclTask `hcl:"task,block"`
}

// hclTask is a single task block; the label is the task UUID.
type hclTask struct {
	UUID        string   `hcl:"uuid,label"`
	Description string   `hcl:"description"`
	Status      string   `hcl:"status,optional"`
	Project     string   `hcl:"project,optional"`
	Entry       string   `hcl:"entry,optional"`
	Due         string   `hcl:"due,optional"`
	Tags        []string `hcl:"tags,optional"`
	Depends     []string `hcl:"depends,optional"`
	Urgency     float64  `hcl:"urgency,optional"`
	ID          int      `hcl:"id,optional"`
}

// decodeHCL decodes HCL task blocks.
func decodeHCL(data []byte, filename string) ([]rawTask, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, buildEvalContext(file.Body), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	raws := make([]rawTask, 0, len(parsed.Tasks))
	for _, t := range parsed.Tasks {
		entry, err := parseTime(t.Entry)
		if err != nil {
			return nil, fmt.Errorf("task %q: entry: %w", t.UUID, err)
		}
		due, err := parseTime(t.Due)
		if err != nil {
			return nil, fmt.Errorf("task %q: due: %w", t.UUID, err)
		}
		raws = append(raws, rawTask{
			UUID:        t.UUID,
			ID:          t.ID,
			Description: t.Description,
			Status:      t.Status,
			Project:     t.Project,
			Tags:        t.Tags,
			Depends:     t.Depends,
			Entry:       entry,
			Due:         due,
			Urgency:     t.Urgency,
		})
	}
	return raws, nil
}

// taskLabelSchema finds the labels of all task blocks.
var taskLabelSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "task", LabelNames: []string{"uuid"}},
	},
}

// buildEvalContext exposes every task label as task.<label>.
func buildEvalContext(body hcl.Body) *hcl.EvalContext {
	content, _, _ := body.PartialContent(taskLabelSchema)

	tasks := make(map[string]cty.Value)
	if content != nil {
		for _, block := range content.Blocks {
			if len(block.Labels) == 0 {
				continue
			}
			label := block.Labels[0]
			tasks[label] = cty.StringVal(label)
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"task": cty.ObjectVal(tasks),
		},
	}
}
