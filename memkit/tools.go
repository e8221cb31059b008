package memkit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alphahuman-xyz/alphahuman-go/models"
	"github.com/tmc/langchaingo/llms"
)

// --- Tool Implementations ---

// ingestMemoryTool upserts a batch of memory items.
type ingestMemoryTool struct{ k *MemoryKit }

type ingestMemoryArgs struct {
	Items []models.MemoryItem `json:"items"`
}

// Definition returns the tool's definition.
func (t *ingestMemoryTool) Definition() llms.Tool {
	return llms.Tool{
		Type: "function",
		Function: &llms.FunctionDefinition{
			Name:        string(MemoryToolIngest),
			Description: "Ingest (upsert) memory items into the Alphahuman Memory API. Each item needs a 'key' and 'content'; 'namespace' and 'metadata' are optional.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"items": map[string]any{
						"type":        "array",
						"description": "The memory items to ingest.",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"key": map[string]any{
									"type":        "string",
									"description": "Unique key for the item within its namespace.",
								},
								"content": map[string]any{
									"type":        "string",
									"description": "The content to remember.",
								},
								"namespace": map[string]any{
									"type":        "string",
									"description": "Optional grouping label. Defaults to 'default'.",
								},
								"metadata": map[string]any{
									"type":        "object",
									"description": "Optional metadata attached to the item.",
								},
							},
							"required": []string{"key", "content"},
						},
					},
				},
				"required": []string{"items"},
			},
		},
	}
}

// Execute runs the tool.
func (t *ingestMemoryTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args ingestMemoryArgs
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("failed to unmarshal arguments: %w", err)
	}
	result, err := t.k.client.IngestMemory(ctx, args.Items)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GetPrompt returns the prompt for the tool.
func (t *ingestMemoryTool) GetPrompt() string {
	return `
	Tool: alphahuman_ingest_memory
	Description: Ingest (upsert) memory items. Each item needs a key and content.
	Use this tool to store or update facts worth remembering across conversations.
	`
}

// readMemoryTool reads memory items matching a filter.
type readMemoryTool struct{ k *MemoryKit }

// Definition returns the tool's definition.
func (t *readMemoryTool) Definition() llms.Tool {
	return llms.Tool{
		Type: "function",
		Function: &llms.FunctionDefinition{
			Name:        string(MemoryToolRead),
			Description: "Read memory items from the Alphahuman Memory API. Filter by 'key' (single), 'keys' (list), or 'namespace'. At least one filter is required.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"key": map[string]any{
						"type":        "string",
						"description": "A single key to read.",
					},
					"keys": map[string]any{
						"type":        "array",
						"description": "A list of keys to read.",
						"items":       map[string]any{"type": "string"},
					},
					"namespace": map[string]any{
						"type":        "string",
						"description": "Read every item in this namespace.",
					},
				},
			},
		},
	}
}

// Execute runs the tool.
func (t *readMemoryTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args models.ReadRequest
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("failed to unmarshal arguments: %w", err)
	}
	result, err := t.k.client.ReadMemory(ctx, args)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GetPrompt returns the prompt for the tool.
func (t *readMemoryTool) GetPrompt() string {
	return `
	Tool: alphahuman_read_memory
	Description: Read stored memory items by key, keys, or namespace.
	Use this tool to recall facts before answering questions about the user.
	`
}

// deleteMemoryTool deletes memory items matching a selector.
type deleteMemoryTool struct{ k *MemoryKit }

// Definition returns the tool's definition.
func (t *deleteMemoryTool) Definition() llms.Tool {
	return llms.Tool{
		Type: "function",
		Function: &llms.FunctionDefinition{
			Name:        string(MemoryToolDelete),
			Description: "Delete memory items from the Alphahuman Memory API. Provide 'key' (single), 'keys' (list), or set 'delete_all' to true. Optionally scope by 'namespace'. Use delete_all with caution.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"key": map[string]any{
						"type":        "string",
						"description": "A single key to delete.",
					},
					"keys": map[string]any{
						"type":        "array",
						"description": "A list of keys to delete.",
						"items":       map[string]any{"type": "string"},
					},
					"namespace": map[string]any{
						"type":        "string",
						"description": "Limit the deletion to this namespace.",
					},
					"delete_all": map[string]any{
						"type":        "boolean",
						"description": "Delete all memory for the current credentials.",
					},
				},
			},
		},
	}
}

// Execute runs the tool.
func (t *deleteMemoryTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args models.DeleteRequest
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("failed to unmarshal arguments: %w", err)
	}
	result, err := t.k.client.DeleteMemory(ctx, args)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GetPrompt returns the prompt for the tool.
func (t *deleteMemoryTool) GetPrompt() string {
	return `
	Tool: alphahuman_delete_memory
	Description: Delete stored memory items by key, keys, or delete_all.
	Use this tool when the user asks you to forget something.
	`
}
