package memkit

// The memory toolkit an agent can bind to its LLM. Credentials live inside
// the kit's client, never in a tool schema, so prompt content can never
// steer a tool call into exfiltrating or swapping the API key.

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alphahuman-xyz/alphahuman-go/client"
	"github.com/tmc/langchaingo/llms"
)

// Tool is a named, schema-described callable an LLM can invoke.
type Tool interface {
	Definition() llms.Tool
	Execute(ctx context.Context, arguments string) (string, error)

	GetPrompt() string
}

// MemoryKit provides tools for the Alphahuman Memory API.
type MemoryKit struct {
	client *client.Client
}

// NewMemoryKit creates a new MemoryKit bound to an existing client.
func NewMemoryKit(c *client.Client) *MemoryKit {
	return &MemoryKit{
		client: c,
	}
}

// MemoryTool defines the names for the memory tools.
type MemoryTool string

const (
	MemoryToolIngest MemoryTool = "alphahuman_ingest_memory"
	MemoryToolRead   MemoryTool = "alphahuman_read_memory"
	MemoryToolDelete MemoryTool = "alphahuman_delete_memory"
)

// GetTool returns a single tool by name.
func (k *MemoryKit) GetTool(name MemoryTool) (Tool, error) {
	switch name {
	case MemoryToolIngest:
		return &ingestMemoryTool{k: k}, nil
	case MemoryToolRead:
		return &readMemoryTool{k: k}, nil
	case MemoryToolDelete:
		return &deleteMemoryTool{k: k}, nil
	}
	return nil, fmt.Errorf("invalid memory tool name: %s", name)
}

// GetAllTools returns the three memory tools, always in the order
// ingest, read, delete.
func (k *MemoryKit) GetAllTools() []Tool {
	return []Tool{
		&ingestMemoryTool{k: k},
		&readMemoryTool{k: k},
		&deleteMemoryTool{k: k},
	}
}

// MakeMemoryTools creates the memory tools bound to a dedicated client.
// The token is captured here, at construction time, and never appears in
// any tool's parameter schema. BaseURL may be empty to use the default
// staging endpoint; the function never reads the environment.
func MakeMemoryTools(logger *slog.Logger, token string, baseURL string) ([]Tool, error) {
	c, err := client.NewClient(&client.Config{
		Token:   token,
		BaseURL: baseURL,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	return NewMemoryKit(c).GetAllTools(), nil
}

// GetTools is the convenience accessor for scripting: it resolves
// credentials from ALPHAHUMAN_API_KEY / ALPHAHUMAN_BASE_URL and returns
// the same three tools as MakeMemoryTools.
func GetTools(logger *slog.Logger) ([]Tool, error) {
	c, err := client.CreateClientFromEnv(logger)
	if err != nil {
		return nil, err
	}
	return NewMemoryKit(c).GetAllTools(), nil
}
