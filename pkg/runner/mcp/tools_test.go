package mcp

import (
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestToolResultCarriesJSONText(t *testing.T) {
	dto := TaskDTO{ID: "3f2a", Kind: "todo", Title: "ship the release", Difficulty: 2}

	result, err := toJSONResult(dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected a success result")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(result.Content))
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}

	var got TaskDTO
	if err := json.Unmarshal([]byte(tc.Text), &got); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if got != dto {
		t.Fatalf("expected %+v to round trip, got %+v", dto, got)
	}
}

func TestToolResultUnmarshalableValue(t *testing.T) {
	result, err := toJSONResult(make(chan int))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result for an unmarshalable value")
	}
}
