package server

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()
	if len(tools) != 7 {
		t.Fatalf("got %d tools, want 7", len(tools))
	}

	want := []string{
		"document_info",
		"document_detect_candidates",
		"document_find_emails",
		"document_overlay_signature",
		"document_stamp_text",
		"image_to_pdf",
		"image_extract_emails",
	}

	byName := make(map[string]Tool, len(tools))
	for _, tool := range tools {
		byName[tool.Name] = tool
	}
	for _, name := range want {
		if _, ok := byName[name]; !ok {
			t.Errorf("missing tool %s", name)
		}
	}
}

func TestToolDefinitions_HaveValidSchemas(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("empty description")
			}
			if tool.InputSchema == nil {
				t.Fatal("nil input schema")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("schema type = %v, want object", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("schema has no properties map")
			}
			required, ok := tool.InputSchema["required"].([]string)
			if !ok || len(required) == 0 {
				t.Fatal("schema has no required list")
			}
			for _, name := range required {
				if _, ok := props[name]; !ok {
					t.Errorf("required parameter %s not in properties", name)
				}
			}
		})
	}
}

func TestToolDefinitions_NamesFollowConvention(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if !strings.HasPrefix(tool.Name, "document_") && !strings.HasPrefix(tool.Name, "image_") {
			t.Errorf("tool %s has neither document_ nor image_ prefix", tool.Name)
		}
	}
}

func TestToolDefinitions_MarshalToJSON(t *testing.T) {
	data, err := json.Marshal(GetToolDefinitions())
	if err != nil {
		t.Fatalf("tool definitions do not marshal: %v", err)
	}
	if !strings.Contains(string(data), `"inputSchema"`) {
		t.Error("marshaled definitions missing inputSchema key")
	}
}

func TestExecuteTool_DispatchCoversAllDefinitions(t *testing.T) {
	s := New()
	for _, tool := range GetToolDefinitions() {
		// Empty arguments: every tool must at least be routable. Errors
		// about missing files or parameters are fine; "unknown tool" means
		// the dispatch table and the catalog drifted apart.
		_, err := s.executeTool(context.Background(), tool.Name, json.RawMessage(`{}`))
		if err != nil && strings.Contains(err.Error(), "unknown tool") {
			t.Errorf("tool %s is listed but not dispatchable", tool.Name)
		}
	}
}
