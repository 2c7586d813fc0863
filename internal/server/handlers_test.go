package server

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func callTool(t *testing.T, s *Server, name string, args interface{}) *MCPResponse {
	t.Helper()
	raw, err := json.Marshal(args)
	if err != nil {
		t.Fatal(err)
	}
	params, err := json.Marshal(ToolCallParams{Name: name, Arguments: raw})
	if err != nil {
		t.Fatal(err)
	}
	return s.handleToolsCall(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  params,
	})
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	resp := s.handleToolsCall(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})
	if resp.Error == nil {
		t.Fatal("invalid params accepted")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("error code = %d, want -32602", resp.Error.Code)
	}
}

func TestHandleToolsCall_UnknownTool(t *testing.T) {
	s := New()
	resp := callTool(t, s, "document_shred", map[string]string{"document_path": "/tmp/x.pdf"})
	if resp.Error == nil {
		t.Fatal("unknown tool accepted")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("error code = %d, want -32000", resp.Error.Code)
	}
}

func TestHandleDocumentInfo_MissingDocument(t *testing.T) {
	s := New()
	resp := callTool(t, s, "document_info", map[string]string{"document_path": "/nonexistent/contract.pdf"})
	if resp.Error == nil {
		t.Error("document_info on a missing file did not return an error")
	}
}

// Detection degrades: an unreadable document is "nothing to stamp", not a
// tool failure.
func TestHandleDocumentDetectCandidates_Degrades(t *testing.T) {
	s := New()
	resp := callTool(t, s, "document_detect_candidates", map[string]string{"document_path": "/nonexistent/contract.pdf"})
	if resp.Error != nil {
		t.Fatalf("detection on a missing file must degrade, got error: %v", resp.Error)
	}

	result := toolResultJSON(t, resp)
	if count, ok := result["count"].(float64); !ok || count != 0 {
		t.Errorf("count = %v, want 0", result["count"])
	}
	if _, ok := result["candidates"].([]interface{}); !ok {
		t.Errorf("candidates is %T, want a list even when empty", result["candidates"])
	}
}

func TestHandleDocumentFindEmails_Degrades(t *testing.T) {
	s := New()
	resp := callTool(t, s, "document_find_emails", map[string]string{"document_path": "/nonexistent/contract.pdf"})
	if resp.Error != nil {
		t.Fatalf("find_emails on a missing file must degrade, got error: %v", resp.Error)
	}

	result := toolResultJSON(t, resp)
	if emails, ok := result["emails"].([]interface{}); !ok || len(emails) != 0 {
		t.Errorf("emails = %v, want an empty list", result["emails"])
	}
	if regions, ok := result["regions"].([]interface{}); !ok || len(regions) != 0 {
		t.Errorf("regions = %v, want an empty list", result["regions"])
	}
}

func TestHandleDocumentOverlaySignature_RequiresOutputPath(t *testing.T) {
	s := New()
	resp := callTool(t, s, "document_overlay_signature", map[string]string{
		"document_path":  "/tmp/doc.pdf",
		"signature_path": "/tmp/sig.png",
	})
	if resp.Error == nil {
		t.Error("missing output_path accepted")
	}
}

func TestHandleDocumentOverlaySignature_MissingDocument(t *testing.T) {
	s := New()
	resp := callTool(t, s, "document_overlay_signature", map[string]string{
		"document_path":  "/nonexistent/contract.pdf",
		"signature_path": "/tmp/sig.png",
		"output_path":    filepath.Join(t.TempDir(), "out.pdf"),
	})
	// The source document itself is unreadable: the one case that surfaces.
	if resp.Error == nil {
		t.Error("unreadable source document did not return an error")
	}
}

// A document that exists but cannot be rendered degrades to a byte-for-byte
// copy at the output path.
func TestHandleDocumentStampText_DegradesToOriginalBytes(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "garbage.pdf")
	outPath := filepath.Join(dir, "signed.pdf")
	original := []byte("not a real document")
	if err := os.WriteFile(docPath, original, 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	resp := callTool(t, s, "document_stamp_text", map[string]string{
		"document_path":  docPath,
		"signature_path": filepath.Join(dir, "sig.png"),
		"output_path":    outPath,
	})
	if resp.Error != nil {
		t.Fatalf("stamp_text must degrade, got error: %v", resp.Error)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("no output written: %v", err)
	}
	if string(out) != string(original) {
		t.Error("degraded output differs from the original document bytes")
	}

	result := toolResultJSON(t, resp)
	if emails, ok := result["emails"].([]interface{}); !ok || len(emails) != 0 {
		t.Errorf("emails = %v, want an empty list", result["emails"])
	}
}

func TestHandleImageToPDF_MissingImage(t *testing.T) {
	s := New()
	resp := callTool(t, s, "image_to_pdf", map[string]string{"image_path": "/nonexistent/sig.png"})
	if resp.Error == nil {
		t.Error("image_to_pdf on a missing file did not return an error")
	}
}

// toolResultJSON unwraps the MCP content envelope and parses the embedded
// JSON payload of a successful tool call.
func toolResultJSON(t *testing.T, resp *MCPResponse) map[string]interface{} {
	t.Helper()

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("result has type %T, want map", resp.Result)
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) == 0 {
		t.Fatalf("missing content envelope: %v", result)
	}
	text, ok := content[0]["text"].(string)
	if !ok {
		t.Fatalf("content text has type %T", content[0]["text"])
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("tool payload is not JSON: %v", err)
	}
	return payload
}
