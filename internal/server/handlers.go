package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/docutools/sigstamp/internal/detect"
	"github.com/docutools/sigstamp/internal/overlay"
	"github.com/docutools/sigstamp/internal/pdfdoc"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "document_detect_candidates").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Document Operations
	case "document_info":
		return s.handleDocumentInfo(args)
	case "document_detect_candidates":
		return s.handleDocumentDetectCandidates(ctx, args)
	case "document_find_emails":
		return s.handleDocumentFindEmails(args)
	case "document_overlay_signature":
		return s.handleDocumentOverlaySignature(ctx, args)
	case "document_stamp_text":
		return s.handleDocumentStampText(args)

	// Image Operations
	case "image_to_pdf":
		return s.handleImageToPDF(args)
	case "image_extract_emails":
		return s.handleImageExtractEmails(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Document Handlers ===

type documentInfoArgs struct {
	DocumentPath string `json:"document_path"`
}

func (s *Server) handleDocumentInfo(args json.RawMessage) (interface{}, error) {
	var a documentInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	info, err := pdfdoc.ReadInfo(a.DocumentPath)
	if err != nil {
		return nil, err
	}

	pages := make([]map[string]interface{}, len(info.Pages))
	for i, p := range info.Pages {
		pages[i] = map[string]interface{}{
			"width":  p.Width,
			"height": p.Height,
		}
	}
	return map[string]interface{}{
		"page_count": info.PageCount,
		"pages":      pages,
	}, nil
}

type detectCandidatesArgs struct {
	DocumentPath string `json:"document_path"`
}

// handleDocumentDetectCandidates runs the full detection pipeline: the
// text-layout pass and the vision pass, merged and deduplicated. Detection
// degrades to an empty list on unreadable input, so an empty result means
// "nothing to stamp", not failure.
func (s *Server) handleDocumentDetectCandidates(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a detectCandidatesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	candidates := s.detectCandidates(ctx, a.DocumentPath)
	return map[string]interface{}{
		"candidates": candidates,
		"count":      len(candidates),
	}, nil
}

func (s *Server) detectCandidates(ctx context.Context, path string) []detect.Candidate {
	var candidates []detect.Candidate

	if info, err := pdfdoc.ReadInfo(path); err == nil {
		_, boxes := s.text.FindEmailsAndRegions(path)
		for _, b := range boxes {
			if b.Page < 0 || b.Page >= info.PageCount {
				continue
			}
			candidates = append(candidates, b.ToCandidate(info.Pages[b.Page].Height, detect.TextScore, "text_layout"))
		}
	}

	candidates = append(candidates, s.vision.Find(ctx, path)...)
	out := detect.Deduplicate(candidates, s.vision.DedupThreshold)
	if out == nil {
		out = []detect.Candidate{}
	}
	return out
}

type findEmailsArgs struct {
	DocumentPath string `json:"document_path"`
}

func (s *Server) handleDocumentFindEmails(args json.RawMessage) (interface{}, error) {
	var a findEmailsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	emails, regions := s.text.FindEmailsAndRegions(a.DocumentPath)
	if emails == nil {
		emails = []string{}
	}
	if regions == nil {
		regions = []detect.SignatureBox{}
	}
	return map[string]interface{}{
		"emails":  emails,
		"regions": regions,
	}, nil
}

type overlaySignatureArgs struct {
	DocumentPath  string             `json:"document_path"`
	SignaturePath string             `json:"signature_path"`
	OutputPath    string             `json:"output_path"`
	Candidates    []detect.Candidate `json:"candidates,omitempty"`
	StampAll      bool               `json:"stamp_all,omitempty"`
}

// handleDocumentOverlaySignature stamps the signature image into candidate
// rectangles. When no candidates are supplied, the detection pipeline is
// run first. By default only the top-ranked candidate per page is stamped.
func (s *Server) handleDocumentOverlaySignature(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a overlaySignatureArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutputPath == "" {
		return nil, fmt.Errorf("output_path is required")
	}

	candidates := a.Candidates
	if len(candidates) == 0 {
		candidates = s.detectCandidates(ctx, a.DocumentPath)
	}

	out, err := overlay.Render(a.DocumentPath, a.SignaturePath, candidates, !a.StampAll)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(a.OutputPath, out, 0o644); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	return map[string]interface{}{
		"output_path":     a.OutputPath,
		"bytes_written":   len(out),
		"candidates_used": len(candidates),
	}, nil
}

type stampTextArgs struct {
	DocumentPath  string `json:"document_path"`
	SignaturePath string `json:"signature_path"`
	OutputPath    string `json:"output_path"`
}

// handleDocumentStampText is the text-layer-only signing path with the
// fixed bottom-right fallback box on the first page.
func (s *Server) handleDocumentStampText(args json.RawMessage) (interface{}, error) {
	var a stampTextArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutputPath == "" {
		return nil, fmt.Errorf("output_path is required")
	}

	out, emails, err := overlay.StampTextHeuristic(a.DocumentPath, a.SignaturePath)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(a.OutputPath, out, 0o644); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}
	if emails == nil {
		emails = []string{}
	}

	return map[string]interface{}{
		"output_path":   a.OutputPath,
		"bytes_written": len(out),
		"emails":        emails,
	}, nil
}

// === Image Handlers ===

type imageToPDFArgs struct {
	ImagePath string `json:"image_path"`
}

func (s *Server) handleImageToPDF(args json.RawMessage) (interface{}, error) {
	var a imageToPDFArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	pdfPath, err := pdfdoc.ImageToPDF(a.ImagePath)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"pdf_path": pdfPath,
	}, nil
}

type imageExtractEmailsArgs struct {
	ImagePath string `json:"image_path"`
}

// handleImageExtractEmails recognizes text on a standalone image (a
// photographed or scanned form) and extracts email addresses from it.
func (s *Server) handleImageExtractEmails(args json.RawMessage) (interface{}, error) {
	var a imageExtractEmailsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	text, err := s.engine.RecognizeText(a.ImagePath)
	if err != nil {
		return nil, err
	}
	emails := detect.FindEmails(text)
	if emails == nil {
		emails = []string{}
	}

	return map[string]interface{}{
		"emails": emails,
		"text":   text,
	}, nil
}
