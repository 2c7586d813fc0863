package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Document Operations
		{
			Name:        "document_info",
			Description: "Get the page count and per-page dimensions (in points) of a PDF document.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"document_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the PDF document",
					},
				},
				"required": []string{"document_path"},
			},
		},
		{
			Name:        "document_detect_candidates",
			Description: "Detect signature placement candidates in a PDF document. Combines text-layout keyword matching with OCR and horizontal-rule detection on rasterized pages. Returns candidates ranked by descending score; an empty list means nothing to stamp.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"document_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the PDF document",
					},
				},
				"required": []string{"document_path"},
			},
		},
		{
			Name:        "document_find_emails",
			Description: "Scan a PDF document's text layer for signer email addresses and signature-label regions. Emails are deduplicated case-insensitively in first-seen order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"document_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the PDF document",
					},
				},
				"required": []string{"document_path"},
			},
		},
		{
			Name:        "document_overlay_signature",
			Description: "Stamp a signature image into candidate rectangles of a PDF document and write the result to output_path. When no candidates are supplied, the detection pipeline runs first. By default only the top-ranked candidate per page is stamped; set stamp_all to stamp every candidate. On render failure the original document is written unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"document_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the PDF document",
					},
					"signature_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the signature image (PNG or JPEG)",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to write the stamped document to",
					},
					"candidates": map[string]interface{}{
						"type":        "array",
						"description": "Optional explicit candidate rectangles (as returned by document_detect_candidates). Omit to run detection.",
					},
					"stamp_all": map[string]interface{}{
						"type":        "boolean",
						"description": "Stamp all candidates on each page instead of only the top-ranked one. Default false",
						"default":     false,
					},
				},
				"required": []string{"document_path", "signature_path", "output_path"},
			},
		},
		{
			Name:        "document_stamp_text",
			Description: "Sign a PDF using only its text layer: stamp the signature image at the top label region of each page, falling back to a fixed box near the bottom-right corner of the first page when no label is found there. Also returns any signer email addresses found in the document.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"document_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the PDF document",
					},
					"signature_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the signature image (PNG or JPEG)",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to write the stamped document to",
					},
				},
				"required": []string{"document_path", "signature_path", "output_path"},
			},
		},

		// Image Operations
		{
			Name:        "image_to_pdf",
			Description: "Convert a standalone image file into a single-page PDF document, written next to the source image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"image_path"},
			},
		},
		{
			Name:        "image_extract_emails",
			Description: "Run OCR over a standalone image (a photographed or scanned form) and extract email addresses from the recognized text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"image_path"},
			},
		},
	}
}
