// Package server implements the MCP (Model Context Protocol) server for
// signature placement and stamping tools.
//
// This package provides a JSON-RPC 2.0 server that exposes PDF signature
// placement detection and overlay rendering through the MCP protocol, for
// use by MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Document operations:
//   - document_info: Page count and per-page dimensions
//   - document_detect_candidates: Find signature placement candidates
//   - document_find_emails: Extract signer emails and label regions
//   - document_overlay_signature: Stamp a signature into candidate rects
//   - document_stamp_text: Text-layer-only signing with fallback box
//
// Image operations:
//   - image_to_pdf: Convert an image into a single-page PDF
//   - image_extract_emails: OCR an image and extract email addresses
//
// # Error Handling
//
// Detection tools degrade gracefully: unreadable documents yield empty
// candidate and email lists rather than errors, and an empty candidate
// list is a legitimate "nothing to stamp" result. Overlay rendering falls
// back to the unmodified source document when drawing fails. Tool
// execution errors that do surface are returned as JSON-RPC error
// responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
package server
