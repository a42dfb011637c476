// Package mcp provides an MCP (Model Context Protocol) server adapter
// for stackit-search. It lets AI assistants query the forum's
// similarity index directly.
package mcp

import "errors"

// ErrMissingRetrievalService is returned when the retrieval service is not provided.
var ErrMissingRetrievalService = errors.New("mcp: retrieval service is required")
