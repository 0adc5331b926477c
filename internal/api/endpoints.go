// Copyright (c) 2026 Newsdesk. All rights reserved.

package api

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/openpress/newsdesk/internal/platform/respond"
)

// endpointsJSON is the machine-readable description of every API route,
// served from GET /api so clients can discover the surface without docs.
//
//go:embed endpoints.json
var endpointsJSON []byte

func endpointsDoc(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]json.RawMessage{
		"endpoints": json.RawMessage(endpointsJSON),
	})
}
