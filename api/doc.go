// Package api exposes the validators over HTTP.
//
// The surface is a thin boundary: POST /validate/* endpoints bind a JSON
// request, check that required fields are present, and return the validator's
// Result serialized as-is. POST /tools/{tool} dispatches through the tool
// registry, making the HTTP layer and the tool-invocation layer share one
// code path. GET / describes the service and GET /health reports liveness.
//
// Transport-level failures (bad JSON, wrong media type, missing fields,
// unknown tool) are answered with a structured error body; validation
// outcomes, including invalid inputs, are always 200 responses carrying a
// Result with Valid=false.
package api
