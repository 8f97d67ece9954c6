// Package binder decodes HTTP request bodies into typed values.
//
// Only JSON binding is provided; the decoder is strict: the Content-Type
// must be application/json, unknown fields are rejected, request bodies are
// size-capped, and only a single JSON document is accepted per body.
// Failures are reported through the sentinel errors in this package so
// boundary handlers can translate them into client error responses with
// errors.Is.
package binder
