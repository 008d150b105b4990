// Package api exposes exam analysis, roadmap planning, progress comparison
// and review scheduling over JSON/HTTP. Handlers decode and validate
// requests, call the services and translate their errors to status codes.
package api
