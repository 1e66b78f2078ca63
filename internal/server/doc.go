// Package server exposes room detection over HTTP.
//
// The server accepts floor plan uploads, runs the detection pipeline, and
// returns detected rooms as JSON. It is built on gin with structured logrus
// logging.
//
// # Endpoints
//
//   - POST /detect: Upload a floor plan (multipart field "image" or a raw
//     PNG/JPEG body) and receive detected rooms. Query parameters:
//     preset (override adaptive parameter selection with a named preset),
//     debug=true (include a base64 PNG overlay of the detections),
//     labels=true (OCR room name annotations, requires Tesseract).
//   - GET /presets: List available parameter presets.
//   - GET /health: Liveness probe with version information.
//
// # Upload Limits
//
// Uploads must be PNG or JPEG, between 10KB and the configured maximum
// (10MB by default). File type is checked by magic bytes, not extension.
//
// # Error Responses
//
// Invalid or undecodable uploads return 400, detection timeouts return 504,
// and anything unexpected returns 500. Every error response carries a JSON
// body with "error" and "message" fields. A floor plan in which no rooms
// are found is not an error: it returns 200 with status "no_regions_found"
// and a list of suggestions.
package server
