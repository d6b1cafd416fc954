package handler

import "time"

// DateFormat is the layout of daily analytics dates in API responses
const DateFormat = time.DateOnly

const (
	// DefaultExportFormat is used when the export request names no format
	DefaultExportFormat = "ndjson"

	// maxJSONBodySize caps JSON request bodies
	maxJSONBodySize = 1 << 20 // 1MB
	// maxMultipartOverhead is allowed on top of the file size for multipart framing
	maxMultipartOverhead = 64 << 10 // 64KB
)
