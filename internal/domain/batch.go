package domain

// RecordError represents a per-record error during a seed import.
type RecordError struct {
	Row    int    `json:"row"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// BatchResult represents the result of processing a single batch.
type BatchResult struct {
	SuccessCount int           `json:"successCount"`
	FailedCount  int           `json:"failedCount"`
	Errors       []RecordError `json:"errors,omitempty"`
}

// ImportResult represents the final result of an import operation.
type ImportResult struct {
	TotalRecords     int           `json:"totalRecords"`
	ProcessedRecords int           `json:"processedRecords"`
	SuccessCount     int           `json:"successCount"`
	FailureCount     int           `json:"failureCount"`
	Errors           []RecordError `json:"errors,omitempty"`
}

// ValidResourceTypes contains all importable resource types.
var ValidResourceTypes = []string{"users", "content", "comments"}

// ValidFormats contains all valid export formats.
var ValidFormats = []string{"csv", "ndjson"}

// IsValidResourceType checks if a resource type is valid.
func IsValidResourceType(resourceType string) bool {
	for _, rt := range ValidResourceTypes {
		if rt == resourceType {
			return true
		}
	}
	return false
}

// IsValidFormat checks if an export format is valid.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
