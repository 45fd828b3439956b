// Package docintel talks to the external document-understanding service and
// models its analysis results.
package docintel

// AnalyzeOutcome is the terminal status of an analysis operation.
const (
	StatusSucceeded  = "succeeded"
	StatusFailed     = "failed"
	StatusRunning    = "running"
	StatusNotStarted = "notStarted"
)

// DefaultConfidence is used whenever the service omits a confidence score.
const DefaultConfidence = 0.5

// AnalyzeResponse is the envelope returned by the analysis operation.
type AnalyzeResponse struct {
	Status        string         `json:"status"`
	CreatedAt     string         `json:"createdDateTime"`
	LastUpdatedAt string         `json:"lastUpdatedDateTime"`
	AnalyzeResult *AnalyzeResult `json:"analyzeResult"`
	Error         *ServiceError  `json:"error,omitempty"`
}

// ServiceError is the error payload of a failed analysis.
type ServiceError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AnalyzeResult carries the three overlapping extraction shapes the service
// produces: typed document fields, free-text key-value pairs and raw tables.
type AnalyzeResult struct {
	APIVersion    string         `json:"apiVersion"`
	ModelID       string         `json:"modelId"`
	Content       string         `json:"content"`
	Tables        []Table        `json:"tables"`
	KeyValuePairs []KeyValuePair `json:"keyValuePairs"`
	Documents     []Document     `json:"documents"`
}

// Document is one recognized document with its typed fields.
type Document struct {
	DocType    string           `json:"docType"`
	Fields     map[string]Field `json:"fields"`
	Confidence float64          `json:"confidence"`
}

// Field is one typed value extracted by the service. Exactly which of the
// value slots is populated varies by model, so consumers try them in a fixed
// priority order.
type Field struct {
	Type        string   `json:"type"`
	Value       any      `json:"value,omitempty"`
	ValueNumber *float64 `json:"valueNumber,omitempty"`
	ValueString string   `json:"valueString,omitempty"`
	Content     string   `json:"content,omitempty"`
	Confidence  *float64 `json:"confidence,omitempty"`
}

// KeyValuePair is a free-text key/value association.
type KeyValuePair struct {
	Key        Span     `json:"key"`
	Value      Span     `json:"value"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Span is a fragment of recognized text.
type Span struct {
	Content string `json:"content"`
}

// Table is a recognized grid of cells.
type Table struct {
	RowCount    int    `json:"rowCount"`
	ColumnCount int    `json:"columnCount"`
	Cells       []Cell `json:"cells"`
}

// Cell is one table cell, addressed by row and column index.
type Cell struct {
	Kind        string   `json:"kind,omitempty"`
	RowIndex    int      `json:"rowIndex"`
	ColumnIndex int      `json:"columnIndex"`
	Content     string   `json:"content"`
	Confidence  *float64 `json:"confidence,omitempty"`
}

// FieldConfidence returns the field's confidence, defaulting when omitted.
func (f Field) FieldConfidence() float64 {
	if f.Confidence == nil {
		return DefaultConfidence
	}
	return *f.Confidence
}

// PairConfidence returns the pair's confidence, defaulting when omitted.
func (p KeyValuePair) PairConfidence() float64 {
	if p.Confidence == nil {
		return DefaultConfidence
	}
	return *p.Confidence
}
