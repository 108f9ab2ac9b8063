package model

// ReportRequest selects a report and the purchase years it covers
type ReportRequest struct {
	Kind  string `json:"kind"`
	Years []int  `json:"years"`
}

// Point is a single bar or line point of a chart series
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Rows  int     `json:"rows"`
}

// Series is one chart of a report
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Report is the render-ready output handed to the presentation layer
type Report struct {
	ID         string   `json:"id,omitempty"`
	Kind       string   `json:"kind"`
	Label      string   `json:"label"`
	Title      string   `json:"title"`
	Years      []int    `json:"years"`
	Rows       int      `json:"rows"`                // rows left after the year filter
	Series     []Series `json:"series"`              // one per chart
	Reference  *float64 `json:"reference,omitempty"` // horizontal reference line, trend only
	Conclusion string   `json:"conclusion"`
}

// KindInfo describes one selectable report
type KindInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Catalog lists the reports and years a client can ask for
type Catalog struct {
	Kinds          []KindInfo `json:"kinds"`
	AvailableYears []int      `json:"availableYears"`
	DefaultYears   []int      `json:"defaultYears"`
}

// ErrorResponse is the JSON body of every failed API call
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}
