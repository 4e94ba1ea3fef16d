package model

// Source types accepted by the ingest stage
const (
	SourceFile   = "file"
	SourceURL    = "url"
	SourceInline = "inline"
	SourceSample = "sample"
	SourceSQLite = "sqlite"
	SourceUpload = "upload"
)

// Default column names, matching the blood-type dashboards
const (
	DefaultGroupColumn    = "country"
	DefaultCategoryColumn = "blood_type"
)

// Source represents where the input table comes from
type Source struct {
	Type  string `json:"type" jsonschema:"enum=file,enum=url,enum=inline,enum=sample,enum=sqlite,enum=upload"`
	URL   string `json:"url,omitempty"`   // file path, http(s) URL, sample name or sqlite DSN
	Data  string `json:"data,omitempty"`  // inline CSV text
	Query string `json:"query,omitempty"` // sqlite query
}

// Request is the body of POST /api/v1/dominance and the input of pipeline.Run
type Request struct {
	Source         Source `json:"source"`
	GroupColumn    string `json:"group_column,omitempty"`
	CategoryColumn string `json:"category_column,omitempty"`
	TopN           int    `json:"top_n,omitempty"`     // 0 keeps every group
	Focus          string `json:"focus,omitempty"`     // group whose breakdown is returned
	Direction      string `json:"direction,omitempty"` // gradient direction: asc or desc
}

// WithDefaults fills empty column names with the blood-type defaults.
func (r Request) WithDefaults() Request {
	if r.GroupColumn == "" {
		r.GroupColumn = DefaultGroupColumn
	}
	if r.CategoryColumn == "" {
		r.CategoryColumn = DefaultCategoryColumn
	}
	if r.TopN < 0 {
		r.TopN = 0
	}
	return r
}

// ProfileRequest asks for one row of a wide table (key column + numeric columns)
type ProfileRequest struct {
	Source    Source `json:"source"`
	KeyColumn string `json:"key_column,omitempty"`
	Key       string `json:"key"`
	Direction string `json:"direction,omitempty"`
}

// RankRequest asks for rows ranked by the sum of numeric columns
type RankRequest struct {
	Source    Source            `json:"source"`
	Label     string            `json:"label"`
	Sum       []string          `json:"sum"`
	Equals    map[string]string `json:"equals,omitempty"`
	Prefix    map[string]string `json:"prefix,omitempty"`
	TopN      int               `json:"top_n,omitempty"`
	Direction string            `json:"direction,omitempty"`
}
