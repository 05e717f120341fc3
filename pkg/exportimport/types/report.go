package types

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type IssueKind string

const (
	IssueSchemaVersion    IssueKind = "schema_version"
	IssueInvalidID        IssueKind = "invalid_id"
	IssueDuplicateID      IssueKind = "duplicate_id"
	IssueInvalidField     IssueKind = "invalid_field"
	IssueMissingReference IssueKind = "missing_reference"
	IssueMissingCatalog   IssueKind = "missing_catalog_entry"
)

// Issue is one finding of the validator. Issues are data; they never abort
// validation.
type Issue struct {
	Severity Severity   `json:"severity"`
	Kind     IssueKind  `json:"kind"`
	Entity   EntityType `json:"entity,omitempty"`
	ID       uint       `json:"id,omitempty"`
	Field    string     `json:"field,omitempty"`
	Message  string     `json:"message"`
}

// Counts holds a number per entity type.
type Counts map[EntityType]int

func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Preview is the read-only outcome of validating a snapshot.
type Preview struct {
	Valid                bool    `json:"valid"`
	Mode                 Mode    `json:"mode"`
	SchemaCompatible     bool    `json:"schema_compatible"`
	SchemaVersion        string  `json:"schema_version"`
	CurrentSchemaVersion string  `json:"current_schema_version"`
	Issues               []Issue `json:"issues"`
	Counts               Counts  `json:"counts"`
	TotalItems           int     `json:"total_items"`
	WouldDelete          *int    `json:"would_delete,omitempty"`
	WouldDeleteByType    Counts  `json:"would_delete_by_type,omitempty"`
}

func (p *Preview) ErrorCount() int {
	n := 0
	for _, is := range p.Issues {
		if is.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Result reports an import call. ItemsUpdated is always zero: records are
// only ever created.
type Result struct {
	RunID            string  `json:"run_id"`
	Mode             Mode    `json:"mode"`
	Success          bool    `json:"success"`
	Message          string  `json:"message"`
	SchemaCompatible bool    `json:"schema_compatible"`
	Issues           []Issue `json:"issues"`
	Counts           Counts  `json:"counts"`
	ItemsImported    int     `json:"items_imported"`
	ItemsUpdated     int     `json:"items_updated"`
	ItemsDeleted     int     `json:"items_deleted"`
	Deleted          Counts  `json:"deleted,omitempty"`
	WouldDelete      *int    `json:"would_delete,omitempty"`
	IDMappings       IDMap   `json:"id_mappings,omitempty"`
}
