package validator

// Occurrence is one detected UPROPERTY annotation followed by an FGuid
// field declaration, with its resolved enclosing struct and initializer
// state.
type Occurrence struct {
	FilePath        string `json:"file_path"`
	LineNumber      int    `json:"line_number"` // 1-based line of the declaration
	StructName      string `json:"struct_name"`
	PropertyName    string `json:"property_name"`
	UPropertyLine   string `json:"uproperty_line"`
	DeclarationLine string `json:"declaration_line"`
	HasInitializer  bool   `json:"has_initializer"`
	Initializer     string `json:"initializer,omitempty"`
}

// FileOutcome is the validation result for a single header file. Found
// keeps declaration order; Valid, Invalid and Suppressed are a disjoint
// partition of Found.
type FileOutcome struct {
	FilePath   string       `json:"file_path"`
	Found      []Occurrence `json:"found"`
	Valid      []Occurrence `json:"valid"`
	Invalid    []Occurrence `json:"invalid"`
	Suppressed []Occurrence `json:"suppressed"`
}
