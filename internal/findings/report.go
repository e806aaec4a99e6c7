package findings

// Report aggregates the findings of one validation run in emission order.
type Report struct {
	Errors   []Finding `json:"errors" yaml:"errors"`
	Warnings []Finding `json:"warnings" yaml:"warnings"`
}

// NewReport returns an empty report whose lists serialise as [] rather than null.
func NewReport() *Report {
	return &Report{
		Errors:   []Finding{},
		Warnings: []Finding{},
	}
}

// Add files f under errors or warnings according to its severity.
func (r *Report) Add(f Finding) {
	if f.Severity == SeverityError {
		r.Errors = append(r.Errors, f)
		return
	}
	r.Warnings = append(r.Warnings, f)
}

// Error appends an error finding.
func (r *Report) Error(rule Rule, assetType AssetType, assetID, fieldName, message string) {
	r.Add(Finding{
		Rule:      rule,
		Message:   message,
		Severity:  SeverityError,
		AssetID:   assetID,
		AssetType: assetType,
		FieldName: fieldName,
	})
}

// Warn appends a warning finding.
func (r *Report) Warn(rule Rule, assetType AssetType, assetID, fieldName, message string) {
	r.Add(Finding{
		Rule:      rule,
		Message:   message,
		Severity:  SeverityWarning,
		AssetID:   assetID,
		AssetType: assetType,
		FieldName: fieldName,
	})
}

func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// All returns errors followed by warnings.
func (r *Report) All() []Finding {
	all := make([]Finding, 0, len(r.Errors)+len(r.Warnings))
	all = append(all, r.Errors...)
	return append(all, r.Warnings...)
}

// For returns the findings that point at one specific asset, errors first.
func (r *Report) For(assetType AssetType, assetID string) []Finding {
	var matched []Finding
	for _, f := range r.All() {
		if f.AssetType == assetType && f.AssetID == assetID {
			matched = append(matched, f)
		}
	}
	return matched
}
