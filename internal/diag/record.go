package diag

// Verdict classifies a single ingestion or build decision.
type Verdict uint8

const (
	// VerdictAccepted means the declaration entered the symbol table.
	VerdictAccepted Verdict = iota
	// VerdictSkipped means the declaration was dropped with a reason.
	VerdictSkipped
	// VerdictWarning flags a recoverable gap (unresolved name, shadowed entry).
	VerdictWarning
	// VerdictError flags a per-item failure (bad specialization arity, ...).
	// Errors are still recoverable: the item is omitted, the run continues.
	VerdictError
)

func (v Verdict) String() string {
	switch v {
	case VerdictAccepted:
		return "take"
	case VerdictSkipped:
		return "skip"
	case VerdictWarning:
		return "warning"
	case VerdictError:
		return "error"
	}
	return "unknown"
}

// Record is one structured decision: what happened, to which declaration,
// in which module, and why. Module and Reason may be empty.
type Record struct {
	Verdict Verdict
	Module  string
	Subject string
	Reason  string
}

// String renders the record in the one-line form the CLI prints:
//
//	take geometry::add
//	skip geometry::Foo - (has generic parameters)
//	warning: Widget - (unresolved dependency name)
func (r Record) String() string {
	subject := r.Subject
	if r.Module != "" {
		subject = r.Module + "::" + subject
	}
	switch r.Verdict {
	case VerdictAccepted, VerdictSkipped:
		if r.Reason != "" {
			return r.Verdict.String() + " " + subject + " - (" + r.Reason + ")"
		}
		return r.Verdict.String() + " " + subject
	default:
		if r.Reason != "" {
			return r.Verdict.String() + ": " + subject + " - (" + r.Reason + ")"
		}
		return r.Verdict.String() + ": " + subject
	}
}
