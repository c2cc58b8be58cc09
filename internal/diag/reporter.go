package diag

// Reporter is the minimal contract for receiving decision records.
// Implementations: Bag (collects), WriterReporter (prints), MultiReporter
// (fan-out), NopReporter.
type Reporter interface {
	Report(Record)
}

// NopReporter discards every record.
type NopReporter struct{}

func (NopReporter) Report(Record) {}

// MultiReporter fans a record out to every wrapped reporter.
type MultiReporter []Reporter

func (m MultiReporter) Report(r Record) {
	for _, rep := range m {
		if rep != nil {
			rep.Report(r)
		}
	}
}

// Accept reports that a declaration was taken into the symbol table.
func Accept(rep Reporter, module, subject string) {
	report(rep, Record{Verdict: VerdictAccepted, Module: module, Subject: subject})
}

// AcceptWithNote reports an accepted declaration with a qualifier, e.g. a
// struct taken opaque because its layout is not representable.
func AcceptWithNote(rep Reporter, module, subject, note string) {
	report(rep, Record{Verdict: VerdictAccepted, Module: module, Subject: subject, Reason: note})
}

// Skip reports a dropped declaration with its reason.
func Skip(rep Reporter, module, subject, reason string) {
	report(rep, Record{Verdict: VerdictSkipped, Module: module, Subject: subject, Reason: reason})
}

// Warn reports a recoverable gap.
func Warn(rep Reporter, subject, reason string) {
	report(rep, Record{Verdict: VerdictWarning, Subject: subject, Reason: reason})
}

// Error reports a per-item failure. The item is omitted; the run continues.
func Error(rep Reporter, subject, reason string) {
	report(rep, Record{Verdict: VerdictError, Subject: subject, Reason: reason})
}

func report(rep Reporter, r Record) {
	if rep != nil {
		rep.Report(r)
	}
}
