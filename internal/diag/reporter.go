package diag

import "ferrite/internal/source"

// Reporter принимает готовые диагностики от драйвера.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter складывает диагностики в Bag; nil Bag всё отбрасывает.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

// ReportIO reports a failure outside any source text (load, cache).
func ReportIO(r Reporter, sev Severity, code Code, path string, err error) {
	if r == nil || err == nil {
		return
	}
	d := New(sev, code, source.Span{}, err.Error())
	if path != "" {
		d.Message = path + ": " + d.Message
	}
	r.Report(d)
}
