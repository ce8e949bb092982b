package sorter

import (
	"encoding/json"
	"time"
)

// OutcomeKind distinguishes a completed move from a recorded failure.
type OutcomeKind int

const (
	OutcomeMoved OutcomeKind = iota
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	if k == OutcomeMoved {
		return "moved"
	}
	return "failed"
}

// Outcome is the result for one eligible entry of a scan.
type Outcome struct {
	Kind        OutcomeKind
	Source      string
	Key         string
	Destination string // set when Kind is OutcomeMoved
	Err         error  // set when Kind is OutcomeFailed
}

// Report lists the outcomes of one scan in listing order.
type Report struct {
	ScanID     string
	Root       string
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   []Outcome
}

// Moved returns the successful outcomes.
func (r *Report) Moved() []Outcome {
	return r.filter(OutcomeMoved)
}

// Failed returns the failed outcomes.
func (r *Report) Failed() []Outcome {
	return r.filter(OutcomeFailed)
}

// HasFailures reports whether any entry failed.
func (r *Report) HasFailures() bool {
	for _, o := range r.Outcomes {
		if o.Kind == OutcomeFailed {
			return true
		}
	}
	return false
}

// Duration is the wall time of the scan.
func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

func (r *Report) filter(kind OutcomeKind) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func (r *Report) moved(src, key, dst string) {
	r.Outcomes = append(r.Outcomes, Outcome{Kind: OutcomeMoved, Source: src, Key: key, Destination: dst})
}

func (r *Report) failed(src, key string, err error) {
	r.Outcomes = append(r.Outcomes, Outcome{Kind: OutcomeFailed, Source: src, Key: key, Err: err})
}

type movedJSON struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

type failedJSON struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

type reportJSON struct {
	ScanID     string       `json:"scan_id"`
	Root       string       `json:"root"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	MovedFiles []movedJSON  `json:"moved_files"`
	Errors     []failedJSON `json:"errors"`
}

// MarshalJSON renders the report with the moved and failed entries split into
// "moved_files" and "errors". Both lists are always present.
func (r *Report) MarshalJSON() ([]byte, error) {
	payload := reportJSON{
		ScanID:     r.ScanID,
		Root:       r.Root,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		MovedFiles: []movedJSON{},
		Errors:     []failedJSON{},
	}
	for _, o := range r.Outcomes {
		switch o.Kind {
		case OutcomeMoved:
			payload.MovedFiles = append(payload.MovedFiles, movedJSON{Source: o.Source, Destination: o.Destination})
		case OutcomeFailed:
			msg := "unknown error"
			if o.Err != nil {
				msg = o.Err.Error()
			}
			payload.Errors = append(payload.Errors, failedJSON{Source: o.Source, Error: msg})
		}
	}
	return json.Marshal(payload)
}
