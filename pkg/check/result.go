package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check kind.
type Result struct {
	Name    string   // e.g., "toml: commands/*.toml"
	Status  Status   // OK or FAIL
	Details []string // human-readable details
	Err     error    // typed error for failures, see errors.go
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Pass marks the result as successful and records how many files were validated.
func (r *Result) Pass(count int) Result {
	r.Status = StatusOK
	r.Err = nil
	noun := "files"
	if count == 1 {
		noun = "file"
	}
	r.AddDetailf("validated %d %s", count, noun)
	return *r
}
