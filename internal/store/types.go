package store

// Run is one recorded execution of a scenario.
type Run struct {
	ID          string `json:"id"`
	Seq         int64  `json:"seq"`
	Scenario    string `json:"scenario"`
	Passed      int    `json:"passed"`
	Failed      int    `json:"failed"`
	KnownIssues int    `json:"known_issues"`
	Resolved    int    `json:"resolved"`
}

// Game is a stored canonical position.
type Game struct {
	Key       string   `json:"key"`
	Name      string   `json:"name,omitempty"`
	Rendering string   `json:"rendering"`
	Left      []string `json:"left"`
	Right     []string `json:"right"`
}

// Check is one stored check outcome. LHSKey and RHSKey are empty when the
// expression could not be evaluated.
type Check struct {
	RunID    string `json:"run_id"`
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Relation string `json:"relation,omitempty"`
	LHS      string `json:"lhs,omitempty"`
	RHS      string `json:"rhs,omitempty"`
	LHSKey   string `json:"lhs_key,omitempty"`
	RHSKey   string `json:"rhs_key,omitempty"`
	Want     string `json:"want"`
	Got      string `json:"got,omitempty"`
	Status   string `json:"status"`
	Detail   string `json:"detail,omitempty"`
}

// RunRecord is everything written for one run.
type RunRecord struct {
	Run    Run
	Games  []Game
	Checks []Check
}
