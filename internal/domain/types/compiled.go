package types

// Compiled is the fully expanded form of a contract: its spending policy,
// the assembled script, and every pre-committed transition it can take.
type Compiled struct {
	Name        string       `json:"name"`
	Path        string       `json:"path"`
	Amount      Amount       `json:"amount"`
	Policy      string       `json:"policy"`
	Script      string       `json:"script"`
	Branches    []Branch     `json:"branches"`
	Transitions []Transition `json:"transitions,omitempty"`
	Finishers   []Finisher   `json:"finishers,omitempty"`
}

// Branch is one satisfiable conjunction of the policy in disjunctive form.
type Branch struct {
	Index   int      `json:"index"`
	Policy  string   `json:"policy"`
	Witness []string `json:"witness"`
}

// Transition is a guarded, template-committed state change.
type Transition struct {
	Name         string   `json:"name"`
	Guard        string   `json:"guard"`
	TemplateHash string   `json:"template_hash"`
	Template     Template `json:"template"`
}

// Finisher is a guarded spend that commits to no template.
type Finisher struct {
	Name  string `json:"name"`
	Guard string `json:"guard"`
}

// Template is the set of outputs a transition commits to.
type Template struct {
	Sequence uint32   `json:"sequence,omitempty"`
	Fee      Amount   `json:"fee"`
	Outputs  []Output `json:"outputs"`
}

// Output is either a nested compiled contract or an OP_RETURN payload.
type Output struct {
	Amount   Amount    `json:"amount"`
	Contract *Compiled `json:"contract,omitempty"`
	Data     string    `json:"data,omitempty"`
}
