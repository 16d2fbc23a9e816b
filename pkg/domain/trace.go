package domain

// Step records how one chunk of a seed body was transformed.
type Step struct {
	Index      int      `json:"index"`
	Selector   Symbol   `json:"selector"`
	Transforms []string `json:"transforms"`
	Chunk      string   `json:"chunk"`
	Input      Block    `json:"input"`
	Output     Block    `json:"output"`
}

// Trace is the full account of one reduction: how the seed was split and
// what each group contributed to the fingerprint.
type Trace struct {
	Mode        Mode   `json:"mode"`
	Seed        string `json:"seed"`
	Preamble    string `json:"preamble"`
	Body        string `json:"body"`
	Steps       []Step `json:"steps"`
	Fingerprint string `json:"fingerprint"`
}
