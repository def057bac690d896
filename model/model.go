package model

// SkippedFile records a path that was left out of the document and why.
type SkippedFile struct {
	Path   string
	Reason string
}

// Stats describes the composed document.
type Stats struct {
	Files      int // files rendered into the document
	CodeBlocks int // fenced blocks found when re-parsing the output
	Bytes      int // length of the document in bytes
	Tokens     int // approximate LLM token count
}

// Summary holds the results of one generation run for display.
type Summary struct {
	Included []string
	Skipped  []SkippedFile
	Root     string
	Stats    Stats
	Message  string
}
