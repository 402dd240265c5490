package models

// OutputArtifact describes the Markdown file produced by a run.
type OutputArtifact struct {
	Dir     string
	Path    string
	Content string
}
