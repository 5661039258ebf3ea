package models

// RunReport summarises one pipeline run for the statistics output.
type RunReport struct {
	Fetched    int
	Processed  int
	Operations int
	DryRun     bool
	Before     RateLimit
	After      RateLimit
	Handled    []DiscussionNode
}
