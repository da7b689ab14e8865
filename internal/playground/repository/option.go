package repository

// InsertRunOptions holds the fields of a new run. ID and CreatedAt are assigned by the store.
type InsertRunOptions struct {
	SessionID string
	Model     string
	Prompt    string
	Response  string
	Streamed  bool
}

// ListRecentRunsOptions selects the newest runs of a session.
// Limit <= 0 returns every stored run.
type ListRecentRunsOptions struct {
	SessionID string
	Limit     int
}
