package roundqueue

// HandicapRevisionJob recomputes handicap indexes for every profile-linked
// player of a finished round.
type HandicapRevisionJob struct {
	RoundID string `json:"round_id"`
}

// Kind returns the job type identifier for River.
func (HandicapRevisionJob) Kind() string { return "handicap_revision" }
