package eventbus

// Stream names and subjects published by the rounds service. Consumers (the
// PWA push gateway, notification workers) subscribe on the NATS side; this
// service is publish-only.
const (
	StreamRound = "round"
	StreamScore = "score"
)

const (
	SubjectRoundCreated     = "round.created"
	SubjectRoundFinished    = "round.finished"
	SubjectScoreRecorded    = "round.score.recorded"
	SubjectStandingsUpdated = "score.standings.updated"
	SubjectHandicapRevised  = "score.handicap.revised"
)

// streamSubjects maps each stream to the subject space it owns.
var streamSubjects = map[string][]string{
	StreamRound: {"round.>"},
	StreamScore: {"score.>"},
}

// StreamForSubject returns the stream that owns the given subject.
func StreamForSubject(subject string) string {
	if len(subject) >= len("score.") && subject[:len("score.")] == "score." {
		return StreamScore
	}
	return StreamRound
}
