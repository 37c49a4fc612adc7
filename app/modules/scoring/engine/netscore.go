package scoring

// NetScore is the gross strokes minus the strokes received on that hole.
func NetScore(grossStrokes, playingHandicap, strokeIndex int) int {
	return grossStrokes - StrokesReceived(playingHandicap, strokeIndex)
}

// StablefordPoints awards standard Stableford points for one hole based on
// the net score relative to par. Points are never negative and cap at 5.
func StablefordPoints(grossStrokes, par, playingHandicap, strokeIndex int) int {
	diff := NetScore(grossStrokes, playingHandicap, strokeIndex) - par
	switch {
	case diff <= -3:
		return 5
	case diff == -2:
		return 4
	case diff == -1:
		return 3
	case diff == 0:
		return 2
	case diff == 1:
		return 1
	default:
		return 0
	}
}

// Result is the semantic label for a hole score relative to par.
type Result string

const (
	ResultAlbatross   Result = "albatross"
	ResultEagle       Result = "eagle"
	ResultBirdie      Result = "birdie"
	ResultPar         Result = "par"
	ResultBogey       Result = "bogey"
	ResultDoubleBogey Result = "doubleBogey"
	ResultTriplePlus  Result = "triplePlus"
)

// ResultLabel classifies a hole score. With useHandicap the classification is
// against the net score, otherwise against gross strokes.
func ResultLabel(strokes, par, playingHandicap, strokeIndex int, useHandicap bool) Result {
	score := strokes
	if useHandicap {
		score = NetScore(strokes, playingHandicap, strokeIndex)
	}
	return classify(score - par)
}

// ResultVsPar classifies gross strokes against par, ignoring handicap
// entirely. Used for display coloring independent of the competitive mode.
func ResultVsPar(strokes, par int) Result {
	return classify(strokes - par)
}

func classify(diff int) Result {
	switch {
	case diff <= -3:
		return ResultAlbatross
	case diff == -2:
		return ResultEagle
	case diff == -1:
		return ResultBirdie
	case diff == 0:
		return ResultPar
	case diff == 1:
		return ResultBogey
	case diff == 2:
		return ResultDoubleBogey
	default:
		return ResultTriplePlus
	}
}
