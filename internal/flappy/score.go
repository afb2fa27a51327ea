package flappy

// scorePasses awards one point per pair the avatar has passed. The lower
// segment is the reference: a pair counts once its trailing edge is behind
// the avatar's leading edge. Scored pairs are marked in place and never
// counted again, so repeated invocations are idempotent.
func scorePasses(pairs []PipePair, pipeWidth, avatarLeadX float64, score int) int {
	for i := range pairs {
		if pairs[i].Scored {
			continue
		}
		if avatarLeadX > pairs[i].X+pipeWidth {
			pairs[i].Scored = true
			score++
		}
	}
	return score
}
