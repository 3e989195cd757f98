package layer3

import (
	"strings"

	"github.com/go-latn/latn/pkg/phrase"
	"github.com/go-latn/latn/pkg/scene"
	"github.com/go-latn/latn/pkg/spatial"
	"github.com/go-latn/latn/pkg/stream"
	"github.com/go-latn/latn/pkg/vecspace"
)

// Ground walks every hypothesis's already-folded tokens left to right,
// scoring each PrepPhrase's spatial validity against the most recently
// grounded SceneObjectPhrase before it in the sequence (the provisional
// "moving" entity before Layer 4 attaches the PP to a verb). Scoring
// never removes a hypothesis; a PP whose moving or reference entity
// isn't resolved is simply left with ScoreValid false, the
// GroundingFailure state.
func Ground(hyps []stream.Hypothesis) {
	for _, h := range hyps {
		var lastSO *phrase.SceneObjectPhrase
		for _, tok := range h.Tokens {
			p, ok := tok.Phrase.(*phrase.Phrase)
			if !ok {
				continue
			}
			switch p.Kind {
			case phrase.KindSceneObjectPhrase:
				lastSO = p.SO
			case phrase.KindPrepPhrase:
				scorePrepPhrase(p.PP, lastSO)
			}
		}
	}
}

func scorePrepPhrase(pp *phrase.PrepPhrase, moving *phrase.SceneObjectPhrase) {
	if moving == nil || !moving.IsResolved() || pp.NP == nil || pp.NP.Kind != phrase.KindSceneObjectPhrase {
		pp.ScoreValid = false
		return
	}

	movingEntity, ok1 := moving.GetResolvedObject().(scene.Entity)
	refEntity, ok2 := pp.NP.SO.GetResolvedObject().(scene.Entity)
	if !ok1 || !ok2 {
		pp.ScoreValid = false
		return
	}

	movingDims := dimensionsFor(movingEntity)
	refDims := dimensionsFor(refEntity)
	dir := [3]float64{pp.Prep.Get(vecspace.DirX), pp.Prep.Get(vecspace.DirY), pp.Prep.Get(vecspace.DirZ)}

	if pp.Prep.Isa(vecspace.SpatialProximity) {
		pp.Score = spatial.ProximityScore(movingDims, refDims)
	} else {
		expected := spatial.ExpectedPosition(movingDims, refDims, dir)
		tolerance := spatial.Tolerance(movingDims, refDims)
		pp.Score = spatial.Score(expected, movingDims.Position, tolerance)
	}
	pp.ScoreValid = true
}

// dimensionsFor derives spatial.Dimensions from a scene entity. Shape is
// a name heuristic ("sphere" in the entity's name selects ShapeSphere,
// everything else ShapeCube) since the scene model doesn't carry a
// dedicated shape-kind field.
func dimensionsFor(e scene.Entity) spatial.Dimensions {
	shape := spatial.ShapeCube
	if strings.Contains(strings.ToLower(e.Name()), "sphere") {
		shape = spatial.ShapeSphere
	}
	return spatial.Dimensions{Position: e.Position(), Scale: e.Scale(), Shape: shape}
}
