package scoring

import (
	"fmt"

	"github.com/daniela/contamination-checker/internal/types"
)

// ApplyThreshold drops rows scoring strictly below scoreThreshold (the bound
// is inclusive: a row at exactly the threshold is kept) and formats the
// display label for the survivors, marking group matches as averaged.
func ApplyThreshold(records []types.ScoredRecord, scoreThreshold float64) []types.ScoredRecord {
	var kept []types.ScoredRecord
	for _, record := range records {
		if record.Score < scoreThreshold {
			continue
		}
		if record.Match.IsGroup {
			record.ScoreLabel = fmt.Sprintf("%.2f (avg)", record.Score)
		} else {
			record.ScoreLabel = fmt.Sprintf("%.2f", record.Score)
		}
		kept = append(kept, record)
	}
	return kept
}
