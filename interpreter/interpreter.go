// Package interpreter normalizes raw model output against the shape each
// feature expects. Nothing in this package ever returns an error: every
// parse or validation failure resolves to a documented default, and the
// orchestration layer only ever sees normalized values.
package interpreter

import (
	"encoding/json"
	"strings"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/internal/logger"
)

// SentimentNeutral is the pinned sentiment of a degraded insight.
const SentimentNeutral = "Neutral"

// Insight is the structured result of review summarization.
type Insight struct {
	Summary   string   `json:"summary"`
	Pros      []string `json:"pros"`
	Cons      []string `json:"cons"`
	Sentiment string   `json:"sentiment"`
}

// InsightOutcome is a tagged parse result: either the model's JSON parsed
// cleanly (Degraded=false) or the documented fallback was substituted
// (Degraded=true). The raw text is kept either way for auditing.
type InsightOutcome struct {
	Insight  Insight
	Degraded bool
	Raw      string
}

// ReviewInsight parses model output as an insight object. On any parse
// failure the raw text itself becomes the best-effort summary rather than
// being discarded, pros/cons become empty lists and sentiment is pinned to
// Neutral.
func ReviewInsight(raw string) InsightOutcome {
	raw = strings.TrimSpace(raw)

	var in Insight
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return InsightOutcome{
			Insight: Insight{
				Summary:   raw,
				Pros:      []string{},
				Cons:      []string{},
				Sentiment: SentimentNeutral,
			},
			Degraded: true,
			Raw:      raw,
		}
	}

	// pros/cons are always lists, never absent
	if in.Pros == nil {
		in.Pros = []string{}
	}
	if in.Cons == nil {
		in.Cons = []string{}
	}
	return InsightOutcome{Insight: in, Raw: raw}
}

// ProductIDs parses model output as a JSON array of product ids and filters
// it against the current catalogue id set. Non-list output yields an empty
// list; non-integer elements and unknown ids are discarded, preserving the
// model's order for the survivors. The filter itself is silent; the
// discarded count is only logged for observability.
func ProductIDs(raw string, existing map[int64]struct{}) []int64 {
	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(raw)))
	dec.UseNumber()

	var parsed []any
	if err := dec.Decode(&parsed); err != nil {
		return []int64{}
	}

	ids := make([]int64, 0, len(parsed))
	discarded := 0
	for _, v := range parsed {
		num, ok := v.(json.Number)
		if !ok {
			discarded++
			continue
		}
		id, err := num.Int64()
		if err != nil {
			discarded++
			continue
		}
		if _, ok := existing[id]; !ok {
			discarded++
			continue
		}
		ids = append(ids, id)
	}
	if discarded > 0 {
		logger.Log.Debugf("product id interpretation discarded %d element(s)", discarded)
	}
	return ids
}

// Text passes free-text output through with surrounding whitespace trimmed.
func Text(raw string) string {
	return strings.TrimSpace(raw)
}
