package transcript

import "fmt"

// ValidatePartition checks that chapters exactly partition the paragraph
// sequence 0..numParagraphs-1: dense indices, contiguous non-empty ranges,
// no gaps, no overlaps.
func ValidatePartition(chapters []Chapter, numParagraphs int) error {
	next := 0
	for i, ch := range chapters {
		if ch.Index != i {
			return fmt.Errorf("chapter at position %d has index %d, want %d", i, ch.Index, i)
		}
		if len(ch.ParagraphIDs) == 0 {
			return fmt.Errorf("chapter %d is empty", i)
		}
		for _, pid := range ch.ParagraphIDs {
			if pid != next {
				return fmt.Errorf("chapter %d: paragraph id %d breaks contiguity, want %d", i, pid, next)
			}
			next++
		}
	}
	if next != numParagraphs {
		return fmt.Errorf("chapters cover %d paragraphs, want %d", next, numParagraphs)
	}
	return nil
}

// ValidateCoverage checks the summary hierarchy invariants: every chapter
// summary sources exactly the micro summaries of its chapter, in order, and
// the global summary sources every chapter exactly once.
func ValidateCoverage(micro, chapters []Summary, global Summary) error {
	microByChapter := make(map[int][]int)
	for _, m := range micro {
		if m.Tier != TierMicro {
			return fmt.Errorf("summary %d in micro set has tier %q", m.ScopeID, m.Tier)
		}
		microByChapter[m.Chapter] = append(microByChapter[m.Chapter], m.ScopeID)
	}

	covered := make(map[int]bool)
	for i, cs := range chapters {
		if cs.Tier != TierChapter {
			return fmt.Errorf("summary at position %d in chapter set has tier %q", i, cs.Tier)
		}
		want := microByChapter[cs.ScopeID]
		if len(cs.SourceIDs) != len(want) {
			return fmt.Errorf("chapter %d summary sources %d micro summaries, want %d",
				cs.ScopeID, len(cs.SourceIDs), len(want))
		}
		for j, id := range cs.SourceIDs {
			if id != want[j] {
				return fmt.Errorf("chapter %d summary source %d is micro %d, want %d",
					cs.ScopeID, j, id, want[j])
			}
		}
		covered[cs.ScopeID] = true
	}
	for chIdx := range microByChapter {
		if !covered[chIdx] {
			return fmt.Errorf("chapter %d has micro summaries but no chapter summary", chIdx)
		}
	}

	if global.Tier != TierGlobal {
		return fmt.Errorf("global summary has tier %q", global.Tier)
	}
	if len(global.SourceIDs) != len(chapters) {
		return fmt.Errorf("global summary sources %d chapters, want %d", len(global.SourceIDs), len(chapters))
	}
	seen := make(map[int]bool)
	for _, id := range global.SourceIDs {
		if seen[id] {
			return fmt.Errorf("global summary sources chapter %d twice", id)
		}
		seen[id] = true
	}
	for _, cs := range chapters {
		if !seen[cs.ScopeID] {
			return fmt.Errorf("global summary misses chapter %d", cs.ScopeID)
		}
	}
	return nil
}
