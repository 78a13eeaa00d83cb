package transcript

// Span is a single timestamped fragment of transcribed speech, as produced
// by the ASR engine. Spans are immutable once stored for a run.
type Span struct {
	SourceID string `json:"source_id"`
	StartMs  int64  `json:"start_ms"`
	EndMs    int64  `json:"end_ms"`
	Text     string `json:"text"`
}

// Valid reports whether the span carries usable timestamps.
func (s Span) Valid() bool {
	return s.StartMs >= 0 && s.StartMs < s.EndMs
}

// Paragraph is a cleaned, merged run of spans forming one coherent block of
// text. SpanIDs are indices into the run's span sequence, contiguous and in
// time order.
type Paragraph struct {
	SourceID    string `json:"source_id"`
	ParagraphID int    `json:"paragraph_id"`
	StartMs     int64  `json:"start_ms"`
	EndMs       int64  `json:"end_ms"`
	Text        string `json:"text"`
	SpanIDs     []int  `json:"span_ids"`
}

// Chapter is a contiguous range of paragraphs covering one topical segment.
// Chapters carry a dense 0-based index matching time order, and together they
// partition the full paragraph sequence exactly.
type Chapter struct {
	Index        int    `json:"index"`
	Title        string `json:"title"`
	StartMs      int64  `json:"start_ms"`
	EndMs        int64  `json:"end_ms"`
	ParagraphIDs []int  `json:"paragraph_ids"`
}

// Tier identifies a summary granularity level.
type Tier string

const (
	TierMicro   Tier = "micro"
	TierChapter Tier = "chapter"
	TierGlobal  Tier = "global"
)

// Summary is one node of the three-tier summary hierarchy.
//
// For micro summaries ScopeID is a dense run-wide window index, Chapter is the
// owning chapter index and SourceIDs are paragraph ids. For chapter summaries
// ScopeID and Chapter are the chapter index and SourceIDs are the ScopeIDs of
// the chapter's micro summaries. The global summary has ScopeID 0 and sources
// every chapter index exactly once.
type Summary struct {
	Tier      Tier   `json:"tier"`
	ScopeID   int    `json:"scope_id"`
	Chapter   int    `json:"chapter"`
	StartMs   int64  `json:"start_ms,omitempty"`
	EndMs     int64  `json:"end_ms,omitempty"`
	Text      string `json:"text"`
	SourceIDs []int  `json:"source_ids"`
}

// Styled summary presentation styles.
const (
	StyleReview = "review"
	StyleExam   = "exam"
)

// StyledSummary is an alternate rendering of one chapter summary. The exam
// fields are only populated for StyleExam.
type StyledSummary struct {
	ChapterIndex     int      `json:"chapter_index"`
	Style            string   `json:"style"`
	Title            string   `json:"title"`
	Bullets          []string `json:"bullets"`
	ExamPoints       []string `json:"exam_points,omitempty"`
	QuestionPatterns []string `json:"question_patterns,omitempty"`
	Pitfalls         []string `json:"pitfalls,omitempty"`
	Tips             []string `json:"tips,omitempty"`
}

// Annotation labels, from most to least exam-relevant.
const (
	LabelKeyContent   = "key_content"
	LabelDefinition   = "definition"
	LabelExample      = "example"
	LabelMeta         = "meta"
	LabelMinorContent = "minor_content"
)

// Annotation is one sentence-level judgement from the focus analyzer.
// Importance is derived from Label so LLM and local modes stay shape-compatible.
type Annotation struct {
	ParagraphID   int    `json:"paragraph_id"`
	SentenceIndex int    `json:"sentence_index"`
	Sentence      string `json:"sentence"`
	Label         string `json:"label"`
	Note          string `json:"note,omitempty"`
}

// Importance maps the annotation label to a coarse importance bucket.
func (a Annotation) Importance() string {
	switch a.Label {
	case LabelKeyContent, LabelDefinition:
		return "high"
	case LabelMinorContent:
		return "low"
	default:
		return "normal"
	}
}
