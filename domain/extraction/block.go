package extraction

// Query is one natural-language question bound to a stable alias. The alias
// is the identifier every downstream consumer keys on; it must be unique
// within a document's query set.
type Query struct {
	Alias string `validate:"required,max=64"`
	Text  string `validate:"required,max=256"`
}

type BlockKind string

const (
	KindQuery       BlockKind = "QUERY"
	KindQueryResult BlockKind = "QUERY_RESULT"
)

// ResultBlock is the backend's raw result node. Only QUERY and QUERY_RESULT
// kinds matter here; anything else is carried through untouched and ignored
// by the fold.
type ResultBlock struct {
	ID         string
	Kind       BlockKind
	Text       string
	Confidence float64

	// Query is set on QUERY blocks only.
	Query *Query
	// ResultIDs reference the QUERY_RESULT blocks answering this query,
	// in the order the backend linked them.
	ResultIDs []string
}

// CandidateAnswer is one resolved answer for a field. Multi-token answers
// are already concatenated; Confidence is the first token's score.
type CandidateAnswer struct {
	Alias        string  `json:"alias"`
	QuestionText string  `json:"questionText"`
	AnswerText   string  `json:"answerText"`
	Confidence   float64 `json:"confidence"`
}

// BestAnswerMap holds, per alias, the highest-confidence candidate seen so
// far within the current reconciliation scope.
type BestAnswerMap map[string]CandidateAnswer

// ReconciledDocument is the final per-document output of a batch run.
type ReconciledDocument struct {
	FileName string        `json:"fileName"`
	Fields   BestAnswerMap `json:"-"`
}
