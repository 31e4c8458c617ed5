// Package resonance is the linguistic feature aggregator facade: it turns
// free-form text into a structured multi-facet profile (sentiment with
// confidence, ranked entities, ranked relationships, pattern clusters,
// composite metrics and a bounded visualization tree), memoized behind a
// content-addressed FIFO cache.
package resonance

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/resonance/pkg/resonance/annotate"
	"github.com/cognicore/resonance/pkg/resonance/cache"
	"github.com/cognicore/resonance/pkg/resonance/entity"
	"github.com/cognicore/resonance/pkg/resonance/lexicon"
	"github.com/cognicore/resonance/pkg/resonance/metrics"
	"github.com/cognicore/resonance/pkg/resonance/pattern"
	"github.com/cognicore/resonance/pkg/resonance/relation"
	"github.com/cognicore/resonance/pkg/resonance/sentiment"
	"github.com/cognicore/resonance/pkg/resonance/tree"
)

// Annotator produces the annotated-text representation the pipeline
// consumes. The built-in rule-based annotator satisfies this; external
// annotation engines can be plugged in behind it.
type Annotator interface {
	Annotate(text string) (annotate.Doc, error)
}

// SentimentScorer produces the raw polarity/subjectivity pair.
type SentimentScorer interface {
	Score(doc annotate.Doc) sentiment.Sentiment
}

// SentimentScore is the full sentiment record of one analysis.
type SentimentScore struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Confidence   float64 `json:"confidence"`
}

// AnalysisResult is the immutable record produced by one analysis call;
// the unit stored in the cache and returned to callers.
type AnalysisResult struct {
	ID            string                  `json:"id"`
	Sentiment     SentimentScore          `json:"sentiment"`
	Entities      []entity.Entity         `json:"entities"`
	Relationships []relation.Relationship `json:"relationships"`
	Patterns      pattern.Bundle          `json:"semantic_patterns"`
	Metrics       metrics.Composite       `json:"metrics"`
	Tree          *tree.Node              `json:"tree_data"`
	WordCount     int                     `json:"word_count"`
	SentenceCount int                     `json:"sentence_count"`
	AnalyzedAt    time.Time               `json:"analyzed_at"`
	ElapsedMS     int64                   `json:"elapsed_ms"`
}

// Options configures an Engine. Zero values select the built-in
// collaborators and defaults.
type Options struct {
	Annotator Annotator
	Scorer    SentimentScorer
	Lexicons  *lexicon.Set
	CacheSize int
}

// Engine runs the analysis pipeline. The pipeline itself is stateless and
// reentrant; the cache is the only shared mutable state. Construct one
// Engine at process start and pass it by reference to all request
// handlers.
type Engine struct {
	annotator  Annotator
	scorer     SentimentScorer
	confidence *sentiment.ConfidenceEstimator
	entities   *entity.Ranker
	relations  *relation.Scorer
	patterns   *pattern.Extractor
	results    *cache.Cache[AnalysisResult]

	idMu    sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	lex := opts.Lexicons
	if lex == nil {
		lex = lexicon.Default()
	}
	annotator := opts.Annotator
	if annotator == nil {
		annotator = annotate.New(lex)
	}
	scorer := opts.Scorer
	if scorer == nil {
		scorer = sentiment.NewScorer(lex)
	}

	return &Engine{
		annotator:  annotator,
		scorer:     scorer,
		confidence: sentiment.NewConfidenceEstimator(lex),
		entities:   entity.NewRanker(lex),
		relations:  relation.NewScorer(),
		patterns:   pattern.NewExtractor(lex),
		results:    cache.New[AnalysisResult](opts.CacheSize),
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
}

// Analyze returns the analysis result for text, computing it at most once
// per distinct input while it stays cached. Concurrent misses for the same
// text may compute redundantly; the later writer wins the cache slot.
func (e *Engine) Analyze(text string) (AnalysisResult, error) {
	result, _, err := e.results.GetOrCompute(text, func() (AnalysisResult, error) {
		return e.analyze(text)
	})
	return result, err
}

// CacheStats reports the result cache state.
func (e *Engine) CacheStats() cache.Stats {
	return e.results.Stats()
}

// ClearCache empties the result cache.
func (e *Engine) ClearCache() {
	e.results.Clear()
}

// analyze runs the full pipeline. Whitespace-only input short-circuits to
// a well-defined empty result without invoking the annotator.
func (e *Engine) analyze(text string) (AnalysisResult, error) {
	started := time.Now()

	if strings.TrimSpace(text) == "" {
		return e.emptyResult(started), nil
	}

	doc, err := e.annotator.Annotate(text)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("annotate: %w", err)
	}

	raw := e.scorer.Score(doc)
	score := SentimentScore{
		Polarity:     raw.Polarity,
		Subjectivity: raw.Subjectivity,
		Confidence:   e.confidence.Estimate(text, raw.Polarity),
	}

	entities := e.entities.Rank(doc)
	relationships := e.relations.Score(doc)
	patterns := e.patterns.Extract(doc)

	stats := metrics.ComputeStats(doc)
	composite := metrics.Synthesize(stats, score.Polarity, score.Confidence)

	root := tree.Build(tree.Input{
		Polarity:          score.Polarity,
		SymbolicResonance: composite.SymbolicResonance,
		Sentiment:         score,
		Entities:          entities,
		Relationships:     relationships,
		Patterns:          patterns,
	})

	return AnalysisResult{
		ID:            e.newID(),
		Sentiment:     score,
		Entities:      entities,
		Relationships: relationships,
		Patterns:      patterns,
		Metrics:       composite,
		Tree:          root,
		WordCount:     stats.WordCount,
		SentenceCount: stats.SentenceCount,
		AnalyzedAt:    started.UTC(),
		ElapsedMS:     time.Since(started).Milliseconds(),
	}, nil
}

// emptyResult is the degenerate-input record: zero counts, neutral
// sentiment, empty collections, a root-only tree.
func (e *Engine) emptyResult(started time.Time) AnalysisResult {
	return AnalysisResult{
		ID:         e.newID(),
		Tree:       tree.Build(tree.Input{Sentiment: SentimentScore{}}),
		AnalyzedAt: started.UTC(),
		ElapsedMS:  time.Since(started).Milliseconds(),
	}
}

func (e *Engine) newID() string {
	e.idMu.Lock()
	defer e.idMu.Unlock()
	return ulid.MustNew(ulid.Now(), e.entropy).String()
}
