package predictor

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ModelVersion is the fixed version reported with every prediction
const ModelVersion = "1.0.0"

// Confidence bounds for generated predictions (closed interval)
const (
	ConfidenceMin = 0.70
	ConfidenceMax = 0.99
)

// Label is a sentiment class emitted by the mock model
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// labels lists every class the mock model can return
var labels = []Label{LabelPositive, LabelNegative, LabelNeutral}

// Result is a single mock inference result
type Result struct {
	Prediction   Label   `json:"prediction"`
	Confidence   float64 `json:"confidence"`
	ModelVersion string  `json:"model_version"`
	Timestamp    string  `json:"timestamp"`
}

// MetricsRecorder records generated predictions
type MetricsRecorder interface {
	RecordPrediction(label string, confidence float64)
}

// Config holds predictor configuration
type Config struct {
	// Seed for the random source; 0 seeds from the wall clock.
	Seed int64

	// Now supplies timestamps; nil uses time.Now.
	Now func() time.Time

	// Metrics is optional.
	Metrics MetricsRecorder

	Logger *zap.Logger
}

// Predictor generates mock predictions in place of a real model. A single
// instance is shared by all requests; draws from the random source are
// serialized because rand.Rand is not safe for concurrent use.
type Predictor struct {
	mu      sync.Mutex
	rng     *rand.Rand
	now     func() time.Time
	metrics MetricsRecorder
	logger  *zap.Logger
}

// New creates a new mock predictor
func New(cfg *Config) *Predictor {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Predictor{
		rng:     rand.New(rand.NewSource(seed)),
		now:     now,
		metrics: cfg.Metrics,
		logger:  logger,
	}
}

// Predict draws one label uniformly from the label set and one confidence
// uniformly from [ConfidenceMin, ConfidenceMax], rounded half away from
// zero to two decimals. The timestamp is the current UTC time in RFC 3339
// format.
func (p *Predictor) Predict() *Result {
	p.mu.Lock()
	label := labels[p.rng.Intn(len(labels))]
	confidence := round2(ConfidenceMin + p.rng.Float64()*(ConfidenceMax-ConfidenceMin))
	p.mu.Unlock()

	result := &Result{
		Prediction:   label,
		Confidence:   confidence,
		ModelVersion: ModelVersion,
		Timestamp:    p.now().UTC().Format(time.RFC3339),
	}

	if p.metrics != nil {
		p.metrics.RecordPrediction(string(result.Prediction), result.Confidence)
	}

	p.logger.Info("prediction made",
		zap.String("prediction", string(result.Prediction)),
		zap.Float64("confidence", result.Confidence),
		zap.String("model_version", result.ModelVersion),
		zap.String("timestamp", result.Timestamp))

	return result
}

// round2 rounds half away from zero to two decimals
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
