// SPDX-License-Identifier: MIT

package knn

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/segmatch/metric"
	"github.com/katalvlaran/segmatch/segment"
)

const (
	// DefaultDownsampleRatio keeps every timestep.
	DefaultDownsampleRatio = 1.0

	// MetricDTW is the distance metric identifier recorded by default.
	MetricDTW = "dtw"
)

// Model is a persistable KNN configuration together with its corpus.
// Field tags keep the on-disk names stable across JSON and YAML.
type Model struct {
	ID              string                   `json:"id,omitempty" yaml:"id,omitempty"`
	K               int                      `json:"k" yaml:"k"`
	MaxDistance     float64                  `json:"maxDistance" yaml:"maxDistance"`
	DistanceMetric  string                   `json:"distanceMetric" yaml:"distanceMetric"`
	DownsampleRatio float64                  `json:"downsampleRatio" yaml:"downsampleRatio"`
	CreatedAt       time.Time                `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	Segments        []segment.LabeledSegment `json:"segments" yaml:"segments"`
}

// ModelOption customizes NewModel.
type ModelOption func(*modelConfig)

type modelConfig struct {
	ratio  float64
	metric string
	id     string
	now    func() time.Time
}

// WithDownsampleRatio sets the fraction of timesteps kept per segment.
// Values outside (0, 1] make NewModel fail with ErrInvalidDownsampleRatio.
func WithDownsampleRatio(r float64) ModelOption {
	return func(c *modelConfig) { c.ratio = r }
}

// WithDistanceMetric records the name of the sequence metric the model is meant for.
func WithDistanceMetric(name string) ModelOption {
	return func(c *modelConfig) { c.metric = name }
}

// WithID sets the model identifier instead of a random UUID.
func WithID(id string) ModelOption {
	return func(c *modelConfig) { c.id = id }
}

// WithClock overrides the creation timestamp source (tests).
func WithClock(now func() time.Time) ModelOption {
	return func(c *modelConfig) { c.now = now }
}

// NewModel validates the configuration, downsamples every segment once and
// returns the model. The corpus is deep-copied; later changes to it do not
// reach the model.
func NewModel(corpus []segment.LabeledSegment, k int, maxDistance float64, opts ...ModelOption) (*Model, error) {
	cfg := modelConfig{
		ratio:  DefaultDownsampleRatio,
		metric: MetricDTW,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateConfig(k, maxDistance, cfg.ratio); err != nil {
		return nil, err
	}
	segments := make([]segment.LabeledSegment, len(corpus))
	for i, seg := range corpus {
		if seg.Label == "" || len(seg.Data) == 0 {
			return nil, fmt.Errorf("knn: segment %d: %w", i, ErrInvalidSegment)
		}
		segments[i] = segment.LabeledSegment{
			Label: seg.Label,
			Data:  Downsample(seg.Data, cfg.ratio),
		}
	}

	id := cfg.id
	if id == "" {
		id = uuid.NewString()
	}

	return &Model{
		ID:              id,
		K:               k,
		MaxDistance:     maxDistance,
		DistanceMetric:  cfg.metric,
		DownsampleRatio: cfg.ratio,
		CreatedAt:       cfg.now(),
		Segments:        segments,
	}, nil
}

// validateConfig is the InvalidConfiguration gate of NewModel and Validate.
func validateConfig(k int, maxDistance, ratio float64) error {
	if k <= 0 {
		return fmt.Errorf("knn: k=%d: %w", k, ErrInvalidK)
	}
	if maxDistance < 0 || math.IsNaN(maxDistance) {
		return fmt.Errorf("knn: maxDistance=%v: %w", maxDistance, ErrInvalidMaxDistance)
	}
	if !(ratio > 0 && ratio <= 1) {
		return fmt.Errorf("knn: ratio=%v: %w", ratio, ErrInvalidDownsampleRatio)
	}

	return nil
}

// Validate re-checks a model that did not come from NewModel (e.g. decoded
// from disk). Segments must carry a label and at least one timestep.
func (m *Model) Validate() error {
	if m == nil {
		return ErrNilModel
	}
	if err := validateConfig(m.K, m.MaxDistance, m.DownsampleRatio); err != nil {
		return err
	}
	for i, seg := range m.Segments {
		if seg.Label == "" || len(seg.Data) == 0 {
			return fmt.Errorf("knn: segment %d: %w", i, ErrInvalidSegment)
		}
	}

	return nil
}

// Labels returns the distinct labels of the model, sorted.
func (m *Model) Labels() []string {
	if m == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(m.Segments))
	out := make([]string, 0, len(m.Segments))
	for _, s := range m.Segments {
		if _, ok := seen[s.Label]; ok {
			continue
		}
		seen[s.Label] = struct{}{}
		out = append(out, s.Label)
	}
	sort.Strings(out)

	return out
}

// Neighbors returns the retained neighbours of query under the model's k and maxDistance.
func (m *Model) Neighbors(query segment.Sequence, fn metric.SequenceMetric) ([]Neighbor, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	return Nearest(query, m.Segments, m.K, m.MaxDistance, fn)
}

// Classify runs the KNN decision rule against the model's segments.
func (m *Model) Classify(query segment.Sequence, fn metric.SequenceMetric) (label string, ok bool, err error) {
	if m == nil {
		return "", false, ErrNilModel
	}

	return Classify(query, m.Segments, m.K, m.MaxDistance, fn)
}

// ClassifyWithModel is the function form of (*Model).Classify.
func ClassifyWithModel(model *Model, query segment.Sequence, fn metric.SequenceMetric) (label string, ok bool, err error) {
	return model.Classify(query, fn)
}

// Downsample keeps max(1, round(len*ratio)) evenly spaced timesteps of seq.
// Output position i takes input index round(i*len/target), clamped to the
// last index. No interpolation is done. A ratio >= 1, or a target that is
// not shorter than seq, returns a copy of seq. The result never aliases seq.
func Downsample(seq segment.Sequence, ratio float64) segment.Sequence {
	n := len(seq)
	if n == 0 || ratio >= 1 {
		return segment.Clone(seq)
	}
	target := max(1, int(math.Round(float64(n)*ratio)))
	if target >= n {
		return segment.Clone(seq)
	}

	step := float64(n) / float64(target)
	out := make(segment.Sequence, target)
	for i := 0; i < target; i++ {
		idx := min(int(math.Round(float64(i)*step)), n-1)
		out[i] = append(segment.FeatureVector(nil), seq[idx]...)
	}

	return out
}
