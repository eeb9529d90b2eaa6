// SPDX-License-Identifier: MIT

package segment

import (
	"fmt"
	"sort"
)

// AccelerometerSample is one reading of a three-axis accelerometer.
// Timestamp is in milliseconds; it orders samples but never enters a feature vector.
type AccelerometerSample struct {
	X         float64 `json:"x" yaml:"x"`
	Y         float64 `json:"y" yaml:"y"`
	Z         float64 `json:"z" yaml:"z"`
	Timestamp int64   `json:"timestamp" yaml:"timestamp"`
}

// FromAccelerometer converts samples into a Sequence of x/y/z triples.
func FromAccelerometer(samples []AccelerometerSample) Sequence {
	out := make(Sequence, len(samples))
	for i, s := range samples {
		out[i] = FeatureVector{s.X, s.Y, s.Z}
	}

	return out
}

// SliceByTime returns the samples whose timestamp lies in [from, to].
// Samples are expected in timestamp order; the result shares the backing array.
func SliceByTime(samples []AccelerometerSample, from, to int64) ([]AccelerometerSample, error) {
	if to < from {
		return nil, fmt.Errorf("segment: [%d, %d]: %w", from, to, ErrBadWindow)
	}
	lo := sort.Search(len(samples), func(i int) bool { return samples[i].Timestamp >= from })
	hi := sort.Search(len(samples), func(i int) bool { return samples[i].Timestamp > to })

	return samples[lo:hi], nil
}

// Landmark is one pose keypoint. X and Y are normalized to the video frame,
// Z is relative depth.
type Landmark struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Pose landmark indices of the 33-point MediaPipe body model that are used
// as classification features.
const (
	Nose          = 0
	LeftShoulder  = 11
	RightShoulder = 12
	LeftElbow     = 13
	RightElbow    = 14
	LeftWrist     = 15
	RightWrist    = 16
	LeftHip       = 23
	RightHip      = 24
	LeftAnkle     = 27
	RightAnkle    = 28

	// PoseLandmarkCount is the number of landmarks in a full frame.
	PoseLandmarkCount = 33
)

// UsedLandmarks lists the landmarks kept by PoseFeatures, in output order.
var UsedLandmarks = []int{
	Nose,
	LeftShoulder, RightShoulder,
	LeftElbow, RightElbow,
	LeftWrist, RightWrist,
	LeftHip, RightHip,
	LeftAnkle, RightAnkle,
}

// PoseFeatureDim is the length of a vector produced by PoseFeatures.
var PoseFeatureDim = 3 * len(UsedLandmarks)

// PoseFeatures keeps the used landmarks of one frame, translates them so the
// hip midpoint is the origin and flattens them to x,y,z triples.
func PoseFeatures(frame []Landmark) (FeatureVector, error) {
	if len(frame) < PoseLandmarkCount {
		return nil, fmt.Errorf("segment: %d landmarks, want %d: %w", len(frame), PoseLandmarkCount, ErrIncompleteFrame)
	}
	lh, rh := frame[LeftHip], frame[RightHip]
	cx, cy, cz := (lh.X+rh.X)/2, (lh.Y+rh.Y)/2, (lh.Z+rh.Z)/2

	out := make(FeatureVector, 0, PoseFeatureDim)
	for _, idx := range UsedLandmarks {
		p := frame[idx]
		out = append(out, p.X-cx, p.Y-cy, p.Z-cz)
	}

	return out, nil
}

// FromPoseFrames converts a run of pose frames into a Sequence.
func FromPoseFrames(frames [][]Landmark) (Sequence, error) {
	out := make(Sequence, len(frames))
	for i, f := range frames {
		v, err := PoseFeatures(f)
		if err != nil {
			return nil, fmt.Errorf("segment: frame %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}
