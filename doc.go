// Package segmatch classifies labeled multivariate time-series segments
// (accelerometer traces, pose-landmark tracks) and visualizes how a corpus
// of them relates.
//
// 🚀 What is in the box?
//
//	• Dynamic Time Warping with Sakoe-Chiba band, slope penalty, path recovery
//	• k-nearest-neighbour vote with distance cut-off and deterministic ties
//	• Persistable KNN models with one-time downsampling
//	• Classical MDS embedding of pairwise distance matrices
//
// Packages:
//
//	segment/    — LabeledSegment, Sequence and feature extraction
//	metric/     — per-timestep and per-sequence distance metrics
//	dtw/        — DTW distance, alignment path, SequenceMetric adapter
//	knn/        — Classify, Model, Downsample
//	mds/        — Classic, BuildDistanceMatrix, Validate
//	modelstore/ — JSON / YAML / zstd persistence with a locked store
//	viz/        — PNG and HTML scatter plots of embeddings
//	cmd/segmatch — command-line front end
//
// Quick example:
//
//	corpus := []segment.LabeledSegment{
//		{Label: "raise", Data: segment.Sequence{{0, 0}, {0, 1}, {0, 2}}},
//		{Label: "lower", Data: segment.Sequence{{0, 2}, {0, 1}, {0, 0}}},
//	}
//	label, ok, err := knn.Classify(query, corpus, 1, 5, dtw.Metric(nil))
//
// Install:
//
//	go install github.com/katalvlaran/segmatch/cmd/segmatch@latest
package segmatch
