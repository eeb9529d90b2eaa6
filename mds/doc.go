// SPDX-License-Identifier: MIT

// Package mds embeds a pairwise distance matrix into a low-dimensional
// Euclidean space with classical (Torgerson) multidimensional scaling.
//
// 📌 Pipeline
//
//	segments ──BuildDistanceMatrix(DTW)──▶ D (n×n)
//	D ──Classic──▶ points (n×dims) + raw SVD factors
//
// ⚙️ Algorithm (Classic)
//  1. M = −½ · D∘D (element-wise square).
//  2. Double-center: M[i][j] += mean(M) − rowMean[i] − colMean[j].
//  3. Full SVD of M = U·diag(q)·Vᵀ (gonum/mat).
//  4. point[i][j] = U[i][j] · √max(q[j], 0); coordinates beyond the rank are 0.
//
// Only relative distances between output points carry meaning; signs and
// rotations of the embedding are arbitrary.
//
// 🧩 Degenerate input
//   - empty matrix  → empty Result, no error
//   - 1×1 matrix    → one point at the origin with `dims` zeros
//
// Classic does not check that D is a proper distance matrix (symmetric,
// zero diagonal, non-negative). Validate performs those checks for callers
// that want them.
//
// ⏱ Complexity: O(n³) time and O(n²) memory for the dense SVD.
package mds
