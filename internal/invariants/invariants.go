// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants gates extra self-checks that are too expensive for
// normal builds. Checks run when the "invariants" build tag is set, and in
// race builds, which are already paying for instrumentation.
package invariants

import "github.com/martypapa/debug-tree/internal/buildtags"

// Enabled is true if we were built with the "invariants" or "race" build
// tags.
const Enabled = buildtags.Invariants || buildtags.Race

// RaceEnabled is true if we were built with the "race" build tag. Stress
// tests use it to scale down iteration counts under the race detector.
const RaceEnabled = buildtags.Race
