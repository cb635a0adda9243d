// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package ecs

// Skin identifies where a node's joint matrices live in a shared
// joint buffer (render.JointLayout). Evaluating the joint hierarchy
// itself — animation sampling, skin-to-bone binding — is an
// asset/animation concern out of scope here (spec.md §1); this
// component only exists so a draw-list Submission's bone_offset
// payload field (spec.md §6) has somewhere real to read from.
type Skin struct {
	// JointOffset is the index of this node's first joint within the
	// shared joint buffer; consecutive joints follow it.
	JointOffset uint32

	// JointCount is the number of joints this skin occupies, starting
	// at JointOffset.
	JointCount uint32
}
