// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package render

import "github.com/KabelitzJ/sandbox-sub000/driver"

// Subrenderer is the contract a render-graph pass binds one or more
// implementations of to produce its draw/dispatch commands (spec.md
// §4.6). A subrenderer is constructed once per bound pass; its
// pipeline, descriptor layout, and any pass-scoped resources are
// built at that time and reused across frames.
type Subrenderer interface {
	// Update runs once per frame, before any bound pass begins
	// recording, giving the subrenderer a chance to rebuild its draw
	// list or upload buffers ahead of Render. Subrenderers with
	// nothing to prepare may implement it as a no-op.
	Update()

	// Render records this subrenderer's commands into cmd. It is
	// called once per frame for every pass the subrenderer is bound
	// to, in the bind order the render graph established, with the
	// pass's render pass already begun by the caller.
	Render(cmd driver.CmdBuffer)
}

// DrawListSubrenderer is the indirect-draw subrenderer grounded
// directly on DrawList: it renders every mesh range published for one
// bucket, using one material-keyed indirect draw call per mesh range.
// Binding the pipeline, descriptor tables, and vertex/index buffers
// for a given material key is left to the caller supplied at
// construction, since those are pipeline-layout specific concerns out
// of this package's scope (spec.md "Descriptor set layout
// reflection").
type DrawListSubrenderer struct {
	list   *DrawList
	bucket Bucket

	// bind is called once per material key before its indirect draw
	// commands are issued, so the caller can set the pipeline,
	// descriptor tables, and vertex/index buffers that key needs.
	bind func(cmd driver.CmdBuffer, key MaterialKey)
}

// NewDrawListSubrenderer binds a subrenderer to one bucket of list.
// bind is invoked once per material key drawn each frame, immediately
// before its indirect draw commands are recorded.
func NewDrawListSubrenderer(list *DrawList, bucket Bucket, bind func(cmd driver.CmdBuffer, key MaterialKey)) *DrawListSubrenderer {
	return &DrawListSubrenderer{list: list, bucket: bucket, bind: bind}
}

// Update is a no-op: the draw list itself is refreshed by whoever
// calls DrawList.Update, upstream of any bound subrenderer.
func (s *DrawListSubrenderer) Update() {}

// Render walks every mesh range in every material key published for
// the bucket this subrenderer was bound to, issuing one
// vkCmdDrawIndexedIndirect-equivalent call per mesh range: drawCount
// commands read directly out of the draw-commands device buffer
// starting at range.offset × sizeof(DrawCommand) (spec.md §4.5
// Dispatch phase / §6).
func (s *DrawListSubrenderer) Render(cmd driver.CmdBuffer) {
	for key, entry := range s.list.Ranges(s.bucket) {
		buf := entry.DrawCommandsBuffer
		if buf == nil || buf.Len() == 0 || buf.Handle() == nil {
			continue
		}
		s.bind(cmd, key)
		stride := buf.Stride()
		for _, ref := range entry.Ranges {
			off := int64(ref.Range.Offset) * stride
			cmd.DrawIndexedIndirect(buf.Handle(), off, int(ref.Range.Count), int(stride))
		}
	}
}
