// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package render

import "github.com/go-gl/mathgl/mgl32"

// Submission is what the scene query layer feeds into a DrawList's
// Update for a single submesh instance (spec.md §4.5 step 2). One
// Submission corresponds to one submesh of one component instance on
// one node.
type Submission struct {
	MeshID       MeshID
	SubmeshIndex int
	MaterialKey  MaterialKey
	Transform    TransformData

	Tint        mgl32.Vec4
	MaterialVec mgl32.Vec4 // metallic, roughness, flexibility, anchor_height
	Selection   [2]uint32  // upper_id, lower_id
	BoneOffset  uint32
}

// RangeReference maps one mesh's contribution to a contiguous slice
// of a (pipeline, bucket)'s draw-command buffer.
type RangeReference struct {
	MeshID MeshID
	Range  DrawCommandRange
}

// BucketEntry publishes, for one material key within one bucket,
// which device buffers its draw commands and instance data live in
// and the per-mesh ranges within the command buffer.
type BucketEntry struct {
	DrawCommandsBuffer *DeviceBuffer[DrawCommand]
	InstanceDataBuffer *DeviceBuffer[InstanceData]
	Ranges             []RangeReference
}

type pipelineData struct {
	// mesh id -> per-submesh-index instance lists, in submesh-index
	// order (a submesh with no instances this frame is an empty,
	// skipped slice rather than absent).
	submeshInstances map[MeshID][][]InstanceData

	drawCommands *DeviceBuffer[DrawCommand]
	instanceData *DeviceBuffer[InstanceData]
}

func newPipelineData() *pipelineData {
	return &pipelineData{
		submeshInstances: make(map[MeshID][][]InstanceData),
		drawCommands:     NewDeviceBuffer[DrawCommand](),
		instanceData:     NewDeviceBuffer[InstanceData](),
	}
}

// DrawList is the material-keyed draw list: it collects per-node
// submesh instances, deduplicates materials, packs transform/
// instance/material data into resizable buffers, and emits bucketed
// indirect draw-command ranges. Translated near operation-for-
// operation from the original engine's basic_material_draw_list.
type DrawList struct {
	transformData []TransformData
	materialData  []MaterialData

	pipelines map[MaterialKey]*pipelineData

	// materialBuckets caches bucket classification per material key
	// across frames, same as the original's process-lifetime cache;
	// it is only ever written in pushMaterial and is harmless to
	// leave populated for materials no longer submitted.
	materialBuckets map[MaterialKey][]Bucket

	bucketRanges [bucketCount]map[MaterialKey]BucketEntry

	transformBuf *DeviceBuffer[TransformData]
	materialBuf  *DeviceBuffer[MaterialData]
}

// NewDrawList creates an empty draw list with its two shared buffers
// (transform_data, material_data) allocated at the minimum size.
func NewDrawList() *DrawList {
	dl := &DrawList{
		pipelines:       make(map[MaterialKey]*pipelineData),
		materialBuckets: make(map[MaterialKey][]Bucket),
		transformBuf:    NewDeviceBuffer[TransformData](),
		materialBuf:     NewDeviceBuffer[MaterialData](),
	}
	for i := range dl.bucketRanges {
		dl.bucketRanges[i] = make(map[MaterialKey]BucketEntry)
	}
	return dl
}

// Ranges returns the published bucket entries for bucket, keyed by
// material key. The returned map must not be retained past the next
// Update call.
func (dl *DrawList) Ranges(bucket Bucket) map[MaterialKey]BucketEntry {
	return dl.bucketRanges[bucket]
}

// Update runs the full per-frame cycle: clear, collect, build, and
// upload (spec.md §4.5 steps 1-4).
func (dl *DrawList) Update(submissions []Submission, meshes MeshProvider, materials MaterialProvider) {
	dl.clear()
	dl.collect(submissions, materials)
	dl.transformBuf.Update(dl.transformData)
	dl.materialBuf.Update(dl.materialData)
	for key, pipeline := range dl.pipelines {
		if len(pipeline.submeshInstances) == 0 {
			continue
		}
		dl.buildDrawCommands(key, pipeline, meshes)
	}
}

func (dl *DrawList) clear() {
	dl.transformData = dl.transformData[:0]
	dl.materialData = dl.materialData[:0]
	for _, p := range dl.pipelines {
		for k := range p.submeshInstances {
			delete(p.submeshInstances, k)
		}
	}
	for i := range dl.bucketRanges {
		for k := range dl.bucketRanges[i] {
			delete(dl.bucketRanges[i], k)
		}
	}
}

func (dl *DrawList) getOrCreatePipeline(key MaterialKey) *pipelineData {
	p, ok := dl.pipelines[key]
	if !ok {
		p = newPipelineData()
		dl.pipelines[key] = p
	}
	return p
}

func (dl *DrawList) pushMaterial(m Material) uint32 {
	index := uint32(len(dl.materialData))
	data := m.Data
	data.AlbedoIndex = m.AlbedoIndex
	data.NormalIndex = m.NormalIndex
	data.MRAOIndex = m.MRAOIndex
	data.EmissiveIndex = m.EmissiveIndex
	dl.materialData = append(dl.materialData, data)
	dl.materialBuckets[m.Key] = bucketsFor(m)
	return index
}

func (dl *DrawList) collect(submissions []Submission, materials MaterialProvider) {
	materialIndices := make(map[MaterialKey]uint32, len(submissions))
	for _, s := range submissions {
		material, ok := materials.Material(s.MaterialKey)
		if !ok {
			continue
		}

		transformIndex := uint32(len(dl.transformData))
		dl.transformData = append(dl.transformData, s.Transform)

		pipeline := dl.getOrCreatePipeline(s.MaterialKey)

		materialIndex, seen := materialIndices[s.MaterialKey]
		if !seen {
			materialIndex = dl.pushMaterial(material)
			materialIndices[s.MaterialKey] = materialIndex
		}

		instance := InstanceData{
			Tint:      s.Tint,
			Material:  s.MaterialVec,
			Payload:   [4]uint32{material.AlbedoIndex, material.NormalIndex, transformIndex, s.BoneOffset},
			Selection: [4]uint32{s.Selection[0], s.Selection[1], 0, 0},
		}

		perMesh := pipeline.submeshInstances[s.MeshID]
		for len(perMesh) <= s.SubmeshIndex {
			perMesh = append(perMesh, nil)
		}
		perMesh[s.SubmeshIndex] = append(perMesh[s.SubmeshIndex], instance)
		pipeline.submeshInstances[s.MeshID] = perMesh
	}
}

func (dl *DrawList) buildDrawCommands(key MaterialKey, pipeline *pipelineData, meshes MeshProvider) {
	var drawCommands []DrawCommand
	var instanceData []InstanceData
	var baseInstance uint32

	buckets := dl.materialBuckets[key]

	for meshID, perSubmesh := range pipeline.submeshInstances {
		mesh, ok := meshes.Mesh(meshID)
		if !ok {
			continue
		}

		rng := DrawCommandRange{Offset: uint32(len(drawCommands))}

		for submeshIndex, instances := range perSubmesh {
			if len(instances) == 0 {
				continue
			}
			sub := mesh.Submesh(submeshIndex)
			cmd := DrawCommand{
				IndexCount:    sub.IndexCount,
				InstanceCount: uint32(len(instances)),
				FirstIndex:    sub.IndexOffset,
				VertexOffset:  sub.VertexOffset,
				FirstInstance: baseInstance,
			}
			drawCommands = append(drawCommands, cmd)
			instanceData = append(instanceData, instances...)
			baseInstance += cmd.InstanceCount
			rng.Count++
		}

		if rng.Count > 0 {
			for _, b := range buckets {
				entry := dl.bucketRanges[b][key]
				entry.DrawCommandsBuffer = pipeline.drawCommands
				entry.InstanceDataBuffer = pipeline.instanceData
				entry.Ranges = append(entry.Ranges, RangeReference{MeshID: meshID, Range: rng})
				dl.bucketRanges[b][key] = entry
			}
		}
	}

	if len(drawCommands) > 0 {
		pipeline.drawCommands.Update(drawCommands)
		pipeline.instanceData.Update(instanceData)
	}
}
