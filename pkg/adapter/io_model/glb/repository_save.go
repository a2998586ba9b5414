// 指示: miu200521358
package glb

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/adapter/io_common"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/usecase/port/moutput"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// 1頂点に保持できるウェイトグループ数。glTFのJOINTS_0/WEIGHTS_0の上限に合わせる。
const maxVertexWeightGroups = 4

// Save はモデルをGLB形式で保存する。
func (r *GlbRepository) Save(path string, modelData *model.Model, opts moutput.SaveOptions) error {
	if !strings.EqualFold(filepath.Ext(path), ".glb") {
		return io_common.NewIoExtInvalid(path, nil)
	}
	if modelData == nil || modelData.Skeleton == nil || modelData.Meshes == nil {
		return io_common.NewIoWriteFailed("保存対象モデルが未設定です", nil)
	}
	logGlbInfo("GLB保存開始: file=%s joints=%d meshes=%d",
		filepath.Base(path), modelData.Skeleton.Len(), modelData.Meshes.Len())

	doc := gltf.NewDocument()
	doc.Asset.Generator = "mu_hoyo2vrc"
	if len(doc.Scenes) == 0 {
		doc.Scenes = append(doc.Scenes, &gltf.Scene{})
		doc.Scene = gltf.Index(0)
	}

	jointNodeIndexes, err := appendJointNodes(doc, modelData.Skeleton)
	if err != nil {
		return err
	}
	skinIndex := appendSkin(doc, modelData.Skeleton, jointNodeIndexes)

	jointSlots := map[string]int{}
	for slot, joint := range modelData.Skeleton.Joints() {
		jointSlots[joint.Name] = slot
	}

	materialIndexes := map[string]int{}
	for _, mesh := range modelData.Meshes.Meshes() {
		if err := appendMeshNode(doc, modelData, mesh, skinIndex, jointSlots, materialIndexes); err != nil {
			return err
		}
	}

	if opts.IncludeWarnings && len(modelData.Warnings) > 0 {
		extras, err := json.Marshal(map[string]any{
			model.ConversionWarningExtrasKey: modelData.Warnings,
		})
		if err != nil {
			return io_common.NewIoWriteFailed("警告extrasの生成に失敗しました", err)
		}
		doc.Extras = json.RawMessage(extras)
	}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return io_common.NewIoWriteFailed("GLBファイルの書き込みに失敗しました", err)
	}
	logGlbInfo("GLB保存完了: file=%s", filepath.Base(path))
	return nil
}

// appendJointNodes はスケルトンのジョイントをglTF nodeへ変換する。
func appendJointNodes(doc *gltf.Document, skeleton *model.Skeleton) (map[string]int, error) {
	jointNodeIndexes := map[string]int{}
	for _, joint := range skeleton.Joints() {
		node := &gltf.Node{
			Name:     joint.Name,
			Matrix:   [16]float64(identityMat4()),
			Rotation: [4]float64{0, 0, 0, 1},
			Scale:    [3]float64{1, 1, 1},
		}
		jointNodeIndexes[joint.Name] = len(doc.Nodes)
		doc.Nodes = append(doc.Nodes, node)
	}

	// 親がいるジョイントは親ヘッドからの相対位置、ルートはワールド位置を持つ。
	for _, joint := range skeleton.Joints() {
		nodeIndex := jointNodeIndexes[joint.Name]
		parent, hasParent := skeleton.GetByName(joint.ParentName)
		if joint.ParentName != "" && hasParent {
			parentNodeIndex, ok := jointNodeIndexes[parent.Name]
			if !ok {
				return nil, io_common.NewIoWriteFailed("親ジョイントnodeの解決に失敗しました", nil)
			}
			doc.Nodes[nodeIndex].Translation = toGltfVec3(joint.Head.Subed(parent.Head))
			doc.Nodes[parentNodeIndex].Children = append(doc.Nodes[parentNodeIndex].Children, nodeIndex)
			continue
		}
		doc.Nodes[nodeIndex].Translation = toGltfVec3(joint.Head)
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, nodeIndex)
	}
	return jointNodeIndexes, nil
}

// appendSkin はスケルトン全ジョイントを参照するskinを追加する。
// inverseBindMatricesは省略し、glTF既定の単位行列に委ねる。
func appendSkin(doc *gltf.Document, skeleton *model.Skeleton, jointNodeIndexes map[string]int) int {
	skin := &gltf.Skin{Name: "Armature"}
	for _, joint := range skeleton.Joints() {
		skin.Joints = append(skin.Joints, jointNodeIndexes[joint.Name])
	}
	doc.Skins = append(doc.Skins, skin)
	return len(doc.Skins) - 1
}

// appendMeshNode は1メッシュをglTF mesh/nodeへ変換して追加する。
func appendMeshNode(
	doc *gltf.Document,
	modelData *model.Model,
	mesh *model.Mesh,
	skinIndex int,
	jointSlots map[string]int,
	materialIndexes map[string]int,
) error {
	positions := make([][3]float32, 0, len(mesh.Vertices))
	texCoords := make([][2]float32, 0, len(mesh.Vertices))
	texCoords2 := make([][2]float32, 0, len(mesh.Vertices))
	jointIndexes := make([][4]uint16, 0, len(mesh.Vertices))
	jointWeights := make([][4]float32, 0, len(mesh.Vertices))
	colors := make([][4]float32, 0, len(mesh.Vertices))
	hasColor := false
	hasUV2 := false
	truncated := false

	for _, vertex := range mesh.Vertices {
		pos := toGltfVec3(vertex.Position)
		positions = append(positions, [3]float32{float32(pos[0]), float32(pos[1]), float32(pos[2])})
		texCoords = append(texCoords, [2]float32{float32(vertex.UV[0]), float32(vertex.UV[1])})
		texCoords2 = append(texCoords2, [2]float32{float32(vertex.UV2[0]), float32(vertex.UV2[1])})
		if vertex.UV2 != ([2]float64{}) {
			hasUV2 = true
		}
		colors = append(colors, [4]float32{
			float32(vertex.Color[0]),
			float32(vertex.Color[1]),
			float32(vertex.Color[2]),
			float32(vertex.Color[3]),
		})
		if vertex.Color != ([4]float64{}) {
			hasColor = true
		}

		slots, weights, wasTruncated := packVertexWeights(vertex, jointSlots)
		jointIndexes = append(jointIndexes, slots)
		jointWeights = append(jointWeights, weights)
		if wasTruncated {
			truncated = true
		}
	}
	if truncated {
		modelData.AddWarning(model.ConversionWarningWeightsTruncated)
		logGlbWarn("頂点ウェイトを%dグループへ切り捨てました: mesh=%s", maxVertexWeightGroups, mesh.Name)
	}

	primitive := &gltf.Primitive{
		Attributes: map[string]int{
			gltf.POSITION:   modeler.WritePosition(doc, positions),
			gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, texCoords),
			gltf.JOINTS_0:   modeler.WriteJoints(doc, jointIndexes),
			gltf.WEIGHTS_0:  modeler.WriteWeights(doc, jointWeights),
		},
		// 面情報は保持しないため点群として出力する。
		Mode: gltf.PrimitivePoints,
	}
	if hasUV2 {
		primitive.Attributes["TEXCOORD_1"] = modeler.WriteTextureCoord(doc, texCoords2)
	}
	if hasColor {
		primitive.Attributes[gltf.COLOR_0] = modeler.WriteColor(doc, colors)
	}
	if mesh.MaterialName != "" {
		primitive.Material = gltf.Index(resolveMaterialIndex(doc, mesh.MaterialName, materialIndexes))
	}

	gltfMesh := &gltf.Mesh{Name: mesh.Name, Primitives: []*gltf.Primitive{primitive}}
	if len(mesh.ShapeKeys) > 0 {
		targetNames := make([]string, 0, len(mesh.ShapeKeys))
		for _, key := range mesh.ShapeKeys {
			offsets := make([][3]float32, len(mesh.Vertices))
			for i := range offsets {
				if i < len(key.Offsets) {
					offset := toGltfVec3(key.Offsets[i])
					offsets[i] = [3]float32{float32(offset[0]), float32(offset[1]), float32(offset[2])}
				}
			}
			primitive.Targets = append(primitive.Targets, map[string]int{
				gltf.POSITION: modeler.WritePosition(doc, offsets),
			})
			targetNames = append(targetNames, key.Name)
			gltfMesh.Weights = append(gltfMesh.Weights, 0)
		}
		extras, err := json.Marshal(map[string]any{"targetNames": targetNames})
		if err != nil {
			return io_common.NewIoWriteFailed("シェイプキー名extrasの生成に失敗しました", err)
		}
		gltfMesh.Extras = json.RawMessage(extras)
	}

	meshIndex := len(doc.Meshes)
	doc.Meshes = append(doc.Meshes, gltfMesh)
	node := &gltf.Node{
		Name:     mesh.Name,
		Mesh:     gltf.Index(meshIndex),
		Skin:     gltf.Index(skinIndex),
		Matrix:   [16]float64(identityMat4()),
		Rotation: [4]float64{0, 0, 0, 1},
		Scale:    [3]float64{1, 1, 1},
	}
	nodeIndex := len(doc.Nodes)
	doc.Nodes = append(doc.Nodes, node)
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, nodeIndex)
	return nil
}

// packVertexWeights は頂点ウェイトを上位4グループへ詰め、合計1へ正規化する。
func packVertexWeights(vertex *model.Vertex, jointSlots map[string]int) ([4]uint16, [4]float32, bool) {
	type groupWeight struct {
		slot   int
		weight float64
	}
	groups := make([]groupWeight, 0, len(vertex.Weights))
	for name, weight := range vertex.Weights {
		slot, ok := jointSlots[name]
		if !ok || weight <= 0 {
			continue
		}
		groups = append(groups, groupWeight{slot: slot, weight: weight})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].weight != groups[j].weight {
			return groups[i].weight > groups[j].weight
		}
		return groups[i].slot < groups[j].slot
	})

	truncated := len(groups) > maxVertexWeightGroups
	if truncated {
		groups = groups[:maxVertexWeightGroups]
	}
	total := 0.0
	for _, group := range groups {
		total += group.weight
	}

	var slots [4]uint16
	var weights [4]float32
	if total <= 0 {
		return slots, weights, truncated
	}
	for i, group := range groups {
		slots[i] = uint16(group.slot)
		weights[i] = float32(group.weight / total)
	}
	return slots, weights, truncated
}

// resolveMaterialIndex は材質名からglTF材質indexを取得・生成する。
func resolveMaterialIndex(doc *gltf.Document, materialName string, materialIndexes map[string]int) int {
	if index, ok := materialIndexes[materialName]; ok {
		return index
	}
	index := len(doc.Materials)
	doc.Materials = append(doc.Materials, &gltf.Material{Name: materialName})
	materialIndexes[materialName] = index
	return index
}
