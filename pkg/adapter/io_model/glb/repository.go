// 指示: miu200521358
// Package glb はGLB形式のモデル入出力を提供する。
package glb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/adapter/io_common"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/mmath"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/shared/base/logging"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/tidwall/gjson"
	"gonum.org/v1/gonum/spatial/r3"
)

// LoadProgressEventType はGLB読込進捗イベント種別を表す。
type LoadProgressEventType string

const (
	// LoadProgressEventTypeDocumentDecoded はglTF文書解析完了イベントを表す。
	LoadProgressEventTypeDocumentDecoded LoadProgressEventType = "document_decoded"
	// LoadProgressEventTypeSkeletonBuilt はスケルトン構築完了イベントを表す。
	LoadProgressEventTypeSkeletonBuilt LoadProgressEventType = "skeleton_built"
	// LoadProgressEventTypePrimitiveProcessed はプリミティブ変換進行イベントを表す。
	LoadProgressEventTypePrimitiveProcessed LoadProgressEventType = "primitive_processed"
	// LoadProgressEventTypeCompleted はGLB読込完了イベントを表す。
	LoadProgressEventTypeCompleted LoadProgressEventType = "completed"
)

// expressionPoseEpsilon はレスト位置と同一とみなす移動量の閾値。
const expressionPoseEpsilon = 1e-9

// LoadProgressEvent はGLB読込進捗イベントを表す。
type LoadProgressEvent struct {
	Type           LoadProgressEventType
	NodeCount      int
	JointCount     int
	MeshCount      int
	PrimitiveTotal int
	PrimitiveDone  int
}

// GlbRepository はGLB入出力の契約を表す。
type GlbRepository struct {
	loadProgressReporter func(LoadProgressEvent)
}

// NewGlbRepository はGlbRepositoryを生成する。
func NewGlbRepository() *GlbRepository {
	return &GlbRepository{}
}

// SetLoadProgressReporter はGLB読込進捗受信コールバックを設定する。
func (r *GlbRepository) SetLoadProgressReporter(reporter func(LoadProgressEvent)) {
	if r == nil {
		return
	}
	r.loadProgressReporter = reporter
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
// .vrm はGLBコンテナなのでそのまま読み込める。
func (r *GlbRepository) CanLoad(path string) bool {
	ext := filepath.Ext(path)
	return strings.EqualFold(ext, ".glb") || strings.EqualFold(ext, ".gltf") || strings.EqualFold(ext, ".vrm")
}

// InferName はパスから表示名を推定する。
func (r *GlbRepository) InferName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Load はGLBモデルを読み込む。
func (r *GlbRepository) Load(path string) (*model.Model, error) {
	if !r.CanLoad(path) {
		return nil, io_common.NewIoExtInvalid(path, nil)
	}
	loadTargetName := filepath.Base(path)
	logGlbInfo("GLB読込開始: file=%s", loadTargetName)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, io_common.NewIoFileNotFound(path, err)
		}
		return nil, io_common.NewIoParseFailed("GLBファイル情報の取得に失敗しました", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, io_common.NewIoParseFailed("GLB文書の解析に失敗しました", err)
	}
	primitiveTotal := countPrimitives(doc)
	r.reportLoadProgress(LoadProgressEvent{
		Type:           LoadProgressEventTypeDocumentDecoded,
		NodeCount:      len(doc.Nodes),
		MeshCount:      len(doc.Meshes),
		PrimitiveTotal: primitiveTotal,
	})
	logGlbInfo(
		"GLB読込ステップ: 文書解析完了 nodes=%d meshes=%d skins=%d primitives=%d",
		len(doc.Nodes),
		len(doc.Meshes),
		len(doc.Skins),
		primitiveTotal,
	)

	parentIndexes, err := buildNodeParentIndexes(doc)
	if err != nil {
		return nil, err
	}
	worldPositions, err := buildNodeWorldPositions(doc, parentIndexes)
	if err != nil {
		return nil, err
	}
	logGlbInfo("GLB読込ステップ: ノードワールド座標計算完了")

	modelData := model.NewModel(r.InferName(path))
	modelData.SetPath(path)

	jointNames, err := appendSkeleton(modelData, doc, parentIndexes, worldPositions)
	if err != nil {
		return nil, err
	}
	r.reportLoadProgress(LoadProgressEvent{
		Type:           LoadProgressEventTypeSkeletonBuilt,
		NodeCount:      len(doc.Nodes),
		JointCount:     modelData.Skeleton.Len(),
		MeshCount:      len(doc.Meshes),
		PrimitiveTotal: primitiveTotal,
	})
	logGlbInfo("GLB読込ステップ: スケルトン構築完了 joints=%d", modelData.Skeleton.Len())

	if err := appendExpressionPoses(modelData, doc, jointNames); err != nil {
		return nil, err
	}
	if len(modelData.Expressions) > 0 {
		logGlbInfo("GLB読込ステップ: 表情ポーズ抽出完了 poses=%d", len(modelData.Expressions))
	}

	if err := appendMeshes(modelData, doc, jointNames, func(done int) {
		r.reportLoadProgress(LoadProgressEvent{
			Type:           LoadProgressEventTypePrimitiveProcessed,
			PrimitiveTotal: primitiveTotal,
			PrimitiveDone:  done,
		})
	}); err != nil {
		return nil, err
	}
	logGlbInfo("GLB読込ステップ: メッシュ構築完了 meshes=%d", modelData.Meshes.Len())

	info, err := os.Stat(path)
	if err != nil {
		return nil, io_common.NewIoParseFailed("GLBファイル情報の取得に失敗しました", err)
	}
	modelData.SetFileModTime(info.ModTime().UnixNano())
	modelData.UpdateHash()
	r.reportLoadProgress(LoadProgressEvent{
		Type:           LoadProgressEventTypeCompleted,
		NodeCount:      len(doc.Nodes),
		JointCount:     modelData.Skeleton.Len(),
		MeshCount:      modelData.Meshes.Len(),
		PrimitiveTotal: primitiveTotal,
		PrimitiveDone:  primitiveTotal,
	})
	logGlbInfo("GLB読込完了: file=%s hash=%s", loadTargetName, modelData.Hash())
	return modelData, nil
}

// reportLoadProgress は読込進捗イベントを通知する。
func (r *GlbRepository) reportLoadProgress(event LoadProgressEvent) {
	if r == nil || r.loadProgressReporter == nil {
		return
	}
	r.loadProgressReporter(event)
}

// countPrimitives はglTF内のprimitive総数を返す。
func countPrimitives(doc *gltf.Document) int {
	total := 0
	for _, mesh := range doc.Meshes {
		total += len(mesh.Primitives)
	}
	return total
}

// logGlbInfo はGLB入出力のINFOログを出力する。
func logGlbInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}

// logGlbWarn はGLB入出力の警告ログを出力する。
func logGlbWarn(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Warn(format, params...)
}

// buildNodeParentIndexes はnode配列から親インデックス配列を生成する。
func buildNodeParentIndexes(doc *gltf.Document) ([]int, error) {
	parentIndexes := make([]int, len(doc.Nodes))
	for i := range parentIndexes {
		parentIndexes[i] = -1
	}
	for parentIndex, node := range doc.Nodes {
		for _, childIndex := range node.Children {
			if childIndex < 0 || childIndex >= len(doc.Nodes) {
				return nil, io_common.NewIoParseFailed(fmt.Sprintf("node.children のindexが不正です: %d", childIndex), nil)
			}
			if parentIndexes[childIndex] == -1 {
				parentIndexes[childIndex] = parentIndex
			}
		}
	}
	return parentIndexes, nil
}

// buildNodeWorldPositions はnodeのローカル変換からワールド座標を算出する。
func buildNodeWorldPositions(doc *gltf.Document, parents []int) ([]mmath.Vec3, error) {
	worldMats := make([]mat4, len(doc.Nodes))
	state := make([]int, len(doc.Nodes))
	for i := range doc.Nodes {
		if err := resolveNodeWorldMatrix(doc, parents, i, state, worldMats); err != nil {
			return nil, err
		}
	}
	worldPositions := make([]mmath.Vec3, len(doc.Nodes))
	for i := range worldMats {
		worldPositions[i] = toDomainVec3(worldMats[i].translation())
	}
	return worldPositions, nil
}

// resolveNodeWorldMatrix はnodeのワールド行列を再帰的に解決する。
func resolveNodeWorldMatrix(doc *gltf.Document, parents []int, nodeIndex int, state []int, worldMats []mat4) error {
	if state[nodeIndex] == 2 {
		return nil
	}
	if state[nodeIndex] == 1 {
		return io_common.NewIoParseFailed(fmt.Sprintf("node親子関係に循環があります: %d", nodeIndex), nil)
	}
	state[nodeIndex] = 1
	local := nodeLocalMatrix(doc.Nodes[nodeIndex])
	parentIndex := parents[nodeIndex]
	if parentIndex >= 0 {
		if err := resolveNodeWorldMatrix(doc, parents, parentIndex, state, worldMats); err != nil {
			return err
		}
		worldMats[nodeIndex] = worldMats[parentIndex].muled(local)
	} else {
		worldMats[nodeIndex] = local
	}
	state[nodeIndex] = 2
	return nil
}

// toDomainVec3 はglTFのY-up座標をZ-upの内部座標へ変換する。
func toDomainVec3(v [3]float64) mmath.Vec3 {
	return mmath.Vec3{Vec: r3.Vec{X: v[0], Y: -v[2], Z: v[1]}}
}

// toGltfVec3 はZ-upの内部座標をglTFのY-up座標へ変換する。
func toGltfVec3(v mmath.Vec3) [3]float64 {
	return [3]float64{v.X, v.Z, -v.Y}
}

// appendSkeleton はskinのジョイントnodeからスケルトンを構築し、node→ジョイント名表を返す。
func appendSkeleton(
	modelData *model.Model,
	doc *gltf.Document,
	parents []int,
	worldPositions []mmath.Vec3,
) (map[int]string, error) {
	jointNodeSet := map[int]struct{}{}
	for _, skin := range doc.Skins {
		for _, jointNodeIndex := range skin.Joints {
			if jointNodeIndex < 0 || jointNodeIndex >= len(doc.Nodes) {
				return nil, io_common.NewIoParseFailed(fmt.Sprintf("skin.joints のindexが不正です: %d", jointNodeIndex), nil)
			}
			jointNodeSet[jointNodeIndex] = struct{}{}
		}
	}
	if len(jointNodeSet) == 0 {
		return nil, io_common.NewIoParseFailed("skinのジョイントが存在しません", nil)
	}

	jointNames := map[int]string{}
	usedNames := map[string]int{}
	for nodeIndex := range doc.Nodes {
		if _, isJoint := jointNodeSet[nodeIndex]; !isJoint {
			continue
		}
		name := resolveNodeJointName(nodeIndex, doc.Nodes[nodeIndex].Name)
		jointNames[nodeIndex] = ensureUniqueName(name, usedNames)
	}

	for nodeIndex := range doc.Nodes {
		jointName, isJoint := jointNames[nodeIndex]
		if !isJoint {
			continue
		}
		head := worldPositions[nodeIndex]
		tail := head
		for _, childIndex := range doc.Nodes[nodeIndex].Children {
			if _, childIsJoint := jointNames[childIndex]; childIsJoint {
				tail = worldPositions[childIndex]
				break
			}
		}
		joint := model.NewJoint(jointName, head, tail)
		joint.ParentName = nearestJointAncestorName(nodeIndex, parents, jointNames)
		if err := modelData.Skeleton.Append(joint); err != nil {
			return nil, io_common.NewIoParseFailed("スケルトン構築に失敗しました", err)
		}
	}
	return jointNames, nil
}

// resolveNodeJointName はnode名からジョイント名を決定する。
func resolveNodeJointName(nodeIndex int, nodeName string) string {
	trimmed := strings.TrimSpace(nodeName)
	if trimmed != "" {
		return trimmed
	}
	return fmt.Sprintf("joint_%03d", nodeIndex)
}

// ensureUniqueName は同名の重複を回避する。
func ensureUniqueName(name string, used map[string]int) string {
	if _, ok := used[name]; !ok {
		used[name] = 1
		return name
	}
	index := used[name]
	used[name] = index + 1
	return fmt.Sprintf("%s_%d", name, index)
}

// nearestJointAncestorName は最も近いジョイント祖先の名前を返す。
func nearestJointAncestorName(nodeIndex int, parents []int, jointNames map[int]string) string {
	current := parents[nodeIndex]
	for current >= 0 {
		if name, ok := jointNames[current]; ok {
			return name
		}
		current = parents[current]
	}
	return ""
}

// appendMeshes はglTFメッシュnodeをドメインメッシュへ変換して追加する。
func appendMeshes(
	modelData *model.Model,
	doc *gltf.Document,
	jointNames map[int]string,
	primitiveDone func(int),
) error {
	usedMeshNames := map[string]int{}
	done := 0
	for nodeIndex, node := range doc.Nodes {
		if node.Mesh == nil {
			continue
		}
		meshIndex := *node.Mesh
		if meshIndex < 0 || meshIndex >= len(doc.Meshes) {
			return io_common.NewIoParseFailed(fmt.Sprintf("node.mesh のindexが不正です: %d", meshIndex), nil)
		}
		gltfMesh := doc.Meshes[meshIndex]

		var skinJoints []string
		if node.Skin != nil {
			skinIndex := *node.Skin
			if skinIndex < 0 || skinIndex >= len(doc.Skins) {
				return io_common.NewIoParseFailed(fmt.Sprintf("node.skin のindexが不正です: %d", skinIndex), nil)
			}
			for _, jointNodeIndex := range doc.Skins[skinIndex].Joints {
				skinJoints = append(skinJoints, jointNames[jointNodeIndex])
			}
		}

		mesh := &model.Mesh{Name: ensureUniqueName(resolveMeshName(doc, nodeIndex, meshIndex), usedMeshNames)}
		targetNames := meshTargetNames(gltfMesh)
		shapeKeysByName := map[string]*model.ShapeKey{}

		for _, primitive := range gltfMesh.Primitives {
			vertexBase := len(mesh.Vertices)
			if err := appendPrimitive(doc, mesh, primitive, skinJoints, targetNames, shapeKeysByName, vertexBase); err != nil {
				return err
			}
			done++
			if primitiveDone != nil {
				primitiveDone(done)
			}
		}
		for _, key := range mesh.ShapeKeys {
			for len(key.Offsets) < len(mesh.Vertices) {
				key.Offsets = append(key.Offsets, mmath.Vec3{})
			}
		}
		if err := modelData.Meshes.Append(mesh); err != nil {
			return io_common.NewIoParseFailed("メッシュ構築に失敗しました", err)
		}
	}
	return nil
}

// resolveMeshName はメッシュ名を決定する。glTFメッシュ名を優先しnode名へ順に代替する。
func resolveMeshName(doc *gltf.Document, nodeIndex int, meshIndex int) string {
	if name := strings.TrimSpace(doc.Meshes[meshIndex].Name); name != "" {
		return name
	}
	if name := strings.TrimSpace(doc.Nodes[nodeIndex].Name); name != "" {
		return name
	}
	return fmt.Sprintf("Mesh_%03d", meshIndex)
}

// meshTargetNames はmesh.extrasからシェイプキー名一覧を取得する。
func meshTargetNames(gltfMesh *gltf.Mesh) []string {
	raw, err := json.Marshal(gltfMesh.Extras)
	if err != nil {
		return nil
	}
	result := gjson.GetBytes(raw, "targetNames")
	if !result.IsArray() {
		return nil
	}
	var names []string
	for _, entry := range result.Array() {
		names = append(names, entry.String())
	}
	return names
}

// appendPrimitive は1プリミティブの頂点とシェイプキー差分をメッシュへ追加する。
func appendPrimitive(
	doc *gltf.Document,
	mesh *model.Mesh,
	primitive *gltf.Primitive,
	skinJoints []string,
	targetNames []string,
	shapeKeysByName map[string]*model.ShapeKey,
	vertexBase int,
) error {
	posIndex, ok := primitive.Attributes[gltf.POSITION]
	if !ok {
		return io_common.NewIoParseFailed("primitiveにPOSITION属性がありません", nil)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIndex], nil)
	if err != nil {
		return io_common.NewIoParseFailed("POSITION属性の読み取りに失敗しました", err)
	}
	if mesh.MaterialName == "" && primitive.Material != nil {
		materialIndex := *primitive.Material
		if materialIndex >= 0 && materialIndex < len(doc.Materials) {
			mesh.MaterialName = doc.Materials[materialIndex].Name
		}
	}

	var texCoords [][2]float32
	if uvIndex, hasUV := primitive.Attributes[gltf.TEXCOORD_0]; hasUV {
		texCoords, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvIndex], nil)
		if err != nil {
			return io_common.NewIoParseFailed("TEXCOORD_0属性の読み取りに失敗しました", err)
		}
	}
	var texCoords2 [][2]float32
	if uv2Index, hasUV2 := primitive.Attributes["TEXCOORD_1"]; hasUV2 {
		texCoords2, err = modeler.ReadTextureCoord(doc, doc.Accessors[uv2Index], nil)
		if err != nil {
			return io_common.NewIoParseFailed("TEXCOORD_1属性の読み取りに失敗しました", err)
		}
	}
	colors, err := readVertexColors(doc, primitive)
	if err != nil {
		return err
	}

	var joints [][4]uint16
	var weights [][4]float32
	if jointIndex, hasJoints := primitive.Attributes[gltf.JOINTS_0]; hasJoints && len(skinJoints) > 0 {
		joints, err = modeler.ReadJoints(doc, doc.Accessors[jointIndex], nil)
		if err != nil {
			return io_common.NewIoParseFailed("JOINTS_0属性の読み取りに失敗しました", err)
		}
		weightIndex, hasWeights := primitive.Attributes[gltf.WEIGHTS_0]
		if !hasWeights {
			return io_common.NewIoParseFailed("JOINTS_0に対応するWEIGHTS_0属性がありません", nil)
		}
		weights, err = modeler.ReadWeights(doc, doc.Accessors[weightIndex], nil)
		if err != nil {
			return io_common.NewIoParseFailed("WEIGHTS_0属性の読み取りに失敗しました", err)
		}
	}

	for i, pos := range positions {
		vertex := &model.Vertex{
			Position: toDomainVec3([3]float64{float64(pos[0]), float64(pos[1]), float64(pos[2])}),
		}
		if i < len(texCoords) {
			vertex.UV = [2]float64{float64(texCoords[i][0]), float64(texCoords[i][1])}
		}
		if i < len(texCoords2) {
			vertex.UV2 = [2]float64{float64(texCoords2[i][0]), float64(texCoords2[i][1])}
		}
		if i < len(colors) {
			vertex.Color = colors[i]
		}
		if i < len(joints) && i < len(weights) {
			for slot := 0; slot < 4; slot++ {
				weight := float64(weights[i][slot])
				if weight <= 0 {
					continue
				}
				jointSlot := int(joints[i][slot])
				if jointSlot < 0 || jointSlot >= len(skinJoints) {
					continue
				}
				vertex.SetWeight(skinJoints[jointSlot], vertex.WeightFor(skinJoints[jointSlot])+weight)
			}
		}
		mesh.Vertices = append(mesh.Vertices, vertex)
	}

	for targetIndex, target := range primitive.Targets {
		targetPosIndex, hasTargetPos := target[gltf.POSITION]
		if !hasTargetPos {
			continue
		}
		offsets, err := modeler.ReadPosition(doc, doc.Accessors[targetPosIndex], nil)
		if err != nil {
			return io_common.NewIoParseFailed("シェイプキー差分の読み取りに失敗しました", err)
		}
		keyName := fmt.Sprintf("Target_%03d", targetIndex)
		if targetIndex < len(targetNames) && strings.TrimSpace(targetNames[targetIndex]) != "" {
			keyName = targetNames[targetIndex]
		}
		key, exists := shapeKeysByName[keyName]
		if !exists {
			key = &model.ShapeKey{Name: keyName}
			shapeKeysByName[keyName] = key
			mesh.ShapeKeys = append(mesh.ShapeKeys, key)
		}
		for len(key.Offsets) < vertexBase {
			key.Offsets = append(key.Offsets, mmath.Vec3{})
		}
		for _, offset := range offsets {
			key.Offsets = append(key.Offsets, toDomainVec3([3]float64{float64(offset[0]), float64(offset[1]), float64(offset[2])}))
		}
	}
	return nil
}

// readVertexColors はCOLOR_0属性を読み取り0-1の実数値へ正規化する。
func readVertexColors(doc *gltf.Document, primitive *gltf.Primitive) ([][4]float64, error) {
	colorIndex, hasColor := primitive.Attributes[gltf.COLOR_0]
	if !hasColor {
		return nil, nil
	}
	accessor := doc.Accessors[colorIndex]
	var colors [][4]float64
	appendColor := func(r, g, b, a float64) {
		colors = append(colors, [4]float64{r, g, b, a})
	}
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		if accessor.Type == gltf.AccessorVec3 {
			values, err := modeler.ReadAccessor(doc, accessor, nil)
			if err != nil {
				return nil, io_common.NewIoParseFailed("COLOR_0属性の読み取りに失敗しました", err)
			}
			for _, v := range values.([][3]uint8) {
				appendColor(float64(v[0])/255, float64(v[1])/255, float64(v[2])/255, 1)
			}
		} else {
			values, err := modeler.ReadAccessor(doc, accessor, nil)
			if err != nil {
				return nil, io_common.NewIoParseFailed("COLOR_0属性の読み取りに失敗しました", err)
			}
			for _, v := range values.([][4]uint8) {
				appendColor(float64(v[0])/255, float64(v[1])/255, float64(v[2])/255, float64(v[3])/255)
			}
		}
	case gltf.ComponentUshort:
		if accessor.Type == gltf.AccessorVec3 {
			values, err := modeler.ReadAccessor(doc, accessor, nil)
			if err != nil {
				return nil, io_common.NewIoParseFailed("COLOR_0属性の読み取りに失敗しました", err)
			}
			for _, v := range values.([][3]uint16) {
				appendColor(float64(v[0])/65535, float64(v[1])/65535, float64(v[2])/65535, 1)
			}
		} else {
			values, err := modeler.ReadAccessor(doc, accessor, nil)
			if err != nil {
				return nil, io_common.NewIoParseFailed("COLOR_0属性の読み取りに失敗しました", err)
			}
			for _, v := range values.([][4]uint16) {
				appendColor(float64(v[0])/65535, float64(v[1])/65535, float64(v[2])/65535, float64(v[3])/65535)
			}
		}
	case gltf.ComponentFloat:
		if accessor.Type == gltf.AccessorVec3 {
			values, err := modeler.ReadAccessor(doc, accessor, nil)
			if err != nil {
				return nil, io_common.NewIoParseFailed("COLOR_0属性の読み取りに失敗しました", err)
			}
			for _, v := range values.([][3]float32) {
				appendColor(float64(v[0]), float64(v[1]), float64(v[2]), 1)
			}
		} else {
			values, err := modeler.ReadAccessor(doc, accessor, nil)
			if err != nil {
				return nil, io_common.NewIoParseFailed("COLOR_0属性の読み取りに失敗しました", err)
			}
			for _, v := range values.([][4]float32) {
				appendColor(float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3]))
			}
		}
	default:
		logGlbWarn("COLOR_0属性のcomponentTypeが未対応のため無視します: %d", accessor.ComponentType)
	}
	return colors, nil
}

// appendExpressionPoses は表情アニメーションクリップからジョイント移動量を抽出する。
// 各クリップの最終キーフレームとレスト位置の差分をポーズとして保持する。
func appendExpressionPoses(modelData *model.Model, doc *gltf.Document, jointNames map[int]string) error {
	for _, animation := range doc.Animations {
		poseName := expressionPoseName(animation.Name)
		if poseName == "" {
			continue
		}
		translations := map[string]mmath.Vec3{}
		for _, channel := range animation.Channels {
			if channel.Target.Node == nil {
				continue
			}
			if channel.Target.Path != gltf.TRSTranslation {
				continue
			}
			jointName, isJoint := jointNames[*channel.Target.Node]
			if !isJoint {
				continue
			}
			samplerIndex := channel.Sampler
			if samplerIndex < 0 || samplerIndex >= len(animation.Samplers) {
				continue
			}
			sampler := animation.Samplers[samplerIndex]
			if sampler.Output < 0 || sampler.Output >= len(doc.Accessors) {
				continue
			}
			outputs, err := modeler.ReadPosition(doc, doc.Accessors[sampler.Output], nil)
			if err != nil {
				return io_common.NewIoParseFailed("表情アニメーションの読み取りに失敗しました", err)
			}
			if len(outputs) == 0 {
				continue
			}
			final := outputs[len(outputs)-1]
			rest := doc.Nodes[*channel.Target.Node].Translation
			delta := toDomainVec3([3]float64{
				float64(final[0]) - rest[0],
				float64(final[1]) - rest[1],
				float64(final[2]) - rest[2],
			})
			if delta.Length() <= expressionPoseEpsilon {
				continue
			}
			translations[jointName] = delta
		}
		if len(translations) == 0 {
			continue
		}
		modelData.Expressions = append(modelData.Expressions, &model.ExpressionPose{
			Name:         poseName,
			Translations: translations,
		})
	}
	return nil
}

// expressionPoseName は表情クリップ名からポーズ名を取り出す。対象外クリップは空文字を返す。
func expressionPoseName(clipName string) string {
	if strings.Contains(clipName, ".00") || !strings.Contains(clipName, "Emo_") {
		return ""
	}
	parts := strings.Split(clipName, "_")
	if len(parts) <= 2 {
		return clipName
	}
	return strings.Join(parts[2:], "_")
}
