// 指示: miu200521358
package minteractor

import (
	"strings"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/mmath"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
)

const (
	// meshMergeEpsilon は重複頂点統合の距離閾値。
	meshMergeEpsilon = 0.0001
	// eyeSeparateEpsilon は瞳シェイプキーで動く頂点の判定閾値。
	eyeSeparateEpsilon = 0.00001
)

// cleanMeshes はエフェクト用・LOD用などの不要メッシュを取り除く。
func cleanMeshes(data *model.Model, keepStarEyeMesh bool) {
	unwanted := map[string]struct{}{
		"EffectMesh": {},
		"Weapon_L":   {},
		"Weapon_R":   {},
	}
	removed := data.Meshes.RemoveWhere(func(mesh *model.Mesh) bool {
		if _, hit := unwanted[mesh.Name]; hit {
			return true
		}
		if strings.Contains(strings.ToLower(mesh.Name), "lod") {
			return true
		}
		if strings.Contains(mesh.Name, "AO_Bip") {
			return true
		}
		if strings.HasSuffix(mesh.Name, "_Low") || strings.HasSuffix(mesh.Name, "_EffectMesh") {
			return true
		}
		if mesh.Name == "EyeStar" && !keepStarEyeMesh {
			return true
		}
		return false
	})
	if removed > 0 {
		logConvertInfo("不要メッシュを削除しました: %d件", removed)
	}
}

// modelMaxDimension はモデル外形の最大辺長を返す。
// ジョイントがあればその頭尾座標、無ければメッシュ頂点から求める。
func modelMaxDimension(data *model.Model) float64 {
	var points []mmath.Vec3
	if data.Skeleton != nil {
		for _, joint := range data.Skeleton.Joints() {
			points = append(points, joint.Head, joint.Tail)
		}
	}
	if len(points) == 0 && data.Meshes != nil {
		for _, mesh := range data.Meshes.Meshes() {
			for _, vertex := range mesh.Vertices {
				points = append(points, vertex.Position)
			}
		}
	}
	if len(points) == 0 {
		return 0
	}
	minPoint, maxPoint := points[0], points[0]
	for _, point := range points[1:] {
		if point.X < minPoint.X {
			minPoint.X = point.X
		}
		if point.Y < minPoint.Y {
			minPoint.Y = point.Y
		}
		if point.Z < minPoint.Z {
			minPoint.Z = point.Z
		}
		if point.X > maxPoint.X {
			maxPoint.X = point.X
		}
		if point.Y > maxPoint.Y {
			maxPoint.Y = point.Y
		}
		if point.Z > maxPoint.Z {
			maxPoint.Z = point.Z
		}
	}
	maxDim := maxPoint.X - minPoint.X
	if d := maxPoint.Y - minPoint.Y; d > maxDim {
		maxDim = d
	}
	if d := maxPoint.Z - minPoint.Z; d > maxDim {
		maxDim = d
	}
	return maxDim
}

// scaleFactorFor は最大辺長に応じた補正倍率を返す。適正範囲なら1を返す。
func scaleFactorFor(maxDim float64) float64 {
	switch {
	case maxDim <= 0.000002:
		return 1000000
	case maxDim <= 0.00002:
		return 100000
	case maxDim <= 0.0002:
		return 10000
	case maxDim <= 0.002:
		return 1000
	case maxDim <= 0.01:
		return 100
	case maxDim > 100:
		return 0.01
	case maxDim > 10:
		return 0.1
	default:
		return 1
	}
}

// scaleModel は極端に小さい・大きいモデルを人体相当の寸法に補正する。
func scaleModel(data *model.Model) {
	maxDim := modelMaxDimension(data)
	if maxDim <= 0 {
		return
	}
	factor := scaleFactorFor(maxDim)
	if factor == 1 {
		return
	}
	logConvertInfo("モデル寸法を補正します: 最大辺長=%.8f 倍率=%.6f", maxDim, factor)
	if data.Skeleton != nil {
		for _, joint := range data.Skeleton.Joints() {
			joint.Head = joint.Head.MuledScalar(factor)
			joint.Tail = joint.Tail.MuledScalar(factor)
		}
	}
	if data.Meshes != nil {
		for _, mesh := range data.Meshes.Meshes() {
			for _, vertex := range mesh.Vertices {
				vertex.Position = vertex.Position.MuledScalar(factor)
			}
			for _, key := range mesh.ShapeKeys {
				for i, offset := range key.Offsets {
					key.Offsets[i] = offset.MuledScalar(factor)
				}
			}
		}
	}
	data.Scale *= factor
	data.AddWarning(model.ConversionWarningScaleOutOfRange)
}

// shapeKeyOffsetAt は指定頂点のシェイプキー差分を返す。範囲外は零ベクトル。
func shapeKeyOffsetAt(key *model.ShapeKey, index int) mmath.Vec3 {
	if key == nil || index >= len(key.Offsets) {
		return mmath.Vec3{}
	}
	return key.Offsets[index]
}

// joinMeshInto はsourceの頂点とシェイプキーをtargetに連結する。
// 片側にしか無いシェイプキーは零差分で埋める。
func joinMeshInto(target, source *model.Mesh) {
	baseCount := len(target.Vertices)
	for _, key := range target.ShapeKeys {
		for len(key.Offsets) < baseCount {
			key.Offsets = append(key.Offsets, mmath.Vec3{})
		}
	}
	for _, sourceKey := range source.ShapeKeys {
		if _, exists := target.ShapeKeyByName(sourceKey.Name); !exists {
			padded := make([]mmath.Vec3, baseCount)
			target.ShapeKeys = append(target.ShapeKeys, &model.ShapeKey{Name: sourceKey.Name, Offsets: padded})
		}
	}
	target.Vertices = append(target.Vertices, source.Vertices...)
	for _, targetKey := range target.ShapeKeys {
		sourceKey, _ := source.ShapeKeyByName(targetKey.Name)
		for i := range source.Vertices {
			targetKey.Offsets = append(targetKey.Offsets, shapeKeyOffsetAt(sourceKey, i))
		}
	}
}

// removeMeshVertices は指定インデックスの頂点をシェイプキー差分とともに取り除く。
func removeMeshVertices(mesh *model.Mesh, removeSet map[int]struct{}) {
	if len(removeSet) == 0 {
		return
	}
	keptVertices := make([]*model.Vertex, 0, len(mesh.Vertices))
	keptIndexes := make([]int, 0, len(mesh.Vertices))
	for i, vertex := range mesh.Vertices {
		if _, hit := removeSet[i]; hit {
			continue
		}
		keptVertices = append(keptVertices, vertex)
		keptIndexes = append(keptIndexes, i)
	}
	mesh.Vertices = keptVertices
	for _, key := range mesh.ShapeKeys {
		keptOffsets := make([]mmath.Vec3, 0, len(keptIndexes))
		for _, idx := range keptIndexes {
			keptOffsets = append(keptOffsets, shapeKeyOffsetAt(key, idx))
		}
		key.Offsets = keptOffsets
	}
}

// mergeMeshesByDistance は指定メッシュ群をtargetへ統合し、近接頂点を1点に束ねる。
// activeKeyを指定したときはそのシェイプキー適用後の位置で距離を判定する。
func mergeMeshesByDistance(data *model.Model, targetName string, mergeNames []string, activeKey string) bool {
	target, ok := data.Meshes.GetByName(targetName)
	if !ok {
		logConvertWarn("統合先メッシュが存在しません: %s", targetName)
		return false
	}
	for _, name := range mergeNames {
		source, found := data.Meshes.GetByName(name)
		if !found {
			logConvertWarn("統合対象メッシュが存在しません: %s", name)
			continue
		}
		joinMeshInto(target, source)
		data.Meshes.Remove(name)
	}
	activeShapeKey, _ := target.ShapeKeyByName(activeKey)
	evaluated := make([]mmath.Vec3, len(target.Vertices))
	for i, vertex := range target.Vertices {
		evaluated[i] = vertex.Position.Added(shapeKeyOffsetAt(activeShapeKey, i))
	}
	removeSet := map[int]struct{}{}
	for i := range target.Vertices {
		for j := 0; j < i; j++ {
			if _, removed := removeSet[j]; removed {
				continue
			}
			if evaluated[i].Distance(evaluated[j]) < meshMergeEpsilon {
				removeSet[i] = struct{}{}
				break
			}
		}
	}
	removeMeshVertices(target, removeSet)
	return true
}

// mergeMeshesInto は指定メッシュ群を1メッシュに連結してtargetNameへ改名する。
func mergeMeshesInto(data *model.Model, targetName string, meshNames []string) bool {
	var base *model.Mesh
	for _, name := range meshNames {
		mesh, found := data.Meshes.GetByName(name)
		if !found {
			logConvertWarn("連結対象メッシュが存在しません: %s", name)
			continue
		}
		if base == nil {
			base = mesh
			continue
		}
		joinMeshInto(base, mesh)
		data.Meshes.Remove(name)
	}
	if base == nil {
		return false
	}
	if err := data.Meshes.Rename(base.Name, targetName); err != nil {
		logConvertWarn("連結メッシュの改名に失敗しました: %v", err)
	}
	return true
}

// mergeAllMeshes は全メッシュを1メッシュ「Body」へまとめる。
func mergeAllMeshes(data *model.Model) bool {
	meshes := data.Meshes.Meshes()
	if len(meshes) == 0 {
		return false
	}
	names := make([]string, 0, len(meshes))
	for _, mesh := range meshes {
		names = append(names, mesh.Name)
	}
	return mergeMeshesInto(data, "Body", names)
}

// renameAllMeshes は全メッシュをnewName系列の名前に揃える。
// 2個目以降は「.001」形式の連番を付ける。
func renameAllMeshes(data *model.Model, newName string) {
	meshes := data.Meshes.Meshes()
	for i, mesh := range meshes {
		name := newName
		if i > 0 {
			name = newName + "." + threeDigits(i)
		}
		if err := data.Meshes.Rename(mesh.Name, name); err != nil {
			logConvertWarn("メッシュ改名に失敗しました: %v", err)
		}
	}
}

// threeDigits は整数を3桁ゼロ詰め文字列にする。
func threeDigits(n int) string {
	digits := []byte{'0', '0', '0'}
	for i := 2; i >= 0 && n > 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits)
}

// autoRenameMeshPrefixes は複数メッシュに共通する接頭辞を検出して除去する。
func autoRenameMeshPrefixes(data *model.Model) {
	meshes := data.Meshes.Meshes()
	if len(meshes) < 2 {
		return
	}
	prefixSet := map[string]struct{}{}
	for _, mesh := range meshes {
		normalized := strings.ReplaceAll(mesh.Name, ".", "_")
		parts := strings.Split(normalized, "_")
		if len(parts) < 2 {
			continue
		}
		prefix := parts[0] + "_"
		count := 0
		for _, other := range meshes {
			if strings.HasPrefix(other.Name, prefix) {
				count++
			}
		}
		if count > 1 {
			prefixSet[prefix] = struct{}{}
		}
	}
	if len(prefixSet) == 0 {
		return
	}
	for _, mesh := range meshes {
		newName := mesh.Name
		for prefix := range prefixSet {
			newName = strings.ReplaceAll(newName, prefix, "")
		}
		newName = strings.Trim(newName, "_")
		if newName == "" || newName == mesh.Name {
			continue
		}
		if data.Meshes.ContainsName(newName) {
			continue
		}
		if err := data.Meshes.Rename(mesh.Name, newName); err != nil {
			logConvertWarn("メッシュ接頭辞の除去に失敗しました: %v", err)
		}
	}
}

// separateWuwaEyes は瞳シェイプキーで動く頂点を本体メッシュから左右の目メッシュへ分離する。
// 分離後の目メッシュには瞳用シェイプキーのみを残し、本体からは瞳用キーを取り除く。
func separateWuwaEyes(data *model.Model, shapeKeyName, bodyMeshName string, pupilShapeKeys []string) bool {
	body, ok := data.Meshes.FindByNameContains(bodyMeshName)
	if !ok {
		logConvertWarn("分離元メッシュが存在しません: %s", bodyMeshName)
		return false
	}
	shapeKey, ok := body.ShapeKeyByName(shapeKeyName)
	if !ok {
		logConvertWarn("分離用シェイプキーが存在しません: %s", shapeKeyName)
		return false
	}
	leftIndexes := map[int]struct{}{}
	rightIndexes := map[int]struct{}{}
	for i, vertex := range body.Vertices {
		if shapeKeyOffsetAt(shapeKey, i).Length() <= eyeSeparateEpsilon {
			continue
		}
		if vertex.Position.X >= 0 {
			leftIndexes[i] = struct{}{}
		} else {
			rightIndexes[i] = struct{}{}
		}
	}
	if len(leftIndexes) == 0 && len(rightIndexes) == 0 {
		logConvertWarn("瞳シェイプキーで動く頂点が見つかりません: %s", shapeKeyName)
		return false
	}
	pupilSet := map[string]struct{}{}
	for _, name := range pupilShapeKeys {
		pupilSet[name] = struct{}{}
	}
	appendEyeMesh := func(name string, indexes map[int]struct{}) {
		if len(indexes) == 0 {
			return
		}
		eye := &model.Mesh{Name: name, MaterialName: body.MaterialName}
		ordered := make([]int, 0, len(indexes))
		for i := range body.Vertices {
			if _, hit := indexes[i]; hit {
				ordered = append(ordered, i)
			}
		}
		for _, idx := range ordered {
			eye.Vertices = append(eye.Vertices, body.Vertices[idx])
		}
		for _, key := range body.ShapeKeys {
			if _, keep := pupilSet[key.Name]; !keep {
				continue
			}
			offsets := make([]mmath.Vec3, 0, len(ordered))
			for _, idx := range ordered {
				offsets = append(offsets, shapeKeyOffsetAt(key, idx))
			}
			eye.ShapeKeys = append(eye.ShapeKeys, &model.ShapeKey{Name: key.Name, Offsets: offsets})
		}
		if err := data.Meshes.Append(eye); err != nil {
			logConvertWarn("目メッシュの追加に失敗しました: %v", err)
		}
	}
	appendEyeMesh("Left Eye", leftIndexes)
	appendEyeMesh("Right Eye", rightIndexes)

	removeSet := map[int]struct{}{}
	for idx := range leftIndexes {
		removeSet[idx] = struct{}{}
	}
	for idx := range rightIndexes {
		removeSet[idx] = struct{}{}
	}
	removeMeshVertices(body, removeSet)
	body.RemoveShapeKeys(pupilShapeKeys...)
	return true
}

// separateBangsMesh は前髪ジョイントにウェイトを持つ前方の頂点をBangsメッシュへ分離する。
// 対象はジョイント名の部分一致(大文字小文字無視)とその子孫、かつY座標がyBoundary以下の頂点。
func separateBangsMesh(data *model.Model, hairMeshName string, jointKeywords []string, yBoundary float64) bool {
	hair, ok := data.Meshes.FindByNameContains(hairMeshName)
	if !ok {
		logConvertWarn("前髪分離元メッシュが存在しません: %s", hairMeshName)
		return false
	}

	var rootNames []string
	for _, joint := range data.Skeleton.Joints() {
		lower := strings.ToLower(joint.Name)
		for _, keyword := range jointKeywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				rootNames = append(rootNames, joint.Name)
				break
			}
		}
	}
	if len(rootNames) == 0 {
		logConvertWarn("前髪ジョイントが見つかりません: keywords=%v", jointKeywords)
		return false
	}
	bangJoints := data.Skeleton.DescendantsOf(rootNames...)

	bangIndexes := map[int]struct{}{}
	for i, vertex := range hair.Vertices {
		if vertex.Position.Y > yBoundary {
			continue
		}
		for group := range vertex.Weights {
			if _, hit := bangJoints[group]; hit {
				bangIndexes[i] = struct{}{}
				break
			}
		}
	}
	if len(bangIndexes) == 0 {
		logConvertWarn("前髪ウェイトを持つ頂点が見つかりません: %s", hairMeshName)
		return false
	}

	bangs := &model.Mesh{
		Name:         "Bangs",
		MaterialName: strings.Replace(hair.MaterialName, "Hair", "Bangs", 1),
	}
	ordered := make([]int, 0, len(bangIndexes))
	for i := range hair.Vertices {
		if _, hit := bangIndexes[i]; hit {
			ordered = append(ordered, i)
		}
	}
	for _, idx := range ordered {
		bangs.Vertices = append(bangs.Vertices, hair.Vertices[idx])
	}
	for _, key := range hair.ShapeKeys {
		offsets := make([]mmath.Vec3, 0, len(ordered))
		for _, idx := range ordered {
			offsets = append(offsets, shapeKeyOffsetAt(key, idx))
		}
		bangs.ShapeKeys = append(bangs.ShapeKeys, &model.ShapeKey{Name: key.Name, Offsets: offsets})
	}
	if err := data.Meshes.Append(bangs); err != nil {
		logConvertWarn("前髪メッシュの追加に失敗しました: %v", err)
		return false
	}

	removeMeshVertices(hair, bangIndexes)
	logConvertInfo("前髪メッシュを分離しました: %d頂点", len(ordered))
	return true
}

// convertVertexColorsToUv は指定メッシュの頂点カラーを第2UVチャンネルへ書き出す。
// 瞳マテリアルが頂点カラー由来のUVデータを参照するモデル向けの変換。
func convertVertexColorsToUv(data *model.Model, meshName string, multiplier float64) bool {
	mesh, ok := data.Meshes.FindByNameContains(meshName)
	if !ok {
		logConvertWarn("頂点カラー変換対象メッシュが存在しません: %s", meshName)
		return false
	}
	converted := 0
	for _, vertex := range mesh.Vertices {
		if vertex.Color == ([4]float64{}) {
			continue
		}
		vertex.UV2 = [2]float64{vertex.Color[0] * multiplier, vertex.Color[1] * multiplier}
		converted++
	}
	if converted == 0 {
		return false
	}
	logConvertInfo("頂点カラーをUVへ変換しました: mesh=%s %d頂点", mesh.Name, converted)
	return true
}
