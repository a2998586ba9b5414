// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/mmath"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
)

// vertexMatchEpsilon はメッシュ間で同一頂点とみなす距離閾値。
const vertexMatchEpsilon = 0.0001

// shapeKeySource はシェイプキー合成の素材1件を表す。
type shapeKeySource struct {
	mesh  string
	key   string
	value float64
}

// shapeKeyFallback は必須キー欠落時の代替キーを表す。
type shapeKeyFallback struct {
	missingKey  string
	fallbackKey string
	value       float64
}

// generatedShapeKey は生成するシェイプキー1件を表す。
type generatedShapeKey struct {
	name    string
	sources []shapeKeySource
}

// requiredShapeKeys はメッシュごとの必須基底キーを表す。
type requiredShapeKeys struct {
	mesh string
	keys []string
}

// shapeKeyPlan はシェイプキー生成の全体計画を表す。
type shapeKeyPlan struct {
	required  []requiredShapeKeys
	fallbacks []shapeKeyFallback
	generated []generatedShapeKey
}

// generateShapeKeys は計画に従ってシェイプキーを合成する。
// 必須キーが欠けているメッシュには代替キーから補完し、代替も無い場合は警告を積む。
func generateShapeKeys(data *model.Model, plan shapeKeyPlan) {
	for _, required := range plan.required {
		mesh, ok := data.Meshes.GetByName(required.mesh)
		if !ok {
			logConvertWarn("シェイプキー対象メッシュが見つかりません: %s", required.mesh)
			continue
		}
		for _, key := range required.keys {
			if _, exists := mesh.ShapeKeyByName(key); exists {
				continue
			}
			if !applyShapeKeyFallback(data, mesh, key, plan.fallbacks) {
				logConvertWarn("必須シェイプキーの代替が見つかりません: %s (メッシュ: %s)", key, mesh.Name)
				data.AddWarning(model.ConversionWarningShapeKeySourceMissing)
			}
		}
	}

	for _, entry := range plan.generated {
		if len(entry.sources) == 0 {
			continue
		}
		target, ok := data.Meshes.GetByName(entry.sources[0].mesh)
		if !ok {
			logConvertWarn("シェイプキー生成先メッシュが見つかりません: %s (キー: %s)", entry.sources[0].mesh, entry.name)
			continue
		}
		createMixedShapeKey(data, target, entry)
	}
}

// applyShapeKeyFallback は欠落キーを代替キーの倍率適用コピーとして補完する。
func applyShapeKeyFallback(data *model.Model, mesh *model.Mesh, missingKey string, fallbacks []shapeKeyFallback) bool {
	for _, fallback := range fallbacks {
		if fallback.missingKey != missingKey {
			continue
		}
		source, ok := mesh.ShapeKeyByName(fallback.fallbackKey)
		if !ok {
			continue
		}
		offsets := make([]mmath.Vec3, len(source.Offsets))
		for i, offset := range source.Offsets {
			offsets[i] = offset.MuledScalar(fallback.value)
		}
		mesh.ShapeKeys = append(mesh.ShapeKeys, &model.ShapeKey{Name: missingKey, Offsets: offsets})
		logConvertInfo("欠落シェイプキーを代替から補完しました: %s <- %s x %.2f", missingKey, fallback.fallbackKey, fallback.value)
		return true
	}
	return false
}

// createMixedShapeKey は素材キーを倍率付きで合算した新しいシェイプキーを生成する。
// 生成先と異なるメッシュの素材は最近傍頂点を対応付けて転写する。
func createMixedShapeKey(data *model.Model, target *model.Mesh, entry generatedShapeKey) {
	offsets := make([]mmath.Vec3, len(target.Vertices))

	for _, source := range entry.sources {
		sourceMesh := target
		if source.mesh != target.Name {
			found, ok := data.Meshes.GetByName(source.mesh)
			if !ok {
				continue
			}
			sourceMesh = found
		}
		sourceKey, ok := sourceMesh.ShapeKeyByName(source.key)
		if !ok {
			continue
		}

		if sourceMesh == target {
			for i := range offsets {
				if i >= len(sourceKey.Offsets) {
					break
				}
				offsets[i] = offsets[i].Added(sourceKey.Offsets[i].MuledScalar(source.value))
			}
			continue
		}

		for i, vertex := range target.Vertices {
			matched, ok := closestVertexIndex(sourceMesh, vertex.Position)
			if !ok || matched >= len(sourceKey.Offsets) {
				continue
			}
			offsets[i] = offsets[i].Added(sourceKey.Offsets[matched].MuledScalar(source.value))
		}
	}

	if existing, ok := target.ShapeKeyByName(entry.name); ok {
		existing.Offsets = offsets
		return
	}
	target.ShapeKeys = append(target.ShapeKeys, &model.ShapeKey{Name: entry.name, Offsets: offsets})
}

// closestVertexIndex は指定位置に最も近い頂点の添字を返す。
// 閾値より遠い場合は対応なしとして false を返す。
func closestVertexIndex(mesh *model.Mesh, position mmath.Vec3) (int, bool) {
	best := -1
	bestDistance := 0.0
	for i, vertex := range mesh.Vertices {
		distance := vertex.Position.Distance(position)
		if best < 0 || distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}
	if best < 0 || bestDistance >= vertexMatchEpsilon {
		return 0, false
	}
	return best, true
}

// bakeExpressionShapeKeys は表情ポーズをシェイプキーとして焼き込む。
// 頂点ごとにウェイト加重したジョイント移動量を差分として合算する。
func bakeExpressionShapeKeys(data *model.Model, meshName string) {
	if len(data.Expressions) == 0 {
		return
	}
	mesh, ok := data.Meshes.FindByNameContains(meshName)
	if !ok {
		logConvertWarn("表情焼き込み先メッシュが見つかりません: %s", meshName)
		return
	}

	baked := 0
	for _, pose := range data.Expressions {
		offsets := make([]mmath.Vec3, len(mesh.Vertices))
		hasOffset := false
		for i, vertex := range mesh.Vertices {
			for group, weight := range vertex.Weights {
				translation, exists := pose.Translations[group]
				if !exists || weight == 0 {
					continue
				}
				offsets[i] = offsets[i].Added(translation.MuledScalar(weight))
				hasOffset = true
			}
		}
		if !hasOffset {
			continue
		}
		if existing, exists := mesh.ShapeKeyByName(pose.Name); exists {
			existing.Offsets = offsets
		} else {
			mesh.ShapeKeys = append(mesh.ShapeKeys, &model.ShapeKey{Name: pose.Name, Offsets: offsets})
		}
		baked++
	}
	if baked > 0 {
		logConvertInfo("表情ポーズをシェイプキーに焼き込みました: %d件 (メッシュ: %s)", baked, mesh.Name)
	}
	data.Expressions = nil
}
