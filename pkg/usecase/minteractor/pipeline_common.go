// 指示: miu200521358
package minteractor

import (
	"strings"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
)

// standardAttachPairs は体幹と四肢の標準接続ペアを返す。
// ゲームによってNeck→Headを含むかどうかが異なる。
func standardAttachPairs(includeNeckToHead bool, connectChestToNeck bool) []jointPair {
	chestSource := "Upper Chest"
	if connectChestToNeck {
		chestSource = "Chest"
	}
	pairs := []jointPair{}
	if includeNeckToHead {
		pairs = append(pairs, jointPair{source: "Neck", target: "Head"})
	}
	pairs = append(pairs,
		jointPair{source: "Left Shoulder", target: "Left Upper Arm"},
		jointPair{source: "Right Shoulder", target: "Right Upper Arm"},
		jointPair{source: chestSource, target: "Neck"},
		jointPair{source: "Left Upper Arm", target: "Left Lower Arm"},
		jointPair{source: "Right Upper Arm", target: "Right Lower Arm"},
		jointPair{source: "Left Lower Arm", target: "Left Hand"},
		jointPair{source: "Right Lower Arm", target: "Right Hand"},
		jointPair{source: "Right Upper Leg", target: "Right Lower Leg"},
		jointPair{source: "Left Upper Leg", target: "Left Lower Leg"},
		jointPair{source: "Right Lower Leg", target: "Right Foot"},
		jointPair{source: "Left Lower Leg", target: "Left Foot"},
		jointPair{source: "Right Foot", target: "Right Toes"},
		jointPair{source: "Left Foot", target: "Left Toes"},
	)
	return pairs
}

// removeFirstJointIfNotHips は先頭ジョイントがHipsでないとき削除対象名を返す。
func removeFirstJointIfNotHips(skeleton *model.Skeleton) []string {
	first := skeleton.First()
	if first == nil || first.Name == "Hips" {
		return nil
	}
	return []string{first.Name}
}

// fixHumanoidJointPositions はヒューマノイド骨格補正の一連の位置決めをまとめて行う。
// 体幹の再配置に失敗したジョイントがあれば警告を積む。
func fixHumanoidJointPositions(data *model.Model) {
	if !positionTrunkJoints(data.Skeleton) {
		data.AddWarning(model.ConversionWarningPositionRuleSkipped)
	}
	adjustLegJoints(data.Skeleton)
	straightenHead(data.Skeleton)
	synthesizeNeck(data.Skeleton)
}

// attachJointPairsBySubstring は各組を部分一致で探して接続する。
func attachJointPairsBySubstring(skeleton *model.Skeleton, pairs []jointPair) {
	for _, pair := range pairs {
		attachJointsBySubstring(skeleton, pair.source, pair.target)
	}
}

// attachEyeJoints は各目ジョイントの終点を頭ジョイント始点の上方へ立てる。
func attachEyeJoints(skeleton *model.Skeleton, names ...string) {
	for _, name := range names {
		attachEyeJoint(skeleton, name, "Head")
	}
}

// attachTwistJoints は捻りジョイントの終点を最初の子の始点へ接続する。
func attachTwistJoints(skeleton *model.Skeleton) {
	for _, joint := range skeleton.Joints() {
		if !strings.Contains(strings.ToLower(joint.Name), "twist") {
			continue
		}
		children := skeleton.ChildrenOf(joint.Name)
		if len(children) == 0 {
			continue
		}
		joint.Tail = children[0].Head
		children[0].Connected = true
	}
}

// mergeFaceMaskMesh はFace_MaskメッシュをFaceへ連結し、頂点を指定ジョイントへ全ウェイトで割り当てる。
func mergeFaceMaskMesh(data *model.Model, sourceName, targetName, jointName string) {
	source, ok := data.Meshes.GetByName(sourceName)
	if !ok {
		return
	}
	target, ok := data.Meshes.GetByName(targetName)
	if !ok {
		return
	}
	for _, vertex := range source.Vertices {
		vertex.Weights = map[string]float64{jointName: 1.0}
	}
	joinMeshInto(target, source)
	data.Meshes.Remove(sourceName)
}
