// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/mmath"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
)

// followPointRule は参照ボーンの始点/終点への追従規則を表す。
type followPointRule struct {
	reference string
	point     string // "head" または "tail"
}

// betweenRule は2参照点間の比率位置規則を表す。
type betweenRule struct {
	points [2]string
	ratio  float64
}

// offsetRule は参照点からの固定オフセット規則を表す。
type offsetRule struct {
	reference string // "head" は対象ボーン自身の始点を指す
	value     float64
}

// minOffsetRule は参照点に対する最小オフセット規則を表す。
type minOffsetRule struct {
	axis      string
	reference string
	value     float64
}

// headPositionRules は始点の位置決め規則群を表す。
type headPositionRules struct {
	follow          *followPointRule
	horizontal      *betweenRule
	verticalBetween *betweenRule
	verticalOffset  *offsetRule
	minOffset       *minOffsetRule
}

// tailPositionRules は終点の位置決め規則群を表す。
type tailPositionRules struct {
	followHead     []string
	verticalOffset *offsetRule
	forwardOffset  *offsetRule
	minLength      float64
	hasMinLength   bool
}

// jointPositionRules はジョイント1本分の位置決め規則を表す。
type jointPositionRules struct {
	head *headPositionRules
	tail *tailPositionRules
}

// positionJoint は参照点群と規則に従って対象ジョイントの始点・終点を再配置する。
// 対象または参照ジョイントが欠落している場合は何も変更せず false を返す。
func positionJoint(skeleton *model.Skeleton, targetName string, referencePoints map[string]string, rules jointPositionRules) bool {
	target, ok := skeleton.GetByName(targetName)
	if !ok {
		logConvertWarn("位置決め対象ジョイントが見つかりません: %s", targetName)
		return false
	}

	refs := map[string]*model.Joint{}
	for key, name := range referencePoints {
		ref, ok := skeleton.GetByName(name)
		if !ok {
			logConvertWarn("位置決め参照ジョイントが見つかりません: %s (対象: %s)", name, targetName)
			return false
		}
		refs[key] = ref
	}

	if rules.head != nil {
		applyHeadRules(target, refs, rules.head)
	}
	if rules.tail != nil {
		applyTailRules(target, refs, rules.tail)
	}
	return true
}

// applyHeadRules は始点規則を規則の定義順(追従→水平→垂直→最小オフセット)に適用する。
func applyHeadRules(target *model.Joint, refs map[string]*model.Joint, rules *headPositionRules) {
	if rules.follow != nil {
		ref := refs[rules.follow.reference]
		point := ref.Head
		if rules.follow.point == "tail" {
			point = ref.Tail
		}
		target.Head = point
	}
	if rules.horizontal != nil {
		p1 := refs[rules.horizontal.points[0]].Head
		p2 := refs[rules.horizontal.points[1]].Head
		ratio := rules.horizontal.ratio
		target.Head.X = p1.X + (p2.X-p1.X)*ratio
		target.Head.Y = p1.Y + (p2.Y-p1.Y)*ratio
	}
	if rules.verticalBetween != nil {
		p1 := refs[rules.verticalBetween.points[0]].Head
		p2 := refs[rules.verticalBetween.points[1]].Head
		target.Head.Z = p1.Z + (p2.Z-p1.Z)*rules.verticalBetween.ratio
	}
	if rules.verticalOffset != nil {
		target.Head.Z = refs[rules.verticalOffset.reference].Head.Z + rules.verticalOffset.value
	}
	if rules.minOffset != nil {
		refValue := axisValue(refs[rules.minOffset.reference].Head, rules.minOffset.axis)
		if axisValue(target.Head, rules.minOffset.axis) <= refValue {
			setAxisValue(&target.Head, rules.minOffset.axis, refValue+rules.minOffset.value)
		}
	}
}

// applyTailRules は終点規則を規則の定義順(始点追従→垂直→前後→最小長)に適用する。
func applyTailRules(target *model.Joint, refs map[string]*model.Joint, rules *tailPositionRules) {
	for _, axis := range rules.followHead {
		setAxisValue(&target.Tail, axis, axisValue(target.Head, axis))
	}
	if rules.verticalOffset != nil {
		base := target.Head.Z
		if rules.verticalOffset.reference != "head" {
			base = refs[rules.verticalOffset.reference].Head.Z
		}
		target.Tail.Z = base + rules.verticalOffset.value
	}
	if rules.forwardOffset != nil {
		base := target.Head.Y
		if rules.forwardOffset.reference != "head" {
			base = refs[rules.forwardOffset.reference].Head.Y
		}
		target.Tail.Y = base + rules.forwardOffset.value
	}
	if rules.hasMinLength {
		if target.Tail.Z < target.Head.Z+rules.minLength {
			target.Tail.Z = target.Head.Z + rules.minLength
		}
	}
}

// axisValue は軸名に対応する成分値を返す。
func axisValue(v mmath.Vec3, axis string) float64 {
	switch axis {
	case "x":
		return v.X
	case "y":
		return v.Y
	default:
		return v.Z
	}
}

// setAxisValue は軸名に対応する成分値を設定する。
func setAxisValue(v *mmath.Vec3, axis string, value float64) {
	switch axis {
	case "x":
		v.X = value
	case "y":
		v.Y = value
	default:
		v.Z = value
	}
}

// positionHipsJoint は腰ジョイントを左右脚と背骨から再配置する。
func positionHipsJoint(skeleton *model.Skeleton) bool {
	return positionJoint(skeleton, "Hips", map[string]string{
		"left":  "Left Upper Leg",
		"right": "Right Upper Leg",
		"up":    "Spine",
	}, jointPositionRules{
		head: &headPositionRules{
			horizontal:      &betweenRule{points: [2]string{"left", "right"}, ratio: 0.5},
			verticalBetween: &betweenRule{points: [2]string{"left", "up"}, ratio: 0.33},
			minOffset:       &minOffsetRule{axis: "z", reference: "right", value: 0.01},
		},
		tail: &tailPositionRules{
			followHead:     []string{"x", "y"},
			verticalOffset: &offsetRule{reference: "up", value: 0.005},
			minLength:      0.05,
			hasMinLength:   true,
		},
	})
}

// positionTrunkJoint は体幹ジョイントを前段ジョイントの終点に接続し、指定長だけ真上へ伸ばす。
func positionTrunkJoint(skeleton *model.Skeleton, targetName string, previousName string, length float64) bool {
	return positionJoint(skeleton, targetName, map[string]string{
		"prev": previousName,
	}, jointPositionRules{
		head: &headPositionRules{
			follow: &followPointRule{reference: "prev", point: "tail"},
		},
		tail: &tailPositionRules{
			followHead:     []string{"x", "y"},
			verticalOffset: &offsetRule{reference: "head", value: length},
		},
	})
}

// positionTrunkJoints は腰から上部胸郭までの体幹ジョイント列を再配置する。
// 全ジョイントを再配置できた場合にtrueを返す。
func positionTrunkJoints(skeleton *model.Skeleton) bool {
	ok := positionHipsJoint(skeleton)
	ok = positionTrunkJoint(skeleton, "Spine", "Hips", 0.075) && ok
	ok = positionTrunkJoint(skeleton, "Chest", "Spine", 0.075) && ok
	ok = positionTrunkJoint(skeleton, "Upper Chest", "Chest", 0.125) && ok
	return ok
}
