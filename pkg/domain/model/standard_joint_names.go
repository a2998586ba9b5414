// 指示: miu200521358
// Package model はHoYo系モデル変換のドメイン型を提供する。
package model

import "strings"

// Direction はジョイントの左右方向を表す。
type Direction string

const (
	// DirectionLeft は左側を表す。
	DirectionLeft Direction = "Left"
	// DirectionRight は右側を表す。
	DirectionRight Direction = "Right"
)

// StandardJointName は正規化後の標準ジョイント名を表す。
// 側付きの名前は {Side} プレースホルダを含む。
type StandardJointName string

const (
	ROOT        StandardJointName = "Root"
	HIPS        StandardJointName = "Hips"
	SPINE       StandardJointName = "Spine"
	CHEST       StandardJointName = "Chest"
	UPPER_CHEST StandardJointName = "Upper Chest"
	NECK        StandardJointName = "Neck"
	HEAD        StandardJointName = "Head"
	FACE        StandardJointName = "Face"
	EYES        StandardJointName = "Eyes"

	EYE       StandardJointName = "{Side} Eye"
	SHOULDER  StandardJointName = "{Side} Shoulder"
	UPPER_ARM StandardJointName = "{Side} Upper Arm"
	LOWER_ARM StandardJointName = "{Side} Lower Arm"
	HAND      StandardJointName = "{Side} Hand"
	UPPER_LEG StandardJointName = "{Side} Upper Leg"
	LOWER_LEG StandardJointName = "{Side} Lower Leg"
	FOOT      StandardJointName = "{Side} Foot"
	TOES      StandardJointName = "{Side} Toes"

	THUMB_PROXIMAL      StandardJointName = "{Side} Thumb Proximal"
	THUMB_INTERMEDIATE  StandardJointName = "{Side} Thumb Intermediate"
	THUMB_DISTAL        StandardJointName = "{Side} Thumb Distal"
	THUMB_TERMINAL      StandardJointName = "{Side} Thumb Terminal"
	INDEX_PROXIMAL      StandardJointName = "{Side} Index Proximal"
	INDEX_INTERMEDIATE  StandardJointName = "{Side} Index Intermediate"
	INDEX_DISTAL        StandardJointName = "{Side} Index Distal"
	INDEX_TERMINAL      StandardJointName = "{Side} Index Terminal"
	MIDDLE_PROXIMAL     StandardJointName = "{Side} Middle Proximal"
	MIDDLE_INTERMEDIATE StandardJointName = "{Side} Middle Intermediate"
	MIDDLE_DISTAL       StandardJointName = "{Side} Middle Distal"
	MIDDLE_TERMINAL     StandardJointName = "{Side} Middle Terminal"
	RING_PROXIMAL       StandardJointName = "{Side} Ring Proximal"
	RING_INTERMEDIATE   StandardJointName = "{Side} Ring Intermediate"
	RING_DISTAL         StandardJointName = "{Side} Ring Distal"
	RING_TERMINAL       StandardJointName = "{Side} Ring Terminal"
	LITTLE_PROXIMAL     StandardJointName = "{Side} Little Proximal"
	LITTLE_INTERMEDIATE StandardJointName = "{Side} Little Intermediate"
	LITTLE_DISTAL       StandardJointName = "{Side} Little Distal"
	LITTLE_TERMINAL     StandardJointName = "{Side} Little Terminal"
)

// String は側プレースホルダを除いた表示名を返す。
func (n StandardJointName) String() string {
	return strings.TrimSpace(strings.ReplaceAll(string(n), "{Side}", ""))
}

// Left は左側の名前を返す。
func (n StandardJointName) Left() string {
	return n.StringFromDirection(DirectionLeft)
}

// Right は右側の名前を返す。
func (n StandardJointName) Right() string {
	return n.StringFromDirection(DirectionRight)
}

// StringFromDirection は指定方向の名前を返す。
func (n StandardJointName) StringFromDirection(direction Direction) string {
	return strings.ReplaceAll(string(n), "{Side}", string(direction))
}

// TrunkJointNames は体幹の標準名を上から順に返す。
func TrunkJointNames() []string {
	return []string{
		HEAD.String(),
		NECK.String(),
		UPPER_CHEST.String(),
		CHEST.String(),
		SPINE.String(),
		HIPS.String(),
	}
}
