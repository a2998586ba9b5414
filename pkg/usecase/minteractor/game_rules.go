// 指示: miu200521358
package minteractor

import "fmt"

// 対応ゲーム名一覧。
const (
	GameGenshinImpact       = "Genshin Impact"
	GameGenshinImpactWeapon = "Genshin Impact Weapon"
	GameHonkaiStarRail      = "Honkai Star Rail"
	GameHonkaiImpact        = "Honkai Impact"
	GameHonkaiImpact3rd     = "Honkai Impact 3rd"
	GameZenlessZoneZero     = "Zenless Zone Zero"
	GameWutheringWaves      = "Wuthering Waves"
	GameNPC                 = "NPC"
)

// renameRule は名前正規化の1置換規則を表す。
type renameRule struct {
	old string
	new string
}

// gameRuleTable はゲームごとのジョイント名正規化規則を表す。
// startsWith/endsWith/replaces は記載順に適用する。
type gameRuleTable struct {
	jointNames map[string]string
	startsWith []renameRule
	endsWith   []renameRule
	replaces   []renameRule
}

// gameRuleTableFor はゲーム名に対応する正規化規則を返す。
func gameRuleTableFor(game string) (*gameRuleTable, error) {
	switch game {
	case GameGenshinImpact, GameGenshinImpactWeapon:
		return &gameRuleTable{
			jointNames: mergeJointNames(bipTrunkJointNames(), bipFingerJointNames(3, false)),
			startsWith: commonStartsWithRules(startsWithBipGenshin),
			endsWith:   commonEndsWithRules(false),
			replaces: append(commonReplaceRules(),
				renameRule{"+EyeBoneLA02", "Eye_L"},
				renameRule{"+EyeBoneRA02", "Eye_R"},
			),
		}, nil
	case GameHonkaiStarRail:
		return &gameRuleTable{
			jointNames: hsrJointNames(),
			startsWith: commonStartsWithRules(startsWithBipStarRail),
			endsWith:   commonEndsWithRules(false),
			replaces:   commonReplaceRules(),
		}, nil
	case GameHonkaiImpact, GameHonkaiImpact3rd:
		return &gameRuleTable{
			jointNames: mergeJointNames(
				bipTrunkJointNames(),
				bipFingerJointNames(3, true),
				hi3CamelJointNames(),
				hi3BareFingerJointNames(),
			),
			startsWith: commonStartsWithRules(startsWithBipHonkaiImpact),
			endsWith:   commonEndsWithRules(true),
			replaces:   commonReplaceRules(),
		}, nil
	case GameNPC:
		return &gameRuleTable{
			jointNames: mergeJointNames(
				bipTrunkJointNames(),
				bipFingerJointNames(3, false),
				hsrJointNames(),
				bipThumbAltJointNames(),
			),
			startsWith: commonStartsWithRules(startsWithBipDefault),
			endsWith:   commonEndsWithRules(true),
			replaces:   commonReplaceRules(),
		}, nil
	case GameWutheringWaves:
		return &gameRuleTable{
			jointNames: mergeJointNames(
				bipTrunkJointNames(),
				bipFingerJointNames(4, false),
				hsrJointNames(),
				bipThumbAltJointNames(),
			),
			startsWith: commonStartsWithRules(startsWithBipDefault),
			endsWith:   commonEndsWithRules(true),
			replaces:   commonReplaceRules(),
		}, nil
	case GameZenlessZoneZero:
		zzzFingers := bipFingerJointNames(4, false)
		// 元表に無い欠落をそのまま踏襲する。
		delete(zzzFingers, "RFinger33")
		return &gameRuleTable{
			jointNames: mergeJointNames(bipTrunkJointNames(), zzzFingers),
			startsWith: commonStartsWithRules(startsWithBipDefault),
			endsWith:   commonEndsWithRules(false),
			replaces:   commonReplaceRules(),
		}, nil
	default:
		return nil, fmt.Errorf("未対応ゲームです: %s", game)
	}
}

// startsWithBipVariant はBip系接頭辞規則のゲーム差分を表す。
type startsWithBipVariant int

const (
	startsWithBipDefault startsWithBipVariant = iota
	startsWithBipGenshin
	startsWithBipStarRail
	startsWithBipHonkaiImpact
)

// commonStartsWithRules は共通の接頭辞規則を記載順で返す。
func commonStartsWithRules(variant startsWithBipVariant) []renameRule {
	rules := []renameRule{
		{"_", ""},
		{"ValveBiped_", ""},
		{"Valvebiped_", ""},
		{"Bip1_", "Bip_"},
		{"Bip01_", "Bip_"},
	}
	switch variant {
	case startsWithBipGenshin:
		rules = append(rules,
			renameRule{"Bip01", ""},
			renameRule{"Bip001", ""},
		)
	case startsWithBipStarRail:
		rules = append(rules,
			renameRule{"Bip001_", "Bip_"},
			renameRule{"Bip01", ""},
		)
	case startsWithBipHonkaiImpact:
		rules = append(rules,
			renameRule{"Bip001_", "Bip_"},
			renameRule{"Bip001", ""},
			renameRule{"Bip01", ""},
		)
	default:
		rules = append(rules,
			renameRule{"Bip01", ""},
			renameRule{"Bip001", ""},
		)
	}
	rules = append(rules,
		renameRule{"Bip02_", "Bip_"},
		renameRule{"Character1_", ""},
		renameRule{"HLP_", ""},
		renameRule{"JD_", ""},
		renameRule{"JU_", ""},
		renameRule{"Armature|", ""},
		renameRule{"Bone_", ""},
		renameRule{"C_", ""},
		renameRule{"Cf_S_", ""},
		renameRule{"Cf_J_", ""},
		renameRule{"G_", ""},
		renameRule{"Joint_", ""},
		renameRule{"Def_C_", ""},
		renameRule{"Def_", ""},
		renameRule{"DEF_", ""},
		renameRule{"Chr_", ""},
		renameRule{"B_", ""},
	)
	return rules
}

// commonEndsWithRules は共通の接尾辞規則を記載順で返す。
func commonEndsWithRules(stripEnd bool) []renameRule {
	rules := []renameRule{
		{"_Bone", ""},
		{"_Bn", ""},
		{"_Le", "_L"},
		{"_Ri", "_R"},
		{"_", ""},
	}
	if stripEnd {
		rules = append(rules, renameRule{"_End", ""})
	}
	return rules
}

// commonReplaceRules は共通の全置換規則を記載順で返す。
func commonReplaceRules() []renameRule {
	return []renameRule{
		{" ", "_"},
		{"-", "_"},
		{".", "_"},
		{":", "_"},
		{"____", "_"},
		{"___", "_"},
		{"__", "_"},
		{"_Le_", "_L_"},
		{"_l", "_L"},
		{"_Ri_", "_R_"},
		{"_r", "_R"},
		{"_m", "_M"},
		{"LEFT", "Left"},
		{"RIGHT", "Right"},
		{"all", "All"},
		{"finger", "Finger"},
		{"part", "Part"},
	}
}

// bipTrunkJointNames はBip系の体幹・四肢の旧表記対応を返す。
func bipTrunkJointNames() map[string]string {
	return map[string]string{
		"Pelvis":    "Hips",
		"LThigh":    "Left leg",
		"RThigh":    "Right leg",
		"LCalf":     "Left knee",
		"RCalf":     "Right knee",
		"LFoot":     "Left ankle",
		"RFoot":     "Right ankle",
		"LToe0":     "Left toe",
		"RToe0":     "Right toe",
		"LClavicle": "Left shoulder",
		"RClavicle": "Right shoulder",
		"LUpperArm": "Left arm",
		"RUpperArm": "Right arm",
		"LForearm":  "Left elbow",
		"RForearm":  "Right elbow",
		"LHand":     "Left wrist",
		"RHand":     "Right wrist",
	}
}

// bipFingerJointNames はBip系の指の対応を返す。
// segments は指1本あたりの節数(3または4)。thumbFive はThumbをFinger5系で持つ骨格向け。
func bipFingerJointNames(segments int, thumbFive bool) map[string]string {
	fingers := []struct {
		digit string
		label string
	}{
		{"0", "Thumb"},
		{"1", "IndexFinger"},
		{"2", "MiddleFinger"},
		{"3", "RingFinger"},
		{"4", "LittleFinger"},
	}
	names := map[string]string{}
	for _, side := range []string{"L", "R"} {
		for _, finger := range fingers {
			digit := finger.digit
			if thumbFive && finger.label == "Thumb" {
				digit = "5"
			}
			for segment := 1; segment <= segments; segment++ {
				key := fmt.Sprintf("%sFinger%s", side, digit)
				if segment > 1 {
					key = fmt.Sprintf("%sFinger%s%d", side, digit, segment-1)
				}
				names[key] = fmt.Sprintf("%s%d_%s", finger.label, segment, side)
			}
		}
	}
	return names
}

// bipThumbAltJointNames はThumbのFinger5系別表記を返す。
func bipThumbAltJointNames() map[string]string {
	return map[string]string{
		"LFinger5":  "Thumb1_L",
		"LFinger51": "Thumb2_L",
		"LFinger52": "Thumb3_L",
		"RFinger5":  "Thumb1_R",
		"RFinger51": "Thumb2_R",
		"RFinger52": "Thumb3_R",
	}
}

// hsrJointNames はHonkai Star Rail系の対応を返す。
func hsrJointNames() map[string]string {
	return map[string]string{
		"Root_M":     "Hips",
		"Hip_L":      "Left leg",
		"Hip_R":      "Right leg",
		"HipPart1_R": "Right leg twist R",
		"HipPart1_L": "Left leg twist L",
		"Spine1_M":   "Spine",
		"Spine2_M":   "Chest",
		"Chest_M":    "Upper Chest",
		"Shoulder_L": "Left arm",
		"Shoulder_R": "Right arm",
		"Scapula_R":  "Right shoulder",
		"Scapula_L":  "Left shoulder",
		"Neck_M":     "Neck",
		"Head_M":     "Head",
		"face":       "Face",
		"Knee_L":     "Left knee",
		"Knee_R":     "Right knee",
		"Ankle_L":    "Left ankle",
		"Ankle_R":    "Right ankle",
		"Toes_L":     "Left toe",
		"Toes_R":     "Right toe",
		"Elbow_L":    "Left elbow",
		"Elbow_R":    "Right elbow",
		"Wrist_L":    "Left wrist",
		"Wrist_R":    "Right wrist",
	}
}

// hi3CamelJointNames はHonkai Impact特有のキャメル表記対応を返す。
func hi3CamelJointNames() map[string]string {
	return map[string]string{
		"RightLeg":      "Right leg",
		"LeftLeg":       "Left leg",
		"RightArm":      "Right arm",
		"LeftArm":       "Left arm",
		"RightWrist":    "Right wrist",
		"LeftWrist":     "Left wrist",
		"RightElbow":    "Right elbow",
		"LeftElbow":     "Left elbow",
		"RightShoulder": "Right shoulder",
		"LeftShoulder":  "Left shoulder",
		"LeftKnee":      "Left knee",
		"RightKnee":     "Right knee",
		"RightAnkle":    "Right ankle",
		"LeftAnkle":     "Left ankle",
		"RightToe":      "Right toe",
		"LeftToe":       "Left toe",
	}
}

// hi3BareFingerJointNames はHonkai Impactの接頭辞喪失後の指対応を返す。
func hi3BareFingerJointNames() map[string]string {
	names := map[string]string{
		"LFinger0":  "Thumb1_L",
		"LFinger01": "Thumb2_L",
		"LFinger02": "Thumb3_L",
		"RFinger0":  "Thumb1_R",
		"RFinger01": "Thumb2_R",
		"RFinger02": "Thumb3_R",
	}
	bare := []string{
		"IndexFinger1", "IndexFinger2", "IndexFinger3",
		"MiddleFinger1", "MiddleFinger2", "MiddleFinger3",
		"RingFinger1", "RingFinger2", "RingFinger3",
		"LittleFinger1", "LittleFinger2", "LittleFinger3",
	}
	for _, side := range []string{"L", "R"} {
		for i, label := range bare {
			key := side
			if i > 0 {
				key = fmt.Sprintf("%s_%03d", side, i)
			}
			names[key] = fmt.Sprintf("%s_%s", label, side)
		}
	}
	return names
}

// mergeJointNames は複数の対応表を後勝ちで統合する。
func mergeJointNames(tables ...map[string]string) map[string]string {
	merged := map[string]string{}
	for _, table := range tables {
		for key, value := range table {
			merged[key] = value
		}
	}
	return merged
}
