// 指示: miu200521358
package minteractor

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
)

// canonicalJointNames はゲーム出力の生ジョイント名から標準名への直接対応を保持する。
var canonicalJointNames = map[string]string{
	"Bip001":        "Root",
	"Bip001 Pelvis": "Hips",
	"Bip001Pelvis":  "Hips",
	"Bip001 Spine":  "Spine",
	"Bip001Spine":   "Spine",
	"Bip001 Spine1": "Chest",
	"Bip001Spine1":  "Chest",
	"Bip001 Spine2": "Upper Chest",
	"Bip001Spine2":  "Upper Chest",
	"Bip001 Neck":   "Neck",
	"Bip001Neck":    "Neck",
	"Bip001 Head":   "Head",
	"Bip001Head":    "Head",
	"Root_M":        "Hips",
	"Spine1_M":      "Spine",
	"Spine2_M":      "Chest",
	"Chest_M":       "Upper Chest",
	"Neck_M":        "Neck",
	"Head_M":        "Head",
	"joint_face":    "Face",
	"breast_R":      "Breast_R",
	"breast_L":      "Breast_L",

	"Bip001 L Clavicle": "Left Shoulder",
	"Bip001LClavicle":   "Left Shoulder",
	"Bip001 L UpperArm": "Left Upper Arm",
	"Bip001LUpperArm":   "Left Upper Arm",
	"Bip001 L Forearm":  "Left Lower Arm",
	"Bip001LForearm":    "Left Lower Arm",
	"Bip001 L Hand":     "Left Hand",
	"Bip001LHand":       "Left Hand",
	"Scapula_L":         "Left Shoulder",
	"Shoulder_L":        "Left Upper Arm",
	"Elbow_L":           "Left Lower Arm",
	"Wrist_L":           "Left Hand",

	"Bip001 R Clavicle": "Right Shoulder",
	"Bip001RClavicle":   "Right Shoulder",
	"Bip001 R UpperArm": "Right Upper Arm",
	"Bip001RUpperArm":   "Right Upper Arm",
	"Bip001 R Forearm":  "Right Lower Arm",
	"Bip001RForearm":    "Right Lower Arm",
	"Bip001 R Hand":     "Right Hand",
	"Bip001RHand":       "Right Hand",
	"Scapula_R":         "Right Shoulder",
	"Shoulder_R":        "Right Upper Arm",
	"Elbow_R":           "Right Lower Arm",
	"Wrist_R":           "Right Hand",

	"Bip001 L Thigh": "Left Upper Leg",
	"Bip001LThigh":   "Left Upper Leg",
	"Bip001 L Calf":  "Left Lower Leg",
	"Bip001LCalf":    "Left Lower Leg",
	"Bip001 L Foot":  "Left Foot",
	"Bip001LFoot":    "Left Foot",
	"Bip001 L Toe0":  "Left Toes",
	"Bip001LToe0":    "Left Toes",
	"Hip_L":          "Left Upper Leg",
	"Knee_L":         "Left Lower Leg",
	"Ankle_L":        "Left Foot",
	"Toes_L":         "Left Toes",

	"Bip001 R Thigh": "Right Upper Leg",
	"Bip001RThigh":   "Right Upper Leg",
	"Bip001 R Calf":  "Right Lower Leg",
	"Bip001RCalf":    "Right Lower Leg",
	"Bip001 R Foot":  "Right Foot",
	"Bip001RFoot":    "Right Foot",
	"Bip001 R Toe0":  "Right Toes",
	"Bip001RToe0":    "Right Toes",
	"Hip_R":          "Right Upper Leg",
	"Knee_R":         "Right Lower Leg",
	"Ankle_R":        "Right Foot",
	"Toes_R":         "Right Toes",
}

// canonicalFingerJointNames は指ジョイントの直接対応を生成して返す。
func canonicalFingerJointNames() map[string]string {
	fingers := []struct {
		digit string
		label string
	}{
		{"0", "Thumb"},
		{"1", "Index"},
		{"2", "Middle"},
		{"3", "Ring"},
		{"4", "Little"},
	}
	segments := []string{"Proximal", "Intermediate", "Distal", "Terminal"}
	names := map[string]string{}
	for _, side := range []struct{ mark, label string }{{"L", "Left"}, {"R", "Right"}} {
		for _, finger := range fingers {
			for i, segment := range segments {
				suffix := finger.digit
				if i > 0 {
					suffix = fmt.Sprintf("%s%d", finger.digit, i)
				}
				canonical := fmt.Sprintf("%s %s %s", side.label, finger.label, segment)
				names[fmt.Sprintf("Bip001 %s Finger%s", side.mark, suffix)] = canonical
				names[fmt.Sprintf("Bip001%sFinger%s", side.mark, suffix)] = canonical
			}
		}
	}
	// HSR系の指表記。
	hsrFingers := []struct {
		prefix string
		label  string
	}{
		{"ThumbFinger", "Thumb"},
		{"IndexFinger", "Index"},
		{"MiddleFinger", "Middle"},
		{"RingFinger", "Ring"},
		{"PinkyFinger", "Little"},
	}
	for _, side := range []struct{ mark, label string }{{"L", "Left"}, {"R", "Right"}} {
		for _, finger := range hsrFingers {
			for i, segment := range segments[:3] {
				names[fmt.Sprintf("%s%d_%s", finger.prefix, i+1, side.mark)] =
					fmt.Sprintf("%s %s %s", side.label, finger.label, segment)
			}
		}
	}
	return names
}

// legacyCanonicalJointNames は規則適用後の旧標準名から標準名への橋渡しを保持する。
var legacyCanonicalJointNames = map[string]string{
	"Left leg":       "Left Upper Leg",
	"Right leg":      "Right Upper Leg",
	"Left knee":      "Left Lower Leg",
	"Right knee":     "Right Lower Leg",
	"Left ankle":     "Left Foot",
	"Right ankle":    "Right Foot",
	"Left toe":       "Left Toes",
	"Right toe":      "Right Toes",
	"Left shoulder":  "Left Shoulder",
	"Right shoulder": "Right Shoulder",
	"Left arm":       "Left Upper Arm",
	"Right arm":      "Right Upper Arm",
	"Left elbow":     "Left Lower Arm",
	"Right elbow":    "Right Lower Arm",
	"Left wrist":     "Left Hand",
	"Right wrist":    "Right Hand",
}

// legacyCanonicalFingerJointNames は旧指表記から標準名への橋渡しを生成して返す。
func legacyCanonicalFingerJointNames() map[string]string {
	fingers := []struct {
		legacy string
		label  string
	}{
		{"Thumb", "Thumb"},
		{"IndexFinger", "Index"},
		{"MiddleFinger", "Middle"},
		{"RingFinger", "Ring"},
		{"LittleFinger", "Little"},
	}
	segments := []string{"Proximal", "Intermediate", "Distal", "Terminal"}
	names := map[string]string{}
	for _, side := range []struct{ mark, label string }{{"L", "Left"}, {"R", "Right"}} {
		for _, finger := range fingers {
			for i, segment := range segments {
				names[fmt.Sprintf("%s%d_%s", finger.legacy, i+1, side.mark)] =
					fmt.Sprintf("%s %s %s", side.label, finger.label, segment)
			}
		}
	}
	return names
}

var (
	hi3DecoratedPrefixPattern = regexp.MustCompile(`^\w+_C\d+_|^[^_]+_`)
	titleCaser                = cases.Title(language.Und)
)

// NormalizeJointNames はゲーム規則に従ってスケルトンのジョイント名を標準名へ正規化する。
// 標準名に既に一致する名前はそのまま残る。
func NormalizeJointNames(game string, skeleton *model.Skeleton) error {
	if skeleton == nil {
		return fmt.Errorf("正規化対象スケルトンが未設定です")
	}
	table, err := gameRuleTableFor(game)
	if err != nil {
		return err
	}

	directNames := mergeJointNames(canonicalJointNames, canonicalFingerJointNames())
	bridgeNames := mergeJointNames(legacyCanonicalJointNames, legacyCanonicalFingerJointNames())
	canonicalSet := map[string]struct{}{}
	for _, value := range directNames {
		canonicalSet[value] = struct{}{}
	}
	for _, value := range bridgeNames {
		canonicalSet[value] = struct{}{}
	}

	for _, joint := range skeleton.Joints() {
		if _, canonical := canonicalSet[joint.Name]; canonical {
			continue
		}
		raw := joint.Name
		if game == GameHonkaiImpact || game == GameHonkaiImpact3rd {
			raw = hi3DecoratedPrefixPattern.ReplaceAllString(raw, "")
		}

		normalized, direct := directNames[raw]
		if !direct {
			normalized = applyRenamePasses(raw, table)
			if mapped, ok := table.jointNames[normalized]; ok {
				normalized = mapped
			}
			if canonical, ok := bridgeNames[normalized]; ok {
				normalized = canonical
			}
		}
		if normalized == joint.Name {
			continue
		}
		if skeleton.ContainsName(normalized) {
			logConvertWarn("正規化先ジョイント名が既存のため改名を見送ります: %s -> %s", joint.Name, normalized)
			continue
		}
		if err := skeleton.Rename(joint.Name, normalized); err != nil {
			return fmt.Errorf("ジョイント名の正規化に失敗しました: %w", err)
		}
	}
	return nil
}

// applyRenamePasses は機械的な名前変換(分割・接頭辞・接尾辞・置換)を適用する。
func applyRenamePasses(name string, table *gameRuleTable) string {
	result := camelSplitTitle(name)
	for _, rule := range table.startsWith {
		if strings.HasPrefix(result, rule.old) {
			result = rule.new + result[len(rule.old):]
		}
	}
	for _, rule := range table.endsWith {
		if strings.HasSuffix(result, rule.old) {
			result = result[:len(result)-len(rule.old)] + rule.new
		}
	}
	for _, rule := range table.replaces {
		result = strings.ReplaceAll(result, rule.old, rule.new)
	}
	return result
}

// camelSplitTitle はキャメルケースを語へ分割してタイトルケース化し、空白を除去する。
func camelSplitTitle(name string) string {
	var builder strings.Builder
	builder.Grow(len(name) + 8)
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && isWordRune(runes[i-1]) {
			builder.WriteRune(' ')
		}
		builder.WriteRune(r)
	}
	titled := titleCaser.String(builder.String())
	return strings.ReplaceAll(titled, " ", "")
}

// isWordRune は英数字またはアンダースコアか判定する。
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
