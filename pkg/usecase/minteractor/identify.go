// 指示: miu200521358
package minteractor

import (
	"regexp"
	"strings"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
)

// supportedGames は変換対応ゲームの集合を保持する。
var supportedGames = map[string]struct{}{
	GameGenshinImpact:       {},
	GameGenshinImpactWeapon: {},
	GameHonkaiStarRail:      {},
	GameHonkaiImpact3rd:     {},
	GameZenlessZoneZero:     {},
	GameWutheringWaves:      {},
	GameNPC:                 {},
}

// IsGameSupported は変換対応ゲームか判定する。
func IsGameSupported(game string) bool {
	_, ok := supportedGames[game]
	return ok
}

// legacyHi3MeshNames は旧世代Honkai Impactモデル特有のメッシュ名を保持する。
var legacyHi3MeshNames = []string{"Eye_L", "Eye_R", "Mouth"}

// IsLegacyHi3Model は旧世代Honkai Impactモデルか判定する。
func IsLegacyHi3Model(meshes *model.MeshCollection) bool {
	if meshes == nil {
		return false
	}
	for _, name := range legacyHi3MeshNames {
		if meshes.ContainsName(name) {
			return true
		}
	}
	return false
}

// modelNameReplacements はモデル名から除去する共通装飾を記載順で保持する。
var modelNameReplacements = []renameRule{
	{".001", ""},
	{"_Render", ""},
	{"_merge", ""},
	{" (merge)", ""},
	{"_Edit", ""},
	{".fbx", ""},
	{".FBX", ""},
	{"_LOD0", ""},
	{"_LOD1", ""},
	{"_LOD2", ""},
	{"_UI", ""},
	{"_Model", ""},
	{"_Skeleton", ""},
	{"Costume", " "},
	{"NPC_", ""},
	{"Kanban_", ""},
	{"Cs_", ""},
	{"Monster_", ""},
	{"#", ""},
	{"La_", "La "},
	{"_TK", ""},
}

// CleanModelName はモデル名から共通の装飾・接尾辞を除去する。
func CleanModelName(name string) string {
	for _, rule := range modelNameReplacements {
		name = strings.ReplaceAll(name, rule.old, rule.new)
	}
	return strings.TrimSpace(name)
}

var (
	cleanNamePrefixes = []string{
		"Cs_Avatar_",
		"Avatar_",
		"NPC_Avatar_",
		"Player_",
		"Art_",
		"Equip_",
		"CS_Item_",
		"NPC_Item_",
		"Assister_",
		"Standalone_",
		"Avatar_",
		"NPC_Avatar_",
		"Player_",
		"Art_",
		"Equip_",
		"CS_Item_",
		"NPC_Item_",
		"Assister_",
		"Md",
		"R2T1",
		"NH",
	}
	cleanNameBodyTypes = []*regexp.Regexp{
		regexp.MustCompile(`^Boy_`),
		regexp.MustCompile(`^Girl_`),
		regexp.MustCompile(`^Lady_`),
		regexp.MustCompile(`^Male_`),
		regexp.MustCompile(`^Loli_`),
		regexp.MustCompile(`^Female_Size\d{2}_`),
		regexp.MustCompile(`^Male_Size\d{2}_`),
		regexp.MustCompile(`^Size\d{2}_`),
	}
	cleanNameWeaponTypes = []string{"Sword_", "Bow_", "Claymore_", "Catalyst_", "Pole_", "Undefined_"}
	cleanNameRegexes     = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z][0-9]{2}_`),
		regexp.MustCompile(`^[a-z][0-9]{2}_`),
		regexp.MustCompile(`^_[A-Z]{2}`),
		regexp.MustCompile(`^_[a-z]{2}`),
	}
	hi3VariantSuffixPattern = regexp.MustCompile(`_C\d+`)
	hi3TrailingUpperPattern = regexp.MustCompile(`_[A-Z]{2}$`)
	trailingNumberPattern   = regexp.MustCompile(`_?\d+$`)
	edgeUnderscorePattern   = regexp.MustCompile(`^_|_$`)
)

// ExtractCleanName はモデル名からキャラクター・武器名のみを抽出する。
func ExtractCleanName(name string, game string) string {
	name = CleanModelName(name)

	switch game {
	case GameGenshinImpact:
		if strings.Contains(name, "PlayerBoy") {
			return "Aether"
		}
		if strings.Contains(name, "PlayerGirl") {
			return "Lumine"
		}
	case GameHonkaiStarRail:
		if strings.Contains(name, "PlayerBoy") {
			return "Caelus"
		}
		if strings.Contains(name, "PlayerGirl") {
			return "Stelle"
		}
		if strings.Contains(name, "Trailblazer") {
			if strings.Contains(name, "Boy") || strings.Contains(name, "Male") {
				return "Caelus"
			}
			if strings.Contains(name, "Girl") || strings.Contains(name, "Female") {
				return "Stelle"
			}
		}
	}

	for _, prefix := range cleanNamePrefixes {
		name = strings.TrimPrefix(name, prefix)
	}
	for _, pattern := range cleanNameBodyTypes {
		name = pattern.ReplaceAllString(name, "")
	}
	for _, weaponType := range cleanNameWeaponTypes {
		name = strings.TrimPrefix(name, weaponType)
	}
	for _, pattern := range cleanNameRegexes {
		name = pattern.ReplaceAllString(name, "")
	}

	if game == GameHonkaiImpact3rd {
		name = hi3VariantSuffixPattern.ReplaceAllString(name, "")
		name = hi3TrailingUpperPattern.ReplaceAllString(name, "")
	}

	name = trailingNumberPattern.ReplaceAllString(name, "")
	name = edgeUnderscorePattern.ReplaceAllString(name, "")
	return name
}

var (
	genshinCharacterPattern = regexp.MustCompile(
		`^(Cs_Avatar|Cs_Monster|Avatar|NPC_Avatar)_(Boy|Girl|Lady|Male|Loli)_(Sword|Claymore|Bow|Catalyst|Pole|Undefined)_([a-zA-Z]+(?:\s+[a-zA-Z]+)?)$`)
	zzzCharacterPattern  = regexp.MustCompile(`^Avatar_(Female|Male)_Size(\d{2})_([a-zA-Z]+)$`)
	hsrCharacterPattern  = regexp.MustCompile(`^(Player|Avatar|Art|NPC_Avatar)_([a-zA-Z]+)_?\d{2}$`)
	hi3CharacterPattern  = regexp.MustCompile(`^(Avatar|Assister)_\w+?_C\d+(_\w+[^_])$`)
	wuwaCharacterPattern = regexp.MustCompile(`^(R2T1\w+|NH\w+)$`)
	genshinWeaponPattern = regexp.MustCompile(
		`^(?:Equip_(Sword|Bow|Claymore|Catalyst|Pole)_([a-zA-Z0-9_]+)|CS_Item_(?:Sword|Bow|Claymore|Catalyst|Pole)_[a-zA-Z0-9]+|NPC_Item_[a-zA-Z0-9_]+)$`)
	controllerBonePattern = regexp.MustCompile(`^.*ControllerBone$`)
	weaponTypeNames       = []string{"Sword", "Bow", "Claymore", "Catalyst", "Pole"}
)

// IdentifyModel はモデル名からゲーム・素体種別・武器種別・クリーン名を識別する。
// どのパターンにも一致しない場合はNPC扱いとして返す。
func IdentifyModel(name string) model.ModelInfo {
	cleaned := CleanModelName(name)

	if match := genshinCharacterPattern.FindStringSubmatch(cleaned); match != nil {
		return model.ModelInfo{
			Game:       GameGenshinImpact,
			BodyType:   match[2],
			WeaponType: match[3],
			CleanName:  ExtractCleanName(match[0], GameGenshinImpact),
		}
	}
	if match := zzzCharacterPattern.FindStringSubmatch(cleaned); match != nil {
		return model.ModelInfo{
			Game:      GameZenlessZoneZero,
			BodyType:  match[1] + "_Size" + match[2],
			CleanName: ExtractCleanName(match[0], GameZenlessZoneZero),
		}
	}
	if match := hsrCharacterPattern.FindStringSubmatch(cleaned); match != nil {
		return model.ModelInfo{
			Game:      GameHonkaiStarRail,
			CleanName: ExtractCleanName(match[0], GameHonkaiStarRail),
		}
	}
	if match := hi3CharacterPattern.FindStringSubmatch(cleaned); match != nil {
		return model.ModelInfo{
			Game:      GameHonkaiImpact3rd,
			CleanName: ExtractCleanName(match[0], GameHonkaiImpact3rd),
		}
	}
	if match := wuwaCharacterPattern.FindStringSubmatch(cleaned); match != nil {
		return model.ModelInfo{
			Game:      GameWutheringWaves,
			CleanName: ExtractCleanName(match[0], GameWutheringWaves),
		}
	}
	if match := genshinWeaponPattern.FindStringSubmatch(cleaned); match != nil {
		// Equip_系のDvalin武器は対象外。
		if match[1] == "" || !strings.HasPrefix(match[2], "Dvalin") {
			return weaponModelInfo(match[0])
		}
	}
	if controllerBonePattern.MatchString(cleaned) {
		return weaponModelInfo(cleaned)
	}

	return model.ModelInfo{
		Game:      GameNPC,
		CleanName: ExtractCleanName(cleaned, GameNPC),
	}
}

// weaponModelInfo は武器モデルの識別結果を組み立てる。
func weaponModelInfo(name string) model.ModelInfo {
	weaponType := ""
	for _, candidate := range weaponTypeNames {
		if strings.Contains(name, candidate) {
			weaponType = candidate
			break
		}
	}
	return model.ModelInfo{
		Game:       GameGenshinImpactWeapon,
		WeaponType: weaponType,
		CleanName:  ExtractCleanName(name, GameGenshinImpactWeapon),
		IsWeapon:   true,
	}
}
