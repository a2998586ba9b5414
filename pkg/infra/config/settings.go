// 指示: miu200521358
// Package config は変換設定の読み込みを提供する。
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings は変換時の挙動を制御する設定を表す。
type Settings struct {
	// MergeAllMeshes は全メッシュを1つのBodyメッシュへ統合するかを表す。
	MergeAllMeshes bool `toml:"merge_all_meshes"`
	// ConnectChestToNeck はUpper ChestではなくChestを首へ接続するかを表す。
	ConnectChestToNeck bool `toml:"connect_chest_to_neck"`
	// ConnectTwistToLimbs は捻りジョイントを手足の接続に使うかを表す。
	ConnectTwistToLimbs bool `toml:"connect_twist_to_limbs"`
	// ReconnectArmature はジョイントチェーンの再接続を行うかを表す。
	ReconnectArmature bool `toml:"reconnect_armature"`
	// HumanoidArmatureFix はヒューマノイド骨格位置補正を行うかを表す。
	HumanoidArmatureFix bool `toml:"humanoid_armature_fix"`
	// GenerateShapeKeys はリップシンク用シェイプキーを生成するかを表す。
	GenerateShapeKeys bool `toml:"generate_shape_keys"`
	// GenerateShapeKeysMmd はMMD互換シェイプキーを生成するかを表す。
	GenerateShapeKeysMmd bool `toml:"generate_shape_keys_mmd"`
	// KeepStarEyeMesh はEyeStarメッシュを残すかを表す。
	KeepStarEyeMesh bool `toml:"keep_star_eye_mesh"`
}

// DefaultSettings は既定設定を返す。
func DefaultSettings() Settings {
	return Settings{
		MergeAllMeshes:       false,
		ConnectChestToNeck:   false,
		ConnectTwistToLimbs:  false,
		ReconnectArmature:    true,
		HumanoidArmatureFix:  true,
		GenerateShapeKeys:    true,
		GenerateShapeKeysMmd: false,
		KeepStarEyeMesh:      false,
	}
}

// LoadSettings はTOML設定ファイルを読み込む。
// 記載の無い項目は既定値のまま残す。
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, fmt.Errorf("設定ファイルが見つかりません: %s", path)
		}
		return settings, fmt.Errorf("設定ファイルの読み取りに失敗しました: %w", err)
	}
	if err := toml.Unmarshal(b, &settings); err != nil {
		return settings, fmt.Errorf("設定ファイルの解析に失敗しました: %w", err)
	}
	return settings, nil
}
