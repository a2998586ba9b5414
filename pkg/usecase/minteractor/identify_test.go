// 指示: miu200521358
package minteractor

import (
	"testing"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
)

func TestIdentifyModelGenshinCharacter(t *testing.T) {
	info := IdentifyModel("Avatar_Boy_Sword_Aether")
	if info.Game != GameGenshinImpact {
		t.Fatalf("game mismatch: %s", info.Game)
	}
	if info.BodyType != "Boy" {
		t.Fatalf("body type mismatch: %s", info.BodyType)
	}
	if info.WeaponType != "Sword" {
		t.Fatalf("weapon type mismatch: %s", info.WeaponType)
	}
	if info.CleanName != "Aether" {
		t.Fatalf("clean name mismatch: %s", info.CleanName)
	}
	if info.IsWeapon {
		t.Fatalf("character must not be a weapon")
	}
}

func TestIdentifyModelGenshinTraveler(t *testing.T) {
	info := IdentifyModel("Avatar_Girl_Catalyst_PlayerGirl")
	if info.Game != GameGenshinImpact {
		t.Fatalf("game mismatch: %s", info.Game)
	}
	if info.CleanName != "Lumine" {
		t.Fatalf("clean name mismatch: %s", info.CleanName)
	}
}

func TestIdentifyModelZenlessCharacter(t *testing.T) {
	info := IdentifyModel("Avatar_Female_Size02_Anbi")
	if info.Game != GameZenlessZoneZero {
		t.Fatalf("game mismatch: %s", info.Game)
	}
	if info.BodyType != "Female_Size02" {
		t.Fatalf("body type mismatch: %s", info.BodyType)
	}
	if info.CleanName != "Anbi" {
		t.Fatalf("clean name mismatch: %s", info.CleanName)
	}
}

func TestIdentifyModelStarRailCharacter(t *testing.T) {
	info := IdentifyModel("Avatar_Kafka_00")
	if info.Game != GameHonkaiStarRail {
		t.Fatalf("game mismatch: %s", info.Game)
	}
	if info.CleanName != "Kafka" {
		t.Fatalf("clean name mismatch: %s", info.CleanName)
	}
}

func TestIdentifyModelStarRailTrailblazer(t *testing.T) {
	info := IdentifyModel("Player_PlayerBoy_00")
	if info.Game != GameHonkaiStarRail {
		t.Fatalf("game mismatch: %s", info.Game)
	}
	if info.CleanName != "Caelus" {
		t.Fatalf("clean name mismatch: %s", info.CleanName)
	}
}

func TestIdentifyModelHonkaiImpactCharacter(t *testing.T) {
	info := IdentifyModel("Avatar_Kiana_C6_DX")
	if info.Game != GameHonkaiImpact3rd {
		t.Fatalf("game mismatch: %s", info.Game)
	}
	if info.CleanName != "Kiana" {
		t.Fatalf("clean name mismatch: %s", info.CleanName)
	}
}

func TestIdentifyModelWutheringWavesCharacter(t *testing.T) {
	info := IdentifyModel("R2T1MaleXL")
	if info.Game != GameWutheringWaves {
		t.Fatalf("game mismatch: %s", info.Game)
	}
	if info.CleanName != "MaleXL" {
		t.Fatalf("clean name mismatch: %s", info.CleanName)
	}
}

func TestIdentifyModelGenshinWeapon(t *testing.T) {
	info := IdentifyModel("Equip_Sword_Blunt")
	if info.Game != GameGenshinImpactWeapon {
		t.Fatalf("game mismatch: %s", info.Game)
	}
	if info.WeaponType != "Sword" {
		t.Fatalf("weapon type mismatch: %s", info.WeaponType)
	}
	if info.CleanName != "Blunt" {
		t.Fatalf("clean name mismatch: %s", info.CleanName)
	}
	if !info.IsWeapon {
		t.Fatalf("weapon flag missing")
	}
}

func TestIdentifyModelExcludesDvalinWeapon(t *testing.T) {
	info := IdentifyModel("Equip_Sword_Dvalin_01")
	if info.Game != GameNPC {
		t.Fatalf("Dvalin weapon should fall back to NPC: %s", info.Game)
	}
	if info.IsWeapon {
		t.Fatalf("Dvalin weapon must not keep the weapon flag")
	}
}

func TestIdentifyModelControllerBoneAsWeapon(t *testing.T) {
	info := IdentifyModel("SwordControllerBone")
	if info.Game != GameGenshinImpactWeapon {
		t.Fatalf("game mismatch: %s", info.Game)
	}
	if !info.IsWeapon {
		t.Fatalf("weapon flag missing")
	}
}

func TestIdentifyModelNpcFallback(t *testing.T) {
	info := IdentifyModel("NPC_Kanban_Paimon")
	if info.Game != GameNPC {
		t.Fatalf("game mismatch: %s", info.Game)
	}
	if info.CleanName != "Paimon" {
		t.Fatalf("clean name mismatch: %s", info.CleanName)
	}
}

func TestCleanModelNameStripsDecorations(t *testing.T) {
	cases := map[string]string{
		"Aether (merge)":              "Aether",
		"Avatar_Kafka_00.001":         "Avatar_Kafka_00",
		"Avatar_Boy_Sword_Aether.fbx": "Avatar_Boy_Sword_Aether",
		"Barbara_Render":              "Barbara",
	}
	for input, expected := range cases {
		if got := CleanModelName(input); got != expected {
			t.Fatalf("clean mismatch: %s -> %s (expected %s)", input, got, expected)
		}
	}
}

func TestIsGameSupported(t *testing.T) {
	for _, game := range []string{
		GameGenshinImpact, GameGenshinImpactWeapon, GameHonkaiStarRail,
		GameHonkaiImpact3rd, GameZenlessZoneZero, GameWutheringWaves, GameNPC,
	} {
		if !IsGameSupported(game) {
			t.Fatalf("game should be supported: %s", game)
		}
	}
	if IsGameSupported("Unknown Game") {
		t.Fatalf("unknown game must not be supported")
	}
}

func TestIsLegacyHi3Model(t *testing.T) {
	meshes := model.NewMeshCollection()
	if IsLegacyHi3Model(meshes) {
		t.Fatalf("empty collection must not be legacy")
	}
	if err := meshes.Append(&model.Mesh{Name: "Eye_L"}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if !IsLegacyHi3Model(meshes) {
		t.Fatalf("Eye_L mesh marks a legacy model")
	}
	if IsLegacyHi3Model(nil) {
		t.Fatalf("nil collection must not be legacy")
	}
}
