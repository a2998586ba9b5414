// 指示: miu200521358
package minteractor

import (
	"testing"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/mmath"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
)

func skeletonWithNames(t *testing.T, names ...string) *model.Skeleton {
	t.Helper()
	skeleton := model.NewSkeleton()
	for i, name := range names {
		z := 1.0 + float64(i)*0.1
		appendJoint(t, skeleton, name, mmath.NewVec3(0, 0, z), mmath.NewVec3(0, 0, z+0.05), "")
	}
	return skeleton
}

func TestNormalizeJointNamesGenshinDirect(t *testing.T) {
	skeleton := skeletonWithNames(t,
		"Bip001 Pelvis",
		"Bip001 Spine",
		"Bip001 Spine1",
		"Bip001 Spine2",
		"Bip001 L UpperArm",
		"Bip001 R Hand",
		"Bip001 L Finger0",
	)
	if err := NormalizeJointNames(GameGenshinImpact, skeleton); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	expected := []string{
		"Hips", "Spine", "Chest", "Upper Chest",
		"Left Upper Arm", "Right Hand", "Left Thumb Proximal",
	}
	for _, name := range expected {
		if !skeleton.ContainsName(name) {
			t.Fatalf("missing normalized joint: %s", name)
		}
	}
}

func TestNormalizeJointNamesKeepsCanonicalNames(t *testing.T) {
	skeleton := skeletonWithNames(t, "Hips", "Upper Chest", "Left Upper Arm", "Left Thumb Proximal")
	if err := NormalizeJointNames(GameGenshinImpact, skeleton); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	for _, name := range []string{"Hips", "Upper Chest", "Left Upper Arm", "Left Thumb Proximal"} {
		if !skeleton.ContainsName(name) {
			t.Fatalf("canonical joint should stay untouched: %s", name)
		}
	}
}

func TestNormalizeJointNamesGenshinRulePath(t *testing.T) {
	skeleton := skeletonWithNames(t, "Bip001 LThigh", "Bip001 RCalf")
	if err := NormalizeJointNames(GameGenshinImpact, skeleton); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if !skeleton.ContainsName("Left Upper Leg") {
		t.Fatalf("thigh should normalize to Left Upper Leg")
	}
	if !skeleton.ContainsName("Right Lower Leg") {
		t.Fatalf("calf should normalize to Right Lower Leg")
	}
}

func TestNormalizeJointNamesStarRail(t *testing.T) {
	skeleton := skeletonWithNames(t, "Root_M", "Shoulder_L", "ThumbFinger1_L", "Knee_R")
	if err := NormalizeJointNames(GameHonkaiStarRail, skeleton); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	expected := []string{"Hips", "Left Upper Arm", "Left Thumb Proximal", "Right Lower Leg"}
	for _, name := range expected {
		if !skeleton.ContainsName(name) {
			t.Fatalf("missing normalized joint: %s", name)
		}
	}
}

func TestNormalizeJointNamesHonkaiImpactStripsDecoratedPrefix(t *testing.T) {
	skeleton := skeletonWithNames(t, "Avatar_C6_Bip001 Pelvis", "Bone_LUpperArm")
	if err := NormalizeJointNames(GameHonkaiImpact3rd, skeleton); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if !skeleton.ContainsName("Hips") {
		t.Fatalf("decorated pelvis should normalize to Hips")
	}
	if !skeleton.ContainsName("Left Upper Arm") {
		t.Fatalf("decorated arm should normalize to Left Upper Arm")
	}
}

func TestNormalizeJointNamesWutheringWavesThumbChain(t *testing.T) {
	skeleton := skeletonWithNames(t, "LFinger5", "LFinger51", "RFinger2")
	if err := NormalizeJointNames(GameWutheringWaves, skeleton); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	expected := []string{"Left Thumb Proximal", "Left Thumb Intermediate", "Right Middle Proximal"}
	for _, name := range expected {
		if !skeleton.ContainsName(name) {
			t.Fatalf("missing normalized joint: %s", name)
		}
	}
}

func TestNormalizeJointNamesSkipsWhenTargetExists(t *testing.T) {
	skeleton := skeletonWithNames(t, "Hips", "Bip001 Pelvis")
	if err := NormalizeJointNames(GameGenshinImpact, skeleton); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if !skeleton.ContainsName("Bip001 Pelvis") {
		t.Fatalf("duplicate target should leave the source name untouched")
	}
}

func TestNormalizeJointNamesUnknownGame(t *testing.T) {
	skeleton := skeletonWithNames(t, "Hips")
	if err := NormalizeJointNames("Unknown Game", skeleton); err == nil {
		t.Fatalf("expected error for unknown game")
	}
}

func TestNormalizeJointNamesNilSkeleton(t *testing.T) {
	if err := NormalizeJointNames(GameGenshinImpact, nil); err == nil {
		t.Fatalf("expected error for nil skeleton")
	}
}

func TestCamelSplitTitle(t *testing.T) {
	cases := map[string]string{
		"LThigh":       "LThigh",
		"upperArm":     "UpperArm",
		"LFinger5":     "LFinger5",
		"Bip001Pelvis": "Bip001Pelvis",
	}
	for input, expected := range cases {
		if got := camelSplitTitle(input); got != expected {
			t.Fatalf("camel split mismatch: %s -> %s (expected %s)", input, got, expected)
		}
	}
}
