package model

import "testing"

func TestConversionWarningIDsAreNonEmptyAndUnique(t *testing.T) {
	if ConversionWarningExtrasKey != "MU_HOYO2VRC_warnings" {
		t.Fatalf("extras key mismatch: got=%s want=%s", ConversionWarningExtrasKey, "MU_HOYO2VRC_warnings")
	}

	warningIDs := []string{
		ConversionWarningWeightsTruncated,
		ConversionWarningJointPairMissing,
		ConversionWarningPositionRuleSkipped,
		ConversionWarningChainGapDetected,
		ConversionWarningShapeKeySourceMissing,
		ConversionWarningEyeMeshMissing,
		ConversionWarningScaleOutOfRange,
	}

	seen := map[string]struct{}{}
	for _, warningID := range warningIDs {
		if warningID == "" {
			t.Fatalf("warning id should not be empty")
		}
		if _, exists := seen[warningID]; exists {
			t.Fatalf("warning id should be unique: %s", warningID)
		}
		seen[warningID] = struct{}{}
	}
}

func TestStandardJointNameSides(t *testing.T) {
	if UPPER_ARM.Left() != "Left Upper Arm" {
		t.Fatalf("expected Left Upper Arm: got=%s", UPPER_ARM.Left())
	}
	if UPPER_ARM.Right() != "Right Upper Arm" {
		t.Fatalf("expected Right Upper Arm: got=%s", UPPER_ARM.Right())
	}
	if UPPER_CHEST.String() != "Upper Chest" {
		t.Fatalf("expected Upper Chest: got=%s", UPPER_CHEST.String())
	}
	if THUMB_PROXIMAL.StringFromDirection(DirectionRight) != "Right Thumb Proximal" {
		t.Fatalf("expected Right Thumb Proximal: got=%s", THUMB_PROXIMAL.StringFromDirection(DirectionRight))
	}
}
