// 指示: miu200521358
package minteractor

import "fmt"

// convertHi3 はHonkai Impact 3rdキャラクターモデルを変換する。
// 旧世代モデル(Eye_L/Eye_R/Mouthメッシュ持ち)は対象外として拒否する。
func convertHi3(data *ModelData, settings ConversionSettings) error {
	logConvertInfo("Honkai Impact 3rdモデルを変換します: %s", data.Info.CleanName)

	if IsLegacyHi3Model(data.Meshes) {
		return fmt.Errorf("旧世代Honkai Impactモデルは変換対象外です: %s", data.Info.CleanName)
	}

	cleanMeshes(data, settings.KeepStarEyeMesh)
	if err := NormalizeJointNames(GameHonkaiImpact3rd, data.Skeleton); err != nil {
		return err
	}
	resetJointRolls(data.Skeleton)
	data.Skeleton.Remove("Root")
	reparentJoints(data.Skeleton, []jointReparent{
		{child: "Bone_C1_Bip_Root", parent: "Hips"},
		{child: "Bone_PelvisTwist", parent: "Hips"},
		{child: "Bone_Pelvis_Twist", parent: "Hips"},
	})

	if settings.HumanoidArmatureFix {
		fixHumanoidJointPositions(data)
		attachJointPairs(data.Skeleton, standardAttachPairs(false, settings.ConnectChestToNeck))
	}
	if settings.ConnectTwistToLimbs {
		attachTwistJoints(data.Skeleton)
	}

	if settings.GenerateShapeKeys {
		generateShapeKeys(data, hi3ShapeKeyPlan())
	}
	if settings.GenerateShapeKeysMmd {
		generateShapeKeys(data, hi3MmdShapeKeyPlan())
	}

	duplicateJointsWithWeights(data, []jointDuplicate{
		{source: "Bone_Eye_L_01", duplicate: "Left Eye"},
		{source: "Bone_Eye_R_01", duplicate: "Right Eye"},
	}, map[string][]string{
		"Left Eye":  {"Bone_Eye_L_End"},
		"Right Eye": {"Bone_Eye_R_End"},
	}, "EyeShape")
	attachEyeJoints(data.Skeleton, "Left Eye", "Right Eye")

	mergeKey := "Mouth_A01"
	if settings.GenerateShapeKeys {
		mergeKey = "A"
	}
	mergeMeshesByDistance(data, "Face", []string{"EyeShape", "Eyebrow"}, mergeKey)

	moveModelToGround(data)
	if settings.MergeAllMeshes {
		mergeAllMeshes(data)
	}
	return nil
}
