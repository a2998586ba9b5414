// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"
)

// wuwaPupilShapeKeys はWuthering Wavesの瞳用シェイプキー名。
func wuwaPupilShapeKeys() []string {
	return []string{"Pupil_Up", "Pupil_Down", "Pupil_R", "Pupil_L", "Pupil_Scale"}
}

// wuwaRemoveJointNames はWuthering Wavesで削除するジョイント名を集める。
func wuwaRemoveJointNames(data *ModelData) []string {
	names := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		names = append(names, fmt.Sprintf("WeaponProp%02d", i))
	}
	names = append(names, "Root.001")
	for _, joint := range data.Skeleton.Joints() {
		if strings.Contains(joint.Name, "Case") ||
			strings.Contains(joint.Name, "Position") ||
			strings.Contains(joint.Name, "Suspension") {
			names = append(names, joint.Name)
		}
	}
	names = append(names, removeFirstJointIfNotHips(data.Skeleton)...)
	return names
}

// convertWuwa はWuthering Wavesキャラクターモデルを変換する。
func convertWuwa(data *ModelData, settings ConversionSettings) error {
	logConvertInfo("Wuthering Wavesモデルを変換します: %s", data.Info.CleanName)

	scaleModel(data)
	if err := NormalizeJointNames(GameWutheringWaves, data.Skeleton); err != nil {
		return err
	}
	resetJointRolls(data.Skeleton)
	data.Skeleton.Remove(wuwaRemoveJointNames(data)...)

	if settings.HumanoidArmatureFix {
		fixHumanoidJointPositions(data)
		attachJointPairs(data.Skeleton, standardAttachPairs(true, settings.ConnectChestToNeck))
	}
	if settings.ConnectTwistToLimbs {
		attachTwistJoints(data.Skeleton)
	}
	shiftWuwaFingerChains(data.Skeleton)

	renameAllMeshes(data, "Body")
	separateWuwaEyes(data, "Pupil_Scale", "Body", wuwaPupilShapeKeys())
	createEyeJointsFromMeshes(data, []jointPair{
		{source: "Left Eye", target: "Left Eye"},
		{source: "Right Eye", target: "Right Eye"},
	})
	mergeMeshesInto(data, "Eyes", []string{"Left Eye", "Right Eye"})

	if settings.GenerateShapeKeys {
		generateShapeKeys(data, wuwaShapeKeyPlan())
	}
	if settings.GenerateShapeKeysMmd {
		generateShapeKeys(data, wuwaMmdShapeKeyPlan())
	}

	moveModelToGround(data)
	if settings.MergeAllMeshes {
		mergeAllMeshes(data)
	}
	return nil
}
