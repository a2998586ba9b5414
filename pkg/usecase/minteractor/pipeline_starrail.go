// 指示: miu200521358
package minteractor

// convertStarrail はHonkai Star Railキャラクターモデルを変換する。
func convertStarrail(data *ModelData, settings ConversionSettings) error {
	logConvertInfo("Honkai Star Railモデルを変換します: %s", data.Info.CleanName)

	cleanMeshes(data, settings.KeepStarEyeMesh)

	// 表情ポーズは改名前の元ジョイント名を参照するため先に焼き込む。
	bakeExpressionShapeKeys(data, "Face")

	// 口形素はジョイント改名に依存しないため元実装と同じく先に生成する。
	if settings.GenerateShapeKeys {
		generateShapeKeys(data, starrailShapeKeyPlan())
	}
	if settings.GenerateShapeKeysMmd {
		generateShapeKeys(data, starrailMmdShapeKeyPlan())
	}

	if err := NormalizeJointNames(GameHonkaiStarRail, data.Skeleton); err != nil {
		return err
	}
	symmetrizeJoints(data.Skeleton, "Right")
	resetJointRolls(data.Skeleton)
	data.Skeleton.Remove("Main", "joint_skin_GRP")

	if settings.HumanoidArmatureFix {
		fixHumanoidJointPositions(data)
		attachJointPairs(data.Skeleton, standardAttachPairs(true, settings.ConnectChestToNeck))
	}
	if settings.ConnectTwistToLimbs {
		attachTwistJoints(data.Skeleton)
	}

	duplicateJointsWithWeights(data, []jointDuplicate{
		{source: "eye_L", duplicate: "Left Eye"},
		{source: "eye_R", duplicate: "Right Eye"},
	}, map[string][]string{
		"Left Eye":  {"eyeEnd_L", "eyeEnd_01_L"},
		"Right Eye": {"eyeEnd_R", "eyeEnd_01_R"},
	}, "Face")
	attachEyeJoints(data.Skeleton, "Left Eye", "Right Eye")
	reparentJoints(data.Skeleton, []jointReparent{
		{child: "Left Eye", parent: "Head"},
		{child: "Right Eye", parent: "Head"},
	})

	mergeFaceMaskMesh(data, "Face_Mask", "Face", "Head")
	separateBangsMesh(data, "Hair", []string{"Hair"}, -0.04)

	moveModelToGround(data)
	if settings.MergeAllMeshes {
		mergeAllMeshes(data)
	}
	return nil
}
