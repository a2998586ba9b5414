// 指示: miu200521358
package minteractor

// convertGenshin はGenshin Impactキャラクターモデルを変換する。
func convertGenshin(data *ModelData, settings ConversionSettings) error {
	logConvertInfo("Genshin Impactモデルを変換します: %s", data.Info.CleanName)

	cleanMeshes(data, settings.KeepStarEyeMesh)
	if err := NormalizeJointNames(GameGenshinImpact, data.Skeleton); err != nil {
		return err
	}
	resetJointRolls(data.Skeleton)
	data.Skeleton.Remove("Root")
	reparentJoints(data.Skeleton, []jointReparent{
		{child: "+PelvisTwist CF A01", parent: "Hips"},
	})

	if settings.HumanoidArmatureFix {
		fixHumanoidJointPositions(data)
		// このゲームの接続は部分一致で相手を探す。
		attachJointPairsBySubstring(data.Skeleton, standardAttachPairs(false, settings.ConnectChestToNeck))
	}
	if settings.ConnectTwistToLimbs {
		attachTwistJoints(data.Skeleton)
	}

	if settings.GenerateShapeKeys {
		generateShapeKeys(data, genshinShapeKeyPlan())
	}
	if settings.GenerateShapeKeysMmd {
		generateShapeKeys(data, genshinMmdShapeKeyPlan())
	}

	// 瞳ウェイト転送先はPupilメッシュ優先、無ければBody。
	eyeMesh := "Body"
	if data.Meshes.ContainsName("Pupil") {
		eyeMesh = "Pupil"
	}
	duplicateJointsWithWeights(data, []jointDuplicate{
		{source: "+EyeBone L A01", duplicate: "Left Eye"},
		{source: "+EyeBone R A01", duplicate: "Right Eye"},
	}, map[string][]string{
		"Left Eye":  {"+EyeBone L A02"},
		"Right Eye": {"+EyeBone R A02"},
	}, eyeMesh)
	attachEyeJoints(data.Skeleton, "Left Eye", "Right Eye")

	mergeKey := "Mouth_A01"
	if settings.GenerateShapeKeys {
		mergeKey = "A"
	}
	mergeMeshesByDistance(data, "Face", []string{"Face_Eye", "Brow"}, mergeKey)

	moveModelToGround(data)
	if settings.MergeAllMeshes {
		mergeAllMeshes(data)
	}
	return nil
}

// convertGenshinWeapons はGenshin Impact武器モデルを変換する。
// 骨格補正は行わず、メッシュ整理とロール初期化だけを施す。
func convertGenshinWeapons(data *ModelData, settings ConversionSettings) error {
	logConvertInfo("Genshin Impact武器モデルを変換します: %s", data.Info.CleanName)

	cleanMeshes(data, settings.KeepStarEyeMesh)
	resetJointRolls(data.Skeleton)
	if settings.MergeAllMeshes {
		mergeAllMeshes(data)
	}
	return nil
}
