// 指示: miu200521358
package minteractor

// zzzChainExclusions はZenless Zone Zeroの連番チェーン接続から除外する部分文字列。
func zzzChainExclusions() []string {
	return []string{
		"hair", "cloth", "accessory", "pelvis", "waist", "skirt", "spine",
		"arm", "leg", "chest", "neck", "head", "knee", "calf", "elbow",
		"skirt", "thigh", "twist",
	}
}

// convertZzz はZenless Zone Zeroキャラクターモデルを変換する。
func convertZzz(data *ModelData, settings ConversionSettings) error {
	logConvertInfo("Zenless Zone Zeroモデルを変換します: %s", data.Info.CleanName)

	cleanMeshes(data, settings.KeepStarEyeMesh)
	autoRenameMeshPrefixes(data)
	if err := NormalizeJointNames(GameZenlessZoneZero, data.Skeleton); err != nil {
		return err
	}
	resetJointRolls(data.Skeleton)

	removeNames := []string{"Root.001", "Root", "Root.002", "FX_Root", "FaceShadowPoint"}
	removeNames = append(removeNames, removeFirstJointIfNotHips(data.Skeleton)...)
	data.Skeleton.Remove(removeNames...)

	if settings.HumanoidArmatureFix {
		fixHumanoidJointPositions(data)
		// このゲームの接続は部分一致で相手を探す。
		attachJointPairsBySubstring(data.Skeleton, standardAttachPairs(true, settings.ConnectChestToNeck))
	}
	if settings.ConnectTwistToLimbs {
		attachTwistJoints(data.Skeleton)
	}
	if settings.ReconnectArmature {
		connectNumericChains(data, zzzChainExclusions())
	}

	if settings.GenerateShapeKeys {
		generateShapeKeys(data, zzzShapeKeyPlan())
	}
	if settings.GenerateShapeKeysMmd {
		generateShapeKeys(data, zzzMmdShapeKeyPlan())
	}

	// スキン用ジョイントが無いモデルは素体側ジョイントから瞳を複製する。
	duplicates := []jointDuplicate{
		{source: "Skn_L_Eye", duplicate: "Left Eye"},
		{source: "Skn_R_Eye", duplicate: "Right Eye"},
	}
	weightSources := map[string][]string{
		"Left Eye":  {"Skn_L_Eye", "Skn_L_Highlights"},
		"Right Eye": {"Skn_R_Eye", "Skn_R_Highlights"},
	}
	if !data.Skeleton.ContainsName("Skn_L_Eye") && !data.Skeleton.ContainsName("Skn_R_Eye") {
		duplicates = []jointDuplicate{
			{source: "Bdy_R_Eye", duplicate: "Right Eye"},
			{source: "Bdy_L_Eye", duplicate: "Left Eye"},
		}
		weightSources = map[string][]string{
			"Left Eye":  {"Bdy_L_Eye", "Bdy_L_Highlights"},
			"Right Eye": {"Bdy_R_Eye", "Bdy_R_Highlights"},
		}
	}
	duplicateJointsWithWeights(data, duplicates, weightSources, "Face")
	attachEyeJoints(data.Skeleton, "Left Eye", "Right Eye")

	convertVertexColorsToUv(data, "Face", 255)

	moveModelToGround(data)
	if settings.MergeAllMeshes {
		mergeAllMeshes(data)
	}
	return nil
}
