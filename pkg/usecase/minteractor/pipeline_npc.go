// 指示: miu200521358
package minteractor

// npcAttachPairs はNPC向けの接続ペア(首の接続は別途行う)。
func npcAttachPairs() []jointPair {
	return []jointPair{
		{source: "Left Shoulder", target: "Left Upper Arm"},
		{source: "Right Shoulder", target: "Right Upper Arm"},
		{source: "Left Upper Arm", target: "Left Lower Arm"},
		{source: "Right Upper Arm", target: "Right Lower Arm"},
		{source: "Left Lower Arm", target: "Left Hand"},
		{source: "Right Lower Arm", target: "Right Hand"},
		{source: "Right Upper Leg", target: "Right Lower Leg"},
		{source: "Left Upper Leg", target: "Left Lower Leg"},
		{source: "Right Lower Leg", target: "Right Foot"},
		{source: "Left Lower Leg", target: "Left Foot"},
		{source: "Right Foot", target: "Right Toes"},
		{source: "Left Foot", target: "Left Toes"},
	}
}

// npcNeckAttachPair は上胸があれば上胸から、なければ胸から首へ接続する。
func npcNeckAttachPair(data *ModelData, connectChestToNeck bool) jointPair {
	if connectChestToNeck || !data.Skeleton.ContainsName("Upper Chest") {
		return jointPair{source: "Chest", target: "Neck"}
	}
	return jointPair{source: "Upper Chest", target: "Neck"}
}

// convertNpc はNPCモデルを変換する。
func convertNpc(data *ModelData, settings ConversionSettings) error {
	logConvertInfo("NPCモデルを変換します: %s", data.Info.CleanName)

	cleanMeshes(data, settings.KeepStarEyeMesh)
	scaleModel(data)
	if err := NormalizeJointNames(GameNPC, data.Skeleton); err != nil {
		return err
	}
	resetJointRolls(data.Skeleton)
	data.Skeleton.Remove("Root", "NPC_Kanban_Paimon_Model")
	reparentJoints(data.Skeleton, []jointReparent{
		{child: "+PelvisTwist CF A01", parent: "Hips"},
	})

	if settings.HumanoidArmatureFix {
		fixHumanoidJointPositions(data)
		attachJointPairs(data.Skeleton, npcAttachPairs())
		attachJointPairs(data.Skeleton, []jointPair{
			npcNeckAttachPair(data, settings.ConnectChestToNeck),
		})
	}
	if settings.ConnectTwistToLimbs {
		attachTwistJoints(data.Skeleton)
	}

	if settings.GenerateShapeKeys {
		generateShapeKeys(data, npcShapeKeyPlan())
	}

	attachEyeJoints(data.Skeleton, "Eye_R", "Eye_L")

	mergeKey := "Mouth_A01"
	if settings.GenerateShapeKeys {
		mergeKey = "A"
	}
	mergeMeshesByDistance(data, "Face", []string{"Face_Eye", "Brow"}, mergeKey)

	if settings.MergeAllMeshes {
		mergeAllMeshes(data)
	}
	moveModelToGround(data)
	scaleModel(data)
	return nil
}
