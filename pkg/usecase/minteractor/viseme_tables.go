// 指示: miu200521358
package minteractor

// mix はシェイプキー素材1件を組み立てる。
func mix(mesh, key string, value float64) shapeKeySource {
	return shapeKeySource{mesh: mesh, key: key, value: value}
}

// standardVisemeKeys はA/O/CHから派生する標準口形素系列を返す。
// 倍率は全ゲーム共通。
func standardVisemeKeys(mesh string) []generatedShapeKey {
	return []generatedShapeKey{
		{name: "vrc.v_aa", sources: []shapeKeySource{mix(mesh, "A", 0.9998)}},
		{name: "vrc.v_ch", sources: []shapeKeySource{mix(mesh, "CH", 0.9996)}},
		{name: "vrc.v_dd", sources: []shapeKeySource{mix(mesh, "A", 0.3), mix(mesh, "CH", 0.7)}},
		{name: "vrc.v_e", sources: []shapeKeySource{mix(mesh, "CH", 0.7), mix(mesh, "O", 0.3)}},
		{name: "vrc.v_ff", sources: []shapeKeySource{mix(mesh, "A", 0.2), mix(mesh, "CH", 0.4)}},
		{name: "vrc.v_ih", sources: []shapeKeySource{mix(mesh, "A", 0.5), mix(mesh, "CH", 0.2)}},
		{name: "vrc.v_kk", sources: []shapeKeySource{mix(mesh, "A", 0.7), mix(mesh, "CH", 0.4)}},
		{name: "vrc.v_nn", sources: []shapeKeySource{mix(mesh, "A", 0.2), mix(mesh, "CH", 0.7)}},
		{name: "vrc.v_oh", sources: []shapeKeySource{mix(mesh, "A", 0.2), mix(mesh, "O", 0.8)}},
		{name: "vrc.v_ou", sources: []shapeKeySource{mix(mesh, "O", 0.9994)}},
		{name: "vrc.v_pp", sources: []shapeKeySource{mix(mesh, "A", 0.0004), mix(mesh, "O", 0.0004)}},
		{name: "vrc.v_rr", sources: []shapeKeySource{mix(mesh, "CH", 0.5), mix(mesh, "O", 0.3)}},
		{name: "vrc.v_sil", sources: []shapeKeySource{mix(mesh, "A", 0.0002), mix(mesh, "CH", 0.0002)}},
		{name: "vrc.v_ss", sources: []shapeKeySource{mix(mesh, "CH", 0.8)}},
		{name: "vrc.v_th", sources: []shapeKeySource{mix(mesh, "A", 0.4), mix(mesh, "O", 0.15)}},
	}
}

// genshinShapeKeyPlan はGenshin Impact向けの口形素・瞬き生成計画を返す。
func genshinShapeKeyPlan() shapeKeyPlan {
	generated := []generatedShapeKey{
		{name: "A", sources: []shapeKeySource{mix("Face", "Mouth_A01", 1.0)}},
		{name: "O", sources: []shapeKeySource{mix("Face", "Mouth_Line02", 1), mix("Face", "Mouth_A01", 0.5)}},
		{name: "CH", sources: []shapeKeySource{mix("Face", "Mouth_Open01", 1.0)}},
	}
	generated = append(generated, standardVisemeKeys("Face")...)
	generated = append(generated,
		generatedShapeKey{name: "Blink", sources: []shapeKeySource{
			mix("Face_Eye", "Eye_WinkB_L", 1.0), mix("Face_Eye", "Eye_WinkB_R", 1.0),
		}},
		generatedShapeKey{name: "Happy Blink", sources: []shapeKeySource{
			mix("Face_Eye", "Eye_WinkA_L", 1.0), mix("Face_Eye", "Eye_WinkA_R", 1.0),
		}},
		generatedShapeKey{name: "Pensive Blink", sources: []shapeKeySource{
			mix("Face_Eye", "Eye_WinkC_L", 1.0), mix("Face_Eye", "Eye_WinkC_R", 1.0),
		}},
	)
	return shapeKeyPlan{
		required: []requiredShapeKeys{
			{mesh: "Face", keys: []string{"Mouth_A01", "Mouth_Fury01", "Mouth_Open01"}},
			{mesh: "Face_Eye", keys: []string{"Eye_WinkA_L", "Eye_WinkA_R", "Eye_WinkB_L", "Eye_WinkB_R", "Eye_WinkC_L", "Eye_WinkC_R"}},
		},
		fallbacks: []shapeKeyFallback{
			{missingKey: "Mouth_Fury01", fallbackKey: "Mouth_Open01", value: 0.5},
		},
		generated: generated,
	}
}

// genshinMmdShapeKeyPlan はGenshin Impact向けのMMD表情生成計画を返す。
func genshinMmdShapeKeyPlan() shapeKeyPlan {
	return shapeKeyPlan{
		required: []requiredShapeKeys{
			{mesh: "Face", keys: []string{"Mouth_A01", "Mouth_Fury01", "Mouth_Open01"}},
			{mesh: "Face_Eye", keys: []string{"Eye_WinkA_L", "Eye_WinkA_R", "Eye_WinkB_L", "Eye_WinkB_R", "Eye_WinkC_L", "Eye_WinkC_R"}},
		},
		fallbacks: []shapeKeyFallback{
			{missingKey: "Mouth_Fury01", fallbackKey: "Mouth_Open01", value: 0.5},
		},
		generated: []generatedShapeKey{
			{name: "真面目", sources: []shapeKeySource{mix("Face", "Brow_Angry_L", 0.5), mix("Face", "Brow_Angry_R", 0.5)}},
			{name: "困る", sources: []shapeKeySource{mix("Face", "Brow_Trouble_L", 1), mix("Face", "Brow_Trouble_R", 1)}},
			{name: "にこり", sources: []shapeKeySource{mix("Face", "Brow_Smily_L", 1.0), mix("Face", "Brow_Smily_R", 1.0)}},
			{name: "怒り", sources: []shapeKeySource{mix("Face", "Brow_Angry_L", 1), mix("Face", "Brow_Angry_R", 1)}},
			{name: "上", sources: []shapeKeySource{mix("Face", "Brow_Up_L", 1), mix("Face", "Brow_Up_R", 1)}},
			{name: "下", sources: []shapeKeySource{mix("Face", "Brow_Down_L", 1), mix("Face", "Brow_Down_R", 1)}},
			{name: "まばたき", sources: []shapeKeySource{mix("Face_Eye", "Eye_WinkB_L", 1.0), mix("Face_Eye", "Eye_WinkB_R", 1.0)}},
			{name: "ウィンク２", sources: []shapeKeySource{mix("Face_Eye", "Eye_WinkB_L", 1.0)}},
			{name: "ｳｨﾝｸ２右", sources: []shapeKeySource{mix("Face_Eye", "Eye_WinkB_R", 1.0)}},
			{name: "笑い", sources: []shapeKeySource{mix("Face_Eye", "Eye_WinkA_L", 1.0), mix("Face_Eye", "Eye_WinkA_R", 1.0)}},
			{name: "ウィンク", sources: []shapeKeySource{mix("Face_Eye", "Eye_WinkA_L", 1.0)}},
			{name: "ウィンク右", sources: []shapeKeySource{mix("Face_Eye", "Eye_WinkA_R", 1.0)}},
			{name: "なごみ", sources: []shapeKeySource{mix("Face_Eye", "Eye_WinkC_L", 1.0), mix("Face_Eye", "Eye_WinkC_R", 1.0)}},
			{name: "びっくり", sources: []shapeKeySource{mix("Face_Eye", "Eye_Ha", 1.0)}},
			{name: "じと目", sources: []shapeKeySource{mix("Face_Eye", "Eye_Jito", 1.0)}},
			{name: "細目", sources: []shapeKeySource{mix("Face_Eye", "Eye_Lowereyelid", 1.0)}},
			{name: "あ", sources: []shapeKeySource{mix("Face", "Mouth_A01", 1.0)}},
			{name: "い", sources: []shapeKeySource{mix("Face_Eye", "Mouth_Angry02", 0.5)}},
			{name: "う", sources: []shapeKeySource{mix("Face_Eye", "Mouth_Line02", 1.0), mix("Face_Eye", "Mouth_Open01", 1.0)}},
			{name: "え", sources: []shapeKeySource{mix("Face_Eye", "Mouth_A01", 0.5)}},
			{name: "お", sources: []shapeKeySource{mix("Face", "Mouth_Line02", 1), mix("Face", "Mouth_A01", 0.5)}},
			{name: "▲", sources: []shapeKeySource{mix("Face_Eye", "Mouth_Line02", 1.0), mix("Face_Eye", "Mouth_Open01", 0.25)}},
			{name: "∧", sources: []shapeKeySource{mix("Face_Eye", "Mouth_Line02", 1.0)}},
			{name: "ω", sources: []shapeKeySource{mix("Face_Eye", "Mouth_Neko01", 1.0)}},
			{name: "にやり", sources: []shapeKeySource{mix("Face_Eye", "Mouth_Smile01", 1.0)}},
			{name: "はんっ！", sources: []shapeKeySource{mix("Face_Eye", " ", 1.0)}},
			{name: "ぎゃーす", sources: []shapeKeySource{mix("Face_Eye", "Mouth_Angry01", 1.0)}},
			{name: "がーん", sources: []shapeKeySource{mix("Face_Eye", " ", 1.0)}},
			{name: "ギギギ", sources: []shapeKeySource{mix("Face_Eye", "Mouth_Angry02", 1.0)}},
			{name: "ぺろっ", sources: []shapeKeySource{mix("Face_Eye", "Mouth_Pero02", 1.0)}},
		},
	}
}

// starrailShapeKeyPlan はHonkai Star Rail向けの口形素・瞬き生成計画を返す。
func starrailShapeKeyPlan() shapeKeyPlan {
	generated := []generatedShapeKey{
		{name: "A", sources: []shapeKeySource{mix("Face", "Mouth_00_A", 1.0)}},
		{name: "O", sources: []shapeKeySource{mix("Face", "Mouth_00_O", 1)}},
		{name: "CH", sources: []shapeKeySource{mix("Face", "Mouth_00_Delta02", 1.0)}},
	}
	generated = append(generated, standardVisemeKeys("Face")...)
	generated = append(generated,
		generatedShapeKey{name: "Blink", sources: []shapeKeySource{mix("Face_Eye", "00_Close01_Eye", 1.0)}},
		generatedShapeKey{name: "Happy Blink", sources: []shapeKeySource{mix("Face_Eye", "00_Close02_Eye", 1.0)}},
		generatedShapeKey{name: "Pensive Blink", sources: []shapeKeySource{mix("Face_Eye", "00_Close03_Eye", 1.0)}},
	)
	return shapeKeyPlan{
		required: []requiredShapeKeys{
			{mesh: "Face", keys: []string{"Mouth_00_A", "Mouth_00_O", "Mouth_00_Delta02"}},
		},
		fallbacks: starrailShapeKeyFallbacks(),
		generated: generated,
	}
}

// starrailShapeKeyFallbacks はHSRの必須キー代替一覧を返す。
func starrailShapeKeyFallbacks() []shapeKeyFallback {
	return []shapeKeyFallback{
		{missingKey: "Mouth_00_A", fallbackKey: "Mouth_01_A", value: 0.5},
		{missingKey: "Mouth_00_O", fallbackKey: "Mouth_01_O", value: 0.5},
		{missingKey: "Mouth_00_Delta02", fallbackKey: "Mouth_01_Delta02", value: 0.5},
	}
}

// starrailMmdShapeKeyPlan はHonkai Star Rail向けのMMD表情生成計画を返す。
func starrailMmdShapeKeyPlan() shapeKeyPlan {
	return shapeKeyPlan{
		required: []requiredShapeKeys{
			{mesh: "Face", keys: []string{"Mouth_00_A", "Mouth_00_O", "Mouth_00_Delta02"}},
		},
		fallbacks: starrailShapeKeyFallbacks(),
		generated: []generatedShapeKey{
			{name: "真面目", sources: []shapeKeySource{mix("Face", "Brow_00_Angry", 0.5)}},
			{name: "困る", sources: []shapeKeySource{mix("Face", "Brow_00_Trouble", 1)}},
			{name: "にこり", sources: []shapeKeySource{mix("Face", "Brow_00_Gentle", 1.0)}},
			{name: "怒り", sources: []shapeKeySource{mix("Face", "Brow_00_Angry", 1)}},
			{name: "上", sources: []shapeKeySource{mix("Face", "Brow_00_Up", 1)}},
			{name: "下", sources: []shapeKeySource{mix("Face", "Brow_00_Down", 1)}},
			{name: "まばたき", sources: []shapeKeySource{mix("Face", "00_Close01_Eye", 1.0)}},
			{name: "ウィンク２", sources: []shapeKeySource{mix("Face", " ", 1.0)}},
			{name: "ｳｨﾝｸ２右", sources: []shapeKeySource{mix("Face", " ", 1.0)}},
			{name: "笑い", sources: []shapeKeySource{mix("Face", "00_Close02_Eye", 1.0)}},
			{name: "ウィンク", sources: []shapeKeySource{mix("Face", " ", 1.0)}},
			{name: "ウィンク右", sources: []shapeKeySource{mix("Face", " ", 1.0)}},
			{name: "なごみ", sources: []shapeKeySource{mix("Face", "00_Close01_Eye", 1.0), mix("Face", "00_Close01_Eye", 1.0)}},
			{name: "びっくり", sources: []shapeKeySource{mix("Face", "Eye_00_Surprise01", 1.0)}},
			{name: "じと目", sources: []shapeKeySource{mix("Face", "Eye_00_Doubt01", 1.0)}},
			{name: "細目", sources: []shapeKeySource{mix("Face", " ", 1.0)}},
			{name: "あ", sources: []shapeKeySource{mix("Face", "Mouth_00_A", 1.0)}},
			{name: "い", sources: []shapeKeySource{mix("Face", "Mouth_00_I", 0.5)}},
			{name: "う", sources: []shapeKeySource{mix("Face", "Mouth_00_U", 1.0)}},
			{name: "え", sources: []shapeKeySource{mix("Face", "Mouth_00_E", 0.5)}},
			{name: "お", sources: []shapeKeySource{mix("Face", "Mouth_00_O", 1)}},
			{name: "▲", sources: []shapeKeySource{mix("Face", "Mouth_00_Narrow", 1.0), mix("Face", "Mouth_00_O", 0.5)}},
			{name: "∧", sources: []shapeKeySource{mix("Face", "Mouth_00_Narrow", 1.0)}},
			{name: "ω", sources: []shapeKeySource{mix("Face", "Mouth_01_Angry01", -1.0)}},
			{name: "にやり", sources: []shapeKeySource{mix("Face", "Mouth_00_Smile01", 1.0)}},
			{name: "はんっ！", sources: []shapeKeySource{mix("Face", " ", 1.0)}},
			{name: "ぎゃーす", sources: []shapeKeySource{mix("Face", " ", 1.0)}},
			{name: "がーん", sources: []shapeKeySource{mix("Face", " ", 1.0)}},
			{name: "ギギギ", sources: []shapeKeySource{mix("Face", " ", 1.0)}},
			{name: "ぺろっ", sources: []shapeKeySource{mix("Face", " ", 1.0)}},
		},
	}
}

// hi3ShapeKeyPlan はHonkai Impact 3rd向けの口形素・瞬き生成計画を返す。
func hi3ShapeKeyPlan() shapeKeyPlan {
	generated := []generatedShapeKey{
		{name: "A", sources: []shapeKeySource{mix("Face", "Mouth_A01", 1.0)}},
		{name: "O", sources: []shapeKeySource{mix("Face", "Mouth_O01", 1.0)}},
		{name: "CH", sources: []shapeKeySource{mix("Face", "Mouth_Angry02", 1.0)}},
	}
	generated = append(generated, standardVisemeKeys("Face")...)
	generated = append(generated,
		generatedShapeKey{name: "Blink", sources: []shapeKeySource{
			mix("EyeShape", "Eye_Wink02_L", 1.0), mix("EyeShape", "Eye_Wink02_R", 1.0),
		}},
		generatedShapeKey{name: "Happy Blink", sources: []shapeKeySource{
			mix("EyeShape", "Eye_Wink01_L", 1.0), mix("EyeShape", "Eye_Wink01_R", 1.0),
		}},
	)
	return shapeKeyPlan{
		required: []requiredShapeKeys{
			{mesh: "Face", keys: []string{"Mouth_A01", "Mouth_O01", "Mouth_Angry02"}},
			{mesh: "EyeShape", keys: []string{"Eye_Wink02_L", "Eye_Wink02_R", "Eye_Wink01_L", "Eye_Wink01_R"}},
		},
		fallbacks: []shapeKeyFallback{
			{missingKey: "Mouth_Angry02", fallbackKey: "Mouth_N01", value: 1},
		},
		generated: generated,
	}
}

// hi3MmdShapeKeyPlan はHonkai Impact 3rd向けのMMD表情生成計画を返す。
func hi3MmdShapeKeyPlan() shapeKeyPlan {
	return shapeKeyPlan{
		required: []requiredShapeKeys{
			{mesh: "Face", keys: []string{"Mouth_00_A", "Mouth_00_O", "Mouth_00_Delta02"}},
		},
		fallbacks: starrailShapeKeyFallbacks(),
		generated: []generatedShapeKey{
			{name: "真面目", sources: []shapeKeySource{mix("Face", "Eyebrow_Serious", 1.0)}},
			{name: "困る", sources: []shapeKeySource{mix("Face", "Eyebrow_Trouble", 1)}},
			{name: "にこり", sources: []shapeKeySource{mix("Face", "Eyebrow_Smily", 1.0)}},
			{name: "怒り", sources: []shapeKeySource{mix("Face", "Eyebrow_Angry", 1)}},
			{name: "上", sources: []shapeKeySource{mix("Face", "Eyebrow_Up", 1)}},
			{name: "下", sources: []shapeKeySource{mix("Face", "Eyebrow_Down", 1)}},
			{name: "まばたき", sources: []shapeKeySource{mix("Face", "Eye_Wink02_L", 1.0), mix("Face", "Eye_Wink02_R", 1.0)}},
			{name: "ウィンク２", sources: []shapeKeySource{mix("Face", "Eye_Wink02_L", 1.0)}},
			{name: "ｳｨﾝｸ２右", sources: []shapeKeySource{mix("Face", "Eye_Wink02_R", 1.0)}},
			{name: "笑い", sources: []shapeKeySource{mix("Face", "Eye_Wink01_L", 1.0), mix("Face", "Eye_Wink01_R", 1.0)}},
			{name: "ウィンク", sources: []shapeKeySource{mix("Face", "Eye_Wink01_L", 1.0)}},
			{name: "ウィンク右", sources: []shapeKeySource{mix("Face", "Eye_Wink01_R", 1.0)}},
			{name: "なごみ", sources: []shapeKeySource{mix("Face", "Eye_Contempt", 1.0)}},
			{name: "びっくり", sources: []shapeKeySource{mix("Face", "Eye_Surprised03", 1.0)}},
			{name: "じと目", sources: []shapeKeySource{mix("Face", "Eye_Hostitlity", 1.0)}},
			{name: "細目", sources: []shapeKeySource{mix("Face", "Eye_Half01", 1.0)}},
			{name: "あ", sources: []shapeKeySource{mix("Face", "Mouth_A01", 1.0)}},
			{name: "い", sources: []shapeKeySource{mix("Face", "Mouth_I01", 0.5)}},
			{name: "う", sources: []shapeKeySource{mix("Face", "Mouth_U01", 1.0)}},
			{name: "え", sources: []shapeKeySource{mix("Face", "Mouth_E01", 0.5)}},
			{name: "お", sources: []shapeKeySource{mix("Face", "Mouth_O01", 1)}},
			{name: "▲", sources: []shapeKeySource{mix("Face", "Mouth_N01", 1.0), mix("Face", "Mouth_Line02", 0.5)}},
			{name: "∧", sources: []shapeKeySource{mix("Face", "Mouth_Line02", 1.0)}},
			{name: "ω", sources: []shapeKeySource{mix("Face", "Mouth_Line02", 0.5), mix("Face", "Mouth_Smile01", 1.0)}},
			{name: "にやり", sources: []shapeKeySource{mix("Face", "Mouth_Smile01", 1.0)}},
		},
	}
}

// zzzShapeKeyPlan はZenless Zone Zero向けの口形素・瞬き生成計画を返す。
func zzzShapeKeyPlan() shapeKeyPlan {
	generated := []generatedShapeKey{
		{name: "A", sources: []shapeKeySource{mix("Face", "Fac_Mth_AaTalk", 1.0)}},
		{name: "O", sources: []shapeKeySource{mix("Face", "Fac_Mth_Oo", 1)}},
		{name: "CH", sources: []shapeKeySource{mix("Face", "Fac_Mth_Oo", 0.5), mix("Face", "Fac_Mth_BPM", 0.5)}},
	}
	generated = append(generated, standardVisemeKeys("Face")...)
	generated = append(generated,
		generatedShapeKey{name: "Blink", sources: []shapeKeySource{mix("Face", "Fac_Eye_Close", 1.0)}},
		generatedShapeKey{name: "Happy Blink", sources: []shapeKeySource{
			mix("Face", "Fac_Eye_L_Wink", 1.0), mix("Face", "Fac_Eye_R_Wink", 1.0),
		}},
	)
	return shapeKeyPlan{
		required: []requiredShapeKeys{
			{mesh: "Face", keys: []string{"Fac_Mth_AaTalk", "Fac_Mth_BPM", "Fac_Mth_Oo", "Fac_Eye_Close", "Fac_Eye_R_Wink", "Fac_Eye_L_Wink"}},
		},
		fallbacks: []shapeKeyFallback{
			{missingKey: "Fac_Mth_BPM", fallbackKey: "Fac_Mth_Ee", value: 1},
		},
		generated: generated,
	}
}

// zzzMmdShapeKeyPlan はZenless Zone Zero向けのMMD表情生成計画を返す。
// 旧名・中国語名のキーを持つモデルが混在するため代替一覧が長い。
func zzzMmdShapeKeyPlan() shapeKeyPlan {
	return shapeKeyPlan{
		required: []requiredShapeKeys{
			{mesh: "Face", keys: []string{"Fac_Mth_AaTalk", "Mouth_Oo1", "Mouth_00_Delta02"}},
		},
		fallbacks: []shapeKeyFallback{
			{missingKey: "Fac_Eye_HalfClose", fallbackKey: "Fac_Eye_Close", value: 0.5},
			{missingKey: "Fac_Eye_HalfClose", fallbackKey: "Eye_Close", value: 0.5},
			{missingKey: "Fac_Mth_R_Down", fallbackKey: "Fac_Mth_Down_R", value: 1.0},
			{missingKey: "Fac_Mth_L_Down", fallbackKey: "Fac_Mth_Down_L", value: 1.0},
			{missingKey: "Fac_Eye_R_Wink", fallbackKey: "Fac_Eye_Wink_R", value: 1.0},
			{missingKey: "Fac_Eye_R_Wink", fallbackKey: "Eye_Wink_R", value: 1.0},
			{missingKey: "Fac_Eye_L_Wink", fallbackKey: "Fac_Eye_Wink_L", value: 1.0},
			{missingKey: "Fac_Eye_Wink_L", fallbackKey: "Eye_Wink_L", value: 1.0},
			{missingKey: "Fac_Eye_L_Open", fallbackKey: "Fac_Eye_Open_L", value: 1.0},
			{missingKey: "Fac_Eye_L_Open", fallbackKey: "Eye_Open_L", value: 1.0},
			{missingKey: "Fac_Eye_R_Open", fallbackKey: "Fac_Eye_Open_R", value: 1.0},
			{missingKey: "Fac_Eye_R_Open", fallbackKey: "Eye_Open_R", value: 1.0},
			{missingKey: "Fac_Ebr_Sad", fallbackKey: "Eyebrow_困扰", value: 1.0},
			{missingKey: "Fac_Ebr_Relax", fallbackKey: "Eyebrow_Relax", value: 1.0},
			{missingKey: "Fac_Ebr_Angry", fallbackKey: "Eyebrow_Angry", value: 1.0},
			{missingKey: "Fac_Ebr_Up", fallbackKey: "Eyebrow_↓", value: -1.0},
			{missingKey: "Fac_Ebr_Down", fallbackKey: "Eyebrow_↓", value: 1.0},
			{missingKey: "Fac_Mth_Triangle", fallbackKey: "Mouth_△", value: 1.0},
			{missingKey: "Fac_Mth_AaTalk", fallbackKey: "Mouth_Talk_B", value: 1.0},
			{missingKey: "Fac_Mth_Ii", fallbackKey: "Mouth_Ii1", value: 1.0},
			{missingKey: "Fac_Mth_Uu", fallbackKey: "Mouth_U2", value: 1.0},
			{missingKey: "Fac_Mth_Ee", fallbackKey: "Mouth_E", value: 1.0},
			{missingKey: "Fac_Mth_UuOo", fallbackKey: "Mouth_Oo1", value: 1.0},
			{missingKey: "Fac_Mth_L_Down", fallbackKey: "Mouth_oo↘", value: 1.0},
			{missingKey: "Fac_Mth_R_Down", fallbackKey: "Mouth_↙oo", value: 1.0},
			{missingKey: "Fac_Mth_R_In", fallbackKey: "Mouth_→oo", value: 1.0},
			{missingKey: "Fac_Mth_L_In", fallbackKey: "Mouth_oo←", value: 1.0},
			{missingKey: "Fac_Mth_L_Up", fallbackKey: "Mouth_oo↗", value: 1.0},
			{missingKey: "Fac_Mth_R_Up", fallbackKey: "Mouth_↖oo", value: 1.0},
		},
		generated: []generatedShapeKey{
			{name: "真面目", sources: []shapeKeySource{mix("Face", "Fac_Ebr_Angry", 0.5)}},
			{name: "困る", sources: []shapeKeySource{mix("Face", "Fac_Ebr_Sad", 1)}},
			{name: "にこり", sources: []shapeKeySource{mix("Face", "Fac_Ebr_Relax", 1.0)}},
			{name: "怒り", sources: []shapeKeySource{mix("Face", "Fac_Ebr_Angry", 1)}},
			{name: "上", sources: []shapeKeySource{mix("Face", "Fac_Ebr_Up", 1)}},
			{name: "下", sources: []shapeKeySource{mix("Face", "Fac_Ebr_Down", 1)}},
			{name: "まばたき", sources: []shapeKeySource{mix("Face", "Fac_Eye_Close", 1.0)}},
			{name: "ウィンク２", sources: []shapeKeySource{mix("Face", " ", 1.0)}},
			{name: "ｳｨﾝｸ２右", sources: []shapeKeySource{mix("Face", " ", 1.0)}},
			{name: "笑い", sources: []shapeKeySource{mix("Face", "Fac_Eye_L_Wink", 1.0), mix("Face", "Fac_Eye_R_Wink", 1.0)}},
			{name: "ウィンク", sources: []shapeKeySource{mix("Face", "Fac_Eye_L_Wink", 1.0)}},
			{name: "ウィンク右", sources: []shapeKeySource{mix("Face", "Fac_Eye_R_Wink", 1.0)}},
			{name: "なごみ", sources: []shapeKeySource{mix("Face", "Fac_Eye_Close", 1.0)}},
			{name: "びっくり", sources: []shapeKeySource{mix("Face", "Fac_Eye_R_Open", 1.0), mix("Face", "Fac_Eye_L_Open", 1.0)}},
			{name: "じと目", sources: []shapeKeySource{mix("Face", "Fac_Eye_HalfClose", 1.0)}},
			{name: "細目", sources: []shapeKeySource{mix("Face", "Fac_Eye_HalfClose", 0.5)}},
			{name: "あ", sources: []shapeKeySource{mix("Face", "Fac_Mth_AaTalk", 1.0)}},
			{name: "い", sources: []shapeKeySource{mix("Face", "Fac_Mth_Ii", 0.5)}},
			{name: "う", sources: []shapeKeySource{mix("Face", "Fac_Mth_Uu", 1.0)}},
			{name: "え", sources: []shapeKeySource{mix("Face", "Fac_Mth_Ee", 0.5)}},
			{name: "お", sources: []shapeKeySource{mix("Face", "Fac_Mth_UuOo", 1)}},
			{name: "▲", sources: []shapeKeySource{mix("Face", "Fac_Mth_Triangle", 1.0)}},
			{name: "∧", sources: []shapeKeySource{
				mix("Face", "Fac_Mth_L_Down", 0.5), mix("Face", "Fac_Mth_R_Down", 0.5),
				mix("Face", "Fac_Mth_R_In", 1.0), mix("Face", "Fac_Mth_L_In", 1.0),
			}},
			{name: "ω", sources: []shapeKeySource{mix("Face", "Fac_Mth_L_Up", 1.0), mix("Face", "Fac_Mth_R_Up", 1.0)}},
			{name: "にやり", sources: []shapeKeySource{mix("Face", "Fac_Mth_L_Up", 1.0), mix("Face", "Fac_Mth_R_Up", 1.0)}},
		},
	}
}

// wuwaShapeKeyPlan はWuthering Waves向けの口形素・瞬き生成計画を返す。
// 変換後は全メッシュがBodyへ集約されているためBodyを対象にする。
func wuwaShapeKeyPlan() shapeKeyPlan {
	generated := []generatedShapeKey{
		{name: "CH", sources: []shapeKeySource{
			mix("Body", "E", 0.3), mix("Body", "I", 1), mix("Body", "U", 0.05),
		}},
	}
	generated = append(generated, standardVisemeKeys("Body")...)
	generated = append(generated,
		generatedShapeKey{name: "Blink", sources: []shapeKeySource{mix("Body", "E_Close", 1.0)}},
	)
	return shapeKeyPlan{
		required: []requiredShapeKeys{
			{mesh: "Body", keys: []string{"A", "O", "I", "E", "U", "E_Close"}},
		},
		fallbacks: []shapeKeyFallback{
			{missingKey: "A", fallbackKey: "Aa", value: 0.75},
		},
		generated: generated,
	}
}

// wuwaMmdShapeKeyPlan はWuthering Waves向けのMMD表情生成計画を返す。
func wuwaMmdShapeKeyPlan() shapeKeyPlan {
	return shapeKeyPlan{
		required: []requiredShapeKeys{
			{mesh: "Face", keys: []string{"Fac_Mth_AaTalk", "Mouth_Oo1", "Mouth_00_Delta02"}},
		},
		fallbacks: []shapeKeyFallback{
			{missingKey: "Fac_Eye_HalfClose", fallbackKey: "Fac_Eye_Close", value: 0.5},
			{missingKey: "Fac_Eye_HalfClose", fallbackKey: "Eye_Close", value: 0.5},
			{missingKey: "Fac_Mth_R_Down", fallbackKey: "Fac_Mth_Down_R", value: 1.0},
		},
		generated: []generatedShapeKey{
			{name: "真面目", sources: []shapeKeySource{mix("Face", "B_Anger", 0.5)}},
			{name: "困る", sources: []shapeKeySource{mix("Face", "B_Sad", 1)}},
			{name: "にこり", sources: []shapeKeySource{mix("Face", "B_Happy", 1.0)}},
			{name: "怒り", sources: []shapeKeySource{mix("Face", "B_Anger", 1)}},
			{name: "上", sources: []shapeKeySource{mix("Face", "B_Up_Add", 1)}},
			{name: "下", sources: []shapeKeySource{mix("Face", "B_Down_Add", 1)}},
			{name: "まばたき", sources: []shapeKeySource{mix("Face", "E_Close", 1.0)}},
			{name: "ウィンク２", sources: []shapeKeySource{mix("Face", " ", 1.0)}},
			{name: "ｳｨﾝｸ２右", sources: []shapeKeySource{mix("Face", " ", 1.0)}},
			{name: "笑い", sources: []shapeKeySource{mix("Face", "E_Smile_R", 1.0), mix("Face", "E_Smile_L", 1.0)}},
			{name: "ウィンク", sources: []shapeKeySource{mix("Face", "E_Smile_L", 1.0)}},
			{name: "ウィンク右", sources: []shapeKeySource{mix("Face", "E_Smile_R", 1.0)}},
			{name: "なごみ", sources: []shapeKeySource{mix("Face", "E_Insipid", 1.0)}},
			{name: "びっくり", sources: []shapeKeySource{mix("Face", "E_Stare", 1.0)}},
			{name: "じと目", sources: []shapeKeySource{mix("Face", "E_Insipid", 1.0)}},
			{name: "細目", sources: []shapeKeySource{mix("Face", "E_Close", 0.5)}},
			{name: "あ", sources: []shapeKeySource{mix("Face", "Aa", 1.0)}},
			{name: "い", sources: []shapeKeySource{mix("Face", "I", 0.5)}},
			{name: "う", sources: []shapeKeySource{mix("Face", "U", 1.0)}},
			{name: "え", sources: []shapeKeySource{mix("Face", "E", 0.5)}},
			{name: "お", sources: []shapeKeySource{mix("Face", "O", 1)}},
			{name: "▲", sources: []shapeKeySource{mix("Face", "M_OpenSmall", 1.0)}},
			{name: "∧", sources: []shapeKeySource{mix("Face", "M_Nutcracker", 1.0)}},
			{name: "ω", sources: []shapeKeySource{mix("Face", "M_Smile_R", 1.0), mix("Face", "M_Smile_L", 1.0)}},
			{name: "にやり", sources: []shapeKeySource{mix("Face", "M_Smile_R", 1.0), mix("Face", "M_Smile_L", 1.0)}},
		},
	}
}

// npcShapeKeyPlan はNPC向けの口形素・瞬き生成計画を返す。
// AはGenshinと共通だがO/CHの合成が異なる。
func npcShapeKeyPlan() shapeKeyPlan {
	generated := []generatedShapeKey{
		{name: "A", sources: []shapeKeySource{mix("Face", "Mouth_A01", 1.0)}},
		{name: "O", sources: []shapeKeySource{mix("Face", "Mouth_Smile02", 0.5), mix("Face", "Mouth_A01", 0.5)}},
		{name: "CH", sources: []shapeKeySource{mix("Face", "Mouth_Open01", 1.0), mix("Face", "Mouth_A01", 0.115)}},
	}
	generated = append(generated, standardVisemeKeys("Face")...)
	generated = append(generated,
		generatedShapeKey{name: "Blink", sources: []shapeKeySource{
			mix("Face_Eye", "Eye_WinkB_L", 1.0), mix("Face_Eye", "Eye_WinkB_R", 1.0),
		}},
		generatedShapeKey{name: "Happy Blink", sources: []shapeKeySource{
			mix("Face_Eye", "Eye_WinkA_L", 1.0), mix("Face_Eye", "Eye_WinkA_R", 1.0),
		}},
		generatedShapeKey{name: "Pensive Blink", sources: []shapeKeySource{
			mix("Face_Eye", "Eye_WinkC_L", 1.0), mix("Face_Eye", "Eye_WinkC_R", 1.0),
		}},
	)
	return shapeKeyPlan{
		required: []requiredShapeKeys{
			{mesh: "Face", keys: []string{"Mouth_A01", "Mouth_Fury01", "Mouth_Open01"}},
			{mesh: "Face_Eye", keys: []string{"Eye_WinkA_L", "Eye_WinkA_R", "Eye_WinkB_L", "Eye_WinkB_R", "Eye_WinkC_L", "Eye_WinkC_R"}},
		},
		fallbacks: []shapeKeyFallback{
			{missingKey: "Mouth_Fury01", fallbackKey: "Mouth_Open01", value: 0.5},
		},
		generated: generated,
	}
}
