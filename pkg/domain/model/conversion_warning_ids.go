// 指示: miu200521358
package model

const (
	// ConversionWarningExtrasKey は変換時警告ID集合を保持する出力extrasのキー。
	ConversionWarningExtrasKey = "MU_HOYO2VRC_warnings"

	// ConversionWarningWeightsTruncated は頂点ウェイト切り捨て警告。
	ConversionWarningWeightsTruncated = "ConversionWarningWeightsTruncated"
	// ConversionWarningJointPairMissing は接続対象ジョイント不足警告。
	ConversionWarningJointPairMissing = "ConversionWarningJointPairMissing"
	// ConversionWarningPositionRuleSkipped は位置補正ルール適用スキップ警告。
	ConversionWarningPositionRuleSkipped = "ConversionWarningPositionRuleSkipped"
	// ConversionWarningChainGapDetected は連番チェーンの欠番検出警告。
	ConversionWarningChainGapDetected = "ConversionWarningChainGapDetected"
	// ConversionWarningShapeKeySourceMissing はシェイプキー合成元不足警告。
	ConversionWarningShapeKeySourceMissing = "ConversionWarningShapeKeySourceMissing"
	// ConversionWarningEyeMeshMissing は目ジョイント生成対象メッシュ不足警告。
	ConversionWarningEyeMeshMissing = "ConversionWarningEyeMeshMissing"
	// ConversionWarningScaleOutOfRange はモデル背丈の想定外スケール警告。
	ConversionWarningScaleOutOfRange = "ConversionWarningScaleOutOfRange"
)
