// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/usecase/port/moutput"
)

// ModelData は変換対象モデルを表す。
type ModelData = model.Model

// SaveOptions は保存時オプションを表す。
type SaveOptions = moutput.SaveOptions

// ConversionSettings は変換時の挙動を制御する設定を表す。
type ConversionSettings struct {
	// MergeAllMeshes は変換後に全メッシュを1つのBodyメッシュへ統合するかを表す。
	MergeAllMeshes bool
	// ConnectChestToNeck はUpper ChestではなくChestを首へ接続するかを表す。
	ConnectChestToNeck bool
	// ConnectTwistToLimbs は捻りジョイントを手足の接続に使うかを表す。
	ConnectTwistToLimbs bool
	// ReconnectArmature はジョイントチェーンの再接続を行うかを表す。
	ReconnectArmature bool
	// HumanoidArmatureFix はヒューマノイド骨格位置補正を行うかを表す。
	HumanoidArmatureFix bool
	// GenerateShapeKeys はリップシンク用シェイプキーを生成するかを表す。
	GenerateShapeKeys bool
	// GenerateShapeKeysMmd はMMD互換シェイプキーを生成するかを表す。
	GenerateShapeKeysMmd bool
	// KeepStarEyeMesh はEyeStarメッシュを残すかを表す。
	KeepStarEyeMesh bool
}

// DefaultConversionSettings は既定の変換設定を返す。
func DefaultConversionSettings() ConversionSettings {
	return ConversionSettings{
		ReconnectArmature:   true,
		HumanoidArmatureFix: true,
		GenerateShapeKeys:   true,
	}
}

// ConvertProgressEventType は変換処理の進捗イベント種別を表す。
type ConvertProgressEventType string

const (
	// ConvertProgressEventTypeInputValidated は入力検証完了イベントを表す。
	ConvertProgressEventTypeInputValidated ConvertProgressEventType = "input_validated"
	// ConvertProgressEventTypeOutputPathResolved は出力パス解決完了イベントを表す。
	ConvertProgressEventTypeOutputPathResolved ConvertProgressEventType = "output_path_resolved"
	// ConvertProgressEventTypeModelLoaded はモデル読み込み完了イベントを表す。
	ConvertProgressEventTypeModelLoaded ConvertProgressEventType = "model_loaded"
	// ConvertProgressEventTypeGameIdentified はゲーム識別完了イベントを表す。
	ConvertProgressEventTypeGameIdentified ConvertProgressEventType = "game_identified"
	// ConvertProgressEventTypePipelineCompleted はゲーム別変換完了イベントを表す。
	ConvertProgressEventTypePipelineCompleted ConvertProgressEventType = "pipeline_completed"
	// ConvertProgressEventTypeModelSaved はモデル保存完了イベントを表す。
	ConvertProgressEventTypeModelSaved ConvertProgressEventType = "model_saved"
)

// ConvertProgressEvent は変換処理の進捗イベントを表す。
type ConvertProgressEvent struct {
	Type       ConvertProgressEventType
	Game       string
	JointCount int
	MeshCount  int
}

// IConvertProgressReporter は変換処理の進捗通知契約を表す。
type IConvertProgressReporter interface {
	// ReportConvertProgress は変換処理進捗を通知する。
	ReportConvertProgress(event ConvertProgressEvent)
}

// ConvertRequest はモデル変換要求を表す。
type ConvertRequest struct {
	InputPath        string
	OutputPath       string
	ModelData        *ModelData
	Reader           moutput.IFileReader
	Writer           moutput.IFileWriter
	SaveOptions      SaveOptions
	Settings         *ConversionSettings
	ProgressReporter IConvertProgressReporter
}

// ConvertResult はモデル変換結果を表す。
type ConvertResult struct {
	Model      *ModelData
	OutputPath string
	Game       string
}
