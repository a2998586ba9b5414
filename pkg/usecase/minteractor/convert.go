// 指示: miu200521358
package minteractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/shared/base/logging"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/usecase/port/moutput"
)

// logConvertInfo は変換処理の情報ログを出力する。
func logConvertInfo(format string, params ...any) {
	logging.DefaultLogger().Info(format, params...)
}

// logConvertWarn は変換処理の警告ログを出力する。
func logConvertWarn(format string, params ...any) {
	logging.DefaultLogger().Warn(format, params...)
}

// reportConvertProgress は変換処理の進捗を通知する。
func reportConvertProgress(reporter IConvertProgressReporter, event ConvertProgressEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportConvertProgress(event)
}

// Convert はゲームモデルを読み込み、識別結果に応じた変換を施してGLBとして保存する。
func (uc *Hoyo2VrcUsecase) Convert(request ConvertRequest) (*ConvertResult, error) {
	if strings.TrimSpace(request.InputPath) == "" {
		return nil, fmt.Errorf("入力モデルパスが未指定です")
	}
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type: ConvertProgressEventTypeInputValidated,
	})

	outputPath, err := resolveGlbOutputPath(request.InputPath, request.OutputPath)
	if err != nil {
		return nil, err
	}
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type: ConvertProgressEventTypeOutputPathResolved,
	})

	modelData, err := uc.resolveModelData(request.Reader, request.InputPath, request.ModelData)
	if err != nil {
		return nil, err
	}
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type:       ConvertProgressEventTypeModelLoaded,
		JointCount: modelData.Skeleton.Len(),
		MeshCount:  modelData.Meshes.Len(),
	})

	modelData.Info = IdentifyModel(modelData.Name)
	if !IsGameSupported(modelData.Info.Game) {
		return nil, fmt.Errorf("対応していないゲームのモデルです: %s", modelData.Info.Game)
	}
	logConvertInfo("モデルを識別しました: ゲーム=%s 名称=%s", modelData.Info.Game, modelData.Info.CleanName)
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type: ConvertProgressEventTypeGameIdentified,
		Game: modelData.Info.Game,
	})

	settings := DefaultConversionSettings()
	if request.Settings != nil {
		settings = *request.Settings
	}
	if err := convertForGame(modelData, settings); err != nil {
		return nil, err
	}
	modelData.UpdateHash()
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type:       ConvertProgressEventTypePipelineCompleted,
		Game:       modelData.Info.Game,
		JointCount: modelData.Skeleton.Len(),
		MeshCount:  modelData.Meshes.Len(),
	})

	if err := prepareOutputLayout(outputPath); err != nil {
		return nil, err
	}
	modelData.SetPath(outputPath)
	if err := uc.SaveModel(request.Writer, outputPath, modelData, request.SaveOptions); err != nil {
		return nil, err
	}
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type: ConvertProgressEventTypeModelSaved,
		Game: modelData.Info.Game,
	})
	return &ConvertResult{Model: modelData, OutputPath: outputPath, Game: modelData.Info.Game}, nil
}

// convertForGame は識別済みゲームに応じた変換パイプラインを実行する。
func convertForGame(data *ModelData, settings ConversionSettings) error {
	switch data.Info.Game {
	case GameGenshinImpact:
		return convertGenshin(data, settings)
	case GameGenshinImpactWeapon:
		return convertGenshinWeapons(data, settings)
	case GameHonkaiStarRail:
		return convertStarrail(data, settings)
	case GameHonkaiImpact3rd:
		return convertHi3(data, settings)
	case GameZenlessZoneZero:
		return convertZzz(data, settings)
	case GameWutheringWaves:
		return convertWuwa(data, settings)
	case GameNPC:
		return convertNpc(data, settings)
	default:
		return fmt.Errorf("対応していないゲームです: %s", data.Info.Game)
	}
}

// resolveGlbOutputPath はGLB保存先パスを解決し、拡張子を検証する。
func resolveGlbOutputPath(inputPath string, outputPath string) (string, error) {
	resolved := strings.TrimSpace(outputPath)
	if resolved == "" {
		resolved = BuildDefaultOutputPath(inputPath)
	}
	if strings.TrimSpace(resolved) == "" {
		return "", fmt.Errorf("保存先GLBパスが未指定です")
	}
	if !strings.EqualFold(filepath.Ext(resolved), ".glb") {
		return "", fmt.Errorf("保存先拡張子が .glb ではありません: %s", resolved)
	}
	return resolved, nil
}

// resolveModelData は変換対象モデルを解決し、構成を検証する。
func (uc *Hoyo2VrcUsecase) resolveModelData(rep moutput.IFileReader, inputPath string, modelData *ModelData) (*ModelData, error) {
	resolved := modelData
	if resolved == nil {
		loaded, err := uc.LoadModel(rep, inputPath)
		if err != nil {
			return nil, err
		}
		resolved = loaded
	}
	if resolved == nil {
		return nil, fmt.Errorf("モデル読み込み結果が空です")
	}
	if resolved.Skeleton == nil || resolved.Skeleton.Len() == 0 {
		return nil, fmt.Errorf("ジョイントが見つかりません")
	}
	if resolved.Meshes == nil {
		return nil, fmt.Errorf("メッシュ集合が見つかりません")
	}
	return resolved, nil
}
