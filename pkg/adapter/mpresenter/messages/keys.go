// 指示: miu200521358
// Package messages は変換結果の表示・ログに使うメッセージ文言を提供する。
package messages

// ラベル一覧。
const (
	LabelInputPath  = "入力モデルファイルパス(.glb/.gltf)"
	LabelOutputPath = "出力GLBファイルパス"
	LabelConfigPath = "変換設定TOMLファイルパス"
	LabelNoWarnings = "警告IDの出力extras埋め込みを無効化する"
)

// エラーメッセージ一覧。
const (
	MessageInputRequired = "入力モデルファイルを指定してください (-in)"
	MessageInputExtRange = "入力拡張子が .glb/.gltf ではありません: %s"
	MessageConvertFailed = "変換に失敗しました: %w"
)

// 進捗・結果メッセージ一覧。
const (
	LogLoadStarted       = "[mu_hoyo2vrc] 読み込み開始: %s\n"
	LogLoadCompleted     = "[mu_hoyo2vrc] 読み込み完了: joints=%d meshes=%d\n"
	LogGameIdentified    = "[mu_hoyo2vrc] ゲーム識別: %s\n"
	LogPipelineCompleted = "[mu_hoyo2vrc] 変換処理完了: joints=%d meshes=%d\n"
	LogWarning           = "[mu_hoyo2vrc] 警告: %s\n"
	LogConvertSucceeded  = "[mu_hoyo2vrc] 変換完了: %s\n"
)
