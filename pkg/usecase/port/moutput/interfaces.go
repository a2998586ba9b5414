// 指示: miu200521358
// Package moutput はモデル入出力の契約を提供する。
package moutput

import "github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"

// SaveOptions は保存時のオプションを表す。
type SaveOptions struct {
	// IncludeWarnings は変換時警告IDを出力extrasへ埋め込むかを表す。
	IncludeWarnings bool
}

// IFileReader は入出力共通の読み込み契約を表す。
type IFileReader interface {
	// CanLoad は拡張子に応じて読み込み可否を判定する。
	CanLoad(path string) bool
	// InferName はパスから表示名を推定する。
	InferName(path string) string
	// Load はモデルを読み込む。
	Load(path string) (*model.Model, error)
}

// IFileWriter は入出力共通の書き込み契約を表す。
type IFileWriter interface {
	// Save はモデルを保存する。
	Save(path string, modelData *model.Model, opts SaveOptions) error
}
