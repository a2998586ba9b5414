// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_hoyo2vrc/pkg/usecase/port/moutput"

// Hoyo2VrcUsecaseDeps はモデル変換ユースケースの依存を表す。
type Hoyo2VrcUsecaseDeps struct {
	ModelReader moutput.IFileReader
	ModelWriter moutput.IFileWriter
}

// Hoyo2VrcUsecase はゲームモデルからVRChat向けモデルへの変換処理をまとめたユースケースを表す。
type Hoyo2VrcUsecase struct {
	modelReader moutput.IFileReader
	modelWriter moutput.IFileWriter
}

// NewHoyo2VrcUsecase はモデル変換ユースケースを生成する。
func NewHoyo2VrcUsecase(deps Hoyo2VrcUsecaseDeps) *Hoyo2VrcUsecase {
	return &Hoyo2VrcUsecase{
		modelReader: deps.ModelReader,
		modelWriter: deps.ModelWriter,
	}
}
