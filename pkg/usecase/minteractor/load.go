// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/usecase/port/moutput"
)

// LoadModel はゲームモデルを読み込む。
func (uc *Hoyo2VrcUsecase) LoadModel(rep moutput.IFileReader, path string) (*ModelData, error) {
	repo := rep
	if repo == nil {
		repo = uc.modelReader
	}
	if repo == nil {
		return nil, fmt.Errorf("モデル読み込みリポジトリが設定されていません")
	}
	if !repo.CanLoad(path) {
		return nil, fmt.Errorf("読み込み対象外のファイルです: %s", path)
	}
	return repo.Load(path)
}
