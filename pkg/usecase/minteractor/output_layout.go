// 指示: miu200521358
package minteractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const outputDirFileMode = 0o755

// defaultOutputSuffix は既定出力ファイル名に付ける接尾辞。
const defaultOutputSuffix = "_vrc"

// BuildDefaultOutputPath は入力パスから既定のGLB出力パスを生成する。
func BuildDefaultOutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	base = strings.TrimSpace(base)
	if base == "" {
		return ""
	}
	return filepath.Join(dir, base+defaultOutputSuffix+".glb")
}

// prepareOutputLayout は保存先ディレクトリを準備する。
func prepareOutputLayout(outputPath string) error {
	outputDir := filepath.Dir(outputPath)
	if outputDir == "" {
		return fmt.Errorf("保存先ディレクトリの解決に失敗しました")
	}
	if err := os.MkdirAll(outputDir, outputDirFileMode); err != nil {
		return fmt.Errorf("保存先ディレクトリの作成に失敗しました: %w", err)
	}
	return nil
}
