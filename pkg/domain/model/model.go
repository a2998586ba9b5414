// 指示: miu200521358
package model

import (
	"fmt"
	"hash/fnv"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/mmath"
)

// ModelInfo はモデル識別結果を表す。
type ModelInfo struct {
	Game       string
	BodyType   string
	WeaponType string
	CleanName  string
	IsWeapon   bool
}

// ExpressionPose は表情アニメーション1クリップ分のジョイント平行移動を表す。
// Translations はジョイント名をキーとするレスト位置からの移動量を保持する。
type ExpressionPose struct {
	Name         string
	Translations map[string]mmath.Vec3
}

// Model は変換対象モデル全体を表す。
type Model struct {
	path        string
	hash        string
	fileModTime int64

	Name        string
	Info        ModelInfo
	Skeleton    *Skeleton
	Meshes      *MeshCollection
	Expressions []*ExpressionPose
	Scale       float64
	Warnings    []string
}

// NewModel は空のモデルを生成する。
func NewModel(name string) *Model {
	return &Model{
		Name:     name,
		Skeleton: NewSkeleton(),
		Meshes:   NewMeshCollection(),
		Scale:    1.0,
	}
}

// Path はモデルのファイルパスを返す。
func (m *Model) Path() string {
	return m.path
}

// SetPath はモデルのファイルパスを設定する。
func (m *Model) SetPath(path string) {
	m.path = path
}

// SetFileModTime は元ファイルの更新時刻を設定する。
func (m *Model) SetFileModTime(unixNano int64) {
	m.fileModTime = unixNano
}

// FileModTime は元ファイルの更新時刻を返す。
func (m *Model) FileModTime() int64 {
	return m.fileModTime
}

// Hash はモデルの識別ハッシュを返す。
func (m *Model) Hash() string {
	return m.hash
}

// UpdateHash はモデル構成からハッシュを再計算する。
func (m *Model) UpdateHash() {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d", m.Name, m.fileModTime)
	if m.Skeleton != nil {
		for _, joint := range m.Skeleton.Joints() {
			fmt.Fprintf(h, "|%s:%s", joint.Name, joint.ParentName)
		}
	}
	if m.Meshes != nil {
		for _, mesh := range m.Meshes.Meshes() {
			fmt.Fprintf(h, "|%s:%d", mesh.Name, len(mesh.Vertices))
		}
	}
	m.hash = fmt.Sprintf("%016x", h.Sum64())
}

// AddWarning は変換時警告IDを記録する。重複IDは追加しない。
func (m *Model) AddWarning(id string) {
	for _, existing := range m.Warnings {
		if existing == id {
			return
		}
	}
	m.Warnings = append(m.Warnings, id)
}
