// 指示: miu200521358
package model

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/mmath"
)

// Vertex はメッシュの1頂点を表す。
// UV2 は頂点カラー由来のデータなど第2UVチャンネルを保持する。
type Vertex struct {
	Position mmath.Vec3
	UV       [2]float64
	UV2      [2]float64
	Color    [4]float64
	// Weights はジョイント名をキーとするウェイトグループ値を保持する。
	Weights map[string]float64
}

// WeightFor は指定グループのウェイトを返す。
func (v *Vertex) WeightFor(group string) float64 {
	if v.Weights == nil {
		return 0
	}
	return v.Weights[group]
}

// SetWeight は指定グループのウェイトを設定する。
func (v *Vertex) SetWeight(group string, value float64) {
	if v.Weights == nil {
		v.Weights = map[string]float64{}
	}
	v.Weights[group] = value
}

// ShapeKey はメッシュのシェイプキーを表す。
// Offsets は基準形状からの頂点ごとの差分を保持する。
type ShapeKey struct {
	Name    string
	Offsets []mmath.Vec3
}

// Mesh は1メッシュを表す。
type Mesh struct {
	Name         string
	MaterialName string
	Vertices     []*Vertex
	ShapeKeys    []*ShapeKey
}

// ShapeKeyByName は名前一致のシェイプキーを返す。
func (m *Mesh) ShapeKeyByName(name string) (*ShapeKey, bool) {
	for _, key := range m.ShapeKeys {
		if key.Name == name {
			return key, true
		}
	}
	return nil, false
}

// RemoveShapeKeys は指定名のシェイプキーを除去する。
func (m *Mesh) RemoveShapeKeys(names ...string) {
	removeSet := map[string]struct{}{}
	for _, name := range names {
		removeSet[name] = struct{}{}
	}
	kept := make([]*ShapeKey, 0, len(m.ShapeKeys))
	for _, key := range m.ShapeKeys {
		if _, hit := removeSet[key.Name]; hit {
			continue
		}
		kept = append(kept, key)
	}
	m.ShapeKeys = kept
}

// MinZ はメッシュ頂点の最小Z座標を返す。頂点が無いときはfalseを返す。
func (m *Mesh) MinZ() (float64, bool) {
	if len(m.Vertices) == 0 {
		return 0, false
	}
	minZ := m.Vertices[0].Position.Z
	for _, vertex := range m.Vertices[1:] {
		if vertex.Position.Z < minZ {
			minZ = vertex.Position.Z
		}
	}
	return minZ, true
}

// MaxZ はメッシュ頂点の最大Z座標を返す。頂点が無いときはfalseを返す。
func (m *Mesh) MaxZ() (float64, bool) {
	if len(m.Vertices) == 0 {
		return 0, false
	}
	maxZ := m.Vertices[0].Position.Z
	for _, vertex := range m.Vertices[1:] {
		if vertex.Position.Z > maxZ {
			maxZ = vertex.Position.Z
		}
	}
	return maxZ, true
}

// VertexCenter は頂点の平均位置を返す。
func (m *Mesh) VertexCenter() mmath.Vec3 {
	if len(m.Vertices) == 0 {
		return mmath.Vec3{}
	}
	positions := make([]mmath.Vec3, 0, len(m.Vertices))
	for _, vertex := range m.Vertices {
		positions = append(positions, vertex.Position)
	}
	return mmath.MeanVec3(positions...)
}

// MeshCollection はメッシュ集合を生成順で保持する。
type MeshCollection struct {
	meshes []*Mesh
	index  map[string]int
}

// NewMeshCollection は空のメッシュ集合を生成する。
func NewMeshCollection() *MeshCollection {
	return &MeshCollection{index: map[string]int{}}
}

// Append はメッシュを末尾に追加する。
func (c *MeshCollection) Append(mesh *Mesh) error {
	if mesh == nil {
		return fmt.Errorf("追加対象メッシュが未設定です")
	}
	if _, exists := c.index[mesh.Name]; exists {
		return fmt.Errorf("メッシュ名が重複しています: %s", mesh.Name)
	}
	c.index[mesh.Name] = len(c.meshes)
	c.meshes = append(c.meshes, mesh)
	return nil
}

// Len はメッシュ数を返す。
func (c *MeshCollection) Len() int {
	return len(c.meshes)
}

// Meshes は生成順のメッシュ一覧を返す。
func (c *MeshCollection) Meshes() []*Mesh {
	return c.meshes
}

// GetByName は名前一致のメッシュを返す。
func (c *MeshCollection) GetByName(name string) (*Mesh, bool) {
	idx, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.meshes[idx], true
}

// Rename はメッシュ名を変更する。変更先が既に存在するときはエラーを返す。
func (c *MeshCollection) Rename(oldName, newName string) error {
	if oldName == newName {
		return nil
	}
	idx, ok := c.index[oldName]
	if !ok {
		return fmt.Errorf("変更対象メッシュが存在しません: %s", oldName)
	}
	if _, exists := c.index[newName]; exists {
		return fmt.Errorf("変更先メッシュ名が既に存在します: %s", newName)
	}
	c.meshes[idx].Name = newName
	delete(c.index, oldName)
	c.index[newName] = idx
	return nil
}

// ContainsName は名前一致のメッシュの有無を返す。
func (c *MeshCollection) ContainsName(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Remove は名前一致のメッシュを削除し、削除数を返す。
func (c *MeshCollection) Remove(names ...string) int {
	removeSet := map[string]struct{}{}
	for _, name := range names {
		removeSet[name] = struct{}{}
	}
	removed := 0
	kept := make([]*Mesh, 0, len(c.meshes))
	for _, mesh := range c.meshes {
		if _, hit := removeSet[mesh.Name]; hit {
			removed++
			continue
		}
		kept = append(kept, mesh)
	}
	if removed == 0 {
		return 0
	}
	c.meshes = kept
	c.index = make(map[string]int, len(kept))
	for i, mesh := range kept {
		c.index[mesh.Name] = i
	}
	return removed
}

// RemoveWhere は条件一致のメッシュを削除し、削除数を返す。
func (c *MeshCollection) RemoveWhere(match func(*Mesh) bool) int {
	var names []string
	for _, mesh := range c.meshes {
		if match(mesh) {
			names = append(names, mesh.Name)
		}
	}
	return c.Remove(names...)
}

// FindByNameContains は名前の部分一致で最初のメッシュを返す。
func (c *MeshCollection) FindByNameContains(sub string) (*Mesh, bool) {
	for _, mesh := range c.meshes {
		if strings.Contains(mesh.Name, sub) {
			return mesh, true
		}
	}
	return nil, false
}
