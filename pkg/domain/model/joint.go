// 指示: miu200521358
package model

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/mmath"
)

// Joint はスケルトンの1ジョイントを表す。
type Joint struct {
	Name       string
	Head       mmath.Vec3
	Tail       mmath.Vec3
	Roll       float64
	ParentName string
	Connected  bool
	Deform     bool
}

// NewJoint は名前と位置を指定してジョイントを生成する。
func NewJoint(name string, head, tail mmath.Vec3) *Joint {
	return &Joint{Name: name, Head: head, Tail: tail, Deform: true}
}

// Length はジョイント長を返す。
func (j *Joint) Length() float64 {
	return j.Head.Distance(j.Tail)
}

// Skeleton はジョイント集合を生成順で保持する。
type Skeleton struct {
	joints []*Joint
	index  map[string]int
}

// NewSkeleton は空のスケルトンを生成する。
func NewSkeleton() *Skeleton {
	return &Skeleton{index: map[string]int{}}
}

// Append はジョイントを末尾に追加する。
func (s *Skeleton) Append(joint *Joint) error {
	if joint == nil {
		return fmt.Errorf("追加対象ジョイントが未設定です")
	}
	if _, exists := s.index[joint.Name]; exists {
		return fmt.Errorf("ジョイント名が重複しています: %s", joint.Name)
	}
	s.index[joint.Name] = len(s.joints)
	s.joints = append(s.joints, joint)
	return nil
}

// Len はジョイント数を返す。
func (s *Skeleton) Len() int {
	return len(s.joints)
}

// Joints は生成順のジョイント一覧を返す。
func (s *Skeleton) Joints() []*Joint {
	return s.joints
}

// First は先頭ジョイントを返す。
func (s *Skeleton) First() *Joint {
	if len(s.joints) == 0 {
		return nil
	}
	return s.joints[0]
}

// GetByName は名前一致のジョイントを返す。
func (s *Skeleton) GetByName(name string) (*Joint, bool) {
	idx, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.joints[idx], true
}

// ContainsName は名前一致のジョイントの有無を返す。
func (s *Skeleton) ContainsName(name string) bool {
	_, ok := s.index[name]
	return ok
}

// FindBySubstring は部分一致する最初のジョイントを返す。
// 複数一致する場合は生成順で先のものを採用する。
func (s *Skeleton) FindBySubstring(sub string) (*Joint, bool) {
	for _, joint := range s.joints {
		if strings.Contains(joint.Name, sub) {
			return joint, true
		}
	}
	return nil, false
}

// Rename はジョイント名を変更する。変更後の名前が既存の場合はエラーを返す。
func (s *Skeleton) Rename(oldName, newName string) error {
	if oldName == newName {
		return nil
	}
	idx, ok := s.index[oldName]
	if !ok {
		return fmt.Errorf("改名対象ジョイントが見つかりません: %s", oldName)
	}
	if _, exists := s.index[newName]; exists {
		return fmt.Errorf("改名先ジョイント名が既に存在します: %s", newName)
	}
	delete(s.index, oldName)
	s.index[newName] = idx
	s.joints[idx].Name = newName
	for _, joint := range s.joints {
		if joint.ParentName == oldName {
			joint.ParentName = newName
		}
	}
	return nil
}

// Remove は名前一致のジョイントを削除する。子は親リンクを失う。
func (s *Skeleton) Remove(names ...string) int {
	removeSet := map[string]struct{}{}
	for _, name := range names {
		removeSet[name] = struct{}{}
	}
	removed := 0
	kept := make([]*Joint, 0, len(s.joints))
	for _, joint := range s.joints {
		if _, hit := removeSet[joint.Name]; hit {
			removed++
			continue
		}
		kept = append(kept, joint)
	}
	if removed == 0 {
		return 0
	}
	s.joints = kept
	s.index = make(map[string]int, len(kept))
	for i, joint := range kept {
		s.index[joint.Name] = i
		if _, gone := removeSet[joint.ParentName]; gone {
			joint.ParentName = ""
			joint.Connected = false
		}
	}
	return removed
}

// ChildrenOf は指定ジョイントの直下の子を返す。
func (s *Skeleton) ChildrenOf(name string) []*Joint {
	var children []*Joint
	for _, joint := range s.joints {
		if joint.ParentName == name {
			children = append(children, joint)
		}
	}
	return children
}

// DescendantsOf は指定ジョイント群とその子孫の名前集合を返す。
func (s *Skeleton) DescendantsOf(names ...string) map[string]struct{} {
	result := map[string]struct{}{}
	var walk func(name string)
	walk = func(name string) {
		if _, seen := result[name]; seen {
			return
		}
		result[name] = struct{}{}
		for _, child := range s.ChildrenOf(name) {
			walk(child.Name)
		}
	}
	for _, name := range names {
		if s.ContainsName(name) {
			walk(name)
		}
	}
	return result
}
