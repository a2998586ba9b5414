// 指示: miu200521358
package minteractor

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tiendc/go-deepcopy"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
)

// connectedTailEpsilon は終点と次ジョイント始点が一致しているとみなす閾値。
const connectedTailEpsilon = 0.0001

// jointPair は接続元ジョイントと接続先ジョイントの組を表す。
type jointPair struct {
	source string
	target string
}

// jointReparent は付け替え対象ジョイントと新しい親の組を表す。
type jointReparent struct {
	child  string
	parent string
}

// jointDuplicate は複製元ジョイントと複製後の名前の組を表す。
type jointDuplicate struct {
	source    string
	duplicate string
}

// globalRemoveJointNames は全ゲーム共通で取り除く補助ジョイント名を返す。
func globalRemoveJointNames() []string {
	names := []string{
		"Bip001 Pelvis",
		"+EyeBone L A01",
		"+EyeBone R A01",
		"Bip002",
		"Bone_Eye_L_01",
		"Bone_Eye_R_01",
		"Skin_GRP",
		"Main",
		"Root",
		"CameraPosition",
		"HuluProp01",
		"HeadSocket",
		"BuffSocket",
	}
	for i := 0; i <= 10; i++ {
		names = append(names, fmt.Sprintf("WeaponProp%02d", i))
		names = append(names, fmt.Sprintf("Weapon%03d", i))
	}
	for _, side := range []string{"L", "R"} {
		for r := 'A'; r <= 'Z'; r++ {
			names = append(names, fmt.Sprintf("_Shoulder_%s_%c", side, r))
		}
	}
	return names
}

// establishHipsRoot は先頭ジョイントを腰として確立し、親なしジョイントを腰の配下へ集約する。
func establishHipsRoot(skeleton *model.Skeleton) error {
	first := skeleton.First()
	if first == nil {
		return fmt.Errorf("スケルトンにジョイントがありません")
	}
	if first.Name != "Hips" {
		if err := skeleton.Rename(first.Name, "Hips"); err != nil {
			return fmt.Errorf("腰ジョイントの確立に失敗しました: %w", err)
		}
	}
	setHipsAsParent(skeleton)
	return nil
}

// setHipsAsParent は腰を親なしにし、他の親なしジョイントを腰の子へ付け替える。
func setHipsAsParent(skeleton *model.Skeleton) {
	hips, ok := skeleton.GetByName("Hips")
	if !ok {
		return
	}
	hips.ParentName = ""
	hips.Connected = false
	for _, joint := range skeleton.Joints() {
		if joint == hips {
			continue
		}
		if joint.ParentName == "" {
			joint.ParentName = hips.Name
			joint.Connected = false
		}
	}
}

var spineChainPattern = regexp.MustCompile(`(?i)^spine\d*$`)

// renameSpineChain は背骨系列のジョイントを出現順に正準名へ置き換える。
func renameSpineChain(skeleton *model.Skeleton, canonicalNames []string) {
	matched := make([]string, 0, len(canonicalNames))
	for _, joint := range skeleton.Joints() {
		if spineChainPattern.MatchString(joint.Name) {
			matched = append(matched, joint.Name)
		}
	}
	for i, name := range matched {
		if i >= len(canonicalNames) {
			break
		}
		if name == canonicalNames[i] {
			continue
		}
		if err := skeleton.Rename(name, canonicalNames[i]); err != nil {
			logConvertWarn("背骨ジョイントの改名に失敗しました: %s -> %s: %v", name, canonicalNames[i], err)
		}
	}
}

// resetJointRolls は全ジョイントのロールを0に揃える。
func resetJointRolls(skeleton *model.Skeleton) {
	for _, joint := range skeleton.Joints() {
		joint.Roll = 0
	}
}

// reparentJoints は指定ジョイント群を新しい親へ付け替える。親が存在しない場合は何もしない。
func reparentJoints(skeleton *model.Skeleton, reparents []jointReparent) {
	for _, entry := range reparents {
		if !skeleton.ContainsName(entry.parent) {
			logConvertWarn("付け替え先親ジョイントが見つかりません: %s", entry.parent)
			continue
		}
		child, ok := skeleton.GetByName(entry.child)
		if !ok {
			continue
		}
		child.ParentName = entry.parent
		child.Connected = false
	}
}

// attachJointPairs は各組について接続元の終点を接続先の始点へ合わせる。
// どちらかが欠けている組は読み飛ばす。
func attachJointPairs(skeleton *model.Skeleton, pairs []jointPair) {
	for _, pair := range pairs {
		source, sourceOK := skeleton.GetByName(pair.source)
		target, targetOK := skeleton.GetByName(pair.target)
		if !sourceOK || !targetOK {
			logConvertWarn("接続対象ジョイントが見つかりません: %s / %s", pair.source, pair.target)
			continue
		}
		source.Tail = target.Head
	}
}

// attachJointsBySubstring は部分一致で見つけた2ジョイントを接続する。
func attachJointsBySubstring(skeleton *model.Skeleton, sourceSub, targetSub string) {
	source, sourceOK := skeleton.FindBySubstring(sourceSub)
	target, targetOK := skeleton.FindBySubstring(targetSub)
	if !sourceOK || !targetOK {
		logConvertWarn("部分一致で接続対象ジョイントが見つかりません: %s / %s", sourceSub, targetSub)
		return
	}
	source.Tail = target.Head
}

// attachEyeJoint は目ジョイントの終点を基準ジョイント始点の上方へ立てる。
func attachEyeJoint(skeleton *model.Skeleton, eyeName, referenceName string) {
	eye, eyeOK := skeleton.GetByName(eyeName)
	reference, refOK := skeleton.GetByName(referenceName)
	if !eyeOK || !refOK {
		return
	}
	eye.Tail.X = eye.Head.X
	eye.Tail.Y = eye.Head.Y
	eye.Tail.Z = reference.Head.Z + 0.12
}

// synthesizeNeck は首ジョイントが欠けている場合に胸と頭の間へ合成する。
// 始点と終点の高さが一致したときは終点を0.1だけ持ち上げる。
func synthesizeNeck(skeleton *model.Skeleton) {
	if skeleton.ContainsName("Neck") {
		return
	}
	chest, chestOK := skeleton.GetByName("Chest")
	head, headOK := skeleton.GetByName("Head")
	if !chestOK || !headOK {
		return
	}
	neck := model.NewJoint("Neck", chest.Tail, head.Head)
	if neck.Head.Z == neck.Tail.Z {
		neck.Tail.Z += 0.1
	}
	neck.ParentName = chest.Name
	if err := skeleton.Append(neck); err != nil {
		logConvertWarn("首ジョイントの合成に失敗しました: %v", err)
		return
	}
	head.ParentName = neck.Name
}

// straightenHead は頭ジョイントの終点を始点の真上へ揃える。
func straightenHead(skeleton *model.Skeleton) {
	head, ok := skeleton.GetByName("Head")
	if !ok {
		return
	}
	head.Tail.X = head.Head.X
	head.Tail.Y = head.Head.Y
	if head.Tail.Z < head.Head.Z {
		head.Tail.Z = head.Head.Z + 0.1
	}
}

// adjustLegJoints は膝の接続精度を上げるため脚の終点と膝の始点をわずかに手前へ寄せる。
func adjustLegJoints(skeleton *model.Skeleton) {
	pairs := []jointPair{
		{source: "Left Upper Leg", target: "Left Lower Leg"},
		{source: "Right Upper Leg", target: "Right Lower Leg"},
	}
	for _, pair := range pairs {
		leg, legOK := skeleton.GetByName(pair.source)
		knee, kneeOK := skeleton.GetByName(pair.target)
		if !legOK || !kneeOK {
			continue
		}
		leg.Tail.Y -= 0.015
		knee.Head.Y -= 0.015
	}
}

// mirroredJointName は左右対称ジョイントの対側名を返す。対応しない名前はそのまま返す。
func mirroredJointName(name string) string {
	switch {
	case strings.Contains(name, "Right"):
		return strings.ReplaceAll(name, "Right", "Left")
	case strings.Contains(name, "Left"):
		return strings.ReplaceAll(name, "Left", "Right")
	case strings.Contains(name, "_R"):
		return strings.ReplaceAll(name, "_R", "_L")
	case strings.Contains(name, "_L"):
		return strings.ReplaceAll(name, "_L", "_R")
	}
	return name
}

// symmetrizeJoints は指定サイドのジョイントを対側へ鏡映する。
// 対側ジョイントが存在する場合は位置のみ上書きし、存在しない場合は新規に作る。
func symmetrizeJoints(skeleton *model.Skeleton, side string) {
	marker := "Right"
	suffix := "_R"
	if side == "Left" {
		marker = "Left"
		suffix = "_L"
	}
	sources := make([]*model.Joint, 0)
	for _, joint := range skeleton.Joints() {
		if strings.Contains(joint.Name, marker) || strings.Contains(joint.Name, suffix) {
			sources = append(sources, joint)
		}
	}
	for _, source := range sources {
		mirroredName := mirroredJointName(source.Name)
		if mirroredName == source.Name {
			continue
		}
		mirrored, exists := skeleton.GetByName(mirroredName)
		if !exists {
			mirrored = model.NewJoint(mirroredName, source.Head.MirroredX(), source.Tail.MirroredX())
			mirrored.ParentName = mirroredJointName(source.ParentName)
			if !skeleton.ContainsName(mirrored.ParentName) {
				mirrored.ParentName = source.ParentName
			}
			mirrored.Connected = source.Connected
			mirrored.Deform = source.Deform
			if err := skeleton.Append(mirrored); err != nil {
				logConvertWarn("鏡映ジョイントの追加に失敗しました: %v", err)
			}
			continue
		}
		mirrored.Head = source.Head.MirroredX()
		mirrored.Tail = source.Tail.MirroredX()
		mirrored.Roll = -source.Roll
	}
}

// duplicateJointsWithWeights はジョイントを複製し、指定メッシュのウェイトを合算して移し替える。
// ウェイト供給元が未指定の場合は複製元ジョイントのウェイトを使う。
func duplicateJointsWithWeights(data *model.Model, duplicates []jointDuplicate, weightSources map[string][]string, meshName string) bool {
	if len(duplicates) == 0 || meshName == "" {
		return false
	}
	mesh, ok := data.Meshes.GetByName(meshName)
	if !ok {
		logConvertWarn("ウェイト転送先メッシュが見つかりません: %s", meshName)
		return false
	}

	for _, entry := range duplicates {
		source, sourceOK := data.Skeleton.GetByName(entry.source)
		if !sourceOK {
			logConvertWarn("複製元ジョイントが見つかりません: %s", entry.source)
			continue
		}
		duplicated := &model.Joint{}
		if err := deepcopy.Copy(duplicated, source); err != nil {
			logConvertWarn("ジョイント複製に失敗しました: %s: %v", entry.source, err)
			continue
		}
		duplicated.Name = entry.duplicate
		duplicated.Deform = true
		if err := data.Skeleton.Append(duplicated); err != nil {
			logConvertWarn("複製ジョイントの追加に失敗しました: %v", err)
			continue
		}

		sources := []string{entry.source}
		if names, found := weightSources[entry.duplicate]; found {
			sources = names
		}
		missing := map[string]struct{}{}
		for _, vertex := range mesh.Vertices {
			total := 0.0
			for _, sourceName := range sources {
				weight := vertex.WeightFor(sourceName)
				if weight == 0 {
					if _, warned := missing[sourceName]; !warned && !vertexGroupExists(mesh, sourceName) {
						missing[sourceName] = struct{}{}
					}
					continue
				}
				total += weight
			}
			if total > 0 {
				vertex.SetWeight(entry.duplicate, total)
			}
		}
		for name := range missing {
			logConvertWarn("ウェイト供給元が見つかりません: %s (メッシュ: %s)", name, mesh.Name)
			data.AddWarning(model.ConversionWarningJointPairMissing)
		}
	}
	return true
}

// vertexGroupExists は指定ジョイントのウェイトがメッシュ内に1つでも存在するかを返す。
func vertexGroupExists(mesh *model.Mesh, group string) bool {
	for _, vertex := range mesh.Vertices {
		if _, ok := vertex.Weights[group]; ok {
			return true
		}
	}
	return false
}

var numericChainPattern = regexp.MustCompile(`^(.*?)(\d+)$`)

// defaultChainExclusions は数値連番の自動接続から外すジョイント名の部分文字列を返す。
func defaultChainExclusions() []string {
	return []string{
		"pelvis", "waist", "spine", "arm", "leg", "chest",
		"neck", "head", "knee", "calf", "elbow", "skirt",
		"thigh", "twist",
	}
}

// connectNumericChains は数値連番で終わるジョイント名の系列を検出し、
// 各ジョイントの終点を次の番号のジョイント始点へつなぐ。
// 番号の欠落を見つけた時点でその系列の処理を打ち切り、欠番以降には触れない。
func connectNumericChains(data *model.Model, excludeSubstrings []string) {
	skeleton := data.Skeleton
	if len(excludeSubstrings) == 0 {
		excludeSubstrings = defaultChainExclusions()
	}
	exclusions := make([]string, 0, len(excludeSubstrings))
	for _, sub := range excludeSubstrings {
		exclusions = append(exclusions, strings.ToLower(sub))
	}

	chains := map[string]map[int]*model.Joint{}
	for _, joint := range skeleton.Joints() {
		lower := strings.ToLower(joint.Name)
		excluded := false
		for _, sub := range exclusions {
			if strings.Contains(lower, sub) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		match := numericChainPattern.FindStringSubmatch(joint.Name)
		if match == nil {
			continue
		}
		suffix := 0
		if _, err := fmt.Sscanf(match[2], "%d", &suffix); err != nil {
			continue
		}
		prefix := match[1]
		if chains[prefix] == nil {
			chains[prefix] = map[int]*model.Joint{}
		}
		chains[prefix][suffix] = joint
	}

	prefixes := make([]string, 0, len(chains))
	for prefix := range chains {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	for _, prefix := range prefixes {
		members := chains[prefix]
		if len(members) < 2 {
			continue
		}
		keys := make([]int, 0, len(members))
		for key := range members {
			keys = append(keys, key)
		}
		sort.Ints(keys)

		for i := 0; i < len(keys)-1; i++ {
			if keys[i+1] != keys[i]+1 {
				logConvertWarn("連番系列に欠番があるため接続を打ち切ります: %s%d の次に %s%d", prefix, keys[i], prefix, keys[i+1])
				data.AddWarning(model.ConversionWarningChainGapDetected)
				break
			}
			current := members[keys[i]]
			next := members[keys[i+1]]
			if current.Tail.Distance(next.Head) < connectedTailEpsilon &&
				next.ParentName == current.Name && next.Connected {
				continue
			}
			current.Tail = next.Head
			next.ParentName = current.Name
			next.Connected = true
		}
	}
}

// shiftWuwaFingerChains は指ジョイント系列を1段ずつ根元側へずらして正準の4節構成に合わせる。
func shiftWuwaFingerChains(skeleton *model.Skeleton) {
	segments := []string{"Proximal", "Intermediate", "Distal", "Terminal"}
	for _, finger := range []string{"Thumb", "Index", "Middle", "Ring", "Little"} {
		for _, side := range []string{"Left", "Right"} {
			base := fmt.Sprintf("%s %s", side, finger)
			if !skeleton.ContainsName(base+" Terminal") || !skeleton.ContainsName(base+" Proximal") {
				continue
			}
			renamed := []string{base, base + " Proximal", base + " Intermediate", base + " Distal"}
			for i, segment := range segments {
				oldName := fmt.Sprintf("%s %s", base, segment)
				if !skeleton.ContainsName(oldName) {
					continue
				}
				if err := skeleton.Rename(oldName, renamed[i]); err != nil {
					logConvertWarn("指ジョイントのずらし改名に失敗しました: %s -> %s: %v", oldName, renamed[i], err)
				}
			}
		}
	}
}

// createEyeJointsFromMeshes は目メッシュの重心から目ジョイントを生成し、全頂点をウェイト1で割り当てる。
func createEyeJointsFromMeshes(data *model.Model, eyeMeshes []jointPair) {
	head, headOK := data.Skeleton.GetByName("Head")
	if !headOK {
		logConvertWarn("頭ジョイントが見つからないため目ジョイントを生成できません")
		return
	}
	for _, entry := range eyeMeshes {
		mesh, ok := data.Meshes.GetByName(entry.source)
		if !ok {
			logConvertWarn("目メッシュが見つかりません: %s", entry.source)
			data.AddWarning(model.ConversionWarningEyeMeshMissing)
			continue
		}
		if len(mesh.Vertices) == 0 {
			continue
		}
		center := mesh.VertexCenter()
		center.Y += 0.03
		tail := center
		tail.Z += 0.05
		eye := model.NewJoint(entry.target, center, tail)
		eye.ParentName = head.Name
		if err := data.Skeleton.Append(eye); err != nil {
			logConvertWarn("目ジョイントの追加に失敗しました: %v", err)
			continue
		}
		for _, vertex := range mesh.Vertices {
			vertex.SetWeight(entry.target, 1.0)
		}
	}
}

// mergeJoint は指定ジョイントを親へ吸収する。子は吸収先の親へ付け替える。
func mergeJoint(skeleton *model.Skeleton, name string) {
	joint, ok := skeleton.GetByName(name)
	if !ok {
		return
	}
	for _, child := range skeleton.ChildrenOf(name) {
		child.ParentName = joint.ParentName
		child.Connected = false
	}
	skeleton.Remove(name)
}

// moveModelToGround は体メッシュの最下点が接地するようモデル全体を持ち上げる。
func moveModelToGround(data *model.Model) {
	lowest := 0.0
	found := false
	for _, mesh := range data.Meshes.Meshes() {
		lower := strings.ToLower(mesh.Name)
		if !strings.Contains(lower, "body") || strings.Contains(lower, "weapon") {
			continue
		}
		minZ, ok := mesh.MinZ()
		if !ok {
			continue
		}
		if !found || minZ < lowest {
			lowest = minZ
			found = true
		}
	}
	if !found {
		logConvertWarn("接地基準となる体メッシュが見つかりません")
		return
	}
	if lowest >= 0 {
		return
	}
	offset := -lowest
	for _, joint := range data.Skeleton.Joints() {
		joint.Head.Z += offset
		joint.Tail.Z += offset
	}
	for _, mesh := range data.Meshes.Meshes() {
		for _, vertex := range mesh.Vertices {
			vertex.Position.Z += offset
		}
	}
}
