// 指示: miu200521358
package minteractor

import (
	"testing"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/mmath"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
)

func appendJoint(t *testing.T, skeleton *model.Skeleton, name string, head, tail mmath.Vec3, parent string) *model.Joint {
	t.Helper()
	joint := model.NewJoint(name, head, tail)
	joint.ParentName = parent
	if err := skeleton.Append(joint); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	return joint
}

func hasWarning(data *model.Model, id string) bool {
	for _, warning := range data.Warnings {
		if warning == id {
			return true
		}
	}
	return false
}

func TestEstablishHipsRootRenamesFirstJoint(t *testing.T) {
	skeleton := model.NewSkeleton()
	appendJoint(t, skeleton, "Bip001", mmath.NewVec3(0, 0, 1), mmath.NewVec3(0, 0, 1.1), "")
	appendJoint(t, skeleton, "Orphan", mmath.NewVec3(0, 0, 0), mmath.NewVec3(0, 0, 0.1), "")

	if err := establishHipsRoot(skeleton); err != nil {
		t.Fatalf("establish failed: %v", err)
	}
	hips, ok := skeleton.GetByName("Hips")
	if !ok {
		t.Fatalf("Hips joint not found")
	}
	if hips.ParentName != "" {
		t.Fatalf("Hips should be parentless: %s", hips.ParentName)
	}
	orphan, _ := skeleton.GetByName("Orphan")
	if orphan.ParentName != "Hips" {
		t.Fatalf("orphan should be reparented to Hips: %s", orphan.ParentName)
	}
}

func TestEstablishHipsRootFailsOnEmptySkeleton(t *testing.T) {
	if err := establishHipsRoot(model.NewSkeleton()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRenameSpineChain(t *testing.T) {
	skeleton := model.NewSkeleton()
	appendJoint(t, skeleton, "Hips", mmath.NewVec3(0, 0, 1), mmath.NewVec3(0, 0, 1.1), "")
	appendJoint(t, skeleton, "Spine", mmath.NewVec3(0, 0, 1.1), mmath.NewVec3(0, 0, 1.2), "Hips")
	appendJoint(t, skeleton, "Spine1", mmath.NewVec3(0, 0, 1.2), mmath.NewVec3(0, 0, 1.3), "Spine")
	appendJoint(t, skeleton, "Spine2", mmath.NewVec3(0, 0, 1.3), mmath.NewVec3(0, 0, 1.4), "Spine1")

	renameSpineChain(skeleton, []string{"Spine", "Chest", "Upper Chest"})

	for _, name := range []string{"Spine", "Chest", "Upper Chest"} {
		if !skeleton.ContainsName(name) {
			t.Fatalf("missing joint after rename: %s", name)
		}
	}
	chest, _ := skeleton.GetByName("Chest")
	if chest.ParentName != "Spine" {
		t.Fatalf("parent link should follow rename: %s", chest.ParentName)
	}
	upper, _ := skeleton.GetByName("Upper Chest")
	if upper.ParentName != "Chest" {
		t.Fatalf("parent link should follow rename: %s", upper.ParentName)
	}
}

func TestSynthesizeNeckBetweenChestAndHead(t *testing.T) {
	skeleton := model.NewSkeleton()
	appendJoint(t, skeleton, "Chest", mmath.NewVec3(0, 0, 1.2), mmath.NewVec3(0, 0, 1.4), "")
	appendJoint(t, skeleton, "Head", mmath.NewVec3(0, 0, 1.5), mmath.NewVec3(0, 0, 1.6), "Chest")

	synthesizeNeck(skeleton)

	neck, ok := skeleton.GetByName("Neck")
	if !ok {
		t.Fatalf("Neck not synthesized")
	}
	if !neck.Head.NearEquals(mmath.NewVec3(0, 0, 1.4), 1e-9) {
		t.Fatalf("neck head mismatch: %+v", neck.Head)
	}
	if !neck.Tail.NearEquals(mmath.NewVec3(0, 0, 1.5), 1e-9) {
		t.Fatalf("neck tail mismatch: %+v", neck.Tail)
	}
	if neck.ParentName != "Chest" {
		t.Fatalf("neck parent mismatch: %s", neck.ParentName)
	}
	head, _ := skeleton.GetByName("Head")
	if head.ParentName != "Neck" {
		t.Fatalf("head should hang from neck: %s", head.ParentName)
	}
}

func TestSynthesizeNeckLiftsDegenerateTail(t *testing.T) {
	skeleton := model.NewSkeleton()
	appendJoint(t, skeleton, "Chest", mmath.NewVec3(0, 0, 3), mmath.NewVec3(0, 0, 3), "")
	appendJoint(t, skeleton, "Head", mmath.NewVec3(0, 0, 3), mmath.NewVec3(0, 0, 3.2), "Chest")

	synthesizeNeck(skeleton)

	neck, ok := skeleton.GetByName("Neck")
	if !ok {
		t.Fatalf("Neck not synthesized")
	}
	if !neck.Tail.NearEquals(mmath.NewVec3(0, 0, 3.1), 1e-9) {
		t.Fatalf("degenerate neck tail should be lifted: %+v", neck.Tail)
	}
}

func TestSynthesizeNeckSkipsExistingNeck(t *testing.T) {
	skeleton := model.NewSkeleton()
	appendJoint(t, skeleton, "Chest", mmath.NewVec3(0, 0, 1.2), mmath.NewVec3(0, 0, 1.4), "")
	neck := appendJoint(t, skeleton, "Neck", mmath.NewVec3(0, 0, 1.4), mmath.NewVec3(0, 0, 1.5), "Chest")
	appendJoint(t, skeleton, "Head", mmath.NewVec3(0, 0, 1.5), mmath.NewVec3(0, 0, 1.6), "Neck")

	synthesizeNeck(skeleton)

	got, _ := skeleton.GetByName("Neck")
	if got != neck {
		t.Fatalf("existing neck should stay untouched")
	}
}

func TestConnectNumericChainsStopsAtGap(t *testing.T) {
	data := model.NewModel("test")
	appendJoint(t, data.Skeleton, "Tail0", mmath.NewVec3(0, 0, 1), mmath.NewVec3(0, 0.1, 1), "")
	appendJoint(t, data.Skeleton, "Tail1", mmath.NewVec3(0, 0.2, 1), mmath.NewVec3(0, 0.3, 1), "")
	untouched := appendJoint(t, data.Skeleton, "Tail3", mmath.NewVec3(0, 0.6, 1), mmath.NewVec3(0, 0.7, 1), "")

	connectNumericChains(data, nil)

	first, _ := data.Skeleton.GetByName("Tail0")
	second, _ := data.Skeleton.GetByName("Tail1")
	if !first.Tail.NearEquals(second.Head, 1e-9) {
		t.Fatalf("Tail0 should connect to Tail1: %+v", first.Tail)
	}
	if second.ParentName != "Tail0" || !second.Connected {
		t.Fatalf("Tail1 should hang connected from Tail0: %s", second.ParentName)
	}
	if untouched.ParentName != "" || untouched.Connected {
		t.Fatalf("joint after the gap must stay untouched: %s", untouched.ParentName)
	}
	if !untouched.Head.NearEquals(mmath.NewVec3(0, 0.6, 1), 1e-9) {
		t.Fatalf("joint after the gap moved: %+v", untouched.Head)
	}
	if !hasWarning(data, model.ConversionWarningChainGapDetected) {
		t.Fatalf("gap warning missing: %v", data.Warnings)
	}
}

func TestConnectNumericChainsConnectsFullSequence(t *testing.T) {
	data := model.NewModel("test")
	appendJoint(t, data.Skeleton, "Cloth0", mmath.NewVec3(0, 0, 1), mmath.NewVec3(0, 0.1, 1), "")
	appendJoint(t, data.Skeleton, "Cloth1", mmath.NewVec3(0, 0.2, 1), mmath.NewVec3(0, 0.3, 1), "")
	appendJoint(t, data.Skeleton, "Cloth2", mmath.NewVec3(0, 0.4, 1), mmath.NewVec3(0, 0.5, 1), "")

	connectNumericChains(data, nil)

	second, _ := data.Skeleton.GetByName("Cloth1")
	third, _ := data.Skeleton.GetByName("Cloth2")
	if second.ParentName != "Cloth0" || third.ParentName != "Cloth1" {
		t.Fatalf("chain parents mismatch: %s / %s", second.ParentName, third.ParentName)
	}
	if !second.Connected || !third.Connected {
		t.Fatalf("chain members should be connected")
	}
	if hasWarning(data, model.ConversionWarningChainGapDetected) {
		t.Fatalf("unexpected gap warning: %v", data.Warnings)
	}
}

func TestConnectNumericChainsSkipsExcludedNames(t *testing.T) {
	data := model.NewModel("test")
	appendJoint(t, data.Skeleton, "Skirt0", mmath.NewVec3(0, 0, 1), mmath.NewVec3(0, 0.1, 1), "")
	appendJoint(t, data.Skeleton, "Skirt1", mmath.NewVec3(0, 0.2, 1), mmath.NewVec3(0, 0.3, 1), "")

	connectNumericChains(data, nil)

	second, _ := data.Skeleton.GetByName("Skirt1")
	if second.ParentName != "" || second.Connected {
		t.Fatalf("excluded chain must not be connected: %s", second.ParentName)
	}
}

func TestDuplicateJointsWithWeightsSumsSources(t *testing.T) {
	data := model.NewModel("test")
	appendJoint(t, data.Skeleton, "Head", mmath.NewVec3(0, 0, 1.5), mmath.NewVec3(0, 0, 1.6), "")
	appendJoint(t, data.Skeleton, "Eye_L", mmath.NewVec3(0.03, -0.05, 1.55), mmath.NewVec3(0.03, -0.05, 1.6), "Head")

	mesh := &model.Mesh{Name: "Face"}
	first := &model.Vertex{Position: mmath.NewVec3(0, 0, 1.5)}
	first.SetWeight("Eye_L", 0.5)
	first.SetWeight("Highlight_L", 0.25)
	second := &model.Vertex{Position: mmath.NewVec3(0.1, 0, 1.5)}
	second.SetWeight("Highlight_L", 0.8)
	third := &model.Vertex{Position: mmath.NewVec3(0.2, 0, 1.5)}
	mesh.Vertices = []*model.Vertex{first, second, third}
	if err := data.Meshes.Append(mesh); err != nil {
		t.Fatalf("append mesh failed: %v", err)
	}

	ok := duplicateJointsWithWeights(data,
		[]jointDuplicate{{source: "Eye_L", duplicate: "Left Eye"}},
		map[string][]string{"Left Eye": {"Eye_L", "Highlight_L"}},
		"Face")
	if !ok {
		t.Fatalf("duplicate should succeed")
	}
	duplicated, found := data.Skeleton.GetByName("Left Eye")
	if !found {
		t.Fatalf("duplicated joint missing")
	}
	if !duplicated.Head.NearEquals(mmath.NewVec3(0.03, -0.05, 1.55), 1e-9) {
		t.Fatalf("duplicated joint should copy source position: %+v", duplicated.Head)
	}
	if got := first.WeightFor("Left Eye"); got != 0.75 {
		t.Fatalf("weight sum mismatch: %f", got)
	}
	if got := second.WeightFor("Left Eye"); got != 0.8 {
		t.Fatalf("weight sum mismatch: %f", got)
	}
	if _, assigned := third.Weights["Left Eye"]; assigned {
		t.Fatalf("zero-weight vertex must not gain the group")
	}
}

func TestDuplicateJointsWithWeightsWarnsOnMissingSource(t *testing.T) {
	data := model.NewModel("test")
	appendJoint(t, data.Skeleton, "Eye_L", mmath.NewVec3(0.03, -0.05, 1.55), mmath.NewVec3(0.03, -0.05, 1.6), "")

	mesh := &model.Mesh{Name: "Face"}
	vertex := &model.Vertex{}
	vertex.SetWeight("Eye_L", 1.0)
	mesh.Vertices = []*model.Vertex{vertex}
	if err := data.Meshes.Append(mesh); err != nil {
		t.Fatalf("append mesh failed: %v", err)
	}

	duplicateJointsWithWeights(data,
		[]jointDuplicate{{source: "Eye_L", duplicate: "Left Eye"}},
		map[string][]string{"Left Eye": {"Eye_L", "NoSuchGroup"}},
		"Face")

	if !hasWarning(data, model.ConversionWarningJointPairMissing) {
		t.Fatalf("missing source warning expected: %v", data.Warnings)
	}
	if got := vertex.WeightFor("Left Eye"); got != 1.0 {
		t.Fatalf("existing source weight should still transfer: %f", got)
	}
}

func TestMirroredJointName(t *testing.T) {
	cases := map[string]string{
		"Right arm":  "Left arm",
		"Left leg":   "Right leg",
		"Thumb1_L":   "Thumb1_R",
		"Thumb1_R":   "Thumb1_L",
		"Hips":       "Hips",
		"Right Knee": "Left Knee",
	}
	for input, expected := range cases {
		if got := mirroredJointName(input); got != expected {
			t.Fatalf("mirror mismatch: %s -> %s (expected %s)", input, got, expected)
		}
	}
}

func TestSymmetrizeJointsCreatesMissingSide(t *testing.T) {
	skeleton := model.NewSkeleton()
	appendJoint(t, skeleton, "Chest", mmath.NewVec3(0, 0, 1.3), mmath.NewVec3(0, 0, 1.4), "")
	appendJoint(t, skeleton, "Right shoulder", mmath.NewVec3(0.05, 0, 1.4), mmath.NewVec3(0.1, 0, 1.4), "Chest")

	symmetrizeJoints(skeleton, "Right")

	mirrored, ok := skeleton.GetByName("Left shoulder")
	if !ok {
		t.Fatalf("mirrored joint missing")
	}
	if !mirrored.Head.NearEquals(mmath.NewVec3(-0.05, 0, 1.4), 1e-9) {
		t.Fatalf("mirrored head mismatch: %+v", mirrored.Head)
	}
	if mirrored.ParentName != "Chest" {
		t.Fatalf("mirrored parent mismatch: %s", mirrored.ParentName)
	}
}

func TestSymmetrizeJointsOverwritesExistingSide(t *testing.T) {
	skeleton := model.NewSkeleton()
	appendJoint(t, skeleton, "Right arm", mmath.NewVec3(0.2, 0, 1.4), mmath.NewVec3(0.4, 0, 1.4), "")
	appendJoint(t, skeleton, "Left arm", mmath.NewVec3(-0.19, 0.01, 1.39), mmath.NewVec3(-0.38, 0.02, 1.41), "")

	symmetrizeJoints(skeleton, "Right")

	left, _ := skeleton.GetByName("Left arm")
	if !left.Head.NearEquals(mmath.NewVec3(-0.2, 0, 1.4), 1e-9) {
		t.Fatalf("existing side should be overwritten: %+v", left.Head)
	}
	if !left.Tail.NearEquals(mmath.NewVec3(-0.4, 0, 1.4), 1e-9) {
		t.Fatalf("existing side tail should be overwritten: %+v", left.Tail)
	}
}

func TestShiftWuwaFingerChains(t *testing.T) {
	skeleton := model.NewSkeleton()
	appendJoint(t, skeleton, "Left hand", mmath.NewVec3(0.5, 0, 1.2), mmath.NewVec3(0.55, 0, 1.2), "")
	names := []string{"Left Index Proximal", "Left Index Intermediate", "Left Index Distal", "Left Index Terminal"}
	for i, name := range names {
		x := 0.55 + float64(i)*0.02
		appendJoint(t, skeleton, name, mmath.NewVec3(x, 0, 1.2), mmath.NewVec3(x+0.02, 0, 1.2), "Left hand")
	}

	shiftWuwaFingerChains(skeleton)

	for _, name := range []string{"Left Index", "Left Index Proximal", "Left Index Intermediate", "Left Index Distal"} {
		if !skeleton.ContainsName(name) {
			t.Fatalf("missing joint after shift: %s", name)
		}
	}
	if skeleton.ContainsName("Left Index Terminal") {
		t.Fatalf("terminal segment should be renamed away")
	}
}

func TestCreateEyeJointsFromMeshes(t *testing.T) {
	data := model.NewModel("test")
	appendJoint(t, data.Skeleton, "Head", mmath.NewVec3(0, 0, 1.5), mmath.NewVec3(0, 0, 1.6), "")
	mesh := &model.Mesh{Name: "Left Eye"}
	mesh.Vertices = []*model.Vertex{
		{Position: mmath.NewVec3(0.02, -0.06, 1.54)},
		{Position: mmath.NewVec3(0.04, -0.06, 1.56)},
	}
	if err := data.Meshes.Append(mesh); err != nil {
		t.Fatalf("append mesh failed: %v", err)
	}

	createEyeJointsFromMeshes(data, []jointPair{
		{source: "Left Eye", target: "Left Eye"},
		{source: "Right Eye", target: "Right Eye"},
	})

	eye, ok := data.Skeleton.GetByName("Left Eye")
	if !ok {
		t.Fatalf("eye joint missing")
	}
	if !eye.Head.NearEquals(mmath.NewVec3(0.03, -0.03, 1.55), 1e-9) {
		t.Fatalf("eye head mismatch: %+v", eye.Head)
	}
	if !eye.Tail.NearEquals(mmath.NewVec3(0.03, -0.03, 1.6), 1e-9) {
		t.Fatalf("eye tail mismatch: %+v", eye.Tail)
	}
	if eye.ParentName != "Head" {
		t.Fatalf("eye parent mismatch: %s", eye.ParentName)
	}
	for _, vertex := range mesh.Vertices {
		if vertex.WeightFor("Left Eye") != 1.0 {
			t.Fatalf("eye vertices should be fully weighted")
		}
	}
	if !hasWarning(data, model.ConversionWarningEyeMeshMissing) {
		t.Fatalf("missing eye mesh should be reported: %v", data.Warnings)
	}
}

func TestMergeJointReparentsChildren(t *testing.T) {
	skeleton := model.NewSkeleton()
	appendJoint(t, skeleton, "Hips", mmath.NewVec3(0, 0, 1), mmath.NewVec3(0, 0, 1.1), "")
	appendJoint(t, skeleton, "Waist", mmath.NewVec3(0, 0, 1.05), mmath.NewVec3(0, 0, 1.1), "Hips")
	appendJoint(t, skeleton, "Spine", mmath.NewVec3(0, 0, 1.1), mmath.NewVec3(0, 0, 1.2), "Waist")

	mergeJoint(skeleton, "Waist")

	if skeleton.ContainsName("Waist") {
		t.Fatalf("merged joint should be removed")
	}
	spine, _ := skeleton.GetByName("Spine")
	if spine.ParentName != "Hips" {
		t.Fatalf("child should inherit merged joint parent: %s", spine.ParentName)
	}
}

func TestMoveModelToGroundLiftsBodyBelowGround(t *testing.T) {
	data := model.NewModel("test")
	appendJoint(t, data.Skeleton, "Hips", mmath.NewVec3(0, 0, 0.95), mmath.NewVec3(0, 0, 1.05), "")
	body := &model.Mesh{Name: "Body"}
	body.Vertices = []*model.Vertex{
		{Position: mmath.NewVec3(0, 0, -0.05)},
		{Position: mmath.NewVec3(0, 0, 1.5)},
	}
	if err := data.Meshes.Append(body); err != nil {
		t.Fatalf("append mesh failed: %v", err)
	}

	moveModelToGround(data)

	if !body.Vertices[0].Position.NearEquals(mmath.NewVec3(0, 0, 0), 1e-9) {
		t.Fatalf("lowest vertex should rest on the ground: %+v", body.Vertices[0].Position)
	}
	hips, _ := data.Skeleton.GetByName("Hips")
	if !hips.Head.NearEquals(mmath.NewVec3(0, 0, 1.0), 1e-9) {
		t.Fatalf("joints should lift with the mesh: %+v", hips.Head)
	}
}

func TestMoveModelToGroundKeepsModelAboveGround(t *testing.T) {
	data := model.NewModel("test")
	body := &model.Mesh{Name: "Body"}
	body.Vertices = []*model.Vertex{{Position: mmath.NewVec3(0, 0, 0.02)}}
	if err := data.Meshes.Append(body); err != nil {
		t.Fatalf("append mesh failed: %v", err)
	}

	moveModelToGround(data)

	if !body.Vertices[0].Position.NearEquals(mmath.NewVec3(0, 0, 0.02), 1e-9) {
		t.Fatalf("grounded model must not move: %+v", body.Vertices[0].Position)
	}
}

func TestAttachJointsBySubstring(t *testing.T) {
	skeleton := model.NewSkeleton()
	appendJoint(t, skeleton, "Left Lower Leg", mmath.NewVec3(-0.1, 0, 0.5), mmath.NewVec3(-0.1, 0, 0.2), "")
	appendJoint(t, skeleton, "Left Foot", mmath.NewVec3(-0.1, 0.02, 0.1), mmath.NewVec3(-0.1, -0.1, 0.05), "Left Lower Leg")

	attachJointsBySubstring(skeleton, "Left Lower Leg", "Left Foot")

	leg, _ := skeleton.GetByName("Left Lower Leg")
	foot, _ := skeleton.GetByName("Left Foot")
	if !leg.Tail.NearEquals(foot.Head, 1e-9) {
		t.Fatalf("leg tail should meet the foot head: %+v", leg.Tail)
	}
}

func TestAttachJointsBySubstringMissingJoint(t *testing.T) {
	skeleton := model.NewSkeleton()
	appendJoint(t, skeleton, "Left Lower Leg", mmath.NewVec3(-0.1, 0, 0.5), mmath.NewVec3(-0.1, 0, 0.2), "")

	attachJointsBySubstring(skeleton, "Left Lower Leg", "Left Foot")

	leg, _ := skeleton.GetByName("Left Lower Leg")
	if !leg.Tail.NearEquals(mmath.NewVec3(-0.1, 0, 0.2), 1e-9) {
		t.Fatalf("missing partner must leave the source untouched: %+v", leg.Tail)
	}
}

func TestAttachEyeJoint(t *testing.T) {
	skeleton := model.NewSkeleton()
	appendJoint(t, skeleton, "Head", mmath.NewVec3(0, 0, 1.5), mmath.NewVec3(0, 0, 1.6), "")
	appendJoint(t, skeleton, "Left Eye", mmath.NewVec3(0.03, -0.05, 1.52), mmath.NewVec3(0.1, 0.1, 1.52), "Head")

	attachEyeJoint(skeleton, "Left Eye", "Head")

	eye, _ := skeleton.GetByName("Left Eye")
	if !eye.Tail.NearEquals(mmath.NewVec3(0.03, -0.05, 1.62), 1e-9) {
		t.Fatalf("eye tail mismatch: %+v", eye.Tail)
	}
}

func TestAdjustLegJointsPullsKneesForward(t *testing.T) {
	skeleton := model.NewSkeleton()
	appendJoint(t, skeleton, "Left Upper Leg", mmath.NewVec3(-0.1, 0, 0.9), mmath.NewVec3(-0.1, 0, 0.5), "")
	appendJoint(t, skeleton, "Left Lower Leg", mmath.NewVec3(-0.1, 0, 0.5), mmath.NewVec3(-0.1, 0, 0.1), "Left Upper Leg")

	adjustLegJoints(skeleton)

	leg, _ := skeleton.GetByName("Left Upper Leg")
	knee, _ := skeleton.GetByName("Left Lower Leg")
	if !leg.Tail.NearEquals(mmath.NewVec3(-0.1, -0.015, 0.5), 1e-9) {
		t.Fatalf("leg tail mismatch: %+v", leg.Tail)
	}
	if !knee.Head.NearEquals(mmath.NewVec3(-0.1, -0.015, 0.5), 1e-9) {
		t.Fatalf("knee head mismatch: %+v", knee.Head)
	}
}

func TestStraightenHeadRaisesDroppedTail(t *testing.T) {
	skeleton := model.NewSkeleton()
	appendJoint(t, skeleton, "Head", mmath.NewVec3(0.02, 0.01, 1.5), mmath.NewVec3(0.05, 0.05, 1.45), "")

	straightenHead(skeleton)

	head, _ := skeleton.GetByName("Head")
	if !head.Tail.NearEquals(mmath.NewVec3(0.02, 0.01, 1.6), 1e-9) {
		t.Fatalf("head tail mismatch: %+v", head.Tail)
	}
}
