// 指示: miu200521358
package glb

import (
	"encoding/json"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/mmath"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/usecase/port/moutput"
)

func buildRoundTripModel(t *testing.T) *model.Model {
	t.Helper()
	data := model.NewModel("sample")

	joints := []struct {
		name   string
		head   mmath.Vec3
		tail   mmath.Vec3
		parent string
	}{
		{"Hips", mmath.NewVec3(0, 0, 1), mmath.NewVec3(0, 0, 1.2), ""},
		{"Spine", mmath.NewVec3(0, 0, 1.2), mmath.NewVec3(0, 0, 1.5), "Hips"},
		{"Head", mmath.NewVec3(0, 0.05, 1.5), mmath.NewVec3(0, 0.05, 1.6), "Spine"},
	}
	for _, entry := range joints {
		joint := model.NewJoint(entry.name, entry.head, entry.tail)
		joint.ParentName = entry.parent
		if err := data.Skeleton.Append(joint); err != nil {
			t.Fatalf("append joint failed: %v", err)
		}
	}

	body := &model.Mesh{Name: "Body", MaterialName: "BodyMat"}
	first := &model.Vertex{
		Position: mmath.NewVec3(0.1, 0.2, 0.3),
		UV:       [2]float64{0.5, 0.25},
		UV2:      [2]float64{128, 64},
	}
	first.SetWeight("Hips", 0.75)
	first.SetWeight("Spine", 0.25)
	second := &model.Vertex{Position: mmath.NewVec3(0, 0, 1.5)}
	second.SetWeight("Spine", 1.0)
	body.Vertices = []*model.Vertex{first, second}
	body.ShapeKeys = []*model.ShapeKey{{
		Name:    "A",
		Offsets: []mmath.Vec3{mmath.NewVec3(0, 0, 0.01), mmath.NewVec3(0, 0, 0.02)},
	}}
	if err := data.Meshes.Append(body); err != nil {
		t.Fatalf("append mesh failed: %v", err)
	}
	return data
}

func nearVec3(a, b mmath.Vec3) bool {
	return a.NearEquals(b, 1e-5)
}

func TestGlbRoundTrip(t *testing.T) {
	repo := NewGlbRepository()
	data := buildRoundTripModel(t)
	path := filepath.Join(t.TempDir(), "sample.glb")

	if err := repo.Save(path, data, moutput.SaveOptions{}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := repo.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Name != "sample" {
		t.Fatalf("model name mismatch: %s", loaded.Name)
	}
	if loaded.Skeleton.Len() != 3 {
		t.Fatalf("joint count mismatch: %d", loaded.Skeleton.Len())
	}
	hips, ok := loaded.Skeleton.GetByName("Hips")
	if !ok {
		t.Fatalf("Hips joint missing")
	}
	if hips.ParentName != "" {
		t.Fatalf("Hips should stay a root: %s", hips.ParentName)
	}
	if !nearVec3(hips.Head, mmath.NewVec3(0, 0, 1)) {
		t.Fatalf("hips head mismatch: %+v", hips.Head)
	}
	spine, _ := loaded.Skeleton.GetByName("Spine")
	if spine == nil || spine.ParentName != "Hips" {
		t.Fatalf("spine parent mismatch")
	}
	if !nearVec3(spine.Head, mmath.NewVec3(0, 0, 1.2)) {
		t.Fatalf("spine head mismatch: %+v", spine.Head)
	}
	head, _ := loaded.Skeleton.GetByName("Head")
	if head == nil || head.ParentName != "Spine" {
		t.Fatalf("head parent mismatch")
	}
	if !nearVec3(head.Head, mmath.NewVec3(0, 0.05, 1.5)) {
		t.Fatalf("head position mismatch: %+v", head.Head)
	}
	// 親ジョイントの終点は子ジョイントの始点で再構成される。
	if !nearVec3(hips.Tail, spine.Head) {
		t.Fatalf("hips tail should point at the spine head: %+v", hips.Tail)
	}

	mesh, ok := loaded.Meshes.GetByName("Body")
	if !ok {
		t.Fatalf("body mesh missing")
	}
	if mesh.MaterialName != "BodyMat" {
		t.Fatalf("material mismatch: %s", mesh.MaterialName)
	}
	if len(mesh.Vertices) != 2 {
		t.Fatalf("vertex count mismatch: %d", len(mesh.Vertices))
	}
	if !nearVec3(mesh.Vertices[0].Position, mmath.NewVec3(0.1, 0.2, 0.3)) {
		t.Fatalf("vertex position mismatch: %+v", mesh.Vertices[0].Position)
	}
	if math.Abs(mesh.Vertices[0].UV[0]-0.5) > 1e-6 || math.Abs(mesh.Vertices[0].UV[1]-0.25) > 1e-6 {
		t.Fatalf("uv mismatch: %+v", mesh.Vertices[0].UV)
	}
	if mesh.Vertices[0].UV2 != ([2]float64{128, 64}) {
		t.Fatalf("uv2 mismatch: %+v", mesh.Vertices[0].UV2)
	}
	if mesh.Vertices[1].UV2 != ([2]float64{}) {
		t.Fatalf("uv2 should stay zero: %+v", mesh.Vertices[1].UV2)
	}
	if math.Abs(mesh.Vertices[0].WeightFor("Hips")-0.75) > 1e-6 {
		t.Fatalf("weight mismatch: %f", mesh.Vertices[0].WeightFor("Hips"))
	}
	if math.Abs(mesh.Vertices[0].WeightFor("Spine")-0.25) > 1e-6 {
		t.Fatalf("weight mismatch: %f", mesh.Vertices[0].WeightFor("Spine"))
	}
	if math.Abs(mesh.Vertices[1].WeightFor("Spine")-1.0) > 1e-6 {
		t.Fatalf("weight mismatch: %f", mesh.Vertices[1].WeightFor("Spine"))
	}

	key, ok := mesh.ShapeKeyByName("A")
	if !ok {
		t.Fatalf("shape key missing")
	}
	if len(key.Offsets) != 2 {
		t.Fatalf("shape key offset count mismatch: %d", len(key.Offsets))
	}
	if !nearVec3(key.Offsets[1], mmath.NewVec3(0, 0, 0.02)) {
		t.Fatalf("shape key offset mismatch: %+v", key.Offsets[1])
	}
}

func TestGlbSaveWritesWarningsExtras(t *testing.T) {
	repo := NewGlbRepository()
	data := buildRoundTripModel(t)
	data.AddWarning(model.ConversionWarningScaleOutOfRange)
	path := filepath.Join(t.TempDir(), "warned.glb")

	if err := repo.Save(path, data, moutput.SaveOptions{IncludeWarnings: true}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	raw, err := json.Marshal(doc.Extras)
	if err != nil {
		t.Fatalf("extras marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), model.ConversionWarningExtrasKey) {
		t.Fatalf("warnings extras missing: %s", raw)
	}
	if !strings.Contains(string(raw), model.ConversionWarningScaleOutOfRange) {
		t.Fatalf("warning id missing from extras: %s", raw)
	}
}

func TestGlbSaveTruncatesExcessWeights(t *testing.T) {
	repo := NewGlbRepository()
	data := model.NewModel("many_weights")
	names := []string{"Hips", "Spine", "Chest", "Neck", "Head"}
	for i, name := range names {
		joint := model.NewJoint(name,
			mmath.NewVec3(0, 0, float64(i)), mmath.NewVec3(0, 0, float64(i)+0.1))
		if i > 0 {
			joint.ParentName = names[i-1]
		}
		if err := data.Skeleton.Append(joint); err != nil {
			t.Fatalf("append joint failed: %v", err)
		}
	}
	mesh := &model.Mesh{Name: "Body"}
	vertex := &model.Vertex{Position: mmath.NewVec3(0, 0, 0)}
	for _, name := range names {
		vertex.SetWeight(name, 0.2)
	}
	mesh.Vertices = []*model.Vertex{vertex}
	if err := data.Meshes.Append(mesh); err != nil {
		t.Fatalf("append mesh failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "many_weights.glb")

	if err := repo.Save(path, data, moutput.SaveOptions{}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	found := false
	for _, warning := range data.Warnings {
		if warning == model.ConversionWarningWeightsTruncated {
			found = true
		}
	}
	if !found {
		t.Fatalf("truncation warning expected: %v", data.Warnings)
	}

	loaded, err := repo.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	body, _ := loaded.Meshes.GetByName("Body")
	total := 0.0
	groups := 0
	for _, weight := range body.Vertices[0].Weights {
		total += weight
		groups++
	}
	if groups != 4 {
		t.Fatalf("weight groups should cap at 4: %d", groups)
	}
	if math.Abs(total-1.0) > 1e-5 {
		t.Fatalf("weights should renormalize to 1: %f", total)
	}
}

func TestGlbCanLoad(t *testing.T) {
	repo := NewGlbRepository()
	if !repo.CanLoad("model.glb") || !repo.CanLoad("MODEL.GLB") || !repo.CanLoad("model.gltf") {
		t.Fatalf("glb/gltf should be loadable")
	}
	if !repo.CanLoad("model.vrm") {
		t.Fatalf("vrm should be loadable as a glb container")
	}
	if repo.CanLoad("model.fbx") {
		t.Fatalf("fbx must not be loadable")
	}
}

func TestGlbInferName(t *testing.T) {
	repo := NewGlbRepository()
	if got := repo.InferName(filepath.Join("work", "Avatar_Kafka_00.glb")); got != "Avatar_Kafka_00" {
		t.Fatalf("name mismatch: %s", got)
	}
}

func TestGlbSaveRejectsInvalidExtension(t *testing.T) {
	repo := NewGlbRepository()
	data := buildRoundTripModel(t)
	if err := repo.Save(filepath.Join(t.TempDir(), "sample.vrm"), data, moutput.SaveOptions{}); err == nil {
		t.Fatalf("expected extension error")
	}
}

func TestGlbLoadMissingFile(t *testing.T) {
	repo := NewGlbRepository()
	if _, err := repo.Load(filepath.Join(t.TempDir(), "none.glb")); err == nil {
		t.Fatalf("expected missing file error")
	}
}

func TestExpressionPoseName(t *testing.T) {
	cases := []struct {
		clip string
		want string
	}{
		{"Avatar_Emo_Smile", "Smile"},
		{"Avatar_Emo_Smile_01", "Smile_01"},
		{"Avatar_Emo_Smile.001", ""},
		{"Avatar_Walk_Loop", ""},
		{"Emo_Angry", "Emo_Angry"},
	}
	for _, c := range cases {
		if got := expressionPoseName(c.clip); got != c.want {
			t.Fatalf("pose name for %q: got %q, want %q", c.clip, got, c.want)
		}
	}
}
