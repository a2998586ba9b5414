// 指示: miu200521358
package glb

import "github.com/qmuntal/gltf"

// mat4 はglTF準拠の列優先4x4行列を表す。
type mat4 [16]float64

// identityMat4 は単位行列を返す。
func identityMat4() mat4 {
	return mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// muled は行列積 m*other を返す。
func (m mat4) muled(other mat4) mat4 {
	var result mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			result[col*4+row] = sum
		}
	}
	return result
}

// translation は平行移動成分を返す。
func (m mat4) translation() [3]float64 {
	return [3]float64{m[12], m[13], m[14]}
}

// nodeLocalMatrix はnode要素からローカル行列を生成する。
// matrixが未指定(零行列)のときはTRS合成へ代替する。
func nodeLocalMatrix(node *gltf.Node) mat4 {
	if !isZeroMatrix(node.Matrix) && !isIdentityMatrix(node.Matrix) {
		var m mat4
		copy(m[:], node.Matrix[:])
		return m
	}
	return trsMatrix(node.Translation, normalizedRotation(node.Rotation), normalizedScale(node.Scale))
}

// isZeroMatrix は全要素ゼロの行列かを判定する。
func isZeroMatrix(values [16]float64) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}

// isIdentityMatrix は単位行列かを判定する。
func isIdentityMatrix(values [16]float64) bool {
	identity := identityMat4()
	for i, v := range values {
		if v != identity[i] {
			return false
		}
	}
	return true
}

// normalizedRotation は未指定(零値)の回転を単位クォータニオンへ補正する。
func normalizedRotation(rotation [4]float64) [4]float64 {
	if rotation[0] == 0 && rotation[1] == 0 && rotation[2] == 0 && rotation[3] == 0 {
		return [4]float64{0, 0, 0, 1}
	}
	return rotation
}

// normalizedScale は未指定(零値)の拡縮を等倍へ補正する。
func normalizedScale(scale [3]float64) [3]float64 {
	if scale[0] == 0 && scale[1] == 0 && scale[2] == 0 {
		return [3]float64{1, 1, 1}
	}
	return scale
}

// trsMatrix は平行移動・回転・拡縮からローカル行列を合成する。
func trsMatrix(translation [3]float64, rotation [4]float64, scale [3]float64) mat4 {
	x, y, z, w := rotation[0], rotation[1], rotation[2], rotation[3]

	rot := identityMat4()
	rot[0] = 1 - 2*(y*y+z*z)
	rot[1] = 2 * (x*y + z*w)
	rot[2] = 2 * (x*z - y*w)
	rot[4] = 2 * (x*y - z*w)
	rot[5] = 1 - 2*(x*x+z*z)
	rot[6] = 2 * (y*z + x*w)
	rot[8] = 2 * (x*z + y*w)
	rot[9] = 2 * (y*z - x*w)
	rot[10] = 1 - 2*(x*x+y*y)

	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			rot[col*4+row] *= scale[col]
		}
	}
	rot[12] = translation[0]
	rot[13] = translation[1]
	rot[14] = translation[2]
	return rot
}
