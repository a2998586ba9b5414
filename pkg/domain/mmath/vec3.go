// 指示: miu200521358
// Package mmath はモデル変換用の数値計算型を提供する。
package mmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 は3次元ベクトルを表す。
type Vec3 struct {
	r3.Vec
}

// NewVec3 は成分を指定してVec3を生成する。
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// Added は加算結果を返す。
func (v Vec3) Added(other Vec3) Vec3 {
	return Vec3{Vec: r3.Add(v.Vec, other.Vec)}
}

// Subed は減算結果を返す。
func (v Vec3) Subed(other Vec3) Vec3 {
	return Vec3{Vec: r3.Sub(v.Vec, other.Vec)}
}

// MuledScalar はスカラー倍の結果を返す。
func (v Vec3) MuledScalar(scale float64) Vec3 {
	return Vec3{Vec: r3.Scale(scale, v.Vec)}
}

// Length はベクトル長を返す。
func (v Vec3) Length() float64 {
	return r3.Norm(v.Vec)
}

// Distance は2点間距離を返す。
func (v Vec3) Distance(other Vec3) float64 {
	return r3.Norm(r3.Sub(v.Vec, other.Vec))
}

// Cross は外積を返す。
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{Vec: r3.Cross(v.Vec, other.Vec)}
}

// Dot は内積を返す。
func (v Vec3) Dot(other Vec3) float64 {
	return r3.Dot(v.Vec, other.Vec)
}

// NearEquals は許容誤差内で一致するか判定する。
func (v Vec3) NearEquals(other Vec3, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon
}

// MirroredX はX軸反転した結果を返す。
func (v Vec3) MirroredX() Vec3 {
	return Vec3{Vec: r3.Vec{X: -v.X, Y: v.Y, Z: v.Z}}
}

// MeanVec3 は複数点の平均位置を返す。
func MeanVec3(positions ...Vec3) Vec3 {
	if len(positions) == 0 {
		return Vec3{}
	}
	sum := r3.Vec{}
	for _, position := range positions {
		sum = r3.Add(sum, position.Vec)
	}
	return Vec3{Vec: r3.Scale(1.0/float64(len(positions)), sum)}
}
