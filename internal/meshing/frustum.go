package meshing

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Frustum — шесть плоскостей пирамиды видимости в world-space.
// Плоскости хранятся как (a,b,c,d): ax+by+cz+d ≥ 0 внутри объема.
type Frustum struct {
	planes [6]mgl32.Vec4
}

// FrustumFromMatrix извлекает плоскости из матрицы proj*view
// методом Грибба-Хартманна
func FrustumFromMatrix(m mgl32.Mat4) Frustum {
	var f Frustum
	// Строки матрицы (mgl32 хранит по столбцам)
	row := func(i int) mgl32.Vec4 {
		return mgl32.Vec4{m.At(i, 0), m.At(i, 1), m.At(i, 2), m.At(i, 3)}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	f.planes[0] = r3.Add(r0) // левая
	f.planes[1] = r3.Sub(r0) // правая
	f.planes[2] = r3.Add(r1) // нижняя
	f.planes[3] = r3.Sub(r1) // верхняя
	f.planes[4] = r3.Add(r2) // ближняя
	f.planes[5] = r3.Sub(r2) // дальняя

	for i := range f.planes {
		n := mgl32.Vec3{f.planes[i].X(), f.planes[i].Y(), f.planes[i].Z()}
		if l := n.Len(); l > 0 {
			f.planes[i] = f.planes[i].Mul(1.0 / l)
		}
	}
	return f
}

// IntersectsAABB сообщает, пересекает ли параллелепипед объем видимости.
// Консервативный тест по положительной вершине: ложные срабатывания
// на углах возможны, ложные отсечения — нет.
func (f *Frustum) IntersectsAABB(min, max mgl32.Vec3) bool {
	for _, p := range f.planes {
		// Дальняя по нормали вершина бокса
		v := mgl32.Vec3{min.X(), min.Y(), min.Z()}
		if p.X() >= 0 {
			v[0] = max.X()
		}
		if p.Y() >= 0 {
			v[1] = max.Y()
		}
		if p.Z() >= 0 {
			v[2] = max.Z()
		}
		if p.X()*v.X()+p.Y()*v.Y()+p.Z()*v.Z()+p.W() < 0 {
			return false
		}
	}
	return true
}
