package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Детерминизм: два набора с одним зерном дают одинаковые значения
func TestSetDeterministic(t *testing.T) {
	a := NewSet(42)
	b := NewSet(42)

	points := [][2]float64{{0, 0}, {17.3, -256.8}, {1024, 1024}, {-3.5, 0.25}}
	for _, p := range points {
		assert.Equal(t, a.Continental.Sample(p[0], p[1]), b.Continental.Sample(p[0], p[1]),
			"Континентальность обязана совпадать в (%v,%v)", p[0], p[1])
		assert.Equal(t, a.Erosion.Sample(p[0], p[1]), b.Erosion.Sample(p[0], p[1]))
		assert.Equal(t, a.PeaksValleys.Sample(p[0], p[1]), b.PeaksValleys.Sample(p[0], p[1]))
		assert.Equal(t, a.Cave1.Sample(p[0], 33, p[1]), b.Cave1.Sample(p[0], 33, p[1]),
			"3D шум пещер обязан совпадать")
	}
}

// Разные зерна дают разные поля
func TestSetSeedVariation(t *testing.T) {
	a := NewSet(1)
	b := NewSet(2)

	same := 0
	total := 0
	for x := 0.0; x < 500; x += 37.0 {
		for z := 0.0; z < 500; z += 41.0 {
			if a.Continental.Sample(x, z) == b.Continental.Sample(x, z) {
				same++
			}
			total++
		}
	}
	assert.Less(t, same, total/2, "Поля разных зерен не должны совпадать")
}

// Соли разводят шумы одного зерна: континентальность и эрозия независимы
func TestSetSaltSeparation(t *testing.T) {
	s := NewSet(7)
	same := 0
	total := 0
	for x := 10.0; x < 400; x += 23.0 {
		for z := 10.0; z < 400; z += 29.0 {
			if s.Continental.Sample(x, z) == s.Erosion.Sample(x, z) {
				same++
			}
			total++
		}
	}
	assert.Less(t, same, total/2, "Шумы с разными солями обязаны отличаться")
}

// Диапазон значений: FBM нормирован в [-1,1]
func TestSampleRange(t *testing.T) {
	s := NewSet(99)
	for x := -300.0; x < 300; x += 13.7 {
		for z := -300.0; z < 300; z += 17.3 {
			v := s.Continental.Sample(x, z)
			require.GreaterOrEqual(t, v, -1.0, "Значение ниже диапазона в (%v,%v)", x, z)
			require.LessOrEqual(t, v, 1.0, "Значение выше диапазона в (%v,%v)", x, z)

			r := s.PeaksValleys.Sample(x, z)
			require.GreaterOrEqual(t, r, -1.0)
			require.LessOrEqual(t, r, 1.0)
		}
	}
}

// Ridged-шум достигает высоких значений у нулевых поверхностей базового
func TestRidgedShape(t *testing.T) {
	s := NewSet(5)
	max := -2.0
	for x := 0.0; x < 2000; x += 11.0 {
		if v := s.River.Sample(x, x*0.7); v > max {
			max = v
		}
	}
	assert.Greater(t, max, 0.5, "Ridged-шум должен давать выраженные гребни")
}

// 3D шум детерминирован и меняется по вертикали
func TestNoise3D(t *testing.T) {
	s := NewSet(11)
	v1 := s.Cave1.Sample(100, 20, 100)
	v2 := s.Cave1.Sample(100, 21, 100)
	assert.Equal(t, v1, s.Cave1.Sample(100, 20, 100), "Повторный вызов совпадает")
	assert.NotEqual(t, v1, v2, "Шум обязан меняться по Y")
}
