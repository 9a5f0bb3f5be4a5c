package noise

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// source2 — базовый источник 2D шума со значениями примерно в [-1, 1]
type source2 interface {
	Eval2(x, y float64) float64
}

// perlinSource адаптирует шум Перлина к общему интерфейсу источника
type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) Eval2(x, y float64) float64 {
	return s.p.Noise2D(x, y)
}

// Параметры шума Перлина, как в базовой инициализации генератора
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
)

// Noise2D — детерминированный фрактальный 2D шум (FBM или ridged).
// Именуется парой (seed мира, соль): одинаковый seed и координата
// дают одно и то же значение на любой платформе.
type Noise2D struct {
	src        source2
	freq       float64 // Базовая частота (масштаб координат)
	octaves    int     // Количество октав
	lacunarity float64 // Множитель частоты между октавами
	gain       float64 // Множитель амплитуды между октавами
	ridged     bool    // Ridged-вариант: 1 - 2*|fbm|
}

// newPerlin2 создает FBM шум на базе Перлина (как в генераторе ландшафта)
func newPerlin2(seed, salt int64, freq float64, octaves int, lacunarity, gain float64) *Noise2D {
	return &Noise2D{
		src:        perlinSource{p: perlin.NewPerlin(perlinAlpha, perlinBeta, 1, seed+salt)},
		freq:       freq,
		octaves:    octaves,
		lacunarity: lacunarity,
		gain:       gain,
	}
}

// newSimplex2 создает FBM шум на базе OpenSimplex (более резкие гребни)
func newSimplex2(seed, salt int64, freq float64, octaves int, lacunarity, gain float64, ridged bool) *Noise2D {
	return &Noise2D{
		src:        opensimplex.New(seed + salt),
		freq:       freq,
		octaves:    octaves,
		lacunarity: lacunarity,
		gain:       gain,
		ridged:     ridged,
	}
}

// Sample возвращает значение шума в точке, нормированное примерно в [-1, 1].
// Сумма октав делится на суммарную амплитуду, чтобы диапазон не рос с октавами.
func (n *Noise2D) Sample(x, z float64) float64 {
	freq := n.freq
	amp := 1.0
	sum := 0.0
	maxAmp := 0.0

	for i := 0; i < n.octaves; i++ {
		sum += n.src.Eval2(x*freq, z*freq) * amp
		maxAmp += amp
		freq *= n.lacunarity
		amp *= n.gain
	}

	v := sum / maxAmp
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	if n.ridged {
		// Ridged: абсолютное значение переворачивается, гребень в нуле шума
		if v < 0 {
			v = -v
		}
		return 1 - 2*v
	}
	return v
}

// Noise3D — детерминированный фрактальный 3D шум на базе OpenSimplex
type Noise3D struct {
	src        opensimplex.Noise
	freq       float64
	octaves    int
	lacunarity float64
	gain       float64
}

func newSimplex3(seed, salt int64, freq float64, octaves int, lacunarity, gain float64) *Noise3D {
	return &Noise3D{
		src:        opensimplex.New(seed + salt),
		freq:       freq,
		octaves:    octaves,
		lacunarity: lacunarity,
		gain:       gain,
	}
}

// Sample возвращает значение 3D шума в точке, нормированное примерно в [-1, 1]
func (n *Noise3D) Sample(x, y, z float64) float64 {
	freq := n.freq
	amp := 1.0
	sum := 0.0
	maxAmp := 0.0

	for i := 0; i < n.octaves; i++ {
		sum += n.src.Eval3(x*freq, y*freq, z*freq) * amp
		maxAmp += amp
		freq *= n.lacunarity
		amp *= n.gain
	}

	v := sum / maxAmp
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return v
}
