// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над стандартным генератором случайных чисел Go,
// чтобы разброс параметров частиц можно было воспроизвести по сиду.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Spread возвращает base, равномерно сдвинутое не больше чем на ±spread.
func (s *PRNGService) Spread(base, spread float64) float64 {
	if spread == 0 {
		return base
	}
	return base + (s.rng.Float64()*2-1)*spread
}

// Upto возвращает base, равномерно увеличенное не больше чем на extra.
func (s *PRNGService) Upto(base, extra float64) float64 {
	return base + s.rng.Float64()*extra
}
