// internal/assets/textures.go
package assets

import (
	"image"

	"classy-confetti/pkg/confetti"
)

// TextureCache загружает текстуры ячеек в видеопамять один раз и выгружает
// их, когда эмиттер снят со сцены. T — тип текстуры хоста.
//
// Пустая картинка ячейки запоминается как отсутствующая текстура:
// повторно ее не загружают и при выгрузке не освобождают.
type TextureCache[T any] struct {
	upload   func(image.Image) T
	free     func(T)
	textures map[*confetti.Cell]texture[T]
}

type texture[T any] struct {
	tex T
	ok  bool
}

// NewTextureCache создает кэш. upload вызывается для непустых картинок,
// free — для каждой загруженной текстуры при Release.
func NewTextureCache[T any](upload func(image.Image) T, free func(T)) *TextureCache[T] {
	return &TextureCache[T]{
		upload:   upload,
		free:     free,
		textures: make(map[*confetti.Cell]texture[T]),
	}
}

// Get возвращает текстуру ячейки. ok == false, если рисовать нечего.
func (c *TextureCache[T]) Get(cell *confetti.Cell) (T, bool) {
	if t, found := c.textures[cell]; found {
		return t.tex, t.ok
	}
	var t texture[T]
	if cell.Contents != nil && !cell.Contents.Bounds().Empty() {
		t = texture[T]{tex: c.upload(cell.Contents), ok: true}
	}
	c.textures[cell] = t
	return t.tex, t.ok
}

// Release выгружает текстуры всех ячеек e.
func (c *TextureCache[T]) Release(e *confetti.Emitter) {
	for _, cell := range e.Cells {
		t, found := c.textures[cell]
		if !found {
			continue
		}
		if t.ok {
			c.free(t.tex)
		}
		delete(c.textures, cell)
	}
}

// Len — число ячеек в кэше, включая пустые.
func (c *TextureCache[T]) Len() int { return len(c.textures) }
