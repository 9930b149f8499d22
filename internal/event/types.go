// internal/event/types.go
package event

const (
	BurstEmitted   EventType = "BurstEmitted"   // эмиттер добавлен на поверхность
	BurstExhausted EventType = "BurstExhausted" // анимация birthRate закончилась
	LayerDrained   EventType = "LayerDrained"   // все частицы истекли, слой снят
)
