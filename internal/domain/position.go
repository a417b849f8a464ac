package domain

// Position — целочисленная позиция на сетке мира.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift возвращает новую позицию со смещением (не меняя текущую, т.к. Go
// передает структуры по значению, если не указатель)
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Metric — способ измерения дистанции между клетками.
type Metric uint8

const (
	// MetricManhattan — |dx| + |dy| (движение без диагоналей).
	MetricManhattan Metric = iota
	// MetricChessboard — max(|dx|, |dy|) (ход короля).
	MetricChessboard
)

var metricToString = map[Metric]string{
	MetricManhattan:  "MANHATTAN",
	MetricChessboard: "CHESSBOARD",
}

// String возвращает строковое представление (для логов и дебага)
func (m Metric) String() string {
	if val, ok := metricToString[m]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseMetric конвертирует строку в Metric (нужно для загрузки шаблонов/конфигов)
func ParseMetric(s string) Metric {
	switch s {
	case "manhattan", "MANHATTAN":
		return MetricManhattan
	case "chessboard", "CHESSBOARD":
		return MetricChessboard
	}
	return MetricManhattan
}

// DistanceManhattan возвращает манхэттенское расстояние до другой точки.
func (p Position) DistanceManhattan(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// DistanceChessboard возвращает шахматное расстояние (метрика Чебышёва).
func (p Position) DistanceChessboard(other Position) int {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Distance возвращает расстояние до другой точки в выбранной метрике.
func (p Position) Distance(other Position, m Metric) int {
	if m == MetricChessboard {
		return p.DistanceChessboard(other)
	}
	return p.DistanceManhattan(other)
}

// Within проверяет, находится ли другая точка в радиусе maxDistance.
func (p Position) Within(other Position, maxDistance int, m Metric) bool {
	return p.Distance(other, m) <= maxDistance
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
