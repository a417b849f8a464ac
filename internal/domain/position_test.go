package domain

import "testing"

func TestPosition_Shift(t *testing.T) {
	p := Position{X: 2, Y: 3}
	shifted := p.Shift(-1, 4)

	if shifted.X != 1 || shifted.Y != 7 {
		t.Errorf("Shift mismatch: %+v", shifted)
	}
	// Исходная позиция не мутирует (передача по значению).
	if p.X != 2 || p.Y != 3 {
		t.Errorf("Original position mutated: %+v", p)
	}
}

func TestPosition_Distances(t *testing.T) {
	origin := Position{}

	cases := []struct {
		name      string
		p         Position
		manhattan int
		chess     int
	}{
		{"diagonal", Position{X: 1, Y: 1}, 2, 1},
		{"knight", Position{X: 2, Y: 1}, 3, 2},
		{"axis", Position{X: 2, Y: 0}, 2, 2},
		{"negative", Position{X: -3, Y: 2}, 5, 3},
		{"same", Position{}, 0, 0},
	}

	for _, tc := range cases {
		if got := origin.DistanceManhattan(tc.p); got != tc.manhattan {
			t.Errorf("%s: manhattan got %d, want %d", tc.name, got, tc.manhattan)
		}
		if got := origin.DistanceChessboard(tc.p); got != tc.chess {
			t.Errorf("%s: chessboard got %d, want %d", tc.name, got, tc.chess)
		}
	}
}

func TestPosition_Within(t *testing.T) {
	origin := Position{}

	if !origin.Within(Position{X: 1, Y: 1}, 2, MetricManhattan) {
		t.Error("(1,1) is within manhattan 2")
	}
	if origin.Within(Position{X: 2, Y: 1}, 2, MetricManhattan) {
		t.Error("(2,1) is outside manhattan 2")
	}
	if !origin.Within(Position{X: 1, Y: 1}, 1, MetricChessboard) {
		t.Error("(1,1) is within chessboard 1")
	}
	if origin.Within(Position{X: 2, Y: 0}, 1, MetricChessboard) {
		t.Error("(2,0) is outside chessboard 1")
	}
}

func TestParseMetric(t *testing.T) {
	if ParseMetric("chessboard") != MetricChessboard {
		t.Error("chessboard did not parse")
	}
	if ParseMetric("manhattan") != MetricManhattan {
		t.Error("manhattan did not parse")
	}
	// Неизвестная метрика — манхэттенская по умолчанию.
	if ParseMetric("euclid") != MetricManhattan {
		t.Error("Unknown metric must default to manhattan")
	}
}
