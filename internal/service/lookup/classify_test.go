package lookup

import (
	"testing"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  domain.QueryKind
	}{
		{"run", domain.QueryKindWord},
		{"  run\t", domain.QueryKindWord},
		{"don't", domain.QueryKindWord},
		{"rock’n’roll", domain.QueryKindWord},
		{"well-being", domain.QueryKindWord},
		{"café", domain.QueryKindWord},
		{"mp3", domain.QueryKindWord},
		{"give up", domain.QueryKindPhrase},
		{"break the ice", domain.QueryKindPhrase},
		{"hello!", domain.QueryKindPhrase},
		{"what?", domain.QueryKindPhrase},
		{"123", domain.QueryKindPhrase},
		{"--", domain.QueryKindPhrase},
		{"", domain.QueryKindPhrase},
		{"   ", domain.QueryKindPhrase},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.query); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.query, got, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"run", "give up", "x-ray"} {
		if Classify(q) != Classify(q) {
			t.Errorf("Classify(%q) is not stable", q)
		}
	}
}
