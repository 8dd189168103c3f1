package sabermetrics

import "testing"

func TestBattingAverage(t *testing.T) {
	t.Run("rounds to three decimals", func(t *testing.T) {
		got := BattingAverage(3, 10)
		if got == nil || *got != 0.300 {
			t.Fatalf("unexpected average: got=%v want=0.300", deref(got))
		}
	})

	t.Run("repeating decimal", func(t *testing.T) {
		got := BattingAverage(1, 3)
		if got == nil || *got != 0.333 {
			t.Fatalf("unexpected average: got=%v want=0.333", deref(got))
		}
	})

	t.Run("zero at-bats is undefined", func(t *testing.T) {
		if got := BattingAverage(0, 0); got != nil {
			t.Fatalf("expected undefined, got %v", *got)
		}
	})
}

func TestOnBasePct(t *testing.T) {
	got := OnBasePct(3, 2, 1, 10, 1)
	// (3+2+1)/(10+2+1+1) = 6/14
	if got == nil || *got != 0.429 {
		t.Fatalf("unexpected obp: got=%v want=0.429", deref(got))
	}

	if got := OnBasePct(0, 0, 0, 0, 0); got != nil {
		t.Fatalf("expected undefined obp, got %v", *got)
	}
}

func TestSluggingPct(t *testing.T) {
	// 3 hits: 1 HR, 1 double, 1 single -> (3-1) + 2 + 4 = 8 total bases
	got := SluggingPct(3, 1, 0, 1, 10)
	if got == nil || *got != 0.800 {
		t.Fatalf("unexpected slg: got=%v want=0.800", deref(got))
	}

	if got := SluggingPct(0, 0, 0, 0, 0); got != nil {
		t.Fatalf("expected undefined slg, got %v", *got)
	}
}

func TestIsolatedPowerIsSluggingMinusAverage(t *testing.T) {
	hits, doubles, triples, homeRuns, atBats := 3, 1, 0, 1, 10

	iso := IsolatedPower(hits, doubles, triples, homeRuns, atBats)
	slg := SluggingPct(hits, doubles, triples, homeRuns, atBats)
	avg := BattingAverage(hits, atBats)

	if iso == nil || slg == nil || avg == nil {
		t.Fatal("expected defined values")
	}
	if *iso != *slg-*avg {
		t.Fatalf("iso mismatch: got=%v want=%v", *iso, *slg-*avg)
	}

	if got := IsolatedPower(0, 0, 0, 0, 0); got != nil {
		t.Fatalf("expected undefined iso, got %v", *got)
	}
}

func TestBABIP(t *testing.T) {
	// (3-1)/(10-2-1+1) = 2/8
	got := BABIP(3, 1, 10, 2, 1)
	if got == nil || *got != 0.250 {
		t.Fatalf("unexpected babip: got=%v want=0.250", deref(got))
	}

	// denominator collapses to zero: AB==SO+HR-SF
	if got := BABIP(3, 1, 3, 2, 0); got != nil {
		t.Fatalf("expected undefined babip, got %v", *got)
	}
}

func TestInningsPitched(t *testing.T) {
	cases := []struct {
		outs int
		want float64
	}{
		{outs: 10, want: 3.3},
		{outs: 11, want: 3.7},
		{outs: 3, want: 1.0},
		{outs: 0, want: 0.0},
	}
	for _, tc := range cases {
		if got := InningsPitched(tc.outs); got != tc.want {
			t.Fatalf("innings for %d outs: got=%v want=%v", tc.outs, got, tc.want)
		}
	}
}

func TestWHIPUsesRoundedInnings(t *testing.T) {
	// 10 outs -> 3.3 innings (not 3.333...). (7+4)/3.3 = 3.3333 -> 3.333
	got := WHIP(7, 4, 10)
	if got == nil || *got != 3.333 {
		t.Fatalf("unexpected whip: got=%v want=3.333", deref(got))
	}

	if got := WHIP(5, 2, 0); got != nil {
		t.Fatalf("expected undefined whip with no outs, got %v", *got)
	}
}

func TestFieldingPct(t *testing.T) {
	if got := FieldingPct(80, 20, 5); got != 0.952 {
		t.Fatalf("unexpected fielding pct: got=%v want=0.952", got)
	}

	// No chances reports zero, not undefined.
	if got := FieldingPct(0, 0, 0); got != 0 {
		t.Fatalf("expected zero fielding pct, got %v", got)
	}
}

func TestPutoutsPerGame(t *testing.T) {
	got := PutoutsPerGame(100, 30)
	if got == nil || *got != 3.33 {
		t.Fatalf("unexpected po/g: got=%v want=3.33", deref(got))
	}

	if got := PutoutsPerGame(5, 0); got != nil {
		t.Fatalf("expected undefined po/g, got %v", *got)
	}
}

func deref(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
