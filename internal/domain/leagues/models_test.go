package leagues

import "testing"

func TestParseAcceptsCodesAndKeys(t *testing.T) {
	cases := map[string]Code{
		"NHL":   NHL,
		"nhl":   NHL,
		"cfb":   NCAAF,
		"ncaaf": NCAAF,
		" chk ": NCAAH,
		"cbb":   NCAAB,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error %v", in, err)
		}
		if got.Code != want {
			t.Fatalf("Parse(%q) = %s, want %s", in, got.Code, want)
		}
	}

	if _, err := Parse("xfl"); err == nil {
		t.Fatal("expected error for unknown league")
	}
}

func TestScoreboardPath(t *testing.T) {
	l, _ := Lookup(NCAAH)
	if got := l.ScoreboardPath(); got != "hockey/mens-college-hockey/scoreboard" {
		t.Fatalf("unexpected path %s", got)
	}
}

func TestAlertTextBySport(t *testing.T) {
	cases := map[Code]string{
		NHL:   "GOAL!",
		NCAAH: "GOAL!",
		NFL:   "SCORE!",
		NCAAF: "SCORE!",
		MLB:   "RUN SCORED!",
	}
	for code, want := range cases {
		l, ok := Lookup(code)
		if !ok {
			t.Fatalf("missing league %s", code)
		}
		if got := l.AlertText(); got != want {
			t.Fatalf("%s alert text = %q, want %q", code, got, want)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	if len(all) != 7 {
		t.Fatalf("expected 7 leagues, got %d", len(all))
	}
	all[0].Code = "XXX"
	if All()[0].Code != NFL {
		t.Fatal("expected catalog to be immutable through All")
	}
}
