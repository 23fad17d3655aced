package convert

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"gib2sgf/internal/domain/game"
	apperrors "gib2sgf/internal/errors"
)

const sampleGib = `\HS
\[GAMEINFOMAIN=GBKIND:3,GRLT:4,ZIPSU:0,GONGJE:65,\]
\[GAMEDATE=2020- 4- 7-21-43-52\]
\[GAMEPLACE=Tygem Baduk\]
\[GAMEBLACKNAME=honinbo (3D)\]
\[GAMEWHITENAME=seigen (4D)\]
\HE
\GS
INI 0 1 0 &4
STO 0 2 1 15 3
STO 0 3 2 3 15
STO 0 4 1 16 16
SKI 0 5 2
\GE
`

func TestGibToSgf(t *testing.T) {
	got, err := GibToSgf(sampleGib)
	if err != nil {
		t.Fatal(err)
	}
	want := "(;PB[honinbo]BR[3D]PW[seigen]WR[4D]KM[6.5]DT[2020-04-07]RE[W+R]SO[Tygem Baduk]" +
		"RU[Japanese]SZ[19]GM[1]FF[4]CA[UTF-8]AP[gib2sgf:" + Version + "]" +
		";B[pd];W[dp];B[qq];W[])"
	if got != want {
		t.Errorf("GibToSgf:\nwanted: %v\ngot:    %v", want, got)
	}
}

func TestGibToSgfMinimal(t *testing.T) {
	got, err := GibToSgf(`\HS\HE`)
	if err != nil {
		t.Fatal(err)
	}
	want := "(;RU[Japanese]SZ[19]GM[1]FF[4]CA[UTF-8]AP[" + AppID() + "])"
	if got != want {
		t.Errorf("GibToSgf:\nwanted: %v\ngot:    %v", want, got)
	}
}

func TestGibToSgfHandicap(t *testing.T) {
	got, err := GibToSgf("\\HS\\HE\\GS\nINI 0 1 5 &4\nSTO 0 1 2 2 16\n\\GE")
	if err != nil {
		t.Fatal(err)
	}
	want := "AP[" + AppID() + "]HA[5]AB[jj][dp][pd][pp][dd];W[cq])"
	if !strings.HasSuffix(got, want) {
		t.Errorf("GibToSgf = %v; wanted suffix %v", got, want)
	}
}

func TestGibToSgfEscapesValues(t *testing.T) {
	got, err := GibToSgf(`\HS\[GAMEPLACE=room [a]\]\HE`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `SO[room [a\]]`) {
		t.Errorf("GibToSgf = %v; place not escaped", got)
	}
}

func TestGibToSgfFailure(t *testing.T) {
	got, err := GibToSgf("no header here")
	if !errors.Is(err, apperrors.ErrParse) {
		t.Errorf("err = %v; want ErrParse", err)
	}
	if got != "" {
		t.Errorf("partial output %q", got)
	}
}

func TestConvertOrNil(t *testing.T) {
	if out := ConvertOrNil("garbage"); out != nil {
		t.Errorf("ConvertOrNil(garbage) = %q; want nil", *out)
	}
	out := ConvertOrNil(sampleGib)
	if out == nil {
		t.Fatal("ConvertOrNil(sample) = nil")
	}
	if want, _ := GibToSgf(sampleGib); *out != want {
		t.Errorf("ConvertOrNil = %v; want %v", *out, want)
	}
}

func TestBuildCollectionRootOrder(t *testing.T) {
	komi := game.NewScore(0.5)
	result := game.Count(game.Black, nil)
	record := &game.Record{
		White:  game.Player{Nick: "w"},
		Komi:   &komi,
		Result: &result,
	}
	root := BuildCollection(record).Trees[0].Nodes[0]
	want := []string{"PW", "KM", "RE", "RU", "SZ", "GM", "FF", "CA", "AP"}
	if got := root.Names(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Names = %v; want %v", got, want)
	}
	if re, _ := root.Property("RE"); re[0] != "B+?" {
		t.Errorf("RE = %v", re)
	}
}

func TestConversionIsRepeatable(t *testing.T) {
	first, err := GibToSgf(sampleGib)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = GibToSgf(sampleGib)
		}()
	}
	wg.Wait()
	for i, r := range results {
		if r != first {
			t.Errorf("run %d differs: %v", i, r)
		}
	}
}

func TestRemoveAppVersion(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"(;FF[4]AP[gib2sgf:0.1.0]SZ[19])", "(;FF[4]SZ[19])"},
		{"(;FF[4]AP[gib2sgf:0.1.0", "(;FF[4]AP[gib2sgf:0.1.0"},
		{"(;AP[other:1.0])", "(;AP[other:1.0])"},
		{"", ""},
	}
	for _, c := range cases {
		if got := RemoveAppVersion(c.in); got != c.want {
			t.Errorf("RemoveAppVersion(%q) = %q; want %q", c.in, got, c.want)
		}
	}

	older := strings.Replace(mustConvert(t, sampleGib), AppID(), "gib2sgf:0.0.1", 1)
	if RemoveAppVersion(older) != RemoveAppVersion(mustConvert(t, sampleGib)) {
		t.Error("outputs of different versions compare unequal")
	}
}

func mustConvert(t *testing.T, text string) string {
	t.Helper()
	out, err := GibToSgf(text)
	if err != nil {
		t.Fatal(err)
	}
	return out
}
