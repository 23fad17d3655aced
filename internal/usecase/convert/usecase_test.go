package convert

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"gib2sgf/internal/domain/conversion"
	apperrors "gib2sgf/internal/errors"
)

type fakeStore struct {
	cache       map[string]conversion.CacheEntry
	archive     map[string]conversion.Conversion
	exported    map[string]string
	cacheErr    error
	archiveErr  error
	exportErr   error
	cacheWrites int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cache:    make(map[string]conversion.CacheEntry),
		archive:  make(map[string]conversion.Conversion),
		exported: make(map[string]string),
	}
}

func (f *fakeStore) CacheConversion(_ context.Context, key string, entry conversion.CacheEntry) error {
	f.cacheWrites++
	f.cache[key] = entry
	return nil
}

func (f *fakeStore) LoadCachedConversion(_ context.Context, key string) (conversion.CacheEntry, error) {
	if f.cacheErr != nil {
		return conversion.CacheEntry{}, f.cacheErr
	}
	e, ok := f.cache[key]
	if !ok {
		return conversion.CacheEntry{}, apperrors.ErrCacheMiss
	}
	return e, nil
}

func (f *fakeStore) PutConversion(_ context.Context, c conversion.Conversion) error {
	if f.archiveErr != nil {
		return f.archiveErr
	}
	f.archive[c.ID] = c
	return nil
}

func (f *fakeStore) GetConversionByID(_ context.Context, id string) (conversion.Conversion, error) {
	c, ok := f.archive[id]
	if !ok {
		return conversion.Conversion{}, apperrors.ErrConversionNotFound
	}
	return c, nil
}

func (f *fakeStore) ExportSGF(_ context.Context, key string, sgfText string) (string, error) {
	if f.exportErr != nil {
		return "", f.exportErr
	}
	f.exported[key] = sgfText
	return key, nil
}

func newTestUseCase(store ConversionStore) *ConvertUseCase {
	uc := NewConvertUseCase(store, zap.NewNop().Sugar())
	uc.now = func() time.Time { return time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestConvertStoresAndCaches(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(store)
	ctx := context.Background()

	first, err := uc.Convert(ctx, conversion.ConvertRequest{FileName: "game.gib", Gib: sampleGib})
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Error("first conversion reported as cached")
	}
	if first.Sgf != mustConvert(t, sampleGib) {
		t.Errorf("Sgf = %v", first.Sgf)
	}
	if first.Black != "honinbo" || first.White != "seigen" || first.Moves != 4 {
		t.Errorf("summary = %+v", first)
	}
	if store.cache[InputHash(sampleGib)].Sgf != first.Sgf {
		t.Error("result was not cached")
	}

	second, err := uc.Convert(ctx, conversion.ConvertRequest{Gib: sampleGib})
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Error("second conversion not served from cache")
	}
	assertSameSummary(t, second, first)
	if second.ID == first.ID {
		t.Error("conversions share an id")
	}
	if store.cacheWrites != 1 {
		t.Errorf("cache written %d times", store.cacheWrites)
	}

	got, err := uc.GetConversion(ctx, first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Sgf != first.Sgf || got.FileName != "game.gib" {
		t.Errorf("GetConversion = %+v", got)
	}
}

func assertSameSummary(t *testing.T, got, want conversion.Conversion) {
	t.Helper()
	if got.Sgf != want.Sgf || got.Black != want.Black || got.White != want.White || got.Moves != want.Moves {
		t.Errorf("summary = %+v; want %+v", got, want)
	}
	if !slices.Equal(got.Warnings, want.Warnings) {
		t.Errorf("Warnings = %q; want %q", got.Warnings, want.Warnings)
	}
}

func TestConvertCacheHitKeepsSummary(t *testing.T) {
	gib := "\\HS\n\\[GAMEBLACKNAME=b\\]\n\\[GAMEDATE=2011-13- 1\\]\n\\HE\n\\GS\nSTO 0 2 1 3 3\n\\GE\n"
	store := newFakeStore()
	uc := newTestUseCase(store)
	ctx := context.Background()

	first, err := uc.Convert(ctx, conversion.ConvertRequest{Gib: gib})
	if err != nil {
		t.Fatal(err)
	}
	if first.Black != "b" || first.Moves != 1 || len(first.Warnings) != 1 {
		t.Fatalf("first = %+v", first)
	}

	second, err := uc.Convert(ctx, conversion.ConvertRequest{Gib: gib})
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Error("second conversion not served from cache")
	}
	assertSameSummary(t, second, first)
	assertSameSummary(t, store.archive[second.ID], first)
	if r := second.Response(); !slices.Equal(r.Warnings, first.Warnings) {
		t.Errorf("Response warnings = %q; want %q", r.Warnings, first.Warnings)
	}
}

func TestInputHashDependsOnVersion(t *testing.T) {
	before := InputHash(sampleGib)
	if InputHash(sampleGib) != before {
		t.Error("InputHash is not stable")
	}
	if InputHash(sampleGib+"\n") == before {
		t.Error("InputHash ignores the input")
	}

	saved := Version
	t.Cleanup(func() { Version = saved })
	Version = saved + "-next"
	if InputHash(sampleGib) == before {
		t.Error("InputHash ignores Version")
	}
}

func TestConvertKeepsWarnings(t *testing.T) {
	uc := newTestUseCase(newFakeStore())
	c, err := uc.Convert(context.Background(), conversion.ConvertRequest{Gib: `\HS\[GAMEDATE=2011-13- 1\]\HE`})
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Warnings) != 1 || !strings.Contains(c.Warnings[0], "GAMEDATE") {
		t.Errorf("Warnings = %v", c.Warnings)
	}
	if strings.Contains(c.Sgf, "DT[") {
		t.Errorf("invalid date rendered: %v", c.Sgf)
	}
}

func TestConvertRejectsBrokenInput(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(store)
	_, err := uc.Convert(context.Background(), conversion.ConvertRequest{Gib: "not a gib file"})
	if !errors.Is(err, apperrors.ErrParse) {
		t.Errorf("err = %v; want ErrParse", err)
	}
	if len(store.archive) != 0 || len(store.cache) != 0 {
		t.Error("failed conversion was stored")
	}
}

func TestConvertSurvivesCacheOutage(t *testing.T) {
	store := newFakeStore()
	store.cacheErr = errors.New("connection refused")
	uc := newTestUseCase(store)
	c, err := uc.Convert(context.Background(), conversion.ConvertRequest{Gib: sampleGib})
	if err != nil {
		t.Fatal(err)
	}
	if c.Cached || c.Sgf == "" {
		t.Errorf("conversion = %+v", c)
	}
}

func TestConvertArchiveFailure(t *testing.T) {
	store := newFakeStore()
	store.archiveErr = errors.New("mongo down")
	uc := newTestUseCase(store)
	if _, err := uc.Convert(context.Background(), conversion.ConvertRequest{Gib: sampleGib}); err == nil {
		t.Error("archive failure was swallowed")
	}
}

func TestConvertExport(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(store)
	c, err := uc.Convert(context.Background(), conversion.ConvertRequest{FileName: `games\lee-vs-cho.gib`, Gib: sampleGib, Export: true})
	if err != nil {
		t.Fatal(err)
	}
	want := "2024/05/17/lee-vs-cho-" + c.ID[:8] + ".sgf"
	if c.ExportKey != want {
		t.Errorf("ExportKey = %v; want %v", c.ExportKey, want)
	}
	if store.exported[want] != c.Sgf {
		t.Error("sgf was not exported")
	}

	store.exportErr = apperrors.ErrExportDisabled
	if _, err := uc.Convert(context.Background(), conversion.ConvertRequest{Gib: sampleGib, Export: true}); !errors.Is(err, apperrors.ErrExportDisabled) {
		t.Errorf("err = %v; want ErrExportDisabled", err)
	}
}

func TestGetConversionNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeStore())
	for _, id := range []string{"nope", "0b6e3a4e-3f5e-4a57-9a7c-3f0c36a8d2d1"} {
		if _, err := uc.GetConversion(context.Background(), id); !errors.Is(err, apperrors.ErrConversionNotFound) {
			t.Errorf("GetConversion(%q) err = %v", id, err)
		}
	}
}
