package convert

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gib2sgf/internal/domain/conversion"
	apperrors "gib2sgf/internal/errors"
	"gib2sgf/internal/gib"
)

type ConversionStore interface {
	CacheConversion(ctx context.Context, key string, entry conversion.CacheEntry) error
	LoadCachedConversion(ctx context.Context, key string) (conversion.CacheEntry, error)
	PutConversion(ctx context.Context, c conversion.Conversion) error
	GetConversionByID(ctx context.Context, id string) (conversion.Conversion, error)
	ExportSGF(ctx context.Context, key string, sgfText string) (string, error)
}

type ConvertUseCase struct {
	store ConversionStore
	log   *zap.SugaredLogger
	now   func() time.Time
}

func NewConvertUseCase(store ConversionStore, log *zap.SugaredLogger) *ConvertUseCase {
	return &ConvertUseCase{store: store, log: log, now: time.Now}
}

// InputHash is the cache key of a GIB text. It changes with Version so that
// output of an older converter is not served after an upgrade.
func InputHash(text string) string {
	h := sha256.New()
	h.Write([]byte(Version))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// Convert converts req.Gib, reusing a cached result for identical input, and
// archives the outcome. Parse failures are returned unwrapped so that callers
// can match apperrors.ErrParse.
func (u *ConvertUseCase) Convert(ctx context.Context, req conversion.ConvertRequest) (conversion.Conversion, error) {
	c := conversion.Conversion{
		ID:        uuid.New().String(),
		InputHash: InputHash(req.Gib),
		FileName:  req.FileName,
		CreatedAt: u.now().UTC(),
	}

	cached, err := u.store.LoadCachedConversion(ctx, c.InputHash)
	switch {
	case err == nil:
		c.Apply(cached)
		c.Cached = true
	case !errors.Is(err, apperrors.ErrCacheMiss):
		u.log.Warnw("sgf cache unavailable", "hash", c.InputHash, "error", err)
	}

	if !c.Cached {
		if err := u.convert(ctx, req.Gib, &c); err != nil {
			return conversion.Conversion{}, err
		}
	}

	if req.Export {
		key, err := u.store.ExportSGF(ctx, exportKey(c), c.Sgf)
		if err != nil {
			return conversion.Conversion{}, fmt.Errorf("export sgf: %w", err)
		}
		c.ExportKey = key
	}

	if err := u.store.PutConversion(ctx, c); err != nil {
		return conversion.Conversion{}, fmt.Errorf("archive conversion: %w", err)
	}
	u.log.Infow("conversion stored", "id", c.ID, "cached", c.Cached, "moves", c.Moves)
	return c, nil
}

func (u *ConvertUseCase) convert(ctx context.Context, text string, c *conversion.Conversion) error {
	record, err := gib.Parse(text)
	if err != nil {
		u.log.Infow("gib rejected", "file", c.FileName, "error", err)
		return err
	}
	for _, warning := range record.Warnings {
		u.log.Warnw("gib metadata dropped", "file", c.FileName, "warning", warning)
	}

	c.Sgf = BuildCollection(record).String()
	c.Black = record.Black.Nick
	c.White = record.White.Nick
	c.Moves = len(record.Moves)
	c.Warnings = record.Warnings

	if err := u.store.CacheConversion(ctx, c.InputHash, c.CacheEntry()); err != nil {
		u.log.Warnw("failed to cache sgf", "hash", c.InputHash, "error", err)
	}
	return nil
}

func (u *ConvertUseCase) GetConversion(ctx context.Context, id string) (conversion.Conversion, error) {
	if _, err := uuid.Parse(id); err != nil {
		return conversion.Conversion{}, fmt.Errorf("%w: malformed id %q", apperrors.ErrConversionNotFound, id)
	}
	return u.store.GetConversionByID(ctx, id)
}

// exportKey names the exported object after the uploaded file when there is
// one, and after the conversion id otherwise.
func exportKey(c conversion.Conversion) string {
	name := strings.TrimSuffix(path.Base(strings.ReplaceAll(c.FileName, `\`, "/")), path.Ext(c.FileName))
	if name == "" || name == "." || name == "/" {
		name = c.ID
	} else {
		name = name + "-" + c.ID[:8]
	}
	return c.CreatedAt.Format("2006/01/02") + "/" + name + ".sgf"
}
