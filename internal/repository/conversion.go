package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"gib2sgf/internal/bootstrap"
	"gib2sgf/internal/domain/conversion"
	apperrors "gib2sgf/internal/errors"
)

const (
	conversionsCollection = "conversions"
	cachePrefix           = "sgf:"
	sgfContentType        = "application/x-go-sgf"
)

// ConversionRepository caches SGF output in redis, archives conversions in
// mongo and exports SGF files to an S3 bucket. The S3 client may be nil.
type ConversionRepository struct {
	cfg    bootstrap.Config
	log    *zap.SugaredLogger
	redis  *redis.Client
	mongo  *mongo.Database
	s3     *s3.Client
	bucket string
}

func NewConversionRepository(cfg bootstrap.Config, log *zap.SugaredLogger, redis *redis.Client, mongo *mongo.Database, s3 *s3.Client) *ConversionRepository {
	return &ConversionRepository{
		cfg:    cfg,
		log:    log,
		redis:  redis,
		mongo:  mongo,
		s3:     s3,
		bucket: cfg.S3Bucket,
	}
}

func (r *ConversionRepository) CacheConversion(ctx context.Context, key string, entry conversion.CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.redis.Set(ctx, cachePrefix+key, data, r.cfg.CacheTTL).Err()
}

// LoadCachedConversion returns apperrors.ErrCacheMiss for absent keys and for
// values that do not decode, such as plain SGF written by older releases.
func (r *ConversionRepository) LoadCachedConversion(ctx context.Context, key string) (conversion.CacheEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	data, err := r.redis.Get(ctx, cachePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return conversion.CacheEntry{}, apperrors.ErrCacheMiss
	}
	if err != nil {
		return conversion.CacheEntry{}, err
	}
	return decodeCacheEntry(data)
}

func decodeCacheEntry(data []byte) (conversion.CacheEntry, error) {
	var entry conversion.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Sgf == "" {
		return conversion.CacheEntry{}, apperrors.ErrCacheMiss
	}
	return entry, nil
}

func (r *ConversionRepository) PutConversion(ctx context.Context, c conversion.Conversion) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.mongo.Collection(conversionsCollection).InsertOne(ctx, c); err != nil {
		r.log.Errorf("failed to insert conversion %s: %v", c.ID, err)
		return err
	}
	return nil
}

func (r *ConversionRepository) GetConversionByID(ctx context.Context, id string) (conversion.Conversion, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c conversion.Conversion
	err := r.mongo.Collection(conversionsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return conversion.Conversion{}, fmt.Errorf("%w: %s", apperrors.ErrConversionNotFound, id)
	}
	if err != nil {
		return conversion.Conversion{}, err
	}
	return c, nil
}

// ExportSGF uploads sgfText under key and returns the s3:// location.
func (r *ConversionRepository) ExportSGF(ctx context.Context, key string, sgfText string) (string, error) {
	if r.s3 == nil || r.bucket == "" {
		return "", apperrors.ErrExportDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(sgfText),
		ContentType: aws.String(sgfContentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	r.log.Infow("sgf exported", "bucket", r.bucket, "key", key)
	return fmt.Sprintf("s3://%s/%s", r.bucket, key), nil
}
