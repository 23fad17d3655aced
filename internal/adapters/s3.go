package adapters

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"gib2sgf/internal/bootstrap"
)

// AdapterS3 holds the object storage client used for SGF exports. Without a
// configured bucket the client stays nil and exports are disabled.
type AdapterS3 struct {
	Client *s3.Client
	Bucket string
	cfg    *bootstrap.Config
	log    *zap.SugaredLogger
}

func NewAdapterS3(cfg *bootstrap.Config, log *zap.SugaredLogger) *AdapterS3 {
	return &AdapterS3{
		Bucket: cfg.S3Bucket,
		cfg:    cfg,
		log:    log,
	}
}

// Init loads credentials from the default sources (AWS_* variables, shared
// config files) and checks that the bucket is reachable.
func (a *AdapterS3) Init(ctx context.Context) error {
	if a.Bucket == "" {
		a.log.Info("S3_BUCKET not set, sgf export disabled")
		return nil
	}

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}
	a.Client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if a.cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(a.cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	if _, err = a.Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(a.Bucket),
	}); err != nil {
		return fmt.Errorf("head bucket %s: %w", a.Bucket, err)
	}

	a.log.Infow("connected to object storage", "bucket", a.Bucket)
	return nil
}
