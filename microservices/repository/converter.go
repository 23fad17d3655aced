package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"gib2sgf/microservices/usecase"
)

// ConverterRepository calls a remote converter service.
type ConverterRepository struct {
	conn grpc.ClientConnInterface
	log  *zap.SugaredLogger
}

func NewConverterRepository(conn grpc.ClientConnInterface, log *zap.SugaredLogger) *ConverterRepository {
	return &ConverterRepository{
		conn: conn,
		log:  log,
	}
}

func (c *ConverterRepository) Convert(ctx context.Context, gibText string) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.conn.Invoke(ctx, usecase.ConvertMethod, wrapperspb.String(gibText), out); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

// ConvertOrNil returns nil for input the service rejects. Only transport
// failures are errors.
func (c *ConverterRepository) ConvertOrNil(ctx context.Context, gibText string) (*string, error) {
	sgfText, err := c.Convert(ctx, gibText)
	if status.Code(err) == codes.InvalidArgument {
		c.log.Debugw("remote converter rejected input", "error", err)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("remote convert: %w", err)
	}
	return &sgfText, nil
}
