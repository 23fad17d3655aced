package repository

import (
	"context"
	"net"
	"strings"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"gib2sgf/microservices/usecase"
)

func startConverter(t *testing.T) *ConverterRepository {
	t.Helper()
	log := zap.NewNop().Sugar()
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	usecase.RegisterConverterServer(server, usecase.NewConverterUseCase(log))
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })
	return NewConverterRepository(conn, log)
}

func TestRemoteConvert(t *testing.T) {
	repo := startConverter(t)
	ctx := context.Background()

	out, err := repo.Convert(ctx, "\\HS\\[GAMEWHITENAME=park\\]\\HE\\GS\nSTO 0 1 2 3 3\n\\GE")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "(;PW[park]") || !strings.HasSuffix(out, ";W[dd])") {
		t.Errorf("Convert = %v", out)
	}

	_, err = repo.Convert(ctx, "garbage")
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("err = %v; want InvalidArgument", err)
	}
}

func TestRemoteConvertOrNil(t *testing.T) {
	repo := startConverter(t)
	ctx := context.Background()

	out, err := repo.ConvertOrNil(ctx, "garbage")
	if err != nil || out != nil {
		t.Errorf("ConvertOrNil(garbage) = %v, %v; want nil, nil", out, err)
	}

	out, err = repo.ConvertOrNil(ctx, `\HS\HE`)
	if err != nil || out == nil || !strings.Contains(*out, "GM[1]") {
		t.Errorf("ConvertOrNil = %v, %v", out, err)
	}
}
