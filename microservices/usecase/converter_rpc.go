package usecase

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	convertuc "gib2sgf/internal/usecase/convert"
)

const (
	ConverterServiceName = "gib2sgf.Converter"
	ConvertMethod        = "/" + ConverterServiceName + "/Convert"
)

// ConverterServer converts the GIB text of the request into SGF text. Input
// that is not a GIB file fails with codes.InvalidArgument.
type ConverterServer interface {
	Convert(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// ConverterServiceDesc describes
//
//	service Converter {
//	  rpc Convert(google.protobuf.StringValue) returns (google.protobuf.StringValue);
//	}
var ConverterServiceDesc = grpc.ServiceDesc{
	ServiceName: ConverterServiceName,
	HandlerType: (*ConverterServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Convert",
			Handler:    convertHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "converter.proto",
}

func RegisterConverterServer(s grpc.ServiceRegistrar, srv ConverterServer) {
	s.RegisterService(&ConverterServiceDesc, srv)
}

func convertHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConverterServer).Convert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConvertMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConverterServer).Convert(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

type ConverterUseCase struct {
	log *zap.SugaredLogger
}

func NewConverterUseCase(log *zap.SugaredLogger) *ConverterUseCase {
	return &ConverterUseCase{log: log}
}

func (c *ConverterUseCase) Convert(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	sgfText, err := convertuc.GibToSgf(in.GetValue())
	if err != nil {
		c.log.Infow("gib rejected", "error", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return wrapperspb.String(sgfText), nil
}
