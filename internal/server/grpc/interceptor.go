package grpc

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/chirpy/internal/common"
)

type ctxKey string

const UserIDKey ctxKey = "userID"

// authorizationMD is the metadata key carrying "Bearer <token>".
const authorizationMD = "authorization"

var healthPrefix = "/" + healthpb.Health_ServiceDesc.ServiceName + "/"

func isPublic(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, healthPrefix)
}

// UserIDFromContext returns the id put there by the interceptors.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}

func (s *GRPCServer) authenticate(ctx context.Context) (context.Context, error) {
	var authorization string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(authorizationMD); len(values) > 0 {
			authorization = values[0]
		}
	}

	userID, err := s.auth.Authenticate(authorization)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, common.Message(err))
	}
	return context.WithValue(ctx, UserIDKey, userID), nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if isPublic(info.FullMethod) {
		return handler(ctx, req)
	}

	ctx, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return handler(ctx, req)
}

type authedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (a *authedStream) Context() context.Context { return a.ctx }

func (s *GRPCServer) streamAccessTokenInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if isPublic(info.FullMethod) {
		return handler(srv, ss)
	}

	ctx, err := s.authenticate(ss.Context())
	if err != nil {
		return err
	}
	return handler(srv, &authedStream{ServerStream: ss, ctx: ctx})
}
