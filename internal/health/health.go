// Package health exposes the standard gRPC health service and keeps its
// status in line with database reachability.
package health

//go:generate mockgen -source=health.go -destination=mock_health.go -package=health

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-bookmarker/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service reported alongside the overall ("") status.
const ServiceName = "bookmarker"

// DefaultInterval is how often the database is pinged.
const DefaultInterval = 10 * time.Second

// Pinger reports whether the database answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server serves grpc_health_v1 and flips between SERVING and NOT_SERVING.
type Server struct {
	db       Pinger
	interval time.Duration
	grpc     *grpc.Server
	status   *health.Server

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer creates a health server. interval <= 0 means DefaultInterval.
func NewServer(db Pinger, interval time.Duration) *Server {
	if interval <= 0 {
		interval = DefaultInterval
	}

	s := &Server{
		db:       db,
		interval: interval,
		grpc:     grpc.NewServer(),
		status:   health.NewServer(),
	}
	healthpb.RegisterHealthServer(s.grpc, s.status)
	s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// Start runs the checker and serves on lis until Stop. It returns once
// the listener is being served.
func (s *Server) Start(ctx context.Context, lis net.Listener) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.check(ctx)

	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		s.watch(ctx)
	}()
	go func() {
		defer s.wg.Done()
		logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
		if err := s.grpc.Serve(lis); err != nil {
			logger.Log.Errorw("gRPC health server stopped", "error", err)
		}
	}()
}

// Stop marks the service NOT_SERVING and shuts the gRPC server down.
func (s *Server) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.status.Shutdown()
	s.grpc.GracefulStop()
	s.wg.Wait()
}

func (s *Server) watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *Server) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if err := s.db.PingContext(pingCtx); err != nil {
		logger.Log.Warnw("database ping failed", "error", err)
		s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	s.setStatus(healthpb.HealthCheckResponse_SERVING)
}

func (s *Server) setStatus(st healthpb.HealthCheckResponse_ServingStatus) {
	s.status.SetServingStatus("", st)
	s.status.SetServingStatus(ServiceName, st)
}
