package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Drommedhar/novalist-sub000/internal/config"
	"github.com/Drommedhar/novalist-sub000/internal/index"
)

// Reader supplies document contents; the vault implements it.
type Reader interface {
	Read(path string) (string, error)
}

type Server struct {
	cfg     *config.ProjectConfig
	indexes *index.Service
	reader  Reader
	mcp     *sdk.Server
}

func NewServer(cfg *config.ProjectConfig, indexes *index.Service, reader Reader, version string) *Server {
	s := &Server{
		cfg:     cfg,
		indexes: indexes,
		reader:  reader,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "novalist",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
