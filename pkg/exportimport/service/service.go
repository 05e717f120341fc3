package service

import (
	"context"
	"io"

	"gardenbook/pkg/exportimport/types"
)

type ExportService interface {
	// Export builds the whole snapshot in memory.
	Export(ctx context.Context, uid string, opts types.ExportOptions) (*types.Snapshot, error)
	// ExportTo writes the snapshot as JSON to w one collection at a time.
	ExportTo(ctx context.Context, w io.Writer, uid string, opts types.ExportOptions) error
}

type ImportService interface {
	Preview(ctx context.Context, uid string, snap *types.Snapshot, mode types.Mode) (*types.Preview, error)
	Import(ctx context.Context, uid string, snap *types.Snapshot, mode types.Mode) (*types.Result, error)
}
