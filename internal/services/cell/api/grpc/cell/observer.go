package cell

import (
	domain "github.com/louisbranch/tracecell/internal/cell"
	"go.uber.org/zap"
)

// logObserver writes commits and rejections at debug level.
type logObserver struct {
	logger *zap.Logger
}

func (o logObserver) OnCommit(c domain.Commit) {
	o.logger.Debug("cell commit",
		zap.String("cell_id", c.CellID.String()),
		zap.Stringer("op", c.Op),
		zap.Int("prior", c.Prior),
		zap.Int("value", c.Value),
		zap.Int("length", c.Length),
	)
}

func (o logObserver) OnReject(r domain.Rejection) {
	o.logger.Debug("cell reject",
		zap.String("cell_id", r.CellID.String()),
		zap.Stringer("op", r.Op),
		zap.Int("value", r.Value),
		zap.Int("length", r.Length),
		zap.Error(r.Err),
	)
}
