package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/bottled/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// FormatEnv selects the log format, "json" or anything else for pretty output.
const FormatEnv = "BOTTLED_LOG_FORMAT"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			lg := New().(*Logger)
			lg.SetJSON(os.Getenv(FormatEnv) == "json")
			return lg, nil
		},
	})
}
