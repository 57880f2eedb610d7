package import_port

import (
	"context"

	"github.com/google/uuid"

	"bm/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=import_port.go -destination=../../mocks/mock_import_port.go -package=mocks

// ImporterPort pulls starred items from one remote service into the
// user's links. It returns the number of links created.
type ImporterPort interface {
	Import(ctx context.Context, userID uuid.UUID, settings *domain.UserSettings) (int, error)
}
