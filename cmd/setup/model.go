package setup

import (
	"github.com/propledger/go-fp-rollup/internal/common/publisher"
)

type PublisherClient struct {
	DriftAlert publisher.Publisher
}
