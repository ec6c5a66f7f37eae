package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LocalIDGenerator produces client-local record identifiers in the form
// "offline_<unix-millis>_<random fragment>". The format is collision-resistant
// within one client's cache lifetime, which is all the sync protocol needs:
// the id is a correlation token, not a global identity.
type LocalIDGenerator struct {
}

func NewLocalIDGenerator() *LocalIDGenerator {
	return &LocalIDGenerator{}
}

func (g *LocalIDGenerator) Generate() string {
	frag := uuid.NewString()
	return fmt.Sprintf("offline_%d_%s", time.Now().UnixMilli(), frag[:8])
}
