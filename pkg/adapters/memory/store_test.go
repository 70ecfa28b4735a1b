package memory_test

import (
	"testing"

	"github.com/fodmaplab/reintro/pkg/adapters/memory"
	"github.com/fodmaplab/reintro/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.New()
	ports.RunProtocolStoreContract(t, store)
}
