package middleware

import "github.com/fodmaplab/reintro/pkg/ports"

// Middleware allows wrapping a ProtocolStore to add behavior.
type Middleware func(ports.ProtocolStore) ports.ProtocolStore
