package booking

import (
	"github.com/lumeabeauty/studio-scheduler/internal/audit"
	"github.com/lumeabeauty/studio-scheduler/internal/notify"
)

// Side-effect collaborators. Both are fire-and-forget: implementations
// must never block the caller on delivery.

type Notifier interface {
	Dispatch(ev notify.Event)
}

type Auditor interface {
	Dispatch(ev audit.Event)
}
