package store

import (
	"sync"

	"portal-layanan-publik/internal/domain"
)

// Portal owns the entity collections. It is constructed once at process
// start and handed by reference to the repository layer; there is no
// package-level instance.
type Portal struct {
	Users         *Collection[domain.User]
	Services      *Collection[domain.Service]
	Categories    *Collection[domain.ServiceCategory]
	Applications  *Collection[domain.Application]
	Notifications *Collection[domain.Notification]
	Attachments   *Collection[domain.Attachment]
	Sessions      *Collection[domain.Session]

	seedOnce sync.Once
}

// SeedOnce runs fn at most once per Portal instance. A second call is a
// no-op, so re-running startup wiring cannot duplicate the dataset.
func (p *Portal) SeedOnce(fn func() error) error {
	var err error
	p.seedOnce.Do(func() { err = fn() })
	return err
}

func NewPortal() *Portal {
	return &Portal{
		Users:         NewCollection[domain.User](),
		Services:      NewCollection[domain.Service](),
		Categories:    NewCollection[domain.ServiceCategory](),
		Applications:  NewCollection[domain.Application](),
		Notifications: NewCollection[domain.Notification](),
		Attachments:   NewCollection[domain.Attachment](),
		Sessions:      NewCollection[domain.Session](),
	}
}
