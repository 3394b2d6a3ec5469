package state

import (
	"log"

	"github.com/five82/bookshelf/internal/catalog"
)

// LogEffect writes one line per applied action to logger.
func LogEffect(logger *log.Logger) Effect {
	return EffectFunc(func(a catalog.Action, _ Dispatcher) {
		if logger == nil {
			return
		}
		switch a := a.(type) {
		case catalog.LoadSucceeded:
			logger.Printf("%s: %d books", a.Type(), len(a.Books))
		case catalog.LoadFailed:
			logger.Printf("%s: %s", a.Type(), a.Error)
		case catalog.AddRequested:
			logger.Printf("%s: id=%s title=%q", a.Type(), a.Book.ID, a.Book.Title)
		case catalog.DeleteRequested:
			logger.Printf("%s: id=%s", a.Type(), a.ID)
		case catalog.StartEditRequested:
			logger.Printf("%s: id=%s", a.Type(), a.Book.ID)
		case catalog.EditRequested:
			logger.Printf("%s: id=%s title=%q", a.Type(), a.Book.ID, a.Book.Title)
		default:
			logger.Print(a.Type())
		}
	})
}
