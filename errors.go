package artemis

import "fmt"

// InitError is the panic value modules raise when the session cannot start:
// window, GL context, shaders, textures or configuration.
type InitError struct {
	Stage string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// failInit logs and panics with an InitError.
func failInit(app *App, stage string, err error) {
	ie := &InitError{Stage: stage, Err: err}
	app.Logger().Errorf("%v", ie)
	panic(ie)
}
