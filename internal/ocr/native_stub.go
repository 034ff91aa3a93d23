//go:build !cgo

package ocr

// NewNative reports that the gosseract backend is not compiled into this
// binary. The Exec backend remains available.
func NewNative() (Engine, error) {
	return nil, ErrNativeUnavailable
}
