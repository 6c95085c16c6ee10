// Package assets serves the site's static files: link icons, the stylesheet and
// the portrait. Files on disk under an override directory win over the embedded ones.
package assets

import (
	"embed"
	"errors"
	"io/fs"
	"os"
)

//go:embed static
var embedded embed.FS

// Embedded returns the assets compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		// "static" is embedded above, so Sub cannot fail
		panic(err)
	}
	return sub
}

// New returns the embedded assets, overlaid by dir when it is not empty.
func New(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return overlay{top: os.DirFS(dir), bottom: Embedded()}
}

// overlay opens from top first and falls back to bottom when the file does not exist there.
type overlay struct {
	top    fs.FS
	bottom fs.FS
}

func (o overlay) Open(name string) (fs.File, error) {
	f, err := o.top.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.bottom.Open(name)
}
