package web

import (
	"embed"
	"io/fs"

	"github.com/spf13/afero"
)

//go:embed static
var embedded embed.FS

// StaticFS returns the static assets served under /static. A dir that exists
// on disk wins, so assets can be edited without rebuilding; otherwise the
// copy embedded in the binary is used.
func StaticFS(dir string) (afero.Fs, error) {
	osFs := afero.NewOsFs()
	if ok, _ := afero.DirExists(osFs, dir); ok {
		return afero.NewReadOnlyFs(afero.NewBasePathFs(osFs, dir)), nil
	}
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		return nil, err
	}
	return afero.FromIOFS{FS: sub}, nil
}
