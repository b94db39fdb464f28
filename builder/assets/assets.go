// Package assets ships the browser scripts generated pages depend on. The
// scripts are embedded in the binary and written into the output tree on
// every build so the script/DOM contract of the rendered pages always holds.
package assets

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/breadmotion/pankun/builder/utils"
)

//go:embed js/*.js
var scriptsFS embed.FS

var scripts = []string{"toc.js", "transition.js"}

// Write places the embedded scripts under dir, minified when compress is on.
func Write(fs afero.Fs, dir string, compress bool) error {
	for _, name := range scripts {
		data, err := scriptsFS.ReadFile("js/" + name)
		if err != nil {
			return fmt.Errorf("embedded script %s: %w", name, err)
		}
		if compress {
			data = utils.MinifyJS(data)
		}
		if err := afero.WriteFile(fs, filepath.Join(dir, name), data, 0644); err != nil {
			return fmt.Errorf("write script %s: %w", name, err)
		}
	}
	return nil
}
