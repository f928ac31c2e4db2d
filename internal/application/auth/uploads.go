package auth

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// objectName arma "<carpeta>/<unixmillis>_<aleatorio>.<ext>" conservando la extensión del archivo original.
func objectName(folder, filename string, now time.Time) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		ext = "bin"
	}
	rand := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	name := fmt.Sprintf("%d_%s.%s", now.UnixMilli(), rand, ext)
	if folder = strings.Trim(folder, "/"); folder == "" {
		return name
	}
	return folder + "/" + name
}
