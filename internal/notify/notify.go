// Package notify handles the optional completion notification. It is
// toggled by the NOTIFICATION_ENABLED environment variable, which may also
// be set through a .env file in the data directory.
package notify

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Init loads the optional .env file from the data directory. Existing
// environment variables take precedence; a missing file is fine.
func Init(dataDir string) {
	_ = godotenv.Load(filepath.Join(dataDir, ".env"))
}

// Enabled reports whether completion notifications are turned on.
func Enabled() bool {
	v, err := strconv.ParseBool(os.Getenv("NOTIFICATION_ENABLED"))
	return err == nil && v
}

// Ring emits the terminal bell.
func Ring(w io.Writer) {
	fmt.Fprint(w, "\a")
}
