package logger

import (
	"log"
	"os"
)

// New returns the run logger. With an empty path it logs to stderr,
// otherwise it appends to the file at path.
func New(path string) *log.Logger {
	if len(path) == 0 {
		return log.New(os.Stderr, "VMM ", log.Ldate|log.Ltime|log.Lshortfile)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		log.Fatal(err)
	}
	return log.New(f, "VMM ", log.Ldate|log.Ltime|log.Lshortfile)
}
