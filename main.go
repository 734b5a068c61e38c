package main

import (
	"fmt"
	"os"

	"github.com/carlwiedemann/foresite/cmd"
	ferrors "github.com/carlwiedemann/foresite/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ferrors.ExitCodeFromError(err))
	}
}
