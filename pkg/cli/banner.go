package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

func printBanner(w io.Writer, url string) {
	if w == nil {
		w = os.Stdout
	}

	title := color.New(color.FgGreen, color.Bold)
	path := color.New(color.FgCyan)

	title.Fprintf(w, "GT Hello World server running at %s\n", url)
	fmt.Fprintln(w, "Gas Town Polecat ready for work")
	fmt.Fprintf(w, "Health check available at %s\n", path.Sprint("/health"))
	fmt.Fprintf(w, "API endpoint available at %s\n", path.Sprint("/api/hello"))
}
