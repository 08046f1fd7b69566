package shared

import (
	"context"
	"fmt"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

// FlashType selects the flash message styling.
type FlashType string

const (
	FlashSuccess FlashType = "success"
	FlashError   FlashType = "error"
	FlashWarning FlashType = "warning"
	FlashInfo    FlashType = "info"
)

// Flash is a one-shot notice shown at the top of a page.
type Flash struct {
	Type    FlashType
	Message string
}

const flashBase = "mb-4 rounded-md border px-4 py-3 text-sm"

var flashClasses = map[FlashType]string{
	FlashSuccess: "border-green-200 bg-green-50 text-green-800",
	FlashError:   "border-red-200 bg-red-50 text-red-800",
	FlashWarning: "border-yellow-200 bg-yellow-50 text-yellow-800",
	FlashInfo:    "border-blue-200 bg-blue-50 text-blue-800",
}

// FlashMessage renders f, or nothing when f is nil.
func FlashMessage(f *Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if f == nil || f.Message == "" {
			return nil
		}
		class := twmerge.Merge(flashBase, flashClasses[f.Type])
		role := "status"
		if f.Type == FlashError {
			role = "alert"
		}
		_, err := fmt.Fprintf(w, `<div class="%s" role="%s" data-flash="%s">%s</div>`,
			class, role, f.Type, templ.EscapeString(f.Message))
		return err
	})
}
