package index

import (
	"fmt"

	"github.com/JPEWdev/yeps/internal/yep"
)

// DisplayTitle is the rendered page title for a proposal. The double hyphen
// becomes an en dash downstream.
func DisplayTitle(y *yep.YEP) string {
	return fmt.Sprintf("YEP %d -- %s", y.Number, y.Title)
}
