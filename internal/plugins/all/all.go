// Package all links every bundled plugin into plugin.Default.
package all

import (
	_ "stakeplug/internal/plugins/bondedstaker"
)
