// ==============================================================================================
// FILE: interp/errors.go
// ==============================================================================================
package interp

import (
	"github.com/sawickiap/MinScriptLang-sub001/langerr"
	"github.com/sawickiap/MinScriptLang-sub001/token"
)

func execErrorAt(place token.Place, format string, args ...any) error {
	return langerr.NewExecutionError(place, format, args...)
}
